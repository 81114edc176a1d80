package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunaalencar/juridico-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date inválida, use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date inválida, use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	// end_date is inclusive
	return from, end.AddDate(0, 0, 1), true
}

// @Summary Ledger CSV
// @Description Download cash movements in a date range as CSV
// @Tags Reports
// @Produce text/csv
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file "caixa.csv"
// @Security BearerAuth
// @Router /reports/ledger_csv [get]
func (h *ReportHandler) LedgerCSV(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.LedgerCSV(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// @Summary Ledger XLSX
// @Description Download cash movements in a date range as a spreadsheet
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file "caixa.xlsx"
// @Security BearerAuth
// @Router /reports/ledger_xlsx [get]
func (h *ReportHandler) LedgerXLSX(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	data, filename, err := h.reportService.LedgerXLSX(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Receivables PDF
// @Description Download the pending installment queue as PDF
// @Tags Reports
// @Produce application/pdf
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {file} file "a_receber.pdf"
// @Security BearerAuth
// @Router /reports/receivables_pdf [get]
func (h *ReportHandler) ReceivablesPDF(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of inválida, use YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	data, filename, err := h.reportService.ReceivablesPDF(c.Request.Context(), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

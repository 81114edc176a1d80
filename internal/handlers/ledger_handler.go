package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunaalencar/juridico-api/internal/middleware"
	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/internal/services"
	"github.com/lunaalencar/juridico-api/internal/storage"
)

type LedgerHandler struct {
	ledgerService *services.LedgerService
	storage       *storage.LocalStorage
}

func NewLedgerHandler(ledgerService *services.LedgerService, storage *storage.LocalStorage) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, storage: storage}
}

// @Summary List Ledger Entries
// @Description Get a paginated list of cash movements
// @Tags Ledger
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param direction query string false "Filter by direction (entrada/saida)"
// @Param payment_method query string false "Filter by payment method"
// @Param search_term query string false "Search in description"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /ledger [get]
func (h *LedgerHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["direction"] = c.Query("direction")
	query.Filters["payment_method"] = c.Query("payment_method")

	if sort := c.Query("sort"); sort != "" {
		parts := strings.Split(sort, "-")
		query.SortBy = parts[0]
		if len(parts) > 1 {
			query.SortDir = parts[1]
		}
	}

	entries, total, err := h.ledgerService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for i := range entries {
		responses = append(responses, entries[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Ledger Summary
// @Description Inflow, outflow and balance for a day or a month. Pass either date=YYYY-MM-DD or month and year.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year (YYYY)"
// @Success 200 {object} services.Summary
// @Security BearerAuth
// @Router /ledger/summary [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use YYYY-MM-DD"})
			return
		}
		summary, err := h.ledgerService.SummarizeDay(c.Request.Context(), day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month < 1 || month > 12 || year < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe date ou month/year válidos"})
		return
	}

	summary, err := h.ledgerService.SummarizeMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Ledger Statistics
// @Description Daily inflow/outflow points for the cash chart
// @Tags Ledger
// @Accept json
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year (YYYY)"
// @Success 200 {object} []services.CashPoint
// @Security BearerAuth
// @Router /ledger/statistics [get]
func (h *LedgerHandler) Statistics(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	if month < 1 || month > 12 || year < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month or year"})
		return
	}

	points, err := h.ledgerService.DailySeries(c.Request.Context(), year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Register Manual Entry
// @Description Appends a hand-registered cash movement
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body services.ManualEntryInput true "Entry data"
// @Success 201 {object} models.LedgerEntryResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /ledger [post]
func (h *LedgerHandler) Create(c *gin.Context) {
	var input services.ManualEntryInput
	if err := BindNestedOrFlat(c, "entry", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	entry, err := h.ledgerService.RegisterManualEntry(c.Request.Context(), input,
		middleware.GetUserID(c),
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry.ToResponse(), "message": "Lançamento registrado"})
}

// @Summary Upload Receipt
// @Description Upload a receipt image/pdf for a ledger entry
// @Tags Ledger
// @Accept multipart/form-data
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Param receipt formData file true "Receipt File"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /ledger/{entry_id}/receipt [post]
func (h *LedgerHandler) UploadReceipt(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("entry_id"), 10, 32)

	if _, err := h.ledgerService.FindByID(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lançamento não encontrado"})
		return
	}

	file, header, err := c.Request.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo obrigatório"})
		return
	}
	defer file.Close()

	if c.Request.ContentLength > storage.MaxFileSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo muito grande"})
		return
	}

	relPath, err := h.storage.Upload(file, header, "comprovantes")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.ledgerService.AttachReceipt(c.Request.Context(), uint(id), relPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comprovante salvo", "path": relPath})
}

// @Summary Download Receipt
// @Description Download the receipt attached to a ledger entry
// @Tags Ledger
// @Produce octet-stream
// @Param entry_id path int true "Entry ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /ledger/{entry_id}/receipt [get]
func (h *LedgerHandler) DownloadReceipt(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("entry_id"), 10, 32)

	entry, err := h.ledgerService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lançamento não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if entry.ReceiptPath == nil || *entry.ReceiptPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lançamento sem comprovante"})
		return
	}

	fullPath := h.storage.Path(*entry.ReceiptPath)
	if _, err := os.Stat(fullPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Arquivo não encontrado"})
		return
	}

	c.FileAttachment(fullPath, "comprovante"+filepath.Ext(fullPath))
}

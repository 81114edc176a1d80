package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunaalencar/juridico-api/internal/middleware"
	"github.com/lunaalencar/juridico-api/internal/services"
)

type InstallmentHandler struct {
	collectionService *services.CollectionService
}

func NewInstallmentHandler(collectionService *services.CollectionService) *InstallmentHandler {
	return &InstallmentHandler{collectionService: collectionService}
}

// @Summary Get Installment
// @Description Get an installment by ID
// @Tags Installments
// @Accept json
// @Produce json
// @Param installment_id path int true "Installment ID"
// @Success 200 {object} models.InstallmentResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /installments/{installment_id} [get]
func (h *InstallmentHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("installment_id"), 10, 32)
	installment, err := h.collectionService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Parcela não encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"installment": installment.ToResponse()})
}

type CollectRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	CollectedOn   string `json:"collected_on"`
}

// @Summary Collect Installment
// @Description Marks an installment as paid and appends the cash entry. Returns 409 when already collected.
// @Tags Installments
// @Accept json
// @Produce json
// @Param installment_id path int true "Installment ID"
// @Param request body CollectRequest true "Payment method and optional date (YYYY-MM-DD)"
// @Success 200 {object} models.LedgerEntryResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /installments/{installment_id}/collect [post]
func (h *InstallmentHandler) Collect(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("installment_id"), 10, 32)

	var req CollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Forma de pagamento é obrigatória"})
		return
	}

	var collectedOn time.Time
	if req.CollectedOn != "" {
		parsed, err := time.Parse("2006-01-02", req.CollectedOn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use YYYY-MM-DD"})
			return
		}
		collectedOn = parsed
	}

	entry, err := h.collectionService.Collect(c.Request.Context(), uint(id), req.PaymentMethod, collectedOn,
		middleware.GetUserID(c),
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parcela não encontrada"})
		case errors.Is(err, services.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "Parcela já recebida"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry.ToResponse(), "message": "Recebimento registrado"})
}

// @Summary List Receivables
// @Description Pending installments ordered by due date, annotated with overdue days
// @Tags Installments
// @Accept json
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} []services.Receivable
// @Security BearerAuth
// @Router /receivables [get]
func (h *InstallmentHandler) Receivables(c *gin.Context) {
	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida, use YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	receivables, err := h.collectionService.ListReceivables(c.Request.Context(), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"as_of":       asOf.Format("2006-01-02"),
		"receivables": receivables,
	})
}

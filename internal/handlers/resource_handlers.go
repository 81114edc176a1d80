package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/internal/services"
)

type CaseHandler struct {
	caseRepo        repository.CaseRepository
	contractService *services.ContractService
}

func NewCaseHandler(caseRepo repository.CaseRepository, contractService *services.ContractService) *CaseHandler {
	return &CaseHandler{caseRepo: caseRepo, contractService: contractService}
}

// @Summary Recent Cases
// @Description Get the most recently opened cases
// @Tags Cases
// @Accept json
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /cases [get]
func (h *CaseHandler) Index(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	cases, err := h.caseRepo.FindRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cases": cases})
}

// @Summary Get Case
// @Description Get a case with its client
// @Tags Cases
// @Accept json
// @Produce json
// @Param case_id path int true "Case ID"
// @Success 200 {object} models.LegalCase
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /cases/{case_id} [get]
func (h *CaseHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("case_id"), 10, 32)
	legalCase, err := h.caseRepo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Processo não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": legalCase})
}

// @Summary Case Contracts
// @Description Get all contracts of a case with their schedules
// @Tags Cases
// @Accept json
// @Produce json
// @Param case_id path int true "Case ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /cases/{case_id}/contracts [get]
func (h *CaseHandler) Contracts(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("case_id"), 10, 32)
	contracts, err := h.contractService.FindByCase(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for i := range contracts {
		responses = append(responses, contracts[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"contracts": responses})
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Get a paginated list of system audit logs
// @Tags Audit
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	offset := (page - 1) * perPage

	logs, total, err := h.auditService.List(c.Request.Context(), perPage, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": gin.H{"total": total, "page": page, "per_page": perPage}})
}

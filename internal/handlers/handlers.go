package handlers

import (
	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/internal/services"
	"github.com/lunaalencar/juridico-api/internal/storage"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Case        *CaseHandler
	Contract    *ContractHandler
	Installment *InstallmentHandler
	Ledger      *LedgerHandler
	Report      *ReportHandler
	Audit       *AuditHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, repos *repository.Repositories, storage *storage.LocalStorage) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Auth:        NewAuthHandler(svcs.Auth),
		Case:        NewCaseHandler(repos.Case, svcs.Contract),
		Contract:    NewContractHandler(svcs.Contract),
		Installment: NewInstallmentHandler(svcs.Collection),
		Ledger:      NewLedgerHandler(svcs.Ledger, storage),
		Report:      NewReportHandler(svcs.Report),
		Audit:       NewAuditHandler(svcs.Audit),
	}
}

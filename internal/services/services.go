package services

import (
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/config"
	"github.com/lunaalencar/juridico-api/internal/jobs"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

// Services holds all service instances
type Services struct {
	Auth       *AuthService
	Contract   *ContractService
	Collection *CollectionService
	Ledger     *LedgerService
	Report     *ReportService
	Audit      *AuditService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, cfg *config.Config, db *gorm.DB) *Services {
	auditSvc := NewAuditService(db, worker)
	collectionSvc := NewCollectionService(repos, auditSvc)
	ledgerSvc := NewLedgerService(repos.Ledger, auditSvc)

	return &Services{
		Auth:       NewAuthService(repos.User, cfg),
		Contract:   NewContractService(repos, auditSvc),
		Collection: collectionSvc,
		Ledger:     ledgerSvc,
		Report:     NewReportService(repos.Ledger, collectionSvc),
		Audit:      auditSvc,
	}
}

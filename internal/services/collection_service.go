package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/internal/statemachine"
	"github.com/lunaalencar/juridico-api/pkg/logger"
)

// Receivable is one pending installment annotated with overdue information
// as of the query date.
type Receivable struct {
	models.InstallmentResponse
	Overdue     bool `json:"overdue"`
	OverdueDays int  `json:"overdue_days"`
}

// CollectionService owns the pending to paid transition and keeps the
// installment book and the cash book consistent with each other.
type CollectionService struct {
	repos    *repository.Repositories
	auditSvc *AuditService
}

func NewCollectionService(repos *repository.Repositories, auditSvc *AuditService) *CollectionService {
	return &CollectionService{
		repos:    repos,
		auditSvc: auditSvc,
	}
}

func (s *CollectionService) FindByID(ctx context.Context, id uint) (*models.Installment, error) {
	installment, err := s.repos.Installment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return installment, nil
}

// Collect marks an installment paid and appends the matching inflow entry to
// the cash book, both inside one transaction. The status flip is a
// conditional update, so two concurrent collects race on the database row
// and exactly one wins; the loser gets ErrAlreadyPaid.
func (s *CollectionService) Collect(ctx context.Context, installmentID uint, method string, collectedOn time.Time, operatorID uint, ip, userAgent string) (*models.LedgerEntry, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: forma de pagamento %q", ErrValidation, method)
	}

	installment, err := s.FindByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}

	fsm := statemachine.NewInstallmentFSM(installment)
	if !fsm.Can(statemachine.EventCollect) {
		return nil, ErrAlreadyPaid
	}

	if collectedOn.IsZero() {
		collectedOn = time.Now()
	}

	entry := &models.LedgerEntry{
		Direction:     models.DirectionInflow,
		Description:   installmentDescription(installment),
		Amount:        installment.Amount,
		PaymentMethod: method,
		EntryType:     models.EntryTypeInstallment,
		OperatorID:    operatorID,
		ContractID:    &installment.ContractID,
		InstallmentID: &installment.ID,
		EntryDate:     collectedOn,
	}

	err = s.repos.Atomic(ctx, func(tx *repository.Repositories) error {
		won, err := tx.Installment.MarkPaidIfPending(ctx, installment.ID, collectedOn, installment.Amount, method, operatorID)
		if err != nil {
			return err
		}
		if !won {
			return ErrAlreadyPaid
		}
		return tx.Ledger.Create(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyPaid) {
			return nil, ErrAlreadyPaid
		}
		return nil, fmt.Errorf("falha ao registrar recebimento: %w", err)
	}

	if s.auditSvc != nil {
		details := fmt.Sprintf("amount=%s method=%s", installment.Amount, method)
		s.auditSvc.LogAsync(operatorID, "COLLECT", "Installment", installment.ID, details, ip, userAgent)
	}

	return entry, nil
}

// ListReceivables returns every pending installment ordered by due date,
// each annotated with its overdue state as of the given date.
func (s *CollectionService) ListReceivables(ctx context.Context, asOf time.Time) ([]Receivable, error) {
	installments, err := s.repos.Installment.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	receivables := make([]Receivable, 0, len(installments))
	for i := range installments {
		days := installments[i].OverdueDays(asOf)
		receivables = append(receivables, Receivable{
			InstallmentResponse: installments[i].ToResponse(),
			Overdue:             days > 0,
			OverdueDays:         days,
		})
	}
	return receivables, nil
}

// Reconcile re-posts cash entries for paid installments that have none.
// The unique index on caixa.installment_id makes a concurrent double run
// harmless, so the sweep can be scheduled without coordination.
func (s *CollectionService) Reconcile(ctx context.Context) (int, error) {
	missing, err := s.repos.Installment.FindPaidMissingLedger(ctx)
	if err != nil {
		return 0, err
	}

	posted := 0
	for i := range missing {
		inst := &missing[i]

		entryDate := time.Now()
		if inst.PaidAt != nil {
			entryDate = *inst.PaidAt
		}
		amount := inst.Amount
		if inst.PaidAmount != nil {
			amount = *inst.PaidAmount
		}
		method := models.PaymentMethodPix
		if inst.PaymentMethod != nil {
			method = *inst.PaymentMethod
		}
		var operatorID uint
		if inst.CollectedByUserID != nil {
			operatorID = *inst.CollectedByUserID
		}

		entry := &models.LedgerEntry{
			Direction:     models.DirectionInflow,
			Description:   installmentDescription(inst),
			Amount:        amount,
			PaymentMethod: method,
			EntryType:     models.EntryTypeInstallment,
			OperatorID:    operatorID,
			ContractID:    &inst.ContractID,
			InstallmentID: &inst.ID,
			EntryDate:     entryDate,
		}
		if err := s.repos.Ledger.Create(ctx, entry); err != nil {
			logger.Error("reconcile: entry create failed", "installment_id", inst.ID, "error", err)
			continue
		}
		posted++
	}

	if posted > 0 {
		logger.Info("reconcile: reposted missing cash entries", "count", posted)
	}
	return posted, nil
}

func installmentDescription(inst *models.Installment) string {
	caseName := inst.Contract.Case.DisplayName()
	return fmt.Sprintf("Recebimento Parcela %d/%d - %s", inst.SequenceNumber, inst.Contract.InstallmentCount, caseName)
}

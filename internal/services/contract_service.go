package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/billing"
	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
	"github.com/lunaalencar/juridico-api/pkg/logger"
)

// CreateContractInput carries the fields needed to open a fee agreement.
type CreateContractInput struct {
	CaseID            uint            `json:"case_id" binding:"required"`
	TotalAmount       decimal.Decimal `json:"total_amount" binding:"required"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	InstallmentCount  int             `json:"installment_count"`
	BillingMode       string          `json:"billing_mode"`
	FirstDueDate      time.Time       `json:"first_due_date" time_format:"2006-01-02"`
	DownPaymentMethod string          `json:"down_payment_method"`
}

type ContractService struct {
	repo     repository.ContractRepository
	caseRepo repository.CaseRepository
	repos    *repository.Repositories
	auditSvc *AuditService
}

func NewContractService(repos *repository.Repositories, auditSvc *AuditService) *ContractService {
	return &ContractService{
		repo:     repos.Contract,
		caseRepo: repos.Case,
		repos:    repos,
		auditSvc: auditSvc,
	}
}

func (s *ContractService) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	contract, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, query *repository.ListQuery) ([]models.Contract, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ContractService) FindByCase(ctx context.Context, caseID uint) ([]models.Contract, error) {
	return s.repo.FindByCase(ctx, caseID)
}

// Create validates the agreement, persists the contract together with its
// full installment schedule in one transaction, then posts the down-payment
// cash entry as a separate idempotent step. A failure on that last step
// leaves a valid contract behind; PostDownPayment can be called again.
func (s *ContractService) Create(ctx context.Context, input CreateContractInput, operatorID uint, ip, userAgent string) (*models.Contract, error) {
	if input.BillingMode == "" {
		input.BillingMode = models.BillingModeFixedSchedule
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	if _, err := s.caseRepo.FindByID(ctx, input.CaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: processo %d", ErrNotFound, input.CaseID)
		}
		return nil, err
	}

	contract := &models.Contract{
		CaseID:           input.CaseID,
		TotalAmount:      input.TotalAmount,
		DownPayment:      input.DownPayment,
		InstallmentCount: input.InstallmentCount,
		BillingMode:      input.BillingMode,
		FirstDueDate:     input.FirstDueDate,
		CreatedByUserID:  &operatorID,
	}

	var schedule []billing.ScheduleItem
	if input.BillingMode == models.BillingModeFixedSchedule {
		items, err := billing.GenerateSchedule(input.TotalAmount, input.DownPayment, input.InstallmentCount, input.FirstDueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		schedule = items
	}

	err := s.repos.Atomic(ctx, func(tx *repository.Repositories) error {
		if err := tx.Contract.Create(ctx, contract); err != nil {
			return err
		}
		installments := make([]models.Installment, 0, len(schedule))
		for _, item := range schedule {
			installments = append(installments, models.Installment{
				ContractID:     contract.ID,
				SequenceNumber: item.Sequence,
				Amount:         item.Amount,
				DueDate:        item.DueDate,
				Status:         models.InstallmentStatusPending,
			})
		}
		return tx.Installment.CreateBatch(ctx, installments)
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar contrato: %w", err)
	}

	if contract.DownPayment.IsPositive() {
		if _, err := s.PostDownPayment(ctx, contract.ID, input.DownPaymentMethod, operatorID); err != nil {
			logger.Error("down payment entry failed, contract kept",
				"contract_id", contract.ID, "error", err)
		}
	}

	if s.auditSvc != nil {
		details := fmt.Sprintf("total=%s down=%s count=%d", contract.TotalAmount, contract.DownPayment, contract.InstallmentCount)
		s.auditSvc.LogAsync(operatorID, "CREATE", "Contract", contract.ID, details, ip, userAgent)
	}

	return s.FindByID(ctx, contract.ID)
}

// PostDownPayment writes the entrada/sinal cash entry for a contract. Safe
// to call more than once: when the entry already exists it is returned as is.
func (s *ContractService) PostDownPayment(ctx context.Context, contractID uint, method string, operatorID uint) (*models.LedgerEntry, error) {
	contract, err := s.repo.FindByIDWithDetails(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !contract.DownPayment.IsPositive() {
		return nil, fmt.Errorf("%w: contrato sem entrada", ErrValidation)
	}

	existing, err := s.repos.Ledger.FindDownPaymentEntry(ctx, contractID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if method == "" {
		method = models.PaymentMethodPix
	}
	if !models.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: forma de pagamento %q", ErrValidation, method)
	}

	entry := &models.LedgerEntry{
		Direction:     models.DirectionInflow,
		Description:   fmt.Sprintf("Entrada de Honorários - %s", contract.Case.DisplayName()),
		Amount:        contract.DownPayment,
		PaymentMethod: method,
		EntryType:     models.EntryTypeDownPayment,
		OperatorID:    operatorID,
		ContractID:    &contract.ID,
		EntryDate:     time.Now(),
	}
	if err := s.repos.Ledger.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ContractService) validate(input CreateContractInput) error {
	if input.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: valor total negativo", ErrValidation)
	}
	if input.DownPayment.IsNegative() {
		return fmt.Errorf("%w: entrada negativa", ErrValidation)
	}
	if input.DownPayment.GreaterThan(input.TotalAmount) {
		return fmt.Errorf("%w: entrada maior que o valor total", ErrValidation)
	}
	switch input.BillingMode {
	case models.BillingModeFixedSchedule:
		balance := input.TotalAmount.Sub(input.DownPayment)
		if balance.IsPositive() {
			if input.InstallmentCount < 1 {
				return fmt.Errorf("%w: quantidade de parcelas deve ser ao menos 1", ErrValidation)
			}
			if input.FirstDueDate.IsZero() {
				return fmt.Errorf("%w: primeiro vencimento obrigatório", ErrValidation)
			}
		}
	case models.BillingModeRecurringPercentage:
		// no schedule is generated; collections are registered manually
	default:
		return fmt.Errorf("%w: modalidade %q desconhecida", ErrValidation, input.BillingMode)
	}
	return nil
}

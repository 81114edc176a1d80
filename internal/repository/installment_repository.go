package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
)

// InstallmentRepository defines the interface for installment data access
type InstallmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Installment, error)
	FindByContract(ctx context.Context, contractID uint) ([]models.Installment, error)
	CreateBatch(ctx context.Context, installments []models.Installment) error
	// MarkPaidIfPending performs the conditional pending to paid write. It
	// returns false when the row was already paid (or paid concurrently),
	// which callers must surface as an already-collected conflict.
	MarkPaidIfPending(ctx context.Context, id uint, paidAt time.Time, amount decimal.Decimal, method string, collectedBy uint) (bool, error)
	FindPending(ctx context.Context) ([]models.Installment, error)
	FindPaidMissingLedger(ctx context.Context) ([]models.Installment, error)
}

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepository {
	return &installmentRepository{db: db}
}

func (r *installmentRepository) FindByID(ctx context.Context, id uint) (*models.Installment, error) {
	var installment models.Installment
	err := r.db.WithContext(ctx).
		Preload("Contract.Case.Client").
		First(&installment, id).Error
	if err != nil {
		return nil, err
	}
	return &installment, nil
}

func (r *installmentRepository) FindByContract(ctx context.Context, contractID uint) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("sequence_number ASC").
		Find(&installments).Error
	return installments, err
}

func (r *installmentRepository) CreateBatch(ctx context.Context, installments []models.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&installments).Error
}

func (r *installmentRepository) MarkPaidIfPending(ctx context.Context, id uint, paidAt time.Time, amount decimal.Decimal, method string, collectedBy uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Installment{}).
		Where("id = ? AND paid_at IS NULL", id).
		Updates(map[string]interface{}{
			"status":               models.InstallmentStatusPaid,
			"paid_at":              paidAt,
			"paid_amount":          amount,
			"payment_method":       method,
			"collected_by_user_id": collectedBy,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindPending returns the receivables queue: every unpaid installment with
// its case/client loaded, oldest due date first, ties broken by sequence
// number then contract.
func (r *installmentRepository) FindPending(ctx context.Context) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Where("status = ?", models.InstallmentStatusPending).
		Order("due_date ASC, sequence_number ASC, contract_id ASC").
		Preload("Contract.Case.Client").
		Find(&installments).Error
	return installments, err
}

// FindPaidMissingLedger returns paid installments that have no matching cash
// ledger entry. Feeds the reconciliation sweep.
func (r *installmentRepository) FindPaidMissingLedger(ctx context.Context) ([]models.Installment, error) {
	var installments []models.Installment
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN caixa ON caixa.installment_id = parcelas.id").
		Where("parcelas.status = ? AND caixa.id IS NULL", models.InstallmentStatusPaid).
		Preload("Contract.Case.Client").
		Find(&installments).Error
	return installments, err
}

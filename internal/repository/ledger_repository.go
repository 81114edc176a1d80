package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
)

// LedgerRepository defines the interface for cash ledger data access.
// The ledger is append-only: entries are created, never updated or deleted,
// except for attaching a receipt path after upload.
type LedgerRepository interface {
	Create(ctx context.Context, entry *models.LedgerEntry) error
	FindByID(ctx context.Context, id uint) (*models.LedgerEntry, error)
	FindByInstallmentID(ctx context.Context, installmentID uint) (*models.LedgerEntry, error)
	FindDownPaymentEntry(ctx context.Context, contractID uint) (*models.LedgerEntry, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error)
	List(ctx context.Context, query *ListQuery) ([]models.LedgerEntry, int64, error)
	SetReceiptPath(ctx context.Context, id uint, path string) error
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ledgerRepository) FindByID(ctx context.Context, id uint) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) FindByInstallmentID(ctx context.Context, installmentID uint) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("installment_id = ?", installmentID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) FindDownPaymentEntry(ctx context.Context, contractID uint) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("contract_id = ? AND entry_type = ?", contractID, models.EntryTypeDownPayment).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("entry_date >= ? AND entry_date < ?", from, to).
		Order("entry_date ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepository) List(ctx context.Context, query *ListQuery) ([]models.LedgerEntry, int64, error) {
	var entries []models.LedgerEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&models.LedgerEntry{})

	if direction := query.Filters["direction"]; direction != "" {
		db = db.Where("direction = ?", direction)
	}
	if method := query.Filters["payment_method"]; method != "" {
		db = db.Where("payment_method = ?", method)
	}
	if query.Search != "" {
		db = db.Where("description ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("Operator").
		Order("entry_date DESC, id DESC").
		Limit(query.PerPage).
		Offset(query.Offset()).
		Find(&entries).Error
	return entries, total, err
}

func (r *ledgerRepository) SetReceiptPath(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Where("id = ?", id).
		Update("receipt_path", path).Error
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

// Summary aggregates the cash book over a half-open interval [From, To).
type Summary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Inflow     decimal.Decimal `json:"inflow"`
	Outflow    decimal.Decimal `json:"outflow"`
	Balance    decimal.Decimal `json:"balance"`
	EntryCount int             `json:"entry_count"`
}

// CashPoint is one day of the monthly cash chart.
type CashPoint struct {
	Date    string          `json:"date"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// ManualEntryInput carries a hand-registered cash movement.
type ManualEntryInput struct {
	Direction     string          `json:"direction" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	EntryDate     time.Time       `json:"entry_date" time_format:"2006-01-02"`
}

type LedgerService struct {
	repo     repository.LedgerRepository
	auditSvc *AuditService
}

func NewLedgerService(repo repository.LedgerRepository, auditSvc *AuditService) *LedgerService {
	return &LedgerService{
		repo:     repo,
		auditSvc: auditSvc,
	}
}

func (s *LedgerService) FindByID(ctx context.Context, id uint) (*models.LedgerEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *LedgerService) List(ctx context.Context, query *repository.ListQuery) ([]models.LedgerEntry, int64, error) {
	return s.repo.List(ctx, query)
}

// SummarizeEntries folds a set of entries into inflow, outflow and net
// balance. An empty set yields zeros.
func SummarizeEntries(entries []models.LedgerEntry) (inflow, outflow, balance decimal.Decimal) {
	inflow, outflow = decimal.Zero, decimal.Zero
	for i := range entries {
		switch entries[i].Direction {
		case models.DirectionInflow:
			inflow = inflow.Add(entries[i].Amount)
		case models.DirectionOutflow:
			outflow = outflow.Add(entries[i].Amount)
		}
	}
	return inflow, outflow, inflow.Sub(outflow)
}

// Summarize aggregates the cash book over [from, to).
func (s *LedgerService) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	entries, err := s.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	inflow, outflow, balance := SummarizeEntries(entries)
	return &Summary{
		From:       from,
		To:         to,
		Inflow:     inflow,
		Outflow:    outflow,
		Balance:    balance,
		EntryCount: len(entries),
	}, nil
}

// SummarizeDay aggregates a single calendar day.
func (s *LedgerService) SummarizeDay(ctx context.Context, day time.Time) (*Summary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.Summarize(ctx, from, from.AddDate(0, 0, 1))
}

// SummarizeMonth aggregates a calendar month.
func (s *LedgerService) SummarizeMonth(ctx context.Context, year int, month time.Month) (*Summary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return s.Summarize(ctx, from, from.AddDate(0, 1, 0))
}

// DailySeries returns one point per day of the month for the cash chart.
// Days without movement appear with zero values.
func (s *LedgerService) DailySeries(ctx context.Context, year int, month time.Month) ([]CashPoint, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	entries, err := s.repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	days := to.AddDate(0, 0, -1).Day()
	points := make([]CashPoint, days)
	for d := 0; d < days; d++ {
		points[d] = CashPoint{
			Date:    from.AddDate(0, 0, d).Format("2006-01-02"),
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
		}
	}

	for i := range entries {
		d := entries[i].EntryDate.Day() - 1
		if d < 0 || d >= days {
			continue
		}
		switch entries[i].Direction {
		case models.DirectionInflow:
			points[d].Inflow = points[d].Inflow.Add(entries[i].Amount)
		case models.DirectionOutflow:
			points[d].Outflow = points[d].Outflow.Add(entries[i].Amount)
		}
	}
	return points, nil
}

// RegisterManualEntry appends a hand-written movement to the cash book.
func (s *LedgerService) RegisterManualEntry(ctx context.Context, input ManualEntryInput, operatorID uint, ip, userAgent string) (*models.LedgerEntry, error) {
	if input.Direction != models.DirectionInflow && input.Direction != models.DirectionOutflow {
		return nil, fmt.Errorf("%w: direção %q", ErrValidation, input.Direction)
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, fmt.Errorf("%w: forma de pagamento %q", ErrValidation, input.PaymentMethod)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: valor deve ser positivo", ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: descrição obrigatória", ErrValidation)
	}
	if input.EntryDate.IsZero() {
		input.EntryDate = time.Now()
	}

	entry := &models.LedgerEntry{
		Direction:     input.Direction,
		Description:   input.Description,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		EntryType:     models.EntryTypeManual,
		OperatorID:    operatorID,
		EntryDate:     input.EntryDate,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if s.auditSvc != nil {
		details := fmt.Sprintf("direction=%s amount=%s", entry.Direction, entry.Amount)
		s.auditSvc.LogAsync(operatorID, "CREATE", "LedgerEntry", entry.ID, details, ip, userAgent)
	}
	return entry, nil
}

// AttachReceipt stores the uploaded receipt path on an entry.
func (s *LedgerService) AttachReceipt(ctx context.Context, id uint, path string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetReceiptPath(ctx, id, path)
}

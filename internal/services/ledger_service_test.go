package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

type mockLedgerRepo struct {
	repository.LedgerRepository
	mockCreate          func(ctx context.Context, entry *models.LedgerEntry) error
	mockFindByDateRange func(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error)
}

func (m *mockLedgerRepo) Create(ctx context.Context, entry *models.LedgerEntry) error {
	return m.mockCreate(ctx, entry)
}

func (m *mockLedgerRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
	return m.mockFindByDateRange(ctx, from, to)
}

func TestSummarizeEntries_EmptyIsZero(t *testing.T) {
	inflow, outflow, balance := SummarizeEntries(nil)

	assert.True(t, inflow.IsZero())
	assert.True(t, outflow.IsZero())
	assert.True(t, balance.IsZero())
}

func TestSummarizeEntries_Mixed(t *testing.T) {
	entries := []models.LedgerEntry{
		{Direction: models.DirectionInflow, Amount: decimal.RequireFromString("300.00")},
		{Direction: models.DirectionInflow, Amount: decimal.RequireFromString("150.50")},
		{Direction: models.DirectionOutflow, Amount: decimal.RequireFromString("100.00")},
	}

	inflow, outflow, balance := SummarizeEntries(entries)

	assert.Equal(t, "450.50", inflow.StringFixed(2))
	assert.Equal(t, "100.00", outflow.StringFixed(2))
	assert.Equal(t, "350.50", balance.StringFixed(2))
}

func TestLedgerService_SummarizeDay(t *testing.T) {
	var gotFrom, gotTo time.Time
	mockRepo := &mockLedgerRepo{
		mockFindByDateRange: func(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
			gotFrom, gotTo = from, to
			return []models.LedgerEntry{
				{Direction: models.DirectionInflow, Amount: decimal.RequireFromString("200.00")},
			}, nil
		},
	}
	service := NewLedgerService(mockRepo, nil)

	day := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	summary, err := service.SummarizeDay(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), gotTo)
	assert.Equal(t, "200.00", summary.Inflow.StringFixed(2))
	assert.Equal(t, 1, summary.EntryCount)
}

func TestLedgerService_DailySeries(t *testing.T) {
	mockRepo := &mockLedgerRepo{
		mockFindByDateRange: func(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
			return []models.LedgerEntry{
				{Direction: models.DirectionInflow, Amount: decimal.RequireFromString("100.00"), EntryDate: time.Date(2026, time.April, 3, 10, 0, 0, 0, time.UTC)},
				{Direction: models.DirectionInflow, Amount: decimal.RequireFromString("50.00"), EntryDate: time.Date(2026, time.April, 3, 16, 0, 0, 0, time.UTC)},
				{Direction: models.DirectionOutflow, Amount: decimal.RequireFromString("30.00"), EntryDate: time.Date(2026, time.April, 20, 9, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	service := NewLedgerService(mockRepo, nil)

	points, err := service.DailySeries(context.Background(), 2026, time.April)
	require.NoError(t, err)
	require.Len(t, points, 30)

	assert.Equal(t, "2026-04-03", points[2].Date)
	assert.Equal(t, "150.00", points[2].Inflow.StringFixed(2))
	assert.Equal(t, "30.00", points[19].Outflow.StringFixed(2))
	assert.True(t, points[0].Inflow.IsZero(), "days without movement stay zero")
}

func TestLedgerService_RegisterManualEntry(t *testing.T) {
	var created *models.LedgerEntry
	mockRepo := &mockLedgerRepo{
		mockCreate: func(ctx context.Context, entry *models.LedgerEntry) error {
			created = entry
			return nil
		},
	}
	service := NewLedgerService(mockRepo, nil)

	input := ManualEntryInput{
		Direction:     models.DirectionOutflow,
		Description:   "Custas judiciais",
		Amount:        decimal.RequireFromString("85.00"),
		PaymentMethod: models.PaymentMethodCash,
	}

	entry, err := service.RegisterManualEntry(context.Background(), input, 3, "", "")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, models.EntryTypeManual, entry.EntryType)
	assert.Equal(t, uint(3), entry.OperatorID)
	assert.False(t, entry.EntryDate.IsZero(), "entry date defaults to now")
}

func TestLedgerService_RegisterManualEntry_Validation(t *testing.T) {
	service := NewLedgerService(&mockLedgerRepo{}, nil)

	cases := []ManualEntryInput{
		{Direction: "sideways", Description: "x", Amount: decimal.New(1, 0), PaymentMethod: models.PaymentMethodPix},
		{Direction: models.DirectionInflow, Description: "x", Amount: decimal.New(1, 0), PaymentMethod: "cheque"},
		{Direction: models.DirectionInflow, Description: "x", Amount: decimal.Zero, PaymentMethod: models.PaymentMethodPix},
		{Direction: models.DirectionInflow, Description: "", Amount: decimal.New(1, 0), PaymentMethod: models.PaymentMethodPix},
	}

	for _, input := range cases {
		_, err := service.RegisterManualEntry(context.Background(), input, 3, "", "")
		assert.ErrorIs(t, err, ErrValidation)
	}
}

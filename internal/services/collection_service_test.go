package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

type mockInstallmentRepo struct {
	repository.InstallmentRepository
	mockFindByID    func(ctx context.Context, id uint) (*models.Installment, error)
	mockFindPending func(ctx context.Context) ([]models.Installment, error)
}

func (m *mockInstallmentRepo) FindByID(ctx context.Context, id uint) (*models.Installment, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockInstallmentRepo) FindPending(ctx context.Context) ([]models.Installment, error) {
	return m.mockFindPending(ctx)
}

func TestCollectionService_Collect_AlreadyPaid(t *testing.T) {
	paidAt := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	mockRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return &models.Installment{
				ID:     id,
				Status: models.InstallmentStatusPaid,
				PaidAt: &paidAt,
			}, nil
		},
	}
	service := NewCollectionService(&repository.Repositories{Installment: mockRepo}, nil)

	entry, err := service.Collect(context.Background(), 1, models.PaymentMethodPix, time.Time{}, 7, "", "")
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCollectionService_Collect_NotFound(t *testing.T) {
	mockRepo := &mockInstallmentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Installment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewCollectionService(&repository.Repositories{Installment: mockRepo}, nil)

	entry, err := service.Collect(context.Background(), 99, models.PaymentMethodCash, time.Time{}, 7, "", "")
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionService_Collect_InvalidMethod(t *testing.T) {
	service := NewCollectionService(&repository.Repositories{}, nil)

	entry, err := service.Collect(context.Background(), 1, "cheque", time.Time{}, 7, "", "")
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCollectionService_ListReceivables_AnnotatesOverdue(t *testing.T) {
	asOf := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	mockRepo := &mockInstallmentRepo{
		mockFindPending: func(ctx context.Context) ([]models.Installment, error) {
			return []models.Installment{
				{
					ID:             1,
					SequenceNumber: 1,
					Status:         models.InstallmentStatusPending,
					DueDate:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
					Amount:         decimal.RequireFromString("300.00"),
				},
				{
					ID:             2,
					SequenceNumber: 2,
					Status:         models.InstallmentStatusPending,
					DueDate:        time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
					Amount:         decimal.RequireFromString("300.00"),
				},
			}, nil
		},
	}
	service := NewCollectionService(&repository.Repositories{Installment: mockRepo}, nil)

	receivables, err := service.ListReceivables(context.Background(), asOf)
	require.NoError(t, err)
	require.Len(t, receivables, 2)

	assert.True(t, receivables[0].Overdue)
	assert.Equal(t, 5, receivables[0].OverdueDays)

	assert.False(t, receivables[1].Overdue)
	assert.Equal(t, 0, receivables[1].OverdueDays)
}

func TestCollectionService_ListReceivables_Empty(t *testing.T) {
	mockRepo := &mockInstallmentRepo{
		mockFindPending: func(ctx context.Context) ([]models.Installment, error) {
			return nil, nil
		},
	}
	service := NewCollectionService(&repository.Repositories{Installment: mockRepo}, nil)

	receivables, err := service.ListReceivables(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, receivables)
}

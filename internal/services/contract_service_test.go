package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lunaalencar/juridico-api/internal/models"
	"github.com/lunaalencar/juridico-api/internal/repository"
)

func TestContractService_Create_Validation(t *testing.T) {
	service := NewContractService(&repository.Repositories{}, nil)
	firstDue := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input CreateContractInput
	}{
		{
			name: "negative total",
			input: CreateContractInput{
				CaseID:      1,
				TotalAmount: decimal.RequireFromString("-100.00"),
			},
		},
		{
			name: "down payment above total",
			input: CreateContractInput{
				CaseID:      1,
				TotalAmount: decimal.RequireFromString("100.00"),
				DownPayment: decimal.RequireFromString("200.00"),
			},
		},
		{
			name: "fixed schedule without installments",
			input: CreateContractInput{
				CaseID:           1,
				TotalAmount:      decimal.RequireFromString("1000.00"),
				InstallmentCount: 0,
				FirstDueDate:     firstDue,
			},
		},
		{
			name: "fixed schedule without first due date",
			input: CreateContractInput{
				CaseID:           1,
				TotalAmount:      decimal.RequireFromString("1000.00"),
				InstallmentCount: 10,
			},
		},
		{
			name: "unknown billing mode",
			input: CreateContractInput{
				CaseID:      1,
				TotalAmount: decimal.RequireFromString("1000.00"),
				BillingMode: "hourly",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contract, err := service.Create(context.Background(), tc.input, 1, "", "")
			assert.Nil(t, contract)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestContractService_Create_DefaultsToFixedSchedule(t *testing.T) {
	service := NewContractService(&repository.Repositories{}, nil)

	// billing mode left empty: the fixed-schedule rules must apply
	input := CreateContractInput{
		CaseID:           1,
		TotalAmount:      decimal.RequireFromString("1000.00"),
		InstallmentCount: 0,
	}
	_, err := service.Create(context.Background(), input, 1, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContractService_RecurringModeSkipsScheduleRules(t *testing.T) {
	service := NewContractService(&repository.Repositories{}, nil)

	// recurring contracts carry no schedule, so count/first due are not required;
	// validation passes and the next failure is the missing case lookup
	input := CreateContractInput{
		CaseID:      1,
		TotalAmount: decimal.RequireFromString("1000.00"),
		BillingMode: models.BillingModeRecurringPercentage,
	}
	err := service.validate(input)
	assert.NoError(t, err)
}

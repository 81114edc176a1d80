package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstallment_OverdueDays(t *testing.T) {
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	inst := &Installment{Status: InstallmentStatusPending, DueDate: due}

	assert.Equal(t, 0, inst.OverdueDays(due), "not overdue on the due date itself")
	assert.Equal(t, 3, inst.OverdueDays(due.AddDate(0, 0, 3)))
	assert.Equal(t, 0, inst.OverdueDays(due.AddDate(0, 0, -3)), "future installments clamp to zero")
}

func TestInstallment_OverdueDays_PaidIsNeverOverdue(t *testing.T) {
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	paidAt := due.AddDate(0, 0, 1)
	inst := &Installment{Status: InstallmentStatusPaid, DueDate: due, PaidAt: &paidAt}

	assert.Equal(t, 0, inst.OverdueDays(due.AddDate(0, 0, 30)))
}

func TestInstallment_IsPaid(t *testing.T) {
	assert.False(t, (&Installment{Status: InstallmentStatusPending}).IsPaid())
	assert.True(t, (&Installment{Status: InstallmentStatusPaid}).IsPaid())

	// a paid_at timestamp alone counts, whatever the status column says
	now := time.Now()
	assert.True(t, (&Installment{Status: InstallmentStatusPending, PaidAt: &now}).IsPaid())
}

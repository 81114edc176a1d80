package statemachine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaalencar/juridico-api/internal/models"
)

func TestInstallmentFSM_Collect(t *testing.T) {
	inst := &models.Installment{ID: 1, Status: models.InstallmentStatusPending}
	fsm := NewInstallmentFSM(inst)

	require.True(t, fsm.Can(EventCollect))
	require.NoError(t, fsm.Collect(context.Background()))

	assert.Equal(t, models.InstallmentStatusPaid, inst.Status)
	assert.Equal(t, models.InstallmentStatusPaid, fsm.Current())
}

func TestInstallmentFSM_PaidIsTerminal(t *testing.T) {
	inst := &models.Installment{ID: 1, Status: models.InstallmentStatusPaid}
	fsm := NewInstallmentFSM(inst)

	assert.False(t, fsm.Can(EventCollect))
	assert.Error(t, fsm.Collect(context.Background()))
}

func TestInstallmentFSM_PaidAtAloneBlocksCollect(t *testing.T) {
	paidAt := time.Now()
	inst := &models.Installment{ID: 1, Status: models.InstallmentStatusPending, PaidAt: &paidAt}
	fsm := NewInstallmentFSM(inst)

	assert.Error(t, fsm.Collect(context.Background()))
}

package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/lunaalencar/juridico-api/internal/models"
)

// EventCollect is the single event the installment machine understands.
const EventCollect = "collect"

// InstallmentFSM wraps an installment with its state machine. The machine is
// deliberately small: pending to paid on collect, and paid is terminal. There
// is no reversal, cancellation or partial payment.
type InstallmentFSM struct {
	installment *models.Installment
	fsm         *fsm.FSM
}

// NewInstallmentFSM creates a state machine seeded from the installment's
// current status.
func NewInstallmentFSM(installment *models.Installment) *InstallmentFSM {
	ifsm := &InstallmentFSM{
		installment: installment,
	}

	ifsm.fsm = fsm.NewFSM(
		installment.Status,
		fsm.Events{
			{Name: EventCollect, Src: []string{models.InstallmentStatusPending}, Dst: models.InstallmentStatusPaid},
		},
		fsm.Callbacks{},
	)

	return ifsm
}

// Collect transitions the installment to paid
func (i *InstallmentFSM) Collect(ctx context.Context) error {
	if i.installment.IsPaid() {
		return fmt.Errorf("installment %d is already paid", i.installment.ID)
	}

	if err := i.fsm.Event(ctx, EventCollect); err != nil {
		return fmt.Errorf("failed to collect installment: %w", err)
	}

	i.installment.Status = i.fsm.Current()
	return nil
}

// Current returns the current state
func (i *InstallmentFSM) Current() string {
	return i.fsm.Current()
}

// Can checks if a transition is possible
func (i *InstallmentFSM) Can(event string) bool {
	return i.fsm.Can(event)
}

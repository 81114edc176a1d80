package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleItem is one generated installment before persistence.
type ScheduleItem struct {
	Sequence int
	DueDate  time.Time
	Amount   decimal.Decimal
}

// GenerateSchedule builds the installment sequence for a contract. The
// financed balance is total minus downPayment; when the down payment covers
// the whole fee there is nothing to schedule and the result is empty.
// Installment i falls due i calendar months after firstDue.
func GenerateSchedule(total, downPayment decimal.Decimal, count int, firstDue time.Time) ([]ScheduleItem, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("contract total must be >= 0, got %s", total)
	}
	if downPayment.IsNegative() {
		return nil, fmt.Errorf("down payment must be >= 0, got %s", downPayment)
	}
	if downPayment.GreaterThan(total) {
		return nil, fmt.Errorf("down payment %s exceeds contract total %s", downPayment, total)
	}

	balance := total.Sub(downPayment)
	if balance.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	if count < 1 {
		return nil, fmt.Errorf("installment count must be >= 1, got %d", count)
	}

	amounts, err := Allocate(balance, count)
	if err != nil {
		return nil, err
	}

	items := make([]ScheduleItem, count)
	for i := 0; i < count; i++ {
		items[i] = ScheduleItem{
			Sequence: i + 1,
			DueDate:  AddMonths(firstDue, i),
			Amount:   amounts[i],
		}
	}

	return items, nil
}

// AddMonths steps t forward by calendar months, preserving the day of month
// when the target month has it and clamping to the month's last day
// otherwise (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

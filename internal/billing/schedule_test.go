package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSchedule_SumEqualsBalance(t *testing.T) {
	total := decimal.RequireFromString("5000.00")
	down := decimal.RequireFromString("500.00")

	items, err := GenerateSchedule(total, down, 12, date(2026, time.March, 10))
	require.NoError(t, err)
	require.Len(t, items, 12)

	sum := decimal.Zero
	for i, item := range items {
		assert.Equal(t, i+1, item.Sequence)
		sum = sum.Add(item.Amount)
	}
	assert.True(t, sum.Equal(total.Sub(down)), "schedule sum %s != balance %s", sum, total.Sub(down))
}

func TestGenerateSchedule_MonthlyDueDates(t *testing.T) {
	items, err := GenerateSchedule(decimal.RequireFromString("300.00"), decimal.Zero, 3, date(2026, time.March, 10))
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.March, 10), items[0].DueDate)
	assert.Equal(t, date(2026, time.April, 10), items[1].DueDate)
	assert.Equal(t, date(2026, time.May, 10), items[2].DueDate)
}

func TestGenerateSchedule_EndOfMonthClamp(t *testing.T) {
	items, err := GenerateSchedule(decimal.RequireFromString("400.00"), decimal.Zero, 4, date(2026, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.January, 31), items[0].DueDate)
	// 2026 is not a leap year
	assert.Equal(t, date(2026, time.February, 28), items[1].DueDate)
	assert.Equal(t, date(2026, time.March, 31), items[2].DueDate)
	assert.Equal(t, date(2026, time.April, 30), items[3].DueDate)
}

func TestGenerateSchedule_LeapFebruary(t *testing.T) {
	items, err := GenerateSchedule(decimal.RequireFromString("200.00"), decimal.Zero, 2, date(2028, time.January, 31))
	require.NoError(t, err)

	assert.Equal(t, date(2028, time.February, 29), items[1].DueDate)
}

func TestGenerateSchedule_DownPaymentCoversTotal(t *testing.T) {
	total := decimal.RequireFromString("1000.00")

	items, err := GenerateSchedule(total, total, 6, date(2026, time.March, 1))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	total := decimal.RequireFromString("1000.00")

	_, err := GenerateSchedule(total, decimal.RequireFromString("1500.00"), 3, date(2026, time.March, 1))
	assert.Error(t, err, "down payment above total")

	_, err = GenerateSchedule(total, decimal.RequireFromString("-10.00"), 3, date(2026, time.March, 1))
	assert.Error(t, err, "negative down payment")

	_, err = GenerateSchedule(decimal.RequireFromString("-1.00"), decimal.Zero, 3, date(2026, time.March, 1))
	assert.Error(t, err, "negative total")

	_, err = GenerateSchedule(total, decimal.Zero, 0, date(2026, time.March, 1))
	assert.Error(t, err, "zero installments with positive balance")
}

func TestAddMonths_PreservesDayWhenPossible(t *testing.T) {
	assert.Equal(t, date(2026, time.December, 15), AddMonths(date(2026, time.November, 15), 1))
	assert.Equal(t, date(2027, time.January, 15), AddMonths(date(2026, time.November, 15), 2))
}

func TestAddMonths_ClampsToShorterMonth(t *testing.T) {
	assert.Equal(t, date(2026, time.April, 30), AddMonths(date(2026, time.March, 31), 1))
	assert.Equal(t, date(2026, time.February, 28), AddMonths(date(2025, time.December, 31), 2))
}

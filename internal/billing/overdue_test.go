package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverdueDays_Boundary(t *testing.T) {
	due := date(2026, time.March, 10)

	assert.Equal(t, 0, OverdueDays(due, date(2026, time.March, 10)), "due today is not overdue")
	assert.Equal(t, 1, OverdueDays(due, date(2026, time.March, 11)))
	assert.Equal(t, 31, OverdueDays(due, date(2026, time.April, 10)))
	assert.Equal(t, -5, OverdueDays(due, date(2026, time.March, 5)), "future due dates are negative")
}

func TestOverdueDays_IgnoresClock(t *testing.T) {
	due := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	asOf := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, OverdueDays(due, asOf))
}

func TestIsOverdue(t *testing.T) {
	due := date(2026, time.March, 10)

	assert.False(t, IsOverdue(due, date(2026, time.March, 10)))
	assert.True(t, IsOverdue(due, date(2026, time.March, 11)))
	assert.False(t, IsOverdue(due, date(2026, time.March, 9)))
}

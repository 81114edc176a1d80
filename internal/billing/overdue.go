package billing

import "time"

// OverdueDays returns how many whole calendar days an installment due on due
// is past asOf. Zero or negative means on time. Clock components are ignored:
// an installment due today is not overdue until tomorrow.
func OverdueDays(due, asOf time.Time) int {
	dueDay := truncateToDay(due)
	asOfDay := truncateToDay(asOf)

	days := int(asOfDay.Sub(dueDay).Hours() / 24)
	if days < 0 {
		return days
	}
	return days
}

// IsOverdue reports whether due has passed as of asOf.
func IsOverdue(due, asOf time.Time) bool {
	return OverdueDays(due, asOf) > 0
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

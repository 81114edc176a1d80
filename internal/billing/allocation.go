// Package billing holds the pure money and date arithmetic behind fee
// contracts: splitting a balance into exact-cent installments, stepping due
// dates by calendar months and deriving overdue state. Nothing here touches
// the database.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocate splits total into count amounts that sum back to total exactly.
// Every element is the per-installment base, rounded half-up to the cent,
// except the last one, which absorbs the rounding remainder.
func Allocate(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, fmt.Errorf("allocation count must be >= 1, got %d", count)
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("allocation total must be >= 0, got %s", total)
	}

	if count == 1 {
		return []decimal.Decimal{total}, nil
	}

	countDec := decimal.NewFromInt(int64(count))
	base := total.DivRound(countDec, 2)
	remainder := total.Sub(base.Mul(countDec))

	amounts := make([]decimal.Decimal, count)
	for i := 0; i < count-1; i++ {
		amounts[i] = base
	}
	amounts[count-1] = base.Add(remainder)

	return amounts, nil
}

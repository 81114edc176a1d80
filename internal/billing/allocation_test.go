package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_SumsBackToTotal(t *testing.T) {
	cases := []struct {
		total string
		count int
	}{
		{"1000.00", 3},
		{"100.00", 7},
		{"0.01", 2},
		{"999.99", 12},
		{"3500.00", 10},
		{"0.00", 5},
	}

	for _, tc := range cases {
		total := decimal.RequireFromString(tc.total)
		amounts, err := Allocate(total, tc.count)
		require.NoError(t, err)
		require.Len(t, amounts, tc.count)

		sum := decimal.Zero
		for _, a := range amounts {
			sum = sum.Add(a)
		}
		assert.True(t, sum.Equal(total), "sum %s != total %s for count %d", sum, total, tc.count)
	}
}

func TestAllocate_LastAbsorbsRemainder(t *testing.T) {
	amounts, err := Allocate(decimal.RequireFromString("1000.00"), 3)
	require.NoError(t, err)

	assert.Equal(t, "333.33", amounts[0].StringFixed(2))
	assert.Equal(t, "333.33", amounts[1].StringFixed(2))
	assert.Equal(t, "333.34", amounts[2].StringFixed(2))
}

func TestAllocate_CentsOnly(t *testing.T) {
	amounts, err := Allocate(decimal.RequireFromString("100.00"), 7)
	require.NoError(t, err)

	for _, a := range amounts {
		assert.True(t, a.Equal(a.Round(2)), "amount %s has sub-cent precision", a)
	}
}

func TestAllocate_SingleInstallment(t *testing.T) {
	amounts, err := Allocate(decimal.RequireFromString("123.45"), 1)
	require.NoError(t, err)
	require.Len(t, amounts, 1)
	assert.Equal(t, "123.45", amounts[0].StringFixed(2))
}

func TestAllocate_InvalidInput(t *testing.T) {
	_, err := Allocate(decimal.RequireFromString("100.00"), 0)
	assert.Error(t, err)

	_, err = Allocate(decimal.RequireFromString("-1.00"), 3)
	assert.Error(t, err)
}

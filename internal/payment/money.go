package payment

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)

	ErrAmountOutOfRange = errors.New("amount is out of range")
	ErrAmountBelowMinor = errors.New("amount is smaller than one minor unit")
)

// ToMinorUnits converts an amount in major units to minor units
// (12.34 -> 1234). Fractions of a minor unit round half away from zero.
// Amounts that round to zero or do not fit in an int64 are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Mul(hundred).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, ErrAmountOutOfRange
	}
	if minor.IsZero() {
		return 0, ErrAmountBelowMinor
	}
	return minor.IntPart(), nil
}

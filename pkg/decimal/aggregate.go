package decimal

import "fmt"

// Sum returns the sum of ds, or 0 when ds is empty.
func Sum(ds ...Decimal) Decimal {
	var acc Decimal
	for _, d := range ds {
		acc = acc.Add(d)
	}
	return acc
}

// Avg returns the arithmetic mean of ds truncated toward zero after the given
// number of fractional digits. It returns ErrDivisionByZero when ds is empty.
func Avg(digits int, ds ...Decimal) (Decimal, error) {
	if len(ds) == 0 {
		return Decimal{}, fmt.Errorf("average of no values: %w", ErrDivisionByZero)
	}
	return Sum(ds...).Div(NewFromInt(int64(len(ds))), digits)
}

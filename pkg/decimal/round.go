package decimal

import (
	"fmt"
	"strings"
)

// RoundingMode selects how digits beyond a cutoff are discarded.
type RoundingMode int

const (
	// RoundHalfUp rounds away from zero when the first discarded digit is 5 or greater.
	RoundHalfUp RoundingMode = iota
	// RoundDown discards the extra digits (truncation toward zero).
	RoundDown
)

// ParseRoundingMode accepts "round" (also "half-up", "half_up") and
// "truncate" (also "down"), case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round", "half-up", "half_up":
		return RoundHalfUp, nil
	case "truncate", "down":
		return RoundDown, nil
	}
	return RoundHalfUp, fmt.Errorf("%w: %q", ErrInvalidRoundingMode, s)
}

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfUp:
		return "round"
	case RoundDown:
		return "truncate"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m RoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, which also lets env
// parsers fill RoundingMode fields.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Round returns d limited to the given number of fractional digits.
// Negative digits are treated as 0. Any mode other than RoundDown rounds half up.
//
// Rounding may carry into the integer part: 9.99 rounded to one digit is 10.
func (d Decimal) Round(digits int, mode RoundingMode) Decimal {
	digits = max(digits, 0)
	if d.scale <= digits {
		return d
	}
	cut := d.scale - digits
	c := d.digits()
	if len(c) <= cut {
		c = zeros(cut+1-len(c)) + c
	}
	kept, next := c[:len(c)-cut], c[len(c)-cut]
	if mode != RoundDown && next >= '5' {
		kept = addDigits(kept, "1")
	}
	return newDecimal(d.neg, kept, digits)
}

// ToFixed renders d rounded half up with exactly the given number of
// fractional digits, padding with trailing zeros.
func (d Decimal) ToFixed(digits int) string {
	return d.ToFixedMode(digits, RoundHalfUp)
}

// ToFixedMode is like ToFixed with an explicit rounding mode.
// A result that rounds to zero is rendered without a minus sign.
func (d Decimal) ToFixedMode(digits int, mode RoundingMode) string {
	digits = max(digits, 0)
	r := d.Round(digits, mode)
	s := r.String()
	if digits == 0 {
		return s
	}
	if r.scale == 0 {
		s += "."
	}
	return s + zeros(digits-r.scale)
}

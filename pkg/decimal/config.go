package decimal

import "fmt"

// Config holds the defaults applied when callers do not pass explicit
// precision arguments. It is designed to be filled from the environment
// with the config package.
type Config struct {
	DivisionDigits int          `env:"DECIMAL_DIVISION_DIGITS" envDefault:"20"` // DivisionDigits is the number of fractional digits kept by Div.
	FixedDigits    int          `env:"DECIMAL_FIXED_DIGITS" envDefault:"2"`     // FixedDigits is the fractional width used by Fixed.
	Rounding       RoundingMode `env:"DECIMAL_ROUNDING" envDefault:"round"`     // Rounding is either "round" (half up) or "truncate".
}

// DefaultConfig returns the configuration matching the package defaults.
func DefaultConfig() Config {
	return Config{
		DivisionDigits: DefaultDivisionDigits,
		FixedDigits:    2,
		Rounding:       RoundHalfUp,
	}
}

func (c Config) Validate() error {
	switch {
	case c.DivisionDigits < 0:
		return fmt.Errorf("%w: division digits must not be negative, got %d", ErrInvalidConfig, c.DivisionDigits)
	case c.FixedDigits < 0:
		return fmt.Errorf("%w: fixed digits must not be negative, got %d", ErrInvalidConfig, c.FixedDigits)
	case c.Rounding != RoundHalfUp && c.Rounding != RoundDown:
		return fmt.Errorf("%w: %w: %v", ErrInvalidConfig, ErrInvalidRoundingMode, c.Rounding)
	}
	return nil
}

// Div divides a by b keeping c.DivisionDigits fractional digits.
func (c Config) Div(a, b Decimal) (Decimal, error) {
	return a.Div(b, c.DivisionDigits)
}

// Round limits d to c.FixedDigits fractional digits using c.Rounding.
func (c Config) Round(d Decimal) Decimal {
	return d.Round(c.FixedDigits, c.Rounding)
}

// Fixed renders d with exactly c.FixedDigits fractional digits using c.Rounding.
func (c Config) Fixed(d Decimal) string {
	return d.ToFixedMode(c.FixedDigits, c.Rounding)
}

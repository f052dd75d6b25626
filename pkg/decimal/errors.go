package decimal

import "errors"

var (
	// ErrInvalidFormat is returned when the input text is not a signed decimal
	// with an optional exponent.
	ErrInvalidFormat = errors.New("invalid decimal format")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidRoundingMode is returned when a rounding mode name is not recognized.
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")

	// ErrUnsupportedType is returned when a database or document driver hands over
	// a value that cannot be converted to a decimal.
	ErrUnsupportedType = errors.New("unsupported source type for decimal")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid decimal config")
)

package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/numkit/pkg/decimal"
)

// Plain non-negative amount with at most two fractional digits.
var currencyAmountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// DecimalString validates that value parses as a decimal number.
func DecimalString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := decimal.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a decimal number",
			TranslationKey: "validation.decimal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func DecimalPositive(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: value.IsPositive,
		Error: ValidationError{
			Field:          field,
			Message:        "must be positive",
			TranslationKey: "validation.decimal_positive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func DecimalNonNegative(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsNegative()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "cannot be negative",
			TranslationKey: "validation.decimal_non_negative",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DecimalRange validates min <= value <= max. Bounds are inclusive.
func DecimalRange(field string, value, min, max decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.Cmp(min) >= 0 && value.Cmp(max) <= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %s and %s", min, max),
			TranslationKey: "validation.decimal_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min.String(),
				"max":   max.String(),
			},
		},
	}
}

// DecimalMin validates value >= min.
func DecimalMin(field string, value, min decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.Cmp(min) >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %s", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min.String(),
			},
		},
	}
}

// DecimalMax validates value <= max.
func DecimalMax(field string, value, max decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.Cmp(max) <= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %s", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max.String(),
			},
		},
	}
}

// DecimalMaxScale validates that value has at most maxScale fractional digits
// in canonical form, so "1.50" has scale 1.
func DecimalMaxScale(field string, value decimal.Decimal, maxScale int) Rule {
	return Rule{
		Check: func() bool {
			return value.Scale() <= maxScale
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have at most %d decimal places", maxScale),
			TranslationKey: "validation.decimal_max_scale",
			TranslationValues: map[string]any{
				"field":     field,
				"max_scale": maxScale,
			},
		},
	}
}

// CurrencyAmount validates the textual form of a money amount: digits only,
// no sign or exponent, and one or two fractional digits when a point is present.
func CurrencyAmount(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return currencyAmountRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a non-negative amount with at most 2 decimal places",
			TranslationKey: "validation.currency_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numkit/pkg/decimal"
	"github.com/dmitrymomot/numkit/pkg/validator"
)

func TestDecimalString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "12.5", want: true},
		{value: "-0.001", want: true},
		{value: ".5", want: true},
		{value: "1e3", want: true},
		{value: "", want: false},
		{value: "1.2.3", want: false},
		{value: "abc", want: false},
		{value: "1,000", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			rule := validator.DecimalString("amount", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "validation.decimal", rule.Error.TranslationKey)
		})
	}
}

func TestDecimalSignRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value       string
		positive    bool
		nonNegative bool
	}{
		{value: "0.01", positive: true, nonNegative: true},
		{value: "0", positive: false, nonNegative: true},
		{value: "-0.00", positive: false, nonNegative: true},
		{value: "-0.01", positive: false, nonNegative: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			d := decimal.MustParse(tt.value)
			assert.Equal(t, tt.positive, validator.DecimalPositive("amount", d).Check())
			assert.Equal(t, tt.nonNegative, validator.DecimalNonNegative("amount", d).Check())
		})
	}
}

func TestDecimalRange(t *testing.T) {
	t.Parallel()

	lo := decimal.MustParse("-1.5")
	hi := decimal.MustParse("100")

	tests := []struct {
		value string
		want  bool
	}{
		{value: "-1.5", want: true},
		{value: "100.0", want: true},
		{value: "42.42", want: true},
		{value: "-1.50001", want: false},
		{value: "100.000000000000000000001", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			rule := validator.DecimalRange("amount", decimal.MustParse(tt.value), lo, hi)
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	rule := validator.DecimalRange("amount", decimal.Decimal{}, lo, hi)
	assert.Equal(t, "must be between -1.5 and 100", rule.Error.Message)
	assert.Equal(t, "-1.5", rule.Error.TranslationValues["min"])
	assert.Equal(t, "100", rule.Error.TranslationValues["max"])
}

func TestDecimalMinMax(t *testing.T) {
	t.Parallel()

	bound := decimal.MustParse("0.5")

	assert.True(t, validator.DecimalMin("rate", decimal.MustParse("0.50"), bound).Check())
	assert.True(t, validator.DecimalMin("rate", decimal.MustParse("7"), bound).Check())
	assert.False(t, validator.DecimalMin("rate", decimal.MustParse("0.4999"), bound).Check())

	assert.True(t, validator.DecimalMax("rate", decimal.MustParse("0.5"), bound).Check())
	assert.True(t, validator.DecimalMax("rate", decimal.MustParse("-7"), bound).Check())
	assert.False(t, validator.DecimalMax("rate", decimal.MustParse("0.5001"), bound).Check())

	assert.Equal(t, "must be at least 0.5", validator.DecimalMin("rate", bound, bound).Error.Message)
	assert.Equal(t, "must be at most 0.5", validator.DecimalMax("rate", bound, bound).Error.Message)
}

func TestDecimalMaxScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "1", want: true},
		{value: "1.25", want: true},
		{value: "1.2500", want: true},
		{value: "1.255", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.DecimalMaxScale("price", decimal.MustParse(tt.value), 2).Check())
		})
	}
}

func TestCurrencyAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{value: "0", want: true},
		{value: "10", want: true},
		{value: "10.5", want: true},
		{value: "10.50", want: true},
		{value: "10.505", want: false},
		{value: "10.", want: false},
		{value: ".5", want: false},
		{value: "-1", want: false},
		{value: "+1", want: false},
		{value: "1e2", want: false},
		{value: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.CurrencyAmount("price", tt.value).Check())
		})
	}
}

func TestDecimalRules_Apply(t *testing.T) {
	t.Parallel()

	amount := decimal.MustParse("-12.345")
	err := validator.Apply(
		validator.DecimalNonNegative("amount", amount),
		validator.DecimalMaxScale("amount", amount, 2),
		validator.DecimalString("rate", "0.05"),
	)
	require.ErrorIs(t, err, validator.ErrValidationFailed)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"amount"}, errs.Fields())
	assert.Equal(t, []string{"cannot be negative", "must have at most 2 decimal places"}, errs.Get("amount"))
}

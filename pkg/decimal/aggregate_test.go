package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numkit/pkg/decimal"
)

func parseAll(t *testing.T, ss ...string) []decimal.Decimal {
	t.Helper()
	ds := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		d, err := decimal.Parse(s)
		require.NoError(t, err)
		ds[i] = d
	}
	return ds
}

func TestSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, "0"},
		{"single", []string{"-7.25"}, "-7.25"},
		{"tenths", []string{"0.1", "0.2", "0.3"}, "0.6"},
		{"cancels to zero", []string{"1.5", "-0.5", "-1"}, "0"},
		{"wide", []string{"99999999999999999999", "1", "0.000000000000000000001"}, "100000000000000000000.000000000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := decimal.Sum(parseAll(t, tt.in...)...)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAvg(t *testing.T) {
	t.Parallel()

	t.Run("exact", func(t *testing.T) {
		t.Parallel()
		got, err := decimal.Avg(4, parseAll(t, "1", "2", "3", "4")...)
		require.NoError(t, err)
		assert.Equal(t, "2.5", got.String())
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		t.Parallel()
		got, err := decimal.Avg(3, parseAll(t, "-1", "-1", "0")...)
		require.NoError(t, err)
		assert.Equal(t, "-0.666", got.String())
	})

	t.Run("no values", func(t *testing.T) {
		t.Parallel()
		_, err := decimal.Avg(2)
		require.ErrorIs(t, err, decimal.ErrDivisionByZero)
	})
}

func TestDecimal_IsInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"-42", true},
		{"1.000", true},
		{"1e3", true},
		{"1.5", false},
		{"-0.001", false},
		{"12.5e1", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decimal.MustParse(tt.in).IsInteger())
		})
	}
}

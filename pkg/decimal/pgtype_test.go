package decimal_test

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numkit/pkg/decimal"
)

func TestDecimal_NumericValue(t *testing.T) {
	t.Parallel()

	n, err := decimal.MustParse("-123.45").NumericValue()
	require.NoError(t, err)
	assert.True(t, n.Valid)
	assert.Equal(t, int32(-2), n.Exp)
	assert.Equal(t, "-12345", n.Int.String())

	n, err = decimal.Decimal{}.NumericValue()
	require.NoError(t, err)
	assert.True(t, n.Valid)
	assert.Equal(t, "0", n.Int.String())
}

func TestDecimal_ScanNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   pgtype.Numeric
		want string
	}{
		{"negative exponent", pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true}, "123.45"},
		{"positive exponent", pgtype.Numeric{Int: big.NewInt(-15), Exp: 3, Valid: true}, "-15000"},
		{"trailing zeros", pgtype.Numeric{Int: big.NewInt(1500), Exp: -3, Valid: true}, "1.5"},
		{"nil int", pgtype.Numeric{Valid: true}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d decimal.Decimal
			require.NoError(t, d.ScanNumeric(tt.in))
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("unrepresentable", func(t *testing.T) {
		t.Parallel()

		var d decimal.Decimal
		assert.ErrorIs(t, d.ScanNumeric(pgtype.Numeric{}), decimal.ErrUnsupportedType)
		assert.ErrorIs(t, d.ScanNumeric(pgtype.Numeric{NaN: true, Valid: true}), decimal.ErrInvalidFormat)
		assert.ErrorIs(t, d.ScanNumeric(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}), decimal.ErrInvalidFormat)
	})
}

func TestNullDecimal_Numeric(t *testing.T) {
	t.Parallel()

	var n decimal.NullDecimal
	require.NoError(t, n.ScanNumeric(pgtype.Numeric{}))
	assert.False(t, n.Valid)

	v, err := n.NumericValue()
	require.NoError(t, err)
	assert.False(t, v.Valid)

	require.NoError(t, n.ScanNumeric(pgtype.Numeric{Int: big.NewInt(5), Exp: -1, Valid: true}))
	assert.True(t, n.Valid)
	assert.Equal(t, "0.5", n.Decimal.String())
}

func TestDecimal_PgtypeMap(t *testing.T) {
	t.Parallel()

	m := pgtype.NewMap()

	var d decimal.Decimal
	require.NoError(t, m.Scan(pgtype.NumericOID, pgtype.TextFormatCode, []byte("-123.4500"), &d))
	assert.Equal(t, "-123.45", d.String())

	src := decimal.MustParse("98765.4321")
	buf, err := m.Encode(pgtype.NumericOID, pgtype.BinaryFormatCode, src, nil)
	require.NoError(t, err)

	var back decimal.Decimal
	require.NoError(t, m.Scan(pgtype.NumericOID, pgtype.BinaryFormatCode, buf, &back))
	assert.Equal(t, src, back)
}

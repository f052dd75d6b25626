package decimal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// NumericValue implements pgtype.NumericValuer so that a Decimal can be
// passed directly as a query argument for a PostgreSQL numeric column.
func (d Decimal) NumericValue() (pgtype.Numeric, error) {
	n, ok := new(big.Int).SetString(d.digits(), 10)
	if !ok {
		return pgtype.Numeric{}, fmt.Errorf("%w: %q", ErrInvalidFormat, d.String())
	}
	if d.neg {
		n.Neg(n)
	}
	return pgtype.Numeric{Int: n, Exp: int32(-d.scale), Valid: true}, nil
}

// ScanNumeric implements pgtype.NumericScanner.
// NULL, NaN and infinities cannot be represented and return an error;
// use NullDecimal for nullable columns.
func (d *Decimal) ScanNumeric(v pgtype.Numeric) error {
	switch {
	case !v.Valid:
		return fmt.Errorf("%w: NULL numeric", ErrUnsupportedType)
	case v.NaN:
		return fmt.Errorf("%w: NaN", ErrInvalidFormat)
	case v.InfinityModifier != pgtype.Finite:
		return fmt.Errorf("%w: %v", ErrInvalidFormat, v.InfinityModifier)
	case v.Int == nil:
		*d = Decimal{}
		return nil
	}
	coef := v.Int.String()
	neg := strings.HasPrefix(coef, "-")
	*d = newDecimal(neg, strings.TrimPrefix(coef, "-"), -int(v.Exp))
	return nil
}

// NumericValue implements pgtype.NumericValuer.
func (n NullDecimal) NumericValue() (pgtype.Numeric, error) {
	if !n.Valid {
		return pgtype.Numeric{}, nil
	}
	return n.Decimal.NumericValue()
}

// ScanNumeric implements pgtype.NumericScanner.
func (n *NullDecimal) ScanNumeric(v pgtype.Numeric) error {
	if !v.Valid {
		n.Decimal, n.Valid = Decimal{}, false
		return nil
	}
	if err := n.Decimal.ScanNumeric(v); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

package decimal

import "strings"

// DefaultDivisionDigits is the number of fractional digits kept by DivDefault.
const DefaultDivisionDigits = 20

// Decimal is an exact signed decimal number of arbitrary precision.
// The zero value is 0.
//
// A Decimal is immutable: every operation returns a new value, so values can be
// shared freely between goroutines. The representation is canonical, which
// makes two decimals with the same numeric value equal under ==.
type Decimal struct {
	neg   bool   // never set for zero
	coef  string // digits without the decimal point and leading zeros, "" for zero
	scale int    // digits after the decimal point; coef has no trailing zero when scale > 0
}

// newDecimal builds a canonical decimal equal to coef * 10^-scale.
// A negative scale appends zeros to the coefficient.
func newDecimal(neg bool, coef string, scale int) Decimal {
	coef = strings.TrimLeft(coef, "0")
	if coef == "" {
		return Decimal{}
	}
	if scale < 0 {
		coef += zeros(-scale)
		scale = 0
	}
	for scale > 0 && coef[len(coef)-1] == '0' {
		coef = coef[:len(coef)-1]
		scale--
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

func (d Decimal) digits() string {
	if d.coef == "" {
		return "0"
	}
	return d.coef
}

// align pads the coefficients of d and e to a common scale so that the
// kernel can treat them as integers.
func align(d, e Decimal) (a, b string, scale int) {
	scale = max(d.scale, e.scale)
	a = d.digits() + zeros(scale-d.scale)
	b = e.digits() + zeros(scale-e.scale)
	return a, b, scale
}

// String returns the canonical text of d: an optional '-', no exponent,
// no leading zeros in the integer part and no trailing fractional zeros.
func (d Decimal) String() string {
	if d.neg {
		return "-" + d.Magnitude()
	}
	return d.Magnitude()
}

// Magnitude returns the unsigned canonical text of d.
func (d Decimal) Magnitude() string {
	c := d.digits()
	switch {
	case d.scale == 0:
		return c
	case len(c) <= d.scale:
		return "0." + zeros(d.scale-len(c)) + c
	}
	return c[:len(c)-d.scale] + "." + c[len(c)-d.scale:]
}

// Sign returns -1 for negative values and 1 otherwise, including zero.
func (d Decimal) Sign() int {
	if d.neg {
		return -1
	}
	return 1
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool {
	return d.coef == ""
}

// IsPositive reports whether d > 0.
func (d Decimal) IsPositive() bool {
	return !d.neg && d.coef != ""
}

// IsNegative reports whether d < 0.
func (d Decimal) IsNegative() bool {
	return d.neg
}

// IsInteger reports whether d has no fractional part.
func (d Decimal) IsInteger() bool {
	return d.scale == 0
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Neg returns -d. The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	if d.coef != "" {
		d.neg = !d.neg
	}
	return d
}

// Add returns d + e.
//
// Operands of the same sign add their magnitudes. Otherwise the smaller
// magnitude is subtracted from the larger one and the result takes the sign
// of the larger operand.
func (d Decimal) Add(e Decimal) Decimal {
	a, b, scale := align(d, e)
	if d.neg == e.neg {
		return newDecimal(d.neg, addDigits(a, b), scale)
	}
	switch cmpDigits(a, b) {
	case 1:
		return newDecimal(d.neg, subDigits(a, b), scale)
	case -1:
		return newDecimal(e.neg, subDigits(b, a), scale)
	}
	return Decimal{}
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e.
func (d Decimal) Mul(e Decimal) Decimal {
	return newDecimal(d.neg != e.neg, mulDigits(d.digits(), e.digits()), d.scale+e.scale)
}

// Div returns d / e truncated toward zero after the given number of
// fractional digits. Negative digits are treated as 0.
// Div returns ErrDivisionByZero if e is zero.
func (d Decimal) Div(e Decimal, digits int) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	digits = max(digits, 0)
	a, b, _ := align(d, e)
	quo := divDigits(a+zeros(digits), b)
	return newDecimal(d.neg != e.neg, quo, digits), nil
}

// DivDefault is Div with DefaultDivisionDigits fractional digits.
func (d Decimal) DivDefault(e Decimal) (Decimal, error) {
	return d.Div(e, DefaultDivisionDigits)
}

// Cmp compares d and e and returns -1, 0 or 1.
func (d Decimal) Cmp(e Decimal) int {
	if d.neg != e.neg {
		if d.neg {
			return -1
		}
		return 1
	}
	a, b, _ := align(d, e)
	c := cmpDigits(a, b)
	if d.neg {
		return -c
	}
	return c
}

// Equal reports whether d and e represent the same number.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Min returns the smaller of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

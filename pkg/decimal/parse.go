package decimal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxExponent bounds the absolute value of an exponent accepted by Parse.
// Larger exponents would expand into unreasonably long digit strings.
const MaxExponent = 100000

// numericPattern captures sign, integer digits, fractional digits (in one of
// two groups) and exponent.
var numericPattern = regexp.MustCompile(`^([-+]?)(?:(\d+)(?:\.(\d*))?|\.(\d+))(?:[eE]([-+]?\d+))?$`)

// Parse converts text to a decimal. Surrounding whitespace is ignored.
// The accepted formats are:
//
//	1.234
//	-1234
//	+.5
//	7.
//	1.5e3
//	-2E-3
//
// Scientific notation is expanded into plain digits: the decimal point moves
// right by a positive exponent and left by a negative one, padding with zeros
// as needed. Parse returns an error wrapping ErrInvalidFormat for anything else.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	m := numericPattern.FindStringSubmatch(s)
	if m == nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	frac := m[3] + m[4]
	coef := m[2] + frac
	scale := len(frac)
	if m[5] != "" {
		exp, err := strconv.Atoi(m[5])
		if err != nil || exp > MaxExponent || exp < -MaxExponent {
			return Decimal{}, fmt.Errorf("%w: exponent out of range in %q", ErrInvalidFormat, s)
		}
		scale -= exp
	}
	return newDecimal(m[1] == "-", coef, scale), nil
}

// MustParse is like Parse but panics if the text cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// NewFromInt returns a decimal equal to n.
func NewFromInt(n int64) Decimal {
	return MustParse(strconv.FormatInt(n, 10))
}

// NewFromFloat returns the decimal matching the shortest text that
// round-trips f, so 0.1 becomes exactly 0.1.
// NaN and infinities are rejected with ErrInvalidFormat.
func NewFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("%w: %v", ErrInvalidFormat, f)
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}

package sanitizer

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/numkit/pkg/decimal"
)

// FoldWidth maps full-width characters to their ASCII forms, so "１２３．５"
// becomes "123.5" and the ideographic space becomes a regular space.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveWhitespace drops every whitespace character.
func RemoveWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// RemoveGrouping drops digit grouping separators: '_', ',' and '\''.
func RemoveGrouping(s string) string {
	return groupingRegex.ReplaceAllString(s, "")
}

// TrimPlus removes a single leading '+'.
func TrimPlus(s string) string {
	return strings.TrimPrefix(s, "+")
}

// DecimalString normalizes human-entered number text such as " +1 234,567.5"
// or "１，２３４．５" into a form accepted by decimal.Parse. It does not validate
// the result.
//
// The decimal separator is always '.'. A comma is a grouping separator and is
// dropped, so the European "1,5" becomes "15".
var DecimalString = Compose(FoldWidth, RemoveWhitespace, RemoveGrouping, TrimPlus)

// ParseDecimal sanitizes s with DecimalString and parses the result.
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.Parse(DecimalString(s))
}

// ClampDecimal constrains value to [min, max].
func ClampDecimal(value, min, max decimal.Decimal) decimal.Decimal {
	return value.Max(min).Min(max)
}

// ClampDecimalMin ensures value is not less than min.
func ClampDecimalMin(value, min decimal.Decimal) decimal.Decimal {
	return value.Max(min)
}

// ClampDecimalMax ensures value is not greater than max.
func ClampDecimalMax(value, max decimal.Decimal) decimal.Decimal {
	return value.Min(max)
}

// ZeroIfNegativeDecimal returns zero for negative values.
func ZeroIfNegativeDecimal(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Decimal{}
	}
	return value
}

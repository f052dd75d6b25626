// Package decimal implements exact signed decimal arithmetic of arbitrary
// precision on top of base-10 digit strings.
//
// Binary floating point cannot represent most decimal fractions, so 0.1 + 0.2
// is not 0.3 with float64. A Decimal keeps every digit instead: addition,
// subtraction and multiplication are exact, and division is exact up to a
// caller-chosen number of fractional digits.
//
// # Architecture
//
// The package is layered in three parts:
//
//   - Parser (parse.go) validates input such as "-12.5", ".5" or "1.5e3",
//     expands scientific notation and produces the canonical sign + digits form.
//   - Kernel (digits.go) implements unsigned add, subtract, multiply, long
//     division and comparison on plain digit strings.
//   - Value layer (decimal.go, round.go) aligns the fractional parts of two
//     operands, delegates to the kernel and decides the sign of the result.
//
// A Decimal is an immutable value. Every operation returns a new Decimal and
// the representation is canonical (no leading zeros, no trailing fractional
// zeros, no negative zero), so == compares numeric values.
//
// # Usage
//
//	import "github.com/dmitrymomot/numkit/pkg/decimal"
//
//	a := decimal.MustParse("0.1")
//	b := decimal.MustParse("0.2")
//	fmt.Println(a.Add(b)) // 0.3
//
//	q, err := decimal.MustParse("10").Div(decimal.MustParse("3"), 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q)                // 3.33333
//	fmt.Println(q.ToFixed(2))     // 3.33
//	fmt.Println(decimal.MustParse("2.345").ToFixedMode(2, decimal.RoundDown)) // 2.34
//
// # Encodings
//
// Decimal implements encoding.TextMarshaler, json.Marshaler (as a JSON
// string), sql.Scanner and driver.Valuer, yaml.Marshaler, the pgx
// NumericScanner/NumericValuer pair for PostgreSQL numeric columns,
// bson.ValueMarshaler (Decimal128 when it fits) and slog.LogValuer.
// NullDecimal covers nullable columns.
//
// # Configuration
//
// Config carries the default division precision, fixed-point width and
// rounding mode. Its fields are tagged for env parsing:
//
//	var cfg decimal.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Fixed(total))
//
// # Error Handling
//
// Only two failures exist in arithmetic and both are sentinel errors usable
// with errors.Is:
//
//   - ErrInvalidFormat   – the input text is not a decimal number.
//   - ErrDivisionByZero  – Div was called with a zero divisor.
//
// Every other operation is total.
package decimal

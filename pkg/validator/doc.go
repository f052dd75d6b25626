// Package validator provides composable validation rules for numeric and
// decimal input.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. Apply evaluates rules and aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems are reported by a single error return.
//
// # Architecture
//
// Rules are grouped by the kind of value they inspect (numeric_rules.go for
// Go numbers, decimal_rules.go for decimal.Decimal values and decimal text).
// Every exported function only constructs a Rule; the package has no global
// state and is safe for concurrent use.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//   - Numeric interface – generic constraint used by numeric helpers
//
// # Usage
//
//	amount, err := decimal.Parse(input)
//	if err != nil {
//	    return err
//	}
//	err = validator.Apply(
//	    validator.DecimalPositive("amount", amount),
//	    validator.DecimalMaxScale("amount", amount, 2),
//	    validator.MaxNum("digits", digits, 100),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Error Handling
//
// errors.Is(err, ErrValidationFailed) reports whether err carries
// ValidationErrors; ExtractValidationErrors unwraps them for inspection with
// Has, Get and Fields. Translation keys use the "validation." prefix.
package validator

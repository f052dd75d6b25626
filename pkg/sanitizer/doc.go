// Package sanitizer cleans human-entered numeric input before it reaches the
// decimal parser, and constrains values to a range.
//
// # Usage
//
//	d, err := sanitizer.ParseDecimal(" +1,234.50 ") // 1234.5
//	if err != nil {
//	    return err
//	}
//	d = sanitizer.ClampDecimal(d, decimal.Decimal{}, limit)
//
// Transformations are plain func(T) T values, so Apply and Compose chain them
// for strings and decimals alike:
//
//	clean := sanitizer.Compose(sanitizer.FoldWidth, sanitizer.RemoveWhitespace, sanitizer.RemoveGrouping)
//
// Sanitizers never fail. DecimalString does not validate its result, so the
// returned text may still be rejected by decimal.Parse.
package sanitizer

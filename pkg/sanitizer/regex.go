package sanitizer

import "regexp"

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Digit grouping separators accepted in human-entered numbers.
	groupingRegex = regexp.MustCompile(`[_,']`)
)

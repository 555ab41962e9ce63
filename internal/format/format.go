/*
* Utility functions for formatting output.
 */
package format

import (
	"strconv"
	"strings"
)

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}

// Number formats an integer with thousands separators, e.g. 1,234,567.
func Number(n int) string {
	if n < 0 {
		return "-" + Number(-n)
	}

	s := strconv.Itoa(n)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Plural appends an "s" to word unless n is 1.
func Plural(word string, n int) string {
	if n == 1 {
		return word
	}

	return word + "s"
}

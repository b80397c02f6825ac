package percentfield

import (
	"strconv"
	"strings"
)

// Sanitize turns free text into a bounded percentage string. Non-digit
// characters are stripped, leading zeros collapse to a single "0", and the
// parsed value is clamped into [0,100]. When allowEmpty is true an input
// with no digits stays empty so in-progress typing is not forced to "0".
func Sanitize(raw string, allowEmpty bool) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if digits == "" {
		if allowEmpty {
			return ""
		}
		return "0"
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n > 100 {
		// err can only be overflow on absurdly long input; clamp either way
		return "100"
	}
	return strconv.Itoa(n)
}

// ToInt parses a sanitized percentage string, treating anything unparsable
// (including the empty string) as 0.
func ToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

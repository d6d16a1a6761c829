package labcore

import (
	"strconv"
	"strings"
)

// IsOutOfRange reports whether a measured value falls outside [min, max].
// All three inputs are free text and may use a comma as decimal separator.
// If any of them is missing or does not parse as a number the answer is
// false: a missing bound means "no alert", never an error.
func IsOutOfRange(value, min, max string) bool {
	v, ok := parseDecimal(value)
	if !ok {
		return false
	}
	lo, ok := parseDecimal(min)
	if !ok {
		return false
	}
	hi, ok := parseDecimal(max)
	if !ok {
		return false
	}
	return v < lo || v > hi
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`\d+`)

// FirstNumber returns the first numeric token in s, with comma grouping
// removed beforehand so "1,50,000" reads as 150000. The second return value
// is false when s contains no digits.
func FirstNumber(s string) (int, bool) {
	cleaned := strings.ReplaceAll(s, ",", "")
	match := numberPattern.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParsePrice normalizes a formatted catalogue price ("79,999", "Rs. 45,000")
// to an integer. Returns false when no numeric value is present.
func ParsePrice(s string) (int, bool) {
	return FirstNumber(s)
}

package util

import (
	"strconv"
	"strings"
)

const shortNameMax = 15

// ShortName derives the display name for a station. Operator exports prefix
// station names with the scheme name ("YouBike2.0_..."), so everything up to
// the first underscore is dropped; the remainder is truncated to 15 runes
// with a ".." suffix. Display only, never used as a grouping key.
func ShortName(name string) string {
	if i := strings.IndexRune(name, '_'); i >= 0 {
		name = name[i+1:]
	}
	r := []rune(name)
	if len(r) > shortNameMax {
		return string(r[:shortNameMax]) + ".."
	}
	return name
}

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ParseFloatDefault parses string to float64 or returns default if empty/invalid.
func ParseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

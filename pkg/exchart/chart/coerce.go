package chart

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// numericPrefix matches the longest leading decimal literal of a string.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ToNumber converts a raw cell value to a finite number.
// Strings are read up to the first character that cannot continue a
// decimal literal ("12px" is 12). Anything else that has no numeric
// reading, including booleans, missing values and infinities, is 0.
func ToNumber(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil, bool:
		return 0
	case string:
		f = parseLeadingFloat(x)
	default:
		n, err := cast.ToFloat64E(x)
		if err != nil {
			return 0
		}
		f = n
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out-of-range literals come back as ±Inf with an error.
		return 0
	}
	return f
}

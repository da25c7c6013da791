package tree

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses s as a decimal number. Surrounding whitespace is
// ignored; hexadecimal, underscores, infinities and NaN are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// ParseInteger parses s as a decimal number with an exact integral value
// that fits into int. "12", " 12 ", "12.0" and "1.2e1" all yield 12.
func ParseInteger(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i, true
	}

	f, ok := ParseNumber(trimmed)
	if !ok {
		return 0, false
	}

	return IntegralFloat(f)
}

// IntegralFloat returns f as an int when it has no fractional part and
// fits into int.
func IntegralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int(f), true
}

// FormatFloat renders f in its shortest exact decimal form, switching to
// exponent notation only for very large or very small magnitudes.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

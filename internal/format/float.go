package format

import (
	"math"
	"strconv"
	"strings"
)

// FormatMetricValue renders a metric value in its shortest round-trip form.
// Decimal notation is used for decimal exponents in [-4, 16), always with a
// fractional part ("2.0", "0.009"); other magnitudes use exponent notation
// with a signed, at least two-digit exponent ("1e-05", "1.5e+16").
// Infinities render as "inf" and "-inf".
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The formatted value.
func FormatMetricValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

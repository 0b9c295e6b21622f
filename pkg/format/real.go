// Package format renders numbers the way the report expects them.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Plain notation is used for magnitudes in [plainMin, plainMax).
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// Real renders x as the shortest decimal that parses back to x, always with
// at least one fractional digit: 88 -> "88.0", 82.5 -> "82.5".
// Magnitudes outside [1e-3, 1e7) use computerized scientific notation with a
// capital E and no exponent sign padding: 1.0E7, 1.5E-4.
func Real(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(x)
	if abs >= plainMin && abs < plainMax {
		return withFraction(strconv.FormatFloat(x, 'f', -1, 64))
	}

	s := strconv.FormatFloat(x, 'e', -1, 64) // e.g. 1.5e-04
	mantissa, exp, _ := strings.Cut(s, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

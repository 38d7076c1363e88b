// Package numeric provides best-effort string to number conversions for the
// angle literal parser. Failures are reported as a false ok value instead of
// an error.
package numeric

import "strconv"

// Float converts text to a float64. Plain integers convert too.
func Float(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// Int converts text to an int.
func Int(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

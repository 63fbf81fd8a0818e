package utils

import "math"

// Round2 rounds a monetary value to 2 decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite reports whether a value is a finite number.
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// SafeRatio returns numerator/denominator as a percentage, or 0 when the
// denominator is not positive. The engine reports 0% instead of failing on
// degenerate denominators.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0.0
	}
	return (numerator / denominator) * 100
}

package audit

import "math"

// round2 rounds to cents / hundredths.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// round4 rounds to basis points, used for loss fractions.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

package numberutil

import "math"

// Round1 rounds to one decimal with half-up semantics, so 7.45 becomes 7.5.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

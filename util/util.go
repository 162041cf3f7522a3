package util

import (
	"github.com/fogleman/ease"
)

// Clamp limits v to [min, max].
func Clamp(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// FadeIn shapes a fade fraction with an eased ramp so arriving
// elements brighten smoothly instead of cutting in.
func FadeIn(t float64) float64 {
	return ease.InOutQuad(Clamp(t, 0, 1))
}

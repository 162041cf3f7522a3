package reveal

import (
	"github.com/fogleman/ease"
)

// A RateFunc reshapes the raw elapsed/runTime ratio into the progress
// curve of an animation. Every registered function maps [0,1] to [0,1]
// with f(0)=0 and f(1)=1.
type RateFunc func(float64) float64

// Linear leaves the raw ratio untouched.
func Linear(t float64) float64 {
	return t
}

// Smooth is the default rate function; it eases in and out so the
// reveal does not start or stop abruptly.
func Smooth(t float64) float64 {
	return ease.InOutCubic(t)
}

// DoubleSmooth applies Smooth over each half of the sweep, pausing
// briefly at the midpoint. DrawBorderThenFill uses it so the border
// and fill phases each get their own ease.
func DoubleSmooth(t float64) float64 {
	if t < 0.5 {
		return 0.5 * ease.InOutCubic(2*t)
	}
	return 0.5 + 0.5*ease.InOutCubic(2*t-1)
}

// RushInto starts fast and settles gently.
func RushInto(t float64) float64 {
	return ease.OutQuad(t)
}

// RushFrom starts gently and accelerates away.
func RushFrom(t float64) float64 {
	return ease.InQuad(t)
}

var rates = map[string]RateFunc{
	"linear":       Linear,
	"smooth":       Smooth,
	"doubleSmooth": DoubleSmooth,
	"rushInto":     RushInto,
	"rushFrom":     RushFrom,
	"inOutQuad":    ease.InOutQuad,
	"inOutQuart":   ease.InOutQuart,
	"outBounce":    ease.OutBounce,
}

// RateByName looks up a rate function by its config name.
func RateByName(name string) (RateFunc, bool) {
	f, ok := rates[name]
	return f, ok
}

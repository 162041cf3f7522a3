package reveal

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestShowCreation_BoundsLaw(t *testing.T) {
	p := NewPolicy(ShowCreation)
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		lower, upper := p.Bounds(v)
		assert.Equal(t, 0.0, lower)
		assert.Equal(t, v, upper)
	}
}

func TestUncreate_ReversesShowCreation(t *testing.T) {
	p := NewPolicy(Uncreate)

	lower, upper := p.Bounds(0)
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upper, "fully shown at the start")

	lower, upper = p.Bounds(1)
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 0.0, upper, "fully hidden at the end")

	_, upper = p.Bounds(0.25)
	assert.Equal(t, 0.75, upper)
}

func TestPolicy_ClampsLocalProgress(t *testing.T) {
	p := NewPolicy(ShowCreation)

	_, upper := p.Bounds(-3)
	assert.Equal(t, 0.0, upper)
	_, upper = p.Bounds(42)
	assert.Equal(t, 1.0, upper)
}

func TestShowPartial_CustomBounds(t *testing.T) {
	// A trailing window: the lower bound chases the upper.
	p := NewPolicy(ShowPartial)
	p.LowerFunc = func(v float64) float64 { return v * 0.5 }
	p.UpperFunc = func(v float64) float64 { return v }

	lower, upper := p.Bounds(0.8)
	assert.InDelta(t, 0.4, lower, 1e-9)
	assert.Equal(t, 0.8, upper)
}

func TestShowPartial_OrdersBounds(t *testing.T) {
	// A subclass that crosses its own bounds is clamped, not rejected.
	p := NewPolicy(ShowPartial)
	p.LowerFunc = func(v float64) float64 { return 1 - v }
	p.UpperFunc = func(v float64) float64 { return v }

	lower, upper := p.Bounds(0.25)
	assert.Equal(t, upper, lower)
}

func TestShowPartial_NilFuncsMatchShowCreation(t *testing.T) {
	p := NewPolicy(ShowPartial)
	lower, upper := p.Bounds(0.6)
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 0.6, upper)
}

func TestDrawBorderThenFill_BorderBeforeFill(t *testing.T) {
	p := NewPolicy(DrawBorderThenFill)

	// Border phase: bounds sweep, fill untouched.
	lower, upper := p.Bounds(0.25)
	assert.Equal(t, 0.0, lower)
	assert.InDelta(t, 0.5, upper, 1e-9, "border progress remaps over the first phase")
	assert.Equal(t, 0.0, p.FillAlpha(0.25))

	// The border reaches (0,1) exactly when the fill starts moving.
	lower, upper = p.Bounds(0.5)
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upper)
	assert.Equal(t, 0.0, p.FillAlpha(0.5))

	// Fill phase: bounds stay full, fill ramps.
	_, upper = p.Bounds(0.75)
	assert.Equal(t, 1.0, upper)
	assert.InDelta(t, 0.5, p.FillAlpha(0.75), 1e-9)
	assert.Equal(t, 1.0, p.FillAlpha(1))
}

func TestDrawBorderThenFill_CustomSplit(t *testing.T) {
	p := NewPolicy(DrawBorderThenFill)
	p.PhaseSplit = 0.25

	_, upper := p.Bounds(0.125)
	assert.InDelta(t, 0.5, upper, 1e-9)
	assert.InDelta(t, 1.0/3.0, p.FillAlpha(0.5), 1e-9)
}

func TestDrawBorderThenFill_BlendedFill(t *testing.T) {
	p := NewPolicy(DrawBorderThenFill)
	p.FillColor, _ = colorful.Hex("#ff0000")

	r, g, b := p.BlendedFill(0).RGB255()
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "transparent before the fill phase")

	r, g, b = p.BlendedFill(1).RGB255()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
}

func TestDiscreteVariants_Counts(t *testing.T) {
	p := NewPolicy(ShowIncreasingSubsets)
	assert.True(t, p.Discrete())

	assert.Equal(t, 0, p.VisibleCount(0, 4))
	assert.Equal(t, 2, p.VisibleCount(0.5, 4))
	assert.Equal(t, 3, p.VisibleCount(0.99, 4), "floor, not round")
	assert.Equal(t, 4, p.VisibleCount(1, 4))
}

func TestDiscreteVariants_Index(t *testing.T) {
	p := NewPolicy(ShowSubmobjectsOneByOne)

	assert.Equal(t, 0, p.VisibleIndex(0, 4))
	assert.Equal(t, 2, p.VisibleIndex(0.5, 4))
	assert.Equal(t, 3, p.VisibleIndex(1, 4), "index stays in range at the end")
	assert.Equal(t, 0, p.VisibleIndex(0.7, 1))
}

func TestVariantByName_RoundTrip(t *testing.T) {
	for kind, name := range variantNames {
		resolved, ok := VariantByName(name)
		assert.True(t, ok)
		assert.Equal(t, kind, resolved)
	}

	_, ok := VariantByName("sparkle")
	assert.False(t, ok)
}

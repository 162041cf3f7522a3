package reveal

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// VariantKind enumerates the reveal policies.
type VariantKind int

const (
	ShowCreation VariantKind = iota
	Uncreate
	ShowPartial
	DrawBorderThenFill
	Write
	ShowIncreasingSubsets
	ShowSubmobjectsOneByOne
	AddTextWordByWord
)

var variantNames = map[VariantKind]string{
	ShowCreation:            "showCreation",
	Uncreate:                "uncreate",
	ShowPartial:             "showPartial",
	DrawBorderThenFill:      "drawBorderThenFill",
	Write:                   "write",
	ShowIncreasingSubsets:   "showIncreasingSubsets",
	ShowSubmobjectsOneByOne: "showSubmobjectsOneByOne",
	AddTextWordByWord:       "addTextWordByWord",
}

func (k VariantKind) String() string {
	if name, ok := variantNames[k]; ok {
		return name
	}
	return "unknown"
}

// VariantByName resolves a control-message or config variant name.
func VariantByName(name string) (VariantKind, bool) {
	for k, n := range variantNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// A Policy computes the visible sub-range of one sub-element's
// drawable extent from its local progress. It is the single
// capability every variant implements; DrawBorderThenFill carries the
// one extra output, a fill interpolation.
type Policy struct {
	Kind VariantKind

	// LowerFunc and UpperFunc drive ShowPartial. Either may be nil,
	// in which case the bound is fixed at 0 / local progress.
	LowerFunc func(t float64) float64
	UpperFunc func(t float64) float64

	// PhaseSplit is the point where DrawBorderThenFill switches from
	// drawing the border to interpolating the fill.
	PhaseSplit float64

	// FillColor is the target fill for DrawBorderThenFill.
	FillColor colorful.Color
}

// NewPolicy creates a Policy of the given kind with variant defaults.
func NewPolicy(kind VariantKind) Policy {
	p := Policy{Kind: kind}
	if kind == DrawBorderThenFill {
		p.PhaseSplit = 0.5
		p.FillColor, _ = colorful.Hex("#808080")
	}
	return p
}

// Bounds returns the (lower, upper) visibility bounds for a
// sub-element at local progress t. Out-of-range t is clamped, never
// rejected; this runs once per sub-element per frame.
func (p Policy) Bounds(t float64) (lower, upper float64) {
	t = clamp01(t)
	switch p.Kind {
	case Uncreate:
		return 0, 1 - t
	case ShowPartial:
		lower, upper = 0, t
		if p.LowerFunc != nil {
			lower = clamp01(p.LowerFunc(t))
		}
		if p.UpperFunc != nil {
			upper = clamp01(p.UpperFunc(t))
		}
		if lower > upper {
			lower = upper
		}
		return lower, upper
	case DrawBorderThenFill:
		split := clamp01(p.PhaseSplit)
		if t < split {
			return 0, t / split
		}
		return 0, 1
	default:
		// ShowCreation and the variants composed from it.
		return 0, t
	}
}

// FillAlpha returns the fill interpolation at local progress t: 0
// while the border phase runs, then a linear ramp to 1 over the fill
// phase. Non-two-phase variants report the discrete fade instead of a
// phase ramp and always return 0 here.
func (p Policy) FillAlpha(t float64) float64 {
	if p.Kind != DrawBorderThenFill {
		return 0
	}
	t = clamp01(t)
	split := clamp01(p.PhaseSplit)
	if split >= 1 {
		return 0
	}
	if t <= split {
		return 0
	}
	return (t - split) / (1 - split)
}

// BlendedFill returns the fill color at local progress t, blended
// from transparent black toward FillColor the same way frames are
// cross-faded in transit.
func (p Policy) BlendedFill(t float64) colorful.Color {
	base := colorful.Color{}
	return base.BlendHcl(p.FillColor, p.FillAlpha(t)).Clamped()
}

// Discrete reports whether the policy toggles whole sub-elements
// instead of sweeping a continuous extent.
func (p Policy) Discrete() bool {
	switch p.Kind {
	case ShowIncreasingSubsets, ShowSubmobjectsOneByOne, AddTextWordByWord:
		return true
	}
	return false
}

// VisibleCount returns how many of n top-level sub-elements are fully
// visible at progress t for the accumulating discrete variants.
func (p Policy) VisibleCount(t float64, n int) int {
	count := int(math.Floor(clamp01(t) * float64(n)))
	if count > n {
		count = n
	}
	return count
}

// VisibleIndex returns the single visible sub-element for
// ShowSubmobjectsOneByOne, clamped to [0, n-1].
func (p Policy) VisibleIndex(t float64, n int) int {
	index := int(math.Floor(clamp01(t) * float64(n)))
	if index > n-1 {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

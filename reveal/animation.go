package reveal

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidConfiguration is returned when an animation is created
	// with a lag ratio outside [0,1] or a negative run time. It is the
	// only error the engine raises; everything on the per-frame path
	// clamps instead.
	ErrInvalidConfiguration = errors.New("reveal: invalid animation configuration")

	// ErrUnknownHandle is returned when a handle does not name an
	// animation owned by the controller.
	ErrUnknownHandle = errors.New("reveal: unknown animation handle")

	// ErrUnknownVariant is returned for an unrecognized variant name
	// in a control message.
	ErrUnknownVariant = errors.New("reveal: unknown animation variant")
)

// An Animation binds a target Mobject to a reveal policy for one
// playback. The controller owns its progress state once played.
type Animation struct {
	Target    *Mobject
	Policy    Policy
	RunTimeMs int64
	Rate      RateFunc
	LagRatio  float64
	Remover   bool
}

// NewAnimation creates a pending animation. Configuration problems
// surface here, never during ticking.
func NewAnimation(target *Mobject, policy Policy, runTimeMs int64, rate RateFunc, lagRatio float64, remover bool) (*Animation, error) {
	if lagRatio < 0 || lagRatio > 1 {
		return nil, fmt.Errorf("%w: lag ratio %v outside [0,1]", ErrInvalidConfiguration, lagRatio)
	}
	if runTimeMs < 0 {
		return nil, fmt.Errorf("%w: negative run time %dms", ErrInvalidConfiguration, runTimeMs)
	}
	if rate == nil {
		rate = Smooth
	}

	a := new(Animation)
	a.Target = target
	a.Policy = policy
	a.RunTimeMs = runTimeMs
	a.Rate = rate
	a.LagRatio = lagRatio
	a.Remover = remover
	return a, nil
}

// NewShowCreation creates an animation that draws target from the
// start to the end of each sub-element's extent.
func NewShowCreation(target *Mobject, runTimeMs int64, lagRatio float64) (*Animation, error) {
	return NewAnimation(target, NewPolicy(ShowCreation), runTimeMs, Smooth, lagRatio, false)
}

// NewUncreate creates the reverse of ShowCreation; the target is
// detached from the scene on completion.
func NewUncreate(target *Mobject, runTimeMs int64, lagRatio float64) (*Animation, error) {
	return NewAnimation(target, NewPolicy(Uncreate), runTimeMs, Smooth, lagRatio, true)
}

// NewShowPartial creates an animation with caller-supplied lower and
// upper bound functions of local progress.
func NewShowPartial(target *Mobject, lower, upper func(float64) float64, runTimeMs int64, lagRatio float64) (*Animation, error) {
	p := NewPolicy(ShowPartial)
	p.LowerFunc = lower
	p.UpperFunc = upper
	return NewAnimation(target, p, runTimeMs, Smooth, lagRatio, false)
}

// NewDrawBorderThenFill creates the two-phase border-then-fill
// animation toward the given fill color.
func NewDrawBorderThenFill(target *Mobject, fill colorful.Color, runTimeMs int64) (*Animation, error) {
	p := NewPolicy(DrawBorderThenFill)
	p.FillColor = fill
	if runTimeMs == 0 {
		runTimeMs = 2000
	}
	return NewAnimation(target, p, runTimeMs, DoubleSmooth, 0, false)
}

// NewWrite creates a per-glyph ShowCreation with the lag ratio and,
// when runTimeMs is 0, the run time derived from the number of
// drawable sub-elements, so large text does not animate forever.
func NewWrite(target *Mobject, runTimeMs int64) (*Animation, error) {
	n := countDrawable(target)
	if runTimeMs == 0 {
		runTimeMs = autoRunTime(n)
	}
	return NewAnimation(target, NewPolicy(Write), runTimeMs, Linear, autoLagRatio(n), false)
}

// NewShowIncreasingSubsets creates the discrete accumulating variant
// over the target's top-level sub-elements.
func NewShowIncreasingSubsets(target *Mobject, runTimeMs int64) (*Animation, error) {
	return NewAnimation(target, NewPolicy(ShowIncreasingSubsets), runTimeMs, Linear, 0, false)
}

// NewShowSubmobjectsOneByOne creates the discrete cycling variant
// showing exactly one top-level sub-element at a time.
func NewShowSubmobjectsOneByOne(target *Mobject, runTimeMs int64) (*Animation, error) {
	return NewAnimation(target, NewPolicy(ShowSubmobjectsOneByOne), runTimeMs, Linear, 0, false)
}

// NewAddTextWordByWord accumulates word groups with a fade-in on the
// arriving word. When runTimeMs is 0 it is derived from the word
// count at timePerWordMs per word (200ms when that is 0 too).
func NewAddTextWordByWord(target *Mobject, timePerWordMs int64, runTimeMs int64) (*Animation, error) {
	if runTimeMs == 0 {
		if timePerWordMs <= 0 {
			timePerWordMs = 200
		}
		runTimeMs = timePerWordMs * int64(len(target.Children()))
	}
	return NewAnimation(target, NewPolicy(AddTextWordByWord), runTimeMs, Linear, 0, false)
}

// NewVariantAnimation dispatches a variant name from a control
// message or config to the matching constructor.
func NewVariantAnimation(kind VariantKind, target *Mobject, runTimeMs int64, lagRatio float64) (*Animation, error) {
	switch kind {
	case ShowCreation:
		return NewShowCreation(target, runTimeMs, lagRatio)
	case Uncreate:
		return NewUncreate(target, runTimeMs, lagRatio)
	case ShowPartial:
		return NewShowPartial(target, nil, nil, runTimeMs, lagRatio)
	case DrawBorderThenFill:
		return NewDrawBorderThenFill(target, defaultFill(), runTimeMs)
	case Write:
		return NewWrite(target, runTimeMs)
	case ShowIncreasingSubsets:
		return NewShowIncreasingSubsets(target, runTimeMs)
	case ShowSubmobjectsOneByOne:
		return NewShowSubmobjectsOneByOne(target, runTimeMs)
	case AddTextWordByWord:
		return NewAddTextWordByWord(target, 0, runTimeMs)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, kind)
}

func defaultFill() colorful.Color {
	c, _ := colorful.Hex("#808080")
	return c
}

// countDrawable counts the leaves with a non-zero extent; empty
// groups contribute nothing to an object's writing complexity.
func countDrawable(target *Mobject) int {
	n := 0
	for _, leaf := range target.Family() {
		if leaf.Extent > 0 {
			n++
		}
	}
	return n
}

// autoRunTime is the diminishing-returns writing time: 500ms*sqrt(n)
// clamped to [1s, 3s]. A four-glyph word takes a second; a hundred
// glyphs saturate at three rather than growing linearly.
func autoRunTime(n int) int64 {
	ms := int64(500 * math.Sqrt(float64(n)))
	if ms < 1000 {
		ms = 1000
	}
	if ms > 3000 {
		ms = 3000
	}
	return ms
}

// autoLagRatio shrinks the stagger as sub-elements multiply, capped
// at 0.2 so small objects still write glyph by glyph.
func autoLagRatio(n int) float64 {
	return math.Min(4.0/(float64(n)+1.0), 0.2)
}

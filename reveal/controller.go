package reveal

import (
	"sync"

	"github.com/google/uuid"

	"github.com/matt-g-everett/sketchtx/util"
)

// State of one animation inside the controller.
type State int

const (
	StatePending State = iota
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// A Scene is the external collaborator that owns object membership.
// The controller asks it to detach the target when a remover
// animation completes.
type Scene interface {
	Detach(m *Mobject)
}

// AnimationState is the read-only view of one animation that the API
// serves.
type AnimationState struct {
	Handle   string  `json:"handle"`
	Target   string  `json:"target"`
	Variant  string  `json:"variant"`
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
}

type playback struct {
	anim  *Animation
	clock *ProgressClock
	state State
}

// A Controller drives animations over their lifetime: start on first
// tick, per-frame bounds update, completion, optional removal of the
// target. It is the sole writer of the visibility bounds of every
// object it currently animates.
//
// Each tick is a pure function of the animation's progress state, so
// the host can drop a handle mid-flight and the target is left at a
// well-defined partial state. The engine itself is single-threaded;
// the lock only serializes the API reader against the tick loop.
type Controller struct {
	mu        sync.Mutex
	scene     Scene
	playbacks map[string]*playback
	order     []string
}

// NewController creates a Controller reporting removals to scene,
// which may be nil when nothing needs detaching.
func NewController(scene Scene) *Controller {
	c := new(Controller)
	c.scene = scene
	c.playbacks = make(map[string]*playback)
	return c
}

// Play registers a pending animation and returns its handle.
func (c *Controller) Play(anim *Animation) (string, error) {
	if anim == nil || anim.Target == nil {
		return "", ErrInvalidConfiguration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	handle := uuid.New().String()
	pb := new(playback)
	pb.anim = anim
	pb.clock = NewProgressClock(anim.RunTimeMs, anim.Rate)
	pb.state = StatePending
	c.playbacks[handle] = pb
	c.order = append(c.order, handle)
	return handle, nil
}

// Tick advances one animation to the given elapsed time and returns
// the bounds frame for the renderer. Ticking a completed animation is
// a no-op and returns an empty frame.
func (c *Controller) Tick(handle string, elapsedMs int64) (*BoundsFrame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pb, ok := c.playbacks[handle]
	if !ok {
		return nil, ErrUnknownHandle
	}
	if pb.state == StateCompleted {
		return NewBoundsFrame(handle, 0), nil
	}
	if pb.state == StatePending {
		c.begin(pb)
	}

	// A target with no sub-elements is an instantly complete
	// animation, not an error.
	if len(pb.anim.Target.Family()) == 0 {
		c.complete(pb)
		return NewBoundsFrame(handle, 0), nil
	}

	global := pb.clock.Advance(elapsedMs)
	frame := c.apply(handle, pb, global)
	if global >= 1 {
		c.complete(pb)
	}
	return frame, nil
}

// IsComplete reports whether the animation behind handle has run to
// its end.
func (c *Controller) IsComplete(handle string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pb, ok := c.playbacks[handle]
	return ok && pb.state == StateCompleted
}

// Forget drops a handle, releasing the animation. Safe at any point
// of the lifecycle; the target keeps its current bounds.
func (c *Controller) Forget(handle string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.playbacks, handle)
	for i, h := range c.order {
		if h == handle {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// States returns the current view of every animation in play order.
func (c *Controller) States() []AnimationState {
	c.mu.Lock()
	defer c.mu.Unlock()

	states := make([]AnimationState, 0, len(c.order))
	for _, handle := range c.order {
		pb := c.playbacks[handle]
		states = append(states, AnimationState{
			Handle:   handle,
			Target:   pb.anim.Target.ID,
			Variant:  pb.anim.Policy.Kind.String(),
			State:    pb.state.String(),
			Progress: pb.clock.Current(),
		})
	}
	return states
}

// begin applies the policy-dependent start state: Uncreate plays over
// a fully shown object, everything else starts hidden.
func (c *Controller) begin(pb *playback) {
	if pb.anim.Policy.Kind == Uncreate {
		pb.anim.Target.setFamilyBounds(0, 1)
	} else {
		pb.anim.Target.setFamilyBounds(0, 0)
	}
	pb.state = StateRunning
}

func (c *Controller) complete(pb *playback) {
	pb.state = StateCompleted
	if pb.anim.Remover && c.scene != nil {
		c.scene.Detach(pb.anim.Target)
	}
}

// apply fans the global progress out to the sub-elements and writes
// their bounds, collecting the frame in family order.
func (c *Controller) apply(handle string, pb *playback, global float64) *BoundsFrame {
	if pb.anim.Policy.Discrete() {
		return c.applyDiscrete(handle, pb, global)
	}

	leaves := pb.anim.Target.Family()
	n := len(leaves)
	frame := NewBoundsFrame(handle, n)
	frame.FillColor = pb.anim.Policy.FillColor
	for i, leaf := range leaves {
		local := LocalProgress(global, i, n, pb.anim.LagRatio)
		lower, upper := pb.anim.Policy.Bounds(local)
		if leaf.Extent == 0 && local > 0 {
			// Zero-extent sub-elements reveal instantaneously.
			lower, upper = 0, 1
		}
		leaf.setBounds(lower, upper)
		frame.Rows = append(frame.Rows, BoundsRow{
			ID:    leaf.ID,
			Lower: lower,
			Upper: upper,
			Fill:  pb.anim.Policy.FillAlpha(local),
		})
	}
	return frame
}

// applyDiscrete toggles whole top-level sub-elements: accumulating
// subsets, one-at-a-time cycling, and word-by-word with a fade on the
// arriving word.
func (c *Controller) applyDiscrete(handle string, pb *playback, global float64) *BoundsFrame {
	children := pb.anim.Target.Children()
	if len(children) == 0 {
		children = []*Mobject{pb.anim.Target}
	}
	n := len(children)

	frame := NewBoundsFrame(handle, n)
	frame.FillColor = pb.anim.Policy.FillColor

	switch pb.anim.Policy.Kind {
	case ShowSubmobjectsOneByOne:
		index := pb.anim.Policy.VisibleIndex(global, n)
		for i, child := range children {
			c.toggleChild(frame, child, i == index, 1)
		}
	default:
		count := pb.anim.Policy.VisibleCount(global, n)
		for i, child := range children {
			switch {
			case i < count:
				c.toggleChild(frame, child, true, 1)
			case i == count && count < n && pb.anim.Policy.Kind == AddTextWordByWord:
				fade := util.FadeIn(global*float64(n) - float64(count))
				c.toggleChild(frame, child, fade > 0, fade)
			default:
				c.toggleChild(frame, child, false, 0)
			}
		}
	}
	return frame
}

func (c *Controller) toggleChild(frame *BoundsFrame, child *Mobject, visible bool, fill float64) {
	lower, upper := 0.0, 0.0
	if visible {
		upper = 1.0
	} else {
		fill = 0
	}
	for _, leaf := range child.Family() {
		leaf.setBounds(lower, upper)
		frame.Rows = append(frame.Rows, BoundsRow{ID: leaf.ID, Lower: lower, Upper: upper, Fill: fill})
	}
}

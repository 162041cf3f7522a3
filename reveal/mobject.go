package reveal

import (
	"fmt"
	"strings"
)

// A Mobject is a drawable object composed of ordered sub-elements.
// Leaves carry a drawable extent; groups collect children. The tree is
// built up front by the host and traversed read-only by the engine;
// only the visibility bounds mutate during playback, and only the
// animation currently targeting the object writes them.
type Mobject struct {
	ID       string
	Extent   float64
	children []*Mobject

	lower float64
	upper float64
}

// NewLeaf creates a leaf Mobject with the given drawable extent.
func NewLeaf(id string, extent float64) *Mobject {
	m := new(Mobject)
	m.ID = id
	if extent < 0 {
		extent = 0
	}
	m.Extent = extent
	return m
}

// NewGroup creates a Mobject that groups the given children in order.
func NewGroup(id string, children ...*Mobject) *Mobject {
	m := new(Mobject)
	m.ID = id
	m.children = children
	return m
}

// NewText builds a text Mobject as a group of word groups, one glyph
// leaf per rune. Word granularity is what AddTextWordByWord animates;
// glyph granularity is what Write animates.
func NewText(id string, text string) *Mobject {
	words := strings.Fields(text)
	groups := make([]*Mobject, 0, len(words))
	for w, word := range words {
		runes := []rune(word)
		glyphs := make([]*Mobject, len(runes))
		for g := range runes {
			glyphs[g] = NewLeaf(fmt.Sprintf("%s.w%d.g%d", id, w, g), 1.0)
		}
		groups = append(groups, NewGroup(fmt.Sprintf("%s.w%d", id, w), glyphs...))
	}
	return NewGroup(id, groups...)
}

// IsLeaf reports whether m has no children.
func (m *Mobject) IsLeaf() bool {
	return len(m.children) == 0
}

// Children returns the ordered top-level sub-elements of m.
func (m *Mobject) Children() []*Mobject {
	return m.children
}

// Family returns the leaves of m in depth-first order. The order is
// fixed for the lifetime of the tree, which is what makes bounds
// output reproducible for identical progress input.
func (m *Mobject) Family() []*Mobject {
	if m.IsLeaf() {
		return []*Mobject{m}
	}
	family := make([]*Mobject, 0, len(m.children))
	for _, child := range m.children {
		family = append(family, child.Family()...)
	}
	return family
}

// Bounds returns the currently visible sub-range of m's drawable
// extent. Only meaningful on leaves.
func (m *Mobject) Bounds() (lower, upper float64) {
	return m.lower, m.upper
}

// setBounds writes m's visibility bounds, clamping both values to
// [0,1] and keeping lower <= upper.
func (m *Mobject) setBounds(lower, upper float64) {
	lower = clamp01(lower)
	upper = clamp01(upper)
	if lower > upper {
		lower = upper
	}
	m.lower = lower
	m.upper = upper
}

// setFamilyBounds writes the same bounds onto every leaf under m.
func (m *Mobject) setFamilyBounds(lower, upper float64) {
	for _, leaf := range m.Family() {
		leaf.setBounds(lower, upper)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMobject_FamilyOrder(t *testing.T) {
	tree := NewGroup("root",
		NewGroup("g1", NewLeaf("a", 1), NewLeaf("b", 1)),
		NewLeaf("c", 1),
		NewGroup("g2", NewGroup("g3", NewLeaf("d", 1))))

	ids := make([]string, 0, 4)
	for _, leaf := range tree.Family() {
		ids = append(ids, leaf.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids, "depth-first, declaration order")
}

func TestMobject_BoundsClamped(t *testing.T) {
	m := NewLeaf("a", 1)
	m.setBounds(-0.5, 1.5)
	lower, upper := m.Bounds()
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upper)

	m.setBounds(0.8, 0.2)
	lower, upper = m.Bounds()
	assert.Equal(t, lower, upper, "lower may never pass upper")
}

func TestNewText_WordGroups(t *testing.T) {
	text := NewText("poem", "to be  or")

	words := text.Children()
	require.Len(t, words, 3, "whitespace runs collapse")
	assert.Equal(t, "poem.w0", words[0].ID)
	assert.Len(t, words[0].Children(), 2)
	assert.Equal(t, "poem.w1.g1", words[1].Children()[1].ID)
	assert.Len(t, text.Family(), 6)

	for _, leaf := range text.Family() {
		assert.Equal(t, 1.0, leaf.Extent)
	}
}

func TestNewLeaf_NegativeExtent(t *testing.T) {
	m := NewLeaf("a", -2)
	assert.Equal(t, 0.0, m.Extent)
}

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetItemsSelectsFirstWhenUnselected(t *testing.T) {
	var l List[string]
	_, ok := l.Index()
	require.False(t, ok)

	l.SetItems([]string{"a", "b", "c"})
	idx, ok := l.Index()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSetItemsKeepsValidSelection(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.SelectIndex(1)

	l.SetItems([]string{"x", "y", "z", "w"})
	idx, _ := l.Index()
	assert.Equal(t, 1, idx)

	l.SetItems([]string{"x", "y", "z", "w"})
	idx, _ = l.Index()
	assert.Equal(t, 1, idx, "repeated SetItems must not move the selection")
}

func TestSetItemsClampsWhenShrinking(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d"})
	l.SelectIndex(3)

	l.SetItems([]string{"a", "b"})
	idx, ok := l.Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSetItemsEmptyClearsSelection(t *testing.T) {
	l := NewList([]string{"a", "b"})
	l.SetItems(nil)

	_, ok := l.Index()
	assert.False(t, ok)
	_, ok = l.Current()
	assert.False(t, ok)
	assert.Nil(t, l.CurrentRef())

	l.SetItems([]string{"n"})
	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "n", cur)
}

func TestSelectionAlwaysInRange(t *testing.T) {
	sizes := []int{5, 0, 3, 8, 1, 0, 2, 6}
	var l List[int]
	for step, n := range sizes {
		items := make([]int, n)
		l.SetItems(items)
		l.SelectIndex(step * 3)
		idx, ok := l.Index()
		if n == 0 {
			assert.False(t, ok, "step %d", step)
			continue
		}
		require.True(t, ok, "step %d", step)
		assert.Less(t, idx, n, "step %d", step)
		assert.GreaterOrEqual(t, idx, 0, "step %d", step)
	}
}

func TestSelectIndexClamps(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.SelectIndex(10)
	idx, _ := l.Index()
	assert.Equal(t, 2, idx)

	l.SelectIndex(-4)
	idx, _ = l.Index()
	assert.Equal(t, 0, idx)

	var empty List[string]
	empty.SelectIndex(2)
	_, ok := empty.Index()
	assert.False(t, ok)
}

func TestSetItemsCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	l := NewList(src)
	src[0] = "mutated"
	cur, _ := l.Current()
	assert.Equal(t, "a", cur)
}

func TestIndexFunc(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	assert.Equal(t, 2, l.IndexFunc(func(s string) bool { return s == "c" }))
	assert.Equal(t, -1, l.IndexFunc(func(s string) bool { return s == "z" }))
}

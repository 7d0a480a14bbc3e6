package state

// List is an ordered collection with an optional selected index. A non-empty
// list always has a selection; an empty list never does.
type List[T any] struct {
	items    []T
	selected int
	hasSel   bool
}

// NewList builds a list holding a copy of items with the first one selected.
func NewList[T any](items []T) List[T] {
	var l List[T]
	l.SetItems(items)
	return l
}

// SetItems replaces the contents. A still-valid selection is kept, a selection
// past the new end is clamped to the last item, and an unselected list selects
// the first item.
func (l *List[T]) SetItems(items []T) {
	l.items = cloneItems(items)
	if len(l.items) == 0 {
		l.selected = 0
		l.hasSel = false
		return
	}
	switch {
	case !l.hasSel || l.selected < 0:
		l.selected = 0
	case l.selected >= len(l.items):
		l.selected = len(l.items) - 1
	}
	l.hasSel = true
}

// Items returns the underlying items. Callers must not retain or modify the slice.
func (l *List[T]) Items() []T {
	return l.items
}

// Len reports the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Index returns the selected index.
func (l *List[T]) Index() (int, bool) {
	if !l.hasSel || len(l.items) == 0 {
		return 0, false
	}
	return l.selected, true
}

// Current returns the selected item.
func (l *List[T]) Current() (T, bool) {
	idx, ok := l.Index()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[idx], true
}

// CurrentRef returns a pointer to the selected item, or nil when empty.
func (l *List[T]) CurrentRef() *T {
	idx, ok := l.Index()
	if !ok {
		return nil
	}
	return &l.items[idx]
}

// At returns a pointer to the item at i, or nil when out of range.
func (l *List[T]) At(i int) *T {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return &l.items[i]
}

// SelectIndex selects i, clamped into range. Empty lists stay unselected.
func (l *List[T]) SelectIndex(i int) {
	if len(l.items) == 0 {
		l.selected = 0
		l.hasSel = false
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.items) {
		i = len(l.items) - 1
	}
	l.selected = i
	l.hasSel = true
}

// IndexFunc returns the first index whose item satisfies match, or -1.
func (l *List[T]) IndexFunc(match func(T) bool) int {
	for i, item := range l.items {
		if match(item) {
			return i
		}
	}
	return -1
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}

package state

import "sort"

// SortOption names one ordering offered by a table's sort prompt.
type SortOption[T any] struct {
	Name string
	Less func(a, b T) bool
}

// Table is a List with optional, user-selectable sorting.
type Table[T any] struct {
	List[T]

	sortOptions   List[SortOption[T]]
	sortAscending bool
	sorted        bool
	sortedBy      int
}

// NewTable builds a table over a copy of items.
func NewTable[T any](items []T) Table[T] {
	var t Table[T]
	t.SetItems(items)
	return t
}

// SetItems replaces the rows and reapplies the active sort, if any.
func (t *Table[T]) SetItems(items []T) {
	t.List.SetItems(items)
	if t.sorted {
		t.sortItems()
	}
}

// SetSortOptions installs the orderings offered by the sort prompt.
func (t *Table[T]) SetSortOptions(options []SortOption[T]) {
	t.sortOptions.SetItems(options)
	t.sortAscending = true
}

// SortOptions exposes the sort prompt list.
func (t *Table[T]) SortOptions() *List[SortOption[T]] {
	return &t.sortOptions
}

// Sortable reports whether the table has any sort options.
func (t *Table[T]) Sortable() bool {
	return !t.sortOptions.IsEmpty()
}

// SortAscending reports the current sort direction.
func (t *Table[T]) SortAscending() bool {
	return t.sortAscending
}

// ApplySorting sorts by the selected option. When toggle is set the direction
// flips first, so submitting the same option twice reverses the order.
func (t *Table[T]) ApplySorting(toggle bool) {
	if t.sortOptions.IsEmpty() {
		return
	}
	if toggle {
		t.sortAscending = !t.sortAscending
	}
	t.sorted = true
	t.sortItems()
}

// SubmitSort applies the option selected in the sort prompt. Submitting the
// option already in effect reverses the order.
func (t *Table[T]) SubmitSort() {
	idx, ok := t.sortOptions.Index()
	if !ok {
		return
	}
	t.ApplySorting(t.sorted && idx == t.sortedBy)
	t.sortedBy = idx
}

func (t *Table[T]) sortItems() {
	option, ok := t.sortOptions.Current()
	if !ok || option.Less == nil || len(t.items) < 2 {
		return
	}
	less := option.Less
	if t.sortAscending {
		sort.SliceStable(t.items, func(i, j int) bool { return less(t.items[i], t.items[j]) })
		return
	}
	sort.SliceStable(t.items, func(i, j int) bool { return less(t.items[j], t.items[i]) })
}

// Filterable pairs a source table with an optional filtered view. While the
// filtered view is set it replaces the source for selection and drill-down.
type Filterable[T any] struct {
	Source   Table[T]
	filtered *Table[T]
}

// Active returns the filtered view when present, otherwise the source.
func (f *Filterable[T]) Active() *Table[T] {
	if f.filtered != nil {
		return f.filtered
	}
	return &f.Source
}

// IsFiltered reports whether a filtered view is active.
func (f *Filterable[T]) IsFiltered() bool {
	return f.filtered != nil
}

// SetFiltered makes items the active filtered view.
func (f *Filterable[T]) SetFiltered(items []T) {
	view := &Table[T]{}
	if f.Source.Sortable() {
		view.SetSortOptions(f.Source.sortOptions.Items())
	}
	view.SetItems(items)
	f.filtered = view
}

// ResetFilter drops the filtered view.
func (f *Filterable[T]) ResetFilter() {
	f.filtered = nil
}

// SetItems replaces the source rows. An active filtered view is kept.
func (f *Filterable[T]) SetItems(items []T) {
	f.Source.SetItems(items)
}

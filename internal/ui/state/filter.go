package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Query is the text buffer of a search or filter input plus its mode flag.
type Query struct {
	Active bool
	Input  HorizontallyScrollableText
}

// Begin enters input mode with an empty buffer.
func (q *Query) Begin() {
	q.Active = true
	q.Input = NewHorizontallyScrollableText("")
}

// Text returns the typed text.
func (q *Query) Text() string {
	return q.Input.Text()
}

// Clear leaves input mode and empties the buffer.
func (q *Query) Clear() {
	q.Active = false
	q.Input = HorizontallyScrollableText{}
}

// Navigator is the part of the navigation stack the search and filter
// protocol needs.
type Navigator[B comparable] interface {
	Pop() bool
	PopAndPush(Route[B])
}

// Outcome reports what a search or filter did.
type Outcome struct {
	Matched    bool
	Cancelled  bool
	Index      int
	Count      int
	Suggestion string
}

// StripNonSearchCharacters lowercases s and drops everything but letters,
// digits, dots and whitespace.
func StripNonSearchCharacters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Search returns the index of the first item whose text contains query,
// comparing both sides through StripNonSearchCharacters.
func Search[T any](items []T, text func(T) string, query string) (int, bool) {
	needle := StripNonSearchCharacters(query)
	for i, item := range items {
		if strings.Contains(StripNonSearchCharacters(text(item)), needle) {
			return i, true
		}
	}
	return -1, false
}

// Filter returns the items whose text contains query, in source order.
func Filter[T any](items []T, text func(T) string, query string) []T {
	needle := StripNonSearchCharacters(query)
	matches := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(StripNonSearchCharacters(text(item)), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Suggest returns the closest fuzzy match for query among items, used to
// annotate a failed search.
func Suggest[T any](items []T, text func(T) string, query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return "", false
	}
	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = text(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}

// ApplySearch runs the search protocol over view. On a match it pops the
// search input and selects the match; otherwise it replaces the input with
// errRoute. The query is cleared either way.
func ApplySearch[T any, B comparable](nav Navigator[B], q *Query, view *Table[T], text func(T) string, errRoute Route[B]) Outcome {
	query := q.Text()
	q.Clear()

	idx, ok := Search(view.Items(), text, query)
	if ok {
		nav.Pop()
		view.SelectIndex(idx)
		return Outcome{Matched: true, Index: idx, Count: 1}
	}
	nav.PopAndPush(errRoute)
	out := Outcome{Index: -1}
	out.Suggestion, _ = Suggest(view.Items(), text, query)
	return out
}

// ApplyFilter runs the filter protocol over view. An empty query cancels and
// leaves the source active. A query with no matches replaces the input with
// errRoute and discards any filtered view. Otherwise the matches become the
// active filtered view. The query is cleared in every branch.
func ApplyFilter[T any, B comparable](nav Navigator[B], q *Query, view *Filterable[T], text func(T) string, errRoute Route[B]) Outcome {
	query := q.Text()
	q.Clear()

	if query == "" {
		view.ResetFilter()
		nav.Pop()
		return Outcome{Cancelled: true, Index: -1}
	}

	source := view.Source.Items()
	matches := Filter(source, text, query)
	if len(matches) == 0 {
		view.ResetFilter()
		nav.PopAndPush(errRoute)
		out := Outcome{Index: -1}
		out.Suggestion, _ = Suggest(source, text, query)
		return out
	}
	nav.Pop()
	view.SetFiltered(matches)
	return Outcome{Matched: true, Index: 0, Count: len(matches)}
}

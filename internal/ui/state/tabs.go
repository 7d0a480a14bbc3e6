package state

// TabRoute describes one tab.
type TabRoute[B comparable] struct {
	Title          string
	Route          Route[B]
	Help           string
	ContextualHelp string
}

// TabState is an ordered set of tabs with an active index that wraps.
type TabState[B comparable] struct {
	tabs  []TabRoute[B]
	index int
}

// NewTabState returns tabs with the first one active.
func NewTabState[B comparable](tabs ...TabRoute[B]) TabState[B] {
	return TabState[B]{tabs: cloneItems(tabs)}
}

// Tabs returns the tab definitions.
func (t *TabState[B]) Tabs() []TabRoute[B] {
	return t.tabs
}

// Index returns the active tab index.
func (t *TabState[B]) Index() int {
	return t.index
}

// SetIndex activates tab i, clamped into range, and returns it.
func (t *TabState[B]) SetIndex(i int) TabRoute[B] {
	if len(t.tabs) == 0 {
		t.index = 0
		return TabRoute[B]{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.tabs) {
		i = len(t.tabs) - 1
	}
	t.index = i
	return t.tabs[i]
}

// Next activates the following tab, wrapping to the first.
func (t *TabState[B]) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.tabs)
}

// Previous activates the preceding tab, wrapping to the last.
func (t *TabState[B]) Previous() {
	if len(t.tabs) == 0 {
		return
	}
	if t.index > 0 {
		t.index--
		return
	}
	t.index = len(t.tabs) - 1
}

// ActiveRoute returns the route owned by the active tab.
func (t *TabState[B]) ActiveRoute() Route[B] {
	if len(t.tabs) == 0 {
		return Route[B]{}
	}
	return t.tabs[t.index].Route
}

// ActiveHelp returns the static help of the active tab.
func (t *TabState[B]) ActiveHelp() string {
	if len(t.tabs) == 0 {
		return ""
	}
	return t.tabs[t.index].Help
}

// ActiveContextualHelp returns the contextual help of the active tab.
func (t *TabState[B]) ActiveContextualHelp() (string, bool) {
	if len(t.tabs) == 0 || t.tabs[t.index].ContextualHelp == "" {
		return "", false
	}
	return t.tabs[t.index].ContextualHelp, true
}

// IndexOf returns the index of the tab owning block, or -1.
func (t *TabState[B]) IndexOf(block B) int {
	for i, tab := range t.tabs {
		if tab.Route.Block == block {
			return i
		}
	}
	return -1
}

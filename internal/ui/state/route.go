package state

import "fmt"

// Route is one entry of the navigation history: the displayed block plus an
// optional context block naming what a shared popup belongs to. The zero
// value of B means "no block", so a zero Context is no context. Nesting is
// limited to these two levels.
type Route[B comparable] struct {
	Block   B
	Context B
}

// NewRoute returns a route without context.
func NewRoute[B comparable](block B) Route[B] {
	return Route[B]{Block: block}
}

// RouteWithContext returns a route for block drawn over context.
func RouteWithContext[B comparable](block, context B) Route[B] {
	return Route[B]{Block: block, Context: context}
}

// HasContext reports whether a context block is set.
func (r Route[B]) HasContext() bool {
	var none B
	return r.Context != none
}

func (r Route[B]) String() string {
	if !r.HasContext() {
		return fmt.Sprint(r.Block)
	}
	return fmt.Sprintf("%v(%v)", r.Block, r.Context)
}

// NavigationStack is the route history. It is seeded with a root route and
// never shrinks below it.
type NavigationStack[B comparable] struct {
	routes []Route[B]
}

// NewNavigationStack returns a stack holding only root.
func NewNavigationStack[B comparable](root Route[B]) *NavigationStack[B] {
	return &NavigationStack[B]{routes: []Route[B]{root}}
}

// Push makes r the current route.
func (s *NavigationStack[B]) Push(r Route[B]) {
	s.routes = append(s.routes, r)
}

// Pop drops the current route. It reports false and does nothing when only
// the root remains.
func (s *NavigationStack[B]) Pop() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// PopAndPush replaces the current route with r, leaving the history below
// untouched. On a stack holding only the root, the root itself is replaced.
func (s *NavigationStack[B]) PopAndPush(r Route[B]) {
	if len(s.routes) == 0 {
		s.routes = append(s.routes, r)
		return
	}
	s.routes[len(s.routes)-1] = r
}

// Current returns the top route.
func (s *NavigationStack[B]) Current() Route[B] {
	if len(s.routes) == 0 {
		return Route[B]{}
	}
	return s.routes[len(s.routes)-1]
}

// Previous returns the route beneath the top.
func (s *NavigationStack[B]) Previous() (Route[B], bool) {
	if len(s.routes) < 2 {
		return Route[B]{}, false
	}
	return s.routes[len(s.routes)-2], true
}

// Depth returns the number of routes on the stack.
func (s *NavigationStack[B]) Depth() int {
	return len(s.routes)
}

// Routes returns a copy of the history, root first.
func (s *NavigationStack[B]) Routes() []Route[B] {
	return cloneItems(s.routes)
}

// Reset drops everything above the root and replaces the root with r.
func (s *NavigationStack[B]) Reset(r Route[B]) {
	s.routes = []Route[B]{r}
}

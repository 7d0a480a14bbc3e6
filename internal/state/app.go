package state

import (
	"strings"

	"github.com/atomicstack/servarr-tui/internal/logging"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// DefaultTickUntilPoll is the number of ticks between background polls when
// the configuration does not set one.
const DefaultTickUntilPoll = 80

// App is the single application state value. It is owned by the UI event loop;
// nothing else mutates it.
type App struct {
	nav *uistate.NavigationStack[radarr.Block]

	Data  *radarr.Data
	Error radarr.ScrollText

	IsLoading           bool
	IsRouting           bool
	ShouldRefresh       bool
	ShouldIgnoreQuitKey bool
	IsFirstRender       bool

	TickCount     int
	TickUntilPoll int
}

// NewApp returns state positioned on the default block.
func NewApp(tickUntilPoll int) *App {
	if tickUntilPoll <= 0 {
		tickUntilPoll = DefaultTickUntilPoll
	}
	return &App{
		nav:           uistate.NewNavigationStack(radarr.NewRoute(radarr.DefaultBlock)),
		Data:          radarr.NewData(),
		IsFirstRender: true,
		TickUntilPoll: tickUntilPoll,
	}
}

// Push makes route the current route.
func (a *App) Push(route radarr.Route) {
	a.IsRouting = true
	a.nav.Push(route)
	events.Nav.Push(route, a.nav.Depth())
}

// Pop returns to the previous route. The root route is never removed.
func (a *App) Pop() bool {
	a.IsRouting = true
	from := a.nav.Current()
	ok := a.nav.Pop()
	if ok {
		events.Nav.Pop(from, a.nav.Depth())
	}
	return ok
}

// PopAndPush replaces the current route.
func (a *App) PopAndPush(route radarr.Route) {
	a.IsRouting = true
	from := a.nav.Current()
	a.nav.PopAndPush(route)
	events.Nav.PopAndPush(from, route, a.nav.Depth())
}

// Route returns the current route.
func (a *App) Route() radarr.Route {
	return a.nav.Current()
}

// ActiveBlock returns the block of the current route.
func (a *App) ActiveBlock() radarr.Block {
	return a.nav.Current().Block
}

// PreviousRoute returns the route beneath the current one.
func (a *App) PreviousRoute() (radarr.Route, bool) {
	return a.nav.Previous()
}

// Routes returns the navigation history, root first.
func (a *App) Routes() []radarr.Route {
	return a.nav.Routes()
}

// Depth returns the navigation stack depth.
func (a *App) Depth() int {
	return a.nav.Depth()
}

// HandleError stores err in the error slot, logs it, and stops loading.
func (a *App) HandleError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	a.IsLoading = false
	a.Error = uistate.NewHorizontallyScrollableText(collapseWhitespace(err.Error()))
}

// ClearError empties the error slot.
func (a *App) ClearError() {
	a.Error = radarr.ScrollText{}
}

// HasError reports whether an error is displayed.
func (a *App) HasError() bool {
	return !a.Error.IsEmpty()
}

// ResetTickCount restarts the polling interval.
func (a *App) ResetTickCount() {
	a.TickCount = 0
}

// Tick advances the tick counter.
func (a *App) Tick() {
	a.TickCount++
}

// PollDue reports whether the current tick falls on the polling interval.
func (a *App) PollDue() bool {
	return a.TickUntilPoll > 0 && a.TickCount%a.TickUntilPoll == 0
}

// SwitchTab activates the neighbouring main tab and replaces the current
// route with it. Positive delta moves right.
func (a *App) SwitchTab(delta int) {
	tabs := &a.Data.MainTabs
	if delta < 0 {
		tabs.Previous()
	} else {
		tabs.Next()
	}
	a.PopAndPush(tabs.ActiveRoute())
}

// SyncMainTab points the main tabs at the tab owning the root route.
func (a *App) SyncMainTab() {
	root := a.nav.Routes()[0]
	if idx := a.Data.MainTabs.IndexOf(root.Block); idx >= 0 {
		a.Data.MainTabs.SetIndex(idx)
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

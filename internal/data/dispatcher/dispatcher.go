package dispatcher

import (
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// Sink receives the remote events a dispatch cycle issues, in order.
type Sink interface {
	Dispatch(radarr.Event)
}

// FirstRenderEvents are fetched once when the UI first draws, whatever
// screen it opens on.
var FirstRenderEvents = []radarr.Event{
	radarr.GetQualityProfiles,
	radarr.GetTags,
	radarr.GetRootFolders,
	radarr.GetOverview,
	radarr.GetStatus,
}

// RefreshEvents are the shared reference data refreshed on every poll.
var RefreshEvents = []radarr.Event{
	radarr.GetQualityProfiles,
	radarr.GetTags,
	radarr.GetRootFolders,
	radarr.GetDownloads,
}

// Dispatcher maps the active block to the fetches it needs and fires
// confirmed prompt actions.
type Dispatcher struct {
	sink Sink
}

func New(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

// Events returns the fetches block needs, in issue order. Blocks with no
// fetches return nil.
func Events(app *state.App, block radarr.Block) []radarr.Event {
	data := app.Data
	switch block {
	case radarr.Blocklist:
		return []radarr.Event{radarr.GetBlocklist}
	case radarr.Collections:
		return []radarr.Event{radarr.GetCollections}
	case radarr.Downloads:
		return []radarr.Event{radarr.GetDownloads}
	case radarr.RootFolders:
		return []radarr.Event{radarr.GetRootFolders}
	case radarr.Movies:
		return []radarr.Event{radarr.GetMovies, radarr.GetDownloads}
	case radarr.Indexers:
		return []radarr.Event{radarr.GetTags, radarr.GetIndexers}
	case radarr.AllIndexerSettingsPrompt:
		return []radarr.Event{radarr.GetAllIndexerSettings}
	case radarr.TestIndexer:
		return []radarr.Event{radarr.TestIndexerEvent}
	case radarr.TestAllIndexers:
		return []radarr.Event{radarr.TestAllIndexersEvent}
	case radarr.System:
		return []radarr.Event{radarr.GetTasks, radarr.GetQueuedEvents, radarr.GetLogs}
	case radarr.SystemUpdates:
		return []radarr.Event{radarr.GetUpdates}
	case radarr.AddMovieSearchResults:
		return []radarr.Event{radarr.SearchNewMovie}
	case radarr.MovieDetails, radarr.FileInfo:
		return []radarr.Event{radarr.GetMovieDetails}
	case radarr.MovieHistory:
		return []radarr.Event{radarr.GetMovieHistory}
	case radarr.Cast, radarr.Crew:
		modal := data.MovieDetailsModal
		if modal == nil || modal.MovieCast.IsEmpty() || modal.MovieCrew.IsEmpty() {
			return []radarr.Event{radarr.GetMovieCredits}
		}
	case radarr.ManualSearch:
		modal := data.MovieDetailsModal
		if modal == nil || modal.MovieReleases.IsEmpty() {
			return []radarr.Event{radarr.GetReleases}
		}
	}
	return nil
}

// DispatchByBlock issues the fetches for block, fires any confirmed prompt
// action after them, and restarts the polling interval.
func (d *Dispatcher) DispatchByBlock(app *state.App, block radarr.Block) []radarr.Event {
	if block == radarr.CollectionDetails {
		app.IsLoading = true
		app.Data.PopulateCollectionMovies()
		app.IsLoading = false
	}

	issued := Events(app, block)
	for _, evt := range issued {
		d.send(app, evt)
	}
	events.Dispatch.Block(block, eventNames(issued))

	if fired, ok := d.CheckForPromptAction(app); ok {
		issued = append(issued, fired)
	}
	app.ResetTickCount()
	return issued
}

// Dispatch runs a dispatch cycle for the current route.
func (d *Dispatcher) Dispatch(app *state.App) []radarr.Event {
	return d.DispatchByBlock(app, app.ActiveBlock())
}

// CheckForPromptAction consumes the pending confirmation. A confirmed action
// is issued exactly once and schedules a refresh; the confirmation is cleared
// either way.
func (d *Dispatcher) CheckForPromptAction(app *state.App) (radarr.Event, bool) {
	data := app.Data
	if !data.PromptConfirm {
		return radarr.NoEvent, false
	}
	data.PromptConfirm = false
	action := data.PromptConfirmAction
	data.PromptConfirmAction = radarr.NoEvent
	if action == radarr.NoEvent {
		return radarr.NoEvent, false
	}
	events.Dispatch.Confirmed(action)
	d.send(app, action)
	app.ShouldRefresh = true
	return action, true
}

// RefreshMetadata refetches the shared reference data.
func (d *Dispatcher) RefreshMetadata(app *state.App) {
	for _, evt := range RefreshEvents {
		d.send(app, evt)
	}
}

// OnTick applies the polling policy for one UI tick.
func (d *Dispatcher) OnTick(app *state.App) {
	refresh := app.ShouldRefresh
	app.ShouldRefresh = false

	switch {
	case app.IsFirstRender:
		events.Dispatch.Tick("first_render", app.TickCount)
		for _, evt := range FirstRenderEvents {
			d.send(app, evt)
		}
		d.Dispatch(app)
		app.IsFirstRender = false
	case app.IsRouting || app.PollDue():
		events.Dispatch.Tick("poll", app.TickCount)
		d.Dispatch(app)
		d.RefreshMetadata(app)
	case refresh:
		events.Dispatch.Tick("refresh", app.TickCount)
		d.Dispatch(app)
	}
	app.IsRouting = false
	app.Tick()
}

func (d *Dispatcher) send(app *state.App, evt radarr.Event) {
	app.IsLoading = true
	d.sink.Dispatch(evt)
}

func eventNames(evts []radarr.Event) []string {
	names := make([]string, len(evts))
	for i, evt := range evts {
		names[i] = evt.String()
	}
	return names
}

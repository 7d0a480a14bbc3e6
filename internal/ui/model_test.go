package ui

import (
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/testutil"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

const awaitTimeout = 5 * time.Second

// newServerHarness wires a harness to a fake Radarr through a real client
// and worker.
func newServerHarness(t *testing.T, srv *testutil.RadarrServer, opts Options) *Harness {
	t.Helper()
	client := network.NewClient(srv.URL, testutil.FakeAPIKey, time.Second)
	worker := backend.NewWorker(client, backend.Options{Workers: 2, Timeout: time.Second, MinInterval: time.Millisecond})
	t.Cleanup(func() {
		worker.Stop()
		worker.Wait()
	})
	return NewHarness(NewModel(worker, opts))
}

func handleStartup(t *testing.T, srv *testutil.RadarrServer) {
	t.Helper()
	srv.Handle(t, http.MethodGet, "/qualityprofile", http.StatusOK, `[{"id": 1, "name": "HD-1080p"}]`)
	srv.Handle(t, http.MethodGet, "/tag", http.StatusOK, `[{"id": 3, "label": "kids"}]`)
	srv.Handle(t, http.MethodGet, "/rootfolder", http.StatusOK, `[{"id": 1, "path": "/movies", "accessible": true, "freeSpace": 1000}]`)
	srv.Handle(t, http.MethodGet, "/diskspace", http.StatusOK, `[]`)
	srv.Handle(t, http.MethodGet, "/system/status", http.StatusOK, `{"version": "5.2.6.8376", "startTime": "2026-10-01T10:00:00Z"}`)
	srv.Handle(t, http.MethodGet, "/queue", http.StatusOK, `{"records": []}`)
	srv.Handle(t, http.MethodGet, "/movie", http.StatusOK, `[
		{"id": 1, "title": "Alien", "year": 1979, "monitored": true, "hasFile": true, "qualityProfileId": 1, "tags": [3]},
		{"id": 2, "title": "Heat", "year": 1995, "monitored": false, "qualityProfileId": 1, "tags": []}
	]`)
}

func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func TestFirstTickLoadsStartupData(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	handleStartup(t, srv)
	h := newServerHarness(t, srv, Options{Width: 120, Height: 30})

	h.Tick(1)
	require.True(t, h.Model().App().IsLoading)
	require.NoError(t, h.Await(7, awaitTimeout))

	app := h.Model().App()
	assert.False(t, app.HasError(), app.Error.Text())
	assert.False(t, app.IsFirstRender)
	assert.Equal(t, 2, app.Data.Movies.Active().Len())
	assert.Equal(t, "5.2.6.8376", app.Data.Version)

	paths := map[string]bool{}
	for _, r := range srv.Requests() {
		paths[r.Path] = true
	}
	for _, p := range []string{"/qualityprofile", "/tag", "/rootfolder", "/diskspace", "/system/status", "/movie", "/queue"} {
		assert.True(t, paths[p], "expected a request to %s", p)
	}

	view := h.View()
	assert.Contains(t, view, "Alien")
	assert.Contains(t, view, "Heat")
	assert.Contains(t, view, "HD-1080p")
	assert.Contains(t, view, "kids")
	assert.Contains(t, view, "v5.2.6.8376")
}

func TestFailedFetchShowsError(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	handleStartup(t, srv)
	srv.Handle(t, http.MethodGet, "/movie", http.StatusInternalServerError, `{"message": "database is locked"}`)
	h := newServerHarness(t, srv, Options{Width: 120, Height: 30})

	h.Tick(1)
	require.NoError(t, h.Await(7, awaitTimeout))

	app := h.Model().App()
	require.True(t, app.HasError())
	assert.Contains(t, h.View(), errorPrefix)

	h.Key("esc")
	assert.False(t, app.HasError())
	assert.NotContains(t, h.View(), errorPrefix)
}

func TestSecondTickDoesNotRefetch(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	handleStartup(t, srv)
	h := newServerHarness(t, srv, Options{Width: 120, Height: 30})

	h.Tick(1)
	require.NoError(t, h.Await(7, awaitTimeout))
	before := len(srv.Requests())

	h.Tick(1)
	assert.False(t, h.Model().App().IsLoading)
	assert.Len(t, srv.Requests(), before)
}

func TestTabSwitchFetchesNewScreen(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	handleStartup(t, srv)
	srv.Handle(t, http.MethodGet, "/collection", http.StatusOK, `[{"id": 9, "title": "Alien Collection", "monitored": true, "movies": []}]`)
	h := newServerHarness(t, srv, Options{Width: 120, Height: 30})

	h.Tick(1)
	require.NoError(t, h.Await(7, awaitTimeout))

	h.Key("tab")
	require.Equal(t, radarr.Collections, h.Model().App().ActiveBlock())
	h.Tick(1)
	// collections plus the four metadata refreshes
	require.NoError(t, h.Await(5, awaitTimeout))

	_, ok := srv.Last(http.MethodGet, "/collection")
	assert.True(t, ok)
	assert.Contains(t, h.View(), "Alien Collection")
}

func TestQuitKey(t *testing.T) {
	m := NewModel(nil, Options{})
	NewHarness(m)

	_, cmd := m.Update(keyMsg("q"))
	assert.True(t, quits(cmd))
}

func TestQuitKeyIgnoredWhileTyping(t *testing.T) {
	m := NewModel(nil, Options{})
	h := NewHarness(m)
	h.Key("s")
	require.Equal(t, radarr.SearchMovie, m.App().ActiveBlock())

	_, cmd := m.Update(keyMsg("q"))
	assert.False(t, quits(cmd))
	assert.Equal(t, "q", m.App().Data.Search.Text())

	_, cmd = m.Update(keyMsg("ctrl+c"))
	assert.True(t, quits(cmd))
}

func TestHeadlessInitSchedulesNothing(t *testing.T) {
	m := NewModel(nil, Options{})
	NewHarness(m)
	assert.Nil(t, m.Init())
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := NewHarness(NewModel(nil, Options{Width: 60}))
	h.Send(tea.WindowSizeMsg{Width: 200, Height: 50})

	width, height := h.Model().size()
	assert.Equal(t, 60, width)
	assert.Equal(t, 50, height)
}

func TestTickScrollsSelectedTitle(t *testing.T) {
	h := NewHarness(NewModel(nil, Options{Width: 60, Height: 20}))
	data := h.Model().App().Data
	data.Movies.SetItems([]radarr.Movie{
		{ID: 1, Title: uistate.NewHorizontallyScrollableText("The Lord of the Rings: The Fellowship of the Ring (Extended Edition)")},
		{ID: 2, Title: uistate.NewHorizontallyScrollableText("The Lord of the Rings: The Two Towers (Extended Edition)")},
	})

	h.View()
	require.Positive(t, h.Model().titleWidth)
	h.Tick(3)

	movies := data.Movies.Active()
	assert.Equal(t, 3, movies.At(0).Title.Offset())
	assert.Zero(t, movies.At(1).Title.Offset())

	movies.ScrollDown()
	h.Tick(1)
	assert.Zero(t, movies.At(0).Title.Offset())
	assert.Equal(t, 1, movies.At(1).Title.Offset())
}

func TestBackendDoneStopsLoading(t *testing.T) {
	m := NewModel(nil, Options{})
	h := NewHarness(m)
	m.App().IsLoading = true

	h.Send(backendDoneMsg{})
	assert.False(t, m.App().IsLoading)
}

func TestTypingMarksCaretDirty(t *testing.T) {
	m := NewModel(nil, Options{})
	h := NewHarness(m)
	h.Key("s", "a")

	assert.Equal(t, "a", m.App().Data.Search.Text())
	assert.False(t, m.cursorDirty, "flag is consumed at the end of the update")
	assert.False(t, m.cursor.Blink)
}

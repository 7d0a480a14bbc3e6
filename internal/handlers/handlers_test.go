package handlers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/data/dispatcher"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = keyMsg(tea.KeyEnter)
	esc   = keyMsg(tea.KeyEsc)
	up    = keyMsg(tea.KeyUp)
	down  = keyMsg(tea.KeyDown)
	left  = keyMsg(tea.KeyLeft)
	right = keyMsg(tea.KeyRight)
	del   = keyMsg(tea.KeyDelete)
)

func press(t *testing.T, r *Registry, app *state.App, msgs ...tea.KeyMsg) {
	t.Helper()
	for _, msg := range msgs {
		require.False(t, r.HandleKey(app, msg), "unexpected quit on %q", msg.String())
	}
}

func typeText(t *testing.T, r *Registry, app *state.App, text string) {
	t.Helper()
	for _, ch := range text {
		if ch == ' ' {
			press(t, r, app, keyMsg(tea.KeySpace))
			continue
		}
		press(t, r, app, runes(string(ch)))
	}
}

func title(s string) radarr.ScrollText { return uistate.NewHorizontallyScrollableText(s) }

func libraryApp() *state.App {
	app := state.NewApp(0)
	app.Data.Movies.SetItems([]radarr.Movie{
		{ID: 1, TmdbID: 100, Title: title("Alien"), Path: "/movies/alien", QualityProfileID: 1,
			MinimumAvailability: radarr.Released},
		{ID: 2, TmdbID: 200, Title: title("The Matrix"), Path: "/movies/matrix", QualityProfileID: 2},
		{ID: 3, TmdbID: 300, Title: title("Heat"), Path: "/movies/heat"},
	})
	app.Data.QualityProfiles = radarr.NewNameMap(map[int64]string{1: "HD-1080p", 2: "Ultra-HD"})
	app.Data.Tags = radarr.NewNameMap(map[int64]string{1: "alex"})
	app.Data.RootFolders.SetItems([]radarr.RootFolder{{ID: 1, Path: "/movies"}})
	return app
}

func TestDefaultRegistryOwnsEveryBlock(t *testing.T) {
	r := Default()
	for _, b := range radarr.AllBlocks() {
		_, ok := r.Owner(b)
		assert.True(t, ok, "no owner for %s", b)
	}
}

func TestNewRegistryValidatesOwnership(t *testing.T) {
	_, err := NewRegistry(libraryHandler{}, libraryHandler{})
	assert.ErrorIs(t, err, ErrDuplicateOwner)

	_, err = NewRegistry(libraryHandler{})
	assert.ErrorIs(t, err, ErrUnownedBlock)
}

func TestQuitKeyIgnoredInsideInputs(t *testing.T) {
	r := Default()
	app := libraryApp()
	assert.True(t, r.HandleKey(app, runes("q")))

	press(t, r, app, runes("s"))
	require.Equal(t, radarr.SearchMovie, app.ActiveBlock())
	assert.False(t, r.HandleKey(app, runes("q")))
	assert.Equal(t, "q", app.Data.Search.Text())
	assert.True(t, app.ShouldIgnoreQuitKey)

	assert.True(t, r.HandleKey(app, keyMsg(tea.KeyCtrlC)))
}

func TestEscClearsErrorFirst(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.Push(radarr.NewRoute(radarr.MovieDetails))
	app.HandleError(assert.AnError)
	require.True(t, app.HasError())

	press(t, r, app, esc)
	assert.False(t, app.HasError())
	assert.Equal(t, radarr.MovieDetails, app.ActiveBlock())
}

func TestRefreshAndTabKeys(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, keyMsg(tea.KeyCtrlR))
	assert.True(t, app.ShouldRefresh)

	press(t, r, app, keyMsg(tea.KeyTab))
	assert.Equal(t, radarr.Collections, app.ActiveBlock())
	press(t, r, app, keyMsg(tea.KeyShiftTab), keyMsg(tea.KeyShiftTab))
	assert.Equal(t, radarr.System, app.ActiveBlock())
	assert.Equal(t, 1, app.Depth())

	press(t, r, app, right)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
}

func TestSearchMovieSelectsMatch(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("s"))
	typeText(t, r, app, "matrix")
	press(t, r, app, enter)

	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	idx, ok := app.Data.Movies.Active().Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, app.Data.Search.Active)
}

func TestSearchMovieMissShowsErrorUntilNextKey(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("s"))
	typeText(t, r, app, "zzz")
	press(t, r, app, enter)
	require.Equal(t, radarr.SearchMovieError, app.ActiveBlock())

	press(t, r, app, down)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
}

func TestFilterMoviesAndCancel(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("f"))
	typeText(t, r, app, "the")
	press(t, r, app, enter)

	require.True(t, app.Data.Movies.IsFiltered())
	assert.Equal(t, 1, app.Data.Movies.Active().Len())

	press(t, r, app, esc)
	assert.False(t, app.Data.Movies.IsFiltered())
}

func TestInputEditingKeys(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("s"))
	typeText(t, r, app, "the matrix")
	press(t, r, app, keyMsg(tea.KeyCtrlW))
	assert.Equal(t, "the ", app.Data.Search.Text())
	press(t, r, app, keyMsg(tea.KeyBackspace))
	assert.Equal(t, "the", app.Data.Search.Text())

	press(t, r, app, esc)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.Empty(t, app.Data.Search.Text())
}

func TestDeleteMovieRecordsConfirmedAction(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, del)
	require.Equal(t, radarr.DeleteMoviePrompt, app.ActiveBlock())
	require.Equal(t, radarr.DeleteMovieToggleDeleteFile, app.Data.SelectedBlock.Current())

	press(t, r, app, enter)
	assert.True(t, app.Data.DeleteMovieFiles)

	press(t, r, app, down, down)
	require.Equal(t, radarr.DeleteMovieConfirmPrompt, app.Data.SelectedBlock.Current())
	press(t, r, app, right)
	assert.True(t, app.Data.PromptAnswer)
	assert.False(t, app.Data.PromptConfirm, "highlighting yes arms nothing")

	press(t, r, app, enter)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.True(t, app.Data.PromptConfirm)
	assert.Equal(t, radarr.DeleteMovie, app.Data.PromptConfirmAction)
	assert.True(t, app.Data.DeleteMovieFiles, "preferences survive until the request is built")
}

type eventLog struct {
	events []radarr.Event
}

func (l *eventLog) Dispatch(evt radarr.Event) {
	l.events = append(l.events, evt)
}

func (l *eventLog) take() []radarr.Event {
	out := l.events
	l.events = nil
	return out
}

func TestPollWhilePromptOpenKeepsAnswer(t *testing.T) {
	r := Default()
	app := libraryApp()
	d := dispatcher.New(&eventLog{})

	press(t, r, app, del, down, down, right)
	require.Equal(t, radarr.DeleteMovieConfirmPrompt, app.Data.SelectedBlock.Current())
	d.OnTick(app)
	assert.True(t, app.Data.PromptAnswer)

	press(t, r, app, enter)
	assert.True(t, app.Data.PromptConfirm)
	assert.Equal(t, radarr.DeleteMovie, app.Data.PromptConfirmAction)
}

func TestEscOnLaterPromptKeepsPendingConfirmation(t *testing.T) {
	r := Default()
	app := libraryApp()
	log := &eventLog{}
	d := dispatcher.New(log)

	press(t, r, app, del, down, down, right, enter)
	require.Equal(t, radarr.DeleteMovie, app.Data.PromptConfirmAction)

	press(t, r, app, del, esc)
	require.Equal(t, radarr.Movies, app.ActiveBlock())
	d.OnTick(app)

	fired := log.take()
	assert.Contains(t, fired, radarr.DeleteMovie)
	assert.False(t, app.Data.PromptConfirm)
	assert.Equal(t, radarr.NoEvent, app.Data.PromptConfirmAction)
}

func TestHighlightedYesDoesNotFireBeforeSubmit(t *testing.T) {
	r := Default()
	app := libraryApp()
	log := &eventLog{}
	d := dispatcher.New(log)

	press(t, r, app, del, down, down, right, enter)
	d.OnTick(app)
	require.Contains(t, log.take(), radarr.DeleteMovie)

	press(t, r, app, runes("u"), right)
	require.Equal(t, radarr.UpdateAllMoviesPrompt, app.ActiveBlock())
	app.IsRouting = true
	d.OnTick(app)
	fired := log.take()
	assert.NotContains(t, fired, radarr.DeleteMovie)
	assert.NotContains(t, fired, radarr.UpdateAllMovies)

	press(t, r, app, enter)
	d.OnTick(app)
	assert.Contains(t, log.take(), radarr.UpdateAllMovies)
}

func TestDeleteMovieDeclinedResetsPreferences(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, del, enter, down, down, enter)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.Equal(t, radarr.NoEvent, app.Data.PromptConfirmAction)
	assert.False(t, app.Data.DeleteMovieFiles)
}

func TestEditMovieForm(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("e"))
	require.Equal(t, radarr.EditMoviePrompt, app.ActiveBlock())
	require.NotNil(t, app.Data.EditMonitored)
	assert.Equal(t, "/movies/alien", app.Data.EditPath.Text())
	profile, _ := app.Data.QualityProfileList.Current()
	assert.Equal(t, "HD-1080p", profile)

	monitored := *app.Data.EditMonitored
	press(t, r, app, enter)
	assert.Equal(t, !monitored, *app.Data.EditMonitored)

	press(t, r, app, down, down)
	require.Equal(t, radarr.EditMovieSelectQualityProfile, app.Data.SelectedBlock.Current())
	press(t, r, app, enter)
	require.Equal(t, radarr.EditMovieSelectQualityProfile, app.ActiveBlock())
	press(t, r, app, down, enter)
	profile, _ = app.Data.QualityProfileList.Current()
	assert.Equal(t, "Ultra-HD", profile)
	require.Equal(t, radarr.EditMoviePrompt, app.ActiveBlock())

	press(t, r, app, down, enter)
	require.Equal(t, radarr.EditMoviePathInput, app.ActiveBlock())
	typeText(t, r, app, "2")
	press(t, r, app, enter)
	assert.Equal(t, "/movies/alien2", app.Data.EditPath.Text())

	press(t, r, app, esc)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.Nil(t, app.Data.EditMonitored)
}

func TestAddMovieFromSearchResults(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, runes("a"))
	require.Equal(t, radarr.AddMovieSearchInput, app.ActiveBlock())
	press(t, r, app, enter)
	assert.Equal(t, radarr.AddMovieSearchInput, app.ActiveBlock(), "empty query stays on the input")

	typeText(t, r, app, "blade runner")
	press(t, r, app, enter)
	require.Equal(t, radarr.AddMovieSearchResults, app.ActiveBlock())

	results := uistate.NewTable([]radarr.AddMovieSearchResult{
		{TmdbID: 100, Title: title("Alien")},
		{TmdbID: 78, Title: title("Blade Runner")},
	})
	app.Data.AddSearchedMovies = &results

	press(t, r, app, enter)
	require.Equal(t, radarr.AddMovieAlreadyInLibrary, app.ActiveBlock())
	press(t, r, app, esc)

	press(t, r, app, down, enter)
	require.Equal(t, radarr.AddMoviePrompt, app.ActiveBlock())
	assert.Equal(t, radarr.AddMovieSearchResults, app.Data.AddMovieSource)
	assert.Equal(t, radarr.AddMovieSelectRootFolder, app.Data.SelectedBlock.Current())

	press(t, r, app, up)
	require.Equal(t, radarr.AddMovieConfirmPrompt, app.Data.SelectedBlock.Current())
	press(t, r, app, left, enter)
	assert.Equal(t, radarr.AddMovieSearchResults, app.ActiveBlock())
	assert.Equal(t, radarr.AddMovie, app.Data.PromptConfirmAction)
	assert.Equal(t, "blade runner", app.Data.AddMovieSearch.Text())
}

func TestCollectionDetailsRoutesByLibraryMembership(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.Data.Collections.SetItems([]radarr.Collection{{ID: 1, Title: title("Alien Collection")}})
	app.Data.CollectionMovies.SetItems([]radarr.CollectionMovie{
		{TmdbID: 100, Title: title("Alien")},
		{TmdbID: 101, Title: title("Aliens")},
	})
	app.PopAndPush(radarr.NewRoute(radarr.Collections))

	press(t, r, app, enter)
	require.Equal(t, radarr.CollectionDetails, app.ActiveBlock())

	press(t, r, app, enter)
	require.Equal(t, radarr.ViewMovieOverview, app.ActiveBlock())
	press(t, r, app, esc)

	press(t, r, app, down, enter)
	require.Equal(t, radarr.AddMoviePrompt, app.ActiveBlock())
	assert.Equal(t, radarr.CollectionDetails, app.Route().Context)
	assert.Equal(t, radarr.CollectionDetails, app.Data.AddMovieSource)

	press(t, r, app, esc, esc)
	assert.Equal(t, radarr.Collections, app.ActiveBlock())
	assert.True(t, app.Data.CollectionMovies.IsEmpty())
}

func TestMovieDetailsTabsCycle(t *testing.T) {
	r := Default()
	app := libraryApp()

	press(t, r, app, enter)
	require.Equal(t, radarr.MovieDetails, app.ActiveBlock())

	press(t, r, app, right)
	assert.Equal(t, radarr.MovieHistory, app.ActiveBlock())
	press(t, r, app, left, left)
	assert.Equal(t, radarr.ManualSearch, app.ActiveBlock())
	assert.Equal(t, 2, app.Depth())

	press(t, r, app, runes("s"))
	require.Equal(t, radarr.AutomaticallySearchMoviePrompt, app.ActiveBlock())
	press(t, r, app, right, enter)
	assert.Equal(t, radarr.TriggerAutomaticSearch, app.Data.PromptConfirmAction)
	assert.Equal(t, radarr.ManualSearch, app.ActiveBlock())

	press(t, r, app, esc)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.Equal(t, 0, app.Data.MovieInfoTabs.Index())
}

func TestAddRootFolder(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.PopAndPush(radarr.NewRoute(radarr.RootFolders))

	press(t, r, app, runes("a"))
	require.Equal(t, radarr.AddRootFolderPrompt, app.ActiveBlock())
	typeText(t, r, app, "/data")
	press(t, r, app, enter)

	assert.Equal(t, radarr.RootFolders, app.ActiveBlock())
	assert.True(t, app.Data.PromptConfirm)
	assert.Equal(t, radarr.AddRootFolder, app.Data.PromptConfirmAction)
	require.NotNil(t, app.Data.EditRootFolder)
	assert.Equal(t, "/data", app.Data.EditRootFolder.Text())
}

func TestEditIndexerTwoColumnForm(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.Data.Indexers.SetItems([]radarr.Indexer{{
		ID: 1, Name: "Nyaa", Protocol: "torrent",
		Fields: []radarr.IndexerField{{Name: "baseUrl", Value: "https://nyaa.si"}},
	}})
	app.PopAndPush(radarr.NewRoute(radarr.Indexers))

	press(t, r, app, enter)
	require.Equal(t, radarr.EditIndexerPrompt, app.ActiveBlock())
	require.NotNil(t, app.Data.EditIndexerModal)
	assert.Equal(t, radarr.EditIndexerNameInput, app.Data.SelectedBlock.Current())

	press(t, r, app, right)
	require.Equal(t, radarr.EditIndexerUrlInput, app.Data.SelectedBlock.Current())
	press(t, r, app, enter)
	require.Equal(t, radarr.EditIndexerUrlInput, app.ActiveBlock())
	typeText(t, r, app, "/")
	press(t, r, app, enter)
	assert.Equal(t, "https://nyaa.si/", app.Data.EditIndexerModal.URL.Text())

	press(t, r, app, left, down, enter)
	assert.True(t, app.Data.EditIndexerModal.EnableRss)

	press(t, r, app, esc)
	assert.Equal(t, radarr.Indexers, app.ActiveBlock())
	assert.Nil(t, app.Data.EditIndexerModal)
}

func TestIndexerSettingsIgnoresKeysWhileLoading(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.Data.Indexers.SetItems([]radarr.Indexer{{ID: 1, Name: "Nyaa"}})
	app.PopAndPush(radarr.NewRoute(radarr.Indexers))

	press(t, r, app, runes("s"))
	require.Equal(t, radarr.AllIndexerSettingsPrompt, app.ActiveBlock())
	press(t, r, app, down, enter)
	assert.Equal(t, radarr.AllIndexerSettingsPrompt, app.ActiveBlock())

	app.Data.IndexerSettings = radarr.NewIndexerSettingsModal(radarr.IndexerSettings{Retention: 10})
	press(t, r, app, down, enter)
	require.Equal(t, radarr.IndexerSettingsRetentionInput, app.ActiveBlock())
	press(t, r, app, keyMsg(tea.KeyBackspace), esc)
	assert.Equal(t, "1", app.Data.IndexerSettings.Retention.Text())
}

func TestSystemDetailsNavigation(t *testing.T) {
	r := Default()
	app := libraryApp()
	app.Data.Tasks.SetItems([]radarr.Task{{Name: "Backup", TaskName: "Backup"}})
	app.Data.Logs.SetItems([]radarr.ScrollText{title("2024-01-01|INFO|Api|hello")})
	app.PopAndPush(radarr.NewRoute(radarr.System))

	press(t, r, app, runes("t"))
	require.Equal(t, radarr.SystemTasks, app.ActiveBlock())
	press(t, r, app, enter)
	require.Equal(t, radarr.SystemTaskStartConfirmPrompt, app.ActiveBlock())
	press(t, r, app, left, enter)
	assert.Equal(t, radarr.StartTask, app.Data.PromptConfirmAction)
	press(t, r, app, esc)
	assert.Equal(t, radarr.System, app.ActiveBlock())

	press(t, r, app, runes("l"), right, right)
	assert.Equal(t, 2, app.Data.Logs.Items()[0].Offset())
	press(t, r, app, left)
	assert.Equal(t, 1, app.Data.Logs.Items()[0].Offset())
}

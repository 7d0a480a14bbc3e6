package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

func newViewHarness(width, height int) *Harness {
	return NewHarness(NewModel(nil, Options{Width: width, Height: height}))
}

func seedMovies(data *radarr.Data, titles ...string) {
	movies := make([]radarr.Movie, len(titles))
	for i, title := range titles {
		movies[i] = radarr.Movie{ID: int64(i + 1), Title: uistate.NewHorizontallyScrollableText(title), Monitored: true}
	}
	data.Movies.SetItems(movies)
}

func TestViewFillsTerminal(t *testing.T) {
	h := newViewHarness(80, 24)
	seedMovies(h.Model().App().Data, "Alien", "Heat")

	lines := strings.Split(h.View(), "\n")
	require.Len(t, lines, 24)
	for i, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 80, "line %d overflows", i)
	}
}

func TestViewShowsTabsAndActiveScreen(t *testing.T) {
	h := newViewHarness(100, 20)
	seedMovies(h.Model().App().Data, "Alien")

	view := h.View()
	for _, tab := range []string{"Library", "Collections", "Downloads", "System"} {
		assert.Contains(t, view, tab)
	}
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "Alien")
}

func TestViewEmptyScreen(t *testing.T) {
	h := newViewHarness(80, 20)
	assert.Contains(t, h.View(), noEntries)
}

func TestViewSearchPopup(t *testing.T) {
	h := newViewHarness(100, 24)
	seedMovies(h.Model().App().Data, "Alien", "Heat")

	h.Key("s", "h", "e")
	require.Equal(t, "he", h.Model().App().Data.Search.Text())
	view := h.View()
	assert.Contains(t, view, "Search")
	// the screen stays visible around the popup
	assert.Contains(t, view, "Alien")
}

func TestViewSearchNotFoundPopup(t *testing.T) {
	h := newViewHarness(100, 24)
	seedMovies(h.Model().App().Data, "Alien")

	h.Key("s", "z", "z", "enter")
	require.Equal(t, radarr.SearchMovieError, h.Model().App().ActiveBlock())
	assert.Contains(t, h.View(), errorMessages[radarr.SearchMovieError])

	h.Key("x")
	assert.Equal(t, radarr.Movies, h.Model().App().ActiveBlock())
	assert.NotContains(t, h.View(), errorMessages[radarr.SearchMovieError])
}

func TestViewSearchMissSuggestsClosestTitle(t *testing.T) {
	h := newViewHarness(100, 24)
	seedMovies(h.Model().App().Data, "Alien", "Heat")

	h.Key("s", "a", "l", "e", "n", "enter")
	require.Equal(t, radarr.SearchMovieError, h.Model().App().ActiveBlock())
	assert.Equal(t, "Alien", h.Model().App().Data.Suggestion)
	assert.Contains(t, h.View(), `Did you mean "Alien"?`)
}

func TestViewYesNoPrompt(t *testing.T) {
	h := newViewHarness(100, 24)
	seedMovies(h.Model().App().Data, "Alien")

	h.Key("u")
	require.Equal(t, radarr.UpdateAllMoviesPrompt, h.Model().App().ActiveBlock())
	view := h.View()
	assert.Contains(t, view, "Update All Movies")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
}

func TestViewDeleteMovieForm(t *testing.T) {
	h := newViewHarness(120, 30)
	seedMovies(h.Model().App().Data, "Alien")

	h.Key("delete")
	require.Equal(t, radarr.DeleteMoviePrompt, h.Model().App().ActiveBlock())
	view := h.View()
	assert.Contains(t, view, "Delete Movie")
	assert.Contains(t, view, "Alien")
	assert.Contains(t, view, "Delete Movie File")
	assert.Contains(t, view, "Add List Exclusion")
	assert.Contains(t, view, styles.CheckboxOff)
	assert.Contains(t, view, "Cancel")
}

func TestViewErrorLine(t *testing.T) {
	h := newViewHarness(80, 24)
	h.Model().App().Error = uistate.NewHorizontallyScrollableText("connection refused")

	view := h.View()
	assert.Contains(t, view, errorPrefix+"connection refused")
}

func TestViewShowsLoadingIndicator(t *testing.T) {
	h := newViewHarness(160, 24)
	h.Model().App().IsLoading = true
	assert.Contains(t, h.View(), "loading")
}

func TestOverlayKeepsSurroundingCells(t *testing.T) {
	base := []string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}
	out := overlay(base, []string{"XX"}, 10)

	require.Len(t, out, 3)
	assert.Equal(t, base[0], out[0])
	assert.Equal(t, "bbbb"+resetStyle+"XXbbbb", out[1])
	assert.Equal(t, base[2], out[2])
}

func TestFitLinesPadsAndClips(t *testing.T) {
	out := fitLines([]string{"one", "two"}, 10, 4)
	assert.Equal(t, []string{"one", "two", "", ""}, out)

	out = fitLines([]string{"1", "2", "3", "4"}, 10, 3)
	assert.Equal(t, []string{"1", "2", ellipsis}, out)

	out = fitLines([]string{"abcdefghij"}, 5, 1)
	assert.Equal(t, 5, ansi.StringWidth(out[0]))
}

func TestPopupSizes(t *testing.T) {
	w, h := popupSmall.dims(100, 40)
	assert.Equal(t, 50, w)
	assert.Equal(t, 20, h)

	w, _ = popupSmall.dims(60, 40)
	assert.Equal(t, 60, w)

	w, h = popupLarge.dims(100, 40)
	assert.Equal(t, 90, w)
	assert.Equal(t, 36, h)
}

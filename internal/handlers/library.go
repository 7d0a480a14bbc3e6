package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type libraryHandler struct{}

func (libraryHandler) Blocks() radarr.BlockSet { return radarr.LibraryBlocks }

func (libraryHandler) Input(c *Context) *radarr.ScrollText {
	switch c.Block {
	case radarr.SearchMovie:
		return &c.Data.Search.Input
	case radarr.FilterMovies:
		return &c.Data.Filter.Input
	}
	return nil
}

func (libraryHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.Movies:
		handleMovies(c)
	case radarr.SearchMovie:
		switch c.action {
		case actSubmit:
			query := data.Search.Text()
			out := uistate.ApplySearch[radarr.Movie, radarr.Block](c.App, &data.Search, data.Movies.Active(),
				radarr.MovieTitle, radarr.NewRoute(radarr.SearchMovieError))
			data.Suggestion = out.Suggestion
			events.Search.Search(c.Block.String(), query, out.Index, out.Matched)
		case actEsc:
			data.Search.Clear()
			c.pop()
		}
	case radarr.FilterMovies:
		switch c.action {
		case actSubmit:
			query := data.Filter.Text()
			out := uistate.ApplyFilter[radarr.Movie, radarr.Block](c.App, &data.Filter, &data.Movies,
				radarr.MovieTitle, radarr.NewRoute(radarr.FilterMoviesError))
			data.Suggestion = out.Suggestion
			events.Search.Filter(c.Block.String(), query, out.Count, out.Cancelled)
		case actEsc:
			data.Filter.Clear()
			c.pop()
		}
	case radarr.MoviesSortPrompt:
		handleSortPrompt(c, data.Movies.Active())
	case radarr.UpdateAllMoviesPrompt:
		c.prompt(radarr.UpdateAllMovies)
	}
}

func handleMovies(c *Context) {
	data := c.Data
	movies := data.Movies.Active()
	if c.scroll(movies) || c.switchTabs() {
		return
	}
	switch {
	case c.action == actSubmit:
		if !movies.IsEmpty() {
			data.ResetMovieInfoTabs()
			c.push(radarr.MovieDetails)
		}
	case c.action == actEsc:
		data.ResetFilter()
	case c.action == actDelete:
		if !movies.IsEmpty() {
			data.ResetDeleteMoviePreferences()
			data.SelectedBlock = radarr.NewBlockSelectionFor(radarr.DeleteMovieSteps)
			c.pushOver(radarr.DeleteMoviePrompt, radarr.Movies)
		}
	case c.matches(Keys.Add):
		data.AddMovieSearch.Begin()
		c.pushOver(radarr.AddMovieSearchInput, radarr.Movies)
	case c.matches(Keys.Edit):
		if data.PopulateEditMovieFields() {
			c.pushOver(radarr.EditMoviePrompt, radarr.Movies)
		}
	case c.matches(Keys.Search):
		data.Search.Begin()
		c.pushOver(radarr.SearchMovie, radarr.Movies)
	case c.matches(Keys.Filter):
		data.Filter.Begin()
		c.pushOver(radarr.FilterMovies, radarr.Movies)
	case c.matches(Keys.Sort):
		if movies.Sortable() {
			c.pushOver(radarr.MoviesSortPrompt, radarr.Movies)
		}
	case c.matches(Keys.Update):
		c.pushOver(radarr.UpdateAllMoviesPrompt, radarr.Movies)
	}
}

// handleSortPrompt drives a table's sort prompt. Enter applies the selected
// ordering.
func handleSortPrompt[T any](c *Context, table *uistate.Table[T]) {
	if c.scroll(table.SortOptions()) {
		return
	}
	switch c.action {
	case actSubmit:
		table.SubmitSort()
		c.pop()
	case actEsc:
		c.pop()
	}
}

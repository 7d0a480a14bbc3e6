package handlers

import (
	"strings"

	"github.com/atomicstack/servarr-tui/internal/radarr"
)

type addMovieHandler struct{}

func (addMovieHandler) Blocks() radarr.BlockSet { return radarr.AddMovieBlocks }

func addMovieForm(data *radarr.Data) form {
	return form{
		prompt:  radarr.AddMoviePrompt,
		confirm: radarr.AddMovieConfirmPrompt,
		event:   radarr.AddMovie,
		selects: map[radarr.Block]scroller{
			radarr.AddMovieSelectRootFolder:          &data.RootFolderList,
			radarr.AddMovieSelectMonitor:             &data.MonitorList,
			radarr.AddMovieSelectMinimumAvailability: &data.MinimumAvailabilityList,
			radarr.AddMovieSelectQualityProfile:      &data.QualityProfileList,
		},
		inputs: map[radarr.Block]*radarr.ScrollText{
			radarr.AddMovieTagsInput: &data.EditTags,
		},
		reset: data.ResetAddEditMediaFields,
	}
}

func (addMovieHandler) Input(c *Context) *radarr.ScrollText {
	if c.Block == radarr.AddMovieSearchInput {
		return &c.Data.AddMovieSearch.Input
	}
	return addMovieForm(c.Data).input(c.Block)
}

func (addMovieHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.AddMovieSearchInput:
		switch c.action {
		case actSubmit:
			if strings.TrimSpace(data.AddMovieSearch.Text()) != "" {
				data.AddSearchedMovies = nil
				c.pushOver(radarr.AddMovieSearchResults, radarr.AddMovieSearchInput)
			}
		case actEsc:
			data.AddMovieSearch.Clear()
			data.AddSearchedMovies = nil
			c.pop()
		}
	case radarr.AddMovieSearchResults:
		handleSearchResults(c)
	case radarr.AddMovieEmptySearchResults, radarr.AddMovieAlreadyInLibrary:
		c.closeOn()
	default:
		handleForm(c, addMovieForm(data))
	}
}

func handleSearchResults(c *Context) {
	data := c.Data
	results := data.AddSearchedMovies
	if results != nil && c.scroll(results) {
		return
	}
	switch c.action {
	case actSubmit:
		if results == nil {
			return
		}
		movie, ok := results.Current()
		if !ok {
			return
		}
		if data.MovieInLibrary(movie.TmdbID) {
			c.pushOver(radarr.AddMovieAlreadyInLibrary, radarr.AddMovieSearchResults)
			return
		}
		data.PopulateAddMovieFields(radarr.AddMovieSearchResults)
		c.pushOver(radarr.AddMoviePrompt, radarr.AddMovieSearchResults)
	case actEsc:
		data.AddSearchedMovies = nil
		c.pop()
	}
}

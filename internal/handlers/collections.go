package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type collectionsHandler struct{}

func (collectionsHandler) Blocks() radarr.BlockSet { return radarr.CollectionsBlocks }

func (collectionsHandler) Input(c *Context) *radarr.ScrollText {
	switch c.Block {
	case radarr.SearchCollection:
		return &c.Data.Search.Input
	case radarr.FilterCollections:
		return &c.Data.Filter.Input
	}
	return nil
}

func (collectionsHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.Collections:
		handleCollections(c)
	case radarr.SearchCollection:
		switch c.action {
		case actSubmit:
			query := data.Search.Text()
			out := uistate.ApplySearch[radarr.Collection, radarr.Block](c.App, &data.Search, data.Collections.Active(),
				radarr.CollectionTitle, radarr.NewRoute(radarr.SearchCollectionError))
			data.Suggestion = out.Suggestion
			events.Search.Search(c.Block.String(), query, out.Index, out.Matched)
		case actEsc:
			data.Search.Clear()
			c.pop()
		}
	case radarr.FilterCollections:
		switch c.action {
		case actSubmit:
			query := data.Filter.Text()
			out := uistate.ApplyFilter[radarr.Collection, radarr.Block](c.App, &data.Filter, &data.Collections,
				radarr.CollectionTitle, radarr.NewRoute(radarr.FilterCollectionsError))
			data.Suggestion = out.Suggestion
			events.Search.Filter(c.Block.String(), query, out.Count, out.Cancelled)
		case actEsc:
			data.Filter.Clear()
			c.pop()
		}
	case radarr.CollectionsSortPrompt:
		handleSortPrompt(c, data.Collections.Active())
	case radarr.UpdateAllCollectionsPrompt:
		c.prompt(radarr.UpdateCollections)
	}
}

func handleCollections(c *Context) {
	data := c.Data
	collections := data.Collections.Active()
	if c.scroll(collections) || c.switchTabs() {
		return
	}
	switch {
	case c.action == actSubmit:
		if !collections.IsEmpty() {
			c.push(radarr.CollectionDetails)
		}
	case c.action == actEsc:
		data.ResetFilter()
	case c.matches(Keys.Edit):
		if data.PopulateEditCollectionFields() {
			c.pushOver(radarr.EditCollectionPrompt, radarr.Collections)
		}
	case c.matches(Keys.Search):
		data.Search.Begin()
		c.pushOver(radarr.SearchCollection, radarr.Collections)
	case c.matches(Keys.Filter):
		data.Filter.Begin()
		c.pushOver(radarr.FilterCollections, radarr.Collections)
	case c.matches(Keys.Sort):
		if collections.Sortable() {
			c.pushOver(radarr.CollectionsSortPrompt, radarr.Collections)
		}
	case c.matches(Keys.Update):
		c.pushOver(radarr.UpdateAllCollectionsPrompt, radarr.Collections)
	}
}

type collectionDetailsHandler struct{}

func (collectionDetailsHandler) Blocks() radarr.BlockSet { return radarr.CollectionDetailsBlocks }

func (collectionDetailsHandler) Handle(c *Context) {
	data := c.Data
	if c.Block == radarr.ViewMovieOverview {
		c.closeOn()
		return
	}
	if c.scroll(&data.CollectionMovies) {
		return
	}
	switch c.action {
	case actSubmit:
		movie, ok := data.CollectionMovies.Current()
		if !ok {
			return
		}
		if data.MovieInLibrary(movie.TmdbID) {
			c.pushOver(radarr.ViewMovieOverview, radarr.CollectionDetails)
			return
		}
		data.PopulateAddMovieFields(radarr.CollectionDetails)
		c.pushOver(radarr.AddMoviePrompt, radarr.CollectionDetails)
	case actEsc:
		data.ResetMovieCollectionTable()
		c.pop()
	}
}

package handlers

import "github.com/atomicstack/servarr-tui/internal/radarr"

type movieDetailsHandler struct{}

func (movieDetailsHandler) Blocks() radarr.BlockSet { return radarr.MovieDetailsBlocks }

func (movieDetailsHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.AutomaticallySearchMoviePrompt:
		c.prompt(radarr.TriggerAutomaticSearch)
		return
	case radarr.UpdateAndScanPrompt:
		c.prompt(radarr.UpdateAndScan)
		return
	case radarr.ManualSearchConfirmPrompt:
		c.prompt(radarr.DownloadRelease)
		return
	case radarr.ManualSearchSortPrompt:
		if data.MovieDetailsModal == nil {
			c.closeOn()
			return
		}
		handleSortPrompt(c, &data.MovieDetailsModal.MovieReleases)
		return
	}

	if s := movieTabScroller(data, c.Block); s != nil && c.scroll(s) {
		return
	}

	tabs := &data.MovieInfoTabs
	switch {
	case c.action == actLeft:
		tabs.Previous()
		c.App.PopAndPush(tabs.ActiveRoute())
	case c.action == actRight:
		tabs.Next()
		c.App.PopAndPush(tabs.ActiveRoute())
	case c.action == actEsc:
		data.ResetMovieInfoTabs()
		c.pop()
	case c.action == actSubmit:
		if c.Block != radarr.ManualSearch || data.MovieDetailsModal == nil {
			return
		}
		if !data.MovieDetailsModal.MovieReleases.IsEmpty() {
			c.pushOver(radarr.ManualSearchConfirmPrompt, radarr.ManualSearch)
		}
	case c.matches(Keys.AutoSearch):
		c.pushOver(radarr.AutomaticallySearchMoviePrompt, c.Block)
	case c.matches(Keys.Update):
		c.pushOver(radarr.UpdateAndScanPrompt, c.Block)
	case c.matches(Keys.Edit):
		if data.PopulateEditMovieFields() {
			c.pushOver(radarr.EditMoviePrompt, c.Block)
		}
	case c.matches(Keys.Sort):
		if c.Block == radarr.ManualSearch && data.MovieDetailsModal != nil {
			c.pushOver(radarr.ManualSearchSortPrompt, radarr.ManualSearch)
		}
	}
}

func movieTabScroller(data *radarr.Data, b radarr.Block) scroller {
	modal := data.MovieDetailsModal
	if modal == nil {
		return nil
	}
	switch b {
	case radarr.MovieDetails:
		return &modal.MovieDetails
	case radarr.MovieHistory:
		return &modal.MovieHistory
	case radarr.Cast:
		return &modal.MovieCast
	case radarr.Crew:
		return &modal.MovieCrew
	case radarr.ManualSearch:
		return &modal.MovieReleases
	}
	return nil
}

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	if m.headless {
		return nil
	}
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleTickMsg advances the marquees, then runs the polling policy.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.advanceMarquees()
	m.dispatcher.OnTick(m.app)
	return m.tickCmd()
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	if m.headless {
		return nil
	}
	return cmd
}

func (m *Model) advanceMarquees() {
	if m.app.HasError() {
		m.app.Error.ScrollOrReset(m.errorWidth(), true)
	}
	width := m.titleWidth
	if width <= 0 {
		return
	}
	data := m.app.Data
	switch m.visibleTable() {
	case radarr.Movies:
		scrollSelected(&data.Movies.Active().List, width, func(v *radarr.Movie) *radarr.ScrollText { return &v.Title })
	case radarr.Collections:
		scrollSelected(&data.Collections.Active().List, width, func(v *radarr.Collection) *radarr.ScrollText { return &v.Title })
	case radarr.CollectionDetails:
		scrollSelected(&data.CollectionMovies.List, width, func(v *radarr.CollectionMovie) *radarr.ScrollText { return &v.Title })
	case radarr.Downloads:
		scrollSelected(&data.Downloads.List, width, func(v *radarr.DownloadRecord) *radarr.ScrollText { return &v.OutputPath })
	case radarr.Blocklist:
		scrollSelected(&data.Blocklist.List, width, func(v *radarr.BlocklistItem) *radarr.ScrollText { return &v.Movie.Title })
	case radarr.AddMovieSearchResults:
		if data.AddSearchedMovies != nil {
			scrollSelected(&data.AddSearchedMovies.List, width, func(v *radarr.AddMovieSearchResult) *radarr.ScrollText { return &v.Title })
		}
	case radarr.MovieHistory:
		if modal := data.MovieDetailsModal; modal != nil {
			scrollSelected(&modal.MovieHistory.List, width, func(v *radarr.MovieHistoryItem) *radarr.ScrollText { return &v.SourceTitle })
		}
	case radarr.ManualSearch:
		if modal := data.MovieDetailsModal; modal != nil {
			scrollSelected(&modal.MovieReleases.List, width, func(v *radarr.Release) *radarr.ScrollText { return &v.Title })
		}
	}
}

// visibleTable returns the block whose table has keyboard focus. Prompts
// drawn over a table leave its marquee where it is.
func (m *Model) visibleTable() radarr.Block {
	block := m.app.ActiveBlock()
	if m.app.Data.MainTabs.IndexOf(block) >= 0 {
		return block
	}
	switch block {
	case radarr.CollectionDetails, radarr.AddMovieSearchResults, radarr.MovieHistory, radarr.ManualSearch:
		return block
	}
	return radarr.NoBlock
}

func scrollSelected[T any](l *uistate.List[T], width int, title func(*T) *radarr.ScrollText) {
	selected, ok := l.Index()
	if !ok {
		return
	}
	items := l.Items()
	for i := range items {
		title(&items[i]).ScrollOrReset(width, i == selected)
	}
}

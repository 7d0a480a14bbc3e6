package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/servarr-tui/internal/format/table"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/theme"
)

// renderMovieInfo draws the movie details popup: a tab bar over the body of
// the active movie info tab.
func (m *Model) renderMovieInfo(width, height int) []string {
	data := m.app.Data
	title := m.selectedMovieTitle()
	modal := data.MovieDetailsModal
	if modal == nil {
		return box(title, []string{theme.Render(styles.Loading, "Loading...")}, width)
	}

	tabs := data.MovieInfoTabs.Tabs()
	active := data.MovieInfoTabs.Index()
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		style := styles.Tab
		if i == active {
			style = styles.ActiveTab
		}
		parts[i] = theme.Render(style, tab.Title)
	}
	lines := []string{strings.Join(parts, styles.TabSeparator), ""}

	inner, bodyHeight := width-4, height-6
	if bodyHeight < 2 {
		bodyHeight = 2
	}
	switch data.MovieInfoTabs.ActiveRoute().Block {
	case radarr.MovieDetails:
		lines = append(lines, scrolledText(modal.MovieDetails.Lines(), modal.MovieDetails.Offset(), inner, bodyHeight)...)
	case radarr.MovieHistory:
		lines = append(lines, drawTable(m, &modal.MovieHistory.List, historyView, inner, bodyHeight)...)
	case radarr.FileInfo:
		lines = append(lines, m.fileInfoLines(inner)...)
	case radarr.Cast:
		lines = append(lines, drawTable(m, &modal.MovieCast.List, castView, inner, bodyHeight)...)
	case radarr.Crew:
		lines = append(lines, drawTable(m, &modal.MovieCrew.List, crewView, inner, bodyHeight)...)
	case radarr.ManualSearch:
		lines = append(lines, drawTable(m, &modal.MovieReleases.List, releasesView, inner, bodyHeight)...)
	}
	return box(title, lines, width)
}

func (m *Model) fileInfoLines(width int) []string {
	modal := m.app.Data.MovieDetailsModal
	if modal.FileDetails == "" && modal.AudioDetails == "" && modal.VideoDetails == "" {
		return []string{theme.Render(styles.Info, "No file information available")}
	}
	var lines []string
	section := func(title, body string) {
		if body == "" {
			return
		}
		lines = append(lines, theme.Render(styles.Label, title))
		lines = append(lines, strings.Split(wordwrap.String(body, width), "\n")...)
		lines = append(lines, "")
	}
	section("File", modal.FileDetails)
	section("Audio", modal.AudioDetails)
	section("Video", modal.VideoDetails)
	return lines
}

// scrolledText returns the height lines of text starting at offset, wrapped
// to width.
func scrolledText(text []string, offset, width, height int) []string {
	var wrapped []string
	for i := offset; i < len(text); i++ {
		wrapped = append(wrapped, strings.Split(wordwrap.String(text[i], width), "\n")...)
		if len(wrapped) >= height {
			return wrapped[:height]
		}
	}
	return wrapped
}

var historyView = tableView[radarr.MovieHistoryItem]{
	columns: []table.Column{
		{Title: "Source Title", Min: 20},
		{Title: "Event Type"},
		{Title: "Languages"},
		{Title: "Quality"},
		{Title: "Date"},
	},
	row: func(h *radarr.MovieHistoryItem, selected bool) []string {
		return []string{
			marquee(&h.SourceTitle, selected),
			h.EventType,
			joinLanguages(h.Languages),
			h.Quality.Quality.Name,
			formatDate(h.Date),
		}
	},
	title: 0,
}

var castView = tableView[radarr.Credit]{
	columns: []table.Column{{Title: "Cast Member"}, {Title: "Character"}},
	row: func(c *radarr.Credit, _ bool) []string {
		return []string{c.PersonName, c.Character}
	},
	title: -1,
}

var crewView = tableView[radarr.Credit]{
	columns: []table.Column{{Title: "Crew Member"}, {Title: "Job"}, {Title: "Department"}},
	row: func(c *radarr.Credit, _ bool) []string {
		return []string{c.PersonName, c.Job, c.Department}
	},
	title: -1,
}

var releasesView = tableView[radarr.Release]{
	columns: []table.Column{
		{Title: "Source"},
		{Title: "Age", Align: table.AlignRight},
		{Title: "⛔"},
		{Title: "Title", Min: 20},
		{Title: "Indexer"},
		{Title: "Size", Align: table.AlignRight},
		{Title: "Peers"},
		{Title: "Language"},
		{Title: "Quality"},
	},
	row: func(r *radarr.Release, selected bool) []string {
		rejected := ""
		if r.Rejected {
			rejected = "⛔"
		}
		return []string{
			r.Protocol,
			strconv.FormatInt(r.Age, 10) + " days",
			rejected,
			marquee(&r.Title, selected),
			r.Indexer,
			formatSize(r.Size),
			r.Peers(),
			joinLanguages(r.Languages),
			r.Quality.Quality.Name,
		}
	},
	style: func(r *radarr.Release) *lipgloss.Style {
		if r.Rejected {
			return styles.Error
		}
		return nil
	},
	title: 3,
}

package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/servarr-tui/internal/format/table"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/theme"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

const (
	gib        = 1024 * 1024 * 1024
	dateLayout = "2006-01-02 15:04"
	noEntries  = "(no entries)"
)

// tableView describes how one collection is drawn as a table.
type tableView[T any] struct {
	columns []table.Column
	row     func(item *T, selected bool) []string
	style   func(item *T) *lipgloss.Style
	// title is the column whose selected cell scrolls as a marquee; -1 for none.
	title int
}

// renderTable draws the rows of l that fit in height, keeping the selection
// visible. It returns the drawn lines and the width of the title column.
func renderTable[T any](l *uistate.List[T], view tableView[T], width, height int) ([]string, int) {
	if l.IsEmpty() {
		return []string{theme.Render(styles.Info, noEntries)}, 0
	}
	start, end := l.Window(height - 1)
	selected, _ := l.Index()
	items := l.Items()
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, view.row(&items[i], i == selected))
	}
	lines, widths := table.Layout(view.columns, rows, width)
	out := make([]string, 0, len(lines))
	out = append(out, theme.Render(styles.TableHeader, lines[0]))
	for i, line := range lines[1:] {
		idx := start + i
		style := styles.Row
		if view.style != nil {
			if s := view.style(&items[idx]); s != nil {
				style = s
			}
		}
		if idx == selected {
			style = styles.SelectedRow
		}
		out = append(out, theme.Render(style, padRight(line, width)))
	}
	titleWidth := 0
	if view.title >= 0 && view.title < len(widths) {
		titleWidth = widths[view.title]
	}
	return out, titleWidth
}

// drawTable is renderTable for the table with keyboard focus.
func drawTable[T any](m *Model, l *uistate.List[T], view tableView[T], width, height int) []string {
	lines, titleWidth := renderTable(l, view, width, height)
	if titleWidth > 0 {
		m.titleWidth = titleWidth
	}
	return lines
}

func marquee(text *radarr.ScrollText, selected bool) string {
	if selected {
		return text.MarqueeView()
	}
	return text.Text()
}

func (m *Model) renderScreen(block radarr.Block, width, height int) []string {
	switch block {
	case radarr.Movies:
		return m.renderMovies(width, height)
	case radarr.Collections:
		return m.renderCollections(width, height)
	case radarr.Downloads:
		return m.renderDownloads(width, height)
	case radarr.Blocklist:
		return m.renderBlocklist(width, height)
	case radarr.RootFolders:
		return m.renderRootFolders(width, height)
	case radarr.Indexers:
		return m.renderIndexers(width, height)
	case radarr.System:
		return m.renderSystem(width, height)
	}
	return nil
}

func (m *Model) renderMovies(width, height int) []string {
	data := m.app.Data
	downloading := make(map[int64]bool, data.Downloads.Len())
	for _, d := range data.Downloads.Items() {
		downloading[d.MovieID] = true
	}
	view := tableView[radarr.Movie]{
		columns: []table.Column{
			{Title: "Title", Min: 12},
			{Title: "Year", Align: table.AlignRight},
			{Title: "Studio"},
			{Title: "Runtime", Align: table.AlignRight},
			{Title: "Rating"},
			{Title: "Language"},
			{Title: "Size", Align: table.AlignRight},
			{Title: "Quality Profile"},
			{Title: "Monitored"},
			{Title: "Tags"},
		},
		row: func(mv *radarr.Movie, selected bool) []string {
			profile, _ := data.QualityProfiles.Name(mv.QualityProfileID)
			return []string{
				marquee(&mv.Title, selected),
				strconv.FormatInt(mv.Year, 10),
				mv.Studio,
				network.FormatRuntime(mv.Runtime),
				mv.Certification,
				mv.OriginalLanguage.Name,
				formatSize(mv.SizeOnDisk),
				profile,
				yesNo(mv.Monitored),
				data.Tags.JoinNames(mv.Tags),
			}
		},
		style: func(mv *radarr.Movie) *lipgloss.Style {
			switch {
			case downloading[mv.ID]:
				return styles.Downloading
			case mv.HasFile:
				return styles.Downloaded
			case !mv.Monitored:
				return styles.Unmonitored
			}
			return styles.Missing
		},
		title: 0,
	}
	return drawTable(m, &data.Movies.Active().List, view, width, height)
}

func (m *Model) renderCollections(width, height int) []string {
	data := m.app.Data
	view := tableView[radarr.Collection]{
		columns: []table.Column{
			{Title: "Collection", Min: 12},
			{Title: "Number of Movies", Align: table.AlignRight},
			{Title: "Root Folder Path"},
			{Title: "Quality Profile"},
			{Title: "Search on Add"},
			{Title: "Monitored"},
		},
		row: func(c *radarr.Collection, selected bool) []string {
			profile, _ := data.QualityProfiles.Name(c.QualityProfileID)
			return []string{
				marquee(&c.Title, selected),
				strconv.Itoa(len(c.Movies)),
				c.RootFolderPath,
				profile,
				yesNo(c.SearchOnAdd),
				yesNo(c.Monitored),
			}
		},
		style: func(c *radarr.Collection) *lipgloss.Style {
			if !c.Monitored {
				return styles.Unmonitored
			}
			return nil
		},
		title: 0,
	}
	return drawTable(m, &data.Collections.Active().List, view, width, height)
}

func (m *Model) renderDownloads(width, height int) []string {
	view := tableView[radarr.DownloadRecord]{
		columns: []table.Column{
			{Title: "Title", Min: 12},
			{Title: "Percent Complete", Align: table.AlignRight},
			{Title: "Size", Align: table.AlignRight},
			{Title: "Output Path", Min: 12},
			{Title: "Indexer"},
			{Title: "Download Client"},
		},
		row: func(d *radarr.DownloadRecord, selected bool) []string {
			return []string{
				d.Title,
				fmt.Sprintf("%.0f%%", d.Progress()*100),
				formatSize(int64(d.Size)),
				marquee(&d.OutputPath, selected),
				d.Indexer,
				d.DownloadClient,
			}
		},
		style: func(d *radarr.DownloadRecord) *lipgloss.Style {
			if d.Progress() >= 1 {
				return styles.Downloaded
			}
			return styles.Downloading
		},
		title: 3,
	}
	return drawTable(m, &m.app.Data.Downloads.List, view, width, height)
}

func (m *Model) renderBlocklist(width, height int) []string {
	view := tableView[radarr.BlocklistItem]{
		columns: []table.Column{
			{Title: "Movie Title", Min: 12},
			{Title: "Source Title", Min: 12},
			{Title: "Languages"},
			{Title: "Quality"},
			{Title: "Date"},
		},
		row: func(b *radarr.BlocklistItem, selected bool) []string {
			return []string{
				marquee(&b.Movie.Title, selected),
				b.SourceTitle,
				joinLanguages(b.Languages),
				b.Quality.Quality.Name,
				formatDate(b.Date),
			}
		},
		title: 0,
	}
	return drawTable(m, &m.app.Data.Blocklist.List, view, width, height)
}

func (m *Model) renderRootFolders(width, height int) []string {
	view := tableView[radarr.RootFolder]{
		columns: []table.Column{
			{Title: "Path", Min: 12},
			{Title: "Free Space", Align: table.AlignRight},
			{Title: "Unmapped Folders", Align: table.AlignRight},
		},
		row: func(r *radarr.RootFolder, _ bool) []string {
			return []string{r.Path, formatSize(r.FreeSpace), strconv.Itoa(len(r.UnmappedFolders))}
		},
		style: func(r *radarr.RootFolder) *lipgloss.Style {
			if !r.Accessible {
				return styles.Missing
			}
			return nil
		},
		title: -1,
	}
	return drawTable(m, &m.app.Data.RootFolders.List, view, width, height)
}

func (m *Model) renderIndexers(width, height int) []string {
	data := m.app.Data
	view := tableView[radarr.Indexer]{
		columns: []table.Column{
			{Title: "Indexer", Min: 10},
			{Title: "RSS"},
			{Title: "Automatic Search"},
			{Title: "Interactive Search"},
			{Title: "Priority", Align: table.AlignRight},
			{Title: "Tags"},
		},
		row: func(i *radarr.Indexer, _ bool) []string {
			return []string{
				i.Name,
				enabled(i.SupportsRss, i.EnableRss),
				enabled(i.SupportsSearch, i.EnableAutomaticSearch),
				enabled(i.SupportsSearch, i.EnableInteractiveSearch),
				strconv.FormatInt(i.Priority, 10),
				data.Tags.JoinNames(i.Tags),
			}
		},
		title: -1,
	}
	return drawTable(m, &data.Indexers.List, view, width, height)
}

// renderSystem stacks the status line, tasks, queued events and recent logs.
func (m *Model) renderSystem(width, height int) []string {
	data := m.app.Data
	lines := []string{theme.Render(styles.Info, m.statusLine())}
	remaining := height - 1
	section := remaining / 3
	if section < 3 {
		section = 3
	}

	lines = append(lines, theme.Render(styles.BoxTitle, "Tasks"))
	tasks, _ := renderTable(&data.Tasks.List, tasksView(), width, section-1)
	lines = append(lines, tasks...)

	lines = append(lines, theme.Render(styles.BoxTitle, "Queued Events"))
	queued, _ := renderTable(&data.QueuedEvents.List, queuedEventsView(), width, section-1)
	lines = append(lines, queued...)

	lines = append(lines, theme.Render(styles.BoxTitle, "Logs"))
	logs := data.Logs.Items()
	if len(logs) == 0 {
		lines = append(lines, theme.Render(styles.Info, noEntries))
	}
	for i := range logs {
		if len(lines) >= height {
			break
		}
		lines = append(lines, logStyle(logs[i].Text()).Render(logs[i].Text()))
	}
	return lines
}

func (m *Model) statusLine() string {
	data := m.app.Data
	parts := make([]string, 0, 2+len(data.DiskSpace))
	if data.Version != "" {
		parts = append(parts, "Version: "+data.Version)
	}
	if !data.StartTime.IsZero() {
		parts = append(parts, "Uptime: "+formatUptime(time.Since(data.StartTime)))
	}
	for _, d := range data.DiskSpace {
		parts = append(parts, fmt.Sprintf("%s %s/%s free", d.Path, formatSize(d.FreeSpace), formatSize(d.TotalSpace)))
	}
	if len(parts) == 0 {
		return "Status unavailable"
	}
	return strings.Join(parts, " | ")
}

func tasksView() tableView[radarr.Task] {
	return tableView[radarr.Task]{
		columns: []table.Column{
			{Title: "Name", Min: 10},
			{Title: "Interval", Align: table.AlignRight},
			{Title: "Last Execution"},
			{Title: "Last Duration"},
			{Title: "Next Execution"},
		},
		row: func(t *radarr.Task, _ bool) []string {
			return []string{
				t.Name,
				formatInterval(t.Interval),
				formatDate(t.LastExecution),
				t.LastDuration,
				formatDate(t.NextExecution),
			}
		},
		title: -1,
	}
}

func queuedEventsView() tableView[radarr.QueueEvent] {
	return tableView[radarr.QueueEvent]{
		columns: []table.Column{
			{Title: "Trigger"},
			{Title: "Status"},
			{Title: "Name", Min: 10},
			{Title: "Queued"},
			{Title: "Started"},
			{Title: "Duration"},
		},
		row: func(e *radarr.QueueEvent, _ bool) []string {
			started := ""
			if e.Started != nil {
				started = formatDate(*e.Started)
			}
			name := e.CommandName
			if name == "" {
				name = e.Name
			}
			return []string{e.Trigger, e.Status, name, formatDate(e.Queued), started, e.Duration}
		},
		title: -1,
	}
}

func logStyle(line string) lipgloss.Style {
	style := lipgloss.NewStyle()
	var level string
	if parts := strings.SplitN(line, "|", 3); len(parts) > 1 {
		level = parts[1]
	}
	switch level {
	case "ERROR", "FATAL":
		if styles.Error != nil {
			style = *styles.Error
		}
	case "WARN":
		if styles.Downloading != nil {
			style = *styles.Downloading
		}
	default:
		if styles.Info != nil {
			style = *styles.Info
		}
	}
	return style
}

func formatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 GB"
	}
	return fmt.Sprintf("%.2f GB", float64(bytes)/gib)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

func formatInterval(minutes int64) string {
	if minutes <= 0 {
		return ""
	}
	d := time.Duration(minutes) * time.Minute
	if d >= time.Hour && d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int64(d/time.Hour))
	}
	return fmt.Sprintf("%d minutes", minutes)
}

func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	return fmt.Sprintf("%dd %dh %dm", days, d/time.Hour, (d%time.Hour)/time.Minute)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func enabled(supported, on bool) string {
	if !supported {
		return "n/a"
	}
	if on {
		return "Enabled"
	}
	return "Disabled"
}

func joinLanguages(langs []radarr.Language) string {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}

func formatRating(r radarr.Ratings) string {
	switch {
	case r.Imdb != nil:
		return fmt.Sprintf("%.1f", r.Imdb.Value)
	case r.Tmdb != nil:
		return fmt.Sprintf("%.0f%%", r.Tmdb.Value*10)
	}
	return ""
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atomicstack/servarr-tui/internal/format/table"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/theme"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

const loadingText = "Loading..."

type popupSize int

const (
	popupSmall popupSize = iota
	popupMedium
	popupLarge
)

func (s popupSize) dims(width, height int) (int, int) {
	switch s {
	case popupLarge:
		return width * 9 / 10, height * 9 / 10
	case popupMedium:
		return width * 7 / 10, height * 7 / 10
	}
	w := width / 2
	if w < 40 {
		w = width
	}
	return w, height / 2
}

var errorMessages = map[radarr.Block]string{
	radarr.SearchMovieError:           "Movie not found!",
	radarr.FilterMoviesError:          "No movies found matching the given filter!",
	radarr.SearchCollectionError:      "Collection not found!",
	radarr.FilterCollectionsError:     "No collections found matching the given filter!",
	radarr.AddMovieEmptySearchResults: "No movies found matching your query!",
	radarr.AddMovieAlreadyInLibrary:   "This film is already in your library",
}

// renderPopup draws the popup owned by block. active is the block with focus,
// which differs from block when block is the context of the active route.
func (m *Model) renderPopup(block, active radarr.Block, width, height int) []string {
	data := m.app.Data
	small, _ := popupSmall.dims(width, height)

	if msg, ok := errorMessages[block]; ok && block != radarr.AddMovieEmptySearchResults {
		lines := []string{theme.Render(styles.Error, msg)}
		if data.Suggestion != "" {
			lines = append(lines, "", theme.Render(styles.Help, fmt.Sprintf("Did you mean %q?", data.Suggestion)))
		}
		return box("Error", lines, small)
	}

	switch {
	case isYesNoPrompt(block):
		title, question := m.promptText(block)
		return m.yesNoBox(title, question, small)
	case isSortPrompt(block):
		return m.sortBox(block, small, height)
	case isSelectList(block):
		return m.selectBox(block, small, height)
	case isFormPrompt(block):
		w, _ := popupMedium.dims(width, height)
		return m.renderForm(block, active, w)
	case isFormField(block):
		// Fields are drawn inside their form.
		return nil
	}

	switch block {
	case radarr.SearchMovie, radarr.SearchCollection:
		return box("Search", []string{m.inputLine(&data.Search.Input, small-4, true)}, small)
	case radarr.FilterMovies, radarr.FilterCollections:
		return box("Filter", []string{m.inputLine(&data.Filter.Input, small-4, true)}, small)
	case radarr.AddRootFolderPrompt:
		text := data.EditRootFolder
		if text == nil {
			return box("Add Root Folder", nil, small)
		}
		return box("Add Root Folder", []string{m.inputLine(text, small-4, true)}, small)
	case radarr.AddMovieSearchInput, radarr.AddMovieSearchResults, radarr.AddMovieEmptySearchResults:
		w, h := popupLarge.dims(width, height)
		return m.renderAddMovieSearch(active, w, h)
	case radarr.CollectionDetails:
		w, h := popupLarge.dims(width, height)
		return m.renderCollectionDetails(w, h)
	case radarr.ViewMovieOverview:
		w, _ := popupMedium.dims(width, height)
		return m.renderMovieOverview(w)
	case radarr.BlocklistItemDetails:
		w, _ := popupMedium.dims(width, height)
		return m.renderBlocklistDetails(w)
	case radarr.TestIndexer:
		return m.renderIndexerTest(small)
	case radarr.TestAllIndexers:
		w, h := popupLarge.dims(width, height)
		return m.renderIndexerTestAll(w, h)
	case radarr.SystemTasks, radarr.SystemQueuedEvents, radarr.SystemLogs, radarr.SystemUpdates:
		w, h := popupLarge.dims(width, height)
		return m.renderSystemDetails(block, w, h)
	}
	if radarr.MovieDetailsBlocks.Contains(block) {
		w, h := popupLarge.dims(width, height)
		return m.renderMovieInfo(w, h)
	}
	return nil
}

// sharesPopup reports whether two blocks draw into the same popup, in which
// case only the active one is drawn.
func sharesPopup(a, b radarr.Block) bool {
	addSearch := func(x radarr.Block) bool {
		return x == radarr.AddMovieSearchInput || x == radarr.AddMovieSearchResults || x == radarr.AddMovieEmptySearchResults
	}
	if addSearch(a) && addSearch(b) {
		return true
	}
	return radarr.MovieDetailsBlocks.Contains(a) && radarr.MovieDetailsBlocks.Contains(b) &&
		!isYesNoPrompt(a) && !isYesNoPrompt(b) && !isSortPrompt(a) && !isSortPrompt(b)
}

// inputLine renders text with the caret drawn by the cursor model. The view
// keeps the caret inside width cells.
func (m *Model) inputLine(text *radarr.ScrollText, width int, focused bool) string {
	runes := []rune(text.Text())
	if !focused {
		return theme.Render(styles.Input, string(runes))
	}
	caret := text.Caret()
	if caret > len(runes) {
		caret = len(runes)
	}
	before := runes[:caret]
	under := " "
	var after []rune
	if caret < len(runes) {
		under = string(runes[caret])
		after = runes[caret+1:]
	}
	if width > 1 && len(before) >= width {
		before = before[len(before)-width+1:]
	}
	m.cursor.SetChar(under)
	return theme.Render(styles.Input, string(before)) + m.cursor.View() + theme.Render(styles.Input, string(after))
}

func (m *Model) yesNoBox(title, question string, width int) []string {
	lines := strings.Split(wordwrap.String(question, width-4), "\n")
	lines = append(lines, "", m.buttons("Yes", "No", true))
	return box(title, lines, width)
}

// buttons renders the confirm/cancel pair. The highlighted button follows
// the pending answer while focused is set.
func (m *Model) buttons(yes, no string, focused bool) string {
	yesStyle, noStyle := styles.Button, styles.Button
	if focused {
		if m.app.Data.PromptAnswer {
			yesStyle = styles.ActiveButton
		} else {
			noStyle = styles.ActiveButton
		}
	}
	return theme.Render(yesStyle, yes) + "  " + theme.Render(noStyle, no)
}

func (m *Model) promptText(block radarr.Block) (string, string) {
	data := m.app.Data
	switch block {
	case radarr.UpdateAllMoviesPrompt:
		return "Update All Movies", "Do you want to update info and scan your disks for all of your movies?"
	case radarr.UpdateAllCollectionsPrompt:
		return "Update All Collections", "Do you want to update all of your collections?"
	case radarr.UpdateDownloadsPrompt:
		return "Update Downloads", "Do you want to update your downloads?"
	case radarr.DeleteDownloadPrompt:
		d, _ := data.Downloads.Current()
		return "Cancel Download", fmt.Sprintf("Do you really want to delete this download: %s?", d.Title)
	case radarr.DeleteBlocklistItemPrompt:
		b, _ := data.Blocklist.Current()
		return "Remove Item from Blocklist", fmt.Sprintf("Do you want to remove this item from your blocklist: %s?", b.SourceTitle)
	case radarr.BlocklistClearAllItemsPrompt:
		return "Clear Blocklist", "Do you want to clear your blocklist?"
	case radarr.DeleteRootFolderPrompt:
		r, _ := data.RootFolders.Current()
		return "Delete Root Folder", fmt.Sprintf("Do you really want to delete this root folder: %s?", r.Path)
	case radarr.DeleteIndexerPrompt:
		i, _ := data.Indexers.Current()
		return "Delete Indexer", fmt.Sprintf("Do you really want to delete this indexer: %s?", i.Name)
	case radarr.AutomaticallySearchMoviePrompt:
		return "Automatic Movie Search", fmt.Sprintf(
			"Do you want to trigger an automatic search of your indexers for the movie: %s?", m.selectedMovieTitle())
	case radarr.UpdateAndScanPrompt:
		return "Update and Scan", fmt.Sprintf(
			"Do you want to trigger an update and disk scan for the movie: %s?", m.selectedMovieTitle())
	case radarr.ManualSearchConfirmPrompt:
		question := "Do you want to download this release?"
		if modal := data.MovieDetailsModal; modal != nil {
			if r, ok := modal.MovieReleases.Current(); ok {
				question = fmt.Sprintf("Do you want to download the following release: %s?", r.Title.Text())
				if r.Rejected && len(r.Rejections) > 0 {
					question += " It was rejected because: " + strings.Join(r.Rejections, "; ")
				}
			}
		}
		return "Download Release", question
	case radarr.SystemTaskStartConfirmPrompt:
		t, _ := data.Tasks.Current()
		return "Start Task", fmt.Sprintf("Do you want to manually start this task: %s?", t.Name)
	}
	return "Confirm", "Are you sure?"
}

func (m *Model) selectedMovieTitle() string {
	mv, ok := m.app.Data.Movies.Active().Current()
	if !ok {
		return ""
	}
	return mv.Title.Text()
}

func (m *Model) sortBox(block radarr.Block, width, height int) []string {
	data := m.app.Data
	switch block {
	case radarr.MoviesSortPrompt:
		return listBox("Sort By", data.Movies.Active().SortOptions(), sortName[radarr.Movie], width, height)
	case radarr.CollectionsSortPrompt:
		return listBox("Sort By", data.Collections.Active().SortOptions(), sortName[radarr.Collection], width, height)
	case radarr.BlocklistSortPrompt:
		return listBox("Sort By", data.Blocklist.SortOptions(), sortName[radarr.BlocklistItem], width, height)
	case radarr.ManualSearchSortPrompt:
		if modal := data.MovieDetailsModal; modal != nil {
			return listBox("Sort By", modal.MovieReleases.SortOptions(), sortName[radarr.Release], width, height)
		}
	}
	return nil
}

func sortName[T any](o uistate.SortOption[T]) string { return o.Name }

// listBox draws a scrolling single-column list with the selection highlighted.
func listBox[T any](title string, l *uistate.List[T], name func(T) string, width, height int) []string {
	if l.IsEmpty() {
		return box(title, []string{theme.Render(styles.Info, noEntries)}, width)
	}
	start, end := l.Window(height - 4)
	selected, _ := l.Index()
	items := l.Items()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := styles.Row
		if i == selected {
			style = styles.SelectedRow
		}
		lines = append(lines, theme.Render(style, padRight(name(items[i]), width-4)))
	}
	return box(title, lines, width)
}

func (m *Model) renderAddMovieSearch(active radarr.Block, width, height int) []string {
	data := m.app.Data
	lines := []string{m.inputLine(&data.AddMovieSearch.Input, width-4, active == radarr.AddMovieSearchInput), ""}
	switch {
	case active == radarr.AddMovieEmptySearchResults:
		lines = append(lines, theme.Render(styles.Error, errorMessages[radarr.AddMovieEmptySearchResults]))
	case data.AddSearchedMovies != nil:
		view := tableView[radarr.AddMovieSearchResult]{
			columns: []table.Column{
				{Title: "✔"},
				{Title: "Title", Min: 12},
				{Title: "Year", Align: table.AlignRight},
				{Title: "Runtime", Align: table.AlignRight},
				{Title: "Rating"},
				{Title: "Genres"},
			},
			row: func(r *radarr.AddMovieSearchResult, selected bool) []string {
				inLibrary := ""
				if data.MovieInLibrary(r.TmdbID) {
					inLibrary = "✔"
				}
				return []string{
					inLibrary,
					marquee(&r.Title, selected),
					strconv.FormatInt(r.Year, 10),
					network.FormatRuntime(r.Runtime),
					formatRating(r.Ratings),
					strings.Join(r.Genres, ", "),
				}
			},
			title: 1,
		}
		lines = append(lines, drawTable(m, &data.AddSearchedMovies.List, view, width-4, height-6)...)
	case active == radarr.AddMovieSearchResults:
		lines = append(lines, theme.Render(styles.Loading, loadingText))
	}
	return box("Add Movie", lines, width)
}

func (m *Model) renderCollectionDetails(width, height int) []string {
	data := m.app.Data
	collection, _ := data.Collections.Active().Current()
	inner := width - 4
	lines := make([]string, 0, height)
	if collection.Overview != "" {
		lines = append(lines, strings.Split(wordwrap.String(collection.Overview, inner), "\n")...)
		lines = append(lines, "")
	}
	view := tableView[radarr.CollectionMovie]{
		columns: []table.Column{
			{Title: "✔"},
			{Title: "Title", Min: 12},
			{Title: "Year", Align: table.AlignRight},
			{Title: "Runtime", Align: table.AlignRight},
			{Title: "Rating"},
			{Title: "Genres"},
		},
		row: func(cm *radarr.CollectionMovie, selected bool) []string {
			inLibrary := ""
			if data.MovieInLibrary(cm.TmdbID) {
				inLibrary = "✔"
			}
			return []string{
				inLibrary,
				marquee(&cm.Title, selected),
				strconv.FormatInt(cm.Year, 10),
				network.FormatRuntime(cm.Runtime),
				formatRating(cm.Ratings),
				strings.Join(cm.Genres, ", "),
			}
		},
		style: func(cm *radarr.CollectionMovie) *lipgloss.Style {
			if data.MovieInLibrary(cm.TmdbID) {
				return styles.Downloaded
			}
			return nil
		},
		title: 1,
	}
	rows := height - len(lines) - 4
	lines = append(lines, drawTable(m, &data.CollectionMovies.List, view, inner, rows)...)
	return box(collection.Title.Text(), lines, width)
}

func (m *Model) renderMovieOverview(width int) []string {
	cm, ok := m.app.Data.CollectionMovies.Current()
	if !ok {
		return box("Overview", nil, width)
	}
	return box(cm.Title.Text(), strings.Split(wordwrap.String(cm.Overview, width-4), "\n"), width)
}

func (m *Model) renderBlocklistDetails(width int) []string {
	b, ok := m.app.Data.Blocklist.Current()
	if !ok {
		return box("Details", nil, width)
	}
	lines := []string{
		"Movie Title: " + b.Movie.Title.Text(),
		"Source Title: " + b.SourceTitle,
		"Protocol: " + b.Protocol,
		"Indexer: " + b.Indexer,
		"Quality: " + b.Quality.Quality.Name,
		"Languages: " + joinLanguages(b.Languages),
		"Date: " + formatDate(b.Date),
	}
	if b.Message != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(wordwrap.String("Message: "+b.Message, width-4), "\n")...)
	}
	return box("Details", lines, width)
}

func (m *Model) renderIndexerTest(width int) []string {
	result := m.app.Data.IndexerTestErrors
	switch {
	case result == nil:
		return box("Test Indexer", []string{theme.Render(styles.Loading, "Testing indexer...")}, width)
	case *result == "":
		return box("Test Indexer", []string{theme.Render(styles.Success, "Indexer test succeeded!")}, width)
	}
	lines := strings.Split(wordwrap.String(*result, width-4), "\n")
	for i := range lines {
		lines[i] = theme.Render(styles.Error, lines[i])
	}
	return box("Test Indexer", lines, width)
}

func (m *Model) renderIndexerTestAll(width, height int) []string {
	results := m.app.Data.IndexerTestAllResults
	if results == nil {
		return box("Test All Indexers", []string{theme.Render(styles.Loading, "Testing all indexers...")}, width)
	}
	view := tableView[radarr.IndexerTestRow]{
		columns: []table.Column{
			{Title: "Indexer"},
			{Title: "Pass/Fail"},
			{Title: "Failure Messages", Min: 16},
		},
		row: func(r *radarr.IndexerTestRow, _ bool) []string {
			status := "✔"
			if !r.IsValid {
				status = "❌"
			}
			return []string{r.Name, status, r.ValidationErrors}
		},
		style: func(r *radarr.IndexerTestRow) *lipgloss.Style {
			if r.IsValid {
				return styles.Success
			}
			return styles.Error
		},
		title: -1,
	}
	lines, _ := renderTable(&results.List, view, width-4, height-4)
	return box("Test All Indexers", lines, width)
}

func (m *Model) renderSystemDetails(block radarr.Block, width, height int) []string {
	data := m.app.Data
	inner, rows := width-4, height-4
	switch block {
	case radarr.SystemTasks:
		lines, _ := renderTable(&data.Tasks.List, tasksView(), inner, rows)
		return box("Tasks", lines, width)
	case radarr.SystemQueuedEvents:
		lines, _ := renderTable(&data.QueuedEvents.List, queuedEventsView(), inner, rows)
		return box("Queued Events", lines, width)
	case radarr.SystemLogs:
		name := func(line radarr.ScrollText) string {
			return logStyle(line.Text()).Render(line.MarqueeView())
		}
		return listBox("Logs", &data.Logs, name, width, height)
	case radarr.SystemUpdates:
		lines := data.Updates.Lines()
		if len(lines) > rows {
			lines = lines[:rows]
		}
		if len(lines) == 0 {
			lines = []string{theme.Render(styles.Loading, loadingText)}
		}
		return box("Updates", lines, width)
	}
	return nil
}

package radarr

import (
	"strconv"
	"strings"
	"time"

	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// TabRoute and TabState specialised to movie blocks.
type (
	TabRoute = uistate.TabRoute[Block]
	TabState = uistate.TabState[Block]
)

const (
	libraryHelp      = "<a> add | <e> edit | <del> delete | <s> search | <f> filter | <o> sort | <ctrl-r> refresh | <u> update all | <enter> details | <esc> cancel filter"
	collectionsHelp  = "<s> search | <e> edit | <f> filter | <o> sort | <ctrl-r> refresh | <u> update all | <enter> details | <esc> cancel filter"
	downloadsHelp    = "<ctrl-r> refresh | <u> update downloads | <del> delete"
	blocklistHelp    = "<ctrl-r> refresh | <o> sort | <enter> details | <del> delete | <c> clear all"
	rootFoldersHelp  = "<a> add | <del> delete | <ctrl-r> refresh"
	indexersHelp     = "<enter> edit | <s> settings | <t> test | <T> test all | <del> delete | <ctrl-r> refresh"
	systemHelp       = "<t> tasks | <z> queue | <l> logs | <u> updates | <ctrl-r> refresh"
	movieDetailsHelp = "<ctrl-r> refresh | <u> update | <e> edit | <s> auto search | <esc> close"
	manualSearchHelp = "<ctrl-r> refresh | <u> update | <e> edit | <o> sort | <s> auto search | <esc> close"
)

// MainTabs returns the top-level screens.
func MainTabs() TabState {
	return uistate.NewTabState(
		TabRoute{Title: "Library", Route: NewRoute(Movies), ContextualHelp: libraryHelp},
		TabRoute{Title: "Collections", Route: NewRoute(Collections), ContextualHelp: collectionsHelp},
		TabRoute{Title: "Downloads", Route: NewRoute(Downloads), ContextualHelp: downloadsHelp},
		TabRoute{Title: "Blocklist", Route: NewRoute(Blocklist), ContextualHelp: blocklistHelp},
		TabRoute{Title: "Root Folders", Route: NewRoute(RootFolders), ContextualHelp: rootFoldersHelp},
		TabRoute{Title: "Indexers", Route: NewRoute(Indexers), ContextualHelp: indexersHelp},
		TabRoute{Title: "System", Route: NewRoute(System), ContextualHelp: systemHelp},
	)
}

// MovieInfoTabs returns the tabs of the movie details popup.
func MovieInfoTabs() TabState {
	return uistate.NewTabState(
		TabRoute{Title: "Details", Route: NewRoute(MovieDetails), Help: movieDetailsHelp},
		TabRoute{Title: "History", Route: NewRoute(MovieHistory), Help: movieDetailsHelp},
		TabRoute{Title: "File", Route: NewRoute(FileInfo), Help: movieDetailsHelp},
		TabRoute{Title: "Cast", Route: NewRoute(Cast), Help: movieDetailsHelp},
		TabRoute{Title: "Crew", Route: NewRoute(Crew), Help: movieDetailsHelp},
		TabRoute{Title: "Manual Search", Route: NewRoute(ManualSearch), Help: manualSearchHelp, ContextualHelp: "<enter> details"},
	)
}

// Data is the movie-domain view state: every collection the screens read,
// the transient form fields and the pending confirmation.
type Data struct {
	RootFolders      uistate.Table[RootFolder]
	DiskSpace        []DiskSpace
	Version          string
	StartTime        time.Time
	Movies           uistate.Filterable[Movie]
	Collections      uistate.Filterable[Collection]
	CollectionMovies uistate.Table[CollectionMovie]
	Downloads        uistate.Table[DownloadRecord]
	Indexers         uistate.Table[Indexer]
	Blocklist        uistate.Table[BlocklistItem]
	QualityProfiles  NameMap
	Tags             NameMap
	Logs             uistate.List[ScrollText]
	Tasks            uistate.Table[Task]
	QueuedEvents     uistate.Table[QueueEvent]
	Updates          uistate.ScrollableText

	MainTabs      TabState
	MovieInfoTabs TabState

	Search            uistate.Query
	Filter            uistate.Query
	AddMovieSearch    uistate.Query
	Suggestion        string // closest title after a search or filter miss
	AddSearchedMovies *uistate.Table[AddMovieSearchResult]
	AddMovieSource    Block

	MonitorList             uistate.List[Monitor]
	MinimumAvailabilityList uistate.List[MinimumAvailability]
	QualityProfileList      uistate.List[string]
	RootFolderList          uistate.List[RootFolder]
	EditPath                ScrollText
	EditTags                ScrollText
	EditMonitored           *bool
	EditSearchOnAdd         *bool
	EditRootFolder          *ScrollText
	SelectedBlock           BlockSelection

	EditIndexerModal      *EditIndexerModal
	IndexerSettings       *IndexerSettingsModal
	IndexerTestErrors     *string
	IndexerTestAllResults *uistate.Table[IndexerTestRow]
	MovieDetailsModal     *MovieDetailsModal

	PromptAnswer        bool // highlighted answer of the open prompt
	PromptConfirm       bool
	PromptConfirmAction Event
	DeleteMovieFiles    bool
	AddListExclusion    bool
}

// NewData returns empty view state with tabs and sort options installed.
func NewData() *Data {
	d := &Data{
		MainTabs:      MainTabs(),
		MovieInfoTabs: MovieInfoTabs(),
	}
	d.Movies.Source.SetSortOptions(MovieSortOptions())
	d.Collections.Source.SetSortOptions(CollectionSortOptions())
	d.Blocklist.SetSortOptions(BlocklistSortOptions())
	return d
}

// MovieSortOptions are the orderings offered by the library sort prompt.
func MovieSortOptions() []uistate.SortOption[Movie] {
	return []uistate.SortOption[Movie]{
		{Name: "Title", Less: func(a, b Movie) bool { return lowerLess(a.Title.Text(), b.Title.Text()) }},
		{Name: "Year", Less: func(a, b Movie) bool { return a.Year < b.Year }},
		{Name: "Studio", Less: func(a, b Movie) bool { return lowerLess(a.Studio, b.Studio) }},
		{Name: "Runtime", Less: func(a, b Movie) bool { return a.Runtime < b.Runtime }},
		{Name: "Size", Less: func(a, b Movie) bool { return a.SizeOnDisk < b.SizeOnDisk }},
		{Name: "Monitored", Less: func(a, b Movie) bool { return !a.Monitored && b.Monitored }},
	}
}

// CollectionSortOptions are the orderings offered by the collections sort prompt.
func CollectionSortOptions() []uistate.SortOption[Collection] {
	return []uistate.SortOption[Collection]{
		{Name: "Collection", Less: func(a, b Collection) bool { return lowerLess(a.Title.Text(), b.Title.Text()) }},
		{Name: "Number of Movies", Less: func(a, b Collection) bool { return len(a.Movies) < len(b.Movies) }},
		{Name: "Root Folder Path", Less: func(a, b Collection) bool { return lowerLess(a.RootFolderPath, b.RootFolderPath) }},
		{Name: "Monitored", Less: func(a, b Collection) bool { return !a.Monitored && b.Monitored }},
	}
}

// BlocklistSortOptions are the orderings offered by the blocklist sort prompt.
func BlocklistSortOptions() []uistate.SortOption[BlocklistItem] {
	return []uistate.SortOption[BlocklistItem]{
		{Name: "Movie Title", Less: func(a, b BlocklistItem) bool {
			return lowerLess(a.Movie.Title.Text(), b.Movie.Title.Text())
		}},
		{Name: "Source Title", Less: func(a, b BlocklistItem) bool { return lowerLess(a.SourceTitle, b.SourceTitle) }},
		{Name: "Quality", Less: func(a, b BlocklistItem) bool { return a.Quality.Quality.Name < b.Quality.Quality.Name }},
		{Name: "Date", Less: func(a, b BlocklistItem) bool { return a.Date.Before(b.Date) }},
	}
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// MovieTitle is the text searched and filtered in the library.
func MovieTitle(m Movie) string { return m.Title.Text() }

// CollectionTitle is the text searched and filtered in collections.
func CollectionTitle(c Collection) string { return c.Title.Text() }

// ResetMovieCollectionTable empties the movies of the open collection.
func (d *Data) ResetMovieCollectionTable() {
	d.CollectionMovies = uistate.Table[CollectionMovie]{}
}

// ResetDeleteMoviePreferences clears the delete-movie toggles.
func (d *Data) ResetDeleteMoviePreferences() {
	d.DeleteMovieFiles = false
	d.AddListExclusion = false
}

// ResetSearch leaves search mode and drops every derived view.
func (d *Data) ResetSearch() {
	d.Search.Clear()
	d.Filter.Clear()
	d.AddMovieSearch.Clear()
	d.Suggestion = ""
	d.Movies.ResetFilter()
	d.Collections.ResetFilter()
	d.AddSearchedMovies = nil
}

// ResetFilter leaves filter mode and drops the filtered views.
func (d *Data) ResetFilter() {
	d.Filter.Clear()
	d.Movies.ResetFilter()
	d.Collections.ResetFilter()
}

// ResetAddEditMediaFields clears every add/edit form field.
func (d *Data) ResetAddEditMediaFields() {
	d.EditMonitored = nil
	d.EditSearchOnAdd = nil
	d.EditPath = ScrollText{}
	d.EditTags = ScrollText{}
	d.ResetPreferencesSelections()
}

// ResetMovieInfoTabs drops the movie details and returns to the first tab.
func (d *Data) ResetMovieInfoTabs() {
	d.MovieDetailsModal = nil
	d.MovieInfoTabs.SetIndex(0)
}

// ResetPreferencesSelections empties the choice lists of the add/edit forms.
func (d *Data) ResetPreferencesSelections() {
	d.MonitorList = uistate.List[Monitor]{}
	d.MinimumAvailabilityList = uistate.List[MinimumAvailability]{}
	d.QualityProfileList = uistate.List[string]{}
	d.RootFolderList = uistate.List[RootFolder]{}
}

// ResetIndexerForms drops the indexer edit and settings forms.
func (d *Data) ResetIndexerForms() {
	d.EditIndexerModal = nil
	d.IndexerSettings = nil
	d.IndexerTestErrors = nil
	d.IndexerTestAllResults = nil
}

// PopulatePreferencesLists fills the choice lists from the reference data.
func (d *Data) PopulatePreferencesLists() {
	d.MonitorList.SetItems(Monitors())
	d.MinimumAvailabilityList.SetItems(MinimumAvailabilities())
	d.QualityProfileList.SetItems(d.QualityProfiles.SortedNames())
	d.RootFolderList.SetItems(d.RootFolders.Items())
}

// PopulateEditMovieFields loads the selected movie into the edit form. The
// filtered view is used when one is active. It reports false when nothing is
// selected.
func (d *Data) PopulateEditMovieFields() bool {
	movie, ok := d.Movies.Active().Current()
	if !ok {
		return false
	}
	d.PopulatePreferencesLists()
	d.EditPath = uistate.NewHorizontallyScrollableText(movie.Path)
	d.EditTags = uistate.NewHorizontallyScrollableText(d.Tags.JoinNames(movie.Tags))
	monitored := movie.Monitored
	d.EditMonitored = &monitored
	d.selectAvailability(movie.MinimumAvailability)
	d.selectQualityProfile(movie.QualityProfileID)
	d.SelectedBlock = NewBlockSelectionFor(EditMovieSteps)
	return true
}

// PopulateEditCollectionFields loads the selected collection into the edit
// form, preferring the filtered view.
func (d *Data) PopulateEditCollectionFields() bool {
	collection, ok := d.Collections.Active().Current()
	if !ok {
		return false
	}
	d.PopulatePreferencesLists()
	d.EditPath = uistate.NewHorizontallyScrollableText(collection.RootFolderPath)
	monitored, searchOnAdd := collection.Monitored, collection.SearchOnAdd
	d.EditMonitored = &monitored
	d.EditSearchOnAdd = &searchOnAdd
	d.selectAvailability(collection.MinimumAvailability)
	d.selectQualityProfile(collection.QualityProfileID)
	d.SelectedBlock = NewBlockSelectionFor(EditCollectionSteps)
	return true
}

// PopulateAddMovieFields prepares the add-movie form for a movie picked from
// source, either the search results or the collection details table.
func (d *Data) PopulateAddMovieFields(source Block) {
	d.AddMovieSource = source
	d.PopulatePreferencesLists()
	d.EditTags = uistate.NewHorizontallyScrollableText("")
	d.SelectedBlock = NewBlockSelectionFor(AddMovieSteps)
}

// PopulateEditIndexerFields loads the selected indexer into its edit form.
func (d *Data) PopulateEditIndexerFields() bool {
	indexer, ok := d.Indexers.Current()
	if !ok {
		return false
	}
	field := func(name string) ScrollText {
		v, _ := indexer.Field(name)
		return uistate.NewHorizontallyScrollableText(fieldString(v))
	}
	d.EditIndexerModal = &EditIndexerModal{
		Name:                    uistate.NewHorizontallyScrollableText(indexer.Name),
		URL:                     field("baseUrl"),
		APIKey:                  field("apiKey"),
		SeedRatio:               field("seedCriteria.seedRatio"),
		Tags:                    uistate.NewHorizontallyScrollableText(d.Tags.JoinNames(indexer.Tags)),
		Priority:                uistate.NewHorizontallyScrollableText(strconv.FormatInt(indexer.Priority, 10)),
		EnableRss:               indexer.EnableRss,
		EnableAutomaticSearch:   indexer.EnableAutomaticSearch,
		EnableInteractiveSearch: indexer.EnableInteractiveSearch,
		Protocol:                indexer.Protocol,
	}
	d.SelectedBlock = NewBlockSelectionFor(d.EditIndexerModal.Steps())
	return true
}

func fieldString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func (d *Data) selectAvailability(current MinimumAvailability) {
	idx := d.MinimumAvailabilityList.IndexFunc(func(m MinimumAvailability) bool { return m == current })
	if idx >= 0 {
		d.MinimumAvailabilityList.SelectIndex(idx)
	}
}

func (d *Data) selectQualityProfile(id int64) {
	name, ok := d.QualityProfiles.Name(id)
	if !ok {
		return
	}
	idx := d.QualityProfileList.IndexFunc(func(p string) bool { return p == name })
	if idx >= 0 {
		d.QualityProfileList.SelectIndex(idx)
	}
}

// MovieInLibrary reports whether a movie with tmdbID is already in the library.
func (d *Data) MovieInLibrary(tmdbID int64) bool {
	return d.Movies.Source.IndexFunc(func(m Movie) bool { return m.TmdbID == tmdbID }) >= 0
}

// PopulateCollectionMovies copies the open collection's movies into the
// collection details table.
func (d *Data) PopulateCollectionMovies() {
	collection, ok := d.Collections.Active().Current()
	if !ok {
		d.ResetMovieCollectionTable()
		return
	}
	d.CollectionMovies.SetItems(collection.Movies)
}

// ApplyPromptConfirm submits the open prompt. A yes answer arms the pending
// confirmation with action. The answer is reset either way and the result
// reports whether the prompt was confirmed.
func (d *Data) ApplyPromptConfirm(action Event) bool {
	confirmed := d.PromptAnswer
	d.PromptAnswer = false
	if confirmed {
		d.ArmConfirmation(action)
	}
	return confirmed
}

// ArmConfirmation sets the pending confirmation to fire action on the next
// dispatch cycle.
func (d *Data) ArmConfirmation(action Event) {
	d.PromptConfirm = true
	d.PromptConfirmAction = action
}

// CancelPrompt drops the open prompt's answer. A confirmation armed by an
// earlier prompt stays pending.
func (d *Data) CancelPrompt() {
	d.PromptAnswer = false
}

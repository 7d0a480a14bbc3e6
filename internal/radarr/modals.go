package radarr

import (
	"fmt"
	"strconv"
	"strings"

	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// EditIndexerModal holds the editable copy of one indexer.
type EditIndexerModal struct {
	Name                    ScrollText
	URL                     ScrollText
	APIKey                  ScrollText
	SeedRatio               ScrollText
	Tags                    ScrollText
	Priority                ScrollText
	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
	Protocol                string
}

// Steps returns the form layout for the indexer protocol.
func (m *EditIndexerModal) Steps() StepSequence {
	return EditIndexerSteps(m.Protocol)
}

// Input returns the text field edited by block, or nil.
func (m *EditIndexerModal) Input(b Block) *ScrollText {
	switch b {
	case EditIndexerNameInput:
		return &m.Name
	case EditIndexerUrlInput:
		return &m.URL
	case EditIndexerApiKeyInput:
		return &m.APIKey
	case EditIndexerSeedRatioInput:
		return &m.SeedRatio
	case EditIndexerTagsInput:
		return &m.Tags
	case EditIndexerPriorityInput:
		return &m.Priority
	}
	return nil
}

// Toggle flips the boolean edited by block.
func (m *EditIndexerModal) Toggle(b Block) bool {
	switch b {
	case EditIndexerToggleEnableRss:
		m.EnableRss = !m.EnableRss
	case EditIndexerToggleEnableAutomaticSearch:
		m.EnableAutomaticSearch = !m.EnableAutomaticSearch
	case EditIndexerToggleEnableInteractiveSearch:
		m.EnableInteractiveSearch = !m.EnableInteractiveSearch
	default:
		return false
	}
	return true
}

// IndexerSettingsModal holds the editable copy of the global indexer settings.
type IndexerSettingsModal struct {
	ID                       int64
	MinimumAge               ScrollText
	Retention                ScrollText
	MaximumSize              ScrollText
	AvailabilityDelay        ScrollText
	RssSyncInterval          ScrollText
	WhitelistedHardcodedSubs ScrollText
	PreferIndexerFlags       bool
	AllowHardcodedSubs       bool
}

// NewIndexerSettingsModal copies settings into editable fields.
func NewIndexerSettingsModal(s IndexerSettings) *IndexerSettingsModal {
	itoa := func(v int64) ScrollText {
		return uistate.NewHorizontallyScrollableText(strconv.FormatInt(v, 10))
	}
	return &IndexerSettingsModal{
		ID:                       s.ID,
		MinimumAge:               itoa(s.MinimumAge),
		Retention:                itoa(s.Retention),
		MaximumSize:              itoa(s.MaximumSize),
		AvailabilityDelay:        itoa(s.AvailabilityDelay),
		RssSyncInterval:          itoa(s.RssSyncInterval),
		WhitelistedHardcodedSubs: uistate.NewHorizontallyScrollableText(s.WhitelistedHardcodedSubs),
		PreferIndexerFlags:       s.PreferIndexerFlags,
		AllowHardcodedSubs:       s.AllowHardcodedSubs,
	}
}

// Input returns the text field edited by block, or nil.
func (m *IndexerSettingsModal) Input(b Block) *ScrollText {
	switch b {
	case IndexerSettingsMinimumAgeInput:
		return &m.MinimumAge
	case IndexerSettingsRetentionInput:
		return &m.Retention
	case IndexerSettingsMaximumSizeInput:
		return &m.MaximumSize
	case IndexerSettingsAvailabilityDelayInput:
		return &m.AvailabilityDelay
	case IndexerSettingsRssSyncIntervalInput:
		return &m.RssSyncInterval
	case IndexerSettingsWhitelistedSubtitleTagsInput:
		return &m.WhitelistedHardcodedSubs
	}
	return nil
}

// Toggle flips the boolean edited by block.
func (m *IndexerSettingsModal) Toggle(b Block) bool {
	switch b {
	case IndexerSettingsTogglePreferIndexerFlags:
		m.PreferIndexerFlags = !m.PreferIndexerFlags
	case IndexerSettingsToggleAllowHardcodedSubs:
		m.AllowHardcodedSubs = !m.AllowHardcodedSubs
	default:
		return false
	}
	return true
}

// Settings converts the modal back into the API shape.
func (m *IndexerSettingsModal) Settings() (IndexerSettings, error) {
	out := IndexerSettings{
		ID:                       m.ID,
		PreferIndexerFlags:       m.PreferIndexerFlags,
		AllowHardcodedSubs:       m.AllowHardcodedSubs,
		WhitelistedHardcodedSubs: strings.TrimSpace(m.WhitelistedHardcodedSubs.Text()),
	}
	var err error
	if out.MinimumAge, err = parseSetting("minimum age", m.MinimumAge); err != nil {
		return IndexerSettings{}, err
	}
	if out.Retention, err = parseSetting("retention", m.Retention); err != nil {
		return IndexerSettings{}, err
	}
	if out.MaximumSize, err = parseSetting("maximum size", m.MaximumSize); err != nil {
		return IndexerSettings{}, err
	}
	if out.AvailabilityDelay, err = parseSetting("availability delay", m.AvailabilityDelay); err != nil {
		return IndexerSettings{}, err
	}
	if out.RssSyncInterval, err = parseSetting("rss sync interval", m.RssSyncInterval); err != nil {
		return IndexerSettings{}, err
	}
	return out, nil
}

func parseSetting(name string, text ScrollText) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text.Text()), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// MovieDetailsModal holds everything shown by the movie info tabs.
type MovieDetailsModal struct {
	MovieDetails  uistate.ScrollableText
	FileDetails   string
	AudioDetails  string
	VideoDetails  string
	MovieHistory  uistate.Table[MovieHistoryItem]
	MovieCast     uistate.Table[Credit]
	MovieCrew     uistate.Table[Credit]
	MovieReleases uistate.Table[Release]
}

// NewMovieDetailsModal returns an empty modal with release sorting installed.
func NewMovieDetailsModal() *MovieDetailsModal {
	m := &MovieDetailsModal{}
	m.MovieReleases.SetSortOptions(ReleaseSortOptions())
	return m
}

// ReleaseSortOptions are the orderings offered for manual search results.
func ReleaseSortOptions() []uistate.SortOption[Release] {
	return []uistate.SortOption[Release]{
		{Name: "Source", Less: func(a, b Release) bool { return a.Protocol < b.Protocol }},
		{Name: "Age", Less: func(a, b Release) bool { return a.Age < b.Age }},
		{Name: "Rejected", Less: func(a, b Release) bool { return !a.Rejected && b.Rejected }},
		{Name: "Title", Less: func(a, b Release) bool {
			return strings.ToLower(a.Title.Text()) < strings.ToLower(b.Title.Text())
		}},
		{Name: "Indexer", Less: func(a, b Release) bool { return strings.ToLower(a.Indexer) < strings.ToLower(b.Indexer) }},
		{Name: "Size", Less: func(a, b Release) bool { return a.Size < b.Size }},
		{Name: "Peers", Less: func(a, b Release) bool { return seeders(a) < seeders(b) }},
		{Name: "Quality", Less: func(a, b Release) bool { return a.Quality.Quality.Name < b.Quality.Quality.Name }},
	}
}

func seeders(r Release) int64 {
	if r.Seeders == nil {
		return 0
	}
	return *r.Seeders
}

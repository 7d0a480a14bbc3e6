package radarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

func title(s string) ScrollText {
	return uistate.NewHorizontallyScrollableText(s)
}

func seededData() *Data {
	d := NewData()
	d.QualityProfiles = NewNameMap(map[int64]string{1: "HD-1080p", 2: "Any", 3: "Ultra-HD"})
	d.Tags = NewNameMap(map[int64]string{1: "alex", 2: "family"})
	d.RootFolders.SetItems([]RootFolder{{ID: 1, Path: "/movies"}, {ID: 2, Path: "/kids"}})
	d.Movies.SetItems([]Movie{
		{ID: 1, Title: title("Alien"), Path: "/movies/Alien", QualityProfileID: 1, MinimumAvailability: Released, Monitored: true, Tags: []int64{1}},
		{ID: 2, Title: title("Brave"), Path: "/kids/Brave", QualityProfileID: 3, MinimumAvailability: InCinemas, Tags: []int64{2, 1}},
	})
	return d
}

func TestPopulatePreferencesLists(t *testing.T) {
	d := seededData()
	d.PopulatePreferencesLists()

	assert.Equal(t, Monitors(), d.MonitorList.Items())
	assert.Equal(t, MinimumAvailabilities(), d.MinimumAvailabilityList.Items())
	assert.Equal(t, []string{"Any", "HD-1080p", "Ultra-HD"}, d.QualityProfileList.Items())
	assert.Len(t, d.RootFolderList.Items(), 2)
}

func TestPopulateEditMovieFieldsUsesFilteredView(t *testing.T) {
	d := seededData()
	d.Movies.SetFiltered([]Movie{d.Movies.Source.Items()[1]})

	require.True(t, d.PopulateEditMovieFields())
	assert.Equal(t, "/kids/Brave", d.EditPath.Text())
	assert.Equal(t, "family, alex", d.EditTags.Text())
	require.NotNil(t, d.EditMonitored)
	assert.False(t, *d.EditMonitored)

	availability, ok := d.MinimumAvailabilityList.Current()
	require.True(t, ok)
	assert.Equal(t, InCinemas, availability)
	profile, ok := d.QualityProfileList.Current()
	require.True(t, ok)
	assert.Equal(t, "Ultra-HD", profile)
	assert.Equal(t, EditMovieToggleMonitored, d.SelectedBlock.Current())
}

func TestPopulateEditMovieFieldsWithoutSelection(t *testing.T) {
	d := NewData()
	assert.False(t, d.PopulateEditMovieFields())
	assert.Nil(t, d.EditMonitored)
}

func TestPopulateEditCollectionFields(t *testing.T) {
	d := seededData()
	d.Collections.SetItems([]Collection{{
		ID: 9, Title: title("Alien Collection"), RootFolderPath: "/movies",
		Monitored: true, SearchOnAdd: true, MinimumAvailability: Announced, QualityProfileID: 2,
	}})

	require.True(t, d.PopulateEditCollectionFields())
	assert.Equal(t, "/movies", d.EditPath.Text())
	assert.True(t, *d.EditSearchOnAdd)
	profile, _ := d.QualityProfileList.Current()
	assert.Equal(t, "Any", profile)
	assert.Equal(t, EditCollectionToggleMonitored, d.SelectedBlock.Current())
}

func TestPopulateEditIndexerFields(t *testing.T) {
	d := seededData()
	d.Indexers.SetItems([]Indexer{{
		ID: 4, Name: "Nyaa", Protocol: "torrent", Priority: 25, EnableRss: true, Tags: []int64{2},
		Fields: []IndexerField{{Name: "baseUrl", Value: "https://nyaa.example"}, {Name: "seedCriteria.seedRatio", Value: 1.5}},
	}})

	require.True(t, d.PopulateEditIndexerFields())
	m := d.EditIndexerModal
	assert.Equal(t, "Nyaa", m.Name.Text())
	assert.Equal(t, "https://nyaa.example", m.URL.Text())
	assert.Equal(t, "1.5", m.SeedRatio.Text())
	assert.Equal(t, "25", m.Priority.Text())
	assert.Equal(t, "family", m.Tags.Text())
	assert.Equal(t, 6, d.SelectedBlock.Sequence().Len())
	assert.True(t, m.Toggle(EditIndexerToggleEnableRss))
	assert.False(t, m.EnableRss)
	assert.False(t, m.Toggle(EditIndexerNameInput))
}

func TestResetSearchAndFilter(t *testing.T) {
	d := seededData()
	d.Search.Begin()
	d.Filter.Begin()
	d.Movies.SetFiltered(d.Movies.Source.Items()[:1])
	results := uistate.NewTable([]AddMovieSearchResult{{TmdbID: 1}})
	d.AddSearchedMovies = &results

	d.ResetFilter()
	assert.False(t, d.Filter.Active)
	assert.False(t, d.Movies.IsFiltered())
	assert.True(t, d.Search.Active)

	d.ResetSearch()
	assert.False(t, d.Search.Active)
	assert.Nil(t, d.AddSearchedMovies)
}

func TestResetMovieInfoTabs(t *testing.T) {
	d := NewData()
	d.MovieDetailsModal = NewMovieDetailsModal()
	d.MovieInfoTabs.Next()
	d.MovieInfoTabs.Next()

	d.ResetMovieInfoTabs()
	assert.Nil(t, d.MovieDetailsModal)
	assert.Equal(t, 0, d.MovieInfoTabs.Index())
}

func TestResetAddEditMediaFields(t *testing.T) {
	d := seededData()
	require.True(t, d.PopulateEditMovieFields())
	d.ResetAddEditMediaFields()

	assert.Nil(t, d.EditMonitored)
	assert.True(t, d.EditPath.IsEmpty())
	assert.True(t, d.QualityProfileList.IsEmpty())
	assert.True(t, d.MonitorList.IsEmpty())
}

func TestApplyPromptConfirm(t *testing.T) {
	d := NewData()
	assert.False(t, d.ApplyPromptConfirm(DeleteMovie))
	assert.False(t, d.PromptConfirm)
	assert.Equal(t, NoEvent, d.PromptConfirmAction)

	d.PromptAnswer = true
	assert.True(t, d.ApplyPromptConfirm(DeleteMovie))
	assert.True(t, d.PromptConfirm)
	assert.Equal(t, DeleteMovie, d.PromptConfirmAction)
	assert.False(t, d.PromptAnswer)
}

func TestDeclinedPromptKeepsPendingConfirmation(t *testing.T) {
	d := NewData()
	d.ArmConfirmation(DeleteMovie)

	d.PromptAnswer = true
	d.CancelPrompt()
	assert.False(t, d.ApplyPromptConfirm(UpdateAllMovies))

	assert.True(t, d.PromptConfirm)
	assert.Equal(t, DeleteMovie, d.PromptConfirmAction)
	assert.False(t, d.PromptAnswer)
}

func TestMovieInLibrary(t *testing.T) {
	d := seededData()
	d.Movies.SetItems([]Movie{{ID: 1, TmdbID: 348}})
	assert.True(t, d.MovieInLibrary(348))
	assert.False(t, d.MovieInLibrary(1))
}

func TestIndexerSettingsModalRoundTrip(t *testing.T) {
	m := NewIndexerSettingsModal(IndexerSettings{ID: 1, MinimumAge: 5, Retention: 30, RssSyncInterval: 60, AllowHardcodedSubs: true})
	m.Retention.Set("45")
	assert.True(t, m.Toggle(IndexerSettingsTogglePreferIndexerFlags))

	settings, err := m.Settings()
	require.NoError(t, err)
	assert.Equal(t, int64(45), settings.Retention)
	assert.Equal(t, int64(5), settings.MinimumAge)
	assert.True(t, settings.PreferIndexerFlags)

	m.MaximumSize.Set("lots")
	_, err = m.Settings()
	assert.ErrorContains(t, err, "maximum size")
}

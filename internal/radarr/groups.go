package radarr

// BlockSet is a named group of blocks used for membership tests.
type BlockSet struct {
	name    string
	members map[Block]struct{}
	order   []Block
}

func newBlockSet(name string, blocks ...Block) BlockSet {
	set := BlockSet{name: name, members: make(map[Block]struct{}, len(blocks))}
	for _, b := range blocks {
		if _, dup := set.members[b]; dup {
			continue
		}
		set.members[b] = struct{}{}
		set.order = append(set.order, b)
	}
	return set
}

// Name returns the group name.
func (s BlockSet) Name() string {
	return s.name
}

// Contains reports whether b belongs to the group.
func (s BlockSet) Contains(b Block) bool {
	_, ok := s.members[b]
	return ok
}

// Blocks returns the members in declaration order.
func (s BlockSet) Blocks() []Block {
	out := make([]Block, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of members.
func (s BlockSet) Len() int {
	return len(s.order)
}

var (
	LibraryBlocks = newBlockSet("library",
		Movies,
		MoviesSortPrompt,
		SearchMovie,
		SearchMovieError,
		FilterMovies,
		FilterMoviesError,
		UpdateAllMoviesPrompt,
	)
	CollectionsBlocks = newBlockSet("collections",
		Collections,
		CollectionsSortPrompt,
		SearchCollection,
		SearchCollectionError,
		FilterCollections,
		FilterCollectionsError,
		UpdateAllCollectionsPrompt,
	)
	IndexersBlocks = newBlockSet("indexers",
		DeleteIndexerPrompt,
		Indexers,
		TestIndexer,
	)
	RootFoldersBlocks = newBlockSet("root-folders",
		RootFolders,
		AddRootFolderPrompt,
		DeleteRootFolderPrompt,
	)
	BlocklistBlocks = newBlockSet("blocklist",
		Blocklist,
		BlocklistItemDetails,
		DeleteBlocklistItemPrompt,
		BlocklistClearAllItemsPrompt,
		BlocklistSortPrompt,
	)
	AddMovieBlocks = newBlockSet("add-movie",
		AddMovieSearchInput,
		AddMovieSearchResults,
		AddMovieEmptySearchResults,
		AddMoviePrompt,
		AddMovieSelectMinimumAvailability,
		AddMovieSelectMonitor,
		AddMovieSelectQualityProfile,
		AddMovieSelectRootFolder,
		AddMovieAlreadyInLibrary,
		AddMovieTagsInput,
		AddMovieConfirmPrompt,
	)
	EditCollectionBlocks = newBlockSet("edit-collection",
		EditCollectionPrompt,
		EditCollectionConfirmPrompt,
		EditCollectionRootFolderPathInput,
		EditCollectionSelectMinimumAvailability,
		EditCollectionSelectQualityProfile,
		EditCollectionToggleSearchOnAdd,
		EditCollectionToggleMonitored,
	)
	EditMovieBlocks = newBlockSet("edit-movie",
		EditMoviePrompt,
		EditMovieConfirmPrompt,
		EditMoviePathInput,
		EditMovieSelectMinimumAvailability,
		EditMovieSelectQualityProfile,
		EditMovieTagsInput,
		EditMovieToggleMonitored,
	)
	DownloadsBlocks = newBlockSet("downloads",
		Downloads,
		DeleteDownloadPrompt,
		UpdateDownloadsPrompt,
	)
	MovieDetailsBlocks = newBlockSet("movie-details",
		MovieDetails,
		MovieHistory,
		FileInfo,
		Cast,
		Crew,
		AutomaticallySearchMoviePrompt,
		UpdateAndScanPrompt,
		ManualSearch,
		ManualSearchSortPrompt,
		ManualSearchConfirmPrompt,
	)
	CollectionDetailsBlocks = newBlockSet("collection-details",
		CollectionDetails,
		ViewMovieOverview,
	)
	DeleteMovieBlocks = newBlockSet("delete-movie",
		DeleteMoviePrompt,
		DeleteMovieConfirmPrompt,
		DeleteMovieToggleDeleteFile,
		DeleteMovieToggleAddListExclusion,
	)
	EditIndexerBlocks = newBlockSet("edit-indexer",
		EditIndexerPrompt,
		EditIndexerConfirmPrompt,
		EditIndexerApiKeyInput,
		EditIndexerNameInput,
		EditIndexerSeedRatioInput,
		EditIndexerToggleEnableRss,
		EditIndexerToggleEnableAutomaticSearch,
		EditIndexerToggleEnableInteractiveSearch,
		EditIndexerPriorityInput,
		EditIndexerUrlInput,
		EditIndexerTagsInput,
	)
	IndexerSettingsBlocks = newBlockSet("indexer-settings",
		AllIndexerSettingsPrompt,
		IndexerSettingsAvailabilityDelayInput,
		IndexerSettingsConfirmPrompt,
		IndexerSettingsMaximumSizeInput,
		IndexerSettingsMinimumAgeInput,
		IndexerSettingsRetentionInput,
		IndexerSettingsRssSyncIntervalInput,
		IndexerSettingsToggleAllowHardcodedSubs,
		IndexerSettingsTogglePreferIndexerFlags,
		IndexerSettingsWhitelistedSubtitleTagsInput,
	)
	TestAllIndexersBlocks = newBlockSet("test-all-indexers",
		TestAllIndexers,
	)
	SystemBlocks = newBlockSet("system",
		System,
	)
	SystemDetailsBlocks = newBlockSet("system-details",
		SystemLogs,
		SystemQueuedEvents,
		SystemTasks,
		SystemTaskStartConfirmPrompt,
		SystemUpdates,
	)
)

// Groups lists the leaf groups. Every block belongs to exactly one of them.
func Groups() []BlockSet {
	return []BlockSet{
		LibraryBlocks,
		AddMovieBlocks,
		EditMovieBlocks,
		DeleteMovieBlocks,
		MovieDetailsBlocks,
		CollectionsBlocks,
		CollectionDetailsBlocks,
		EditCollectionBlocks,
		DownloadsBlocks,
		BlocklistBlocks,
		RootFoldersBlocks,
		IndexersBlocks,
		EditIndexerBlocks,
		IndexerSettingsBlocks,
		TestAllIndexersBlocks,
		SystemBlocks,
		SystemDetailsBlocks,
	}
}

// InputBlocks are the blocks that capture free text; the quit key types
// into them instead of exiting.
var InputBlocks = newBlockSet("inputs",
	SearchMovie,
	FilterMovies,
	SearchCollection,
	FilterCollections,
	AddMovieSearchInput,
	AddMovieTagsInput,
	AddRootFolderPrompt,
	EditMoviePathInput,
	EditMovieTagsInput,
	EditCollectionRootFolderPathInput,
	EditIndexerNameInput,
	EditIndexerUrlInput,
	EditIndexerApiKeyInput,
	EditIndexerSeedRatioInput,
	EditIndexerPriorityInput,
	EditIndexerTagsInput,
	IndexerSettingsMinimumAgeInput,
	IndexerSettingsRetentionInput,
	IndexerSettingsMaximumSizeInput,
	IndexerSettingsAvailabilityDelayInput,
	IndexerSettingsRssSyncIntervalInput,
	IndexerSettingsWhitelistedSubtitleTagsInput,
)

// ErrorBlocks display a failed search or filter until the next key press.
var ErrorBlocks = newBlockSet("errors",
	SearchMovieError,
	FilterMoviesError,
	SearchCollectionError,
	FilterCollectionsError,
)

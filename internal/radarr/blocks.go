package radarr

import uistate "github.com/atomicstack/servarr-tui/internal/ui/state"

// Block identifies one screen, popup, prompt or input field of the movie
// library UI. The zero value NoBlock is never displayed.
type Block int

const (
	NoBlock Block = iota
	AddMovieAlreadyInLibrary
	AddMovieSearchInput
	AddMovieSearchResults
	AddMoviePrompt
	AddMovieSelectMinimumAvailability
	AddMovieSelectQualityProfile
	AddMovieSelectMonitor
	AddMovieSelectRootFolder
	AddMovieConfirmPrompt
	AddMovieTagsInput
	AddMovieEmptySearchResults
	AddRootFolderPrompt
	AutomaticallySearchMoviePrompt
	Blocklist
	BlocklistClearAllItemsPrompt
	BlocklistItemDetails
	BlocklistSortPrompt
	Collections
	CollectionsSortPrompt
	CollectionDetails
	Cast
	Crew
	DeleteBlocklistItemPrompt
	DeleteDownloadPrompt
	DeleteIndexerPrompt
	DeleteMoviePrompt
	DeleteMovieConfirmPrompt
	DeleteMovieToggleDeleteFile
	DeleteMovieToggleAddListExclusion
	DeleteRootFolderPrompt
	Downloads
	EditCollectionPrompt
	EditCollectionConfirmPrompt
	EditCollectionRootFolderPathInput
	EditCollectionSelectMinimumAvailability
	EditCollectionSelectQualityProfile
	EditCollectionToggleSearchOnAdd
	EditCollectionToggleMonitored
	EditIndexerPrompt
	EditIndexerConfirmPrompt
	EditIndexerApiKeyInput
	EditIndexerNameInput
	EditIndexerSeedRatioInput
	EditIndexerToggleEnableRss
	EditIndexerToggleEnableAutomaticSearch
	EditIndexerToggleEnableInteractiveSearch
	EditIndexerPriorityInput
	EditIndexerUrlInput
	EditIndexerTagsInput
	EditMoviePrompt
	EditMovieConfirmPrompt
	EditMoviePathInput
	EditMovieSelectMinimumAvailability
	EditMovieSelectQualityProfile
	EditMovieTagsInput
	EditMovieToggleMonitored
	FileInfo
	FilterCollections
	FilterCollectionsError
	FilterMovies
	FilterMoviesError
	Indexers
	AllIndexerSettingsPrompt
	IndexerSettingsAvailabilityDelayInput
	IndexerSettingsConfirmPrompt
	IndexerSettingsMaximumSizeInput
	IndexerSettingsMinimumAgeInput
	IndexerSettingsRetentionInput
	IndexerSettingsRssSyncIntervalInput
	IndexerSettingsToggleAllowHardcodedSubs
	IndexerSettingsTogglePreferIndexerFlags
	IndexerSettingsWhitelistedSubtitleTagsInput
	ManualSearch
	ManualSearchSortPrompt
	ManualSearchConfirmPrompt
	MovieDetails
	MovieHistory
	Movies
	MoviesSortPrompt
	RootFolders
	System
	SystemLogs
	SystemQueuedEvents
	SystemTasks
	SystemTaskStartConfirmPrompt
	SystemUpdates
	TestIndexer
	TestAllIndexers
	UpdateAndScanPrompt
	UpdateAllCollectionsPrompt
	UpdateAllMoviesPrompt
	UpdateDownloadsPrompt
	SearchCollection
	SearchCollectionError
	SearchMovie
	SearchMovieError
	ViewMovieOverview

	blockCount
)

// DefaultBlock is the screen the application starts on.
const DefaultBlock = Movies

var blockNames = [...]string{
	NoBlock:                                     "None",
	AddMovieAlreadyInLibrary:                    "AddMovieAlreadyInLibrary",
	AddMovieSearchInput:                         "AddMovieSearchInput",
	AddMovieSearchResults:                       "AddMovieSearchResults",
	AddMoviePrompt:                              "AddMoviePrompt",
	AddMovieSelectMinimumAvailability:           "AddMovieSelectMinimumAvailability",
	AddMovieSelectQualityProfile:                "AddMovieSelectQualityProfile",
	AddMovieSelectMonitor:                       "AddMovieSelectMonitor",
	AddMovieSelectRootFolder:                    "AddMovieSelectRootFolder",
	AddMovieConfirmPrompt:                       "AddMovieConfirmPrompt",
	AddMovieTagsInput:                           "AddMovieTagsInput",
	AddMovieEmptySearchResults:                  "AddMovieEmptySearchResults",
	AddRootFolderPrompt:                         "AddRootFolderPrompt",
	AutomaticallySearchMoviePrompt:              "AutomaticallySearchMoviePrompt",
	Blocklist:                                   "Blocklist",
	BlocklistClearAllItemsPrompt:                "BlocklistClearAllItemsPrompt",
	BlocklistItemDetails:                        "BlocklistItemDetails",
	BlocklistSortPrompt:                         "BlocklistSortPrompt",
	Collections:                                 "Collections",
	CollectionsSortPrompt:                       "CollectionsSortPrompt",
	CollectionDetails:                           "CollectionDetails",
	Cast:                                        "Cast",
	Crew:                                        "Crew",
	DeleteBlocklistItemPrompt:                   "DeleteBlocklistItemPrompt",
	DeleteDownloadPrompt:                        "DeleteDownloadPrompt",
	DeleteIndexerPrompt:                         "DeleteIndexerPrompt",
	DeleteMoviePrompt:                           "DeleteMoviePrompt",
	DeleteMovieConfirmPrompt:                    "DeleteMovieConfirmPrompt",
	DeleteMovieToggleDeleteFile:                 "DeleteMovieToggleDeleteFile",
	DeleteMovieToggleAddListExclusion:           "DeleteMovieToggleAddListExclusion",
	DeleteRootFolderPrompt:                      "DeleteRootFolderPrompt",
	Downloads:                                   "Downloads",
	EditCollectionPrompt:                        "EditCollectionPrompt",
	EditCollectionConfirmPrompt:                 "EditCollectionConfirmPrompt",
	EditCollectionRootFolderPathInput:           "EditCollectionRootFolderPathInput",
	EditCollectionSelectMinimumAvailability:     "EditCollectionSelectMinimumAvailability",
	EditCollectionSelectQualityProfile:          "EditCollectionSelectQualityProfile",
	EditCollectionToggleSearchOnAdd:             "EditCollectionToggleSearchOnAdd",
	EditCollectionToggleMonitored:               "EditCollectionToggleMonitored",
	EditIndexerPrompt:                           "EditIndexerPrompt",
	EditIndexerConfirmPrompt:                    "EditIndexerConfirmPrompt",
	EditIndexerApiKeyInput:                      "EditIndexerApiKeyInput",
	EditIndexerNameInput:                        "EditIndexerNameInput",
	EditIndexerSeedRatioInput:                   "EditIndexerSeedRatioInput",
	EditIndexerToggleEnableRss:                  "EditIndexerToggleEnableRss",
	EditIndexerToggleEnableAutomaticSearch:      "EditIndexerToggleEnableAutomaticSearch",
	EditIndexerToggleEnableInteractiveSearch:    "EditIndexerToggleEnableInteractiveSearch",
	EditIndexerPriorityInput:                    "EditIndexerPriorityInput",
	EditIndexerUrlInput:                         "EditIndexerUrlInput",
	EditIndexerTagsInput:                        "EditIndexerTagsInput",
	EditMoviePrompt:                             "EditMoviePrompt",
	EditMovieConfirmPrompt:                      "EditMovieConfirmPrompt",
	EditMoviePathInput:                          "EditMoviePathInput",
	EditMovieSelectMinimumAvailability:          "EditMovieSelectMinimumAvailability",
	EditMovieSelectQualityProfile:               "EditMovieSelectQualityProfile",
	EditMovieTagsInput:                          "EditMovieTagsInput",
	EditMovieToggleMonitored:                    "EditMovieToggleMonitored",
	FileInfo:                                    "FileInfo",
	FilterCollections:                           "FilterCollections",
	FilterCollectionsError:                      "FilterCollectionsError",
	FilterMovies:                                "FilterMovies",
	FilterMoviesError:                           "FilterMoviesError",
	Indexers:                                    "Indexers",
	AllIndexerSettingsPrompt:                    "AllIndexerSettingsPrompt",
	IndexerSettingsAvailabilityDelayInput:       "IndexerSettingsAvailabilityDelayInput",
	IndexerSettingsConfirmPrompt:                "IndexerSettingsConfirmPrompt",
	IndexerSettingsMaximumSizeInput:             "IndexerSettingsMaximumSizeInput",
	IndexerSettingsMinimumAgeInput:              "IndexerSettingsMinimumAgeInput",
	IndexerSettingsRetentionInput:               "IndexerSettingsRetentionInput",
	IndexerSettingsRssSyncIntervalInput:         "IndexerSettingsRssSyncIntervalInput",
	IndexerSettingsToggleAllowHardcodedSubs:     "IndexerSettingsToggleAllowHardcodedSubs",
	IndexerSettingsTogglePreferIndexerFlags:     "IndexerSettingsTogglePreferIndexerFlags",
	IndexerSettingsWhitelistedSubtitleTagsInput: "IndexerSettingsWhitelistedSubtitleTagsInput",
	ManualSearch:                                "ManualSearch",
	ManualSearchSortPrompt:                      "ManualSearchSortPrompt",
	ManualSearchConfirmPrompt:                   "ManualSearchConfirmPrompt",
	MovieDetails:                                "MovieDetails",
	MovieHistory:                                "MovieHistory",
	Movies:                                      "Movies",
	MoviesSortPrompt:                            "MoviesSortPrompt",
	RootFolders:                                 "RootFolders",
	System:                                      "System",
	SystemLogs:                                  "SystemLogs",
	SystemQueuedEvents:                          "SystemQueuedEvents",
	SystemTasks:                                 "SystemTasks",
	SystemTaskStartConfirmPrompt:                "SystemTaskStartConfirmPrompt",
	SystemUpdates:                               "SystemUpdates",
	TestIndexer:                                 "TestIndexer",
	TestAllIndexers:                             "TestAllIndexers",
	UpdateAndScanPrompt:                         "UpdateAndScanPrompt",
	UpdateAllCollectionsPrompt:                  "UpdateAllCollectionsPrompt",
	UpdateAllMoviesPrompt:                       "UpdateAllMoviesPrompt",
	UpdateDownloadsPrompt:                       "UpdateDownloadsPrompt",
	SearchCollection:                            "SearchCollection",
	SearchCollectionError:                       "SearchCollectionError",
	SearchMovie:                                 "SearchMovie",
	SearchMovieError:                            "SearchMovieError",
	ViewMovieOverview:                           "ViewMovieOverview",
}

func (b Block) String() string {
	if b < 0 || b >= blockCount {
		return "Block(?)"
	}
	return blockNames[b]
}

// AllBlocks lists every displayable block in declaration order.
func AllBlocks() []Block {
	blocks := make([]Block, 0, blockCount-1)
	for b := NoBlock + 1; b < blockCount; b++ {
		blocks = append(blocks, b)
	}
	return blocks
}

// Route is a navigation entry over movie library blocks.
type Route = uistate.Route[Block]

// NewRoute returns the route for block without context.
func NewRoute(block Block) Route {
	return uistate.NewRoute(block)
}

// RouteWithContext returns the route for block drawn over context.
func RouteWithContext(block, context Block) Route {
	return uistate.RouteWithContext(block, context)
}

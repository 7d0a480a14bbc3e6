package radarr

// Event identifies one remote operation. Events carry no payload: the
// request is built from the application state when the event is executed.
type Event int

const (
	NoEvent Event = iota
	AddMovie
	AddRootFolder
	ClearBlocklist
	DeleteBlocklistItem
	DeleteDownload
	DeleteIndexer
	DeleteMovie
	DeleteRootFolder
	DownloadRelease
	EditAllIndexerSettings
	EditCollection
	EditIndexer
	EditMovie
	GetAllIndexerSettings
	GetBlocklist
	GetCollections
	GetDownloads
	GetIndexers
	GetLogs
	GetMovieCredits
	GetMovieDetails
	GetMovieHistory
	GetMovies
	GetOverview
	GetQualityProfiles
	GetQueuedEvents
	GetReleases
	GetRootFolders
	GetStatus
	GetTags
	GetTasks
	GetUpdates
	HealthCheck
	SearchNewMovie
	StartTask
	TestIndexerEvent
	TestAllIndexersEvent
	TriggerAutomaticSearch
	UpdateAllMovies
	UpdateAndScan
	UpdateCollections
	UpdateDownloads
)

var eventNames = map[Event]string{
	NoEvent:                "None",
	AddMovie:               "AddMovie",
	AddRootFolder:          "AddRootFolder",
	ClearBlocklist:         "ClearBlocklist",
	DeleteBlocklistItem:    "DeleteBlocklistItem",
	DeleteDownload:         "DeleteDownload",
	DeleteIndexer:          "DeleteIndexer",
	DeleteMovie:            "DeleteMovie",
	DeleteRootFolder:       "DeleteRootFolder",
	DownloadRelease:        "DownloadRelease",
	EditAllIndexerSettings: "EditAllIndexerSettings",
	EditCollection:         "EditCollection",
	EditIndexer:            "EditIndexer",
	EditMovie:              "EditMovie",
	GetAllIndexerSettings:  "GetAllIndexerSettings",
	GetBlocklist:           "GetBlocklist",
	GetCollections:         "GetCollections",
	GetDownloads:           "GetDownloads",
	GetIndexers:            "GetIndexers",
	GetLogs:                "GetLogs",
	GetMovieCredits:        "GetMovieCredits",
	GetMovieDetails:        "GetMovieDetails",
	GetMovieHistory:        "GetMovieHistory",
	GetMovies:              "GetMovies",
	GetOverview:            "GetOverview",
	GetQualityProfiles:     "GetQualityProfiles",
	GetQueuedEvents:        "GetQueuedEvents",
	GetReleases:            "GetReleases",
	GetRootFolders:         "GetRootFolders",
	GetStatus:              "GetStatus",
	GetTags:                "GetTags",
	GetTasks:               "GetTasks",
	GetUpdates:             "GetUpdates",
	HealthCheck:            "HealthCheck",
	SearchNewMovie:         "SearchNewMovie",
	StartTask:              "StartTask",
	TestIndexerEvent:       "TestIndexer",
	TestAllIndexersEvent:   "TestAllIndexers",
	TriggerAutomaticSearch: "TriggerAutomaticSearch",
	UpdateAllMovies:        "UpdateAllMovies",
	UpdateAndScan:          "UpdateAndScan",
	UpdateCollections:      "UpdateCollections",
	UpdateDownloads:        "UpdateDownloads",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Event(?)"
}

// Mutates reports whether a successful run of e changes server state, in
// which case the visible data is refreshed afterwards.
func (e Event) Mutates() bool {
	switch e {
	case AddMovie, AddRootFolder, ClearBlocklist, DeleteBlocklistItem,
		DeleteDownload, DeleteIndexer, DeleteMovie, DeleteRootFolder,
		DownloadRelease, EditAllIndexerSettings, EditCollection, EditIndexer,
		EditMovie, StartTask, TriggerAutomaticSearch, UpdateAllMovies,
		UpdateAndScan, UpdateCollections, UpdateDownloads:
		return true
	}
	return false
}

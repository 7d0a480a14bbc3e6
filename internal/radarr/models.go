package radarr

import (
	"fmt"
	"strings"
	"time"

	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

// ScrollText is the marquee/edit text type shared by every model.
type ScrollText = uistate.HorizontallyScrollableText

// MinimumAvailability is the release stage at which a movie is considered
// available for download.
type MinimumAvailability string

const (
	Announced MinimumAvailability = "announced"
	InCinemas MinimumAvailability = "inCinemas"
	Released  MinimumAvailability = "released"
	TBA       MinimumAvailability = "tba"
)

// MinimumAvailabilities lists every availability in display order.
func MinimumAvailabilities() []MinimumAvailability {
	return []MinimumAvailability{Announced, InCinemas, Released, TBA}
}

// Display returns the human label.
func (m MinimumAvailability) Display() string {
	switch m {
	case Announced:
		return "Announced"
	case InCinemas:
		return "In Cinemas"
	case Released:
		return "Released"
	case TBA:
		return "TBA"
	}
	return string(m)
}

// Monitor selects what an added movie monitors.
type Monitor string

const (
	MonitorMovieOnly          Monitor = "movieOnly"
	MonitorMovieAndCollection Monitor = "movieAndCollection"
	MonitorNone               Monitor = "none"
)

// Monitors lists every monitor option in display order.
func Monitors() []Monitor {
	return []Monitor{MonitorMovieOnly, MonitorMovieAndCollection, MonitorNone}
}

// Display returns the human label.
func (m Monitor) Display() string {
	switch m {
	case MonitorMovieOnly:
		return "Movie only"
	case MonitorMovieAndCollection:
		return "Movie and Collection"
	case MonitorNone:
		return "None"
	}
	return string(m)
}

type Language struct {
	Name string `json:"name"`
}

type Rating struct {
	Value float64 `json:"value"`
}

type Ratings struct {
	Imdb           *Rating `json:"imdb,omitempty"`
	Tmdb           *Rating `json:"tmdb,omitempty"`
	RottenTomatoes *Rating `json:"rottenTomatoes,omitempty"`
}

type QualityName struct {
	Name string `json:"name"`
}

type Quality struct {
	Quality QualityName `json:"quality"`
}

type MediaInfo struct {
	AudioBitrate     int64   `json:"audioBitrate"`
	AudioChannels    float64 `json:"audioChannels"`
	AudioCodec       string  `json:"audioCodec"`
	AudioLanguages   string  `json:"audioLanguages"`
	AudioStreamCount int64   `json:"audioStreamCount"`
	VideoBitDepth    int64   `json:"videoBitDepth"`
	VideoBitrate     int64   `json:"videoBitrate"`
	VideoCodec       string  `json:"videoCodec"`
	VideoFps         float64 `json:"videoFps"`
	Resolution       string  `json:"resolution"`
	RunTime          string  `json:"runTime"`
	ScanType         string  `json:"scanType"`
	Subtitles        string  `json:"subtitles"`
}

type MovieFile struct {
	RelativePath string     `json:"relativePath"`
	Path         string     `json:"path"`
	DateAdded    time.Time  `json:"dateAdded"`
	MediaInfo    *MediaInfo `json:"mediaInfo,omitempty"`
}

type MovieCollectionRef struct {
	Title string `json:"title"`
}

type Movie struct {
	ID                  int64               `json:"id"`
	Title               ScrollText          `json:"title"`
	OriginalLanguage    Language            `json:"originalLanguage"`
	SizeOnDisk          int64               `json:"sizeOnDisk"`
	Status              string              `json:"status"`
	Overview            string              `json:"overview"`
	Path                string              `json:"path"`
	Studio              string              `json:"studio"`
	Genres              []string            `json:"genres"`
	Year                int64               `json:"year"`
	Monitored           bool                `json:"monitored"`
	HasFile             bool                `json:"hasFile"`
	Runtime             int64               `json:"runtime"`
	TmdbID              int64               `json:"tmdbId"`
	QualityProfileID    int64               `json:"qualityProfileId"`
	MinimumAvailability MinimumAvailability `json:"minimumAvailability"`
	Certification       string              `json:"certification,omitempty"`
	Tags                []int64             `json:"tags"`
	Ratings             Ratings             `json:"ratings"`
	MovieFile           *MovieFile          `json:"movieFile,omitempty"`
	Collection          *MovieCollectionRef `json:"collection,omitempty"`
}

type CollectionMovie struct {
	Title    ScrollText `json:"title"`
	Overview string     `json:"overview"`
	Year     int64      `json:"year"`
	Runtime  int64      `json:"runtime"`
	TmdbID   int64      `json:"tmdbId"`
	Genres   []string   `json:"genres"`
	Ratings  Ratings    `json:"ratings"`
}

type Collection struct {
	ID                  int64               `json:"id"`
	Title               ScrollText          `json:"title"`
	RootFolderPath      string              `json:"rootFolderPath,omitempty"`
	SearchOnAdd         bool                `json:"searchOnAdd"`
	Monitored           bool                `json:"monitored"`
	MinimumAvailability MinimumAvailability `json:"minimumAvailability"`
	Overview            string              `json:"overview,omitempty"`
	QualityProfileID    int64               `json:"qualityProfileId"`
	Movies              []CollectionMovie   `json:"movies,omitempty"`
}

type DownloadRecord struct {
	ID             int64      `json:"id"`
	MovieID        int64      `json:"movieId"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	Size           float64    `json:"size"`
	Sizeleft       float64    `json:"sizeleft"`
	OutputPath     ScrollText `json:"outputPath"`
	Indexer        string     `json:"indexer"`
	DownloadClient string     `json:"downloadClient"`
}

// Progress returns the completed fraction in [0, 1].
func (d DownloadRecord) Progress() float64 {
	if d.Size <= 0 {
		return 0
	}
	return 1 - d.Sizeleft/d.Size
}

type DownloadsResponse struct {
	Records []DownloadRecord `json:"records"`
}

type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type RootFolder struct {
	ID              int64            `json:"id"`
	Path            string           `json:"path"`
	Accessible      bool             `json:"accessible"`
	FreeSpace       int64            `json:"freeSpace"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

type IndexerField struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value,omitempty"`
}

type Indexer struct {
	ID                      int64          `json:"id"`
	Name                    string         `json:"name"`
	Implementation          string         `json:"implementation"`
	ImplementationName      string         `json:"implementationName"`
	ConfigContract          string         `json:"configContract"`
	Protocol                string         `json:"protocol"`
	SupportsRss             bool           `json:"supportsRss"`
	SupportsSearch          bool           `json:"supportsSearch"`
	EnableRss               bool           `json:"enableRss"`
	EnableAutomaticSearch   bool           `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool           `json:"enableInteractiveSearch"`
	Priority                int64          `json:"priority"`
	Tags                    []int64        `json:"tags"`
	Fields                  []IndexerField `json:"fields,omitempty"`
}

// Field returns the value of the named indexer field.
func (i Indexer) Field(name string) (interface{}, bool) {
	for _, f := range i.Fields {
		if f.Name == name {
			return f.Value, f.Value != nil
		}
	}
	return nil, false
}

type IndexerSettings struct {
	ID                       int64  `json:"id"`
	AllowHardcodedSubs       bool   `json:"allowHardcodedSubs"`
	AvailabilityDelay        int64  `json:"availabilityDelay"`
	MaximumSize              int64  `json:"maximumSize"`
	MinimumAge               int64  `json:"minimumAge"`
	PreferIndexerFlags       bool   `json:"preferIndexerFlags"`
	Retention                int64  `json:"retention"`
	RssSyncInterval          int64  `json:"rssSyncInterval"`
	WhitelistedHardcodedSubs string `json:"whitelistedHardcodedSubs"`
}

type ValidationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
	Severity     string `json:"severity"`
}

type IndexerTestResult struct {
	ID                 int64               `json:"id"`
	IsValid            bool                `json:"isValid"`
	ValidationFailures []ValidationFailure `json:"validationFailures"`
}

// IndexerTestRow is one line of the test-all results table.
type IndexerTestRow struct {
	Name             string
	IsValid          bool
	ValidationErrors string
}

type Credit struct {
	PersonName string     `json:"personName"`
	Character  string     `json:"character,omitempty"`
	Department string     `json:"department,omitempty"`
	Job        string     `json:"job,omitempty"`
	Type       CreditType `json:"type"`
}

type CreditType string

const (
	CreditCast CreditType = "cast"
	CreditCrew CreditType = "crew"
)

type Release struct {
	GUID       string     `json:"guid"`
	Protocol   string     `json:"protocol"`
	Age        int64      `json:"age"`
	Title      ScrollText `json:"title"`
	Indexer    string     `json:"indexer"`
	IndexerID  int64      `json:"indexerId"`
	Size       int64      `json:"size"`
	Rejected   bool       `json:"rejected"`
	Rejections []string   `json:"rejections,omitempty"`
	Seeders    *int64     `json:"seeders,omitempty"`
	Leechers   *int64     `json:"leechers,omitempty"`
	Languages  []Language `json:"languages,omitempty"`
	Quality    Quality    `json:"quality"`
}

// Peers formats seeders/leechers for torrent releases.
func (r Release) Peers() string {
	if r.Seeders == nil || r.Leechers == nil {
		return ""
	}
	return fmt.Sprintf("%d / %d", *r.Seeders, *r.Leechers)
}

type MovieHistoryItem struct {
	SourceTitle ScrollText `json:"sourceTitle"`
	Quality     Quality    `json:"quality"`
	Languages   []Language `json:"languages"`
	Date        time.Time  `json:"date"`
	EventType   string     `json:"eventType"`
}

type BlocklistMovie struct {
	Title ScrollText `json:"title"`
}

type BlocklistItem struct {
	ID          int64          `json:"id"`
	MovieID     int64          `json:"movieId"`
	SourceTitle string         `json:"sourceTitle"`
	Languages   []Language     `json:"languages"`
	Quality     Quality        `json:"quality"`
	Date        time.Time      `json:"date"`
	Protocol    string         `json:"protocol"`
	Indexer     string         `json:"indexer"`
	Message     string         `json:"message"`
	Movie       BlocklistMovie `json:"movie"`
}

type BlocklistResponse struct {
	Records []BlocklistItem `json:"records"`
}

type Task struct {
	Name          string    `json:"name"`
	TaskName      string    `json:"taskName"`
	Interval      int64     `json:"interval"`
	LastExecution time.Time `json:"lastExecution"`
	LastDuration  string    `json:"lastDuration"`
	NextExecution time.Time `json:"nextExecution"`
}

type QueueEvent struct {
	Trigger     string     `json:"trigger"`
	Name        string     `json:"name"`
	CommandName string     `json:"commandName"`
	Status      string     `json:"status"`
	Queued      time.Time  `json:"queued"`
	Started     *time.Time `json:"started,omitempty"`
	Ended       *time.Time `json:"ended,omitempty"`
	Duration    string     `json:"duration,omitempty"`
}

type LogLine struct {
	Time          time.Time `json:"time"`
	Level         string    `json:"level"`
	Logger        string    `json:"logger"`
	Message       string    `json:"message,omitempty"`
	Exception     string    `json:"exception,omitempty"`
	ExceptionType string    `json:"exceptionType,omitempty"`
}

// Format renders the log line as timestamp|level|logger|message.
func (l LogLine) Format() string {
	msg := l.Message
	if msg == "" {
		msg = strings.TrimSpace(l.ExceptionType + " " + l.Exception)
	}
	return fmt.Sprintf("%s|%s|%s|%s",
		l.Time.UTC().Format(time.RFC3339),
		strings.ToUpper(l.Level),
		l.Logger,
		msg,
	)
}

type LogResponse struct {
	Records []LogLine `json:"records"`
}

type UpdateChanges struct {
	New   []string `json:"new,omitempty"`
	Fixed []string `json:"fixed,omitempty"`
}

type Update struct {
	Version     string        `json:"version"`
	ReleaseDate time.Time     `json:"releaseDate"`
	Installed   bool          `json:"installed"`
	Latest      bool          `json:"latest"`
	Changes     UpdateChanges `json:"changes"`
}

type DiskSpace struct {
	Path       string `json:"path,omitempty"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

type SystemStatus struct {
	Version   string    `json:"version"`
	StartTime time.Time `json:"startTime"`
}

type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type AddMovieSearchResult struct {
	TmdbID           int64      `json:"tmdbId"`
	Title            ScrollText `json:"title"`
	OriginalLanguage Language   `json:"originalLanguage"`
	Status           string     `json:"status"`
	Overview         string     `json:"overview"`
	Genres           []string   `json:"genres"`
	Year             int64      `json:"year"`
	Runtime          int64      `json:"runtime"`
	Ratings          Ratings    `json:"ratings"`
}

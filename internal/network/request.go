package network

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// ErrEmptyQuery is returned when a movie lookup has no search term.
var ErrEmptyQuery = errors.New("search term is empty")

// Request is one REST call, built from a snapshot of the view state.
type Request struct {
	Event  radarr.Event
	Method string
	Path   string
	Query  url.Values
	Body   interface{}

	// Fetch, when set, is read first; Patch and FieldPatch are merged into
	// the fetched document, which becomes the body.
	Fetch      string
	Patch      map[string]interface{}
	FieldPatch map[string]interface{}

	// AllowBadRequest treats 400 as a decodable answer (indexer tests).
	AllowBadRequest bool
}

// Result is the outcome of one executed Request.
type Result struct {
	Event radarr.Event
	Value interface{}
	Err   error
}

type command struct {
	Name     string  `json:"name"`
	MovieIDs []int64 `json:"movieIds,omitempty"`
}

type addOptions struct {
	Monitor        radarr.Monitor `json:"monitor"`
	SearchForMovie bool           `json:"searchForMovie"`
}

type addMovieBody struct {
	TmdbID              int64                      `json:"tmdbId"`
	Title               string                     `json:"title"`
	Year                int64                      `json:"year,omitempty"`
	RootFolderPath      string                     `json:"rootFolderPath"`
	QualityProfileID    int64                      `json:"qualityProfileId"`
	MinimumAvailability radarr.MinimumAvailability `json:"minimumAvailability"`
	Monitored           bool                       `json:"monitored"`
	Tags                []int64                    `json:"tags"`
	AddOptions          addOptions                 `json:"addOptions"`
}

type releaseDownloadBody struct {
	GUID      string `json:"guid"`
	IndexerID int64  `json:"indexerId"`
	MovieID   int64  `json:"movieId"`
}

func get(evt radarr.Event, path string) Request {
	return Request{Event: evt, Method: http.MethodGet, Path: path}
}

func getWithQuery(evt radarr.Event, path string, kv ...string) Request {
	req := get(evt, path)
	req.Query = url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		req.Query.Set(kv[i], kv[i+1])
	}
	return req
}

func post(evt radarr.Event, path string, body interface{}) Request {
	return Request{Event: evt, Method: http.MethodPost, Path: path, Body: body}
}

func del(evt radarr.Event, path string, id int64) Request {
	return Request{Event: evt, Method: http.MethodDelete, Path: fmt.Sprintf("%s/%d", path, id)}
}

func runCommand(evt radarr.Event, name string, movieIDs ...int64) Request {
	return post(evt, "/command", command{Name: name, MovieIDs: movieIDs})
}

// BuildRequest turns evt into a request by reading the current selection and
// form state. It must run on the goroutine that owns app.
func BuildRequest(app *state.App, evt radarr.Event) (Request, error) {
	data := app.Data
	switch evt {
	case radarr.GetBlocklist:
		return getWithQuery(evt, "/blocklist", "page", "1", "pageSize", "10000"), nil
	case radarr.GetCollections:
		return get(evt, "/collection"), nil
	case radarr.GetDownloads:
		return getWithQuery(evt, "/queue", "page", "1", "pageSize", "1000"), nil
	case radarr.GetIndexers:
		return get(evt, "/indexer"), nil
	case radarr.GetAllIndexerSettings:
		return get(evt, "/config/indexer"), nil
	case radarr.GetLogs:
		return getWithQuery(evt, "/log",
			"page", "1",
			"pageSize", "500",
			"sortKey", "time",
			"sortDirection", "descending",
		), nil
	case radarr.GetMovies:
		return get(evt, "/movie"), nil
	case radarr.GetOverview:
		return get(evt, "/diskspace"), nil
	case radarr.GetQualityProfiles:
		return get(evt, "/qualityprofile"), nil
	case radarr.GetQueuedEvents:
		return get(evt, "/command"), nil
	case radarr.GetRootFolders:
		return get(evt, "/rootfolder"), nil
	case radarr.GetStatus:
		return get(evt, "/system/status"), nil
	case radarr.GetTags:
		return get(evt, "/tag"), nil
	case radarr.GetTasks:
		return get(evt, "/system/task"), nil
	case radarr.GetUpdates:
		return get(evt, "/update"), nil
	case radarr.HealthCheck:
		return get(evt, "/health"), nil
	case radarr.TestAllIndexersEvent:
		req := post(evt, "/indexer/testall", nil)
		req.AllowBadRequest = true
		return req, nil
	case radarr.UpdateAllMovies:
		return runCommand(evt, "RefreshMovie"), nil
	case radarr.UpdateCollections:
		return runCommand(evt, "RefreshCollections"), nil
	case radarr.UpdateDownloads:
		return runCommand(evt, "RefreshMonitoredDownloads"), nil

	case radarr.SearchNewMovie:
		term := strings.TrimSpace(data.AddMovieSearch.Text())
		if term == "" {
			return Request{}, ErrEmptyQuery
		}
		return getWithQuery(evt, "/movie/lookup", "term", term), nil

	case radarr.GetMovieDetails, radarr.GetMovieHistory, radarr.GetMovieCredits, radarr.GetReleases,
		radarr.TriggerAutomaticSearch, radarr.UpdateAndScan:
		movie, ok := data.Movies.Active().Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		id := strconv.FormatInt(movie.ID, 10)
		switch evt {
		case radarr.GetMovieDetails:
			return get(evt, "/movie/"+id), nil
		case radarr.GetMovieHistory:
			return getWithQuery(evt, "/history/movie", "movieId", id), nil
		case radarr.GetMovieCredits:
			return getWithQuery(evt, "/credit", "movieId", id), nil
		case radarr.GetReleases:
			return getWithQuery(evt, "/release", "movieId", id), nil
		case radarr.TriggerAutomaticSearch:
			return runCommand(evt, "MoviesSearch", movie.ID), nil
		default:
			return runCommand(evt, "RefreshMovie", movie.ID), nil
		}

	case radarr.DeleteMovie:
		movie, ok := data.Movies.Active().Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		req := del(evt, "/movie", movie.ID)
		req.Query = url.Values{}
		req.Query.Set("deleteFiles", strconv.FormatBool(data.DeleteMovieFiles))
		req.Query.Set("addImportExclusion", strconv.FormatBool(data.AddListExclusion))
		return req, nil
	case radarr.DeleteBlocklistItem:
		item, ok := data.Blocklist.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return del(evt, "/blocklist", item.ID), nil
	case radarr.DeleteDownload:
		item, ok := data.Downloads.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return del(evt, "/queue", item.ID), nil
	case radarr.DeleteIndexer:
		item, ok := data.Indexers.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return del(evt, "/indexer", item.ID), nil
	case radarr.DeleteRootFolder:
		item, ok := data.RootFolders.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return del(evt, "/rootfolder", item.ID), nil
	case radarr.ClearBlocklist:
		items := data.Blocklist.Items()
		if len(items) == 0 {
			return Request{}, ErrNoSelection
		}
		ids := make([]int64, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		req := Request{Event: evt, Method: http.MethodDelete, Path: "/blocklist/bulk"}
		req.Body = map[string][]int64{"ids": ids}
		return req, nil

	case radarr.AddRootFolder:
		if data.EditRootFolder == nil {
			return Request{}, ErrNoModal
		}
		path := strings.TrimSpace(data.EditRootFolder.Text())
		if path == "" {
			return Request{}, ErrEmptyQuery
		}
		return post(evt, "/rootfolder", map[string]string{"path": path}), nil
	case radarr.AddMovie:
		body, err := buildAddMovie(data)
		if err != nil {
			return Request{}, err
		}
		return post(evt, "/movie", body), nil
	case radarr.DownloadRelease:
		movie, ok := data.Movies.Active().Current()
		if !ok || data.MovieDetailsModal == nil {
			return Request{}, ErrNoSelection
		}
		release, ok := data.MovieDetailsModal.MovieReleases.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return post(evt, "/release", releaseDownloadBody{
			GUID:      release.GUID,
			IndexerID: release.IndexerID,
			MovieID:   movie.ID,
		}), nil
	case radarr.StartTask:
		task, ok := data.Tasks.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		return runCommand(evt, task.TaskName), nil
	case radarr.TestIndexerEvent:
		indexer, ok := data.Indexers.Current()
		if !ok {
			return Request{}, ErrNoSelection
		}
		req := post(evt, "/indexer/test", nil)
		req.Fetch = fmt.Sprintf("/indexer/%d", indexer.ID)
		req.AllowBadRequest = true
		return req, nil

	case radarr.EditMovie:
		return buildEditMovie(data)
	case radarr.EditCollection:
		return buildEditCollection(data)
	case radarr.EditIndexer:
		return buildEditIndexer(data)
	case radarr.EditAllIndexerSettings:
		if data.IndexerSettings == nil {
			return Request{}, ErrNoModal
		}
		settings, err := data.IndexerSettings.Settings()
		if err != nil {
			return Request{}, err
		}
		return Request{Event: evt, Method: http.MethodPut, Path: "/config/indexer", Body: settings}, nil
	}
	return Request{}, fmt.Errorf("%w: %s", ErrUnknownEvent, evt)
}

type formChoices struct {
	availability     radarr.MinimumAvailability
	qualityProfileID int64
	tags             []int64
}

func readFormChoices(data *radarr.Data) (formChoices, error) {
	var out formChoices
	availability, ok := data.MinimumAvailabilityList.Current()
	if !ok {
		return out, ErrNoModal
	}
	profile, ok := data.QualityProfileList.Current()
	if !ok {
		return out, ErrNoModal
	}
	id, ok := data.QualityProfiles.ID(profile)
	if !ok {
		return out, fmt.Errorf("unknown quality profile %q", profile)
	}
	tags, unknown := data.Tags.SplitIDs(data.EditTags.Text())
	if len(unknown) > 0 {
		return out, fmt.Errorf("unknown tags: %s", strings.Join(unknown, ", "))
	}
	if tags == nil {
		tags = []int64{}
	}
	out.availability, out.qualityProfileID, out.tags = availability, id, tags
	return out, nil
}

func buildAddMovie(data *radarr.Data) (addMovieBody, error) {
	var body addMovieBody
	switch data.AddMovieSource {
	case radarr.CollectionDetails:
		movie, ok := data.CollectionMovies.Current()
		if !ok {
			return body, ErrNoSelection
		}
		body.TmdbID, body.Title, body.Year = movie.TmdbID, movie.Title.Text(), movie.Year
	default:
		if data.AddSearchedMovies == nil {
			return body, ErrNoSelection
		}
		movie, ok := data.AddSearchedMovies.Current()
		if !ok {
			return body, ErrNoSelection
		}
		body.TmdbID, body.Title, body.Year = movie.TmdbID, movie.Title.Text(), movie.Year
	}

	folder, ok := data.RootFolderList.Current()
	if !ok {
		return body, ErrNoModal
	}
	monitor, ok := data.MonitorList.Current()
	if !ok {
		return body, ErrNoModal
	}
	choices, err := readFormChoices(data)
	if err != nil {
		return body, err
	}
	body.RootFolderPath = folder.Path
	body.QualityProfileID = choices.qualityProfileID
	body.MinimumAvailability = choices.availability
	body.Monitored = monitor != radarr.MonitorNone
	body.Tags = choices.tags
	body.AddOptions = addOptions{Monitor: monitor, SearchForMovie: true}
	return body, nil
}

func buildEditMovie(data *radarr.Data) (Request, error) {
	movie, ok := data.Movies.Active().Current()
	if !ok {
		return Request{}, ErrNoSelection
	}
	if data.EditMonitored == nil {
		return Request{}, ErrNoModal
	}
	choices, err := readFormChoices(data)
	if err != nil {
		return Request{}, err
	}
	path := fmt.Sprintf("/movie/%d", movie.ID)
	req := Request{
		Event:  radarr.EditMovie,
		Method: http.MethodPut,
		Path:   path,
		Query:  url.Values{"moveFiles": []string{"true"}},
		Fetch:  path,
		Patch: map[string]interface{}{
			"monitored":           *data.EditMonitored,
			"minimumAvailability": choices.availability,
			"qualityProfileId":    choices.qualityProfileID,
			"path":                strings.TrimSpace(data.EditPath.Text()),
			"tags":                choices.tags,
		},
	}
	return req, nil
}

func buildEditCollection(data *radarr.Data) (Request, error) {
	collection, ok := data.Collections.Active().Current()
	if !ok {
		return Request{}, ErrNoSelection
	}
	if data.EditMonitored == nil || data.EditSearchOnAdd == nil {
		return Request{}, ErrNoModal
	}
	availability, ok := data.MinimumAvailabilityList.Current()
	if !ok {
		return Request{}, ErrNoModal
	}
	profile, _ := data.QualityProfileList.Current()
	profileID, ok := data.QualityProfiles.ID(profile)
	if !ok {
		return Request{}, fmt.Errorf("unknown quality profile %q", profile)
	}
	path := fmt.Sprintf("/collection/%d", collection.ID)
	return Request{
		Event:  radarr.EditCollection,
		Method: http.MethodPut,
		Path:   path,
		Fetch:  path,
		Patch: map[string]interface{}{
			"monitored":           *data.EditMonitored,
			"searchOnAdd":         *data.EditSearchOnAdd,
			"minimumAvailability": availability,
			"qualityProfileId":    profileID,
			"rootFolderPath":      strings.TrimSpace(data.EditPath.Text()),
		},
	}, nil
}

func buildEditIndexer(data *radarr.Data) (Request, error) {
	indexer, ok := data.Indexers.Current()
	if !ok {
		return Request{}, ErrNoSelection
	}
	modal := data.EditIndexerModal
	if modal == nil {
		return Request{}, ErrNoModal
	}
	priority, err := strconv.ParseInt(strings.TrimSpace(modal.Priority.Text()), 10, 64)
	if err != nil {
		return Request{}, fmt.Errorf("priority: %w", err)
	}
	tags, unknown := data.Tags.SplitIDs(modal.Tags.Text())
	if len(unknown) > 0 {
		return Request{}, fmt.Errorf("unknown tags: %s", strings.Join(unknown, ", "))
	}
	if tags == nil {
		tags = []int64{}
	}

	fields := map[string]interface{}{
		"baseUrl": strings.TrimSpace(modal.URL.Text()),
		"apiKey":  strings.TrimSpace(modal.APIKey.Text()),
	}
	if ratio := strings.TrimSpace(modal.SeedRatio.Text()); ratio != "" {
		v, err := strconv.ParseFloat(ratio, 64)
		if err != nil {
			return Request{}, fmt.Errorf("seed ratio: %w", err)
		}
		fields["seedCriteria.seedRatio"] = v
	}

	path := fmt.Sprintf("/indexer/%d", indexer.ID)
	return Request{
		Event:  radarr.EditIndexer,
		Method: http.MethodPut,
		Path:   path,
		Fetch:  path,
		Patch: map[string]interface{}{
			"name":                    strings.TrimSpace(modal.Name.Text()),
			"enableRss":               modal.EnableRss,
			"enableAutomaticSearch":   modal.EnableAutomaticSearch,
			"enableInteractiveSearch": modal.EnableInteractiveSearch,
			"priority":                priority,
			"tags":                    tags,
		},
		FieldPatch: fields,
	}, nil
}

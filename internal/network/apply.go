package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

const gib = 1024 * 1024 * 1024

// Apply writes res into the view state. It runs on the goroutine that owns
// app and always clears the loading flag.
func Apply(app *state.App, res Result) {
	app.IsLoading = false
	if res.Err != nil {
		app.HandleError(fmt.Errorf("%s: %w", res.Event, res.Err))
		return
	}
	data := app.Data

	switch v := res.Value.(type) {
	case []radarr.Movie:
		data.Movies.SetItems(v)
	case radarr.Movie:
		applyMovieDetails(data, v)
	case radarr.DownloadsResponse:
		data.Downloads.SetItems(v.Records)
	case radarr.BlocklistResponse:
		data.Blocklist.SetItems(v.Records)
	case []radarr.Collection:
		data.Collections.SetItems(v)
	case []radarr.RootFolder:
		data.RootFolders.SetItems(v)
	case []radarr.QualityProfile:
		names := make(map[int64]string, len(v))
		for _, p := range v {
			names[p.ID] = p.Name
		}
		data.QualityProfiles = radarr.NewNameMap(names)
	case []radarr.Tag:
		names := make(map[int64]string, len(v))
		for _, t := range v {
			names[t.ID] = t.Label
		}
		data.Tags = radarr.NewNameMap(names)
	case []radarr.DiskSpace:
		data.DiskSpace = v
	case radarr.SystemStatus:
		data.Version = v.Version
		data.StartTime = v.StartTime
	case []radarr.Indexer:
		data.Indexers.SetItems(v)
	case radarr.IndexerSettings:
		if data.IndexerSettings == nil {
			data.IndexerSettings = radarr.NewIndexerSettingsModal(v)
		}
	case []radarr.Task:
		data.Tasks.SetItems(v)
	case []radarr.QueueEvent:
		data.QueuedEvents.SetItems(v)
	case radarr.LogResponse:
		applyLogs(data, v.Records)
	case []radarr.Update:
		data.Updates = uistate.NewScrollableText(formatUpdates(v))
	case []radarr.AddMovieSearchResult:
		applySearchResults(app, v)
	case []radarr.MovieHistoryItem:
		history := append([]radarr.MovieHistoryItem(nil), v...)
		sort.SliceStable(history, func(i, j int) bool { return history[i].Date.After(history[j].Date) })
		movieDetailsModal(data).MovieHistory.SetItems(history)
	case []radarr.Credit:
		var cast, crew []radarr.Credit
		for _, c := range v {
			if c.Type == radarr.CreditCrew {
				crew = append(crew, c)
				continue
			}
			cast = append(cast, c)
		}
		modal := movieDetailsModal(data)
		modal.MovieCast.SetItems(cast)
		modal.MovieCrew.SetItems(crew)
	case []radarr.Release:
		movieDetailsModal(data).MovieReleases.SetItems(v)
	case []radarr.ValidationFailure:
		msg := joinFailures(v)
		data.IndexerTestErrors = &msg
	case []radarr.IndexerTestResult:
		applyIndexerTests(data, v)
	}

	if res.Event.Mutates() {
		app.ShouldRefresh = true
	}
	switch res.Event {
	case radarr.DeleteMovie:
		data.ResetDeleteMoviePreferences()
	case radarr.AddRootFolder:
		data.EditRootFolder = nil
	}
}

func movieDetailsModal(data *radarr.Data) *radarr.MovieDetailsModal {
	if data.MovieDetailsModal == nil {
		data.MovieDetailsModal = radarr.NewMovieDetailsModal()
	}
	return data.MovieDetailsModal
}

func applySearchResults(app *state.App, results []radarr.AddMovieSearchResult) {
	table := uistate.NewTable(results)
	app.Data.AddSearchedMovies = &table
	if len(results) == 0 && app.ActiveBlock() == radarr.AddMovieSearchResults {
		app.PopAndPush(radarr.NewRoute(radarr.AddMovieEmptySearchResults))
	}
}

func applyLogs(data *radarr.Data, records []radarr.LogLine) {
	lines := append([]radarr.LogLine(nil), records...)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Time.After(lines[j].Time) })
	out := make([]radarr.ScrollText, len(lines))
	for i, l := range lines {
		out[i] = uistate.NewHorizontallyScrollableText(l.Format())
	}
	data.Logs.SetItems(out)
}

func applyIndexerTests(data *radarr.Data, results []radarr.IndexerTestResult) {
	rows := make([]radarr.IndexerTestRow, 0, len(results))
	for _, r := range results {
		name := fmt.Sprintf("Indexer %d", r.ID)
		if idx := data.Indexers.IndexFunc(func(i radarr.Indexer) bool { return i.ID == r.ID }); idx >= 0 {
			name = data.Indexers.At(idx).Name
		}
		rows = append(rows, radarr.IndexerTestRow{
			Name:             name,
			IsValid:          r.IsValid,
			ValidationErrors: joinFailures(r.ValidationFailures),
		})
	}
	table := uistate.NewTable(rows)
	data.IndexerTestAllResults = &table
}

func joinFailures(failures []radarr.ValidationFailure) string {
	msgs := make([]string, 0, len(failures))
	for _, f := range failures {
		msgs = append(msgs, f.ErrorMessage)
	}
	return strings.Join(msgs, ", ")
}

func applyMovieDetails(data *radarr.Data, movie radarr.Movie) {
	modal := movieDetailsModal(data)
	modal.MovieDetails = uistate.NewScrollableText(movieDetailsText(data, movie))
	modal.FileDetails, modal.AudioDetails, modal.VideoDetails = "", "", ""

	file := movie.MovieFile
	if file == nil {
		return
	}
	modal.FileDetails = strings.Join([]string{
		"Relative Path: " + file.RelativePath,
		"Absolute Path: " + file.Path,
		fmt.Sprintf("Size: %.2f GB", float64(movie.SizeOnDisk)/gib),
		"Date Added: " + file.DateAdded.UTC().Format("2006-01-02 15:04:05 UTC"),
	}, "\n")
	if info := file.MediaInfo; info != nil {
		modal.AudioDetails = strings.Join([]string{
			fmt.Sprintf("Bitrate: %d", info.AudioBitrate),
			fmt.Sprintf("Channels: %.1f", info.AudioChannels),
			"Codec: " + info.AudioCodec,
			"Languages: " + info.AudioLanguages,
			fmt.Sprintf("Stream Count: %d", info.AudioStreamCount),
		}, "\n")
		modal.VideoDetails = strings.Join([]string{
			fmt.Sprintf("Bit Depth: %d", info.VideoBitDepth),
			fmt.Sprintf("Bitrate: %d", info.VideoBitrate),
			"Codec: " + info.VideoCodec,
			fmt.Sprintf("FPS: %.3f", info.VideoFps),
			"Resolution: " + info.Resolution,
			"Scan Type: " + info.ScanType,
			"Runtime: " + info.RunTime,
			"Subtitles: " + info.Subtitles,
		}, "\n")
	}
}

func movieDetailsText(data *radarr.Data, movie radarr.Movie) string {
	profile, _ := data.QualityProfiles.Name(movie.QualityProfileID)
	status := "Missing"
	if movie.HasFile {
		status = "Downloaded"
	}
	collection := ""
	if movie.Collection != nil {
		collection = movie.Collection.Title
	}
	lines := []string{
		"Title: " + movie.Title.Text(),
		fmt.Sprintf("Year: %d", movie.Year),
		"Runtime: " + FormatRuntime(movie.Runtime),
		"Rating: " + movie.Certification,
		"Collection: " + collection,
		"Status: " + status,
		"Description: " + movie.Overview,
		"TMDB: " + formatRating(movie.Ratings.Tmdb, "%.0f%%", 10),
		"IMDB: " + formatRating(movie.Ratings.Imdb, "%.1f", 1),
		"Rotten Tomatoes: " + formatRating(movie.Ratings.RottenTomatoes, "%.0f%%", 1),
		"Quality Profile: " + profile,
		fmt.Sprintf("Size: %.2f GB", float64(movie.SizeOnDisk)/gib),
		"Path: " + movie.Path,
		"Studio: " + movie.Studio,
		"Genres: " + strings.Join(movie.Genres, ", "),
		"Tags: " + data.Tags.JoinNames(movie.Tags),
	}
	return strings.Join(lines, "\n")
}

func formatRating(r *radarr.Rating, format string, scale float64) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf(format, r.Value*scale)
}

// FormatRuntime renders minutes as "1h 57m".
func FormatRuntime(minutes int64) string {
	if minutes <= 0 {
		return "0h 0m"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func formatUpdates(updates []radarr.Update) string {
	var b strings.Builder
	for i, u := range updates {
		if i > 0 {
			b.WriteString("\n")
		}
		label := ""
		switch {
		case u.Installed:
			label = " (Installed)"
		case u.Latest:
			label = " (Latest)"
		}
		fmt.Fprintf(&b, "%s - %s%s\n", u.Version, u.ReleaseDate.UTC().Format("2006-01-02"), label)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		writeChanges(&b, "New", u.Changes.New)
		writeChanges(&b, "Fixed", u.Changes.Fixed)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeChanges(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(title + ":\n")
	for _, item := range items {
		b.WriteString("  * " + item + "\n")
	}
}

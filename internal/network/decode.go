package network

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/radarr"
)

type decoder func([]byte) (interface{}, error)

var decoders = map[radarr.Event]decoder{
	radarr.GetBlocklist:          decodeAs[radarr.BlocklistResponse],
	radarr.GetCollections:        decodeAs[[]radarr.Collection],
	radarr.GetDownloads:          decodeAs[radarr.DownloadsResponse],
	radarr.GetIndexers:           decodeAs[[]radarr.Indexer],
	radarr.GetAllIndexerSettings: decodeAs[radarr.IndexerSettings],
	radarr.GetLogs:               decodeAs[radarr.LogResponse],
	radarr.GetMovies:             decodeAs[[]radarr.Movie],
	radarr.GetMovieDetails:       decodeAs[radarr.Movie],
	radarr.GetMovieHistory:       decodeAs[[]radarr.MovieHistoryItem],
	radarr.GetMovieCredits:       decodeAs[[]radarr.Credit],
	radarr.GetOverview:           decodeAs[[]radarr.DiskSpace],
	radarr.GetQualityProfiles:    decodeAs[[]radarr.QualityProfile],
	radarr.GetQueuedEvents:       decodeAs[[]radarr.QueueEvent],
	radarr.GetReleases:           decodeAs[[]radarr.Release],
	radarr.GetRootFolders:        decodeAs[[]radarr.RootFolder],
	radarr.GetStatus:             decodeAs[radarr.SystemStatus],
	radarr.GetTags:               decodeAs[[]radarr.Tag],
	radarr.GetTasks:              decodeAs[[]radarr.Task],
	radarr.GetUpdates:            decodeAs[[]radarr.Update],
	radarr.SearchNewMovie:        decodeAs[[]radarr.AddMovieSearchResult],
	radarr.TestAllIndexersEvent:  decodeAs[[]radarr.IndexerTestResult],
	radarr.TestIndexerEvent:      decodeValidationFailures,
}

// decode parses raw into the value type of evt. Events without a decoder
// (most commands) yield a nil value.
func decode(evt radarr.Event, raw []byte) (interface{}, error) {
	d, ok := decoders[evt]
	if !ok {
		return nil, nil
	}
	return d(raw)
}

func decodeAs[T any](raw []byte) (interface{}, error) {
	var v T
	if len(bytes.TrimSpace(raw)) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return v, nil
}

// decodeValidationFailures reads an indexer test answer: an array of
// failures on 400, anything else on success.
func decodeValidationFailures(raw []byte) (interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []radarr.ValidationFailure{}, nil
	}
	var failures []radarr.ValidationFailure
	if err := json.Unmarshal(raw, &failures); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return failures, nil
}

package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Search(block, query string, index int, matched bool) {
	logging.Trace("search.search", map[string]interface{}{
		"block":   block,
		"query":   query,
		"index":   index,
		"matched": matched,
	})
}

func (SearchTracer) Filter(block, query string, count int, cancelled bool) {
	logging.Trace("search.filter", map[string]interface{}{
		"block":     block,
		"query":     query,
		"count":     count,
		"cancelled": cancelled,
	})
}

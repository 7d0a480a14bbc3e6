package events

import (
	"time"

	"github.com/atomicstack/servarr-tui/internal/logging"
)

type NetworkTracer struct{}

var Network = NetworkTracer{}

func (NetworkTracer) Request(event, method, path string) {
	logging.Trace("network.request", map[string]interface{}{
		"event":  event,
		"method": method,
		"path":   path,
	})
}

func (NetworkTracer) Response(event string, status int, elapsed time.Duration) {
	logging.Trace("network.response", map[string]interface{}{
		"event":      event,
		"status":     status,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}

func (NetworkTracer) Error(event string, err error) {
	if err == nil {
		return
	}
	logging.Trace("network.error", map[string]interface{}{"event": event, "error": err.Error()})
}

func (NetworkTracer) Applied(event string, elapsed time.Duration, err error) {
	payload := map[string]interface{}{
		"event":      event,
		"elapsed_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("network.applied", payload)
}

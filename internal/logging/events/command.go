package events

import "github.com/atomicstack/servarr-tui/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Flush(events []string) {
	if len(events) == 0 {
		return
	}
	logging.Trace("command.flush", map[string]interface{}{"events": events})
}

func (CommandTracer) Dropped(event string, err error) {
	payload := map[string]interface{}{"event": event}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.dropped", payload)
}

package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
)

// ErrQueueFull is recorded when the worker refuses a request.
var ErrQueueFull = errors.New("request queue is full")

// Submitter accepts built requests without blocking. *backend.Worker
// satisfies it.
type Submitter interface {
	Submit(req network.Request) bool
}

// Queue collects the events issued during one Update and turns them into
// requests when flushed. It is owned by the UI loop.
type Queue struct {
	pending []radarr.Event
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Dispatch queues evt. It implements dispatcher.Sink.
func (q *Queue) Dispatch(evt radarr.Event) {
	q.pending = append(q.pending, evt)
}

// Pending returns a copy of the queued events.
func (q *Queue) Pending() []radarr.Event {
	out := make([]radarr.Event, len(q.pending))
	copy(out, q.pending)
	return out
}

// Len reports how many events are queued.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Flush builds a request for every queued event from the current state and
// hands it to sink. Repeated fetches collapse into one. An event whose
// request cannot be built is reported through app.HandleError and dropped.
// The submitted events are returned in issue order.
func (q *Queue) Flush(app *state.App, sink Submitter) []radarr.Event {
	queued := q.pending
	q.pending = nil
	if len(queued) == 0 {
		return nil
	}

	seen := make(map[radarr.Event]struct{}, len(queued))
	submitted := make([]radarr.Event, 0, len(queued))
	for _, evt := range queued {
		if !evt.Mutates() {
			if _, dup := seen[evt]; dup {
				continue
			}
			seen[evt] = struct{}{}
		}
		req, err := network.BuildRequest(app, evt)
		if err != nil {
			events.Command.Dropped(evt.String(), err)
			app.HandleError(fmt.Errorf("%s: %w", evt, err))
			continue
		}
		if sink == nil || !sink.Submit(req) {
			events.Command.Dropped(evt.String(), ErrQueueFull)
			continue
		}
		submitted = append(submitted, evt)
	}

	names := make([]string, len(submitted))
	for i, evt := range submitted {
		names[i] = evt.String()
	}
	events.Command.Flush(names)
	if len(submitted) == 0 {
		app.IsLoading = false
	}
	return submitted
}

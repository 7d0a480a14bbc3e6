package events

import (
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/logging"
)

type DispatchTracer struct{}

var Dispatch = DispatchTracer{}

func (DispatchTracer) Block(block fmt.Stringer, issued []string) {
	logging.Trace("dispatch.block", map[string]interface{}{"block": block.String(), "events": issued})
}

func (DispatchTracer) Confirmed(action fmt.Stringer) {
	logging.Trace("dispatch.confirm", map[string]interface{}{"action": action.String()})
}

// Tick records which polling branch a tick took.
func (DispatchTracer) Tick(branch string, tick int) {
	logging.Trace("dispatch.tick", map[string]interface{}{"branch": branch, "tick": tick})
}

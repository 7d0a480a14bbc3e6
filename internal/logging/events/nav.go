package events

import (
	"fmt"

	"github.com/atomicstack/servarr-tui/internal/logging"
)

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Push(route fmt.Stringer, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"route": route.String(), "depth": depth})
}

func (NavTracer) Pop(route fmt.Stringer, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"route": route.String(), "depth": depth})
}

func (NavTracer) PopAndPush(from, to fmt.Stringer, depth int) {
	logging.Trace("nav.pop_and_push", map[string]interface{}{
		"from":  from.String(),
		"to":    to.String(),
		"depth": depth,
	})
}

package handlers

import "github.com/atomicstack/servarr-tui/internal/radarr"

type systemHandler struct{}

func (systemHandler) Blocks() radarr.BlockSet { return radarr.SystemBlocks }

func (systemHandler) Handle(c *Context) {
	if c.switchTabs() {
		return
	}
	switch {
	case c.matches(Keys.Tasks):
		c.pushOver(radarr.SystemTasks, radarr.System)
	case c.matches(Keys.Queue):
		c.pushOver(radarr.SystemQueuedEvents, radarr.System)
	case c.matches(Keys.Logs):
		c.pushOver(radarr.SystemLogs, radarr.System)
	case c.matches(Keys.Updates):
		c.pushOver(radarr.SystemUpdates, radarr.System)
	}
}

type systemDetailsHandler struct{}

func (systemDetailsHandler) Blocks() radarr.BlockSet { return radarr.SystemDetailsBlocks }

func (systemDetailsHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.SystemTaskStartConfirmPrompt:
		c.prompt(radarr.StartTask)
		return
	case radarr.SystemLogs:
		if c.scroll(&data.Logs) {
			return
		}
		switch c.action {
		case actLeft:
			shiftLogs(data, -1)
			return
		case actRight:
			shiftLogs(data, 1)
			return
		}
	case radarr.SystemTasks:
		if c.scroll(&data.Tasks) {
			return
		}
		if c.action == actSubmit && !data.Tasks.IsEmpty() {
			c.pushOver(radarr.SystemTaskStartConfirmPrompt, radarr.SystemTasks)
			return
		}
	case radarr.SystemQueuedEvents:
		if c.scroll(&data.QueuedEvents) {
			return
		}
	case radarr.SystemUpdates:
		if c.scroll(&data.Updates) {
			return
		}
	}
	if c.action == actEsc {
		c.pop()
	}
}

// shiftLogs scrolls every log line sideways together.
func shiftLogs(data *radarr.Data, delta int) {
	lines := data.Logs.Items()
	for i := range lines {
		lines[i].Shift(delta)
	}
}

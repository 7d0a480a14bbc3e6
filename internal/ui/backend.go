package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/network"
)

func waitForBackendEvent(w Worker) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.worker != nil && !m.headless {
		return waitForBackendEvent(m.worker)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.worker = nil
	m.app.IsLoading = false
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	res := evt.Result
	events.Network.Applied(res.Event.String(), evt.Elapsed, res.Err)
	network.Apply(m.app, res)
}

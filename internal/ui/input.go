package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/logging/events"
)

func (m *Model) updateCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	if m.headless {
		return nil
	}
	return cmd
}

// handleKeyMsg hands the key to the registry and notes caret movement so the
// cursor stops blinking while the user types.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	before, hadInput := m.caret()
	if m.registry.HandleKey(m.app, keyMsg) {
		events.App.Stop("quit")
		return tea.Quit
	}
	if after, hasInput := m.caret(); hasInput && (!hadInput || after != before) {
		m.cursorDirty = true
	}
	return nil
}

func (m *Model) caret() (int, bool) {
	text := m.registry.ActiveInput(m.app)
	if text == nil {
		return 0, false
	}
	return text.Caret(), true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	return nil
}

package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. The
// model runs headless: timers and the backend subscription are never
// scheduled, so ticks and worker results are delivered explicitly.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.headless = true
	}
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Key sends each key in turn. Single runes become rune keys; names such as
// "enter" or "esc" map to their special key.
func (h *Harness) Key(keys ...string) {
	for _, k := range keys {
		h.Send(keyMsg(k))
	}
}

// Tick delivers n UI ticks.
func (h *Harness) Tick(n int) {
	for i := 0; i < n; i++ {
		h.Send(tickMsg(time.Now()))
	}
}

// Await feeds n worker results into the model, failing if they do not arrive
// within timeout.
func (h *Harness) Await(n int, timeout time.Duration) error {
	if h.model == nil || h.model.worker == nil {
		return fmt.Errorf("await: no worker attached")
	}
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case evt, ok := <-h.model.worker.Events():
			if !ok {
				h.Send(backendDoneMsg{})
				return fmt.Errorf("await: worker stopped after %d of %d results", i, n)
			}
			h.Send(backendEventMsg{event: evt})
		case <-deadline:
			return fmt.Errorf("await: timed out after %d of %d results", i, n)
		}
	}
	return nil
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		return
	default:
		h.Send(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+w":    tea.KeyCtrlW,
	"ctrl+r":    tea.KeyCtrlR,
	" ":         tea.KeySpace,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

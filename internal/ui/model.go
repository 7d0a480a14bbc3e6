package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/data/dispatcher"
	"github.com/atomicstack/servarr-tui/internal/handlers"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/state"
	"github.com/atomicstack/servarr-tui/internal/theme"
	"github.com/atomicstack/servarr-tui/internal/ui/command"
)

// DefaultTickRate is the UI tick period when none is configured.
const DefaultTickRate = 250 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Worker executes requests off the UI goroutine. *backend.Worker satisfies it.
type Worker interface {
	Submit(req network.Request) bool
	Events() <-chan backend.Event
}

// Options configures a Model. Zero values select the defaults; a zero width
// or height follows the terminal.
type Options struct {
	Width         int
	Height        int
	TickRate      time.Duration
	TickUntilPoll int
}

// Model implements the Bubble Tea model for the Radarr client.
type Model struct {
	app        *state.App
	registry   *handlers.Registry
	dispatcher *dispatcher.Dispatcher
	queue      *command.Queue
	worker     Worker

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	tickRate    time.Duration

	// headless disables timer and channel commands so a Harness can drive
	// the model step by step.
	headless bool

	// titleWidth is the width of the last drawn title column; the marquee
	// scrolls selected titles that do not fit in it.
	titleWidth int

	spinner     spinner.Model
	help        help.Model
	cursor      cursor.Model
	cursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over worker. worker may be nil, in which case no
// request ever leaves the process.
func NewModel(worker Worker, opts Options) *Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	queue := command.New()
	m := &Model{
		app:        state.NewApp(opts.TickUntilPoll),
		registry:   handlers.Default(),
		dispatcher: dispatcher.New(queue),
		queue:      queue,
		worker:     worker,
		tickRate:   opts.TickRate,
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Loading != nil {
		sp.Style = *styles.Loading
	}
	m.spinner = sp

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Input != nil {
		c.TextStyle = *styles.Input
	}
	c.SetChar(" ")
	m.cursor = c

	m.registerHandlers()
	return m
}

// App exposes the application state.
func (m *Model) App() *state.App {
	return m.app
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.headless {
		return nil
	}
	cmds := []tea.Cmd{m.tickCmd(), m.spinner.Tick}
	if m.worker != nil {
		cmds = append(cmds, waitForBackendEvent(m.worker))
	}
	if cmd := m.cursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate sends the events queued during this update to the worker and
// restarts the caret blink after an edit.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	var sink command.Submitter
	if m.worker != nil {
		sink = m.worker
	}
	m.queue.Flush(m.app, sink)

	if m.cursorDirty {
		m.cursorDirty = false
		m.cursor.Blink = false
		if !m.headless {
			if cmd := m.cursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

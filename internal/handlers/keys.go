package handlers

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the handlers react to. Several screens reuse
// the same key for their own action (s searches the library but opens the
// indexer settings), so the bindings are named by action.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Prompts and inputs
	Submit    key.Binding
	Esc       key.Binding
	Delete    key.Binding
	Backspace key.Binding
	WordBack  key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding

	// Screen actions
	Add        key.Binding
	Edit       key.Binding
	Search     key.Binding
	Filter     key.Binding
	Sort       key.Binding
	Update     key.Binding
	Clear      key.Binding
	Settings   key.Binding
	Test       key.Binding
	TestAll    key.Binding
	AutoSearch key.Binding
	Tasks      key.Binding
	Queue      key.Binding
	Logs       key.Binding
	Updates    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		WordBack: key.NewBinding(
			key.WithKeys("ctrl+w"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),

		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Search:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Update:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Test:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "test")),
		TestAll:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "test all")),
		AutoSearch: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "auto search")),
		Tasks:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tasks")),
		Queue:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "queue")),
		Logs:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logs")),
		Updates:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "updates")),
	}
}

// Keys is the active key map.
var Keys = DefaultKeyMap()

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Esc, k.NextTab, k.Refresh, k.Quit}
}

// FullHelp returns every general binding grouped by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Submit, k.Esc, k.Delete},
		{k.NextTab, k.PrevTab, k.Refresh, k.Quit, k.ForceQuit},
	}
}

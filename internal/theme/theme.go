package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Tab           *lipgloss.Style
	ActiveTab     *lipgloss.Style
	Loading       *lipgloss.Style
	TableHeader   *lipgloss.Style
	Row           *lipgloss.Style
	SelectedRow   *lipgloss.Style
	Downloaded    *lipgloss.Style
	Missing       *lipgloss.Style
	Unmonitored   *lipgloss.Style
	Downloading   *lipgloss.Style
	Error         *lipgloss.Style
	Success       *lipgloss.Style
	Info          *lipgloss.Style
	Help          *lipgloss.Style
	ContextHelp   *lipgloss.Style
	Box           *lipgloss.Style
	BoxTitle      *lipgloss.Style
	Label         *lipgloss.Style
	FocusedLabel  *lipgloss.Style
	Input         *lipgloss.Style
	Button        *lipgloss.Style
	ActiveButton  *lipgloss.Style
	Cursor        *lipgloss.Style
	Placeholder   *lipgloss.Style
	CheckboxOn    string
	CheckboxOff   string
	TabSeparator  string
	ColumnSpacing int
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true).Underline(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Downloaded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Missing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Unmonitored: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Downloading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	ContextHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Box: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	BoxTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 2),
	),
	ActiveButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 2),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CheckboxOn:    "[x]",
	CheckboxOff:   "[ ]",
	TabSeparator:  " │ ",
	ColumnSpacing: 2,
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style when it is set.
func Render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// Checkbox renders a boolean field.
func (s *Styles) Checkbox(on bool) string {
	if on {
		return s.CheckboxOn
	}
	return s.CheckboxOff
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

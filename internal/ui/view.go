package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/servarr-tui/internal/handlers"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	ellipsis      = "…"
	resetStyle    = "\x1b[0m"
	errorPrefix   = "Error: "
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI escapes
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()

	top := m.headerLines()
	if m.app.HasError() {
		top = append(top, styledLine{text: errorPrefix + m.app.Error.MarqueeView(), style: styles.Error})
	}
	footer := m.footerLines(width)

	bodyHeight := height - len(top) - len(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := m.renderBody(width, bodyHeight)

	out := make([]string, 0, height)
	out = append(out, renderLines(applyWidth(top, width))...)
	out = append(out, body...)
	out = append(out, renderLines(applyWidth(footer, width))...)
	return strings.Join(out, "\n")
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) errorWidth() int {
	width, _ := m.size()
	return width - len(errorPrefix)
}

func (m *Model) headerLines() []styledLine {
	data := m.app.Data
	tabs := data.MainTabs.Tabs()
	active := data.MainTabs.Index()
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		style := styles.Tab
		if i == active {
			style = styles.ActiveTab
		}
		parts[i] = theme.Render(style, tab.Title)
	}
	line := theme.Render(styles.Title, "Radarr") + "  " + strings.Join(parts, styles.TabSeparator)
	if data.Version != "" {
		line += "  " + theme.Render(styles.Help, "v"+data.Version)
	}
	if m.app.IsLoading {
		line += "  " + m.spinner.View() + theme.Render(styles.Loading, " loading")
	}
	return []styledLine{{text: line, raw: true}}
}

func (m *Model) footerLines(width int) []styledLine {
	lines := make([]styledLine, 0, 2)
	if help := m.contextHelp(); help != "" {
		lines = append(lines, styledLine{text: help, style: styles.ContextHelp})
	}
	m.help.Width = width
	lines = append(lines, styledLine{text: m.help.View(handlers.Keys), raw: true})
	return lines
}

// contextHelp describes the keys of the active block.
func (m *Model) contextHelp() string {
	data := m.app.Data
	block := m.app.ActiveBlock()
	switch {
	case data.MainTabs.IndexOf(block) >= 0:
		help, _ := data.MainTabs.ActiveContextualHelp()
		return help
	case data.MovieInfoTabs.IndexOf(block) >= 0:
		help := data.MovieInfoTabs.ActiveHelp()
		if extra, ok := data.MovieInfoTabs.ActiveContextualHelp(); ok {
			help += " | " + extra
		}
		return help
	case radarr.InputBlocks.Contains(block):
		return "<enter> submit | <esc> cancel | <ctrl-w> delete word"
	case radarr.ErrorBlocks.Contains(block):
		return "<any key> dismiss"
	case isSortPrompt(block) || isSelectList(block):
		return "<↑/↓> scroll | <enter> select | <esc> cancel"
	case isYesNoPrompt(block) || isFormPrompt(block):
		return "<↑/↓> navigate | <←/→> choose | <enter> confirm | <esc> cancel"
	}
	return "<↑/↓> scroll | <esc> close"
}

// renderBody draws the active main screen and layers the route's popups
// over it: the context popup first, then the active block.
func (m *Model) renderBody(width, height int) []string {
	screen := m.app.Data.MainTabs.ActiveRoute().Block
	body := fitLines(m.renderScreen(screen, width, height), width, height)

	route := m.app.Route()
	if route.HasContext() && !m.isScreen(route.Context) && !sharesPopup(route.Context, route.Block) {
		if layer := m.renderPopup(route.Context, route.Block, width, height); len(layer) > 0 {
			body = overlay(body, layer, width)
		}
	}
	if !m.isScreen(route.Block) {
		if layer := m.renderPopup(route.Block, route.Block, width, height); len(layer) > 0 {
			body = overlay(body, layer, width)
		}
	}
	return body
}

func (m *Model) isScreen(b radarr.Block) bool {
	return m.app.Data.MainTabs.IndexOf(b) >= 0
}

// box frames lines with the popup border. width is the outer width.
func box(title string, lines []string, width int) []string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	content := make([]string, 0, len(lines)+2)
	if title != "" {
		content = append(content, theme.Render(styles.BoxTitle, ansi.Truncate(title, inner, ellipsis)), "")
	}
	for _, line := range lines {
		content = append(content, ansi.Truncate(line, inner, ellipsis))
	}
	style := lipgloss.NewStyle()
	if styles.Box != nil {
		style = *styles.Box
	}
	rendered := style.Width(width - 2).Render(strings.Join(content, "\n"))
	return strings.Split(rendered, "\n")
}

// overlay centres popup over base. Cells outside the popup keep the base
// content.
func overlay(base, popup []string, width int) []string {
	popupWidth := 0
	for _, line := range popup {
		if w := ansi.StringWidth(line); w > popupWidth {
			popupWidth = w
		}
	}
	top := (len(base) - len(popup)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - popupWidth) / 2
	if left < 0 {
		left = 0
	}
	out := append([]string(nil), base...)
	for i, line := range popup {
		row := top + i
		if row >= len(out) {
			break
		}
		bg := out[row]
		if w := ansi.StringWidth(bg); w < left+popupWidth {
			bg += strings.Repeat(" ", left+popupWidth-w)
		}
		pad := popupWidth - ansi.StringWidth(line)
		if pad < 0 {
			pad = 0
		}
		out[row] = ansi.Truncate(bg, left, "") + resetStyle + line + strings.Repeat(" ", pad) +
			ansi.TruncateLeft(bg, left+popupWidth, "")
	}
	return out
}

// fitLines clips lines to width and pads or trims them to exactly height rows.
func fitLines(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := 0; i < height && i < len(lines); i++ {
		out[i] = ansi.Truncate(lines[i], width, ellipsis)
	}
	if len(lines) > height && height > 0 {
		out[height-1] = ellipsis
	}
	return out
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = line
		result[i].text = ansi.Truncate(line.text, width, ellipsis)
	}
	return result
}

func renderLines(lines []styledLine) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = theme.Render(line.style, line.text)
	}
	return out
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

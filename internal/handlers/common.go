package handlers

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/radarr"
)

type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeft
	actRight
	actHome
	actEnd
	actSubmit
	actEsc
	actDelete
)

func classify(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, Keys.Up):
		return actUp
	case key.Matches(msg, Keys.Down):
		return actDown
	case key.Matches(msg, Keys.Left):
		return actLeft
	case key.Matches(msg, Keys.Right):
		return actRight
	case key.Matches(msg, Keys.Home):
		return actHome
	case key.Matches(msg, Keys.End):
		return actEnd
	case key.Matches(msg, Keys.Submit):
		return actSubmit
	case key.Matches(msg, Keys.Esc):
		return actEsc
	case key.Matches(msg, Keys.Delete):
		return actDelete
	}
	return actNone
}

func (c *Context) matches(b key.Binding) bool {
	return c.action == actNone && key.Matches(c.Key, b)
}

func (c *Context) push(b radarr.Block) {
	c.App.Push(radarr.NewRoute(b))
}

func (c *Context) pushOver(b, context radarr.Block) {
	c.App.Push(radarr.RouteWithContext(b, context))
}

func (c *Context) pop() {
	c.App.Pop()
}

// scroller is anything with a vertical selection or offset.
type scroller interface {
	ScrollUp()
	ScrollDown()
	ScrollToTop()
	ScrollToBottom()
}

// scroll applies the navigation keys to s and reports whether one matched.
func (c *Context) scroll(s scroller) bool {
	switch c.action {
	case actUp:
		s.ScrollUp()
	case actDown:
		s.ScrollDown()
	case actHome:
		s.ScrollToTop()
	case actEnd:
		s.ScrollToBottom()
	default:
		return false
	}
	return true
}

// switchTabs moves between the main tabs on left/right.
func (c *Context) switchTabs() bool {
	switch c.action {
	case actLeft:
		c.App.SwitchTab(-1)
	case actRight:
		c.App.SwitchTab(1)
	default:
		return false
	}
	return true
}

// prompt drives a yes/no prompt. Left/right flips the answer, enter records
// evt as the pending action when the answer is yes, and both enter and esc
// close the prompt.
func (c *Context) prompt(evt radarr.Event) bool {
	data := c.Data
	switch c.action {
	case actLeft, actRight:
		data.PromptAnswer = !data.PromptAnswer
	case actSubmit:
		data.ApplyPromptConfirm(evt)
		c.pop()
	case actEsc:
		data.CancelPrompt()
		c.pop()
	default:
		return false
	}
	return true
}

// closeOn pops the route on enter or esc.
func (c *Context) closeOn() bool {
	if c.action == actSubmit || c.action == actEsc {
		c.pop()
		return true
	}
	return false
}

// moveSelection moves a form cursor. Left/right on the confirm step flips
// the answer instead of moving.
func (c *Context) moveSelection(sel *radarr.BlockSelection, confirm radarr.Block) bool {
	switch c.action {
	case actUp:
		sel.Up()
	case actDown:
		sel.Down()
	case actLeft, actRight:
		if sel.Current() == confirm {
			c.Data.PromptAnswer = !c.Data.PromptAnswer
			return true
		}
		if c.action == actLeft {
			sel.Left()
		} else {
			sel.Right()
		}
	default:
		return false
	}
	return true
}

// editText applies an editing key to text and reports whether it was
// consumed. Enter and esc are never consumed.
func editText(text *radarr.ScrollText, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Backspace):
		text.Pop()
	case key.Matches(msg, Keys.WordBack):
		text.PopWord()
	case key.Matches(msg, Keys.Left):
		text.ScrollLeft()
	case key.Matches(msg, Keys.Right):
		text.ScrollRight()
	case key.Matches(msg, Keys.Home):
		text.ScrollHome()
	case key.Matches(msg, Keys.End):
		text.ScrollEnd()
	case msg.Type == tea.KeySpace:
		text.Push(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		for _, r := range msg.Runes {
			text.Push(r)
		}
	default:
		return false
	}
	return true
}

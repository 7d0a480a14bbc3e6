package handlers

import "github.com/atomicstack/servarr-tui/internal/radarr"

// form describes a multi-field popup: the block drawing it, its confirm
// step, and what each of its field blocks edits.
type form struct {
	prompt  radarr.Block
	confirm radarr.Block
	event   radarr.Event
	selects map[radarr.Block]scroller
	inputs  map[radarr.Block]*radarr.ScrollText
	toggles map[radarr.Block]func()
	reset   func()
}

func (f form) input(b radarr.Block) *radarr.ScrollText {
	return f.inputs[b]
}

// handleForm drives the form popup and the select lists and inputs opened
// from it. Enter on the confirm step records the action when the answer is
// yes and discards the form otherwise.
func handleForm(c *Context, f form) {
	data := c.Data
	if c.Block != f.prompt {
		if sel, ok := f.selects[c.Block]; ok && c.scroll(sel) {
			return
		}
		c.closeOn()
		return
	}

	if c.moveSelection(&data.SelectedBlock, f.confirm) {
		return
	}
	switch c.action {
	case actSubmit:
		current := data.SelectedBlock.Current()
		if current == f.confirm {
			if !data.ApplyPromptConfirm(f.event) {
				f.reset()
			}
			c.pop()
			return
		}
		if toggle, ok := f.toggles[current]; ok {
			toggle()
			return
		}
		_, isSelect := f.selects[current]
		if isSelect || f.inputs[current] != nil {
			c.pushOver(current, f.prompt)
		}
	case actEsc:
		data.CancelPrompt()
		f.reset()
		c.pop()
	}
}

func flip(b *bool) func() {
	return func() {
		if b != nil {
			*b = !*b
		}
	}
}

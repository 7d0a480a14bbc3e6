package handlers

import "github.com/atomicstack/servarr-tui/internal/radarr"

type indexersHandler struct{}

func (indexersHandler) Blocks() radarr.BlockSet { return radarr.IndexersBlocks }

func (indexersHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.DeleteIndexerPrompt:
		c.prompt(radarr.DeleteIndexer)
		return
	case radarr.TestIndexer:
		if c.closeOn() {
			data.IndexerTestErrors = nil
		}
		return
	}

	if c.scroll(&data.Indexers) || c.switchTabs() {
		return
	}
	empty := data.Indexers.IsEmpty()
	switch {
	case c.action == actSubmit || c.matches(Keys.Edit):
		if data.PopulateEditIndexerFields() {
			c.pushOver(radarr.EditIndexerPrompt, radarr.Indexers)
		}
	case c.action == actDelete:
		if !empty {
			c.pushOver(radarr.DeleteIndexerPrompt, radarr.Indexers)
		}
	case c.matches(Keys.Settings):
		data.IndexerSettings = nil
		data.SelectedBlock = radarr.NewBlockSelectionFor(radarr.IndexerSettingsSteps)
		c.pushOver(radarr.AllIndexerSettingsPrompt, radarr.Indexers)
	case c.matches(Keys.Test):
		if !empty {
			data.IndexerTestErrors = nil
			c.pushOver(radarr.TestIndexer, radarr.Indexers)
		}
	case c.matches(Keys.TestAll):
		if !empty {
			data.IndexerTestAllResults = nil
			c.pushOver(radarr.TestAllIndexers, radarr.Indexers)
		}
	}
}

// modalForm is an editable copy of server settings laid out in steps.
type modalForm interface {
	Input(radarr.Block) *radarr.ScrollText
	Toggle(radarr.Block) bool
}

// handleModalForm drives a two-column form backed by a modal. discard drops
// the modal when the form is cancelled or declined.
func handleModalForm(c *Context, modal modalForm, prompt, confirm radarr.Block, evt radarr.Event, discard func()) {
	data := c.Data
	if c.Block != prompt {
		c.closeOn()
		return
	}
	if c.moveSelection(&data.SelectedBlock, confirm) {
		return
	}
	switch c.action {
	case actSubmit:
		current := data.SelectedBlock.Current()
		switch {
		case current == confirm:
			if !data.ApplyPromptConfirm(evt) {
				discard()
			}
			c.pop()
		case modal.Toggle(current):
		case modal.Input(current) != nil:
			c.pushOver(current, prompt)
		}
	case actEsc:
		data.CancelPrompt()
		discard()
		c.pop()
	}
}

type editIndexerHandler struct{}

func (editIndexerHandler) Blocks() radarr.BlockSet { return radarr.EditIndexerBlocks }

func (editIndexerHandler) Input(c *Context) *radarr.ScrollText {
	if c.Data.EditIndexerModal == nil {
		return nil
	}
	return c.Data.EditIndexerModal.Input(c.Block)
}

func (editIndexerHandler) Handle(c *Context) {
	data := c.Data
	if data.EditIndexerModal == nil {
		if c.action == actEsc {
			c.pop()
		}
		return
	}
	handleModalForm(c, data.EditIndexerModal, radarr.EditIndexerPrompt, radarr.EditIndexerConfirmPrompt,
		radarr.EditIndexer, func() { data.EditIndexerModal = nil })
}

type indexerSettingsHandler struct{}

func (indexerSettingsHandler) Blocks() radarr.BlockSet { return radarr.IndexerSettingsBlocks }

func (indexerSettingsHandler) Input(c *Context) *radarr.ScrollText {
	if c.Data.IndexerSettings == nil {
		return nil
	}
	return c.Data.IndexerSettings.Input(c.Block)
}

func (indexerSettingsHandler) Handle(c *Context) {
	data := c.Data
	if data.IndexerSettings == nil {
		if c.action == actEsc {
			c.pop()
		}
		return
	}
	handleModalForm(c, data.IndexerSettings, radarr.AllIndexerSettingsPrompt, radarr.IndexerSettingsConfirmPrompt,
		radarr.EditAllIndexerSettings, func() { data.IndexerSettings = nil })
}

type testAllIndexersHandler struct{}

func (testAllIndexersHandler) Blocks() radarr.BlockSet { return radarr.TestAllIndexersBlocks }

func (testAllIndexersHandler) Handle(c *Context) {
	data := c.Data
	if results := data.IndexerTestAllResults; results != nil && c.scroll(results) {
		return
	}
	if c.action == actEsc {
		data.IndexerTestAllResults = nil
		c.pop()
	}
}

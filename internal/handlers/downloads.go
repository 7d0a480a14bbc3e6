package handlers

import (
	"github.com/atomicstack/servarr-tui/internal/radarr"
	uistate "github.com/atomicstack/servarr-tui/internal/ui/state"
)

type downloadsHandler struct{}

func (downloadsHandler) Blocks() radarr.BlockSet { return radarr.DownloadsBlocks }

func (downloadsHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.DeleteDownloadPrompt:
		c.prompt(radarr.DeleteDownload)
		return
	case radarr.UpdateDownloadsPrompt:
		c.prompt(radarr.UpdateDownloads)
		return
	}

	if c.scroll(&data.Downloads) || c.switchTabs() {
		return
	}
	switch {
	case c.action == actDelete:
		if !data.Downloads.IsEmpty() {
			c.pushOver(radarr.DeleteDownloadPrompt, radarr.Downloads)
		}
	case c.matches(Keys.Update):
		c.pushOver(radarr.UpdateDownloadsPrompt, radarr.Downloads)
	}
}

type blocklistHandler struct{}

func (blocklistHandler) Blocks() radarr.BlockSet { return radarr.BlocklistBlocks }

func (blocklistHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.BlocklistItemDetails:
		c.closeOn()
		return
	case radarr.DeleteBlocklistItemPrompt:
		c.prompt(radarr.DeleteBlocklistItem)
		return
	case radarr.BlocklistClearAllItemsPrompt:
		c.prompt(radarr.ClearBlocklist)
		return
	case radarr.BlocklistSortPrompt:
		handleSortPrompt(c, &data.Blocklist)
		return
	}

	if c.scroll(&data.Blocklist) || c.switchTabs() {
		return
	}
	empty := data.Blocklist.IsEmpty()
	switch {
	case c.action == actSubmit:
		if !empty {
			c.pushOver(radarr.BlocklistItemDetails, radarr.Blocklist)
		}
	case c.action == actDelete:
		if !empty {
			c.pushOver(radarr.DeleteBlocklistItemPrompt, radarr.Blocklist)
		}
	case c.matches(Keys.Clear):
		if !empty {
			c.pushOver(radarr.BlocklistClearAllItemsPrompt, radarr.Blocklist)
		}
	case c.matches(Keys.Sort):
		c.pushOver(radarr.BlocklistSortPrompt, radarr.Blocklist)
	}
}

type rootFoldersHandler struct{}

func (rootFoldersHandler) Blocks() radarr.BlockSet { return radarr.RootFoldersBlocks }

func (rootFoldersHandler) Input(c *Context) *radarr.ScrollText {
	if c.Block == radarr.AddRootFolderPrompt {
		return c.Data.EditRootFolder
	}
	return nil
}

func (rootFoldersHandler) Handle(c *Context) {
	data := c.Data
	switch c.Block {
	case radarr.AddRootFolderPrompt:
		switch c.action {
		case actSubmit:
			if data.EditRootFolder == nil || data.EditRootFolder.IsEmpty() {
				data.EditRootFolder = nil
				c.pop()
				return
			}
			data.ArmConfirmation(radarr.AddRootFolder)
			c.pop()
		case actEsc:
			data.EditRootFolder = nil
			c.pop()
		}
		return
	case radarr.DeleteRootFolderPrompt:
		c.prompt(radarr.DeleteRootFolder)
		return
	}

	if c.scroll(&data.RootFolders) || c.switchTabs() {
		return
	}
	switch {
	case c.action == actDelete:
		if !data.RootFolders.IsEmpty() {
			c.pushOver(radarr.DeleteRootFolderPrompt, radarr.RootFolders)
		}
	case c.matches(Keys.Add):
		text := uistate.NewHorizontallyScrollableText("")
		data.EditRootFolder = &text
		c.pushOver(radarr.AddRootFolderPrompt, radarr.RootFolders)
	}
}

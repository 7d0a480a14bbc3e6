package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/theme"
)

var (
	yesNoPrompts = map[radarr.Block]bool{
		radarr.UpdateAllMoviesPrompt:          true,
		radarr.UpdateAllCollectionsPrompt:     true,
		radarr.UpdateDownloadsPrompt:          true,
		radarr.DeleteDownloadPrompt:           true,
		radarr.DeleteBlocklistItemPrompt:      true,
		radarr.BlocklistClearAllItemsPrompt:   true,
		radarr.DeleteRootFolderPrompt:         true,
		radarr.DeleteIndexerPrompt:            true,
		radarr.AutomaticallySearchMoviePrompt: true,
		radarr.UpdateAndScanPrompt:            true,
		radarr.ManualSearchConfirmPrompt:      true,
		radarr.SystemTaskStartConfirmPrompt:   true,
	}
	sortPrompts = map[radarr.Block]bool{
		radarr.MoviesSortPrompt:       true,
		radarr.CollectionsSortPrompt:  true,
		radarr.BlocklistSortPrompt:    true,
		radarr.ManualSearchSortPrompt: true,
	}
	selectLists = map[radarr.Block]bool{
		radarr.AddMovieSelectRootFolder:                true,
		radarr.AddMovieSelectMonitor:                   true,
		radarr.AddMovieSelectMinimumAvailability:       true,
		radarr.AddMovieSelectQualityProfile:            true,
		radarr.EditMovieSelectMinimumAvailability:      true,
		radarr.EditMovieSelectQualityProfile:           true,
		radarr.EditCollectionSelectMinimumAvailability: true,
		radarr.EditCollectionSelectQualityProfile:      true,
	}
	// formPrompts maps each form to its title and confirm button label.
	formPrompts = map[radarr.Block][2]string{
		radarr.AddMoviePrompt:           {"Add Movie", "Add"},
		radarr.EditMoviePrompt:          {"Edit Movie", "Save"},
		radarr.EditCollectionPrompt:     {"Edit Collection", "Save"},
		radarr.DeleteMoviePrompt:        {"Delete Movie", "Delete"},
		radarr.EditIndexerPrompt:        {"Edit Indexer", "Save"},
		radarr.AllIndexerSettingsPrompt: {"Configure All Indexer Settings", "Save"},
	}
	confirmBlocks = map[radarr.Block]bool{
		radarr.AddMovieConfirmPrompt:        true,
		radarr.EditMovieConfirmPrompt:       true,
		radarr.EditCollectionConfirmPrompt:  true,
		radarr.DeleteMovieConfirmPrompt:     true,
		radarr.EditIndexerConfirmPrompt:     true,
		radarr.IndexerSettingsConfirmPrompt: true,
	}
	fieldLabels = map[radarr.Block]string{
		radarr.AddMovieSelectRootFolder:                    "Root Folder",
		radarr.AddMovieSelectMonitor:                       "Monitor",
		radarr.AddMovieSelectMinimumAvailability:           "Minimum Availability",
		radarr.AddMovieSelectQualityProfile:                "Quality Profile",
		radarr.AddMovieTagsInput:                           "Tags",
		radarr.EditMovieToggleMonitored:                    "Monitored",
		radarr.EditMovieSelectMinimumAvailability:          "Minimum Availability",
		radarr.EditMovieSelectQualityProfile:               "Quality Profile",
		radarr.EditMoviePathInput:                          "Path",
		radarr.EditMovieTagsInput:                          "Tags",
		radarr.EditCollectionToggleMonitored:               "Monitored",
		radarr.EditCollectionSelectMinimumAvailability:     "Minimum Availability",
		radarr.EditCollectionSelectQualityProfile:          "Quality Profile",
		radarr.EditCollectionRootFolderPathInput:           "Root Folder",
		radarr.EditCollectionToggleSearchOnAdd:             "Search on Add",
		radarr.DeleteMovieToggleDeleteFile:                 "Delete Movie File",
		radarr.DeleteMovieToggleAddListExclusion:           "Add List Exclusion",
		radarr.EditIndexerNameInput:                        "Name",
		radarr.EditIndexerUrlInput:                         "URL",
		radarr.EditIndexerApiKeyInput:                      "API Key",
		radarr.EditIndexerSeedRatioInput:                   "Seed Ratio",
		radarr.EditIndexerTagsInput:                        "Tags",
		radarr.EditIndexerPriorityInput:                    "Indexer Priority",
		radarr.EditIndexerToggleEnableRss:                  "Enable RSS",
		radarr.EditIndexerToggleEnableAutomaticSearch:      "Enable Automatic Search",
		radarr.EditIndexerToggleEnableInteractiveSearch:    "Enable Interactive Search",
		radarr.IndexerSettingsMinimumAgeInput:              "Minimum Age (minutes)",
		radarr.IndexerSettingsRetentionInput:               "Retention (days)",
		radarr.IndexerSettingsMaximumSizeInput:             "Maximum Size (MB)",
		radarr.IndexerSettingsAvailabilityDelayInput:       "Availability Delay (days)",
		radarr.IndexerSettingsRssSyncIntervalInput:         "RSS Sync Interval (minutes)",
		radarr.IndexerSettingsWhitelistedSubtitleTagsInput: "Whitelisted Subtitle Tags",
		radarr.IndexerSettingsTogglePreferIndexerFlags:     "Prefer Indexer Flags",
		radarr.IndexerSettingsToggleAllowHardcodedSubs:     "Allow Hardcoded Subs",
	}
)

func isYesNoPrompt(b radarr.Block) bool { return yesNoPrompts[b] }
func isSortPrompt(b radarr.Block) bool  { return sortPrompts[b] }
func isSelectList(b radarr.Block) bool  { return selectLists[b] }

func isFormPrompt(b radarr.Block) bool {
	_, ok := formPrompts[b]
	return ok
}

// isFormField reports whether b is a field or button of a form.
func isFormField(b radarr.Block) bool {
	_, labelled := fieldLabels[b]
	return labelled || confirmBlocks[b]
}

// renderForm draws the form of prompt following the layout of the current
// block selection. Rows with two fields are split into two columns.
func (m *Model) renderForm(prompt, active radarr.Block, width int) []string {
	data := m.app.Data
	inner := width - 4
	labels := formPrompts[prompt]
	focused := data.SelectedBlock.Current()

	lines := make([]string, 0, data.SelectedBlock.Sequence().Len()+2)
	if sub := m.formSubject(prompt); sub != "" {
		lines = append(lines, theme.Render(styles.Info, sub), "")
	}
	for _, row := range data.SelectedBlock.Sequence() {
		if len(row) == 0 {
			continue
		}
		if allConfirm(row) {
			lines = append(lines, "", m.buttons(labels[1], "Cancel", confirmBlocks[focused]))
			continue
		}
		cellWidth := inner
		if len(row) > 1 {
			cellWidth = (inner - 2) / len(row)
		}
		cells := make([]string, len(row))
		for i, b := range row {
			if confirmBlocks[b] {
				cells[i] = strings.Repeat(" ", cellWidth)
				continue
			}
			cells[i] = m.formField(b, b == focused, b == active, cellWidth)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	if !hasConfirmRow(data.SelectedBlock.Sequence()) {
		lines = append(lines, "", m.buttons(labels[1], "Cancel", confirmBlocks[focused]))
	}
	return box(labels[0], lines, width)
}

func allConfirm(row []radarr.Block) bool {
	for _, b := range row {
		if !confirmBlocks[b] {
			return false
		}
	}
	return true
}

func hasConfirmRow(seq radarr.StepSequence) bool {
	for _, row := range seq {
		if len(row) > 0 && allConfirm(row) {
			return true
		}
	}
	return false
}

// formSubject names what the form edits.
func (m *Model) formSubject(prompt radarr.Block) string {
	data := m.app.Data
	switch prompt {
	case radarr.AddMoviePrompt:
		if data.AddMovieSource == radarr.CollectionDetails {
			if cm, ok := data.CollectionMovies.Current(); ok {
				return cm.Title.Text()
			}
		} else if data.AddSearchedMovies != nil {
			if r, ok := data.AddSearchedMovies.Current(); ok {
				return r.Title.Text()
			}
		}
	case radarr.EditMoviePrompt, radarr.DeleteMoviePrompt:
		return m.selectedMovieTitle()
	case radarr.EditCollectionPrompt:
		if c, ok := data.Collections.Active().Current(); ok {
			return c.Title.Text()
		}
	}
	return ""
}

// formField renders one "label: value" cell padded to width.
func (m *Model) formField(b radarr.Block, focused, editing bool, width int) string {
	label := fieldLabels[b]
	labelStyle := styles.Label
	if focused {
		labelStyle = styles.FocusedLabel
	}
	head := theme.Render(labelStyle, label) + ": "
	valueWidth := width - ansi.StringWidth(label) - 2

	var value string
	switch {
	case isSelectList(b):
		value = theme.Render(styles.Input, m.selectValue(b)) + theme.Render(styles.Placeholder, " ▼")
	default:
		if text := m.formInput(b); text != nil {
			value = m.inputLine(text, valueWidth, editing)
		} else if on, ok := m.formToggle(b); ok {
			value = styles.Checkbox(on)
		}
	}
	return padRight(ansi.Truncate(head+value, width, ellipsis), width)
}

// formInput returns the text edited by field b, or nil.
func (m *Model) formInput(b radarr.Block) *radarr.ScrollText {
	data := m.app.Data
	switch b {
	case radarr.AddMovieTagsInput, radarr.EditMovieTagsInput:
		return &data.EditTags
	case radarr.EditMoviePathInput, radarr.EditCollectionRootFolderPathInput:
		return &data.EditPath
	}
	if modal := data.EditIndexerModal; modal != nil && radarr.EditIndexerBlocks.Contains(b) {
		return modal.Input(b)
	}
	if modal := data.IndexerSettings; modal != nil && radarr.IndexerSettingsBlocks.Contains(b) {
		return modal.Input(b)
	}
	return nil
}

func (m *Model) formToggle(b radarr.Block) (bool, bool) {
	data := m.app.Data
	deref := func(v *bool) bool { return v != nil && *v }
	switch b {
	case radarr.EditMovieToggleMonitored, radarr.EditCollectionToggleMonitored:
		return deref(data.EditMonitored), true
	case radarr.EditCollectionToggleSearchOnAdd:
		return deref(data.EditSearchOnAdd), true
	case radarr.DeleteMovieToggleDeleteFile:
		return data.DeleteMovieFiles, true
	case radarr.DeleteMovieToggleAddListExclusion:
		return data.AddListExclusion, true
	}
	if modal := data.EditIndexerModal; modal != nil {
		switch b {
		case radarr.EditIndexerToggleEnableRss:
			return modal.EnableRss, true
		case radarr.EditIndexerToggleEnableAutomaticSearch:
			return modal.EnableAutomaticSearch, true
		case radarr.EditIndexerToggleEnableInteractiveSearch:
			return modal.EnableInteractiveSearch, true
		}
	}
	if modal := data.IndexerSettings; modal != nil {
		switch b {
		case radarr.IndexerSettingsTogglePreferIndexerFlags:
			return modal.PreferIndexerFlags, true
		case radarr.IndexerSettingsToggleAllowHardcodedSubs:
			return modal.AllowHardcodedSubs, true
		}
	}
	return false, false
}

func (m *Model) selectValue(b radarr.Block) string {
	data := m.app.Data
	switch b {
	case radarr.AddMovieSelectRootFolder:
		if r, ok := data.RootFolderList.Current(); ok {
			return r.Path
		}
	case radarr.AddMovieSelectMonitor:
		if v, ok := data.MonitorList.Current(); ok {
			return v.Display()
		}
	case radarr.AddMovieSelectMinimumAvailability, radarr.EditMovieSelectMinimumAvailability,
		radarr.EditCollectionSelectMinimumAvailability:
		if v, ok := data.MinimumAvailabilityList.Current(); ok {
			return v.Display()
		}
	case radarr.AddMovieSelectQualityProfile, radarr.EditMovieSelectQualityProfile,
		radarr.EditCollectionSelectQualityProfile:
		if v, ok := data.QualityProfileList.Current(); ok {
			return v
		}
	}
	return ""
}

// selectBox draws the choices of an open select field.
func (m *Model) selectBox(b radarr.Block, width, height int) []string {
	data := m.app.Data
	title := fieldLabels[b]
	switch b {
	case radarr.AddMovieSelectRootFolder:
		return listBox(title, &data.RootFolderList, func(r radarr.RootFolder) string {
			return r.Path + " (" + formatSize(r.FreeSpace) + " free)"
		}, width, height)
	case radarr.AddMovieSelectMonitor:
		return listBox(title, &data.MonitorList, radarr.Monitor.Display, width, height)
	case radarr.AddMovieSelectMinimumAvailability, radarr.EditMovieSelectMinimumAvailability,
		radarr.EditCollectionSelectMinimumAvailability:
		return listBox(title, &data.MinimumAvailabilityList, radarr.MinimumAvailability.Display, width, height)
	case radarr.AddMovieSelectQualityProfile, radarr.EditMovieSelectQualityProfile,
		radarr.EditCollectionSelectQualityProfile:
		return listBox(title, &data.QualityProfileList, func(s string) string { return s }, width, height)
	}
	return nil
}

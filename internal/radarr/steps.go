package radarr

import uistate "github.com/atomicstack/servarr-tui/internal/ui/state"

// StepSequence is a form layout over movie blocks.
type StepSequence = uistate.StepSequence[Block]

// BlockSelection is the focused-field cursor of a form.
type BlockSelection = uistate.BlockSelection[Block]

var (
	AddMovieSteps = uistate.Steps(
		AddMovieSelectRootFolder,
		AddMovieSelectMonitor,
		AddMovieSelectMinimumAvailability,
		AddMovieSelectQualityProfile,
		AddMovieTagsInput,
		AddMovieConfirmPrompt,
	)
	EditMovieSteps = uistate.Steps(
		EditMovieToggleMonitored,
		EditMovieSelectMinimumAvailability,
		EditMovieSelectQualityProfile,
		EditMoviePathInput,
		EditMovieTagsInput,
		EditMovieConfirmPrompt,
	)
	EditCollectionSteps = uistate.Steps(
		EditCollectionToggleMonitored,
		EditCollectionSelectMinimumAvailability,
		EditCollectionSelectQualityProfile,
		EditCollectionRootFolderPathInput,
		EditCollectionToggleSearchOnAdd,
		EditCollectionConfirmPrompt,
	)
	DeleteMovieSteps = uistate.Steps(
		DeleteMovieToggleDeleteFile,
		DeleteMovieToggleAddListExclusion,
		DeleteMovieConfirmPrompt,
	)
	EditIndexerTorrentSteps = StepSequence{
		{EditIndexerNameInput, EditIndexerUrlInput},
		{EditIndexerToggleEnableRss, EditIndexerApiKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerSeedRatioInput},
		{EditIndexerToggleEnableInteractiveSearch, EditIndexerTagsInput},
		{EditIndexerPriorityInput, EditIndexerConfirmPrompt},
		{EditIndexerConfirmPrompt, EditIndexerConfirmPrompt},
	}
	EditIndexerNzbSteps = StepSequence{
		{EditIndexerNameInput, EditIndexerUrlInput},
		{EditIndexerToggleEnableRss, EditIndexerApiKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerTagsInput},
		{EditIndexerToggleEnableInteractiveSearch, EditIndexerPriorityInput},
		{EditIndexerConfirmPrompt, EditIndexerConfirmPrompt},
	}
	IndexerSettingsSteps = StepSequence{
		{IndexerSettingsMinimumAgeInput, IndexerSettingsAvailabilityDelayInput},
		{IndexerSettingsRetentionInput, IndexerSettingsRssSyncIntervalInput},
		{IndexerSettingsMaximumSizeInput, IndexerSettingsWhitelistedSubtitleTagsInput},
		{IndexerSettingsTogglePreferIndexerFlags, IndexerSettingsToggleAllowHardcodedSubs},
		{IndexerSettingsConfirmPrompt, IndexerSettingsConfirmPrompt},
	}
)

// EditIndexerSteps returns the layout matching the indexer protocol.
func EditIndexerSteps(protocol string) StepSequence {
	if protocol == "torrent" {
		return EditIndexerTorrentSteps
	}
	return EditIndexerNzbSteps
}

// NewBlockSelectionFor returns a cursor on the first step of seq.
func NewBlockSelectionFor(seq StepSequence) BlockSelection {
	return uistate.NewBlockSelection(seq)
}

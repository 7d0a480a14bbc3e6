package radarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMovieStepsWrap(t *testing.T) {
	first := AddMovieSteps.First()
	assert.Equal(t, AddMovieSelectRootFolder, first)

	current := first
	for i := 0; i < AddMovieSteps.Len(); i++ {
		current = AddMovieSteps.Next(current)
	}
	assert.Equal(t, first, current)
	assert.Equal(t, AddMovieConfirmPrompt, AddMovieSteps.Previous(first))
}

func TestStepsUnmatchedBlockFallsBackToFirst(t *testing.T) {
	assert.Equal(t, EditMovieToggleMonitored, EditMovieSteps.Next(Movies))
	assert.Equal(t, EditMovieToggleMonitored, EditMovieSteps.Previous(Movies))
}

func TestEditIndexerStepsByProtocol(t *testing.T) {
	torrent := EditIndexerSteps("torrent")
	nzb := EditIndexerSteps("usenet")
	assert.Equal(t, 6, torrent.Len())
	assert.Equal(t, 5, nzb.Len())

	sel := NewBlockSelectionFor(torrent)
	sel.Right()
	assert.Equal(t, EditIndexerUrlInput, sel.Current())
	sel.Down()
	sel.Down()
	assert.Equal(t, EditIndexerSeedRatioInput, sel.Current())

	sel = NewBlockSelectionFor(nzb)
	sel.Right()
	sel.Down()
	sel.Down()
	assert.Equal(t, EditIndexerTagsInput, sel.Current())
}

func TestDeleteMovieStepsSequence(t *testing.T) {
	assert.Equal(t, DeleteMovieToggleAddListExclusion, DeleteMovieSteps.Next(DeleteMovieToggleDeleteFile))
	assert.Equal(t, DeleteMovieConfirmPrompt, DeleteMovieSteps.Next(DeleteMovieToggleAddListExclusion))
	assert.Equal(t, DeleteMovieToggleDeleteFile, DeleteMovieSteps.Next(DeleteMovieConfirmPrompt))
}

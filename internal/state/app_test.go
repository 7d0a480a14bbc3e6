package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/radarr"
)

func TestNavigationNeverDropsRoot(t *testing.T) {
	app := NewApp(0)
	assert.Equal(t, DefaultTickUntilPoll, app.TickUntilPoll)
	assert.Equal(t, radarr.Movies, app.ActiveBlock())

	app.Push(radarr.NewRoute(radarr.SearchMovie))
	app.Push(radarr.NewRoute(radarr.SearchMovieError))
	for i := 0; i < 5; i++ {
		app.Pop()
	}
	assert.Equal(t, 1, app.Depth())
	assert.Equal(t, radarr.Movies, app.ActiveBlock())
	assert.True(t, app.IsRouting)
}

func TestPopAndPushKeepsHistory(t *testing.T) {
	app := NewApp(10)
	app.Push(radarr.NewRoute(radarr.MovieDetails))
	app.Push(radarr.NewRoute(radarr.SearchMovie))
	below, ok := app.PreviousRoute()
	require.True(t, ok)

	app.PopAndPush(radarr.NewRoute(radarr.SearchMovieError))
	assert.Equal(t, radarr.SearchMovieError, app.ActiveBlock())
	after, ok := app.PreviousRoute()
	require.True(t, ok)
	assert.Equal(t, below, after)
	assert.Equal(t, 3, app.Depth())
}

func TestSwitchTabReplacesRoot(t *testing.T) {
	app := NewApp(10)
	app.SwitchTab(1)
	assert.Equal(t, radarr.Collections, app.ActiveBlock())
	assert.Equal(t, 1, app.Depth())

	app.SwitchTab(-1)
	app.SwitchTab(-1)
	assert.Equal(t, radarr.System, app.ActiveBlock())
	assert.Equal(t, 6, app.Data.MainTabs.Index())
}

func TestHandleErrorCollapsesWhitespace(t *testing.T) {
	app := NewApp(10)
	app.IsLoading = true
	app.HandleError(errors.New("status 500:\n  {\"message\":\n\"boom\"}"))

	assert.False(t, app.IsLoading)
	assert.True(t, app.HasError())
	assert.Equal(t, `status 500: {"message": "boom"}`, app.Error.Text())

	app.ClearError()
	assert.False(t, app.HasError())
	app.HandleError(nil)
	assert.False(t, app.HasError())
}

func TestPollDue(t *testing.T) {
	app := NewApp(3)
	assert.True(t, app.PollDue())
	app.Tick()
	assert.False(t, app.PollDue())
	app.Tick()
	app.Tick()
	assert.True(t, app.PollDue())
	app.ResetTickCount()
	assert.Equal(t, 0, app.TickCount)
}

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/state"
)

type recorder struct {
	reqs   []network.Request
	refuse bool
}

func (r *recorder) Submit(req network.Request) bool {
	if r.refuse {
		return false
	}
	r.reqs = append(r.reqs, req)
	return true
}

func TestFlushBuildsRequestsInOrder(t *testing.T) {
	app := state.NewApp(0)
	q := New()
	q.Dispatch(radarr.GetMovies)
	q.Dispatch(radarr.GetDownloads)
	q.Dispatch(radarr.GetDownloads)
	q.Dispatch(radarr.GetTags)
	require.Equal(t, 4, q.Len())

	rec := &recorder{}
	submitted := q.Flush(app, rec)
	assert.Equal(t, []radarr.Event{radarr.GetMovies, radarr.GetDownloads, radarr.GetTags}, submitted)
	require.Len(t, rec.reqs, 3)
	assert.Equal(t, "/movie", rec.reqs[0].Path)
	assert.Equal(t, "/queue", rec.reqs[1].Path)
	assert.Zero(t, q.Len())
}

func TestFlushReportsBuildErrors(t *testing.T) {
	app := state.NewApp(0)
	app.IsLoading = true
	q := New()
	q.Dispatch(radarr.DeleteMovie)

	rec := &recorder{}
	assert.Empty(t, q.Flush(app, rec))
	assert.Empty(t, rec.reqs)
	assert.True(t, app.HasError())
	assert.Contains(t, app.Error.Text(), "DeleteMovie")
	assert.False(t, app.IsLoading)
}

func TestFlushDropsRefusedRequests(t *testing.T) {
	app := state.NewApp(0)
	app.IsLoading = true
	q := New()
	q.Dispatch(radarr.GetMovies)

	assert.Empty(t, q.Flush(app, &recorder{refuse: true}))
	assert.False(t, app.IsLoading)
	assert.False(t, app.HasError())
}

func TestFlushEmptyQueue(t *testing.T) {
	app := state.NewApp(0)
	assert.Nil(t, New().Flush(app, &recorder{}))
}

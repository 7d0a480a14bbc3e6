package backend

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/radarr"
	"github.com/atomicstack/servarr-tui/internal/testutil"
)

type fakeExecutor struct {
	mu    sync.Mutex
	seen  []radarr.Event
	block chan struct{}
}

func (f *fakeExecutor) Execute(ctx context.Context, req network.Request) network.Result {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return network.Result{Event: req.Event, Err: ctx.Err()}
		}
	}
	f.mu.Lock()
	f.seen = append(f.seen, req.Event)
	f.mu.Unlock()
	return network.Result{Event: req.Event, Value: req.Path}
}

func collect(t *testing.T, w *Worker, n int) []Event {
	t.Helper()
	var out []Event
	timeout := time.After(2 * time.Second)
	for len(out) < n {
		select {
		case evt, ok := <-w.Events():
			require.True(t, ok, "events closed early")
			out = append(out, evt)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestWorkerDeliversEveryResult(t *testing.T) {
	exec := &fakeExecutor{}
	w := NewWorker(exec, Options{Workers: 2, MinInterval: -1})
	t.Cleanup(func() { w.Stop(); w.Wait() })

	submitted := []radarr.Event{radarr.GetMovies, radarr.GetTags, radarr.GetDownloads}
	for _, evt := range submitted {
		require.True(t, w.Submit(network.Request{Event: evt, Path: evt.String()}))
	}

	got := collect(t, w, len(submitted))
	var events []radarr.Event
	for _, evt := range got {
		require.NoError(t, evt.Result.Err)
		assert.Equal(t, evt.Result.Event.String(), evt.Result.Value)
		events = append(events, evt.Result.Event)
	}
	assert.ElementsMatch(t, submitted, events)
}

func TestWorkerStopClosesEvents(t *testing.T) {
	exec := &fakeExecutor{block: make(chan struct{})}
	w := NewWorker(exec, Options{Workers: 1, MinInterval: -1})
	require.True(t, w.Submit(network.Request{Event: radarr.GetMovies}))

	w.Stop()
	w.Wait()
	for range w.Events() {
	}
	assert.False(t, w.Submit(network.Request{Event: radarr.GetTags}))
}

func TestWorkerAgainstFakeServer(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	srv.Handle(t, http.MethodGet, "/system/status", http.StatusOK, `{"version": "5.2.6.8376"}`)
	client := network.NewClient(srv.URL, testutil.FakeAPIKey, time.Second)

	w := NewWorker(client, Options{})
	t.Cleanup(func() { w.Stop(); w.Wait() })
	require.True(t, w.Submit(network.Request{Event: radarr.GetStatus, Method: http.MethodGet, Path: "/system/status"}))

	got := collect(t, w, 1)
	require.NoError(t, got[0].Result.Err)
	status, ok := got[0].Result.Value.(radarr.SystemStatus)
	require.True(t, ok)
	assert.Equal(t, "5.2.6.8376", status.Version)
}

func TestThrottleSpacesStarts(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, th.wait(ctx))
	}
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestThrottleHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, th.wait(ctx))
	cancel()
	assert.ErrorIs(t, th.wait(ctx), context.Canceled)
}

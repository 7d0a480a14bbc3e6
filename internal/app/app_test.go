package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/servarr-tui/internal/config"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/testutil"
	"github.com/atomicstack/servarr-tui/internal/ui"
)

func TestCheckHealth(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	srv.Handle(t, http.MethodGet, "/health", http.StatusOK, `[]`)

	client := network.NewClient(srv.URL, testutil.FakeAPIKey, time.Second)
	require.NoError(t, checkHealth(context.Background(), client))

	_, ok := srv.Last(http.MethodGet, "/health")
	assert.True(t, ok)
}

func TestCheckHealthRejectedKey(t *testing.T) {
	srv := testutil.NewRadarrServer(t)
	srv.Handle(t, http.MethodGet, "/health", http.StatusOK, `[]`)

	client := network.NewClient(srv.URL, "wrong-key", time.Second)
	err := checkHealth(context.Background(), client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), srv.URL)
}

func TestNewModelUsesConfiguredSize(t *testing.T) {
	cfg := config.Config{UI: config.UI{
		Width:        100,
		Height:       30,
		TickRate:     time.Second,
		PollInterval: 10 * time.Second,
	}}
	model := NewModel(cfg, nil)
	require.NotNil(t, model)
	assert.Equal(t, 10, model.App().TickUntilPoll)

	h := ui.NewHarness(model)
	lines := 0
	for _, r := range h.View() {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 29, lines)
}

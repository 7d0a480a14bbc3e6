package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/servarr-tui/internal/backend"
	"github.com/atomicstack/servarr-tui/internal/config"
	"github.com/atomicstack/servarr-tui/internal/logging"
	"github.com/atomicstack/servarr-tui/internal/logging/events"
	"github.com/atomicstack/servarr-tui/internal/network"
	"github.com/atomicstack/servarr-tui/internal/ui"
)

const healthTimeout = 5 * time.Second

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg config.Config) error {
	client := network.NewClient(cfg.Radarr.BaseURL(), cfg.Radarr.APIToken, cfg.Radarr.Timeout)
	worker := backend.NewWorker(client, backend.Options{Timeout: cfg.Radarr.Timeout})
	defer func() {
		worker.Stop()
		worker.Wait()
	}()

	model := NewModel(cfg, worker)
	if err := checkHealth(ctx, client); err != nil {
		// The UI still starts; the error stays on screen until dismissed.
		model.App().HandleError(err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	logging.Sync()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		events.App.Error(err)
	}
	return err
}

// NewModel builds the UI model described by cfg.
func NewModel(cfg config.Config, worker ui.Worker) *ui.Model {
	return ui.NewModel(worker, ui.Options{
		Width:         cfg.UI.Width,
		Height:        cfg.UI.Height,
		TickRate:      cfg.UI.TickRate,
		TickUntilPoll: cfg.UI.TickUntilPoll(),
	})
}

func checkHealth(ctx context.Context, client *network.Client) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("connect to %s: %w", client.BaseURL(), err)
	}
	return nil
}

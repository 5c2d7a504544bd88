package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/hwalton/snapcram/internal/config"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/service"
	"github.com/hwalton/snapcram/internal/tui"
	"github.com/hwalton/snapcram/internal/workers"
)

// App ties the session lifecycle to the UI flows: a valid session opens the
// main loop, a missing one opens the auth flow, and an unreachable backend
// opens the offline screen instead of logging the user out.
type App struct {
	cfg      *config.Config
	services *service.Services
	refresh  *workers.RefreshJob
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.Config, services *service.Services, refresh *workers.RefreshJob, ui *tui.TUI, log *logger.Logger) *App {
	return &App{cfg: cfg, services: services, refresh: refresh, ui: ui, logger: log}
}

// Run blocks until the user exits. Logging out restarts the lifecycle from
// session validation, so the next user lands on the auth flow.
func (a *App) Run() error {
	ctx := context.Background()

	state, err := a.services.Session.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validate session: %w", err)
	}

	switch state {
	case service.SessionUnauthenticated:
		if err = a.ui.AuthFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	case service.SessionOffline:
		retry, flowErr := a.ui.NetworkIssueFlow(ctx)
		if flowErr != nil {
			if errors.Is(flowErr, tui.ErrUserQuit) {
				return nil
			}
			return flowErr
		}
		if !retry {
			return nil
		}
		return a.Run()
	}

	a.refresh.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.refresh.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.refresh.Stop()
		return a.Run()
	}

	return nil
}

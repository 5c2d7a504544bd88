// Package tui renders the snapcram terminal interface with Bubble Tea.
//
// It runs three separate programs over one shared model type: the
// authentication flow, the offline screen, and the main loop. Each program
// reports its outcome through fields the caller reads off the final model.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/service"
	"github.com/hwalton/snapcram/models"
)

type TUI struct {
	services *service.Services
	info     models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.Services, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, info: info, logger: log}
}

// AuthFlow runs the welcome/login/register screens until the user holds a
// valid session or quits. Returns ErrUserQuit on a deliberate exit.
func (t *TUI) AuthFlow(ctx context.Context) error {
	model := newAuthAppModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}
	if !result.authenticated {
		return ErrUserQuit
	}
	return nil
}

// NetworkIssueFlow shows the offline screen. It returns retry=true when the
// user asks to try reconnecting and ErrUserQuit when they exit instead.
func (t *TUI) NetworkIssueFlow(ctx context.Context) (retry bool, err error) {
	model := newOfflineAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}
	return result.retry, nil
}

// MainLoop runs the deck screens until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	theme, err := t.services.Session.Theme(ctx)
	if err != nil {
		theme = models.ThemeLight
		t.logger.Warn().Err(err).Msg("load theme")
	}

	model := newMainAppModel(ctx, t.services, t.info, theme)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

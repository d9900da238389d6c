package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	messenger service.ClientMessengerService
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(messenger service.ClientMessengerService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		messenger: messenger,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled. Failures reported by
// the controller are shown in the status line while the program runs.
func (t *TUI) Run(ctx context.Context) error {
	model := newMessengerModel(ctx, t.messenger, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.messenger.OnFailure(func(f service.Failure) {
		program.Send(failureMsg{failure: f})
	})
	defer t.messenger.OnFailure(nil)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(messengerModel); ok && result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}

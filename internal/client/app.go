package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.MessengerService == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run blocks while the UI is running. Leaving the UI by the quit key is a
// normal exit.
func (a *App) Run(ctx context.Context) error {
	defer a.services.MessengerService.Close()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}

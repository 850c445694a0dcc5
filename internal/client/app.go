package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/agent-chat/internal/logger"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGTERM/SIGQUIT.
// Ctrl+C reaches the UI as a key press while it holds the terminal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("chat client started")

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("chat client stopped with error")
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Msg("chat client stopped")
	return nil
}

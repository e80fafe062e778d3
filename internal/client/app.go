package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-shell/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) *App {
	return &App{ui: ui, logger: logger}
}

// Run implements [Client]. It stops the UI on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		a.logger.Info().Msg("client stopped by signal")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui run error: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

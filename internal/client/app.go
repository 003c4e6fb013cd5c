package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-laundry/internal/logger"
)

// ErrNilUI is returned by [NewApp] when no UI is given.
var ErrNilUI = errors.New("client: nil ui")

// App runs the terminal UI for the lifetime of the process.
type App struct {
	ui  UI
	log *logger.Logger
}

// NewApp creates an [App] around ui.
func NewApp(ui UI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{ui: ui, log: log}, nil
}

// Run blocks until the UI exits. A cancelled ctx ends the UI and is not
// reported as an error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.log.WithContext(ctx)

	a.log.Info().Msg("client started")
	defer a.log.Info().Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

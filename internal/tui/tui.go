package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-laundry/internal/config"
	"github.com/MKhiriev/go-laundry/internal/logger"
	"github.com/MKhiriev/go-laundry/internal/validators"
	"github.com/MKhiriev/go-laundry/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the laundry front end in the terminal.
type TUI struct {
	cfg       *config.StructuredConfig
	brand     models.Brand
	buildInfo models.AppBuildInfo
	clipboard Clipboard
	log       *logger.Logger
}

// New creates a [TUI] from the merged configuration.
func New(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		cfg:       cfg,
		brand:     models.DefaultBrand(),
		buildInfo: buildInfo,
		clipboard: systemClipboard{},
		log:       log,
	}, nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageHome:   NewHomeModel(t.brand, t.cfg.App, t.cfg.UI, t.clipboard, t.log),
		pageSignUp: NewSignUpModel(ctx, validators.NewCustomerValidator(), t.cfg.UI, t.log),
	}

	return NewRootModel(pages, pageHome, t.cfg.App.Name, t.buildInfo, t.cfg.UI.Theme)
}

// Run shows the home screen on the alternate screen buffer and blocks until
// the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.QuitByUser() {
		t.log.Info().Msg("user quit")
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/crypto"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/notify"
	"github.com/MKhiriev/go-cipher-box/internal/tui"
)

// App is the interactive application: cipher service, notification
// center and terminal UI assembled from one config.
type App struct {
	cipher crypto.CipherService
	center *notify.Center
	ui     *tui.TUI
	log    *logger.Logger
}

// NewApp wires the application components from the merged configuration.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	cipher, err := crypto.NewCipherService(cfg.Crypto, log)
	if err != nil {
		return nil, fmt.Errorf("create cipher service: %w", err)
	}

	center := notify.NewCenter(cfg.UI, notify.NewSequence(), log)
	ui := tui.New(cipher, center, cfg.UI, log)

	return &App{cipher: cipher, center: center, ui: ui, log: log}, nil
}

// Run probes the platform capability and starts the interactive session.
// A failed probe is fatal: the incompatibility is reported once,
// prominently, before any interaction is possible.
func (a *App) Run() error {
	if err := a.cipher.Probe(); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderIncompatibility(err))
		a.log.Error().Err(err).Msg("platform probe failed")
		return err
	}

	defer a.center.Close()
	return a.ui.Run(context.Background())
}

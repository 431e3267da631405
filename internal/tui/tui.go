package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/crypto"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/notify"
	"github.com/MKhiriev/go-cipher-box/internal/workers"
)

// TUI owns the interactive terminal session: the field model, the
// notification center rendering, and the pump that feeds timer-driven
// notification transitions back into the UI loop.
type TUI struct {
	cipher crypto.CipherService
	center *notify.Center
	ui     config.UI
	log    *logger.Logger
}

// New constructs the terminal UI around an already-probed cipher service
// and a notification center.
func New(cipher crypto.CipherService, center *notify.Center, ui config.UI, log *logger.Logger) *TUI {
	return &TUI{cipher: cipher, center: center, ui: ui, log: log}
}

// Run starts the interactive session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.cipher, t.center, newTooltipModel(t.ui.TooltipShowDelay, t.ui.TooltipHideDelay), t.log)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	pump := workers.NewNotifyPump(t.center, func(e notify.Event) {
		p.Send(notifyEventMsg{event: e})
	})
	workers.NewWorkers(pump).Run()
	defer pump.Stop()

	_, err := p.Run()
	return err
}

// RenderIncompatibility formats the fatal startup message shown when the
// platform crypto capability is missing. It is printed once, before any
// interaction is possible.
func RenderIncompatibility(err error) string {
	return incompatibleBx.Render(
		"cipher-box cannot start\n\n" +
			"The platform cryptographic capability is unavailable:\n" +
			err.Error())
}

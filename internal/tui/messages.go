package tui

import (
	"github.com/MKhiriev/go-cipher-box/internal/notify"
	"github.com/MKhiriev/go-cipher-box/models"
)

type keyGeneratedMsg struct {
	material models.KeyMaterial
	err      error
}

type keyDerivedMsg struct {
	material models.KeyMaterial
	err      error
}

type encryptDoneMsg struct {
	ciphertext string
	err        error
}

type decryptDoneMsg struct {
	plaintext string
	err       error
}

type copiedMsg struct {
	field fieldID
	err   error
}

// notifyEventMsg carries a notification lifecycle transition pumped in
// from the notification center; it exists only to trigger a repaint.
type notifyEventMsg struct {
	event notify.Event
}

type tooltipShowMsg struct {
	field fieldID
	seq   int
}

type tooltipHideMsg struct {
	field fieldID
	seq   int
}

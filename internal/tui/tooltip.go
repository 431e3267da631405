package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fieldHints are the descriptive texts shown as a delayed overlay while a
// field keeps focus.
var fieldHints = map[fieldID]string{
	fieldKey:     "Hex-encoded key: 32, 48 or 64 hex digits (AES-128/192/256). ctrl+g generates one.",
	fieldIV:      "Hex-encoded initialization vector, one value per encryption. Length is fixed by configuration.",
	fieldEncrypt: "Plaintext to encrypt (ctrl+e). Decrypt results also land here. Enter inserts a line break.",
	fieldDecrypt: "Hex ciphertext to decrypt (ctrl+d). Encrypt results also land here.",
}

// tooltipModel shows the focused field's hint after a configured delay and
// hides it a little after focus leaves. Sequence numbers invalidate timers
// that were scheduled before the focus moved again.
type tooltipModel struct {
	showDelay time.Duration
	hideDelay time.Duration

	visible fieldID // valid only when showing
	showing bool
	seq     int
}

func newTooltipModel(showDelay, hideDelay time.Duration) tooltipModel {
	return tooltipModel{showDelay: showDelay, hideDelay: hideDelay, visible: -1}
}

// focusChanged schedules a delayed show for the newly focused field. A hint
// still on screen stays up until its own delayed hide fires, so rapid focus
// cycling does not flicker.
func (m *tooltipModel) focusChanged(f fieldID) tea.Cmd {
	m.seq++
	if m.showing {
		return tea.Batch(m.scheduleHide(m.visible), m.scheduleShow(f))
	}
	return m.scheduleShow(f)
}

// scheduleShow arms the show timer against the current sequence number
// without invalidating anything already scheduled.
func (m tooltipModel) scheduleShow(f fieldID) tea.Cmd {
	seq := m.seq
	return tea.Tick(m.showDelay, func(time.Time) tea.Msg {
		return tooltipShowMsg{field: f, seq: seq}
	})
}

// scheduleHide arms the hide timer for the hint currently on screen. Tagging
// the hide with its field keeps a late hide from wiping a hint that was
// shown after it was scheduled.
func (m tooltipModel) scheduleHide(f fieldID) tea.Cmd {
	seq := m.seq
	return tea.Tick(m.hideDelay, func(time.Time) tea.Msg {
		return tooltipHideMsg{field: f, seq: seq}
	})
}

// focusLost schedules a delayed hide for whatever hint is showing.
func (m *tooltipModel) focusLost() tea.Cmd {
	m.seq++
	if !m.showing {
		return nil
	}
	return m.scheduleHide(m.visible)
}

func (m *tooltipModel) handleShow(msg tooltipShowMsg) {
	if msg.seq != m.seq {
		return // focus moved since this timer was scheduled
	}
	m.visible = msg.field
	m.showing = true
}

func (m *tooltipModel) handleHide(msg tooltipHideMsg) {
	if msg.seq != m.seq || !m.showing || m.visible != msg.field {
		return
	}
	m.showing = false
	m.visible = -1
}

func (m tooltipModel) View() string {
	if !m.showing {
		return ""
	}
	hint, ok := fieldHints[m.visible]
	if !ok {
		return ""
	}
	return tooltipStyle.Render(hint)
}

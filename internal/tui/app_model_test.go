package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cipher-box/internal/logger"
)

func newPasteModel(t *testing.T) appModel {
	t.Helper()

	m := newAppModel(context.Background(), nil, nil, newTooltipModel(0, 0), logger.Nop())
	m.focus = fieldEncrypt
	m.keyInput.Blur()
	m.encryptArea.Focus()

	return m
}

func pasteMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func TestPaste_CollapsesBreakRunsImmediately(t *testing.T) {
	m := newPasteModel(t)

	updated, _ := m.Update(pasteMsg("a\n\n\n\n\nb"))

	assert.Equal(t, "a\n\nb", updated.(appModel).fieldValue(fieldEncrypt))
}

func TestPaste_CollapsesRunsSpanningExistingContent(t *testing.T) {
	m := newPasteModel(t)
	m.encryptArea.SetValue("x\n\n")

	updated, _ := m.Update(pasteMsg("\n\ny"))

	assert.Equal(t, "x\n\ny", updated.(appModel).fieldValue(fieldEncrypt))
}

func TestPaste_StripsFormattingEscapes(t *testing.T) {
	m := newPasteModel(t)

	updated, _ := m.Update(pasteMsg("\x1b[31mred\x1b[0m"))

	assert.Equal(t, "red", updated.(appModel).fieldValue(fieldEncrypt))
}

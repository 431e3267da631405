package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-cipher-box/models"
)

// renderMessages draws the active notifications in insertion order,
// truncated to the given width. The terminal has no opacity, so the fade
// states render through the faint style instead.
func renderMessages(messages []models.Message, width int) string {
	if len(messages) == 0 {
		return ""
	}

	var b strings.Builder
	for _, m := range messages {
		line := fitText(kindPrefix(m.Kind)+m.Text, width)

		switch m.State {
		case models.StateCreated, models.StateFadingIn, models.StateFadingOut:
			b.WriteString(fadedMsgStyle.Render(line))
		default:
			b.WriteString(kindStyle(m.Kind).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func kindPrefix(k models.MessageKind) string {
	switch k {
	case models.KindSuccess:
		return "✓ "
	case models.KindError:
		return "✗ "
	case models.KindWarning:
		return "! "
	default:
		return "· "
	}
}

func kindStyle(k models.MessageKind) lipgloss.Style {
	switch k {
	case models.KindSuccess:
		return successStyle
	case models.KindError:
		return errorMsgStyle
	case models.KindWarning:
		return warningStyle
	default:
		return infoMsgStyle
	}
}

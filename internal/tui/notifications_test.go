package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cipher-box/models"
)

func TestRenderMessages_TruncatesToWidth(t *testing.T) {
	long := strings.Repeat("x", 80)
	messages := []models.Message{
		{ID: "1-1", Text: long, Kind: models.KindInfo, State: models.StateVisible},
	}

	out := renderMessages(messages, 20)

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long)
}

func TestRenderMessages_FullTextWhenWidthUnknown(t *testing.T) {
	long := strings.Repeat("x", 80)
	messages := []models.Message{
		{ID: "1-1", Text: long, Kind: models.KindInfo, State: models.StateVisible},
	}

	// Width is unknown before the first WindowSizeMsg.
	out := renderMessages(messages, 0)

	assert.Contains(t, out, long)
}

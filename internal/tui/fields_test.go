package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cipher-box/models"
)

func TestRouteOutput_CrossWiring(t *testing.T) {
	tests := []struct {
		name string
		kind models.OutputKind
		want []fieldID
	}{
		{"generated key fills key and iv", models.OutputKeyGenerated, []fieldID{fieldKey, fieldIV}},
		{"encrypt result feeds decrypt slot", models.OutputEncrypted, []fieldID{fieldDecrypt}},
		{"decrypt result feeds encrypt slot", models.OutputDecrypted, []fieldID{fieldEncrypt}},
		{"unknown kind routes nowhere", models.OutputKind(99), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routeOutput(models.OperationOutput{Kind: tt.kind}))
		})
	}
}

func TestSanitizePaste(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"ansi color stripped", "\x1b[31mred\x1b[0m", "red"},
		{"osc sequence stripped", "\x1b]0;title\x07text", "text"},
		{"control chars dropped", "a\x00b\x08c", "abc"},
		{"tabs become spaces", "a\tb", "a b"},
		{"newlines survive", "line1\nline2", "line1\nline2"},
		{"unicode survives", "ключ 🔑", "ключ 🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizePaste(tt.input))
		})
	}
}

func TestCollapseBreaks(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		want       string
		wantCursor int
	}{
		{"no breaks", "abc", 2, "abc", 2},
		{"double break kept", "a\n\nb", 3, "a\n\nb", 3},
		{"triple collapses to two", "a\n\n\nb", 4, "a\n\nb", 3},
		{"long run collapses", "a\n\n\n\n\n\nb", 7, "a\n\nb", 3},
		{"cursor before run unaffected", "a\n\n\nb", 1, "a\n\nb", 1},
		{"two separate runs", "a\n\n\nb\n\n\nc", 8, "a\n\nb\n\nc", 6},
		{"crlf normalized first", "a\r\n\r\n\r\nb", 0, "a\n\nb", 0},
		{"cursor clamped to length", "abc", 100, "abc", 3},
		{"negative cursor clamped", "abc", -5, "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotCursor := collapseBreaks(tt.input, tt.cursor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, gotCursor)
		})
	}
}

func TestNormalizeLineBreaks(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", normalizeLineBreaks("a\r\nb\rc\n"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hel", fitText("hello", 3))
	assert.Equal(t, "hell...", fitText("hello world", 7))
}

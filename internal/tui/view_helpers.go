package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
)

const uiDivider = "──────────────────────────────────────────────────────"

// areaCursorOffset returns the caret position as a rune offset into the
// textarea's logical value.
func areaCursorOffset(ta *textarea.Model) int {
	row := ta.Line()
	li := ta.LineInfo()
	col := li.StartColumn + li.ColumnOffset

	lines := strings.Split(ta.Value(), "\n")
	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for the line break
	}
	return offset + col
}

// moveAreaCursor places the caret at a rune offset into the textarea's
// value. SetValue leaves the caret at the end, so the caret only ever
// moves backwards from there.
func moveAreaCursor(ta *textarea.Model, offset int) {
	lines := strings.Split(ta.Value(), "\n")

	row, col := 0, 0
	remaining := offset
	for i, line := range lines {
		n := len([]rune(line))
		if remaining <= n {
			row, col = i, remaining
			break
		}
		remaining -= n + 1
		row, col = i, n
	}

	for ta.Line() > row {
		ta.CursorUp()
	}
	ta.SetCursor(col)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

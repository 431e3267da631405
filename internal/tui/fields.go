// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-cipher-box/models"
)

// fieldID names a logical input slot. The two payload slots are
// bidirectional: each serves as one operation's input and the opposite
// operation's output.
type fieldID int

const (
	fieldKey fieldID = iota
	fieldIV
	fieldEncrypt // plaintext in, decrypted output
	fieldDecrypt // ciphertext in, encrypted output

	fieldCount
)

func (f fieldID) String() string {
	switch f {
	case fieldKey:
		return "key"
	case fieldIV:
		return "iv"
	case fieldEncrypt:
		return "encrypt input"
	case fieldDecrypt:
		return "decrypt input"
	default:
		return "unknown"
	}
}

// routeOutput maps an operation result to the fields it must land in.
// The cross-wiring policy lives in this one switch: encrypt output feeds
// the decrypt slot and vice versa, so the next natural action operates on
// what was just produced.
func routeOutput(out models.OperationOutput) []fieldID {
	switch out.Kind {
	case models.OutputKeyGenerated:
		return []fieldID{fieldKey, fieldIV}
	case models.OutputEncrypted:
		return []fieldID{fieldDecrypt}
	case models.OutputDecrypted:
		return []fieldID{fieldEncrypt}
	default:
		return nil
	}
}

// ansiEscape matches CSI/OSC terminal escape sequences that may ride
// along in pasted text.
var ansiEscape = regexp.MustCompile(`\x1b(\[[0-9;?]*[a-zA-Z]|\][^\x07\x1b]*(\x07|\x1b\\))`)

// sanitizePaste reduces pasted content to plain text: line breaks are
// normalized to \n, escape sequences and control characters are dropped,
// tabs become spaces.
func sanitizePaste(s string) string {
	s = normalizeLineBreaks(s)
	s = ansiEscape.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// drop control characters
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeLineBreaks collapses CRLF and lone CR to \n.
func normalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// collapseBreaks rewrites runs of 3 or more consecutive line breaks down
// to 2, remapping cursor (a rune offset into s) so the caret stays on the
// same logical spot across the rewrite. Returns the rewritten text and
// the remapped cursor.
func collapseBreaks(s string, cursor int) (string, int) {
	runes := []rune(normalizeLineBreaks(s))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	var out []rune
	newCursor := cursor
	run := 0
	for i, r := range runes {
		if r == '\n' {
			run++
			if run > 2 {
				if i < cursor {
					newCursor--
				}
				continue
			}
		} else {
			run = 0
		}
		out = append(out, r)
	}

	return string(out), newCursor
}

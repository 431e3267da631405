// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hexcodec converts between byte slices and hexadecimal strings
// and validates hex well-formedness before material reaches the cipher
// layer.
//
// Policy: odd-length input is rejected, never zero-padded. Implicit
// padding would silently turn a mistyped 31-character key into a valid
// 16-byte one, so malformed input fails loudly with [ErrInvalidFormat].
package hexcodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// BytesToHex encodes b as lowercase hex, two digits per byte.
// The output length is exactly 2×len(b).
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes s into bytes after trimming surrounding whitespace.
// Returns [ErrInvalidFormat] if s has odd length or contains a character
// outside [0-9A-Fa-f]. An empty (or all-whitespace) input decodes to an
// empty slice.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits", ErrInvalidFormat)
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, "non-hex character in input")
	}

	return b, nil
}

// IsValidHex reports whether every character of s (whitespace-trimmed)
// belongs to the hex alphabet. Evenness is deliberately not checked here;
// that is the decoder's contract, and callers needing it must go through
// [HexToBytes].
func IsValidHex(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

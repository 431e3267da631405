package crypto

import "errors"

var (
	// ErrEncryptionFailed wraps any backend failure during encryption.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed wraps any backend failure during decryption,
	// including padding and authentication-tag mismatches. The raw
	// backend text is never exposed to callers.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrPlatformUnavailable indicates the cipher primitive or the
	// secure random source cannot be used. Fatal to the session.
	ErrPlatformUnavailable = errors.New("platform crypto unavailable")

	// ErrUnsupportedMode indicates a cipher mode outside cbc/ctr/gcm.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")
)

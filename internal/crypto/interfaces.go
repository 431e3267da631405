package crypto

import (
	"context"

	"github.com/MKhiriev/go-cipher-box/models"
)

// CipherService wraps the platform cipher primitives behind hex-string
// boundaries. It knows nothing about the UI or configuration sources; its
// only job is to validate parameters, run the transform, and translate
// hex ⇄ binary on the way in and out.
//
// Every call is independent and stateless aside from the fixed
// configuration, so concurrent calls are safe and produce independent
// results. Calls are not cancellable once the transform has started.
type CipherService interface {
	// Encrypt validates the parameters, encrypts plaintext with the
	// configured mode, and returns lowercase hex ciphertext. Validation
	// failures are propagated unchanged under an "encrypt:" prefix;
	// backend failures surface as [ErrEncryptionFailed] and never leak
	// raw diagnostics.
	Encrypt(ctx context.Context, plaintext, keyHex, ivHex string) (string, error)

	// Decrypt is the mirror of Encrypt: it decodes ciphertextHex,
	// applies the inverse transform, and returns the plaintext as UTF-8
	// text. Padding and authentication-tag failures surface as
	// [ErrDecryptionFailed] only.
	Decrypt(ctx context.Context, ciphertextHex, keyHex, ivHex string) (string, error)

	// GenerateKeyAndIV fills key- and IV-length buffers from the OS
	// CSPRNG and returns their hex encodings. Lengths come from
	// configuration and are always valid.
	GenerateKeyAndIV() (models.KeyMaterial, error)

	// DeriveKeyAndIV derives a key/IV pair from a passphrase with
	// Argon2id. When saltHex is empty a fresh random salt is generated;
	// the salt used is returned so the derivation can be repeated.
	DeriveKeyAndIV(passphrase, saltHex string) (models.KeyMaterial, error)

	// Probe verifies that the platform cipher and the secure random
	// source are usable. A failure is [ErrPlatformUnavailable] and must
	// be treated as fatal to the whole session.
	Probe() error
}

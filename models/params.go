package models

// OperationKind identifies the direction of a cipher operation.
// Validation rules differ between the two: encrypt requires a non-empty
// plaintext payload, decrypt additionally requires the payload to be
// well-formed hex.
type OperationKind int

const (
	// OperationEncrypt transforms plaintext into hex ciphertext.
	OperationEncrypt OperationKind = 1

	// OperationDecrypt transforms hex ciphertext back into plaintext.
	OperationDecrypt OperationKind = 2
)

// CryptoParams carries the caller-supplied inputs of a single cipher
// operation. Key and IV are hexadecimal strings; Payload is plaintext for
// encrypt and hex ciphertext for decrypt. The struct is created per
// invocation and never persisted.
type CryptoParams struct {
	// KeyHex is the hex-encoded symmetric key. Must decode to exactly
	// 16, 24 or 32 bytes (AES-128/192/256).
	KeyHex string

	// IVHex is the hex-encoded initialization vector. Must decode to
	// exactly the configured IV length (16 bytes by default).
	IVHex string

	// Payload is the operation input: plaintext for encrypt,
	// hex ciphertext for decrypt.
	Payload string

	// Operation selects which payload rules apply during validation.
	Operation OperationKind
}

// KeyMaterial is a freshly generated or derived key/IV pair, hex-encoded.
// Lengths are derived from configuration and are always valid.
type KeyMaterial struct {
	// KeyHex is the hex-encoded key.
	KeyHex string

	// IVHex is the hex-encoded initialization vector.
	IVHex string

	// SaltHex is the hex-encoded derivation salt. Empty for randomly
	// generated material; set when the pair was derived from a passphrase.
	SaltHex string
}

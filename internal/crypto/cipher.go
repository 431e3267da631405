// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/hexcodec"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/validators"
	"github.com/MKhiriev/go-cipher-box/models"
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	keySize   int
	ivSize    int
	mode      string
	validator validators.Validator
	log       *logger.Logger

	// Argon2id tuning parameters for passphrase-derived material.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// saltSize is the byte length of Argon2id derivation salts.
const saltSize = 16

// NewCipherService constructs a [CipherService] from the crypto
// configuration section. The Argon2id parameters follow the OWASP (2024)
// recommendation: 1 iteration, 64 MiB memory, 4 threads.
func NewCipherService(cfg config.Crypto, log *logger.Logger) (CipherService, error) {
	switch cfg.Mode {
	case config.ModeCBC, config.ModeCTR, config.ModeGCM:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, cfg.Mode)
	}

	return &cipherService{
		keySize:      cfg.KeySize,
		ivSize:       cfg.IVSize,
		mode:         cfg.Mode,
		validator:    validators.NewCryptoParamsValidator(cfg.IVSize),
		log:          log,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}, nil
}

// Encrypt implements [CipherService].
func (s *cipherService) Encrypt(ctx context.Context, plaintext, keyHex, ivHex string) (string, error) {
	params := models.CryptoParams{
		KeyHex:    keyHex,
		IVHex:     ivHex,
		Payload:   plaintext,
		Operation: models.OperationEncrypt,
	}
	if err := s.validator.Validate(ctx, params); err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}

	// Validation guarantees both decode cleanly.
	key, _ := hexcodec.HexToBytes(keyHex)
	iv, _ := hexcodec.HexToBytes(ivHex)

	out, err := s.transform([]byte(plaintext), key, iv, true)
	if err != nil {
		s.log.Error().Err(err).Str("mode", s.mode).Msg("cipher backend failure on encrypt")
		return "", ErrEncryptionFailed
	}

	s.log.Debug().Str("mode", s.mode).Int("plaintext_len", len(plaintext)).Msg("encrypted payload")
	return hexcodec.BytesToHex(out), nil
}

// Decrypt implements [CipherService].
func (s *cipherService) Decrypt(ctx context.Context, ciphertextHex, keyHex, ivHex string) (string, error) {
	params := models.CryptoParams{
		KeyHex:    keyHex,
		IVHex:     ivHex,
		Payload:   ciphertextHex,
		Operation: models.OperationDecrypt,
	}
	if err := s.validator.Validate(ctx, params); err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	ciphertext, err := hexcodec.HexToBytes(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", validators.ErrInvalidFormat)
	}

	key, _ := hexcodec.HexToBytes(keyHex)
	iv, _ := hexcodec.HexToBytes(ivHex)

	out, err := s.transform(ciphertext, key, iv, false)
	if err != nil {
		// Wrong key, corrupted ciphertext and auth-tag mismatches all
		// land here. The backend reason stays in the log only.
		s.log.Error().Err(err).Str("mode", s.mode).Msg("cipher backend failure on decrypt")
		return "", ErrDecryptionFailed
	}

	return string(out), nil
}

// transform runs the configured mode in the given direction. Inputs have
// already been validated.
func (s *cipherService) transform(data, key, iv []byte, encrypt bool) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	switch s.mode {
	case config.ModeCBC:
		return s.runCBC(block, data, iv, encrypt)
	case config.ModeCTR:
		// CTR is symmetric: the same keystream XOR in both directions.
		out := make([]byte, len(data))
		cipher.NewCTR(block, iv).XORKeyStream(out, data)
		return out, nil
	case config.ModeGCM:
		return s.runGCM(block, data, iv, encrypt)
	default:
		return nil, ErrUnsupportedMode
	}
}

func (s *cipherService) runCBC(block cipher.Block, data, iv []byte, encrypt bool) ([]byte, error) {
	if encrypt {
		padded := pkcs7Pad(data, block.BlockSize())
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil
	}

	if len(data) == 0 || len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext is not a whole number of blocks")
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	return pkcs7Unpad(out, block.BlockSize())
}

func (s *cipherService) runGCM(block cipher.Block, data, iv []byte, encrypt bool) ([]byte, error) {
	// The configured IV length is authoritative, so the nonce size is
	// widened/narrowed to match instead of assuming the GCM default.
	gcm, err := cipher.NewGCMWithNonceSize(block, len(iv))
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if encrypt {
		return gcm.Seal(nil, iv, data, nil), nil
	}
	return gcm.Open(nil, iv, data, nil)
}

// GenerateKeyAndIV implements [CipherService]. It reads key- and IV-length
// buffers from the OS CSPRNG and returns them hex-encoded. Returns an
// error if the random read fails.
func (s *cipherService) GenerateKeyAndIV() (models.KeyMaterial, error) {
	key := make([]byte, s.keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return models.KeyMaterial{}, fmt.Errorf("generate key: %w", err)
	}

	iv := make([]byte, s.ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.KeyMaterial{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.KeyMaterial{
		KeyHex: hexcodec.BytesToHex(key),
		IVHex:  hexcodec.BytesToHex(iv),
	}, nil
}

// DeriveKeyAndIV implements [CipherService]. It stretches the passphrase
// with Argon2id into keySize+ivSize bytes and splits the output into key
// and IV. The same passphrase and salt always produce the same pair.
func (s *cipherService) DeriveKeyAndIV(passphrase, saltHex string) (models.KeyMaterial, error) {
	if passphrase == "" {
		return models.KeyMaterial{}, fmt.Errorf("derive: %w", validators.ErrEmptyPayload)
	}

	var salt []byte
	if saltHex == "" {
		salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return models.KeyMaterial{}, fmt.Errorf("generate salt: %w", err)
		}
	} else {
		var err error
		salt, err = hexcodec.HexToBytes(saltHex)
		if err != nil {
			return models.KeyMaterial{}, fmt.Errorf("derive: %w", err)
		}
	}

	derived := argon2.IDKey(
		[]byte(passphrase),
		salt,
		s.argonTime,
		s.argonMemory,
		s.argonThreads,
		uint32(s.keySize+s.ivSize),
	)

	return models.KeyMaterial{
		KeyHex:  hexcodec.BytesToHex(derived[:s.keySize]),
		IVHex:   hexcodec.BytesToHex(derived[s.keySize:]),
		SaltHex: hexcodec.BytesToHex(salt),
	}, nil
}

// Probe implements [CipherService]. It exercises the CSPRNG and cipher
// construction once at startup so a broken platform is reported before
// any interaction, not on the first operation.
func (s *cipherService) Probe() error {
	buf := make([]byte, s.keySize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("%w: secure random source: %v", ErrPlatformUnavailable, err)
	}
	if _, err := aes.NewCipher(buf); err != nil {
		return fmt.Errorf("%w: cipher construction: %v", ErrPlatformUnavailable, err)
	}
	return nil
}

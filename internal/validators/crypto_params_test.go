package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cipher-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encryptParams(keyHex, ivHex, payload string) models.CryptoParams {
	return models.CryptoParams{
		KeyHex:    keyHex,
		IVHex:     ivHex,
		Payload:   payload,
		Operation: models.OperationEncrypt,
	}
}

func TestValidate_AcceptsAllAESKeySizes(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	iv := strings.Repeat("00", 16)

	for _, keyBytes := range []int{16, 24, 32} {
		key := strings.Repeat("ab", keyBytes)
		err := v.Validate(context.Background(), encryptParams(key, iv, "hello"))
		assert.NoError(t, err, "key of %d bytes must be accepted", keyBytes)
	}
}

func TestValidate_RejectsWrongKeySizes(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	iv := strings.Repeat("00", 16)

	for _, keyBytes := range []int{15, 17, 31, 33} {
		key := strings.Repeat("ab", keyBytes)
		err := v.Validate(context.Background(), encryptParams(key, iv, "hello"))
		assert.ErrorIs(t, err, ErrInvalidKeySize, "key of %d bytes must be rejected", keyBytes)
	}
}

func TestValidate_OddLengthKeyIsFormatError(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	iv := strings.Repeat("00", 16)

	// 31 hex characters: odd length, rejected by the strict decoder
	// before the size check is ever reached.
	key := strings.Repeat("a", 31)
	err := v.Validate(context.Background(), encryptParams(key, iv, "hello"))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate_RejectsWrongIVSizes(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	key := strings.Repeat("ab", 16)

	for _, ivBytes := range []int{1, 8, 12, 15, 17, 32} {
		iv := strings.Repeat("cd", ivBytes)
		err := v.Validate(context.Background(), encryptParams(key, iv, "hello"))
		assert.ErrorIs(t, err, ErrInvalidIVSize, "IV of %d bytes must be rejected", ivBytes)
	}
}

func TestValidate_ConfiguredIVSizeIsAuthoritative(t *testing.T) {
	// GCM convention is 12 bytes; when configured so, 16 must fail and
	// 12 must pass.
	v := NewCryptoParamsValidator(12)
	key := strings.Repeat("ab", 16)

	err := v.Validate(context.Background(), encryptParams(key, strings.Repeat("cd", 12), "hello"))
	assert.NoError(t, err)

	err = v.Validate(context.Background(), encryptParams(key, strings.Repeat("cd", 16), "hello"))
	assert.ErrorIs(t, err, ErrInvalidIVSize)
}

func TestValidate_MissingParameters(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	key := strings.Repeat("ab", 16)
	iv := strings.Repeat("00", 16)

	err := v.Validate(context.Background(), encryptParams("", iv, "hello"))
	assert.ErrorIs(t, err, ErrMissingParameter)

	err = v.Validate(context.Background(), encryptParams(key, "", "hello"))
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestValidate_NonHexInputs(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	key := strings.Repeat("ab", 16)
	iv := strings.Repeat("00", 16)

	err := v.Validate(context.Background(), encryptParams("not-hex-at-all!", iv, "hello"))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	err = v.Validate(context.Background(), encryptParams(key, "zz", "hello"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate_EmptyPayload(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	key := strings.Repeat("ab", 16)
	iv := strings.Repeat("00", 16)

	err := v.Validate(context.Background(), encryptParams(key, iv, ""))
	assert.ErrorIs(t, err, ErrEmptyPayload)

	params := models.CryptoParams{KeyHex: key, IVHex: iv, Operation: models.OperationDecrypt}
	err = v.Validate(context.Background(), params)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestValidate_DecryptPayloadMustBeHex(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	params := models.CryptoParams{
		KeyHex:    strings.Repeat("ab", 16),
		IVHex:     strings.Repeat("00", 16),
		Payload:   "this is not ciphertext",
		Operation: models.OperationDecrypt,
	}

	err := v.Validate(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestValidate_EncryptPayloadMayBeArbitraryText(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	params := encryptParams(strings.Repeat("ab", 16), strings.Repeat("00", 16), "любой текст, any text")

	assert.NoError(t, v.Validate(context.Background(), params))
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewCryptoParamsValidator(16)

	// Only the key is validated; empty IV and payload must not trip.
	params := encryptParams(strings.Repeat("ab", 16), "", "")
	assert.NoError(t, v.Validate(context.Background(), params, FieldKey))

	assert.ErrorIs(t, v.Validate(context.Background(), params, "nonexistent"), ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewCryptoParamsValidator(16)
	assert.ErrorIs(t, v.Validate(context.Background(), struct{}{}), ErrUnsupportedType)
}

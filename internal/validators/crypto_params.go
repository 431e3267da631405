package validators

import (
	"context"

	"github.com/MKhiriev/go-cipher-box/internal/hexcodec"
	"github.com/MKhiriev/go-cipher-box/models"
)

const (
	FieldKey     = "key"
	FieldIV      = "iv"
	FieldPayload = "payload"
)

// aesKeySizes are the byte lengths accepted for AES keys
// (AES-128/192/256).
var aesKeySizes = []int{16, 24, 32}

// CryptoParamsValidator checks key/IV sizing, hex well-formedness and
// payload presence for a single cipher operation. The IV length is
// configuration-authoritative, not derived from the algorithm name.
type CryptoParamsValidator struct {
	ivSize int
}

// NewCryptoParamsValidator returns a [Validator] for [models.CryptoParams]
// that requires IVs of exactly ivSize bytes.
func NewCryptoParamsValidator(ivSize int) Validator {
	return &CryptoParamsValidator{ivSize: ivSize}
}

func (v *CryptoParamsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CryptoParams:
		return v.validateCryptoParams(ctx, value, fields...)
	case *models.CryptoParams:
		return v.validateCryptoParams(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CryptoParamsValidator) validateCryptoParams(_ context.Context, params models.CryptoParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldIV, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if params.KeyHex == "" {
				return ErrMissingParameter
			}
			key, err := hexcodec.HexToBytes(params.KeyHex)
			if err != nil {
				return ErrInvalidFormat
			}
			if !isValidKeySize(len(key)) {
				return ErrInvalidKeySize
			}
		case FieldIV:
			if params.IVHex == "" {
				return ErrMissingParameter
			}
			iv, err := hexcodec.HexToBytes(params.IVHex)
			if err != nil {
				return ErrInvalidFormat
			}
			if len(iv) != v.ivSize {
				return ErrInvalidIVSize
			}
		case FieldPayload:
			if params.Payload == "" {
				return ErrEmptyPayload
			}
			if params.Operation == models.OperationDecrypt && !hexcodec.IsValidHex(params.Payload) {
				return ErrInvalidFormat
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidKeySize(n int) bool {
	for _, s := range aesKeySizes {
		if n == s {
			return true
		}
	}
	return false
}

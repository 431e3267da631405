package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingParameter = errors.New("key and IV are required")
	ErrInvalidFormat    = errors.New("invalid hex format")
	ErrInvalidKeySize   = errors.New("key must be 16, 24 or 32 bytes")
	ErrInvalidIVSize    = errors.New("IV has wrong length")
	ErrEmptyPayload     = errors.New("payload cannot be empty")
)

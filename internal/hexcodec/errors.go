package hexcodec

import "errors"

// ErrInvalidFormat indicates input that is not well-formed hex: a
// character outside [0-9A-Fa-f] or an odd number of digits.
var ErrInvalidFormat = errors.New("invalid hex format")

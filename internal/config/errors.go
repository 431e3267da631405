package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates invalid cipher settings
	// (for example, an unknown mode or a key size outside 16/24/32).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidUIConfigs indicates invalid notification or tooltip
	// timing settings (for example, a zero base duration).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
)

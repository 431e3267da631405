// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Crypto.KeySize {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: key size %d", ErrInvalidCryptoConfigs, cfg.Crypto.KeySize)
	}

	switch cfg.Crypto.Mode {
	case ModeCBC, ModeCTR:
		// Block/stream chaining needs an IV of exactly one AES block.
		if cfg.Crypto.IVSize != 16 {
			return fmt.Errorf("%w: mode %q requires a 16-byte IV, got %d", ErrInvalidCryptoConfigs, cfg.Crypto.Mode, cfg.Crypto.IVSize)
		}
	case ModeGCM:
		if cfg.Crypto.IVSize <= 0 {
			return fmt.Errorf("%w: iv size %d", ErrInvalidCryptoConfigs, cfg.Crypto.IVSize)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidCryptoConfigs, cfg.Crypto.Mode)
	}

	if cfg.UI.MessageBaseDuration <= 0 || cfg.UI.MessageDurationFactor < 0 ||
		cfg.UI.FadeInDelay < 0 || cfg.UI.FadeOutDuration <= 0 ||
		cfg.UI.TooltipShowDelay < 0 || cfg.UI.TooltipHideDelay < 0 {
		return ErrInvalidUIConfigs
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level %q", ErrInvalidLoggingConfigs, cfg.Logging.Level)
	}

	return nil
}

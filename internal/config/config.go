// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Cipher mode names accepted by the Crypto.Mode setting.
const (
	// ModeCBC is cipher block chaining with PKCS#7 padding (default).
	ModeCBC = "cbc"
	// ModeCTR is counter mode (stream, no padding).
	ModeCTR = "ctr"
	// ModeGCM is Galois/Counter mode (authenticated).
	ModeGCM = "gcm"
)

// StructuredConfig is the top-level configuration container for the
// go-cipher-box application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Crypto holds the cipher configuration: key/IV sizes and mode.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// UI holds notification and tooltip timing settings.
	UI UI `envPrefix:"UI_"`

	// Logging holds log output settings.
	Logging Logging `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Crypto holds the cipher parameters. All sizes are byte counts.
type Crypto struct {
	// KeySize is the symmetric key length: 16, 24 or 32 (AES-128/192/256).
	// Governs key generation and derivation; validation accepts all
	// three sizes regardless.
	// Env: CRYPTO_KEY_SIZE
	KeySize int `env:"KEY_SIZE"`

	// IVSize is the initialization vector length. 16 for cbc/ctr; gcm
	// conventionally uses 12 but the configured value is authoritative.
	// Env: CRYPTO_IV_SIZE
	IVSize int `env:"IV_SIZE"`

	// Mode is the cipher mode: "cbc", "ctr" or "gcm".
	// Env: CRYPTO_MODE
	Mode string `env:"MODE"`
}

// UI holds timing settings for notifications and tooltips.
type UI struct {
	// MessageBaseDuration is the minimum time a notification stays
	// visible (e.g. "3s").
	// Env: UI_MESSAGE_BASE_DURATION
	MessageBaseDuration time.Duration `env:"MESSAGE_BASE_DURATION"`

	// MessageDurationFactor is the extra visible time added per
	// character of notification text (e.g. "50ms").
	// Env: UI_MESSAGE_DURATION_FACTOR
	MessageDurationFactor time.Duration `env:"MESSAGE_DURATION_FACTOR"`

	// FadeInDelay is the delay before a freshly inserted notification
	// starts fading in.
	// Env: UI_FADE_IN_DELAY
	FadeInDelay time.Duration `env:"FADE_IN_DELAY"`

	// FadeOutDuration is the length of the fade transition window on
	// both ends of the lifecycle.
	// Env: UI_FADE_OUT_DURATION
	FadeOutDuration time.Duration `env:"FADE_OUT_DURATION"`

	// TooltipShowDelay is how long a field must stay focused before its
	// hint appears.
	// Env: UI_TOOLTIP_SHOW_DELAY
	TooltipShowDelay time.Duration `env:"TOOLTIP_SHOW_DELAY"`

	// TooltipHideDelay is how long the hint lingers after focus leaves.
	// Env: UI_TOOLTIP_HIDE_DELAY
	TooltipHideDelay time.Duration `env:"TOOLTIP_HIDE_DELAY"`
}

// Logging holds log output settings. The interactive UI owns stdout, so
// file output is the default sink.
type Logging struct {
	// Level is the minimum emitted level: debug, info, warn or error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty means a "logs" file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaults returns the built-in configuration, merged in last so any
// explicit source wins.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			KeySize: 16,
			IVSize:  16,
			Mode:    ModeCBC,
		},
		UI: UI{
			MessageBaseDuration:   3 * time.Second,
			MessageDurationFactor: 50 * time.Millisecond,
			FadeInDelay:           10 * time.Millisecond,
			FadeOutDuration:       300 * time.Millisecond,
			TooltipShowDelay:      600 * time.Millisecond,
			TooltipHideDelay:      200 * time.Millisecond,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flag overrides (supplied by the CLI layer; may be nil)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flagOverrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(flagOverrides).
		withJSON().
		withDefaults().
		build()
}

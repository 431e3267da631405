// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-cipher-box/internal/client"
	"github.com/MKhiriev/go-cipher-box/internal/config"
	"github.com/MKhiriev/go-cipher-box/internal/crypto"
	"github.com/MKhiriev/go-cipher-box/internal/logger"
	"github.com/MKhiriev/go-cipher-box/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// persistent flag values, folded into the config overrides struct before
// any command runs.
var (
	flagConfig   string
	flagMode     string
	flagKeySize  int
	flagIVSize   int
	flagLogFile  string
	flagLogLevel string
)

var cfg *config.StructuredConfig

func main() {
	rootCmd := &cobra.Command{
		Use:   "cipherbox",
		Short: "Terminal AES encrypt/decrypt workbench",
		Long: "cipherbox is a terminal workbench for AES encryption. Run it " +
			"without a subcommand for the interactive UI, or use the " +
			"subcommands for one-shot operations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env values become plain environment variables, so they
			// ride the normal env > flags > json > defaults merge.
			_ = godotenv.Load()

			var err error
			cfg, err = config.GetStructuredConfig(flagOverrides())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFileLogger("tui", cfg.Logging)
			runLog := log.Logger.With().Str("run_id", utils.NewRunIDGenerator().Generate()).Logger()
			log = &logger.Logger{Logger: runLog}

			app, err := client.NewApp(cfg, log)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "cipher mode: cbc, ctr or gcm")
	rootCmd.PersistentFlags().IntVar(&flagKeySize, "key-size", 0, "key size in bytes: 16, 24 or 32")
	rootCmd.PersistentFlags().IntVar(&flagIVSize, "iv-size", 0, "IV size in bytes")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(encryptCmd())
	rootCmd.AddCommand(decryptCmd())
	rootCmd.AddCommand(genkeyCmd())
	rootCmd.AddCommand(deriveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// flagOverrides translates the persistent flags into the config layer's
// overrides struct. Zero values are skipped by the merge, so only flags
// the user actually set take effect.
func flagOverrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Crypto: config.Crypto{
			KeySize: flagKeySize,
			IVSize:  flagIVSize,
			Mode:    flagMode,
		},
		Logging: config.Logging{
			Level: flagLogLevel,
			File:  flagLogFile,
		},
		JSONFilePath: flagConfig,
	}
}

// newCLIService builds a cipher service for one-shot subcommands. Logs go
// to stderr so stdout carries only the operation result.
func newCLIService() (crypto.CipherService, error) {
	log := logger.NewStderrLogger("cli", cfg.Logging)
	return crypto.NewCipherService(cfg.Crypto, log)
}

// readPayload returns the --in value, or the whole of stdin when the flag
// was left empty so the command composes with pipes.
func readPayload(in string) (string, error) {
	if in != "" {
		return in, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func encryptCmd() *cobra.Command {
	var keyHex, ivHex, in string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text and print hex ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCLIService()
			if err != nil {
				return err
			}

			payload, err := readPayload(in)
			if err != nil {
				return err
			}

			ciphertext, err := svc.Encrypt(context.Background(), payload, keyHex, ivHex)
			if err != nil {
				return err
			}
			fmt.Println(ciphertext)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded key (required)")
	cmd.Flags().StringVar(&ivHex, "iv", "", "hex-encoded IV (required)")
	cmd.Flags().StringVar(&in, "in", "", "text to encrypt (defaults to stdin)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("iv")
	return cmd
}

func decryptCmd() *cobra.Command {
	var keyHex, ivHex, in string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt hex ciphertext and print plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCLIService()
			if err != nil {
				return err
			}

			payload, err := readPayload(in)
			if err != nil {
				return err
			}

			plaintext, err := svc.Decrypt(context.Background(), payload, keyHex, ivHex)
			if err != nil {
				return err
			}
			fmt.Println(plaintext)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded key (required)")
	cmd.Flags().StringVar(&ivHex, "iv", "", "hex-encoded IV (required)")
	cmd.Flags().StringVar(&in, "in", "", "hex ciphertext to decrypt (defaults to stdin)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("iv")
	return cmd
}

func genkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genkey",
		Short: "Generate a random key and IV",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCLIService()
			if err != nil {
				return err
			}

			material, err := svc.GenerateKeyAndIV()
			if err != nil {
				return err
			}
			fmt.Printf("key: %s\n", material.KeyHex)
			fmt.Printf("iv:  %s\n", material.IVHex)
			return nil
		},
	}
}

func deriveCmd() *cobra.Command {
	var passphrase, saltHex string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a key and IV from a passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("--passphrase is required")
			}

			svc, err := newCLIService()
			if err != nil {
				return err
			}

			material, err := svc.DeriveKeyAndIV(passphrase, saltHex)
			if err != nil {
				return err
			}
			fmt.Printf("key:  %s\n", material.KeyHex)
			fmt.Printf("iv:   %s\n", material.IVHex)
			fmt.Printf("salt: %s\n", material.SaltHex)
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "passphrase to derive from (required)")
	cmd.Flags().StringVar(&saltHex, "salt", "", "hex-encoded salt (random when omitted)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			printBuildInfo()
		},
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

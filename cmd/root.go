// Package cmd implements the CLI commands for RecipePipe using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "recipepipe",
	Short: "RecipePipe — extract canonical recipes from messy sources",
	Long: `RecipePipe is a cascading extraction pipeline that turns recipe web pages,
PDF-extracted text, and OCR'd photo text into a single canonical recipe record.

Usage:
  recipepipe import <url> [flags]
  recipepipe import <textfile> [flags]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ./recipepipe.yaml if present)")
	rootCmd.PersistentFlags().String("log_level", "warn", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))
}

// initConfig wires viper: an explicit --config file must exist; the default
// ./recipepipe.yaml is optional. Config keys extend the tag-normalizer rule
// tables and set defaults for flags.
func initConfig() error {
	if flagConfig != "" {
		viper.SetConfigFile(flagConfig)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	viper.SetConfigName("recipepipe")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // optional
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// buildLogger constructs the CLI logger at the configured level.
func buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

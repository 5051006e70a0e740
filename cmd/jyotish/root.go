package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/jyotish/internal/analysis"
	"github.com/aristath/jyotish/internal/config"
	"github.com/aristath/jyotish/internal/utils"
	"github.com/aristath/jyotish/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "jyotish",
	Short:         "Vedic aspect and yoga analysis",
	Long:          "jyotish computes planetary aspects (drishti), aspect strength and yoga combinations for natal charts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", formatJSON, "output format: json or msgpack")
	rootCmd.PersistentFlags().StringP("output", "o", "-", "output file (- for stdout)")
	rootCmd.PersistentFlags().String("disable", "", "comma-separated yoga detectors to skip, added to YOGA_DISABLED")
	rootCmd.PersistentFlags().String("mode", "", "aspect mode override: hybrid, sign or degree")
}

// setup loads configuration, applies flag overrides and builds the logger
// and analysis service.
func setup(cmd *cobra.Command) (*config.Config, *analysis.Service, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}

	disable, _ := cmd.Flags().GetString("disable")
	cfg.DisabledYogas = append(cfg.DisabledYogas, utils.ParseCSV(disable)...)
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.DrishtiMode = mode
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})
	logger.SetGlobalLogger(log)

	service, err := analysis.NewService(cfg, log)
	if err != nil {
		return nil, nil, log, err
	}
	return cfg, service, log, nil
}

// emit writes v to the configured output in the configured format.
func emit(cmd *cobra.Command, v interface{}) error {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("output")

	if path == "-" || path == "" {
		return encode(cmd.OutOrStdout(), format, v)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := encode(f, format, v); err != nil {
		return err
	}
	return f.Close()
}

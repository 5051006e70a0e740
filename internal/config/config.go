// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aristath/jyotish/internal/drishti"
	"github.com/aristath/jyotish/internal/utils"
	"github.com/aristath/jyotish/internal/yoga"
)

// DefaultWorkers is the batch pool size used when ANALYSIS_WORKERS is 0.
const DefaultWorkers = 4

// Config holds application configuration
type Config struct {
	LogLevel  string
	LogPretty bool

	DrishtiMode           string
	DrishtiOrb            float64
	DrishtiConjunctionOrb float64
	IncludeOuterPlanets   bool
	NodeAspects           bool

	YogaConjunctionOrb float64
	DisabledYogas      []string // detector names, from YOGA_DISABLED

	Workers int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogPretty:             getEnvAsBool("LOG_PRETTY", true),
		DrishtiMode:           getEnv("DRISHTI_MODE", string(drishti.ModeHybrid)),
		DrishtiOrb:            getEnvAsFloat("DRISHTI_ORB", drishti.DefaultOrb),
		DrishtiConjunctionOrb: getEnvAsFloat("DRISHTI_CONJUNCTION_ORB", drishti.DefaultConjunctionOrb),
		IncludeOuterPlanets:   getEnvAsBool("DRISHTI_INCLUDE_OUTER", false),
		NodeAspects:           getEnvAsBool("DRISHTI_NODE_ASPECTS", false),
		YogaConjunctionOrb:    getEnvAsFloat("YOGA_CONJUNCTION_ORB", yoga.DefaultConjunctionOrb),
		DisabledYogas:         utils.ParseCSV(getEnv("YOGA_DISABLED", "")),
		Workers:               getEnvAsInt("ANALYSIS_WORKERS", DefaultWorkers),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		LogLevel:              "info",
		LogPretty:             true,
		DrishtiMode:           string(drishti.ModeHybrid),
		DrishtiOrb:            drishti.DefaultOrb,
		DrishtiConjunctionOrb: drishti.DefaultConjunctionOrb,
		YogaConjunctionOrb:    yoga.DefaultConjunctionOrb,
		Workers:               DefaultWorkers,
	}
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if _, err := c.Drishti(); err != nil {
		return fmt.Errorf("invalid aspect configuration: %w", err)
	}
	if c.YogaConjunctionOrb <= 0 || c.YogaConjunctionOrb > drishti.MaxOrb {
		return fmt.Errorf("YOGA_CONJUNCTION_ORB %.2f: %w", c.YogaConjunctionOrb, drishti.ErrInvalidOrb)
	}
	if c.Workers < 0 {
		return fmt.Errorf("ANALYSIS_WORKERS must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Drishti builds the aspect engine configuration.
func (c *Config) Drishti() (drishti.Config, error) {
	mode, err := drishti.ParseMode(c.DrishtiMode)
	if err != nil {
		return drishti.Config{}, err
	}
	cfg := drishti.Config{
		Mode:                mode,
		Orb:                 c.DrishtiOrb,
		ConjunctionOrb:      c.DrishtiConjunctionOrb,
		IncludeOuterPlanets: c.IncludeOuterPlanets,
		NodeSpecialAspects:  c.NodeAspects,
	}
	if err := cfg.Validate(); err != nil {
		return drishti.Config{}, err
	}
	return cfg, nil
}

// Yoga builds the detection options.
func (c *Config) Yoga() yoga.Options {
	return yoga.Options{ConjunctionOrb: c.YogaConjunctionOrb}
}

// WorkerCount resolves the batch pool size.
func (c *Config) WorkerCount() int {
	if c.Workers == 0 {
		return DefaultWorkers
	}
	return c.Workers
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

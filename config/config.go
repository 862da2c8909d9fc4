// Package config loads runtime settings for the icecross CLI and HTTP API
// from the environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/icecross/crossing"
)

// Environment variable names.
const (
	EnvAddr                = "ICECROSS_ADDR"
	EnvGinMode             = "ICECROSS_GIN_MODE"
	EnvLogLevel            = "ICECROSS_LOG_LEVEL"
	EnvMaxExhaustiveSteps  = "ICECROSS_MAX_EXHAUSTIVE_STEPS"
	EnvMaxCells            = "ICECROSS_MAX_CELLS"
	defaultAddr            = ":8080"
	defaultGinMode         = "release"
	defaultLogLevel        = "info"
	defaultExhaustiveSteps = 24
	defaultMaxCells        = 1_000_000
)

// ErrBadValue indicates an environment variable that cannot be parsed or is
// out of range.
var ErrBadValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Addr               string       // Address the HTTP API listens on
	GinMode            string       // Mode for the Gin framework (release, debug, test)
	LogLevel           logrus.Level // Minimum level written by the logger
	MaxExhaustiveSteps int          // Largest steps accepted for exhaustive requests
	MaxCells           int          // Largest rows×columns accepted by the API
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:               defaultAddr,
		GinMode:            defaultGinMode,
		LogLevel:           logrus.InfoLevel,
		MaxExhaustiveSteps: defaultExhaustiveSteps,
		MaxCells:           defaultMaxCells,
	}
}

// Load reads .env files and then the environment. With no files named the
// working directory's .env is optional; named files must exist and parse.
// Missing variables fall back to Default; malformed ones return ErrBadValue.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("config: loading %v: %w", files, err)
	}

	cfg := Default()
	cfg.Addr = getEnvWithDefault(EnvAddr, defaultAddr)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, defaultGinMode)

	lvl, err := logrus.ParseLevel(getEnvWithDefault(EnvLogLevel, defaultLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %v: %w", EnvLogLevel, err, ErrBadValue)
	}
	cfg.LogLevel = lvl

	if cfg.MaxExhaustiveSteps, err = getEnvAsInt(EnvMaxExhaustiveSteps, defaultExhaustiveSteps); err != nil {
		return Config{}, err
	}
	if cfg.MaxExhaustiveSteps < 0 || cfg.MaxExhaustiveSteps > crossing.MaxExhaustiveSteps {
		return Config{}, fmt.Errorf("config: %s=%d outside [0,%d]: %w",
			EnvMaxExhaustiveSteps, cfg.MaxExhaustiveSteps, crossing.MaxExhaustiveSteps, ErrBadValue)
	}

	if cfg.MaxCells, err = getEnvAsInt(EnvMaxCells, defaultMaxCells); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells < 1 {
		return Config{}, fmt.Errorf("config: %s=%d must be positive: %w", EnvMaxCells, cfg.MaxCells, ErrBadValue)
	}

	return cfg, nil
}

// getEnvAsInt retrieves an integer environment variable or returns def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %v: %w", key, err, ErrBadValue)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

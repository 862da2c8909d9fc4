package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/icecross/config"
)

// unsetAll clears every icecross variable for the duration of the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvAddr, config.EnvGinMode, config.EnvLogLevel,
		config.EnvMaxExhaustiveSteps, config.EnvMaxCells,
	} {
		t.Setenv(key, "") // registers restore of the original value
		require.NoError(t, os.Unsetenv(key))
	}
}

// TestLoad_Defaults uses Default when nothing is set.
func TestLoad_Defaults(t *testing.T) {
	unsetAll(t)
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_FromEnvironment reads every variable.
func TestLoad_FromEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvGinMode, "debug")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvMaxExhaustiveSteps, "30")
	t.Setenv(config.EnvMaxCells, "400")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Addr:               "127.0.0.1:9000",
		GinMode:            "debug",
		LogLevel:           logrus.WarnLevel,
		MaxExhaustiveSteps: 30,
		MaxCells:           400,
	}, cfg)
}

// TestLoad_DotEnv reads values from a .env file without overriding the
// environment.
func TestLoad_DotEnv(t *testing.T) {
	unsetAll(t)
	t.Setenv(config.EnvGinMode, "test")

	path := filepath.Join(t.TempDir(), ".env")
	content := "ICECROSS_ADDR=:7070\nICECROSS_GIN_MODE=debug\nICECROSS_MAX_CELLS=99\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "test", cfg.GinMode, "environment wins over .env")
	assert.Equal(t, 99, cfg.MaxCells)
}

// TestLoad_BadValues rejects malformed or out-of-range settings.
func TestLoad_BadValues(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"LevelUnknown", config.EnvLogLevel, "chatty"},
		{"StepsNotInt", config.EnvMaxExhaustiveSteps, "many"},
		{"StepsTooLarge", config.EnvMaxExhaustiveSteps, "64"},
		{"StepsNegative", config.EnvMaxExhaustiveSteps, "-1"},
		{"CellsZero", config.EnvMaxCells, "0"},
		{"CellsNotInt", config.EnvMaxCells, "1e6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrBadValue)
		})
	}
}

// TestLoad_NamedFileMissing reports a named .env file that cannot be read.
func TestLoad_NamedFileMissing(t *testing.T) {
	unsetAll(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, config.ErrBadValue)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func baseConfig() *Config {
	return &Config{
		Env:          "development",
		LogLevel:     "info",
		Port:         "8088",
		AuthToken:    "MOCK-TOKEN",
		DBType:       "file",
		FileSessions: "data/timer_sessions.json",
		FileCache:    "data/insights_cache.json",
		InsightsTTL:  5 * time.Minute,
	}
}

func TestApplyFileOverlaysOnlySetValues(t *testing.T) {
	cfg := baseConfig()
	path := writeConfigFile(t, "port: \"9090\"\nlog_level: debug\n")

	require.NoError(t, cfg.applyFile(path))
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Keys the file leaves unset keep their env-derived values.
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5*time.Minute, cfg.InsightsTTL)
}

func TestApplyFileParsesTTLDurationString(t *testing.T) {
	cfg := baseConfig()
	path := writeConfigFile(t, "insights_ttl: 90s\n")
	require.NoError(t, cfg.applyFile(path))
	assert.Equal(t, 90*time.Second, cfg.InsightsTTL)

	path = writeConfigFile(t, "insights_ttl: \"15m\"\n")
	require.NoError(t, cfg.applyFile(path))
	assert.Equal(t, 15*time.Minute, cfg.InsightsTTL)
}

func TestApplyFileRejectsBadTTL(t *testing.T) {
	cfg := baseConfig()
	path := writeConfigFile(t, "insights_ttl: soon\n")
	err := cfg.applyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insights_ttl")
}

func TestApplyFileMissingFile(t *testing.T) {
	cfg := baseConfig()
	assert.Error(t, cfg.applyFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestValidateRejectsBadCombinations(t *testing.T) {
	cfg := baseConfig()
	require.NoError(t, cfg.Validate())

	pg := *cfg
	pg.DBType = "postgres"
	assert.Error(t, pg.Validate())

	badEnv := *cfg
	badEnv.Env = "qa"
	assert.Error(t, badEnv.Validate())

	noTTL := *cfg
	noTTL.InsightsTTL = 0
	assert.Error(t, noTTL.Validate())
}

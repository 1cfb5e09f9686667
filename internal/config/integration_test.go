package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, FormatText, cfg.Output.DefaultFormat)

	// Subsequent calls return the same instance.
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestConfigGetters(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = FormatJSON
	cfg.Output.Language = "ru"
	cfg.Engine.Concurrency = 8
	cfg.Logging.Level = "debug"

	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
	assert.Equal(t, "ru", GetLanguage())
	assert.Equal(t, 8, GetEngineConfig().Concurrency)
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvHome, dir)

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("home default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvHome, "")
		t.Setenv("HOME", home)

		got, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".fitreport"), got)
	})
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logPath := filepath.Join(t.TempDir(), "nested", "logs", "fitreport.log")
	GetGlobalConfig().Logging.File = logPath

	require.NoError(t, EnsureLogDir())
	info, err := os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

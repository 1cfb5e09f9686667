package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fitreport/internal/config"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML(t *testing.T) {
	t.Run("overlays present fields only", func(t *testing.T) {
		target := config.Default()
		path := writeOverlay(t, "output:\n  default_format: json\n")

		require.NoError(t, config.ShallowMergeYAML(target, path))

		assert.Equal(t, config.FormatJSON, target.Output.DefaultFormat)
		// Fields the overlay omits keep their current value.
		assert.Equal(t, "en", target.Output.Language)
		// Absent sections keep their defaults.
		assert.Equal(t, "info", target.Logging.Level)
		assert.Equal(t, config.DefaultConcurrency, target.Engine.Concurrency)
	})

	t.Run("empty file is a no-op", func(t *testing.T) {
		target := config.Default()
		path := writeOverlay(t, "# nothing here\n")

		require.NoError(t, config.ShallowMergeYAML(target, path))
		assert.Equal(t, config.Default(), target)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		target := config.Default()
		path := writeOverlay(t, "outptu:\n  default_format: json\n")

		err := config.ShallowMergeYAML(target, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outptu")
	})

	t.Run("type mismatch", func(t *testing.T) {
		target := config.Default()
		path := writeOverlay(t, "engine:\n  concurrency: lots\n")

		require.Error(t, config.ShallowMergeYAML(target, path))
		assert.Equal(t, config.DefaultConcurrency, target.Engine.Concurrency)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "unused"))
	})
}

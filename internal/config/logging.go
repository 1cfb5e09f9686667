package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"

	"github.com/rshade/fitreport/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Validate checks level and format names.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(lc.Level); err != nil {
			return fmt.Errorf("logging.level %q: %w", lc.Level, err)
		}
	}
	if lc.Format != "" && !slices.Contains([]string{logging.FormatJSON, logging.FormatConsole}, lc.Format) {
		return fmt.Errorf("logging.format %q must be %q or %q", lc.Format, logging.FormatJSON, logging.FormatConsole)
	}
	return nil
}

// ToLoggingConfig converts the config section into a logging.Config.
// A configured File switches output to the file; otherwise stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global config's logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}

// EnsureLogDir creates the parent directory of the configured log file.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

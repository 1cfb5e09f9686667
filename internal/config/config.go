// Package config loads, validates and saves the fitreport configuration
// file ($FITREPORT_HOME/config.yaml, default ~/.fitreport/config.yaml).
//
// Precedence, lowest to highest: built-in defaults, config file, environment
// variables, CLI flags. CLI flags are applied by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/fitreport/internal/engine"
	"github.com/rshade/fitreport/internal/logging"
	"github.com/rshade/fitreport/internal/workout"
)

// Environment variables read by New.
const (
	EnvHome            = "FITREPORT_HOME"
	EnvOutputFormat    = "FITREPORT_OUTPUT_FORMAT"
	EnvLanguage        = "FITREPORT_LANG"
	EnvConcurrency     = "FITREPORT_CONCURRENCY"
	EnvContinueOnError = "FITREPORT_CONTINUE_ON_ERROR"
)

// Output format names.
const (
	FormatText   = "text"
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Engine concurrency bounds.
const (
	DefaultConcurrency = engine.DefaultConcurrency
	MaxConcurrency     = engine.MaxConcurrency
)

const configFileName = "config.yaml"

// OutputFormats returns the accepted output format names.
func OutputFormats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatNDJSON}
}

// Config is the fitreport configuration.
type Config struct {
	Version string        `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`

	configPath string
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Language      string `yaml:"language"`
}

// EngineConfig controls how package lists are processed.
type EngineConfig struct {
	Concurrency     int  `yaml:"concurrency"`
	ContinueOnError bool `yaml:"continue_on_error"`
}

// Default returns the built-in configuration without touching disk or env.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Output: OutputConfig{
			DefaultFormat: FormatText,
			Language:      "en",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Engine: EngineConfig{
			Concurrency: DefaultConcurrency,
		},
	}
}

// New returns the default configuration overlaid with the config file (if
// present) and environment overrides. A malformed file is reported on
// stderr and ignored so that the CLI stays usable.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = PathIn(dir)
		if loadErr := cfg.loadFile(); loadErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", loadErr)
		}
	}

	if envErr := cfg.applyEnv(); envErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring environment override: %v\n", envErr)
	}
	return cfg
}

// Load reads the configuration from an explicit path. Unlike New it returns
// file errors and does not apply environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnv reads path like Load, then applies environment overrides.
// A missing file yields the defaults. Malformed numeric or boolean
// environment values are returned as errors.
func LoadWithEnv(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathIn returns the config file path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, configFileName)
}

func (c *Config) loadFile() error {
	if _, err := os.Stat(c.configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return ShallowMergeYAML(c, c.configPath)
}

// applyEnv overlays environment variables. A value that does not parse
// leaves the field unchanged and is reported in the returned error.
func (c *Config) applyEnv() error {
	var errs []error
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Output.Language = v
	}
	if v := os.Getenv(logging.EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logging.EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.Concurrency = n
		} else {
			errs = append(errs, fmt.Errorf("%s=%q is not an integer", EnvConcurrency, v))
		}
	}
	if v := os.Getenv(EnvContinueOnError); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Engine.ContinueOnError = b
		} else {
			errs = append(errs, fmt.Errorf("%s=%q is not a boolean", EnvContinueOnError, v))
		}
	}
	return errors.Join(errs...)
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the save location.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(OutputFormats(), c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of %v",
			c.Output.DefaultFormat, OutputFormats()))
	}
	if c.Output.Language != "" && !workout.IsSupportedLanguage(c.Output.Language) {
		errs = append(errs, fmt.Errorf("output.language %q is not supported (supported: %v)",
			c.Output.Language, workout.SupportedLanguages()))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Engine.Concurrency < 1 || c.Engine.Concurrency > MaxConcurrency {
		errs = append(errs, fmt.Errorf("engine.concurrency must be between 1 and %d, got %d",
			MaxConcurrency, c.Engine.Concurrency))
	}

	return errors.Join(errs...)
}

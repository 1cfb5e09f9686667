package config

import (
	"fmt"
	"strconv"
)

// GetValue returns a config value by dotted key, e.g. "output.default_format".
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case keyVersion:
		return c.Version, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.language":
		return c.Output.Language, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "engine.concurrency":
		return strconv.Itoa(c.Engine.Concurrency), nil
	case "engine.continue_on_error":
		return strconv.FormatBool(c.Engine.ContinueOnError), nil
	default:
		return "", fmt.Errorf("unknown config key %q (known: %v)", key, Keys())
	}
}

// Keys lists the dotted keys accepted by GetValue.
func Keys() []string {
	return []string{
		keyVersion,
		"output.default_format",
		"output.language",
		"logging.level",
		"logging.format",
		"logging.file",
		"engine.concurrency",
		"engine.continue_on_error",
	}
}

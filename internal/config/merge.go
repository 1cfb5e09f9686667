package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyVersion = "version"
	keyOutput  = "output"
	keyLogging = "logging"
	keyEngine  = "engine"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Fields set in an overlay section replace the target's;
// fields the overlay omits keep their current value. Unknown keys are
// rejected so typos surface early.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", overlayPath, err)
	}

	// An empty or comment-only file leaves target unchanged.
	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes a section over a copy of the current value and
// assigns it only when decoding succeeds.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		v := target.Version
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyOutput:
		v := target.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyEngine:
		v := target.Engine
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Engine = v
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

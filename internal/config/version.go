package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentConfigVersion is written into new config files.
const CurrentConfigVersion = "1.0.0"

// supportedConfigVersions is the semver range of config files this build reads.
const supportedConfigVersions = "^1.0.0"

// CheckVersion verifies that a config file version is readable by this
// build. An empty version is treated as current.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}

	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("config version %q: %w", v, err)
	}

	constraint, err := semver.NewConstraint(supportedConfigVersions)
	if err != nil {
		return fmt.Errorf("config version constraint: %w", err)
	}

	if !constraint.Check(version) {
		return fmt.Errorf("config version %s is not supported (want %s)", version, supportedConfigVersions)
	}
	return nil
}

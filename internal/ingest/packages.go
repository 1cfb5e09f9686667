// Package ingest reads tracker sensor packages from files, stdin, command-line
// arguments or the built-in sample set.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/fitreport/internal/logging"
)

// StdinPath is the path value that selects standard input.
const StdinPath = "-"

// ErrNoTag indicates a package without a workout tag.
var ErrNoTag = errors.New("package has no workout tag")

// Package is one raw sensor reading: a workout tag and its positional
// arguments. Tags are not validated here; dispatch happens in the workout
// package.
type Package struct {
	Type string    `yaml:"type" json:"type"`
	Data []float64 `yaml:"data" json:"data"`

	// Source locates the package in its input, e.g. "day1.txt:3".
	Source string `yaml:"-" json:"source,omitempty"`
}

// String renders the package as "TAG [args]".
func (p Package) String() string {
	return fmt.Sprintf("%s %v", p.Type, p.Data)
}

// PackageFile is the document shape of a YAML or JSON package file.
type PackageFile struct {
	Packages []Package `yaml:"packages"`
}

// SamplePackages returns the reference readings shipped with the tracker.
func SamplePackages() []Package {
	return []Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}, Source: "sample:1"},
		{Type: "RUN", Data: []float64{15000, 1, 75}, Source: "sample:2"},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}, Source: "sample:3"},
	}
}

// IsStructured reports whether path is parsed as YAML/JSON rather than text.
func IsStructured(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// LoadPackages reads packages from path. "-" reads text from stdin.
func LoadPackages(ctx context.Context, path string, stdin io.Reader) ([]Package, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_packages").
		Str("path", path).
		Msg("loading packages")

	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return ParsePackagesText(ctx, stdin, "stdin")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Err(err).
			Str("path", path).
			Msg("failed to read package file")
		return nil, fmt.Errorf("reading package file: %w", err)
	}

	if IsStructured(path) {
		return ParsePackagesYAML(ctx, data, filepath.Base(path))
	}
	return ParsePackagesText(ctx, bytes.NewReader(data), filepath.Base(path))
}

// ParsePackagesYAML parses a YAML or JSON document that is either a
// PackageFile mapping or a bare list of packages.
func ParsePackagesYAML(ctx context.Context, data []byte, source string) ([]Package, error) {
	log := logging.FromContext(ctx)

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "ingest").
			Str("operation", "parse_yaml").
			Err(err).
			Msg("failed to parse package document")
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	// Empty document.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	var packages []Package
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&packages); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
	case yaml.MappingNode:
		var file PackageFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
		packages = file.Packages
	default:
		return nil, fmt.Errorf("parsing %s: expected a list of packages or a packages: mapping", source)
	}

	for i := range packages {
		packages[i].Type = strings.TrimSpace(packages[i].Type)
		packages[i].Source = fmt.Sprintf("%s#%d", source, i+1)
		if packages[i].Type == "" {
			return nil, fmt.Errorf("%s: %w", packages[i].Source, ErrNoTag)
		}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("source", source).
		Int("package_count", len(packages)).
		Msg("packages parsed")

	return packages, nil
}

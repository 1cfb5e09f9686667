package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rshade/fitreport/internal/logging"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 * 1024

// ParsePackagesText parses line-oriented input: one package per line as
// "TAG n1 n2 ...", fields separated by whitespace or commas. Blank lines and
// lines starting with '#' are skipped.
func ParsePackagesText(ctx context.Context, r io.Reader, source string) ([]Package, error) {
	log := logging.FromContext(ctx)

	var packages []Package
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pkg, err := ParseFields(splitFields(line))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, lineNo, err)
		}
		pkg.Source = fmt.Sprintf("%s:%d", source, lineNo)
		packages = append(packages, pkg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_text").
		Str("source", source).
		Int("lines", lineNo).
		Int("package_count", len(packages)).
		Msg("packages parsed")

	return packages, nil
}

// ParseFields builds a package from a tag followed by numeric fields, as
// given on the command line.
func ParseFields(fields []string) (Package, error) {
	if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
		return Package{}, ErrNoTag
	}

	pkg := Package{Type: strings.TrimSpace(fields[0]), Data: make([]float64, 0, len(fields)-1)}
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Package{}, fmt.Errorf("argument %d of %s: %q is not a number", i+1, pkg.Type, f)
		}
		pkg.Data = append(pkg.Data, v)
	}
	return pkg, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Package engine turns batches of sensor packages into workout reports.
//
// Packages are summarized concurrently up to a configurable limit; results
// always come back in input order. By default the first failing package
// aborts the run. With ContinueOnError every package is attempted and the
// failures are returned alongside the reports.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/fitreport/internal/ingest"
	"github.com/rshade/fitreport/internal/logging"
	"github.com/rshade/fitreport/internal/workout"
)

// Concurrency bounds.
const (
	DefaultConcurrency = 4
	MaxConcurrency     = 64
)

// ErrNoPackages is returned when a run is started with an empty batch.
var ErrNoPackages = errors.New("no packages to summarize")

// Observer receives run events. metrics.Recorder implements it.
type Observer interface {
	ObserveReport(report workout.Report)
	ObserveFailure(err error)
	ObserveRun(elapsed time.Duration, packages int)
}

// Options configures an Engine.
type Options struct {
	Concurrency     int
	ContinueOnError bool
	Observer        Observer
}

// Engine summarizes packages.
type Engine struct {
	concurrency     int
	continueOnError bool
	observer        Observer
}

// New creates an Engine. Concurrency outside [1, MaxConcurrency] is clamped.
func New(opts Options) *Engine {
	c := opts.Concurrency
	switch {
	case c < 1:
		c = DefaultConcurrency
	case c > MaxConcurrency:
		c = MaxConcurrency
	}
	return &Engine{
		concurrency:     c,
		continueOnError: opts.ContinueOnError,
		observer:        opts.Observer,
	}
}

// Concurrency returns the effective worker limit.
func (e *Engine) Concurrency() int {
	return e.concurrency
}

// PackageError ties a summarize failure to the package that caused it.
type PackageError struct {
	Index   int
	Package ingest.Package
	Err     error
}

func (e *PackageError) Error() string {
	loc := e.Package.Source
	if loc == "" {
		loc = fmt.Sprintf("package %d", e.Index+1)
	}
	return fmt.Sprintf("%s (%s): %v", loc, e.Package.Type, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// Result is the outcome for one package.
type Result struct {
	Index   int
	Package ingest.Package
	Report  workout.Report
	Err     error
}

// OK reports whether the package was summarized.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary is the outcome of a run.
type Summary struct {
	// Results has one entry per input package, in input order.
	Results  []Result
	Failures []*PackageError
	Stats    Stats
}

// Reports returns the successful reports in input order.
func (s *Summary) Reports() []workout.Report {
	out := make([]workout.Report, 0, len(s.Results))
	for _, r := range s.Results {
		if r.OK() {
			out = append(out, r.Report)
		}
	}
	return out
}

// HasFailures reports whether any package failed.
func (s *Summary) HasFailures() bool {
	return len(s.Failures) > 0
}

// Run summarizes pkgs. In fail-fast mode the returned error is the
// *PackageError of the lowest-index failing package and the Summary is nil.
func (e *Engine) Run(ctx context.Context, pkgs []ingest.Package) (*Summary, error) {
	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "run").
		Int("package_count", len(pkgs)).
		Int("concurrency", e.concurrency).
		Bool("continue_on_error", e.continueOnError).
		Msg("summarizing packages")

	progress := NewProgress(len(pkgs))
	results := make([]Result, len(pkgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, pkg := range pkgs {
		// Stop scheduling once a failure or the caller cancelled.
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = e.summarizeOne(i, pkg)
			progress.Add(results[i].OK())
			if !results[i].OK() && !e.continueOnError {
				return results[i].Err
			}
			return nil
		})
	}
	groupErr := g.Wait()

	stats := progress.Snapshot()
	if e.observer != nil {
		e.observer.ObserveRun(stats.Elapsed, len(pkgs))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("summarizing packages: %w", err)
	}

	summary := &Summary{Results: results, Stats: stats}
	for i := range results {
		if results[i].Err != nil {
			var pkgErr *PackageError
			if errors.As(results[i].Err, &pkgErr) {
				summary.Failures = append(summary.Failures, pkgErr)
			}
		}
	}

	if groupErr != nil {
		// Scheduling is in index order, so the lowest failing index always ran.
		first := summary.Failures[0]
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Int("index", first.Index).
			Err(first.Err).
			Msg("run aborted on first failure")
		return nil, first
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Int("succeeded", stats.Succeeded).
		Int("failed", stats.Failed).
		Dur("elapsed", stats.Elapsed).
		Msg("packages summarized")

	return summary, nil
}

func (e *Engine) summarizeOne(i int, pkg ingest.Package) Result {
	res := Result{Index: i, Package: pkg}
	report, err := workout.CreateRecordAndReport(pkg.Type, pkg.Data)
	if err != nil {
		res.Err = &PackageError{Index: i, Package: pkg, Err: err}
		if e.observer != nil {
			e.observer.ObserveFailure(err)
		}
		return res
	}
	res.Report = report
	if e.observer != nil {
		e.observer.ObserveReport(report)
	}
	return res
}

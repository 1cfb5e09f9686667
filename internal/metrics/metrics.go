// Package metrics counts report runs in a private Prometheus registry and
// exports them in the node_exporter textfile format.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/fitreport/internal/workout"
)

const namespace = "fitreport"

// Failure reasons used as the "reason" label.
const (
	ReasonUnrecognizedKind = "unrecognized_kind"
	ReasonArityMismatch    = "arity_mismatch"
	ReasonInvalidInput     = "invalid_input"
	ReasonOverflow         = "overflow"
	ReasonOther            = "other"
)

// Recorder holds the collectors for one process. The zero value is not
// usable; call NewRecorder.
type Recorder struct {
	registry *prometheus.Registry

	reports      *prometheus.CounterVec
	failures     *prometheus.CounterVec
	distance     *prometheus.CounterVec
	calories     *prometheus.CounterVec
	runDuration  prometheus.Histogram
	lastPackages prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "reports_total",
			Help:      "Number of workout reports produced, by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "package_failures_total",
			Help:      "Number of packages that could not be summarized, by reason.",
		}, []string{"reason"}),
		distance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "distance_km_total",
			Help:      "Distance covered across reported workouts, by kind.",
		}, []string{"kind"}),
		calories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "calories_kcal_total",
			Help:      "Calories burned across reported workouts, by kind.",
		}, []string{"kind"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Time spent summarizing one batch of packages.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		lastPackages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "last_run_packages",
			Help:      "Number of packages in the most recent run.",
		}),
	}

	r.registry.MustRegister(r.reports, r.failures, r.distance, r.calories, r.runDuration, r.lastPackages)
	return r
}

// Registry exposes the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveReport counts one successful report.
func (r *Recorder) ObserveReport(report workout.Report) {
	kind := report.Kind.Tag()
	r.reports.WithLabelValues(kind).Inc()
	// Counters reject negative values; reports are validated positive.
	if report.DistanceKm >= 0 {
		r.distance.WithLabelValues(kind).Add(report.DistanceKm)
	}
	if report.CaloriesKcal >= 0 {
		r.calories.WithLabelValues(kind).Add(report.CaloriesKcal)
	}
}

// ObserveFailure counts one failed package.
func (r *Recorder) ObserveFailure(err error) {
	r.failures.WithLabelValues(Reason(err)).Inc()
}

// ObserveRun records the duration and size of a finished run.
func (r *Recorder) ObserveRun(elapsed time.Duration, packages int) {
	r.runDuration.Observe(elapsed.Seconds())
	r.lastPackages.Set(float64(packages))
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

// Reason maps a summarize error to a failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnrecognizedKind):
		return ReasonUnrecognizedKind
	case errors.Is(err, workout.ErrArityMismatch):
		return ReasonArityMismatch
	case errors.Is(err, workout.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, workout.ErrCalculationOverflow):
		return ReasonOverflow
	default:
		return ReasonOther
	}
}

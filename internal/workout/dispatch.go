package workout

import (
	"fmt"
	"math"
)

// KindInfo describes a supported workout kind for listings.
type KindInfo struct {
	Kind     Kind     `json:"kind"`
	Tag      string   `json:"tag"`
	Name     string   `json:"name"`
	ArgNames []string `json:"args"`
}

// Kinds returns the supported workout kinds in tag-table order.
func Kinds() []KindInfo {
	kinds := []Kind{KindSwimming, KindRunning, KindWalking}
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{Kind: k, Tag: k.Tag(), Name: k.String(), ArgNames: k.ArgNames()})
	}
	return out
}

// ParseKind maps a package tag to its Kind. Matching is exact: tags are
// upper-case as emitted by the tracker.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case TagSwimming:
		return KindSwimming, nil
	case TagRunning:
		return KindRunning, nil
	case TagWalking:
		return KindWalking, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedKind, tag)
	}
}

// ReadPackage constructs the Training for a sensor package. Arguments are
// positional in the order given by Kind.ArgNames; integer fields (action,
// lap count) must hold whole numbers.
func ReadPackage(tag string, args []float64) (Training, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, err
	}

	if len(args) != kind.Arity() {
		return nil, fmt.Errorf("%w: %s expects %d arguments %v, got %d",
			ErrArityMismatch, tag, kind.Arity(), kind.ArgNames(), len(args))
	}

	action, err := count("action", args[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	var t Training
	switch kind {
	case KindRunning:
		t, err = NewRunning(action, args[1], args[2])
	case KindWalking:
		t, err = NewWalking(action, args[1], args[2], args[3])
	case KindSwimming:
		laps, lapErr := count("pool_lap_count", args[4])
		if lapErr != nil {
			return nil, fmt.Errorf("%s: %w", tag, lapErr)
		}
		t, err = NewSwimming(action, args[1], args[2], args[3], laps)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return t, nil
}

// Summarize computes the report for a training. It re-validates the input so
// that zero-value or hand-built trainings cannot yield Inf or NaN figures.
func Summarize(t Training) (Report, error) {
	if t == nil {
		return Report{}, fmt.Errorf("%w: nil training", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{
		Kind:          t.Kind(),
		KindName:      t.Kind().String(),
		DurationHours: t.Base().DurationHours,
		DistanceKm:    t.Distance(),
		MeanSpeedKmh:  t.MeanSpeed(),
		CaloriesKcal:  t.SpentCalories(),
	}

	for _, v := range []float64{report.DistanceKm, report.MeanSpeedKmh, report.CaloriesKcal} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Report{}, fmt.Errorf("%w: %s", ErrCalculationOverflow, report.KindName)
		}
	}

	return report, nil
}

// CreateRecordAndReport reads a sensor package and summarizes it. On error
// the returned Report is the zero value and must not be used.
func CreateRecordAndReport(tag string, args []float64) (Report, error) {
	t, err := ReadPackage(tag, args)
	if err != nil {
		return Report{}, err
	}
	return Summarize(t)
}

// count converts a float package argument to a non-negative whole number.
func count(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidInput, field, v)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidInput, field, v)
	}
	if v < 0 || v > MaxCount {
		return 0, fmt.Errorf("%w: %s must be in [0, %d], got %v", ErrInvalidInput, field, MaxCount, v)
	}
	return int(v), nil
}

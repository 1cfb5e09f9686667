// Package workout computes summary statistics for fitness-tracker sessions.
//
// A sensor package is a (tag, args) pair such as ("RUN", [15000, 1, 75]).
// ReadPackage turns it into one of the Training variants (Running, Walking,
// Swimming); Summarize derives distance, mean speed and spent calories and
// returns an immutable Report that renders to a fixed text template.
package workout

import (
	"fmt"
	"math"
)

// Kind identifies a workout type and therefore the formula set applied to it.
type Kind int

const (
	// KindRunning is a running session; action counts steps.
	KindRunning Kind = iota

	// KindWalking is a sports-walking session; action counts steps.
	KindWalking

	// KindSwimming is a pool swimming session; action counts strokes.
	KindSwimming
)

// Package tags as emitted by the tracker.
const (
	TagRunning  = "RUN"
	TagWalking  = "WLK"
	TagSwimming = "SWM"
)

// String returns the training name used in reports.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tag returns the tracker package tag for the kind, or "" for an unknown kind.
func (k Kind) Tag() string {
	switch k {
	case KindRunning:
		return TagRunning
	case KindWalking:
		return TagWalking
	case KindSwimming:
		return TagSwimming
	default:
		return ""
	}
}

// ArgNames returns the positional argument names a package of this kind carries.
func (k Kind) ArgNames() []string {
	switch k {
	case KindRunning:
		return []string{"action", "duration_h", "weight_kg"}
	case KindWalking:
		return []string{"action", "duration_h", "weight_kg", "height_cm"}
	case KindSwimming:
		return []string{"action", "duration_h", "weight_kg", "pool_length_m", "pool_lap_count"}
	default:
		return nil
	}
}

// Arity returns the number of positional package arguments for the kind.
func (k Kind) Arity() int {
	return len(k.ArgNames())
}

// MarshalText encodes the kind as its package tag.
func (k Kind) MarshalText() ([]byte, error) {
	tag := k.Tag()
	if tag == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedKind, int(k))
	}
	return []byte(tag), nil
}

// UnmarshalText decodes a package tag.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Record holds the inputs shared by every workout kind.
type Record struct {
	// Action is the number of steps or strokes.
	Action int `json:"action"`

	// DurationHours is the session length in hours.
	DurationHours float64 `json:"duration_h"`

	// WeightKg is the athlete's body weight.
	WeightKg float64 `json:"weight_kg"`
}

// validate checks the shared preconditions. Duration must be strictly
// positive because every mean-speed formula divides by it.
func (r Record) validate() error {
	if r.Action < 0 || r.Action > MaxCount {
		return fmt.Errorf("%w: action must be in [0, %d], got %d", ErrInvalidInput, MaxCount, r.Action)
	}
	if err := positive("duration_h", r.DurationHours); err != nil {
		return err
	}
	return positive("weight_kg", r.WeightKg)
}

// distance is the action-based distance in km for the given step length.
func (r Record) distance(stepLengthM float64) float64 {
	return float64(r.Action) * stepLengthM / MetersInKm
}

// durationMinutes returns the session length in minutes.
func (r Record) durationMinutes() float64 {
	return r.DurationHours * MinutesInHour
}

// positive returns ErrInvalidInput unless v is finite and > 0.
func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidInput, field, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidInput, field, v)
	}
	return nil
}

// Training is a validated workout of one of the three kinds.
//
// The interface is sealed: only Running, Walking and Swimming implement it.
type Training interface {
	// Kind reports which formula set applies.
	Kind() Kind

	// Base returns the shared inputs.
	Base() Record

	// Distance returns the covered distance in km.
	Distance() float64

	// MeanSpeed returns the average speed over the session in km/h.
	MeanSpeed() float64

	// SpentCalories returns the energy spent in kcal.
	SpentCalories() float64

	// Validate checks the kind-specific preconditions.
	Validate() error

	sealed()
}

// Report is the derived summary of one workout. It is created once per
// calculation and never mutated.
type Report struct {
	// Kind is the workout kind; encodes as its package tag in JSON.
	Kind Kind `json:"kind"`

	// KindName is the training name printed in the report.
	KindName string `json:"kind_name"`

	// DurationHours echoes the session length.
	DurationHours float64 `json:"duration_h"`

	// DistanceKm is the covered distance.
	DistanceKm float64 `json:"distance_km"`

	// MeanSpeedKmh is the average speed.
	MeanSpeedKmh float64 `json:"mean_speed_kmh"`

	// CaloriesKcal is the energy spent.
	CaloriesKcal float64 `json:"calories_kcal"`
}

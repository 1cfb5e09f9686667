package workout

import "fmt"

// Swimming is a pool swimming session.
//
// Distance is stroke-based, while mean speed is derived from pool length and
// lap count; the two are independent measurements and may disagree.
type Swimming struct {
	Record

	// PoolLengthM is the length of one pool lap.
	PoolLengthM float64 `json:"pool_length_m"`

	// PoolLapCount is the number of laps swum.
	PoolLapCount int `json:"pool_lap_count"`
}

// NewSwimming builds a validated swimming session.
func NewSwimming(action int, durationHours, weightKg, poolLengthM float64, poolLapCount int) (Swimming, error) {
	s := Swimming{
		Record:       Record{Action: action, DurationHours: durationHours, WeightKg: weightKg},
		PoolLengthM:  poolLengthM,
		PoolLapCount: poolLapCount,
	}
	if err := s.Validate(); err != nil {
		return Swimming{}, err
	}
	return s, nil
}

// Kind implements Training.
func (Swimming) Kind() Kind { return KindSwimming }

// Base implements Training.
func (s Swimming) Base() Record { return s.Record }

// Validate implements Training.
func (s Swimming) Validate() error {
	if err := s.validate(); err != nil {
		return err
	}
	if err := positive("pool_length_m", s.PoolLengthM); err != nil {
		return fmt.Errorf("swimming: %w", err)
	}
	if s.PoolLapCount < 0 || s.PoolLapCount > MaxCount {
		return fmt.Errorf("swimming: %w: pool_lap_count must be in [0, %d], got %d",
			ErrInvalidInput, MaxCount, s.PoolLapCount)
	}
	return nil
}

// Distance returns strokes times stroke length, in km.
func (s Swimming) Distance() float64 { return s.distance(StrokeLengthM) }

// MeanSpeed returns pool distance over duration, in km/h.
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLengthM * float64(s.PoolLapCount) / MetersInKm / s.DurationHours
}

// SpentCalories implements the swimming calorie model.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimSpeedShift) * SwimWeightMultiplier * s.WeightKg * s.DurationHours
}

func (Swimming) sealed() {}

package workout

import "fmt"

// Walking is a sports-walking session. Height enters the calorie model.
type Walking struct {
	Record

	// HeightCm is the athlete's height.
	HeightCm float64 `json:"height_cm"`
}

// NewWalking builds a validated walking session.
func NewWalking(action int, durationHours, weightKg, heightCm float64) (Walking, error) {
	w := Walking{
		Record:   Record{Action: action, DurationHours: durationHours, WeightKg: weightKg},
		HeightCm: heightCm,
	}
	if err := w.Validate(); err != nil {
		return Walking{}, err
	}
	return w, nil
}

// Kind implements Training.
func (Walking) Kind() Kind { return KindWalking }

// Base implements Training.
func (w Walking) Base() Record { return w.Record }

// Validate implements Training. Height divides the speed term, so it must be > 0.
func (w Walking) Validate() error {
	if err := w.validate(); err != nil {
		return err
	}
	if err := positive("height_cm", w.HeightCm); err != nil {
		return fmt.Errorf("walking: %w", err)
	}
	return nil
}

// Distance returns steps times stride length, in km.
func (w Walking) Distance() float64 { return w.distance(StepLengthM) }

// MeanSpeed returns distance over duration, in km/h.
func (w Walking) MeanSpeed() float64 { return w.Distance() / w.DurationHours }

// SpentCalories implements the walking calorie model. Speed is converted
// to m/s and height to meters before use.
func (w Walking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * KmhToMs
	heightM := w.HeightCm / CentimetersInMeter
	return (WalkWeightFactor*w.WeightKg +
		(speedMs*speedMs/heightM)*WalkSpeedHeightFactor*w.WeightKg) *
		w.durationMinutes()
}

func (Walking) sealed() {}

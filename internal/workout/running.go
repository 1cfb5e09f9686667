package workout

// Running is a running session.
type Running struct {
	Record
}

// NewRunning builds a validated running session.
func NewRunning(action int, durationHours, weightKg float64) (Running, error) {
	r := Running{Record: Record{Action: action, DurationHours: durationHours, WeightKg: weightKg}}
	if err := r.Validate(); err != nil {
		return Running{}, err
	}
	return r, nil
}

// Kind implements Training.
func (Running) Kind() Kind { return KindRunning }

// Base implements Training.
func (r Running) Base() Record { return r.Record }

// Validate implements Training.
func (r Running) Validate() error { return r.validate() }

// Distance returns steps times stride length, in km.
func (r Running) Distance() float64 { return r.distance(StepLengthM) }

// MeanSpeed returns distance over duration, in km/h.
func (r Running) MeanSpeed() float64 { return r.Distance() / r.DurationHours }

// SpentCalories implements the running calorie model.
func (r Running) SpentCalories() float64 {
	return (RunSpeedMultiplier*r.MeanSpeed() + RunSpeedShift) *
		r.WeightKg / MetersInKm * r.durationMinutes()
}

func (Running) sealed() {}

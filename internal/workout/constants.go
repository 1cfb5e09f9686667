package workout

// Unit conversion constants shared by every workout kind.
const (
	// MetersInKm converts meters to kilometers.
	MetersInKm = 1000.0

	// MinutesInHour converts hours to minutes.
	MinutesInHour = 60.0

	// CentimetersInMeter converts centimeters to meters.
	CentimetersInMeter = 100.0

	// KmhToMs converts km/h to m/s. The factor is rounded to three places
	// (1 / 3.6 = 0.2777...) and is part of the calorie model, not a display
	// concern.
	KmhToMs = 0.278
)

// Step lengths drive the action-based distance formula:
//
//	distance_km = action * step_length_m / MetersInKm
const (
	// StepLengthM is the stride length used for running and walking.
	StepLengthM = 0.65

	// StrokeLengthM is the distance covered by one swimming stroke.
	StrokeLengthM = 1.38
)

// Running calorie model:
//
//	kcal = (RunSpeedMultiplier * speed_kmh + RunSpeedShift) * weight / MetersInKm * minutes
const (
	RunSpeedMultiplier = 18.0
	RunSpeedShift      = 1.79
)

// Walking calorie model:
//
//	kcal = (WalkWeightFactor * weight + (speed_ms^2 / height_m) * WalkSpeedHeightFactor * weight) * minutes
const (
	WalkWeightFactor      = 0.035
	WalkSpeedHeightFactor = 0.029
)

// Swimming calorie model:
//
//	kcal = (speed_kmh + SwimSpeedShift) * SwimWeightMultiplier * weight * hours
const (
	SwimSpeedShift       = 1.1
	SwimWeightMultiplier = 2.0
)

// Input bounds.
const (
	// MaxCount caps integer inputs (action, lap count) so float64 package
	// arguments convert to int without loss.
	MaxCount = 1<<31 - 1

	// ReportPrecision is the number of decimals in rendered report values.
	ReportPrecision = 3
)

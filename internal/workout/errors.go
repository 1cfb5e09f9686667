package workout

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for package dispatch and report calculation.
// Compare with errors.Is; returned errors wrap these with context.
var (
	// ErrUnrecognizedKind indicates a package tag that maps to no workout kind.
	ErrUnrecognizedKind = constError("unrecognized workout kind")

	// ErrArityMismatch indicates the wrong number of package arguments for a kind.
	ErrArityMismatch = constError("argument count mismatch")

	// ErrInvalidInput indicates an argument outside its domain, such as a
	// non-positive duration or height, which would make a formula undefined.
	ErrInvalidInput = constError("invalid workout input")

	// ErrCalculationOverflow indicates a formula produced Inf or NaN from
	// inputs that individually passed validation.
	ErrCalculationOverflow = constError("calculation overflow")
)

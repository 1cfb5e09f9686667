package cli

// ExitCodePartialFailure is returned when some packages could not be
// summarized under --continue-on-error.
const ExitCodePartialFailure = 2

// ExitError carries a process exit code from a command to main.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}

package main

import (
	"errors"
	"os"

	"github.com/rshade/fitreport/internal/cli"
	"github.com/rshade/fitreport/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(extractExitCode(err))
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps a command error to a process exit status.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

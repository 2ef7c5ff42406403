package cli

import (
	"errors"
	"fmt"
	"io"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// ExitError carries a process exit status along with the message to print.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode prints err to stderr and returns the status the process should
// exit with: 0 without error, the ExitError code, or 1.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

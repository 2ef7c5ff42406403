package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Result holds the output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external programs.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) (*Result, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct {
	// WorkingDir is the directory the command runs in; empty means the current one.
	WorkingDir string
}

// Run executes program and captures stdout and stderr. A non-zero exit
// status returns both the result and an error.
func (r ExecRunner) Run(ctx context.Context, program string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = r.WorkingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, fmt.Errorf("%s exited with code %d: %w", program, result.ExitCode, err)
		}
		result.ExitCode = -1
		return result, fmt.Errorf("failed to run %s: %w", program, err)
	}
	return result, nil
}

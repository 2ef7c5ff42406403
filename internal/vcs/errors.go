package vcs

import (
	"errors"
	"fmt"
)

// ErrNotRepository is returned by a Lister when the root is not inside a
// working copy of its VCS. Callers treat it as an empty tracked set.
var ErrNotRepository = errors.New("not under version control")

// ErrQuery is returned when the VCS tool or library itself failed.
var ErrQuery = errors.New("vcs query failed")

// ErrNotWorkingCopy is returned by WorkingCopyRoot when the path is not
// inside an SVN checkout.
var ErrNotWorkingCopy = errors.New("not a working copy")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// queryError marks err as an ErrQuery while keeping the cause reachable.
func queryError(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrQuery, fmt.Sprintf(format, args...), err)
}

package crap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidPath is returned when the scan root is missing or not a directory.
var ErrInvalidPath = errors.New("invalid path")

// Target is a resolved scan root.
type Target struct {
	// Abs is the absolute, symlink-free directory to scan.
	Abs string
	// Display is the cleaned caller argument used to prefix output paths.
	Display string
}

// Resolve turns the caller's path argument into a scan target. base is the
// directory relative arguments are resolved against.
func Resolve(base, arg string) (Target, error) {
	display := filepath.Clean(arg) // "" cleans to "."

	abs := display
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(base, display)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Target{}, fmt.Errorf("%w: '%s': %w", ErrInvalidPath, display, err)
	}
	if !info.IsDir() {
		return Target{}, fmt.Errorf("%w: '%s' is not a directory", ErrInvalidPath, display)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return Target{Abs: abs, Display: display}, nil
}

// Output maps a slash path relative to the scan root back into the caller's
// path style: bare for ".", otherwise prefixed by exactly one copy of Display.
func (t Target) Output(rel string) string {
	return filepath.Join(t.Display, filepath.FromSlash(rel))
}

// Join returns the absolute path of rel.
func (t Target) Join(rel string) string {
	return filepath.Join(t.Abs, filepath.FromSlash(rel))
}

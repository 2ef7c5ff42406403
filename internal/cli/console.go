package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	warnTag = color.New(color.FgYellow).SprintFunc()
	infoTag = color.New(color.FgCyan).SprintFunc()
)

// warnf writes a tagged warning line to w.
func warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warnTag("warning:"), fmt.Sprintf(format, args...))
}

// infof writes a tagged diagnostic line to w.
func infof(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", infoTag("info:"), fmt.Sprintf(format, args...))
}

// verboseLogger returns a printf-style logger writing to w, or nil when
// verbose output is off.
func verboseLogger(w io.Writer, verbose bool) func(string, ...interface{}) {
	if !verbose {
		return nil
	}
	return func(format string, args ...interface{}) {
		infof(w, format, args...)
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

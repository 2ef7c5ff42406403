// Command crap lists OS junk, zero-byte files or empty directories that are
// not tracked by an enclosing Git or SVN working copy.
package main

import (
	"os"

	"github.com/jadenpxrk/dotbin/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.ExitCode(cli.NewCrapCommand().Execute(), os.Stderr))
}

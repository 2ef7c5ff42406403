// Command svnroot prints the root of the SVN working copy containing a path.
package main

import (
	"os"

	"github.com/jadenpxrk/dotbin/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.ExitCode(cli.NewSVNRootCommand().Execute(), os.Stderr))
}

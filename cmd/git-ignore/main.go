// Command git-ignore creates or extends the .gitignore of the current
// repository. Installed in PATH it runs as `git ignore`.
package main

import (
	"os"

	"github.com/jadenpxrk/dotbin/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	os.Exit(cli.ExitCode(cli.NewGitIgnoreCommand().Execute(), os.Stderr))
}

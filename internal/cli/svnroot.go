package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jadenpxrk/dotbin/internal/vcs"
)

var errSVNRootUsage = errors.New("usage: svnroot [path]")

// NewSVNRootCommand creates the svnroot command.
func NewSVNRootCommand() *cobra.Command {
	return newSVNRootCommand(vcs.ExecRunner{})
}

func newSVNRootCommand(runner vcs.Runner) *cobra.Command {
	v := newConfig()
	var cfgFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "svnroot [path]",
		Short: "Print the root of the SVN working copy containing path",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &ExitError{Code: 1, Err: errSVNRootUsage}
			}
			return nil
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgFile, cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "."
			if len(args) > 0 && args[0] != "" {
				arg = args[0]
			}
			display := filepath.Clean(arg)

			dir := display
			if !filepath.IsAbs(dir) {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = filepath.Join(cwd, dir)
			}
			info, err := os.Stat(dir)
			if err != nil {
				return &ExitError{Code: 1, Err: errSVNRootUsage}
			}
			if !info.IsDir() {
				dir = filepath.Dir(dir)
			}

			root, err := vcs.WorkingCopyRoot(cmd.Context(), runner, v.GetString(keySVNBinary), dir)
			if err != nil {
				if errors.Is(err, vcs.ErrNotWorkingCopy) {
					return &ExitError{Code: 1, Err: fmt.Errorf("'%s' is not a working copy", display)}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dotbin/config)")
	return cmd
}

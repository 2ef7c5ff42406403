package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jadenpxrk/dotbin/internal/ignore"
)

// NewGitIgnoreCommand creates the git-ignore command, run by git as `git ignore`.
func NewGitIgnoreCommand() *cobra.Command {
	v := newConfig()
	var cfgFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "git-ignore [pattern...]",
		Short: "Create or extend the .gitignore of the current repository",
		Long: `git-ignore appends patterns to the .gitignore at the root of the current
work tree. A missing .gitignore is created, after confirmation, with a set of
default patterns for OS junk. Patterns already present are not added again.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgFile, cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			repo, err := ignore.OpenRepository(cwd)
			if err != nil {
				if errors.Is(err, ignore.ErrNotGitRepository) {
					return &ExitError{Code: 128, Err: err}
				}
				return err
			}

			defaults, err := ignore.LoadPatterns(v.GetString(keyPatternsFile))
			if err != nil {
				return err
			}

			prompter := ignore.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			res, err := repo.Update(prompter, defaults, args)
			if err != nil {
				return err
			}

			if verbose {
				stderr := cmd.ErrOrStderr()
				if len(res.Added) > 0 {
					infof(stderr, "added to %s: %s", repo.IgnoreFile().Path, strings.Join(res.Added, " "))
				}
				if res.Staged {
					infof(stderr, "%s staged", ignore.FileName)
				}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dotbin/config)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

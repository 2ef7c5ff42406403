package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jadenpxrk/dotbin/internal/crap"
)

type crapOptions struct {
	junk  bool
	zero  bool
	empty bool

	recursive   bool
	noRecursive bool
	skipIgnored bool

	tree        bool
	remove      bool
	interactive bool
	clipboard   bool

	verbose bool
	cfgFile string
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// NewCrapCommand creates the crap command.
func NewCrapCommand() *cobra.Command {
	v := newConfig()
	opts := &crapOptions{}

	cmd := &cobra.Command{
		Use:   "crap (-c|-z|-d) [path]",
		Short: "List OS junk, zero-byte files or empty directories",
		Long: `crap walks a directory tree and lists OS generated junk (.DS_Store,
Thumbs.db, .fseventsd ...), zero-byte files or empty directories.

Paths tracked by an enclosing Git or SVN working copy are never listed.
Output paths keep the style of the path argument.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, opts.cfgFile, cmd.ErrOrStderr(), opts.verbose); err != nil {
				return err
			}
			if opts.noRecursive {
				v.Set(keyRecursive, false)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return runCrap(cmd, opts, arg, crapRequest(opts, v),
				&crap.Finder{
					SVNBinary: v.GetString(keySVNBinary),
					ExtraJunk: v.GetStringSlice(keyJunk),
					Logf:      verboseLogger(cmd.ErrOrStderr(), opts.verbose),
				})
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.junk, "crap", "c", false, "List junk files and directories")
	flags.BoolVarP(&opts.zero, "zero", "z", false, "List zero-byte files")
	flags.BoolVarP(&opts.empty, "empty", "d", false, "List empty directories")
	cmd.MarkFlagsMutuallyExclusive("crap", "zero", "empty")
	cmd.MarkFlagsOneRequired("crap", "zero", "empty")

	flags.BoolVarP(&opts.recursive, "recursive", "r", true, "Scan subdirectories of path")
	_ = v.BindPFlag(keyRecursive, flags.Lookup("recursive"))
	flags.BoolVarP(&opts.noRecursive, "no-recursive", "R", false, "Only scan the immediate children of path (same as --recursive=false)")
	cmd.MarkFlagsMutuallyExclusive("recursive", "no-recursive")
	flags.BoolVar(&opts.skipIgnored, "skip-ignored", false, "Also skip paths matched by the repository .gitignore")
	_ = v.BindPFlag(keySkipIgnored, flags.Lookup("skip-ignored"))

	flags.BoolVar(&opts.tree, "tree", false, "Print matches as a tree")
	flags.BoolVar(&opts.remove, "delete", false, "Delete every match after listing it")
	flags.BoolVar(&opts.interactive, "interactive", false, "Pick the matches to delete with a fuzzy finder")
	flags.BoolVar(&opts.clipboard, "clipboard", false, "Copy the listing to the clipboard instead of printing it")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/dotbin/config)")

	return cmd
}

func crapRequest(opts *crapOptions, v *viper.Viper) crap.Request {
	req := crap.Request{
		Mode:        crap.JunkFiles,
		Recursive:   v.GetBool(keyRecursive),
		SkipIgnored: v.GetBool(keySkipIgnored),
	}
	switch {
	case opts.zero:
		req.Mode = crap.ZeroByteFiles
	case opts.empty:
		req.Mode = crap.EmptyDirectories
	}
	return req
}

func runCrap(cmd *cobra.Command, opts *crapOptions, arg string, req crap.Request, finder *crap.Finder) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("crap: %w", err)
	}

	res, err := finder.Find(cmd.Context(), cwd, arg, req)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("crap: %w", err)}
	}

	// Build the whole listing first so a failure never leaves partial output
	var out strings.Builder
	stdout := cmd.OutOrStdout()
	if opts.tree {
		err = crap.WriteTree(&out, res, isTerminal(stdout))
	} else {
		err = crap.WriteList(&out, res)
	}
	if err != nil {
		return fmt.Errorf("crap: %w", err)
	}

	if opts.clipboard {
		if err := copyToClipboard(out.String()); err != nil {
			warnf(cmd.ErrOrStderr(), "error writing to clipboard: %v", err)
			fmt.Fprint(stdout, out.String())
		} else if opts.verbose {
			infof(cmd.ErrOrStderr(), "%d paths copied to clipboard", len(res.Entries))
		}
	} else {
		fmt.Fprint(stdout, out.String())
	}

	if !opts.remove && !opts.interactive {
		return nil
	}

	selected := res.Entries
	if opts.interactive {
		selected, err = selectEntries(res)
		if err != nil {
			return fmt.Errorf("crap: %w", err)
		}
	}
	if len(selected) == 0 {
		return nil
	}
	if err := crap.Remove(osfs.New(res.Target.Abs), selected); err != nil {
		return fmt.Errorf("crap: %w", err)
	}
	if opts.verbose {
		infof(cmd.ErrOrStderr(), "removed %d paths", len(selected))
	}
	return nil
}

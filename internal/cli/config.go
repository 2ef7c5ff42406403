package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jadenpxrk/dotbin/internal/ignore"
	"github.com/jadenpxrk/dotbin/internal/vcs"
)

// Configuration keys shared by the commands.
const (
	keyRecursive    = "recursive"
	keySkipIgnored  = "skip_ignored"
	keyJunk         = "junk"
	keySVNBinary    = "svn.binary"
	keyPatternsFile = "gitignore.patterns_file"
)

// newConfig returns a viper instance holding the defaults.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyRecursive, true)
	v.SetDefault(keySkipIgnored, false)
	v.SetDefault(keyJunk, []string{})
	v.SetDefault(keySVNBinary, vcs.DefaultSVN)
	v.SetDefault(keyPatternsFile, ignore.DefaultPatternsPath())
	return v
}

// loadConfig reads the config file and DOTBIN_* environment variables.
// Precedence is default < config file < env < flag.
func loadConfig(v *viper.Viper, cfgFile string, stderr io.Writer, verbose bool) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home/.config/dotbin directory with name "config" (without extension).
			v.AddConfigPath(filepath.Join(home, ".config", "dotbin"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("DOTBIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile != "" {
			return fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		// Config file was found but another error was produced
		if verbose {
			warnf(stderr, "error reading config file: %v", err)
		}
		return nil
	}
	if verbose {
		infof(stderr, "using config file: %s", v.ConfigFileUsed())
	}
	return nil
}

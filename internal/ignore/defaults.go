package ignore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPatterns are written to a freshly created .gitignore.
var DefaultPatterns = []string{
	".DS_Store",
	"desktop.ini",
	"Thumbs.db",
	".DocumentRevisions-V100/",
	".fseventsd/",
	".Spotlight-V100/",
	".svn/",
	".TemporaryItems/",
	".Trash/",
	".Trashes/",
	"node_modules/",
}

// PatternFile is the YAML document overriding DefaultPatterns.
type PatternFile struct {
	Patterns []string `yaml:"patterns"`
}

// DefaultPatternsPath returns ~/.config/dotbin/gitignore.yml, or "" when the
// home directory is unknown.
func DefaultPatternsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dotbin", "gitignore.yml")
}

// LoadPatterns reads the default patterns from path. A missing file or an
// empty list yields DefaultPatterns.
func LoadPatterns(path string) ([]string, error) {
	if path == "" {
		return DefaultPatterns, nil
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPatterns, nil
		}
		return nil, fmt.Errorf("error reading pattern file %s: %w", path, err)
	}

	var pf PatternFile
	if err := yaml.Unmarshal(yamlFile, &pf); err != nil {
		return nil, fmt.Errorf("error parsing pattern file %s: %w", path, err)
	}
	if len(pf.Patterns) == 0 {
		return DefaultPatterns, nil
	}
	return pf.Patterns, nil
}

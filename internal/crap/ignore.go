package crap

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// rootedIgnore adapts a .gitignore matcher anchored at a repository root to
// paths relative to the scan root.
type rootedIgnore struct {
	matcher gitignore.IgnoreMatcher
	root    string
}

func (r rootedIgnore) Match(path string, isDir bool) bool {
	return r.matcher.Match(filepath.Join(r.root, filepath.FromSlash(path)), isDir)
}

// NewIgnorer wraps a matcher whose patterns are relative to repoRoot so it
// can be queried with paths relative to scanRoot.
func NewIgnorer(matcher gitignore.IgnoreMatcher, scanRoot string) Ignorer {
	return rootedIgnore{matcher: matcher, root: scanRoot}
}

// LoadIgnore parses the .gitignore at the root of a Git work tree. It returns
// nil without error when the file does not exist.
func LoadIgnore(repoRoot, scanRoot string) (Ignorer, error) {
	gitIgnorePath := filepath.Join(repoRoot, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not stat %s: %w", gitIgnorePath, err)
	}

	matcher, err := gitignore.NewGitIgnore(gitIgnorePath, repoRoot)
	if err != nil {
		return nil, fmt.Errorf("could not parse .gitignore file %s: %w", gitIgnorePath, err)
	}
	return NewIgnorer(matcher, scanRoot), nil
}

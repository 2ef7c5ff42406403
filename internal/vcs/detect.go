package vcs

import (
	"os"
	"path/filepath"
)

// Kind identifies the version control system controlling a directory.
type Kind int

const (
	None Kind = iota
	Git
	SVN
)

func (k Kind) String() string {
	switch k {
	case Git:
		return "git"
	case SVN:
		return "svn"
	default:
		return "none"
	}
}

// ControlDirs are the metadata directories that are never scanned.
var ControlDirs = []string{".git", ".svn"}

// IsControlDir reports whether name is a VCS metadata directory.
func IsControlDir(name string) bool {
	for _, d := range ControlDirs {
		if name == d {
			return true
		}
	}
	return false
}

// Context describes the working copy enclosing a directory.
type Context struct {
	Kind Kind
	Root string // working copy root, empty when Kind is None
}

// Detect searches dir and its ancestors for a .git or .svn entry.
// The nearest ancestor wins; Git wins when both live at the same level.
func Detect(dir string) Context {
	dir = filepath.Clean(dir)
	for {
		// .git may be a file for worktrees and submodules
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return Context{Kind: Git, Root: dir}
		}
		if info, err := os.Stat(filepath.Join(dir, ".svn")); err == nil && info.IsDir() {
			return Context{Kind: SVN, Root: dir}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Context{Kind: None}
		}
		dir = parent
	}
}

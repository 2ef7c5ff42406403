package crap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jadenpxrk/dotbin/internal/vcs"
)

// Ignorer matches paths relative to the scan root.
type Ignorer interface {
	Match(path string, isDir bool) bool
}

// Scanner walks a filesystem rooted at the scan root and classifies entries.
type Scanner struct {
	FS      billy.Filesystem
	Junk    *JunkSet
	Tracked vcs.TrackedSet
	Ignore  Ignorer // nil disables ignore filtering
}

// NewScanner returns a Scanner over fsys using the default junk names.
func NewScanner(fsys billy.Filesystem, tracked vcs.TrackedSet) *Scanner {
	return &Scanner{FS: fsys, Junk: NewJunkSet(), Tracked: tracked}
}

// Scan walks the tree and returns the matching entries in traversal order.
// Any filesystem error aborts the scan and no entries are returned.
func (s *Scanner) Scan(req Request) ([]Entry, error) {
	junk := s.Junk
	if junk == nil {
		junk = NewJunkSet()
	}

	var matches []Entry
	err := util.Walk(s.FS, ".", func(path string, info os.FileInfo, err error) error {
		walkErr := err
		if walkErr != nil && (path == "." || info == nil || !info.IsDir()) {
			return fmt.Errorf("error accessing path %s: %w", path, walkErr)
		}

		// Skip root directory itself
		if path == "." {
			return nil
		}

		entry := Entry{
			Path:  filepath.ToSlash(path),
			Name:  info.Name(),
			Size:  info.Size(),
			Mode:  info.Mode(),
			IsDir: info.IsDir(),
		}

		if entry.IsDir && vcs.IsControlDir(entry.Name) {
			return filepath.SkipDir
		}

		matched, descend, err := s.classify(entry, req.Mode, junk)
		if err != nil {
			return err
		}
		if matched {
			matches = append(matches, entry)
		}

		if entry.IsDir && (!descend || !req.Recursive) {
			return filepath.SkipDir
		}
		// An unreadable directory only fails the scan when its contents are needed
		if walkErr != nil {
			return fmt.Errorf("error accessing path %s: %w", path, walkErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return matches, nil
}

// classify applies the rules in precedence order. descend is only
// meaningful for directories.
func (s *Scanner) classify(e Entry, mode Mode, junk *JunkSet) (matched, descend bool, err error) {
	// 1. Tracked entries are never reported
	if s.Tracked.Contains(e.Path) {
		return false, true, nil
	}

	// 2. .gitignore
	if s.Ignore != nil && s.Ignore.Match(e.Path, e.IsDir) {
		return false, false, nil
	}

	switch mode {
	case JunkFiles:
		// 3. A junk directory is reported as a whole
		if junk.Match(e.Name) {
			return true, false, nil
		}
	case ZeroByteFiles:
		// 4. Exact size, regular files only
		if e.Mode.IsRegular() && e.Size == 0 {
			return true, true, nil
		}
	case EmptyDirectories:
		// 5. Nothing on disk
		if e.IsDir {
			children, err := s.FS.ReadDir(e.Path)
			if err != nil {
				return false, false, fmt.Errorf("error reading directory %s: %w", e.Path, err)
			}
			if len(children) == 0 {
				return true, true, nil
			}
		}
	}
	return false, true, nil
}

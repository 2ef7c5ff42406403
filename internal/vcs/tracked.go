package vcs

import (
	"context"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// TrackedSet holds slash-separated paths relative to a scan root.
type TrackedSet map[string]struct{}

// Add records p. Empty and "." paths are ignored.
func (s TrackedSet) Add(p string) {
	p = path.Clean(filepath.ToSlash(p))
	if p == "." || p == "" {
		return
	}
	s[p] = struct{}{}
}

// AddWithParents records p and every ancestor directory of p.
func (s TrackedSet) AddWithParents(p string) {
	p = path.Clean(filepath.ToSlash(p))
	for p != "." && p != "/" && p != "" {
		s[p] = struct{}{}
		p = path.Dir(p)
	}
}

// Contains reports whether p is tracked.
func (s TrackedSet) Contains(p string) bool {
	_, ok := s[path.Clean(filepath.ToSlash(p))]
	return ok
}

// Len returns the number of tracked paths.
func (s TrackedSet) Len() int {
	return len(s)
}

// Paths returns the tracked paths sorted.
func (s TrackedSet) Paths() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Lister lists the paths known to a VCS beneath root, relative to root.
// It returns ErrNotRepository when root is not under its control.
type Lister interface {
	ListTracked(ctx context.Context, root string) (TrackedSet, error)
}

// relativeTo converts p (relative to base) into a path relative to root,
// where root lies inside base. ok is false when p is outside root.
func relativeTo(base, root, p string) (string, bool) {
	prefix, err := filepath.Rel(base, root)
	if err != nil {
		return "", false
	}
	prefix = filepath.ToSlash(prefix)
	p = path.Clean(filepath.ToSlash(p))
	if prefix == "." {
		return p, true
	}
	if p == prefix {
		return ".", true
	}
	rel := strings.TrimPrefix(p, prefix+"/")
	if rel == p {
		return "", false
	}
	return rel, true
}

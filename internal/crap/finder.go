package crap

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jadenpxrk/dotbin/internal/vcs"
)

// Finder resolves a path, collects the tracked set of its working copy and
// scans it.
type Finder struct {
	// Detect locates the enclosing working copy. Defaults to vcs.Detect.
	Detect func(dir string) vcs.Context
	// Lister returns the tracked-set adapter for a context. Defaults to
	// vcs.ListerFor with SVNBinary.
	Lister func(c vcs.Context) vcs.Lister
	// Filesystem opens the scan root. Defaults to osfs.
	Filesystem func(root string) billy.Filesystem

	SVNBinary string
	ExtraJunk []string
	// Logf receives diagnostics; nil discards them.
	Logf func(format string, args ...interface{})
}

// Result is the outcome of a successful scan.
type Result struct {
	Target  Target
	VCS     vcs.Context
	Tracked vcs.TrackedSet
	Entries []Entry
}

// Paths returns the matches in the caller's path style.
func (r *Result) Paths() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = r.Target.Output(e.Path)
	}
	return out
}

func (f *Finder) logf(format string, args ...interface{}) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}

// Find scans arg, resolved against base, for entries matching req.
func (f *Finder) Find(ctx context.Context, base, arg string, req Request) (*Result, error) {
	target, err := Resolve(base, arg)
	if err != nil {
		return nil, err
	}

	detect := f.Detect
	if detect == nil {
		detect = vcs.Detect
	}
	wc := detect(target.Abs)
	f.logf("scanning %s (%s mode, vcs: %s)", target.Abs, req.Mode, wc.Kind)

	tracked, err := f.tracked(ctx, wc, target.Abs)
	if err != nil {
		return nil, err
	}

	open := f.Filesystem
	if open == nil {
		open = func(root string) billy.Filesystem { return osfs.New(root) }
	}
	scanner := &Scanner{
		FS:      open(target.Abs),
		Junk:    NewJunkSet(f.ExtraJunk...),
		Tracked: tracked,
	}

	if req.SkipIgnored && wc.Kind == vcs.Git {
		ig, err := LoadIgnore(wc.Root, target.Abs)
		if err != nil {
			return nil, err
		}
		scanner.Ignore = ig
	}

	entries, err := scanner.Scan(req)
	if err != nil {
		return nil, err
	}
	return &Result{Target: target, VCS: wc, Tracked: tracked, Entries: entries}, nil
}

func (f *Finder) tracked(ctx context.Context, wc vcs.Context, root string) (vcs.TrackedSet, error) {
	if wc.Kind == vcs.None {
		return vcs.TrackedSet{}, nil
	}

	var lister vcs.Lister
	if f.Lister != nil {
		lister = f.Lister(wc)
	} else {
		lister = vcs.ListerFor(wc, f.SVNBinary)
	}
	if lister == nil {
		return vcs.TrackedSet{}, nil
	}

	set, err := lister.ListTracked(ctx, root)
	if err != nil {
		if errors.Is(err, vcs.ErrNotRepository) {
			f.logf("%s is not under %s control", root, wc.Kind)
			return vcs.TrackedSet{}, nil
		}
		if errors.Is(err, vcs.ErrQuery) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", vcs.ErrQuery, err)
	}
	f.logf("%d tracked paths under %s", set.Len(), root)
	return set, nil
}

package vcs

import (
	"context"
	"encoding/xml"
	"path/filepath"
	"strings"
)

// DefaultSVN is the svn client looked up in PATH.
const DefaultSVN = "svn"

// SVNLister lists versioned entries with `svn status -v --xml`.
// Entries scheduled for addition are versioned.
type SVNLister struct {
	Runner Runner
	Binary string
}

// NewSVNLister returns an SVNLister running binary through os/exec.
func NewSVNLister(binary string) *SVNLister {
	if binary == "" {
		binary = DefaultSVN
	}
	return &SVNLister{Runner: ExecRunner{}, Binary: binary}
}

type svnStatus struct {
	Targets []struct {
		Path    string `xml:"path,attr"`
		Entries []struct {
			Path     string `xml:"path,attr"`
			WCStatus struct {
				Item string `xml:"item,attr"`
			} `xml:"wc-status"`
		} `xml:"entry"`
	} `xml:"target"`
}

// untracked wc-status items
var svnUnversioned = map[string]bool{
	"unversioned": true,
	"ignored":     true,
	"none":        true,
}

// ListTracked implements Lister.
func (l *SVNLister) ListTracked(ctx context.Context, root string) (TrackedSet, error) {
	res, err := l.Runner.Run(ctx, l.Binary, "status", "-v", "--xml", "--depth", "infinity", root)
	if err != nil {
		if res != nil && isNotWorkingCopy(res.Stderr) {
			return nil, ErrNotRepository
		}
		return nil, queryError(err, "svn status %s", root)
	}
	// svn 1.8 reports a missing working copy as a warning with exit code 0
	if isNotWorkingCopy(res.Stderr) {
		return nil, ErrNotRepository
	}

	var status svnStatus
	if err := xml.Unmarshal([]byte(res.Stdout), &status); err != nil {
		return nil, queryError(err, "failed to parse svn status output")
	}

	set := make(TrackedSet)
	for _, target := range status.Targets {
		for _, e := range target.Entries {
			if svnUnversioned[e.WCStatus.Item] {
				continue
			}
			p := e.Path
			if !filepath.IsAbs(p) {
				p = filepath.Join(root, p)
			}
			rel, err := filepath.Rel(root, p)
			if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
				continue
			}
			set.Add(rel)
		}
	}
	return set, nil
}

// WorkingCopyRoot asks svn for the root of the working copy containing dir.
func WorkingCopyRoot(ctx context.Context, runner Runner, binary, dir string) (string, error) {
	if binary == "" {
		binary = DefaultSVN
	}
	res, err := runner.Run(ctx, binary, "info", "--show-item", "wc-root", dir)
	if err != nil {
		if res != nil && isNotWorkingCopy(res.Stderr) {
			return "", ErrNotWorkingCopy
		}
		return "", queryError(err, "svn info %s", dir)
	}
	if isNotWorkingCopy(res.Stderr) {
		return "", ErrNotWorkingCopy
	}
	root := strings.TrimSpace(res.Stdout)
	if root == "" {
		return "", ErrNotWorkingCopy
	}
	return root, nil
}

func isNotWorkingCopy(stderr string) bool {
	return strings.Contains(stderr, "E155007") ||
		strings.Contains(stderr, "W155007") ||
		strings.Contains(stderr, "is not a working copy")
}

// ListerFor returns the Lister serving the given context, or nil for None.
func ListerFor(c Context, svnBinary string) Lister {
	switch c.Kind {
	case Git:
		return GitLister{}
	case SVN:
		return NewSVNLister(svnBinary)
	default:
		return nil
	}
}

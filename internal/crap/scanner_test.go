package crap

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadenpxrk/dotbin/internal/vcs"
)

func scanPaths(t *testing.T, s *Scanner, req Request) []string {
	t.Helper()
	entries, err := s.Scan(req)
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestScanJunkRecursive(t *testing.T) {
	root := regularTree(t)
	s := NewScanner(osfs.New(filepath.Join(root, "path", "to")), nil)

	got := scanPaths(t, s, Request{Mode: JunkFiles, Recursive: true})

	assert.Len(t, got, 12)
	junk := NewJunkSet()
	for _, p := range got {
		assert.True(t, junk.Match(path.Base(p)), p)
		assert.NotContains(t, p, "store.db", "junk directories are reported once, not per file")
	}
	assert.Contains(t, got, ".fseventsd")
	assert.Contains(t, got, "directory/.Spotlight-V100")
}

func TestScanNonRecursive(t *testing.T) {
	root := regularTree(t)
	s := NewScanner(osfs.New(filepath.Join(root, "path", "to")), nil)

	got := scanPaths(t, s, Request{Mode: JunkFiles})
	assert.Len(t, got, 6)
	for _, p := range got {
		assert.NotContains(t, p, "/")
	}

	assert.Equal(t, []string{".zero", "zero"}, scanPaths(t, s, Request{Mode: ZeroByteFiles}))
	assert.Equal(t, []string{".empty", "empty"}, scanPaths(t, s, Request{Mode: EmptyDirectories}))
}

func TestScanZeroByte(t *testing.T) {
	root := regularTree(t)
	s := NewScanner(osfs.New(filepath.Join(root, "path", "to")), nil)

	got := scanPaths(t, s, Request{Mode: ZeroByteFiles, Recursive: true})

	assert.ElementsMatch(t, []string{".zero", "zero", "directory/.zero", "directory/zero"}, got)
}

func TestScanEmptyDirectories(t *testing.T) {
	root := regularTree(t)
	s := NewScanner(osfs.New(root), nil)

	got := scanPaths(t, s, Request{Mode: EmptyDirectories, Recursive: true})

	assert.Len(t, got, 6)
	for _, p := range got {
		assert.Contains(t, []string{"empty", ".empty"}, path.Base(p))
	}
}

func TestScanSkipsControlDirectories(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll(".git/refs/tags", 0o755))
	require.NoError(t, util.WriteFile(fsys, ".git/HEAD", nil, 0o644))
	require.NoError(t, fsys.MkdirAll("src/.svn/tmp", 0o755))
	require.NoError(t, fsys.MkdirAll("src/empty", 0o755))

	s := NewScanner(fsys, nil)

	assert.Equal(t, []string{"src/empty"}, scanPaths(t, s, Request{Mode: EmptyDirectories, Recursive: true}))
	assert.Empty(t, scanPaths(t, s, Request{Mode: ZeroByteFiles, Recursive: true}))
}

func TestScanTrackedExclusion(t *testing.T) {
	root := regularTree(t)
	tracked := vcs.TrackedSet{}
	tracked.Add("path/to/Thumbs.db")
	tracked.Add("path/to/directory/zero")
	tracked.Add("path/to/empty")
	tracked.AddWithParents("path/.fseventsd/store.db")

	s := NewScanner(osfs.New(root), tracked)

	for _, mode := range []Mode{JunkFiles, ZeroByteFiles, EmptyDirectories} {
		got := scanPaths(t, s, Request{Mode: mode, Recursive: true})
		for _, p := range got {
			assert.False(t, tracked.Contains(p), "%s mode reported tracked path %s", mode, p)
		}
	}

	junk := scanPaths(t, s, Request{Mode: JunkFiles, Recursive: true})
	assert.NotContains(t, junk, "path/.fseventsd")
	assert.Contains(t, junk, "path/to/.fseventsd")
	assert.Len(t, junk, 16)
}

func TestScanZeroNeverReportsDirectories(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("a/empty", 0o755))
	require.NoError(t, util.WriteFile(fsys, "a/zero", nil, 0o644))
	require.NoError(t, util.WriteFile(fsys, "a/full", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "b/full", []byte("x"), 0o644))

	s := NewScanner(fsys, nil)

	assert.Equal(t, []string{"a/zero"}, scanPaths(t, s, Request{Mode: ZeroByteFiles, Recursive: true}))
	assert.Equal(t, []string{"a/empty"}, scanPaths(t, s, Request{Mode: EmptyDirectories, Recursive: true}))
}

func TestScanExtraJunk(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "x/.localized", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "x/Thumbs.db", []byte("x"), 0o644))

	s := &Scanner{FS: fsys, Junk: NewJunkSet(".localized")}

	assert.Equal(t, []string{"x/.localized", "x/Thumbs.db"}, scanPaths(t, s, Request{Mode: JunkFiles, Recursive: true}))
}

func TestScanIsIdempotent(t *testing.T) {
	root := regularTree(t)
	s := NewScanner(osfs.New(root), nil)
	req := Request{Mode: JunkFiles, Recursive: true}

	assert.Equal(t, scanPaths(t, s, req), scanPaths(t, s, req))
}

func TestJunkSet(t *testing.T) {
	s := NewJunkSet("Thumbs.db", "", ".localized")
	assert.Equal(t, append(append([]string{}, DefaultJunk...), ".localized"), s.Names())
	assert.True(t, s.Match(".DS_Store"))
	assert.False(t, s.Match(".ds_store"))
	assert.False(t, s.Match("DS_Store"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "junk", JunkFiles.String())
	assert.Equal(t, "zero", ZeroByteFiles.String())
	assert.Equal(t, "empty", EmptyDirectories.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

// unreadableFS refuses to list the contents of the given directories, like a
// root-owned 0700 .Spotlight-V100 seen by a regular user.
type unreadableFS struct {
	billy.Filesystem
	denied map[string]bool
}

func denyReadDir(fsys billy.Filesystem, dirs ...string) billy.Filesystem {
	denied := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		denied[d] = true
	}
	return &unreadableFS{Filesystem: fsys, denied: denied}
}

func (u *unreadableFS) ReadDir(p string) ([]os.FileInfo, error) {
	if u.denied[filepath.ToSlash(p)] {
		return nil, &os.PathError{Op: "open", Path: p, Err: os.ErrPermission}
	}
	return u.Filesystem.ReadDir(p)
}

func junkVolume(t *testing.T) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, ".Spotlight-V100/Store-V2/store.db", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "Thumbs.db", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "zero", nil, 0o644))
	require.NoError(t, util.WriteFile(fsys, "src/a.txt", []byte("x"), 0o644))
	require.NoError(t, util.WriteFile(fsys, "src/.fseventsd/fseventsd-uuid", []byte("x"), 0o644))
	return fsys
}

func TestScanUnreadableJunkDirectory(t *testing.T) {
	s := NewScanner(denyReadDir(junkVolume(t), ".Spotlight-V100", "src/.fseventsd"), nil)

	assert.ElementsMatch(t, []string{".Spotlight-V100", "Thumbs.db", "src/.fseventsd"},
		scanPaths(t, s, Request{Mode: JunkFiles, Recursive: true}))
	assert.ElementsMatch(t, []string{".Spotlight-V100", "Thumbs.db"},
		scanPaths(t, s, Request{Mode: JunkFiles}))
	assert.Equal(t, []string{"zero"}, scanPaths(t, s, Request{Mode: ZeroByteFiles}))
}

func TestScanUnreadableDirectoryAborts(t *testing.T) {
	s := NewScanner(denyReadDir(junkVolume(t), "src"), nil)

	for _, req := range []Request{
		{Mode: JunkFiles, Recursive: true},
		{Mode: ZeroByteFiles, Recursive: true},
		{Mode: EmptyDirectories},
	} {
		entries, err := s.Scan(req)
		assert.Nil(t, entries, "%s mode", req.Mode)
		assert.True(t, errors.Is(err, os.ErrPermission), "%s mode: %v", req.Mode, err)
	}

	// Only the immediate children are needed
	entries, err := s.Scan(Request{Mode: JunkFiles})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

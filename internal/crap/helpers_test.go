package crap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// crapDirs are the directories that receive a full set of crap.
var crapDirs = []string{"path", "path/to", "path/to/directory"}

// addCrap builds the acceptance tree under root: every directory in crapDirs
// holds the six junk names, two zero-byte files and two empty directories.
func addCrap(t *testing.T, root string) {
	t.Helper()

	for _, d := range crapDirs {
		dir := filepath.Join(root, filepath.FromSlash(d))
		require.NoError(t, os.MkdirAll(dir, 0o755))

		for _, f := range []string{".DS_Store", "desktop.ini", "Thumbs.db"} {
			writeFile(t, filepath.Join(dir, f), "data")
		}
		for _, junkDir := range []string{".fseventsd", ".Spotlight-V100", ".TemporaryItems"} {
			writeFile(t, filepath.Join(dir, junkDir, "store.db"), "data")
		}
		writeFile(t, filepath.Join(dir, "zero"), "")
		writeFile(t, filepath.Join(dir, ".zero"), "")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".empty"), 0o755))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// regularTree returns a symlink-free temp dir holding the acceptance tree.
func regularTree(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	addCrap(t, root)
	return root
}

package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackedSet(t *testing.T) {
	s := make(TrackedSet)
	s.Add("path/to/Thumbs.db")
	s.Add(".")
	s.Add("")
	s.AddWithParents("a/b/c.txt")

	assert.True(t, s.Contains("path/to/Thumbs.db"))
	assert.True(t, s.Contains("./path/to/Thumbs.db"))
	assert.False(t, s.Contains("path/to"), "Add must not record parents")
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("a/b"))
	assert.True(t, s.Contains("a/b/c.txt"))
	assert.False(t, s.Contains("."))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"a", "a/b", "a/b/c.txt", "path/to/Thumbs.db"}, s.Paths())
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		base, root, p string
		want         string
		ok           bool
	}{
		{"/wc", "/wc", "path/to/zero", "path/to/zero", true},
		{"/wc", "/wc/path", "path/to/zero", "to/zero", true},
		{"/wc", "/wc/path", "path", ".", true},
		{"/wc", "/wc/path", "pathology/x", "", false},
		{"/wc", "/wc/path/to", "Thumbs.db", "", false},
	}
	for _, tt := range tests {
		got, ok := relativeTo(tt.base, tt.root, tt.p)
		assert.Equal(t, tt.ok, ok, "%s in %s", tt.p, tt.root)
		assert.Equal(t, tt.want, got, "%s in %s", tt.p, tt.root)
	}
}

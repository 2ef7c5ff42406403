package crap

import (
	"fmt"
	"io/fs"
)

// Mode selects which classification rule a scan applies.
type Mode int

const (
	JunkFiles Mode = iota
	ZeroByteFiles
	EmptyDirectories
)

func (m Mode) String() string {
	switch m {
	case JunkFiles:
		return "junk"
	case ZeroByteFiles:
		return "zero"
	case EmptyDirectories:
		return "empty"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request describes one scan. The path being scanned is passed separately
// to Resolve.
type Request struct {
	Mode      Mode
	Recursive bool
	// SkipIgnored excludes entries matched by the repository .gitignore.
	SkipIgnored bool
}

// Entry holds information about a visited filesystem entry.
type Entry struct {
	Path  string // slash separated, relative to the scan root
	Name  string
	Size  int64
	Mode  fs.FileMode
	IsDir bool
}

package crap

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Remove deletes the given entries, directories included, from fsys rooted
// at the scan root. It stops at the first failure.
func Remove(fsys billy.Filesystem, entries []Entry) error {
	for _, e := range entries {
		if err := util.RemoveAll(fsys, e.Path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Path, err)
		}
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/jadenpxrk/dotbin/internal/crap"
)

// findMulti is replaced in tests.
var findMulti = fuzzyfinder.FindMulti

// selectEntries lets the user pick matches with a fuzzy finder. An aborted
// selection returns nothing and no error.
func selectEntries(res *crap.Result) ([]crap.Entry, error) {
	if len(res.Entries) == 0 {
		return nil, nil
	}
	candidates := res.Paths()

	idx, err := findMulti(
		candidates,
		func(i int) string {
			return candidates[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the paths to delete. Press Tab to multi-select, Enter to confirm."
			}
			e := res.Entries[i]
			info, statErr := os.Lstat(res.Target.Join(e.Path))
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", candidates[i], statErr)
			}
			fileType := "File"
			if info.IsDir() {
				fileType = "Directory"
			}
			return fmt.Sprintf("Path: %s\nType: %s\nSize: %d bytes", candidates[i], fileType, info.Size())
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]crap.Entry, len(idx))
	for i, index := range idx {
		selected[i] = res.Entries[index]
	}
	return selected, nil
}

package ignore

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// FileName is the ignore file managed at the work-tree root.
const FileName = ".gitignore"

// File is a .gitignore on disk.
type File struct {
	Path string
}

// Exists reports whether the file is present.
func (f File) Exists() bool {
	info, err := os.Stat(f.Path)
	return err == nil && !info.IsDir()
}

// Patterns returns the non-empty lines of the file, trimmed.
func (f File) Patterns() ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return parseLines(data), nil
}

func parseLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Append adds every pattern not already present as a line, creating the file
// when needed, and returns the patterns actually written. The read and the
// write happen under an exclusive lock on a sibling .lock file.
func (f File) Append(patterns []string) ([]string, error) {
	lock := flock.New(f.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", f.Path, err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	seen := make(map[string]bool)
	for _, line := range parseLines(data) {
		seen[line] = true
	}

	var added []string
	var buf bytes.Buffer
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		added = append(added, p)
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	if len(added) == 0 && data != nil {
		return nil, nil
	}

	out, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer out.Close()

	if len(data) > 0 && data[len(data)-1] != '\n' {
		if _, err := out.WriteString("\n"); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return added, nil
}

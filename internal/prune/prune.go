// Package prune removes empty directories left behind after a transfer.
package prune

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Logger is the minimal logging interface needed by RemoveEmptyDirs.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

// RemoveEmptyDirs removes every directory under root that is empty, deepest
// first so chains of empty directories collapse bottom-up. The root itself
// is never removed. Removal failures (directory still has contents,
// permission trouble) are ignored; pruning is best effort. Returns the
// number of directories removed.
func RemoveEmptyDirs(root string, log Logger) int {
	if log == nil {
		log = nopLogger{}
	}

	var dirs []string
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("Cannot access directory '%s': %v", dir, err)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			dirs = append(dirs, path)
			stack = append(stack, path)
		}
	}

	sep := string(filepath.Separator)
	sort.Slice(dirs, func(i, j int) bool {
		di, dj := strings.Count(dirs[i], sep), strings.Count(dirs[j], sep)
		if di != dj {
			return di > dj
		}
		return dirs[i] > dirs[j]
	})

	removed := 0
	for _, dir := range dirs {
		if err := os.Remove(dir); err == nil {
			log.Info("Removed empty directory: %s", dir)
			removed++
		}
	}
	return removed
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

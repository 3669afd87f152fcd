// Package walk discovers media files under a directory tree.
package walk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cazcaz/image-mover/internal/media"
)

// Logger is the minimal logging interface needed by Collect.
// Defined here (rather than importing the logging package) so that walk
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
}

// Options control a collection pass. The zero value scans everything,
// tallies nothing, and logs nowhere.
type Options struct {
	// Exclude names one directory subtree to prune from the scan, compared
	// by canonical path. Used to keep a destination nested inside the
	// source from being re-scanned.
	Exclude string

	// TallySizes sums file sizes into Result.TotalBytes as files are found.
	TallySizes bool

	// Progress, when non-nil, is invoked with the running file count each
	// time a media file is found.
	Progress func(found int)

	// Log receives skip notices and per-entry warnings.
	Log Logger
}

// Result is what a collection pass found.
type Result struct {
	// Files holds media file paths relative to the scanned root, sorted
	// lexicographically for deterministic processing order.
	Files []string

	// TotalBytes is the size sum when Options.TallySizes was set. Files
	// whose size could not be read still appear in Files but add nothing
	// here.
	TotalBytes uint64

	// Skipped counts directories that could not be listed.
	Skipped int
}

// Collect walks root depth-first with an explicit work stack and returns the
// media files underneath it. Unreadable directories and unreadable entries
// are logged and skipped; a failure in one subtree never aborts the rest.
func Collect(root string, opts Options) Result {
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}

	excludeCanon := ""
	if opts.Exclude != "" {
		if c, err := canonical(opts.Exclude); err == nil {
			excludeCanon = c
		}
	}

	var res Result
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("Cannot access directory '%s': %v", dir, err)
			res.Skipped++
			continue
		}

		// Push subdirectories in reverse name order so they pop in
		// lexical order, matching a recursive descent.
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if excludeCanon != "" {
				if c, err := canonical(path); err == nil && c == excludeCanon {
					log.Info("Skipping destination directory: %s", path)
					continue
				}
			}
			stack = append(stack, path)
		}

		for _, entry := range entries {
			if entry.IsDir() || !media.IsMediaFile(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			rel, err := filepath.Rel(root, path)
			if err != nil {
				log.Warn("Cannot resolve '%s' against scan root: %v", path, err)
				continue
			}
			if opts.TallySizes {
				if info, err := entry.Info(); err == nil {
					res.TotalBytes += uint64(info.Size())
				} else {
					log.Warn("Cannot get file size for '%s': %v", path, err)
				}
			}
			res.Files = append(res.Files, rel)
			if opts.Progress != nil {
				opts.Progress(len(res.Files))
			}
		}
	}

	sort.Strings(res.Files)
	return res
}

// canonical resolves path to an absolute, symlink-free form.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// Package naming resolves destination file and directory name collisions
// against what is already on disk.
package naming

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrExhausted is returned by UniqueFilePath when every candidate name within
// the attempt bound is taken.
var ErrExhausted = errors.New("could not find unique filename after 10000 attempts")

// maxAttempts bounds the collision counter probe.
const maxAttempts = 10000

// UniqueFilePath returns path unchanged if nothing exists there, otherwise
// the first "stem_N.ext" sibling (N counting up from 1) that is free.
//
// The existence probe and the later create are not atomic. This program is
// the only writer of its destination tree during a run, so a name found free
// here stays free until the copy lands.
func UniqueFilePath(path string) (string, error) {
	if !exists(path) {
		return path, nil
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// A name like ".nomedia" is all stem, no extension.
		stem, ext = base, ""
	}

	for counter := 1; counter <= maxAttempts; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}

// EnsureDirectoryPath makes sure targetDir exists under destRoot. A fully
// missing path is created in one shot; when part of it already exists, the
// remaining components are created one at a time, reusing whatever is
// already there. targetDir must be destRoot itself or a descendant of it.
func EnsureDirectoryPath(destRoot, targetDir string) error {
	if !exists(targetDir) {
		return os.MkdirAll(targetDir, 0o755)
	}

	rel, err := filepath.Rel(destRoot, targetDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("invalid path relationship: %q is not under %q", targetDir, destRoot)
	}
	if rel == "." {
		return nil
	}

	current := destRoot
	for _, name := range strings.Split(rel, string(filepath.Separator)) {
		next := filepath.Join(current, name)
		if !exists(next) {
			if err := os.Mkdir(next, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
				return err
			}
		}
		current = next
	}
	return nil
}

// exists mirrors a plain stat probe: true only when the path resolves.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

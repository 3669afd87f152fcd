// Package check provides transfer-root validation and the --check system
// diagnostics flow.
package check

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by ValidateRoots for rejected folder pairs.
var (
	ErrSourceNotFound   = errors.New("unable to access source folder")
	ErrDestNotFound     = errors.New("unable to access destination folder")
	ErrSamePath         = errors.New("source and destination folders cannot be the same")
	ErrSourceInsideDest = errors.New("source folder cannot be within the destination folder")
)

// Logger is the minimal logging interface needed by this package.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// ValidateRoots canonicalizes the source and destination folders and rejects
// unusable pairs: either folder missing, both naming the same directory, or
// the source nested inside the destination. A destination nested inside the
// source is allowed; it is announced with a warning and the caller is
// expected to exclude it from scanning.
func ValidateRoots(source, dest string, log Logger) (string, string, error) {
	srcCanon, err := canonical(source)
	if err != nil {
		log.Warn("Cannot access source folder '%s': %v", source, err)
		return "", "", ErrSourceNotFound
	}

	dstCanon, err := canonical(dest)
	if err != nil {
		log.Warn("Cannot access destination folder '%s': %v", dest, err)
		return "", "", ErrDestNotFound
	}

	if srcCanon == dstCanon {
		return "", "", ErrSamePath
	}
	if Inside(srcCanon, dstCanon) {
		return "", "", ErrSourceInsideDest
	}
	if Inside(dstCanon, srcCanon) {
		log.Warn("Destination folder is within the source folder.")
		log.Warn("Files from the destination folder will be skipped to prevent infinite recursion.")
	}

	return srcCanon, dstCanon, nil
}

// Inside reports whether path is root itself or nested anywhere below it.
// The comparison is lexical; both arguments must already be canonical.
func Inside(path, root string) bool {
	sep := string(filepath.Separator)
	return strings.HasPrefix(path+sep, root+sep)
}

// canonical resolves path to an absolute, symlink-free form.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

package engine

import (
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cazcaz/image-mover/internal/naming"
)

const copyBufSize = 1 << 20

// copyFiles copies every discovered file from source into dest, mirroring
// relative paths. Leaf-name collisions get suffixed names; per-file
// failures are logged and counted, never fatal. Progress lines reflect
// completion order, not discovery order.
func (e *Engine) copyFiles(source, dest string, files []string, stats *Stats) {
	var copied, failed atomic.Int64
	total := len(files)

	e.runPool(total, func(i int) {
		if !e.copyOne(source, dest, files[i], total, &copied) {
			failed.Add(1)
		}
	})

	stats.Copied = int(copied.Load())
	stats.CopyFailed = int(failed.Load())

	if stats.CopyFailed > 0 {
		e.log.Warn("%d files could not be copied due to access issues", stats.CopyFailed)
	}
}

// copyOne transfers a single file, creating the destination directory chain
// and resolving leaf-name collisions first. Returns false on failure.
func (e *Engine) copyOne(source, dest, rel string, total int, copied *atomic.Int64) bool {
	srcFile := filepath.Join(source, rel)
	dstFile := filepath.Join(dest, rel)

	dstDir := filepath.Dir(dstFile)
	if err := naming.EnsureDirectoryPath(dest, dstDir); err != nil {
		e.log.Warn("Cannot create directory structure for '%s': %v", dstDir, err)
		return false
	}

	unique, err := naming.UniqueFilePath(dstFile)
	if err != nil {
		e.log.Warn("Cannot determine unique file path for '%s': %v", dstFile, err)
		return false
	}

	if err := copyContents(srcFile, unique); err != nil {
		e.log.Warn("Cannot copy file '%s' to '%s': %v", srcFile, unique, err)
		return false
	}

	n := copied.Add(1)
	e.log.Info("(%d/%d) Copied: %s -> %s", n, total, srcFile, unique)
	return true
}

// copyContents copies file bytes, carrying the source permission bits onto
// the new file.
func copyContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	buf := make([]byte, copyBufSize)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package engine

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/cazcaz/image-mover/internal/prune"
	"github.com/cazcaz/image-mover/internal/walk"
)

// deleteOriginals re-scans the source and removes every media file found,
// then prunes the directories the deletions emptied. The exclusion carried
// over from the copy scan keeps a nested destination's fresh copies off
// the delete list.
func (e *Engine) deleteOriginals(source, exclude string, stats *Stats) {
	e.enter(phaseDeleting)

	found := walk.Collect(source, walk.Options{Exclude: exclude, Log: e.log})
	if len(found.Files) == 0 {
		return
	}

	var deleted, failed atomic.Int64
	total := len(found.Files)

	e.runPool(total, func(i int) {
		path := filepath.Join(source, found.Files[i])
		if err := os.Remove(path); err != nil {
			e.log.Warn("Failed to delete '%s': %v", path, err)
			failed.Add(1)
			return
		}
		n := deleted.Add(1)
		e.log.Info("(%d/%d) Deleted: %s", n, total, path)
	})

	stats.Deleted = int(deleted.Load())
	stats.DeleteFailed = int(failed.Load())

	if stats.DeleteFailed > 0 {
		e.log.Warn("%d files could not be deleted due to access issues", stats.DeleteFailed)
	}

	e.enter(phasePruning)
	stats.Pruned = prune.RemoveEmptyDirs(source, e.log)
	if stats.Pruned > 0 {
		e.log.Info("Removed %d empty directories", stats.Pruned)
	}
}

// Package engine orchestrates a transfer run: validate the folder pair,
// scan the source for media files, copy them into the destination, and
// optionally delete the originals and prune the directories that emptied.
package engine

import (
	"github.com/cazcaz/image-mover/internal/capacity"
	"github.com/cazcaz/image-mover/internal/check"
	"github.com/cazcaz/image-mover/internal/config"
	"github.com/cazcaz/image-mover/internal/display"
	"github.com/cazcaz/image-mover/internal/logging"
	"github.com/cazcaz/image-mover/internal/prompt"
	"github.com/cazcaz/image-mover/internal/walk"
)

// phase names the stages of a run.
type phase string

const (
	phaseIdle     phase = "idle"
	phaseScanning phase = "scanning"
	phaseCopying  phase = "copying"
	phaseDeleting phase = "deleting"
	phasePruning  phase = "pruning"
	phaseDone     phase = "done"
)

// Engine runs the scan/copy/delete/prune sequence for one folder pair.
// Prompts fire at phase boundaries only, never while a worker pool is
// running.
type Engine struct {
	cfg      *config.Config
	log      *logging.Logger
	prompter prompt.Prompter
	phase    phase
}

// New returns an Engine ready to Run.
func New(cfg *config.Config, log *logging.Logger, prompter prompt.Prompter) *Engine {
	return &Engine{cfg: cfg, log: log, prompter: prompter, phase: phaseIdle}
}

func (e *Engine) enter(p phase) {
	e.log.Debug("Phase: %s -> %s", e.phase, p)
	e.phase = p
}

// Run executes one full transfer from source to dest and returns the
// aggregate stats. A nil error with Stats.Cancelled set means the user
// declined the copy confirmation; per-file failures never produce an
// error, only counters and warnings.
func (e *Engine) Run(source, dest string) (Stats, error) {
	var stats Stats

	// --- Validate ---
	srcCanon, dstCanon, err := check.ValidateRoots(source, dest, e.log)
	if err != nil {
		return stats, err
	}

	// A destination nested inside the source is skipped by every scan,
	// both the copy discovery and the delete re-scan.
	exclude := ""
	if check.Inside(dstCanon, srcCanon) {
		exclude = dstCanon
	}

	// --- Scan ---
	e.enter(phaseScanning)
	e.log.Info("Scanning for media files...")
	progress := display.NewScanProgress()
	found := walk.Collect(srcCanon, walk.Options{
		Exclude:    exclude,
		TallySizes: true,
		Progress:   progress.Update,
		Log:        e.log,
	})
	progress.Finish()

	stats.Found = len(found.Files)
	stats.TotalBytes = found.TotalBytes

	if stats.Found == 0 {
		e.log.Info("No media files found in the source directory.")
		e.enter(phaseDone)
		return stats, nil
	}

	e.log.Info("Found %d media files (%s)", stats.Found, display.FormatBytes(stats.TotalBytes))
	avail := e.probeCapacity(dstCanon)

	// --- Dry-run ---
	if e.cfg.DryRun {
		e.log.Success("[DRY] Would copy %d files to %s", stats.Found, dstCanon)
		e.enter(phaseDone)
		return stats, nil
	}

	// --- Confirm copy ---
	if !e.cfg.AssumeYes && !e.prompter.ConfirmCopy(stats.Found, stats.TotalBytes, avail) {
		e.log.Info("Copy cancelled by user.")
		stats.Cancelled = true
		e.enter(phaseDone)
		return stats, nil
	}

	// --- Copy ---
	e.enter(phaseCopying)
	e.copyFiles(srcCanon, dstCanon, found.Files, &stats)
	e.log.Success("Successfully copied %d files!", stats.Copied)

	// --- Delete originals ---
	if stats.Copied > 0 && !e.cfg.KeepSource {
		if e.confirmDelete(stats.Copied) {
			e.log.Info("Deleting original files...")
			e.deleteOriginals(srcCanon, exclude, &stats)
			e.log.Success("Successfully deleted %d original files!", stats.Deleted)
		} else {
			e.log.Info("Original files kept as requested.")
		}
	}

	e.enter(phaseDone)
	e.logSummary(&stats)
	e.prompter.NotifyComplete()
	return stats, nil
}

// probeCapacity reports free space on the destination volume. Failure is
// a warning; the transfer proceeds with capacity treated as unknown.
func (e *Engine) probeCapacity(dest string) *capacity.Report {
	rep, err := capacity.Probe(dest)
	if err != nil {
		e.log.Warn("Cannot determine free space on destination: %v", err)
		return nil
	}
	if rep.Volume != "" || rep.Filesystem != "" {
		e.log.Info("Available space on destination: %s (volume %q, %s)",
			display.FormatBytes(rep.Free), rep.Volume, rep.Filesystem)
	} else {
		e.log.Info("Available space on destination: %s", display.FormatBytes(rep.Free))
	}
	return rep
}

func (e *Engine) confirmDelete(copied int) bool {
	if e.cfg.CleanupSource {
		return true
	}
	return e.prompter.ConfirmDelete(copied)
}

func (e *Engine) logSummary(stats *Stats) {
	e.log.Info("==============================")
	e.log.Info("Done: %d copied, %d deleted, %d failed",
		stats.Copied, stats.Deleted, stats.Failures())
	e.log.Info("Summary report:")
	e.log.Info("  Media files found: %d (%s)", stats.Found, display.FormatBytes(stats.TotalBytes))
	e.log.Info("  Copied: %d, failed: %d", stats.Copied, stats.CopyFailed)
	if stats.Deleted > 0 || stats.DeleteFailed > 0 {
		e.log.Info("  Deleted: %d, failed: %d", stats.Deleted, stats.DeleteFailed)
	}
	if stats.Pruned > 0 {
		e.log.Info("  Empty directories removed: %d", stats.Pruned)
	}
}

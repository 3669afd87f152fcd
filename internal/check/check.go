package check

import (
	"os"
	"runtime"

	"github.com/cazcaz/image-mover/internal/capacity"
	"github.com/cazcaz/image-mover/internal/config"
	"github.com/cazcaz/image-mover/internal/display"
	"github.com/cazcaz/image-mover/internal/media"
	"github.com/cazcaz/image-mover/internal/prompt"
)

// RunCheck runs the informational --check flow: platform and worker count,
// classifier coverage, dialog backend, destination free space, and folder
// pair validation when both folders were given. It never stops on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkRuntime(cfg, log)
	checkClassifier(log)
	checkPrompter(log)
	checkCapacity(cfg, log)
	checkRoots(cfg, log)
}

func checkRuntime(cfg *config.Config, log Logger) {
	log.Info("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info("Copy workers: %d", cfg.EffectiveWorkers())
}

func checkClassifier(log Logger) {
	log.Success("Media classifier: %d known extensions", media.ExtensionCount())
}

func checkPrompter(log Logger) {
	log.Info("Dialog backend: %s", prompt.Backend())
}

// checkCapacity probes free space at the destination if one was given,
// otherwise at the current directory.
func checkCapacity(cfg *config.Config, log Logger) {
	target := cfg.DestDir
	if target == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Warn("Free space: cannot resolve working directory: %v", err)
			return
		}
		target = wd
	}

	rep, err := capacity.Probe(target)
	if err != nil {
		log.Warn("Free space at '%s': unavailable (%v)", target, err)
		return
	}
	if rep.Volume != "" || rep.Filesystem != "" {
		log.Success("Free space at '%s': %s (volume %q, %s)",
			target, display.FormatBytes(rep.Free), rep.Volume, rep.Filesystem)
		return
	}
	log.Success("Free space at '%s': %s", target, display.FormatBytes(rep.Free))
}

func checkRoots(cfg *config.Config, log Logger) {
	if cfg.SourceDir == "" || cfg.DestDir == "" {
		log.Info("Folder pair: not supplied, skipping validation")
		return
	}
	if _, _, err := ValidateRoots(cfg.SourceDir, cfg.DestDir, log); err != nil {
		log.Error("Folder pair: %v", err)
		return
	}
	log.Success("Folder pair: OK")
}

// Command image-mover copies image and video files from one folder tree to
// another. It parses flags, prompts for the folder pair when none was given,
// and either runs system diagnostics (--check) or the transfer engine.
package main

import (
	"fmt"
	"os"

	"github.com/cazcaz/image-mover/internal/check"
	"github.com/cazcaz/image-mover/internal/config"
	"github.com/cazcaz/image-mover/internal/display"
	"github.com/cazcaz/image-mover/internal/engine"
	"github.com/cazcaz/image-mover/internal/logging"
	"github.com/cazcaz/image-mover/internal/platform"
	"github.com/cazcaz/image-mover/internal/prompt"
)

// version is injected at build time via -ldflags. A plain "go build"
// keeps the default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// The logger doesn't exist yet during bootstrap, so parse and
	// validation errors go directly to stderr. Once NewLogger succeeds,
	// all output goes through it.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "image-mover: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "image-mover: %v\n", err)
		return 2
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "image-mover: %v\n", err)
		return 2
	}
	defer log.Close()

	display.PrintBanner()

	// COM has to be up before the shell dialogs are shown.
	release, err := platform.Init()
	if err != nil {
		log.Warn("Platform init failed: %v", err)
	} else {
		defer release()
	}

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	prompter := prompt.New()

	source, dest := cfg.SourceDir, cfg.DestDir
	if source == "" {
		var ok bool
		if source, ok = prompter.PickFolder("Select Source Folder"); !ok {
			log.Info("No source selected.")
			return 0
		}
		if dest, ok = prompter.PickFolder("Select Destination Folder"); !ok {
			log.Info("No destination selected.")
			return 0
		}
		source = config.NormalizeDirArg(source)
		dest = config.NormalizeDirArg(dest)
	}

	log.Info("Source: %s", source)
	log.Info("Destination: %s", dest)

	if _, err := engine.New(&cfg, log, prompter).Run(source, dest); err != nil {
		log.Error("Error: %v", err)
	}
	return 0
}

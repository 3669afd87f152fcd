package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into transfer, display, and utility. Override flags
// (e.g. --color / --no-color) are captured as bools and applied after Parse
// so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, a lone positional
// argument). version is shown in help and --version output.
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("image-mover", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var ov overrideFlags

	defineTransferFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &ov)
	defineUtilityFlags(fs, cfg, &ov)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &ov)

	if ov.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "image-mover v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags that are applied after Parse. These
// either override a mode (forceColor/noColor -> ColorMode) or trigger exit
// (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineTransferFlags registers -w/--workers, -d/--dry-run, -y/--yes,
// --cleanup, --keep-source.
func defineTransferFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Copy/delete pool size (0 = all CPUs)")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "Same as --workers")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Scan and report only; do not copy")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Proceed with the copy without asking")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&cfg.CleanupSource, "cleanup", false, "Delete originals after copy without asking")
	fs.BoolVar(&cfg.KeepSource, "keep-source", false, "Never delete originals")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, ov *overrideFlags) {
	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, ov *overrideFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Environment diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, ov *overrideFlags) {
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets SourceDir and DestDir from the two positional
// args. Zero positionals is valid (the folder picker asks); one is not.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 2:
		cfg.SourceDir = NormalizeDirArg(args[0])
		cfg.DestDir = NormalizeDirArg(args[1])
		return nil
	default:
		return fmt.Errorf("need both source_dir and dest_dir, or neither to use the folder picker")
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "image-mover v" + version + " - copies image and video files between folder trees"},
		{"", ""},
		{"  image-mover [OPTIONS] [source_dir dest_dir]", ""},
		{"", ""},
		{"", "Without positional arguments the native folder picker asks for both."},
		{"", ""},
		{"Transfer", ""},
		{"  -w, --workers <n>", "Copy/delete pool size (default: all CPUs)"},
		{"  -d, --dry-run", "Scan and report only; do not copy"},
		{"  -y, --yes", "Proceed with the copy without asking"},
		{"  --cleanup", "Delete originals after copy without asking"},
		{"  --keep-source", "Never delete originals (skips the prompt)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Environment diagnostics and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

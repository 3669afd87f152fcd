// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"runtime"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it. Fields are grouped by concern with inline documentation of
// defaults.
type Config struct {
	// Paths (set from positional args; empty means the folder picker asks).
	SourceDir string
	DestDir   string

	// Transfer behavior.
	Workers       int  // Default: 0 (all CPUs). Pool size for copy and delete.
	DryRun        bool // Scan, validate, and report only.
	AssumeYes     bool // Skip the copy confirmation.
	CleanupSource bool // Delete originals after copy without asking.
	KeepSource    bool // Never delete originals (skips the prompt).

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Workers:   0,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing path separators from a directory argument.
// The filesystem root "/" is returned unchanged, and a bare drive letter like
// "C:" gets its separator back so the path stays volume-absolute.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return path
	}
	if strings.HasSuffix(trimmed, ":") {
		return trimmed + `\`
	}
	return trimmed
}

// Validate checks enum fields and flag combinations. Path arguments are not
// required here: when both are empty the folder picker supplies them.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Workers < 0 {
		return errors.New("workers must be zero or a positive number")
	}
	if c.CleanupSource && c.KeepSource {
		return errors.New("--cleanup and --keep-source are mutually exclusive")
	}
	if (c.SourceDir == "") != (c.DestDir == "") {
		return errors.New("need both source_dir and dest_dir, or neither to use the folder picker")
	}
	return nil
}

// EffectiveWorkers resolves the worker pool size: the --workers override when
// set, otherwise the hardware parallelism.
func (c *Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

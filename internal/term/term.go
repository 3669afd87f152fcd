// Package term owns ANSI color state and terminal detection for the
// transfer log, the banner, and the live scan counter.
//
// The palette is package-level state: logging and display splice the codes
// straight into their output, and [Configure] resolves them once at startup.
// With colors off every code is the empty string, so callers concatenate
// unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/cazcaz/image-mover/internal/config"
)

// ANSI codes for the log palette. Empty when colors are off.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = "" // reset
)

// Configure resolves mode against the environment and sets the palette.
// logging.NewLogger calls it before the first log line.
func Configure(mode config.ColorMode) {
	if !wantColor(mode) {
		Red, Green, Yellow, Blue, Cyan, NC = "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	NC = "\033[0m"
}

// Enabled reports whether the palette is currently active.
func Enabled() bool { return NC != "" }

// wantColor applies the mode, falling back to TTY detection plus the
// NO_COLOR and TERM=dumb conventions for ColorAuto.
func wantColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return IsTerminal(os.Stdout) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

package display

import (
	"fmt"
	"io"
	"os"

	"github.com/cazcaz/image-mover/internal/term"
)

// ScanProgress renders an in-place running count of discovered files on
// stdout. Output is suppressed when stdout is not a terminal so piped and
// redirected runs stay line-oriented.
type ScanProgress struct {
	w     io.Writer
	live  bool
	drawn bool
}

// NewScanProgress returns a progress line bound to stdout.
func NewScanProgress() *ScanProgress {
	return &ScanProgress{w: os.Stdout, live: term.IsTerminal(os.Stdout)}
}

// Update redraws the counter with the given file count.
func (p *ScanProgress) Update(found int) {
	if !p.live {
		return
	}
	fmt.Fprintf(p.w, "\rFiles found: %d", found)
	p.drawn = true
}

// Finish terminates the in-place line so subsequent output starts clean.
func (p *ScanProgress) Finish() {
	if p.drawn {
		fmt.Fprintln(p.w)
		p.drawn = false
	}
}

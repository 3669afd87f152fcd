package display

import (
	"bytes"
	"testing"
)

func TestScanProgress_Live(t *testing.T) {
	var buf bytes.Buffer
	p := &ScanProgress{w: &buf, live: true}

	p.Update(1)
	p.Update(2)
	p.Finish()

	want := "\rFiles found: 1\rFiles found: 2\n"
	if got := buf.String(); got != want {
		t.Errorf("progress output = %q, want %q", got, want)
	}
}

func TestScanProgress_NotLive(t *testing.T) {
	var buf bytes.Buffer
	p := &ScanProgress{w: &buf, live: false}

	p.Update(1)
	p.Update(500)
	p.Finish()

	if got := buf.String(); got != "" {
		t.Errorf("non-terminal progress should be silent, got %q", got)
	}
}

func TestScanProgress_FinishWithoutUpdates(t *testing.T) {
	var buf bytes.Buffer
	p := &ScanProgress{w: &buf, live: true}

	p.Finish()

	if got := buf.String(); got != "" {
		t.Errorf("Finish with nothing drawn should write nothing, got %q", got)
	}
}

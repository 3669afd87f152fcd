package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cazcaz/image-mover/internal/capacity"
	"github.com/cazcaz/image-mover/internal/check"
	"github.com/cazcaz/image-mover/internal/config"
	"github.com/cazcaz/image-mover/internal/logging"
)

// --- Test doubles and helpers ---

// scriptedPrompter answers confirmations from canned values and records
// the calls it receives. Prompts fire between phases on one goroutine, so
// no locking is needed.
type scriptedPrompter struct {
	copyAnswer   bool
	deleteAnswer bool
	calls        []string
}

func (p *scriptedPrompter) PickFolder(title string) (string, bool) {
	p.calls = append(p.calls, "pick")
	return "", false
}

func (p *scriptedPrompter) ConfirmCopy(files int, totalBytes uint64, avail *capacity.Report) bool {
	p.calls = append(p.calls, "confirm-copy")
	return p.copyAnswer
}

func (p *scriptedPrompter) ConfirmDelete(files int) bool {
	p.calls = append(p.calls, "confirm-delete")
	return p.deleteAnswer
}

func (p *scriptedPrompter) NotifyComplete() {
	p.calls = append(p.calls, "complete")
}

func newTestEngine(t *testing.T, p *scriptedPrompter, mutate func(*config.Config)) *Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Workers = 2
	if mutate != nil {
		mutate(&cfg)
	}
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return New(&cfg, log, p)
}

func write(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile %s: %v", path, err)
	}
	return string(data)
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Copy flow ---

func TestRun_CopiesTree(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")
	write(t, src, filepath.Join("trip", "b.png"), "defgh")
	write(t, src, "notes.txt", "ignored")

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.KeepSource = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Found != 2 || stats.Copied != 2 || stats.CopyFailed != 0 {
		t.Errorf("stats = %+v, want 2 found, 2 copied", stats)
	}
	if stats.TotalBytes != 8 {
		t.Errorf("TotalBytes = %d, want 8", stats.TotalBytes)
	}
	if got := read(t, filepath.Join(dst, "a.jpg")); got != "abc" {
		t.Errorf("a.jpg content = %q, want %q", got, "abc")
	}
	if got := read(t, filepath.Join(dst, "trip", "b.png")); got != "defgh" {
		t.Errorf("trip/b.png content = %q, want %q", got, "defgh")
	}
	if _, err := os.Stat(filepath.Join(dst, "notes.txt")); !os.IsNotExist(err) {
		t.Error("non-media file was copied")
	}
	if want := []string{"confirm-copy", "complete"}; !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_CollisionGetsSuffix(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "photo.jpg", "new")
	write(t, dst, "photo.jpg", "old")

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.KeepSource = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Copied != 1 {
		t.Fatalf("Copied = %d, want 1", stats.Copied)
	}
	if got := read(t, filepath.Join(dst, "photo.jpg")); got != "old" {
		t.Errorf("pre-existing file content = %q, want %q", got, "old")
	}
	if got := read(t, filepath.Join(dst, "photo_1.jpg")); got != "new" {
		t.Errorf("suffixed file content = %q, want %q", got, "new")
	}
}

func TestRun_EmptySourceShortCircuits(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "readme.txt", "no media here")

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, nil)

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Found != 0 || stats.Copied != 0 {
		t.Errorf("stats = %+v, want zero counts", stats)
	}
	if len(p.calls) != 0 {
		t.Errorf("prompter was called: %v", p.calls)
	}
	entries, err := os.ReadDir(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("destination not empty: %d entries", len(entries))
	}
}

func TestRun_DeclinedCopyCancels(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{copyAnswer: false}
	eng := newTestEngine(t, p, nil)

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !stats.Cancelled {
		t.Error("Cancelled not set")
	}
	if stats.Copied != 0 {
		t.Errorf("Copied = %d, want 0", stats.Copied)
	}
	entries, _ := os.ReadDir(dst)
	if len(entries) != 0 {
		t.Errorf("destination not empty: %d entries", len(entries))
	}
	if want := []string{"confirm-copy"}; !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_AssumeYesSkipsConfirm(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{}
	eng := newTestEngine(t, p, func(c *config.Config) {
		c.AssumeYes = true
		c.KeepSource = true
	})

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Copied != 1 {
		t.Errorf("Copied = %d, want 1", stats.Copied)
	}
	if want := []string{"complete"}; !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.DryRun = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Found != 1 || stats.Copied != 0 {
		t.Errorf("stats = %+v, want 1 found, 0 copied", stats)
	}
	if len(p.calls) != 0 {
		t.Errorf("prompter was called: %v", p.calls)
	}
	entries, _ := os.ReadDir(dst)
	if len(entries) != 0 {
		t.Errorf("destination not empty: %d entries", len(entries))
	}
}

func TestRun_PartialFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}
	src, dst := t.TempDir(), t.TempDir()
	for i := 0; i < 9; i++ {
		write(t, src, filepath.Join("batch", fmt.Sprintf("ok%d.jpg", i)), "data")
	}
	locked := write(t, src, filepath.Join("batch", "locked.jpg"), "data")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.KeepSource = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Copied != 9 || stats.CopyFailed != 1 {
		t.Errorf("stats = %+v, want 9 copied, 1 failed", stats)
	}
}

// --- Delete flow ---

func TestRun_DeleteAndPrune(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, filepath.Join("trip", "day1", "a.jpg"), "abc")
	write(t, src, filepath.Join("trip", "day2", "b.mp4"), "def")

	p := &scriptedPrompter{copyAnswer: true, deleteAnswer: true}
	eng := newTestEngine(t, p, nil)

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Copied != 2 || stats.Deleted != 2 {
		t.Errorf("stats = %+v, want 2 copied, 2 deleted", stats)
	}
	if stats.Pruned != 3 {
		t.Errorf("Pruned = %d, want 3", stats.Pruned)
	}
	if _, err := os.Stat(filepath.Join(src, "trip")); !os.IsNotExist(err) {
		t.Error("emptied directory tree was not pruned")
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source root removed: %v", err)
	}
	if got := read(t, filepath.Join(dst, "trip", "day1", "a.jpg")); got != "abc" {
		t.Errorf("copy content = %q, want %q", got, "abc")
	}
	want := []string{"confirm-copy", "confirm-delete", "complete"}
	if !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_DeclinedDeleteKeepsOriginals(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{copyAnswer: true, deleteAnswer: false}
	eng := newTestEngine(t, p, nil)

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0", stats.Deleted)
	}
	if _, err := os.Stat(filepath.Join(src, "a.jpg")); err != nil {
		t.Errorf("original removed after declined delete: %v", err)
	}
	want := []string{"confirm-copy", "confirm-delete", "complete"}
	if !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_KeepSourceSkipsDeletePrompt(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{copyAnswer: true, deleteAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.KeepSource = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0", stats.Deleted)
	}
	if _, err := os.Stat(filepath.Join(src, "a.jpg")); err != nil {
		t.Errorf("original removed despite keep-source: %v", err)
	}
	if want := []string{"confirm-copy", "complete"}; !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_CleanupDeletesWithoutPrompt(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	write(t, src, "a.jpg", "abc")

	p := &scriptedPrompter{copyAnswer: true}
	eng := newTestEngine(t, p, func(c *config.Config) { c.CleanupSource = true })

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", stats.Deleted)
	}
	if _, err := os.Stat(filepath.Join(src, "a.jpg")); !os.IsNotExist(err) {
		t.Error("original still present after cleanup run")
	}
	if want := []string{"confirm-copy", "complete"}; !sliceEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestRun_NestedDestinationExcluded(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(src, "backup")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, src, "a.jpg", "abc")
	write(t, src, filepath.Join("sub", "b.png"), "def")

	p := &scriptedPrompter{copyAnswer: true, deleteAnswer: true}
	eng := newTestEngine(t, p, nil)

	stats, err := eng.Run(src, dst)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Found != 2 || stats.Copied != 2 {
		t.Errorf("stats = %+v, want 2 found, 2 copied", stats)
	}
	if got := read(t, filepath.Join(dst, "a.jpg")); got != "abc" {
		t.Errorf("copy content = %q, want %q", got, "abc")
	}
	if got := read(t, filepath.Join(dst, "sub", "b.png")); got != "def" {
		t.Errorf("copy content = %q, want %q", got, "def")
	}
	if stats.Deleted != 2 {
		t.Errorf("Deleted = %d, want 2", stats.Deleted)
	}
	if _, err := os.Stat(filepath.Join(src, "a.jpg")); !os.IsNotExist(err) {
		t.Error("source original survived the delete pass")
	}
	if _, err := os.Stat(filepath.Join(dst, "a.jpg")); err != nil {
		t.Errorf("fresh copy inside nested destination was deleted: %v", err)
	}
}

// --- Pre-flight ---

func TestRun_SamePathFails(t *testing.T) {
	dir := t.TempDir()

	p := &scriptedPrompter{}
	eng := newTestEngine(t, p, nil)

	_, err := eng.Run(dir, dir)
	if !errors.Is(err, check.ErrSamePath) {
		t.Fatalf("err = %v, want ErrSamePath", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("prompter was called: %v", p.calls)
	}
}

func TestRun_MissingSourceFails(t *testing.T) {
	dst := t.TempDir()

	p := &scriptedPrompter{}
	eng := newTestEngine(t, p, nil)

	_, err := eng.Run(filepath.Join(dst, "nope"), dst)
	if !errors.Is(err, check.ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

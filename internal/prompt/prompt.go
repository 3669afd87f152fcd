// Package prompt is the user-interaction seam: folder pickers, confirmation
// dialogs, and the completion notice. The transfer engine talks to a
// Prompter and never knows whether answers come from native dialogs or a
// console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cazcaz/image-mover/internal/capacity"
	"github.com/cazcaz/image-mover/internal/display"
)

// Prompter is what the transfer engine needs from the user interface.
// Implementations block until the user answers.
type Prompter interface {
	// PickFolder asks for a directory; ok is false when the user cancels.
	PickFolder(title string) (path string, ok bool)

	// ConfirmCopy shows the transfer summary and asks whether to proceed.
	// avail is nil when free space could not be determined.
	ConfirmCopy(files int, totalBytes uint64, avail *capacity.Report) bool

	// ConfirmDelete asks whether to remove the source originals after a
	// copy. Implementations answer no by default.
	ConfirmDelete(files int) bool

	// NotifyComplete announces that all operations finished.
	NotifyComplete()
}

// Console prompts over plain reader/writer pairs. It backs every platform
// without native dialogs and is what tests script against.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading answers from in and writing prompts
// to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) PickFolder(title string) (string, bool) {
	fmt.Fprintf(c.out, "%s (empty to cancel): ", title)
	line, err := c.in.ReadString('\n')
	path := strings.TrimSpace(line)
	if err != nil && path == "" {
		return "", false
	}
	if path == "" {
		return "", false
	}
	return path, true
}

func (c *Console) ConfirmCopy(files int, totalBytes uint64, avail *capacity.Report) bool {
	availText := "unknown"
	warning := ""
	if avail != nil {
		availText = display.FormatBytes(avail.Free)
		if totalBytes > avail.Free {
			warning = "\nWARNING: Not enough disk space available!"
		}
	}
	fmt.Fprintf(c.out, "Ready to copy %d media files\nTotal size to copy: %s\nAvailable space on destination: %s%s\n",
		files, display.FormatBytes(totalBytes), availText, warning)
	return c.yesNo("Do you want to proceed with the copy operation?")
}

func (c *Console) ConfirmDelete(files int) bool {
	fmt.Fprintf(c.out, "All %d files have been successfully copied to the destination folder.\n", files)
	fmt.Fprintln(c.out, "Warning: This action cannot be undone!")
	return c.yesNo("Would you like to delete the original files from the source folder?")
}

func (c *Console) NotifyComplete() {
	fmt.Fprintln(c.out, "Done! All operations completed successfully.")
}

// yesNo asks question and reads one answer line. Anything but an explicit
// yes counts as no.
func (c *Console) yesNo(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if err != nil && answer == "" {
		return false
	}
	return answer == "y" || answer == "yes"
}

//go:build windows

package prompt

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/cazcaz/image-mover/internal/capacity"
	"github.com/cazcaz/image-mover/internal/display"
)

var (
	user32          = syscall.NewLazyDLL("user32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")

	shell32                  = syscall.NewLazyDLL("shell32.dll")
	procSHBrowseForFolderW   = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = shell32.NewProc("SHGetPathFromIDListW")

	ole32             = syscall.NewLazyDLL("ole32.dll")
	procCoTaskMemFree = ole32.NewProc("CoTaskMemFree")
)

// MessageBoxW flags and return values.
const (
	mbOK              = 0x00000000
	mbYesNo           = 0x00000004
	mbIconQuestion    = 0x00000020
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
	mbDefButton2      = 0x00000100

	idYes = 6
)

// SHBrowseForFolderW flags.
const (
	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040
)

// browseInfo mirrors the Win32 BROWSEINFOW structure.
type browseInfo struct {
	owner       uintptr
	root        uintptr
	displayName *uint16
	title       *uint16
	flags       uint32
	callback    uintptr
	lParam      uintptr
	image       int32
}

// Native shows Windows shell dialogs and message boxes. COM must be
// initialized on the calling thread before PickFolder is used.
type Native struct{}

// New returns the platform prompter: native Windows dialogs.
func New() Prompter {
	return Native{}
}

// Backend names the dialog implementation compiled in.
func Backend() string {
	return "native Windows dialogs"
}

func (Native) PickFolder(title string) (string, bool) {
	displayName := make([]uint16, windows.MAX_PATH)
	bi := browseInfo{
		displayName: &displayName[0],
		title:       windows.StringToUTF16Ptr(title),
		flags:       bifReturnOnlyFSDirs | bifNewDialogStyle,
	}

	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	if pidl == 0 {
		return "", false
	}
	defer procCoTaskMemFree.Call(pidl)

	buf := make([]uint16, windows.MAX_PATH)
	ok, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
	if ok == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf), true
}

func (Native) ConfirmCopy(files int, totalBytes uint64, avail *capacity.Report) bool {
	availText := "unknown"
	warning := ""
	flags := uint32(mbYesNo | mbIconQuestion)
	if avail != nil {
		availText = display.FormatBytes(avail.Free)
		if totalBytes > avail.Free {
			warning = "\n\nWARNING: Not enough disk space available!"
			flags = mbYesNo | mbIconWarning
		}
	}
	message := fmt.Sprintf(
		"Ready to copy %d media files\n\nTotal size to copy: %s\nAvailable space on destination: %s%s\n\nDo you want to proceed with the copy operation?",
		files, display.FormatBytes(totalBytes), availText, warning)
	return messageBox(message, "Confirm Copy Operation", flags) == idYes
}

func (Native) ConfirmDelete(files int) bool {
	message := fmt.Sprintf(
		"All %d files have been successfully copied to the destination folder.\n\nWould you like to delete the original files from the source folder?\n\nWarning: This action cannot be undone!",
		files)
	// mbDefButton2 makes No the default answer.
	return messageBox(message, "Delete Original Files", mbYesNo|mbIconQuestion|mbDefButton2) == idYes
}

func (Native) NotifyComplete() {
	messageBox("Done! All operations completed successfully.", "Process Complete", mbOK|mbIconInformation)
}

func messageBox(text, caption string, flags uint32) int {
	ret, _, _ := procMessageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(windows.StringToUTF16Ptr(text))),
		uintptr(unsafe.Pointer(windows.StringToUTF16Ptr(caption))),
		uintptr(flags),
	)
	return int(ret)
}

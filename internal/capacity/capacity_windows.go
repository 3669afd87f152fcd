//go:build windows

package capacity

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StackExchange/wmi"
	"golang.org/x/sys/windows"
)

// win32LogicalDisk is the slice element for the WMI volume metadata query.
type win32LogicalDisk struct {
	VolumeName string
	FileSystem string
}

// Probe resolves the volume holding path and asks Windows how many bytes are
// available to the calling user on it. Volume label and filesystem come from
// WMI and are supplementary; their absence is not an error.
func Probe(path string) (*Report, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	volumePathName := make([]uint16, windows.MAX_PATH)
	if err := windows.GetVolumePathName(windows.StringToUTF16Ptr(abs), &volumePathName[0], windows.MAX_PATH); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	rootPath := windows.UTF16ToString(volumePathName)

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(windows.StringToUTF16Ptr(rootPath),
		&freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rep := &Report{Free: freeBytesAvailable}
	rep.Volume, rep.Filesystem = volumeMetadata(rootPath)
	return rep, nil
}

// volumeMetadata queries WMI for the volume label and filesystem of the
// drive rooted at rootPath. Failures are silent; the data is supplementary.
func volumeMetadata(rootPath string) (volume, filesystem string) {
	deviceID := strings.TrimSuffix(rootPath, `\`)
	if len(deviceID) != 2 || deviceID[1] != ':' {
		// UNC shares and mounted folders have no Win32_LogicalDisk row.
		return "", ""
	}

	var disks []win32LogicalDisk
	query := fmt.Sprintf("SELECT VolumeName, FileSystem FROM Win32_LogicalDisk WHERE DeviceID = '%s'", deviceID)
	if err := wmi.Query(query, &disks); err != nil || len(disks) == 0 {
		return "", ""
	}
	return disks[0].VolumeName, disks[0].FileSystem
}

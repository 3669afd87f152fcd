//go:build !windows

package capacity

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// Probe asks the OS how many bytes are free on the filesystem holding path.
// There is no volume label outside Windows; only the filesystem name is
// filled in alongside the free byte count.
func Probe(path string) (*Report, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Report{Free: usage.Free, Filesystem: usage.Fstype}, nil
}

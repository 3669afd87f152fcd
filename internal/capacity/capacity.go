// Package capacity reports free disk space on the volume that will receive
// a transfer.
package capacity

import "errors"

// ErrUnavailable is returned when the platform cannot report free space for
// the requested path. Callers treat capacity as unknown and carry on.
var ErrUnavailable = errors.New("free disk space unavailable")

// Report describes the receiving volume.
type Report struct {
	// Free is the byte count available to the current user.
	Free uint64

	// Volume is the volume label, when the platform exposes one.
	Volume string

	// Filesystem is the filesystem name (NTFS, ext4, ...), when known.
	Filesystem string
}

package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KB, MB, GB, TB) with two
// decimal places above the byte range. TB is the largest unit; anything
// bigger stays expressed in TB.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), suffixes[exp])
}

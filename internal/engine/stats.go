package engine

// Stats tracks aggregate counters across one transfer run.
type Stats struct {
	Found        int
	TotalBytes   uint64
	Copied       int
	CopyFailed   int
	Deleted      int
	DeleteFailed int
	Pruned       int

	// Cancelled is set when the user declines the copy confirmation.
	Cancelled bool
}

// Failures returns the combined copy and delete failure count.
func (s *Stats) Failures() int {
	return s.CopyFailed + s.DeleteFailed
}

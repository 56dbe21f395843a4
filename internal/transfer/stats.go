package transfer

import "time"

// Stats is a mutable accumulator for one tree or filtered-copy operation. It
// is owned exclusively by the caller that initiated the operation: created at
// operation start, updated after each completed file, discarded at operation
// end. It is not safe for concurrent use and is never shared across
// operations. CopiedBytes is monotonically non-decreasing for the lifetime of
// the operation; TotalBytes stays 0 when the expected size is unknown.
type Stats struct {
	Files       int64
	Dirs        int64
	TotalBytes  int64
	CopiedBytes int64

	Start      time.Time
	LastSample time.Time
}

// NewStats returns a pointer to a new [Stats], stamped with the operation
// start time.
func NewStats() *Stats {
	now := time.Now()

	return &Stats{
		Start:      now,
		LastSample: now,
	}
}

// AddFile records one successfully copied file of the given destination size.
func (s *Stats) AddFile(size int64) {
	s.Files++
	if size > 0 {
		s.TotalBytes += size
		s.CopiedBytes += size
	}
	s.LastSample = time.Now()
}

// AddDir records one traversed directory.
func (s *Stats) AddDir() {
	s.Dirs++
	s.LastSample = time.Now()
}

// Elapsed returns the time spent since the operation start.
func (s *Stats) Elapsed() time.Duration {
	return s.LastSample.Sub(s.Start)
}

// Speed returns the derived transfer rate in bytes per second, or 0 when not
// enough time has elapsed to derive one.
func (s *Stats) Speed() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(s.CopiedBytes) / elapsed
}

// ETA estimates the remaining transfer time from the current rate, or 0 when
// no estimate can be derived.
func (s *Stats) ETA() time.Duration {
	speed := s.Speed()
	if speed <= 0 || s.TotalBytes <= 0 || s.CopiedBytes >= s.TotalBytes {
		return 0
	}

	remaining := float64(s.TotalBytes-s.CopiedBytes) / speed

	return time.Duration(remaining * float64(time.Second))
}

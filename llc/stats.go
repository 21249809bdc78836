package llc

import "fmt"

// Stats counts the outcomes of the accesses a cache has served.
type Stats struct {
	Accesses       uint64
	Hits           uint64
	Misses         uint64
	Evictions      uint64
	DirtyEvictions uint64
	Bypasses       uint64
}

// HitRate returns hits over accesses, or 0 before the first access.
func (s Stats) HitRate() float64 {
	if s.Accesses == 0 {
		return 0
	}

	return float64(s.Hits) / float64(s.Accesses)
}

// MPKI returns the misses per thousand instructions.
func (s Stats) MPKI(instructions uint64) float64 {
	if instructions == 0 {
		return 0
	}

	return float64(s.Misses) * 1000 / float64(instructions)
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"accesses=%d hits=%d misses=%d evictions=%d dirty=%d bypasses=%d hit-rate=%.4f",
		s.Accesses, s.Hits, s.Misses,
		s.Evictions, s.DirtyEvictions, s.Bypasses,
		s.HitRate())
}

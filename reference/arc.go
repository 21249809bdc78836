// Package reference replays accesses through policies that are not part of
// the engine, to give a comparison point for the replacement engine.
package reference

import (
	"fmt"

	"github.com/hashicorp/golang-lru/arc/v2"

	"github.com/sarchlab/llcrepl/llc"
	"github.com/sarchlab/llcrepl/mem"
)

// ARC is a fully associative cache of a fixed number of lines managed by
// Adaptive Replacement Cache. It only tracks presence.
type ARC struct {
	cache         *arc.ARCCache[uint64, struct{}]
	capacity      int
	log2BlockSize uint
	stats         llc.Stats
}

// NewARC creates an ARC holding capacityLines lines of 1<<log2BlockSize
// bytes.
func NewARC(capacityLines int, log2BlockSize int) (*ARC, error) {
	if log2BlockSize < 0 {
		return nil, fmt.Errorf("negative log2 block size %d", log2BlockSize)
	}

	c, err := arc.NewARC[uint64, struct{}](capacityLines)
	if err != nil {
		return nil, fmt.Errorf("creating ARC of %d lines: %w", capacityLines, err)
	}

	return &ARC{
		cache:         c,
		capacity:      capacityLines,
		log2BlockSize: uint(log2BlockSize),
	}, nil
}

// Access looks up the line of a and inserts it on a miss. It returns true on
// a hit.
func (r *ARC) Access(a mem.Access) bool {
	blockAddr := a.Address >> r.log2BlockSize

	r.stats.Accesses++

	if _, ok := r.cache.Get(blockAddr); ok {
		r.stats.Hits++
		return true
	}

	r.stats.Misses++

	// Once full, a fully associative cache evicts on every miss.
	if r.stats.Misses > uint64(r.capacity) {
		r.stats.Evictions++
	}

	r.cache.Add(blockAddr, struct{}{})

	return false
}

// Stats returns the counters accumulated so far. Dirty evictions and
// bypasses are not tracked.
func (r *ARC) Stats() llc.Stats {
	return r.stats
}

// Len returns the number of lines in the recency and frequency lists of the
// ARC. It can exceed the capacity by one while ARC adapts its target size.
func (r *ARC) Len() int {
	return r.cache.Len()
}

// Package llc provides a tag-only model of a set-associative last-level cache
// that drives a replacement engine with a stream of accesses.
package llc

import (
	"fmt"

	"github.com/sarchlab/llcrepl/llc/internal/tagging"
	"github.com/sarchlab/llcrepl/mem"
	"github.com/sarchlab/llcrepl/replacement"
)

// ReplacementPolicy is what the cache needs from a replacement engine.
// *replacement.Engine satisfies it.
type ReplacementPolicy interface {
	GetVictim(
		threadID int,
		setID int,
		set []replacement.Line,
		pc, paddr uint64,
		accessType mem.AccessType,
	) int
	Update(
		setID, wayID int,
		line replacement.Line,
		threadID int,
		pc uint64,
		accessType mem.AccessType,
		hit bool,
	)
	IncrementTimer()
}

// AccessResult describes how the cache served one access.
type AccessResult struct {
	Hit   bool
	SetID int

	// WayID is replacement.Bypass when the line was not allocated.
	WayID int

	Evicted      bool
	EvictedDirty bool
	EvictedAddr  uint64
	Bypassed     bool
}

// A Cache keeps the tags of a last-level cache. It is not safe for
// concurrent use.
type Cache struct {
	name          string
	log2BlockSize uint
	numWays       int

	tags        tagging.TagArray
	replacement ReplacementPolicy
	metrics     Metrics
	stats       Stats

	view []replacement.Line
}

// Name returns the name of the cache.
func (c *Cache) Name() string {
	return c.name
}

// Replacement returns the replacement policy of the cache.
func (c *Cache) Replacement() ReplacementPolicy {
	return c.replacement
}

// Stats returns the counters accumulated so far.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Access serves one access. Hits update the replacement state. Misses fill
// the first invalid way of the set, or the way the replacement policy picks,
// unless the policy asks to bypass.
func (c *Cache) Access(a mem.Access) AccessResult {
	blockAddr := a.Address >> c.log2BlockSize
	set, setID := c.tags.GetSet(blockAddr)

	c.stats.Accesses++
	c.replacement.IncrementTimer()

	if block, found := c.tags.Lookup(blockAddr); found {
		return c.hit(a, block)
	}

	c.stats.Misses++
	c.metrics.Miss()

	result := AccessResult{SetID: setID}

	wayID, found := c.tags.FirstInvalid(setID)
	if !found {
		wayID = c.replacement.GetVictim(
			a.ThreadID, setID, c.lineView(set), a.PC, a.Address, a.Type)

		if wayID == replacement.Bypass {
			c.stats.Bypasses++
			c.metrics.Bypass()

			result.WayID = replacement.Bypass
			result.Bypassed = true

			return result
		}

		c.mustBeValidWay(wayID)
		c.evict(set.Blocks[wayID], &result)
	}

	block := tagging.Block{
		Tag:     blockAddr,
		SetID:   setID,
		WayID:   wayID,
		IsValid: true,
		IsDirty: a.Type.IsWrite(),
	}
	c.tags.Update(block)

	c.replacement.Update(setID, wayID, lineOf(block),
		a.ThreadID, a.PC, a.Type, false)

	result.WayID = wayID

	return result
}

func (c *Cache) hit(a mem.Access, block tagging.Block) AccessResult {
	if a.Type.IsWrite() && !block.IsDirty {
		block.IsDirty = true
		c.tags.Update(block)
	}

	c.stats.Hits++
	c.metrics.Hit()

	c.replacement.Update(block.SetID, block.WayID, lineOf(block),
		a.ThreadID, a.PC, a.Type, true)

	return AccessResult{
		Hit:   true,
		SetID: block.SetID,
		WayID: block.WayID,
	}
}

func (c *Cache) evict(victim tagging.Block, result *AccessResult) {
	result.Evicted = true
	result.EvictedDirty = victim.IsDirty
	result.EvictedAddr = victim.Tag << c.log2BlockSize

	c.stats.Evictions++
	if victim.IsDirty {
		c.stats.DirtyEvictions++
	}

	c.metrics.Evict(victim.IsDirty)
}

func (c *Cache) lineView(set *tagging.Set) []replacement.Line {
	for i, block := range set.Blocks {
		c.view[i] = lineOf(block)
	}

	return c.view
}

func (c *Cache) mustBeValidWay(wayID int) {
	if wayID < 0 || wayID >= c.numWays {
		panic(fmt.Sprintf("replacement picked way %d, associativity is %d",
			wayID, c.numWays))
	}
}

func lineOf(block tagging.Block) replacement.Line {
	return replacement.Line{
		Tag:   block.Tag,
		Valid: block.IsValid,
		Dirty: block.IsDirty,
	}
}

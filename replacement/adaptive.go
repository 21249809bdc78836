package replacement

import "fmt"

// AdaptivePolicy switches between a recency stack (LRU) and a sweep (CLOCK)
// discipline. Per-set state lives in the line store while the Arbiter that
// picks the discipline is shared by all sets.
type AdaptivePolicy struct {
	store   *lineStore
	recency recencyTracker
	sweep   *sweepTracker
	arbiter *Arbiter

	windowObserver func(WindowResult)
}

// NewAdaptivePolicy creates an AdaptivePolicy for numSets sets of numWays
// ways each, driven by arbiter.
func NewAdaptivePolicy(numSets, numWays int, arbiter *Arbiter) *AdaptivePolicy {
	store := newLineStore(numSets, numWays)

	return &AdaptivePolicy{
		store:   store,
		recency: recencyTracker{store: store},
		sweep:   newSweepTracker(store),
		arbiter: arbiter,
	}
}

// FindVictim asks the preferred sub-policy for a victim. It never returns
// Bypass.
func (p *AdaptivePolicy) FindVictim(setID int) int {
	switch sub := p.arbiter.Preferred(); sub {
	case SubPolicyRecency:
		return p.recency.victim(setID)
	case SubPolicySweep:
		return p.sweep.victim(setID)
	default:
		panic(fmt.Sprintf("unknown sub-policy %d", int(sub)))
	}
}

// Update records the outcome with the arbiter and then updates the metadata
// of the sub-policy that is active after the recording.
func (p *AdaptivePolicy) Update(setID, wayID int, hit bool) {
	p.store.mustBeValidSet(setID)
	p.store.mustBeValidWay(wayID)

	result := p.arbiter.Record(hit)
	if result.Closed && p.windowObserver != nil {
		p.windowObserver(result)
	}

	switch sub := p.arbiter.Active(); sub {
	case SubPolicyRecency:
		p.recency.touch(setID, wayID)
	case SubPolicySweep:
		p.sweep.touch(setID, wayID, hit)
	default:
		panic(fmt.Sprintf("unknown sub-policy %d", int(sub)))
	}
}

// Arbiter returns the arbiter shared by all sets.
func (p *AdaptivePolicy) Arbiter() *Arbiter {
	return p.arbiter
}

// LineState returns a copy of the metadata of a line.
func (p *AdaptivePolicy) LineState(setID, wayID int) LineState {
	return *p.store.line(setID, wayID)
}

// Cursor returns the sweep hand of a set.
func (p *AdaptivePolicy) Cursor(setID int) int {
	return p.sweep.cursor(setID)
}

// Reset clears the per-line metadata, the hands and the arbiter.
func (p *AdaptivePolicy) Reset() {
	p.store.reset()
	p.sweep.reset()
	p.arbiter.Reset()
}

package replacement

import (
	"fmt"
	"math/rand"
)

// A Policy chooses victims within a set and keeps its own bookkeeping up to
// date. There is one implementation per Kind.
type Policy interface {
	// FindVictim returns the way to evict from the set.
	FindVictim(setID int) int

	// Update is called after every access to the set, hit or miss.
	Update(setID, wayID int, hit bool)
}

// lruPolicy is the static true-LRU baseline.
type lruPolicy struct {
	store   *lineStore
	tracker recencyTracker
}

func newLRUPolicy(numSets, numWays int) *lruPolicy {
	store := newLineStore(numSets, numWays)

	return &lruPolicy{
		store:   store,
		tracker: recencyTracker{store: store},
	}
}

func (p *lruPolicy) FindVictim(setID int) int {
	return p.tracker.victim(setID)
}

func (p *lruPolicy) Update(setID, wayID int, _ bool) {
	p.tracker.touch(setID, wayID)
}

// randomPolicy evicts a uniformly chosen way and keeps no state.
type randomPolicy struct {
	numSets int
	numWays int
	rng     *rand.Rand
}

func newRandomPolicy(numSets, numWays int, seed int64) *randomPolicy {
	return &randomPolicy{
		numSets: numSets,
		numWays: numWays,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (p *randomPolicy) FindVictim(setID int) int {
	if setID < 0 || setID >= p.numSets {
		panic(fmt.Sprintf("set %d out of range [0, %d)", setID, p.numSets))
	}

	return p.rng.Intn(p.numWays)
}

func (p *randomPolicy) Update(int, int, bool) {
}

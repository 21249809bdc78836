package replacement

import "fmt"

// LineState is the replacement metadata kept for one cache line.
type LineState struct {
	// RecencyRank is the position in the set's recency stack: 0 is the most
	// recently used way and assoc-1 the least recently used one.
	RecencyRank int

	// Used is the sweep mark of the line.
	Used bool
}

// A Line is the read-only view of a cache line that the cache passes to the
// engine.
type Line struct {
	Tag   uint64
	Valid bool
	Dirty bool
}

// lineStore holds the LineState of every way of every set in one flat slice.
type lineStore struct {
	numSets int
	numWays int
	lines   []LineState
}

func newLineStore(numSets, numWays int) *lineStore {
	s := &lineStore{
		numSets: numSets,
		numWays: numWays,
		lines:   make([]LineState, numSets*numWays),
	}

	s.reset()

	return s
}

// reset puts way w at recency rank w and clears all sweep marks.
func (s *lineStore) reset() {
	for setID := 0; setID < s.numSets; setID++ {
		lines := s.set(setID)
		for wayID := range lines {
			lines[wayID] = LineState{RecencyRank: wayID}
		}
	}
}

// set returns the lines of a set. The returned slice aliases the store.
func (s *lineStore) set(setID int) []LineState {
	s.mustBeValidSet(setID)

	base := setID * s.numWays

	return s.lines[base : base+s.numWays : base+s.numWays]
}

func (s *lineStore) line(setID, wayID int) *LineState {
	s.mustBeValidWay(wayID)

	return &s.set(setID)[wayID]
}

func (s *lineStore) mustBeValidSet(setID int) {
	if setID < 0 || setID >= s.numSets {
		panic(fmt.Sprintf("set %d out of range [0, %d)", setID, s.numSets))
	}
}

func (s *lineStore) mustBeValidWay(wayID int) {
	if wayID < 0 || wayID >= s.numWays {
		panic(fmt.Sprintf("way %d out of range [0, %d)", wayID, s.numWays))
	}
}

package replacement

// sweepTracker implements the CLOCK discipline: one hand per set and a used
// mark per line.
type sweepTracker struct {
	store *lineStore
	hands []int
}

func newSweepTracker(store *lineStore) *sweepTracker {
	return &sweepTracker{
		store: store,
		hands: make([]int, store.numSets),
	}
}

// victim advances the hand until it points at an unmarked way, clearing the
// marks it passes. The hand stays on the victim. The loop ends after at most
// assoc clears since each step removes one mark.
func (t *sweepTracker) victim(setID int) int {
	lines := t.store.set(setID)
	hand := t.hands[setID]

	for lines[hand].Used {
		lines[hand].Used = false

		hand++
		if hand == len(lines) {
			hand = 0
		}
	}

	t.hands[setID] = hand

	return hand
}

// touch marks a way as used. Fills do not mark the line.
func (t *sweepTracker) touch(setID, wayID int, hit bool) {
	line := t.store.line(setID, wayID)

	if hit {
		line.Used = true
	}
}

func (t *sweepTracker) cursor(setID int) int {
	t.store.mustBeValidSet(setID)

	return t.hands[setID]
}

func (t *sweepTracker) reset() {
	for i := range t.hands {
		t.hands[i] = 0
	}
}

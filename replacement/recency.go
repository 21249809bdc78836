package replacement

// recencyTracker keeps a strict most-to-least recently used order per set.
type recencyTracker struct {
	store *lineStore
}

// victim returns the way at the bottom of the recency stack.
func (t recencyTracker) victim(setID int) int {
	lines := t.store.set(setID)
	bottom := len(lines) - 1

	for wayID := range lines {
		if lines[wayID].RecencyRank == bottom {
			return wayID
		}
	}

	return 0
}

// touch moves a way to the top of the stack. Every way that was more recent
// than it sinks by one position, so the ranks stay a permutation.
func (t recencyTracker) touch(setID, wayID int) {
	t.store.mustBeValidWay(wayID)

	lines := t.store.set(setID)
	currRank := lines[wayID].RecencyRank

	for i := range lines {
		if lines[i].RecencyRank < currRank {
			lines[i].RecencyRank++
		}
	}

	lines[wayID].RecencyRank = 0
}

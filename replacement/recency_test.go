package replacement

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ranksOf(store *lineStore, setID int) []int {
	lines := store.set(setID)
	ranks := make([]int, len(lines))

	for i, l := range lines {
		ranks[i] = l.RecencyRank
	}

	return ranks
}

func isPermutation(ranks []int) bool {
	sorted := append([]int(nil), ranks...)
	sort.Ints(sorted)

	for i, r := range sorted {
		if r != i {
			return false
		}
	}

	return true
}

var _ = Describe("Recency Tracker", func() {
	var (
		store   *lineStore
		tracker recencyTracker
	)

	BeforeEach(func() {
		store = newLineStore(4, 16)
		tracker = recencyTracker{store: store}
	})

	It("should start with the rank of each way equal to the way", func() {
		for setID := 0; setID < 4; setID++ {
			for wayID := 0; wayID < 16; wayID++ {
				Expect(store.line(setID, wayID).RecencyRank).To(Equal(wayID))
			}
		}

		Expect(tracker.victim(0)).To(Equal(15))
	})

	It("should make way 0 the victim after touching every way in order", func() {
		for wayID := 0; wayID < 16; wayID++ {
			tracker.touch(1, wayID)
		}

		Expect(store.line(1, 0).RecencyRank).To(Equal(15))
		Expect(store.line(1, 15).RecencyRank).To(Equal(0))
		Expect(tracker.victim(1)).To(Equal(0))
	})

	It("should not change the order when touching the most recent way", func() {
		tracker.touch(2, 9)
		before := ranksOf(store, 2)

		tracker.touch(2, 9)

		Expect(ranksOf(store, 2)).To(Equal(before))
	})

	It("should keep the sets independent", func() {
		tracker.touch(3, 15)

		Expect(ranksOf(store, 2)).To(Equal(ranksOf(store, 0)))
		Expect(store.line(3, 15).RecencyRank).To(Equal(0))
	})

	It("should keep the ranks a permutation under random touches", func() {
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 10000; i++ {
			setID := rng.Intn(4)
			tracker.touch(setID, rng.Intn(16))

			Expect(isPermutation(ranksOf(store, setID))).To(BeTrue())
		}
	})

	It("should agree with a stack model of LRU", func() {
		rng := rand.New(rand.NewSource(42))

		// order[0] is the most recent way.
		order := make([]int, 16)
		for i := range order {
			order[i] = i
		}

		for i := 0; i < 5000; i++ {
			wayID := rng.Intn(16)
			tracker.touch(0, wayID)

			pos := 0
			for order[pos] != wayID {
				pos++
			}

			copy(order[1:pos+1], order[:pos])
			order[0] = wayID

			Expect(tracker.victim(0)).To(Equal(order[15]))
			for rank, w := range order {
				Expect(store.line(0, w).RecencyRank).To(Equal(rank))
			}
		}
	})

	It("should panic on an out of range way", func() {
		Expect(func() { tracker.touch(0, 16) }).
			To(PanicWith("way 16 out of range [0, 16)"))
	})
})

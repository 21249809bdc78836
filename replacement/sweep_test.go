package replacement

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sweep Tracker", func() {
	var (
		store   *lineStore
		tracker *sweepTracker
	)

	BeforeEach(func() {
		store = newLineStore(2, 16)
		tracker = newSweepTracker(store)
	})

	It("should clear every mark in one pass when all ways are used", func() {
		for _, l := range store.set(0) {
			Expect(l.Used).To(BeFalse())
		}

		for wayID := 0; wayID < 16; wayID++ {
			tracker.touch(0, wayID, true)
		}

		Expect(tracker.victim(0)).To(Equal(0))
		Expect(tracker.cursor(0)).To(Equal(0))

		for _, l := range store.set(0) {
			Expect(l.Used).To(BeFalse())
		}
	})

	It("should stop on the first unmarked way and keep the hand on it", func() {
		tracker.touch(1, 0, true)
		tracker.touch(1, 1, true)

		Expect(tracker.victim(1)).To(Equal(2))
		Expect(tracker.cursor(1)).To(Equal(2))
		Expect(tracker.victim(1)).To(Equal(2))
		Expect(store.line(1, 0).Used).To(BeFalse())
		Expect(store.line(1, 1).Used).To(BeFalse())
	})

	It("should only mark on hits", func() {
		tracker.touch(0, 4, false)

		Expect(store.line(0, 4).Used).To(BeFalse())
	})

	It("should be idempotent on repeated hits", func() {
		tracker.touch(0, 4, true)
		once := append([]LineState(nil), store.set(0)...)

		tracker.touch(0, 4, true)

		Expect(store.set(0)).To(Equal(once))
		Expect(tracker.cursor(0)).To(Equal(0))
	})

	It("should wrap at the associativity of the set", func() {
		small := newLineStore(1, 4)
		t := newSweepTracker(small)
		t.hands[0] = 2

		for wayID := 0; wayID < 4; wayID++ {
			t.touch(0, wayID, true)
		}

		Expect(t.victim(0)).To(Equal(2))
		Expect(t.cursor(0)).To(Equal(2))
	})

	It("should always find an unmarked victim", func() {
		rng := rand.New(rand.NewSource(3))

		for i := 0; i < 2000; i++ {
			for wayID := 0; wayID < 16; wayID++ {
				if rng.Intn(4) != 0 {
					tracker.touch(0, wayID, true)
				}
			}

			victim := tracker.victim(0)

			Expect(victim).To(BeNumerically(">=", 0))
			Expect(victim).To(BeNumerically("<", 16))
			Expect(store.line(0, victim).Used).To(BeFalse())
			Expect(tracker.cursor(0)).To(Equal(victim))
		}
	})

	It("should not touch the recency ranks", func() {
		tracker.touch(0, 3, true)
		tracker.victim(0)

		Expect(isPermutation(ranksOf(store, 0))).To(BeTrue())
		Expect(store.line(0, 3).RecencyRank).To(Equal(3))
	})
})

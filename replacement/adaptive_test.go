package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AdaptivePolicy", func() {
	var (
		arbiter *Arbiter
		p       *AdaptivePolicy
	)

	BeforeEach(func() {
		arbiter = NewArbiter(DefaultArbiterConfig())
		p = NewAdaptivePolicy(8, 16, arbiter)
	})

	It("should pick victims with the sweep when SWEEP is preferred", func() {
		p.Update(0, 0, true)

		Expect(p.LineState(0, 0).Used).To(BeTrue())
		Expect(p.FindVictim(0)).To(Equal(1))
		Expect(p.Cursor(0)).To(Equal(1))
		Expect(p.LineState(0, 0).Used).To(BeFalse())
	})

	It("should leave the recency ranks alone while SWEEP is active", func() {
		p.Update(3, 12, true)
		p.Update(3, 5, false)

		Expect(ranksOf(p.store, 3)).To(Equal(ranksOf(p.store, 0)))
		Expect(p.LineState(3, 5).Used).To(BeFalse())
	})

	It("should count every update in the shared window", func() {
		p.Update(0, 1, false)
		p.Update(7, 2, true)

		Expect(arbiter.Window()).To(Equal(MissWindow{Accesses: 2, Misses: 1}))
	})

	Context("with a one-access window", func() {
		BeforeEach(func() {
			arbiter = NewArbiter(ArbiterConfig{
				WindowSize:          1,
				ThresholdMultiplier: 3,
				RoundCap:            5,
			})
			p = NewAdaptivePolicy(8, 16, arbiter)
		})

		It("should touch the sub-policy that is active after recording", func() {
			p.Update(0, 7, false)

			Expect(arbiter.Active()).To(Equal(SubPolicyRecency))
			Expect(p.LineState(0, 7).RecencyRank).To(Equal(0))
			Expect(isPermutation(ranksOf(p.store, 0))).To(BeTrue())
		})

		It("should pick victims with the recency stack once it scores higher",
			func() {
				p.Update(0, 3, false)
				p.Update(0, 5, true)
				p.Update(0, 5, true)

				Expect(arbiter.Score()).To(Equal(ScoreBoard{Recency: 2, Sweep: 1}))
				Expect(arbiter.Preferred()).To(Equal(SubPolicyRecency))
				Expect(p.FindVictim(0)).To(Equal(15))
				Expect(p.Cursor(0)).To(Equal(0))
			})

		It("should report closed windows", func() {
			var results []WindowResult
			p.windowObserver = func(r WindowResult) {
				results = append(results, r)
			}

			p.Update(0, 0, false)
			p.Update(0, 0, true)

			Expect(results).To(HaveLen(2))
			Expect(results[0].Switched).To(BeTrue())
			Expect(results[1].Switched).To(BeFalse())
		})
	})

	It("should reset the metadata and the arbiter", func() {
		p.Update(0, 2, true)
		p.FindVictim(0)
		p.store.line(0, 4).RecencyRank, p.store.line(0, 0).RecencyRank = 0, 4

		p.Reset()

		Expect(p.LineState(0, 2).Used).To(BeFalse())
		Expect(p.LineState(0, 4).RecencyRank).To(Equal(4))
		Expect(p.Cursor(0)).To(Equal(0))
		Expect(arbiter.Window()).To(Equal(MissWindow{}))
	})

	It("should panic on an out of range set", func() {
		Expect(func() { p.Update(8, 0, true) }).
			To(PanicWith("set 8 out of range [0, 8)"))
	})
})

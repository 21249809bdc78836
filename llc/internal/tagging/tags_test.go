package tagging

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tags", func() {
	var tags *TagArrayImpl

	BeforeEach(func() {
		tags = NewTagArray(1024, 4, 64)
	})

	It("should be able to get total size", func() {
		Expect(tags.TotalSize()).To(Equal(uint64(262144)))
	})

	It("should map block addresses to sets", func() {
		_, setID := tags.GetSet(1024 + 7)

		Expect(setID).To(Equal(7))
	})

	It("should lookup", func() {
		block := Block{Tag: 0x100, SetID: 0x100, WayID: 2, IsValid: true}
		tags.Update(block)

		found, ok := tags.Lookup(0x100)

		Expect(ok).To(BeTrue())
		Expect(found).To(Equal(block))
	})

	It("should not find invalid blocks", func() {
		tags.Update(Block{Tag: 0x100, SetID: 0x100, WayID: 0})

		block, ok := tags.Lookup(0x100)

		Expect(ok).To(BeFalse())
		Expect(block).To(BeZero())
	})

	It("should find the first invalid way", func() {
		tags.Update(Block{Tag: 5, SetID: 5, WayID: 0, IsValid: true})
		tags.Update(Block{Tag: 5 + 1024, SetID: 5, WayID: 2, IsValid: true})

		wayID, ok := tags.FirstInvalid(5)

		Expect(ok).To(BeTrue())
		Expect(wayID).To(Equal(1))
	})

	It("should report full sets", func() {
		for w := 0; w < 4; w++ {
			tags.Update(Block{Tag: uint64(w * 1024), WayID: w, IsValid: true})
		}

		_, ok := tags.FirstInvalid(0)

		Expect(ok).To(BeFalse())
	})

	It("should reset", func() {
		tags.Update(Block{Tag: 3, SetID: 3, WayID: 1, IsValid: true})

		tags.Reset()

		Expect(tags.Sets[3].Blocks[1]).To(Equal(Block{SetID: 3, WayID: 1}))
	})
})

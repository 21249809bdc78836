package hooking

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type namedDomain struct {
	HookableBase
}

func (d *namedDomain) Name() string {
	return "LLC"
}

type switchItem struct{}

func (switchItem) String() string {
	return "RECENCY->SWEEP"
}

var (
	hookPosA = &HookPos{Name: "A"}
	hookPosB = &HookPos{Name: "B"}
)

var _ = Describe("HookableBase", func() {
	var (
		mockCtrl *gomock.Controller
		domain   *namedDomain
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		domain = &namedDomain{}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should invoke every registered hook in order", func() {
		hook1 := NewMockHook(mockCtrl)
		hook2 := NewMockHook(mockCtrl)
		domain.AcceptHook(hook1)
		domain.AcceptHook(hook2)

		ctx := HookCtx{Domain: domain, Pos: hookPosA, Item: 1}
		gomock.InOrder(
			hook1.EXPECT().Func(ctx),
			hook2.EXPECT().Func(ctx),
		)

		domain.InvokeHook(ctx)

		Expect(domain.NumHooks()).To(Equal(2))
		Expect(domain.Hooks()).To(HaveLen(2))
	})

	It("should panic when the same hook is registered twice", func() {
		hook := NewMockHook(mockCtrl)
		domain.AcceptHook(hook)

		Expect(func() { domain.AcceptHook(hook) }).To(Panic())
	})

	It("should accept several hook funcs", func() {
		count := 0
		f := HookFunc(func(HookCtx) { count++ })

		domain.AcceptHook(f)
		domain.AcceptHook(f)
		domain.InvokeHook(HookCtx{Domain: domain, Pos: hookPosA})

		Expect(count).To(Equal(2))
	})
})

var _ = Describe("LogHook", func() {
	var (
		buf    *bytes.Buffer
		domain *namedDomain
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		domain = &namedDomain{}
	})

	It("should log the domain, position and item", func() {
		h := NewLogHook(log.New(buf, "", 0))

		h.Func(HookCtx{Domain: domain, Pos: hookPosA, Item: switchItem{}})

		Expect(buf.String()).To(Equal("LLC, A, RECENCY->SWEEP\n"))
	})

	It("should only log the selected positions", func() {
		h := NewLogHook(log.New(buf, "", 0), hookPosB)

		h.Func(HookCtx{Domain: domain, Pos: hookPosA, Item: 1})
		h.Func(HookCtx{Domain: domain, Pos: hookPosB, Item: 2})

		Expect(buf.String()).To(Equal("LLC, B, 2\n"))
	})

	It("should tolerate anonymous domains and empty items", func() {
		h := NewLogHook(log.New(buf, "", 0))

		h.Func(HookCtx{Pos: hookPosA})

		Expect(buf.String()).To(Equal("-, A, -\n"))
	})
})

var _ = Describe("PosCountTracer", func() {
	It("should count invocations per position", func() {
		t := NewPosCountTracer()

		t.Func(HookCtx{Pos: hookPosB})
		t.Func(HookCtx{Pos: hookPosA})
		t.Func(HookCtx{Pos: hookPosB})

		Expect(t.GetPosNames()).To(Equal([]string{"B", "A"}))
		Expect(t.GetCount(hookPosA)).To(Equal(uint64(1)))
		Expect(t.GetCount(hookPosB)).To(Equal(uint64(2)))
		Expect(t.GetCountByName("B")).To(Equal(uint64(2)))
		Expect(t.GetCountByName("C")).To(BeZero())
	})
})

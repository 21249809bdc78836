package hooking

import (
	"sync"
)

// PosCountTracer counts how many times each hook position is triggered.
type PosCountTracer struct {
	lock sync.Mutex

	posNames []string
	posCount map[string]uint64
}

// NewPosCountTracer creates a new PosCountTracer.
func NewPosCountTracer() *PosCountTracer {
	t := &PosCountTracer{
		posCount: make(map[string]uint64),
	}

	return t
}

// Func counts the position of the invocation.
func (t *PosCountTracer) Func(ctx HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	name := ctx.Pos.Name

	_, ok := t.posCount[name]
	if !ok {
		t.posNames = append(t.posNames, name)
	}

	t.posCount[name]++
}

// GetPosNames returns the position names seen so far, in order of first
// appearance.
func (t *PosCountTracer) GetPosNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, len(t.posNames))
	copy(names, t.posNames)

	return names
}

// GetCount returns the number of times the position has been triggered.
func (t *PosCountTracer) GetCount(pos *HookPos) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.posCount[pos.Name]
}

// GetCountByName returns the number of times the named position has been
// triggered.
func (t *PosCountTracer) GetCountByName(name string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.posCount[name]
}

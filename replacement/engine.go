// Package replacement implements the replacement state of a last-level cache:
// the per-line metadata, the victim decision on a miss and the metadata
// update on every access.
//
// Three kinds of policy are available. LRU and RANDOM are static baselines.
// ADAPTIVE runs a recency-stack (LRU) discipline and a sweep (CLOCK)
// discipline side by side and lets a cache-wide arbiter choose between them
// from the miss rate observed over fixed-size windows.
//
// An Engine is not safe for concurrent use. The arbiter is shared by every
// set, so calls must be serialized by the caller.
package replacement

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/llcrepl/hooking"
	"github.com/sarchlab/llcrepl/mem"
)

// An Engine is the replacement state of one cache, as seen by the cache
// model. Build it with a Builder.
type Engine struct {
	hooking.HookableBase

	name    string
	numSets int
	numWays int

	kind          Kind
	policy        Policy
	arbiterConfig ArbiterConfig
	seed          int64

	timer uint64
}

// NewEngine creates an engine with the default arbiter configuration.
func NewEngine(numSets, numWays int, kind Kind) *Engine {
	return MakeBuilder().
		WithNumSets(numSets).
		WithWayAssociativity(numWays).
		WithKind(kind).
		Build("Replacement")
}

// Name returns the name of the engine.
func (e *Engine) Name() string {
	return e.name
}

// Kind returns the configured policy kind.
func (e *Engine) Kind() Kind {
	return e.kind
}

// NumSets returns the number of sets.
func (e *Engine) NumSets() int {
	return e.numSets
}

// WayAssociativity returns the number of ways per set.
func (e *Engine) WayAssociativity() int {
	return e.numWays
}

// Policy returns the policy the engine dispatches to.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Adaptive returns the adaptive policy, or nil if the engine runs another
// kind.
func (e *Engine) Adaptive() *AdaptivePolicy {
	p, _ := e.policy.(*AdaptivePolicy)
	return p
}

// SetKind replaces the policy. The state of the new policy starts fresh.
func (e *Engine) SetKind(kind Kind) {
	e.kind = kind
	e.policy = e.createPolicy(kind)
}

// IncrementTimer counts one reference to the cache.
func (e *Engine) IncrementTimer() {
	e.timer++
}

// Timer returns the number of references counted by IncrementTimer.
func (e *Engine) Timer() uint64 {
	return e.timer
}

// GetVictim returns the way to replace in a set that has no invalid way. set
// is the cache's view of the lines of the set and may be nil. The result is
// in [0, assoc) or Bypass.
func (e *Engine) GetVictim(
	threadID int,
	setID int,
	set []Line,
	pc, paddr uint64,
	accessType mem.AccessType,
) int {
	e.mustBeValidSet(setID)

	if set != nil && len(set) != e.numWays {
		panic(fmt.Sprintf("set view has %d lines, associativity is %d",
			len(set), e.numWays))
	}

	evt := VictimEvent{
		ThreadID: threadID,
		SetID:    setID,
		PC:       pc,
		Address:  paddr,
		Type:     accessType,
	}

	if adaptive := e.Adaptive(); adaptive != nil {
		evt.Via = adaptive.arbiter.Preferred()
		evt.HasVia = true
	}

	evt.WayID = e.policy.FindVictim(setID)

	if e.NumHooks() > 0 {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosVictim,
			Item:   evt,
		})
	}

	return evt.WayID
}

// Update updates the replacement state after an access to (setID, wayID).
// It must be called on every access, hit or miss.
func (e *Engine) Update(
	setID, wayID int,
	line Line,
	threadID int,
	pc uint64,
	accessType mem.AccessType,
	hit bool,
) {
	e.mustBeValidSet(setID)
	e.mustBeValidWay(wayID)

	e.policy.Update(setID, wayID, hit)

	if e.NumHooks() > 0 {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosUpdate,
			Item: UpdateEvent{
				ThreadID: threadID,
				SetID:    setID,
				WayID:    wayID,
				PC:       pc,
				Type:     accessType,
				Hit:      hit,
			},
			Detail: line,
		})
	}
}

// PrintStats writes a human-readable summary of the policy.
func (e *Engine) PrintStats(w io.Writer) error {
	var b strings.Builder

	b.WriteString("==========================================================\n")
	b.WriteString("=========== Replacement Policy Statistics ================\n")
	b.WriteString("==========================================================\n")
	b.WriteString(e.kind.String() + "\n")

	if adaptive := e.Adaptive(); adaptive != nil {
		a := adaptive.Arbiter()
		score := a.Score()

		fmt.Fprintf(&b, "Active sub-policy: %s\n", a.Active())
		fmt.Fprintf(&b, "Preferred sub-policy: %s\n", a.Preferred())
		fmt.Fprintf(&b, "Scores: recency=%d sweep=%d\n",
			score.Recency, score.Sweep)
		fmt.Fprintf(&b, "Windows closed: %d\n", a.WindowsClosed())
		fmt.Fprintf(&b, "Policy switches: %d\n", a.Switches())
		fmt.Fprintf(&b, "Score decays: %d\n", a.Decays())
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (e *Engine) createPolicy(kind Kind) Policy {
	switch kind {
	case KindLRU:
		return newLRUPolicy(e.numSets, e.numWays)
	case KindRandom:
		return newRandomPolicy(e.numSets, e.numWays, e.seed)
	case KindAdaptive:
		p := NewAdaptivePolicy(e.numSets, e.numWays,
			NewArbiter(e.arbiterConfig))
		p.windowObserver = e.observeWindow

		return p
	default:
		panic(fmt.Sprintf("unknown replacement policy: %d", int(kind)))
	}
}

func (e *Engine) observeWindow(result WindowResult) {
	if e.NumHooks() == 0 {
		return
	}

	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    HookPosWindowClosed,
		Item:   result,
	})

	if result.Switched {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosPolicySwitch,
			Item:   result,
		})
	}

	if result.Decayed {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosScoreDecay,
			Item:   result,
		})
	}
}

func (e *Engine) mustBeValidSet(setID int) {
	if setID < 0 || setID >= e.numSets {
		panic(fmt.Sprintf("set %d out of range [0, %d)", setID, e.numSets))
	}
}

func (e *Engine) mustBeValidWay(wayID int) {
	if wayID < 0 || wayID >= e.numWays {
		panic(fmt.Sprintf("way %d out of range [0, %d)", wayID, e.numWays))
	}
}

package replacement

import (
	"fmt"

	"github.com/sarchlab/llcrepl/hooking"
	"github.com/sarchlab/llcrepl/mem"
)

// The positions at which an Engine invokes its hooks.
var (
	// HookPosVictim is triggered after a victim is chosen. Item is a
	// VictimEvent.
	HookPosVictim = &hooking.HookPos{Name: "Replacement.Victim"}

	// HookPosUpdate is triggered after the metadata of an access is updated.
	// Item is an UpdateEvent.
	HookPosUpdate = &hooking.HookPos{Name: "Replacement.Update"}

	// HookPosWindowClosed is triggered when the arbiter completes a miss
	// window. Item is a WindowResult.
	HookPosWindowClosed = &hooking.HookPos{Name: "Replacement.WindowClosed"}

	// HookPosPolicySwitch is triggered when a window toggles the active
	// sub-policy. Item is a WindowResult.
	HookPosPolicySwitch = &hooking.HookPos{Name: "Replacement.PolicySwitch"}

	// HookPosScoreDecay is triggered when the scoreboard is reset. Item is a
	// WindowResult.
	HookPosScoreDecay = &hooking.HookPos{Name: "Replacement.ScoreDecay"}
)

// VictimEvent describes a victim decision.
type VictimEvent struct {
	ThreadID int
	SetID    int
	WayID    int
	PC       uint64
	Address  uint64
	Type     mem.AccessType

	// Via is the sub-policy that chose the victim. Only set by the adaptive
	// policy.
	Via    SubPolicy
	HasVia bool
}

func (e VictimEvent) String() string {
	s := fmt.Sprintf("victim set=%d way=%d addr=0x%x %s",
		e.SetID, e.WayID, e.Address, e.Type)
	if e.HasVia {
		s += " via " + e.Via.String()
	}

	return s
}

// UpdateEvent describes a metadata update.
type UpdateEvent struct {
	ThreadID int
	SetID    int
	WayID    int
	PC       uint64
	Type     mem.AccessType
	Hit      bool
}

func (e UpdateEvent) String() string {
	outcome := "miss"
	if e.Hit {
		outcome = "hit"
	}

	return fmt.Sprintf("update set=%d way=%d %s %s",
		e.SetID, e.WayID, e.Type, outcome)
}

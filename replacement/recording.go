package replacement

import (
	"github.com/rs/xid"
	"github.com/sarchlab/llcrepl/datarecording"
	"github.com/sarchlab/llcrepl/hooking"
)

// Tables written by a WindowRecorder.
const (
	WindowTable = "arbiter_windows"
	SwitchTable = "policy_switches"
)

// WindowEntry is one row of the arbiter_windows table.
type WindowEntry struct {
	ID           string
	Engine       string
	WindowIndex  uint64
	Accesses     uint64
	Misses       uint64
	Active       string
	Switched     bool
	Decayed      bool
	ScoreRecency uint64
	ScoreSweep   uint64
}

// SwitchEntry is one row of the policy_switches table.
type SwitchEntry struct {
	ID          string
	Engine      string
	WindowIndex uint64
	FromPolicy  string
	ToPolicy    string
	Misses      uint64
}

// WindowRecorder is a hook that stores every closed arbiter window, and every
// switch of the active sub-policy, through a DataRecorder.
type WindowRecorder struct {
	recorder datarecording.DataRecorder
}

// NewWindowRecorder creates the tables and returns the hook.
func NewWindowRecorder(recorder datarecording.DataRecorder) *WindowRecorder {
	recorder.CreateTable(WindowTable, WindowEntry{})
	recorder.CreateTable(SwitchTable, SwitchEntry{})

	return &WindowRecorder{recorder: recorder}
}

// Func records the window result carried by ctx. Other positions are ignored.
func (r *WindowRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosWindowClosed {
		return
	}

	result, ok := ctx.Item.(WindowResult)
	if !ok {
		return
	}

	engine := "-"
	if named, ok := ctx.Domain.(interface{ Name() string }); ok {
		engine = named.Name()
	}

	r.recorder.InsertData(WindowTable, WindowEntry{
		ID:           xid.New().String(),
		Engine:       engine,
		WindowIndex:  result.Index,
		Accesses:     result.Accesses,
		Misses:       result.Misses,
		Active:       result.Active.String(),
		Switched:     result.Switched,
		Decayed:      result.Decayed,
		ScoreRecency: result.Score.Recency,
		ScoreSweep:   result.Score.Sweep,
	})

	if result.Switched {
		r.recorder.InsertData(SwitchTable, SwitchEntry{
			ID:          xid.New().String(),
			Engine:      engine,
			WindowIndex: result.Index,
			FromPolicy:  result.Previous.String(),
			ToPolicy:    result.Active.String(),
			Misses:      result.Misses,
		})
	}
}

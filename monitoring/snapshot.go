package monitoring

import (
	"github.com/sarchlab/llcrepl/llc"
	"github.com/sarchlab/llcrepl/replacement"
)

// Snapshot is the state of a running simulation as shown by the monitor.
type Snapshot struct {
	Cache   string        `json:"cache"`
	Policy  string        `json:"policy"`
	Timer   uint64        `json:"timer"`
	Stats   llc.Stats     `json:"stats"`
	Arbiter *ArbiterState `json:"arbiter,omitempty"`
}

// ArbiterState is the state of the arbiter of an adaptive engine.
type ArbiterState struct {
	Active         string `json:"active"`
	Preferred      string `json:"preferred"`
	ScoreRecency   uint64 `json:"score_recency"`
	ScoreSweep     uint64 `json:"score_sweep"`
	WindowAccesses uint64 `json:"window_accesses"`
	WindowMisses   uint64 `json:"window_misses"`
	WindowsClosed  uint64 `json:"windows_closed"`
	Switches       uint64 `json:"switches"`
	Decays         uint64 `json:"decays"`
}

// TakeSnapshot reads the state of a cache and its engine. It must be called
// from the goroutine that drives the cache.
func TakeSnapshot(c *llc.Cache, e *replacement.Engine) Snapshot {
	s := Snapshot{
		Cache:  c.Name(),
		Policy: e.Kind().String(),
		Timer:  e.Timer(),
		Stats:  c.Stats(),
	}

	if adaptive := e.Adaptive(); adaptive != nil {
		a := adaptive.Arbiter()
		score := a.Score()
		window := a.Window()

		s.Arbiter = &ArbiterState{
			Active:         a.Active().String(),
			Preferred:      a.Preferred().String(),
			ScoreRecency:   score.Recency,
			ScoreSweep:     score.Sweep,
			WindowAccesses: window.Accesses,
			WindowMisses:   window.Misses,
			WindowsClosed:  a.WindowsClosed(),
			Switches:       a.Switches(),
			Decays:         a.Decays(),
		}
	}

	return s
}

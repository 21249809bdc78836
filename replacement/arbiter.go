package replacement

import "fmt"

// Default arbiter parameters.
const (
	DefaultWindowSize          = 100
	DefaultThresholdMultiplier = 3
	DefaultRoundCap            = 5
)

// MissWindow counts the accesses and misses of the current sampling window.
type MissWindow struct {
	Accesses uint64
	Misses   uint64
}

// ScoreBoard holds the reward of each sub-policy.
type ScoreBoard struct {
	Recency uint64
	Sweep   uint64
}

// baselineScore is the value the scoreboard decays to. SWEEP starts one
// point ahead so that a fresh round prefers it.
var baselineScore = ScoreBoard{Recency: 0, Sweep: 1}

// Of returns the score of a sub-policy.
func (s ScoreBoard) Of(p SubPolicy) uint64 {
	switch p {
	case SubPolicyRecency:
		return s.Recency
	case SubPolicySweep:
		return s.Sweep
	default:
		panic(fmt.Sprintf("unknown sub-policy %d", int(p)))
	}
}

// Total returns the sum of both scores.
func (s ScoreBoard) Total() uint64 {
	return s.Recency + s.Sweep
}

func (s *ScoreBoard) reward(p SubPolicy) {
	switch p {
	case SubPolicyRecency:
		s.Recency++
	case SubPolicySweep:
		s.Sweep++
	default:
		panic(fmt.Sprintf("unknown sub-policy %d", int(p)))
	}
}

// ArbiterConfig sets the window size, the miss threshold and the score round
// cap of an Arbiter.
//
// A window trips when Misses*ThresholdMultiplier > WindowSize. The scores
// decay once their sum exceeds RoundCap.
type ArbiterConfig struct {
	WindowSize          uint64
	ThresholdMultiplier uint64
	RoundCap            uint64
}

// DefaultArbiterConfig returns the configuration of the reference design.
func DefaultArbiterConfig() ArbiterConfig {
	return ArbiterConfig{
		WindowSize:          DefaultWindowSize,
		ThresholdMultiplier: DefaultThresholdMultiplier,
		RoundCap:            DefaultRoundCap,
	}
}

// WindowResult describes what happened on one call to Arbiter.Record.
type WindowResult struct {
	// Closed is true when the call completed a window. All the other fields
	// are only meaningful when Closed is true.
	Closed bool

	Index    uint64
	Accesses uint64
	Misses   uint64

	// Previous is the active sub-policy during the window and Active the one
	// after the decision.
	Previous SubPolicy
	Active   SubPolicy
	Switched bool

	// Decayed reports that the scores were reset after the decision.
	Decayed bool
	Score   ScoreBoard
}

func (r WindowResult) String() string {
	if !r.Closed {
		return "window open"
	}

	s := fmt.Sprintf("window %d misses=%d/%d %s",
		r.Index, r.Misses, r.Accesses, r.Previous)
	if r.Switched {
		s += "->" + r.Active.String()
	}

	s += fmt.Sprintf(" score=(%d,%d)", r.Score.Recency, r.Score.Sweep)
	if r.Decayed {
		s += " decayed"
	}

	return s
}

// An Arbiter samples the miss rate over fixed-size windows and decides which
// sub-policy is active. One Arbiter serves every set of a cache.
type Arbiter struct {
	config ArbiterConfig

	window MissWindow
	score  ScoreBoard
	active SubPolicy

	windowsClosed uint64
	switches      uint64
	decays        uint64
}

// NewArbiter creates an Arbiter with SWEEP active and the baseline scores.
func NewArbiter(config ArbiterConfig) *Arbiter {
	if config.WindowSize == 0 {
		panic("window size must be positive")
	}

	if config.ThresholdMultiplier == 0 {
		panic("threshold multiplier must be positive")
	}

	return &Arbiter{
		config: config,
		score:  baselineScore,
		active: SubPolicySweep,
	}
}

// Record accounts for one access. At the end of a window it either toggles
// the active sub-policy, when the window missed too often, or rewards the
// active one. Only the active sub-policy is ever rewarded.
func (a *Arbiter) Record(hit bool) WindowResult {
	a.window.Accesses++
	if !hit {
		a.window.Misses++
	}

	if a.window.Accesses < a.config.WindowSize {
		return WindowResult{}
	}

	a.windowsClosed++
	result := WindowResult{
		Closed:   true,
		Index:    a.windowsClosed,
		Accesses: a.window.Accesses,
		Misses:   a.window.Misses,
		Previous: a.active,
	}

	if a.window.Misses*a.config.ThresholdMultiplier > a.config.WindowSize {
		a.active = a.active.other()
		a.switches++
		result.Switched = true
	} else {
		a.score.reward(a.active)
	}

	a.window = MissWindow{}

	if a.score.Total() > a.config.RoundCap {
		a.score = baselineScore
		a.decays++
		result.Decayed = true
	}

	result.Active = a.active
	result.Score = a.score

	return result
}

// Preferred returns the sub-policy that should pick victims: the one with the
// higher score, or the active one on a tie.
func (a *Arbiter) Preferred() SubPolicy {
	switch {
	case a.score.Recency > a.score.Sweep:
		return SubPolicyRecency
	case a.score.Sweep > a.score.Recency:
		return SubPolicySweep
	default:
		return a.active
	}
}

// Active returns the sub-policy whose metadata is being updated.
func (a *Arbiter) Active() SubPolicy {
	return a.active
}

// Window returns the counters of the open window.
func (a *Arbiter) Window() MissWindow {
	return a.window
}

// Score returns the current scoreboard.
func (a *Arbiter) Score() ScoreBoard {
	return a.score
}

// Config returns the configuration of the arbiter.
func (a *Arbiter) Config() ArbiterConfig {
	return a.config
}

// WindowsClosed returns how many windows have completed.
func (a *Arbiter) WindowsClosed() uint64 {
	return a.windowsClosed
}

// Switches returns how many times the active sub-policy changed.
func (a *Arbiter) Switches() uint64 {
	return a.switches
}

// Decays returns how many times the scoreboard was reset.
func (a *Arbiter) Decays() uint64 {
	return a.decays
}

// Reset returns the arbiter to its initial state.
func (a *Arbiter) Reset() {
	a.window = MissWindow{}
	a.score = baselineScore
	a.active = SubPolicySweep
	a.windowsClosed = 0
	a.switches = 0
	a.decays = 0
}

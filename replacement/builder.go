package replacement

// Builder can build replacement engines.
type Builder struct {
	numSets             int
	numWays             int
	kind                Kind
	windowSize          uint64
	thresholdMultiplier uint64
	roundCap            uint64
	seed                int64
}

// MakeBuilder creates a new builder with the default parameters of a 2048-set,
// 16-way adaptive last-level cache.
func MakeBuilder() Builder {
	return Builder{
		numSets:             2048,
		numWays:             16,
		kind:                KindAdaptive,
		windowSize:          DefaultWindowSize,
		thresholdMultiplier: DefaultThresholdMultiplier,
		roundCap:            DefaultRoundCap,
		seed:                1,
	}
}

// WithNumSets sets the number of sets.
func (b Builder) WithNumSets(numSets int) Builder {
	b.numSets = numSets
	return b
}

// WithWayAssociativity sets the number of ways per set.
func (b Builder) WithWayAssociativity(numWays int) Builder {
	b.numWays = numWays
	return b
}

// WithKind sets the policy kind.
func (b Builder) WithKind(kind Kind) Builder {
	b.kind = kind
	return b
}

// WithWindowSize sets the number of accesses per miss window.
func (b Builder) WithWindowSize(windowSize uint64) Builder {
	b.windowSize = windowSize
	return b
}

// WithThresholdMultiplier sets K in the switch condition
// misses*K > windowSize.
func (b Builder) WithThresholdMultiplier(k uint64) Builder {
	b.thresholdMultiplier = k
	return b
}

// WithRoundCap sets the total score above which the scoreboard decays.
func (b Builder) WithRoundCap(roundCap uint64) Builder {
	b.roundCap = roundCap
	return b
}

// WithSeed sets the seed of the random policy.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// Build builds an engine.
func (b Builder) Build(name string) *Engine {
	b.mustBePositive(b.numSets, "number of sets")
	b.mustBePositive(b.numWays, "way associativity")

	e := &Engine{
		name:    name,
		numSets: b.numSets,
		numWays: b.numWays,
		kind:    b.kind,
		seed:    b.seed,
		arbiterConfig: ArbiterConfig{
			WindowSize:          b.windowSize,
			ThresholdMultiplier: b.thresholdMultiplier,
			RoundCap:            b.roundCap,
		},
	}

	e.policy = e.createPolicy(b.kind)

	return e
}

func (b Builder) mustBePositive(v int, what string) {
	if v <= 0 {
		panic(what + " must be positive")
	}
}

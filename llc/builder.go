package llc

import (
	"github.com/sarchlab/llcrepl/llc/internal/tagging"
	"github.com/sarchlab/llcrepl/replacement"
)

// Builder can build last-level cache models.
type Builder struct {
	numSets          int
	wayAssociativity int
	log2BlockSize    int
	replacementKind  replacement.Kind
	replacement      ReplacementPolicy
	metrics          Metrics
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		numSets:          2048,
		wayAssociativity: 16,
		log2BlockSize:    6,
		replacementKind:  replacement.KindAdaptive,
		metrics:          NoopMetrics{},
	}
}

// WithNumSets sets the number of sets.
func (b Builder) WithNumSets(numSets int) Builder {
	b.numSets = numSets
	return b
}

// WithWayAssociativity sets the way associativity of the builder.
func (b Builder) WithWayAssociativity(wayAssociativity int) Builder {
	b.wayAssociativity = wayAssociativity
	return b
}

// WithLog2BlockSize sets the log2 of the cache line size.
func (b Builder) WithLog2BlockSize(log2BlockSize int) Builder {
	b.log2BlockSize = log2BlockSize
	return b
}

// WithReplacementKind sets the kind of the replacement engine created by
// Build. It is ignored if WithReplacement is used.
func (b Builder) WithReplacementKind(kind replacement.Kind) Builder {
	b.replacementKind = kind
	return b
}

// WithReplacement sets the replacement policy. Its geometry must match the
// cache.
func (b Builder) WithReplacement(policy ReplacementPolicy) Builder {
	b.replacement = policy
	return b
}

// WithMetrics sets the metrics sink.
func (b Builder) WithMetrics(metrics Metrics) Builder {
	b.metrics = metrics
	return b
}

// Build builds a cache.
func (b Builder) Build(name string) *Cache {
	b.mustBeValidGeometry()

	policy := b.replacement
	if policy == nil {
		policy = replacement.MakeBuilder().
			WithNumSets(b.numSets).
			WithWayAssociativity(b.wayAssociativity).
			WithKind(b.replacementKind).
			Build(name + ".Replacement")
	}

	metrics := b.metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	blockSize := 1 << b.log2BlockSize

	return &Cache{
		name:          name,
		log2BlockSize: uint(b.log2BlockSize),
		numWays:       b.wayAssociativity,
		tags:          tagging.NewTagArray(b.numSets, b.wayAssociativity, blockSize),
		replacement:   policy,
		metrics:       metrics,
		view:          make([]replacement.Line, b.wayAssociativity),
	}
}

func (b Builder) mustBeValidGeometry() {
	if b.numSets <= 0 {
		panic("number of sets must be positive")
	}

	if b.wayAssociativity <= 0 {
		panic("way associativity must be positive")
	}

	if b.log2BlockSize < 0 || b.log2BlockSize > 20 {
		panic("log2 block size must be in [0, 20]")
	}
}

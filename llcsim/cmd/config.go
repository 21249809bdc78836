package cmd

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/llcrepl/mem"
	"github.com/sarchlab/llcrepl/replacement"
	"github.com/sarchlab/llcrepl/trace"
)

type simConfig struct {
	numSets   int
	numWays   int
	blockSize int
	policy    string

	windowSize uint64
	threshold  uint64
	roundCap   uint64
	seed       int64

	tracePath string
	workload  string
	n         int
}

func addCacheFlags(c *cobra.Command) {
	f := c.PersistentFlags()

	f.Int("sets", envInt("LLCSIM_SETS", 2048), "Number of sets")
	f.Int("assoc", envInt("LLCSIM_ASSOC", 16), "Way associativity")
	f.Int("block", 64, "Block size in bytes, a power of two")
	f.String("policy", envString("LLCSIM_POLICY", "adaptive"),
		"Replacement policy: lru, random or adaptive")
	f.Uint64("window", replacement.DefaultWindowSize,
		"Accesses per arbiter window")
	f.Uint64("threshold", replacement.DefaultThresholdMultiplier,
		"Switch when misses*threshold exceeds the window")
	f.Uint64("round-cap", replacement.DefaultRoundCap,
		"Reset the scores once their sum exceeds this")
	f.Int64("seed", 1, "Seed of the random policy and the workloads")
	f.String("trace", "", "Trace file to replay")
	f.String("workload", "scan-reuse",
		"Synthetic workload used when no trace is given")
	f.Int("n", 1000000, "Number of accesses of the synthetic workload")
}

func readConfig(c *cobra.Command) (simConfig, error) {
	f := c.Flags()

	var cfg simConfig
	var err error

	if cfg.numSets, err = f.GetInt("sets"); err != nil {
		return cfg, err
	}

	if cfg.numWays, err = f.GetInt("assoc"); err != nil {
		return cfg, err
	}

	if cfg.blockSize, err = f.GetInt("block"); err != nil {
		return cfg, err
	}

	if cfg.policy, err = f.GetString("policy"); err != nil {
		return cfg, err
	}

	if cfg.windowSize, err = f.GetUint64("window"); err != nil {
		return cfg, err
	}

	if cfg.threshold, err = f.GetUint64("threshold"); err != nil {
		return cfg, err
	}

	if cfg.roundCap, err = f.GetUint64("round-cap"); err != nil {
		return cfg, err
	}

	if cfg.seed, err = f.GetInt64("seed"); err != nil {
		return cfg, err
	}

	if cfg.tracePath, err = f.GetString("trace"); err != nil {
		return cfg, err
	}

	if cfg.workload, err = f.GetString("workload"); err != nil {
		return cfg, err
	}

	if cfg.n, err = f.GetInt("n"); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func (cfg simConfig) validate() error {
	if cfg.numSets <= 0 || cfg.numWays <= 0 {
		return fmt.Errorf("invalid geometry %d sets x %d ways",
			cfg.numSets, cfg.numWays)
	}

	if cfg.blockSize <= 0 || bits.OnesCount(uint(cfg.blockSize)) != 1 {
		return fmt.Errorf("block size %d is not a power of two", cfg.blockSize)
	}

	if cfg.windowSize == 0 || cfg.threshold == 0 {
		return fmt.Errorf("window and threshold must be positive")
	}

	if _, err := replacement.ParseKind(cfg.policy); err != nil {
		return err
	}

	return nil
}

func (cfg simConfig) log2BlockSize() int {
	return bits.TrailingZeros(uint(cfg.blockSize))
}

func (cfg simConfig) kind() replacement.Kind {
	k, err := replacement.ParseKind(cfg.policy)
	if err != nil {
		panic(err)
	}

	return k
}

func (cfg simConfig) buildEngine(kind replacement.Kind, name string) *replacement.Engine {
	return replacement.MakeBuilder().
		WithNumSets(cfg.numSets).
		WithWayAssociativity(cfg.numWays).
		WithKind(kind).
		WithWindowSize(cfg.windowSize).
		WithThresholdMultiplier(cfg.threshold).
		WithRoundCap(cfg.roundCap).
		WithSeed(cfg.seed).
		Build(name)
}

func (cfg simConfig) workloadConfig() trace.WorkloadConfig {
	return trace.WorkloadConfig{
		NumSets:   cfg.numSets,
		NumWays:   cfg.numWays,
		BlockSize: uint64(cfg.blockSize),
		Seed:      cfg.seed,
	}
}

func (cfg simConfig) loadAccesses() ([]mem.Access, error) {
	if cfg.tracePath == "" {
		return trace.Workload(cfg.workload, cfg.workloadConfig(), cfg.n)
	}

	f, err := os.Open(cfg.tracePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return trace.NewReader(f).ReadAll()
}

// instructionCount approximates the instructions of a trace by its
// instruction fetches, or by its length when it has none.
func instructionCount(accesses []mem.Access) uint64 {
	var n uint64

	for _, a := range accesses {
		if a.Type == mem.AccessIFetch {
			n++
		}
	}

	if n == 0 {
		return uint64(len(accesses))
	}

	return n
}

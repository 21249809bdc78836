package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/llcrepl/llc"
	"github.com/sarchlab/llcrepl/mem"
	"github.com/sarchlab/llcrepl/reference"
	"github.com/sarchlab/llcrepl/replacement"
)

const cancelCheckInterval = 4096

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay the same trace under every policy and the ARC reference.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := readConfig(cmd)
		if err != nil {
			return err
		}

		accesses, err := cfg.loadAccesses()
		if err != nil {
			return err
		}

		rows, err := compareKinds(cmd.Context(), cfg, accesses)
		if err != nil {
			return err
		}

		return printComparison(os.Stdout, rows, instructionCount(accesses))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

type compareRow struct {
	name     string
	stats    llc.Stats
	switches uint64
}

// compareKinds runs one independent cache per policy, plus the ARC
// reference, each in its own goroutine.
func compareKinds(
	ctx context.Context,
	cfg simConfig,
	accesses []mem.Access,
) ([]compareRow, error) {
	kinds := replacement.Kinds()
	rows := make([]compareRow, len(kinds)+1)

	g, ctx := errgroup.WithContext(ctx)

	for i, kind := range kinds {
		i, kind := i, kind

		g.Go(func() error {
			engine := cfg.buildEngine(kind, kind.String())
			cache := llc.MakeBuilder().
				WithNumSets(cfg.numSets).
				WithWayAssociativity(cfg.numWays).
				WithLog2BlockSize(cfg.log2BlockSize()).
				WithReplacement(engine).
				Build(kind.String())

			for j, a := range accesses {
				if j%cancelCheckInterval == 0 && ctx.Err() != nil {
					return ctx.Err()
				}

				cache.Access(a)
			}

			rows[i] = compareRow{name: kind.String(), stats: cache.Stats()}
			if adaptive := engine.Adaptive(); adaptive != nil {
				rows[i].switches = adaptive.Arbiter().Switches()
			}

			return nil
		})
	}

	g.Go(func() error {
		arc, err := reference.NewARC(cfg.numSets*cfg.numWays,
			cfg.log2BlockSize())
		if err != nil {
			return err
		}

		for j, a := range accesses {
			if j%cancelCheckInterval == 0 && ctx.Err() != nil {
				return ctx.Err()
			}

			arc.Access(a)
		}

		rows[len(kinds)] = compareRow{name: "ARC (fully assoc.)", stats: arc.Stats()}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparing policies: %w", err)
	}

	return rows, nil
}

func printComparison(out io.Writer, rows []compareRow, instructions uint64) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "POLICY\tACCESSES\tHITS\tMISSES\tHIT RATE\tMPKI\tSWITCHES")

	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.4f\t%.3f\t%d\n",
			r.name, r.stats.Accesses, r.stats.Hits, r.stats.Misses,
			r.stats.HitRate(), r.stats.MPKI(instructions), r.switches)
	}

	return w.Flush()
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/llcrepl/trace"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic trace.",
	Long: "Write a synthetic trace sized for the configured cache. Workloads: " +
		strings.Join(trace.Workloads(), ", ") + ".",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := readConfig(cmd)
		if err != nil {
			return err
		}

		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		accesses, err := trace.Workload(cfg.workload, cfg.workloadConfig(), cfg.n)
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout

		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			out = f
		}

		_, err = fmt.Fprintf(out,
			"# workload=%s sets=%d assoc=%d block=%d seed=%d\n",
			cfg.workload, cfg.numSets, cfg.numWays, cfg.blockSize, cfg.seed)
		if err != nil {
			return err
		}

		w := trace.NewWriter(out)
		if err := w.WriteAll(accesses); err != nil {
			return err
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("out", "", "Output file, stdout if empty")
}

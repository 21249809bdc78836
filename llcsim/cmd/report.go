package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sarchlab/llcrepl/datarecording"
	"github.com/sarchlab/llcrepl/replacement"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the arbiter windows recorded by run --record.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f := cmd.Flags()

		dbPath, err := f.GetString("db")
		if err != nil {
			return err
		}

		switchesOnly, err := f.GetBool("switches-only")
		if err != nil {
			return err
		}

		limit, err := f.GetInt("limit")
		if err != nil {
			return err
		}

		reader, err := datarecording.NewReader(dbPath)
		if err != nil {
			return err
		}
		defer reader.Close()

		return printReport(cmd.Context(), os.Stdout, reader, switchesOnly, limit)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	f := reportCmd.Flags()
	f.String("db", "", "SQLite file written by run --record")
	f.Bool("switches-only", false, "Only list windows that switched policy")
	f.Int("limit", 0, "Maximum number of windows to list, 0 for all")

	_ = reportCmd.MarkFlagRequired("db")
}

func printReport(
	ctx context.Context,
	out io.Writer,
	reader datarecording.DataReader,
	switchesOnly bool,
	limit int,
) error {
	reader.MapTable(replacement.WindowTable, replacement.WindowEntry{})

	params := datarecording.QueryParams{
		OrderBy: "WindowIndex ASC",
		Limit:   limit,
	}

	if switchesOnly {
		params.Where = "Switched = ?"
		params.Args = []any{true}
	}

	results, total, err := reader.Query(ctx, replacement.WindowTable, params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ENGINE\tWINDOW\tMISSES\tACTIVE\tSWITCHED\tDECAYED\tSCORE")

	for _, r := range results {
		e := r.(*replacement.WindowEntry)

		fmt.Fprintf(w, "%s\t%d\t%d/%d\t%s\t%t\t%t\t(%d,%d)\n",
			e.Engine, e.WindowIndex, e.Misses, e.Accesses, e.Active,
			e.Switched, e.Decayed, e.ScoreRecency, e.ScoreSweep)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%d of %d windows shown\n", len(results), total)

	return err
}

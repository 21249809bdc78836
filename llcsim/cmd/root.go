// Package cmd provides the command-line interface of llcsim.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "llcsim",
	Short: "llcsim replays memory traces through a last-level cache model.",
	Long: `llcsim replays memory traces through a tag-only last-level cache ` +
		`model and reports how the LRU, RANDOM and ADAPTIVE replacement ` +
		`policies behave. Defaults for the cache geometry and policy can be ` +
		`set with LLCSIM_SETS, LLCSIM_ASSOC and LLCSIM_POLICY, in the ` +
		`environment or in a .env file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	addCacheFlags(rootCmd)
}

func envInt(name string, def int) int {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", name, v, err)
		return def
	}

	return n
}

func envString(name string, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}

	return def
}

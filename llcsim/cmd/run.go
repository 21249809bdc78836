package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/llcrepl/datarecording"
	"github.com/sarchlab/llcrepl/hooking"
	"github.com/sarchlab/llcrepl/llc"
	"github.com/sarchlab/llcrepl/mem"
	"github.com/sarchlab/llcrepl/metrics/prom"
	"github.com/sarchlab/llcrepl/monitoring"
	"github.com/sarchlab/llcrepl/replacement"
)

const publishInterval = 10000

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a trace through one cache and print its statistics.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := readConfig(cmd)
		if err != nil {
			return err
		}

		opts, err := readRunOptions(cmd)
		if err != nil {
			return err
		}

		accesses, err := cfg.loadAccesses()
		if err != nil {
			return err
		}

		return runSimulation(cfg, opts, accesses, os.Stdout)
	},
}

type runOptions struct {
	logSwitches bool
	logVictims  bool
	recordPath  string
	record      bool
	httpPort    int
	serve       bool
	openBrowser bool
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.Bool("log-switches", false,
		"Log every arbiter policy switch and score decay to stderr")
	f.Bool("log-victims", false, "Log every victim decision to stderr")
	f.String("record", "",
		"Record arbiter windows into this SQLite database (without suffix)")
	f.Int("http", 0, "Serve the monitor on this port while running")
	f.Bool("open", false, "Open the monitor in a browser")
}

func readRunOptions(cmd *cobra.Command) (runOptions, error) {
	f := cmd.Flags()

	var opts runOptions
	var err error

	if opts.logSwitches, err = f.GetBool("log-switches"); err != nil {
		return opts, err
	}

	if opts.logVictims, err = f.GetBool("log-victims"); err != nil {
		return opts, err
	}

	if opts.recordPath, err = f.GetString("record"); err != nil {
		return opts, err
	}

	opts.record = f.Changed("record")

	if opts.httpPort, err = f.GetInt("http"); err != nil {
		return opts, err
	}

	opts.serve = f.Changed("http")

	if opts.openBrowser, err = f.GetBool("open"); err != nil {
		return opts, err
	}

	return opts, nil
}

func runSimulation(
	cfg simConfig,
	opts runOptions,
	accesses []mem.Access,
	out io.Writer,
) error {
	kind := cfg.kind()
	engine := cfg.buildEngine(kind, "LLC.Replacement")

	reg := prometheus.NewRegistry()
	metrics := prom.New(reg, "llcsim", "",
		prometheus.Labels{"policy": kind.String()})
	engine.AcceptHook(metrics)

	counter := hooking.NewPosCountTracer()
	engine.AcceptHook(counter)

	logger := log.New(os.Stderr, "", 0)
	if opts.logSwitches {
		engine.AcceptHook(hooking.NewLogHook(logger,
			replacement.HookPosPolicySwitch, replacement.HookPosScoreDecay))
	}

	if opts.logVictims {
		engine.AcceptHook(hooking.NewLogHook(logger, replacement.HookPosVictim))
	}

	if opts.record {
		recorder := datarecording.New(opts.recordPath)
		defer recorder.Close()

		engine.AcceptHook(replacement.NewWindowRecorder(recorder))
	}

	cache := llc.MakeBuilder().
		WithNumSets(cfg.numSets).
		WithWayAssociativity(cfg.numWays).
		WithLog2BlockSize(cfg.log2BlockSize()).
		WithReplacement(engine).
		WithMetrics(metrics).
		Build("LLC")

	var monitor *monitoring.Monitor
	var bar *monitoring.ProgressBar

	if opts.serve {
		monitor = monitoring.NewMonitor().
			WithPortNumber(opts.httpPort).
			WithGatherer(reg)
		bar = monitor.CreateProgressBar("trace", uint64(len(accesses)))

		url, err := monitor.StartServer()
		if err != nil {
			return err
		}

		if opts.openBrowser {
			if err := monitoring.OpenInBrowser(url); err != nil {
				logger.Printf("cannot open browser: %v", err)
			}
		}
	}

	for i, a := range accesses {
		cache.Access(a)

		if monitor != nil && (i+1)%publishInterval == 0 {
			monitor.Publish(monitoring.TakeSnapshot(cache, engine))
			bar.IncrementFinished(publishInterval)
		}
	}

	if monitor != nil {
		monitor.Publish(monitoring.TakeSnapshot(cache, engine))
		monitor.CompleteProgressBar(bar)
	}

	return printRunSummary(out, cache, engine, counter,
		instructionCount(accesses))
}

func printRunSummary(
	out io.Writer,
	cache *llc.Cache,
	engine *replacement.Engine,
	counter *hooking.PosCountTracer,
	instructions uint64,
) error {
	s := cache.Stats()

	fmt.Fprintf(out, "Accesses:        %d\n", s.Accesses)
	fmt.Fprintf(out, "Hits:            %d\n", s.Hits)
	fmt.Fprintf(out, "Misses:          %d\n", s.Misses)
	fmt.Fprintf(out, "Evictions:       %d (%d dirty)\n",
		s.Evictions, s.DirtyEvictions)
	fmt.Fprintf(out, "Bypasses:        %d\n", s.Bypasses)
	fmt.Fprintf(out, "Hit rate:        %.4f\n", s.HitRate())
	fmt.Fprintf(out, "MPKI:            %.3f\n", s.MPKI(instructions))

	for _, name := range counter.GetPosNames() {
		fmt.Fprintf(out, "Hook %-24s %d\n", name+":", counter.GetCountByName(name))
	}

	if _, rss, err := monitoring.ResourceUsage(); err == nil {
		fmt.Fprintf(out, "RSS:             %.1f MiB\n",
			float64(rss)/(1<<20))
	}

	return engine.PrintStats(out)
}

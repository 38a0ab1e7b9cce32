package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nstehr/vimy/vimy-fuzzy/agent"
)

var sweepFlags struct {
	samples int
	workers int
	seed    int64
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Check engine coverage with randomized inputs",
	Long:  "sweep feeds random armies and movement inputs through every engine and\nfails if any output is non-finite, out of range or fired by no rule.",
	RunE:  runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.IntVar(&sweepFlags.samples, "samples", 10000, "number of random samples")
	f.IntVar(&sweepFlags.workers, "workers", 4, "parallel workers, one session each")
	f.Int64Var(&sweepFlags.seed, "seed", 1, "random seed")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	values, closeStore, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore()

	opts := agent.SweepOptions{Samples: sweepFlags.samples, Workers: sweepFlags.workers, Seed: sweepFlags.seed}
	rep, err := agent.Sweep(cmd.Context(), opts, func() *agent.Session {
		return agent.NewSession(nil, cfg.Params(), values)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := newTable(out, fmt.Sprintf("sweep of %s samples", humanize.Comma(int64(rep.Samples))), "Engine", "Min", "Max")
	alignRight(t, 2, 3)
	engines := make([]string, 0, len(rep.Ranges))
	for name := range rep.Ranges {
		engines = append(engines, name)
	}
	sort.Strings(engines)
	for _, name := range engines {
		r := rep.Ranges[name]
		t.AppendRow([]any{name, fmtScore(r[0]), fmtScore(r[1])})
	}
	t.Render()

	if rep.Count == 0 {
		fmt.Fprintln(out, "no violations")
		return nil
	}
	v := newTable(out, "violations", "Engine", "Detail")
	for _, x := range rep.Violations {
		v.AppendRow([]any{x.Engine, x.Detail})
	}
	v.Render()
	return fmt.Errorf("%s violations", humanize.Comma(int64(rep.Count)))
}

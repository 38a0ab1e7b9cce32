package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nstehr/vimy/vimy-fuzzy/agent"
	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/scenario"
)

var scenarioPath string

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Rank every goal batch in a scenario",
	RunE:  runChoose,
}

func init() {
	for _, c := range []*cobra.Command{chooseCmd, threatCmd, wanderCmd} {
		c.Flags().StringVar(&scenarioPath, "scenario", "", "scenario YAML file (required)")
		_ = c.MarkFlagRequired("scenario")
	}
}

func loadSession() (*scenario.Scenario, *agent.Session, func() error, error) {
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return nil, nil, nil, err
	}
	values, closeStore, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return sc, agent.NewSession(nil, cfg.Params(), values), closeStore, nil
}

func runChoose(cmd *cobra.Command, _ []string) error {
	sc, s, closeStore, err := loadSession()
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	for i, b := range sc.Batches {
		d, err := s.Decide(sc.World, b.Goals)
		if err != nil {
			return fmt.Errorf("batch %s: %w", b.Name, err)
		}
		gs, err := sc.Goals(i)
		if err != nil {
			return err
		}

		t := newTable(out, fmt.Sprintf("%s / %s", sc.Name, b.Name), "", "#", "Goal", "Hero", "Priority")
		alignRight(t, 2, 5)
		for j, g := range gs {
			mark := ""
			if j == d.Index {
				mark = "*"
			}
			hero := "-"
			if h := g.Common().Hero; h != nil {
				hero = h.Name
				if hero == "" {
					hero = fmt.Sprint(h.ID)
				}
			}
			t.AppendRow([]any{mark, j, goals.Describe(g), hero, fmtScore(d.Priorities[j])})
		}
		if d.Index < 0 {
			t.AppendFooter([]any{"", "", "nothing to do", "", fmtScore(d.Priority)})
		}
		t.Render()
		fmt.Fprintln(out)
	}
	return nil
}

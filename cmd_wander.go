package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wanderCmd = &cobra.Command{
	Use:   "wander",
	Short: "Rank map objects as wander targets for the heroes in a scenario",
	RunE:  runWander,
}

func runWander(cmd *cobra.Command, _ []string) error {
	sc, s, closeStore, err := loadSession()
	if err != nil {
		return err
	}
	defer closeStore()

	out := cmd.OutOrStdout()
	for i := range sc.Wander {
		h, objs := sc.WanderTargets(i)
		ranked := s.Dispatcher().RankWanderTargets(sc.World, h, objs)

		t := newTable(out, fmt.Sprintf("%s / hero %d", sc.Name, h.ID), "Object", "Kind", "Pos", "Worth", "Value")
		alignRight(t, 2, 4, 5)
		for _, r := range ranked {
			name := r.Object.Name
			if name == "" {
				name = fmt.Sprint(r.Object.ID)
			}
			worth := s.Dispatcher().Wander().ObjectValue(r.Object)
			t.AppendRow([]any{name, fmt.Sprintf("%d/%d", r.Object.Kind, r.Object.Subkind), r.Object.Pos, fmtStrength(float64(worth)), fmtScore(r.Value)})
		}
		t.Render()
		fmt.Fprintln(out)
	}
	return nil
}

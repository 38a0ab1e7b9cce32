package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var threatCmd = &cobra.Command{
	Use:   "threat",
	Short: "Estimate the tactical threat of every battle in a scenario",
	RunE:  runThreat,
}

func runThreat(cmd *cobra.Command, _ []string) error {
	sc, s, closeStore, err := loadSession()
	if err != nil {
		return err
	}
	defer closeStore()

	t := newTable(cmd.OutOrStdout(), sc.Name, "Battle", "Ours", "Theirs", "Site", "Walls", "Threat", "Effective")
	alignRight(t, 2, 3, 6, 7)
	for _, b := range sc.Battles {
		threat := s.Dispatcher().TacticalAdvantage(b.Friendly, b.Enemy)
		t.AppendRow([]any{
			b.Name,
			fmtStrength(b.Friendly.Strength()),
			fmtStrength(b.Enemy.Strength()),
			b.Enemy.Site,
			b.Enemy.WallLevel(),
			fmt.Sprintf("%.3f", threat),
			fmtStrength(b.Enemy.Strength() * threat),
		})
	}
	t.Render()
	return nil
}

package ai

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
)

// movementVariables are shared by the hero movement engines. The
// turnDistance input and the Value output are the same objects in every
// engine built from one set.
type movementVariables struct {
	strengthRatio     *fuzzy.Variable
	heroStrength      *fuzzy.Variable
	turnDistance      *fuzzy.Variable
	missionImportance *fuzzy.Variable
	estimatedReward   *fuzzy.Variable
	value             *fuzzy.Variable
}

func newMovementVariables(safeAttackRatio float64) movementVariables {
	safe := safeAttackRatio
	return movementVariables{
		strengthRatio: fuzzy.NewVariable("strengthRatio", 0, 3*safe,
			fuzzy.RampTerm("LOW", safe, 0),
			fuzzy.RampTerm("HIGH", safe, 3*safe)),
		heroStrength: fuzzy.NewVariable("heroStrength", 0, 1,
			fuzzy.RampTerm("LOW", 0.2, 0),
			fuzzy.TriangleTerm("MEDIUM", 0.2, 0.8),
			fuzzy.RampTerm("HIGH", 0.5, 1)),
		turnDistance: fuzzy.NewVariable("turnDistance", 0, 3,
			fuzzy.RampTerm("SMALL", 0.5, 0),
			fuzzy.TriangleTerm("MEDIUM", 0.1, 0.8),
			fuzzy.RampTerm("LONG", 0.5, 3)),
		missionImportance: fuzzy.NewVariable("lockedMissionImportance", 0, 5,
			fuzzy.RampTerm("LOW", 2.5, 0),
			fuzzy.TriangleTerm("MEDIUM", 2, 3),
			fuzzy.RampTerm("HIGH", 2.5, 5)),
		estimatedReward: fuzzy.NewVariable("estimatedReward", 0, 5,
			fuzzy.RampTerm("LOW", 2.5, 0),
			fuzzy.RampTerm("HIGH", 2.5, 5)),
		value: fuzzy.NewVariable("Value", 0, 5,
			fuzzy.RampTerm("LOW", 2.5, 0),
			fuzzy.TriangleTerm("MEDIUM", 2, 3),
			fuzzy.RampTerm("HIGH", 2.5, 5)),
	}
}

var movementRules = []string{
	"if strengthRatio is HIGH and heroStrength is LOW then Value is very HIGH",
	"if strengthRatio is HIGH and heroStrength is MEDIUM then Value is somewhat HIGH",
	"if strengthRatio is HIGH and heroStrength is HIGH then Value is somewhat LOW",
	"if strengthRatio is LOW and heroStrength is LOW then Value is very LOW",
	"if strengthRatio is LOW and heroStrength is MEDIUM then Value is somewhat HIGH",
	"if strengthRatio is LOW and heroStrength is HIGH then Value is LOW",
	"if lockedMissionImportance is HIGH then Value is very LOW",
	"if lockedMissionImportance is MEDIUM then Value is somewhat LOW",
	"if lockedMissionImportance is LOW then Value is HIGH",
	"if turnDistance is SMALL then Value is HIGH",
	"if turnDistance is MEDIUM then Value is MEDIUM",
	"if turnDistance is LONG then Value is LOW",
	"if estimatedReward is HIGH then Value is very HIGH",
	"if estimatedReward is LOW then Value is somewhat LOW",
}

var wanderRules = []string{
	"if turnDistance is LONG and objectValue is HIGH then Value is MEDIUM",
	"if turnDistance is MEDIUM and objectValue is HIGH then Value is somewhat HIGH",
	"if turnDistance is SMALL and objectValue is HIGH then Value is HIGH",
	"if turnDistance is LONG and objectValue is MEDIUM then Value is somewhat LOW",
	"if turnDistance is MEDIUM and objectValue is MEDIUM then Value is MEDIUM",
	"if turnDistance is SMALL and objectValue is MEDIUM then Value is somewhat HIGH",
	"if turnDistance is LONG and objectValue is LOW then Value is very LOW",
	"if turnDistance is MEDIUM and objectValue is LOW then Value is LOW",
	"if turnDistance is SMALL and objectValue is LOW then Value is MEDIUM",
}

func newMovementEngine(name string, inputs []*fuzzy.Variable, output *fuzzy.Variable, rules []string, opts ...fuzzy.Option) *fuzzy.Engine {
	e := fuzzy.NewEngine(name, fuzzy.DefaultProfile, opts...)
	for _, v := range inputs {
		e.AddInputVariable(v)
	}
	e.AddOutputVariable(output)
	n := e.AddRules(rules)
	slog.Debug("engine configured", "engine", name, "rules", n, "profile", e.Profile())
	return e
}

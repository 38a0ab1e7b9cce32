package ai

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

// Bounds of the tactical threat multiplier.
const (
	MinStrength = 0.5
	MaxStrength = 1.5
)

var (
	compositionTerms = []fuzzy.Term{
		fuzzy.RampTerm("FEW", 0.6, 0),
		fuzzy.RampTerm("MANY", 0.4, 1),
	}
	speedTerms = []fuzzy.Term{
		fuzzy.RampTerm("LOW", 6.5, 3),
		fuzzy.TriangleTerm("MEDIUM", 5.5, 10.5),
		fuzzy.RampTerm("HIGH", 8.5, 16),
	}
	wallTerms = []fuzzy.Term{
		fuzzy.RectangleTerm("NONE", 0, 0.5),
		fuzzy.TrapezoidTerm("MEDIUM", 0.5, 1, 2, 2.5),
		fuzzy.RampTerm("HIGH", 1.9, 3),
	}
	bankTerms = []fuzzy.Term{
		fuzzy.RectangleTerm("FALSE", 0, 0.5),
		fuzzy.RectangleTerm("TRUE", 0.5, 1),
	}
	threatTerms = []fuzzy.Term{
		fuzzy.RampTerm("LOW", 1, MinStrength),
		fuzzy.TriangleTerm("MEDIUM", 0.8, 1.2),
		fuzzy.RampTerm("HIGH", 1, MaxStrength),
	}
)

var tacticalRules = []string{
	"if OurShooters is MANY and EnemySpeed is LOW then Threat is LOW",
	"if OurShooters is MANY and EnemyShooters is FEW then Threat is LOW",
	"if OurSpeed is LOW and EnemyShooters is MANY then Threat is HIGH",
	"if OurSpeed is HIGH and EnemyShooters is MANY then Threat is LOW",
	"if OurWalkers is FEW and EnemyShooters is MANY then Threat is somewhat LOW",
	"if OurShooters is MANY and EnemySpeed is HIGH then Threat is somewhat HIGH",
	"if OurShooters is FEW and EnemySpeed is HIGH then Threat is MEDIUM",
	"if EnemySpeed is MEDIUM then Threat is MEDIUM",
	"if EnemySpeed is LOW and OurShooters is FEW then Threat is MEDIUM",
	"if Bank is TRUE and OurShooters is MANY then Threat is somewhat HIGH",
	"if Bank is TRUE and EnemyShooters is MANY then Threat is LOW",
	"if CastleWalls is HIGH and OurWalkers is MANY then Threat is very HIGH",
	"if CastleWalls is HIGH and OurFlyers is MANY and OurShooters is MANY then Threat is MEDIUM",
	"if CastleWalls is MEDIUM and OurShooters is MANY and EnemyWalkers is MANY then Threat is LOW",
}

// TacticalProfile sums overlapping conclusions so several rules agreeing
// on a threat level reinforce each other.
var TacticalProfile = fuzzy.Profile{
	Conjunction: fuzzy.Minimum,
	Disjunction: fuzzy.Maximum,
	Implication: fuzzy.Minimum,
	Aggregation: fuzzy.AlgebraicSum,
	Defuzzifier: fuzzy.Centroid,
}

// TacticalAdvantageEngine estimates how dangerous an enemy army is for a
// given friendly army, as a multiplier in [MinStrength, MaxStrength].
type TacticalAdvantageEngine struct {
	engine *fuzzy.Engine

	ourWalkers, ourShooters, ourFlyers       *fuzzy.Variable
	enemyWalkers, enemyShooters, enemyFlyers *fuzzy.Variable
	ourSpeed, enemySpeed                     *fuzzy.Variable
	bank, castleWalls                        *fuzzy.Variable
	threat                                   *fuzzy.Variable
}

func NewTacticalAdvantageEngine(opts ...fuzzy.Option) *TacticalAdvantageEngine {
	t := &TacticalAdvantageEngine{
		engine: fuzzy.NewEngine("tactical advantage", TacticalProfile, opts...),

		ourWalkers:    fuzzy.NewVariable("OurWalkers", 0, 1, compositionTerms...),
		ourShooters:   fuzzy.NewVariable("OurShooters", 0, 1, compositionTerms...),
		ourFlyers:     fuzzy.NewVariable("OurFlyers", 0, 1, compositionTerms...),
		enemyWalkers:  fuzzy.NewVariable("EnemyWalkers", 0, 1, compositionTerms...),
		enemyShooters: fuzzy.NewVariable("EnemyShooters", 0, 1, compositionTerms...),
		enemyFlyers:   fuzzy.NewVariable("EnemyFlyers", 0, 1, compositionTerms...),
		ourSpeed:      fuzzy.NewVariable("OurSpeed", 0, 25, speedTerms...),
		enemySpeed:    fuzzy.NewVariable("EnemySpeed", 0, 25, speedTerms...),
		bank:          fuzzy.NewVariable("Bank", 0, 1, bankTerms...),
		castleWalls:   fuzzy.NewVariable("CastleWalls", 0, 3, wallTerms...),
		threat:        fuzzy.NewVariable("Threat", MinStrength, MaxStrength, threatTerms...),
	}
	for _, v := range []*fuzzy.Variable{
		t.ourWalkers, t.ourShooters, t.ourFlyers,
		t.enemyWalkers, t.enemyShooters, t.enemyFlyers,
		t.ourSpeed, t.enemySpeed, t.bank, t.castleWalls,
	} {
		t.engine.AddInputVariable(v)
	}
	t.engine.AddOutputVariable(t.threat)

	n := t.engine.AddRules(tacticalRules)
	slog.Debug("engine configured", "engine", t.engine.Name, "rules", n, "profile", t.engine.Profile())
	return t
}

// Engine exposes the underlying inference engine.
func (t *TacticalAdvantageEngine) Engine() *fuzzy.Engine { return t.engine }

// Evaluate scores enemy relative to friendly. Failures fall back to
// MaxStrength so the caller errs on the side of caution.
func (t *TacticalAdvantageEngine) Evaluate(friendly, enemy model.Army) float64 {
	threat, err := t.Threat(friendly, enemy)
	if err != nil {
		slog.Error("tactical advantage evaluation failed", "engine", t.engine.Name, "error", err)
		return MaxStrength
	}
	if math.IsNaN(threat) || math.IsInf(threat, 0) || threat < MinStrength {
		slog.Error("fuzzy rules do not cover inputs", "threat", threat, "inputs", t.engine)
	}
	assertf(threat >= MinStrength && threat <= MaxStrength, "threat %v outside [%v, %v]", threat, MinStrength, MaxStrength)
	return threat
}

// Threat runs the engine without fallback or invariant checks.
func (t *TacticalAdvantageEngine) Threat(friendly, enemy model.Army) (float64, error) {
	ours, err := EvaluateArmyStructure(friendly.Stacks)
	if err != nil {
		return 0, fmt.Errorf("friendly army: %w", err)
	}
	theirs, err := EvaluateArmyStructure(enemy.Stacks)
	if err != nil {
		return 0, fmt.Errorf("enemy army: %w", err)
	}

	t.ourWalkers.SetValue(ours.Walkers)
	t.ourShooters.SetValue(ours.Shooters)
	t.ourFlyers.SetValue(ours.Fliers)
	t.ourSpeed.SetValue(float64(ours.MaxSpeed))

	t.enemyWalkers.SetValue(theirs.Walkers)
	t.enemyShooters.SetValue(theirs.Shooters)
	t.enemyFlyers.SetValue(theirs.Fliers)
	t.enemySpeed.SetValue(float64(theirs.MaxSpeed))

	bank := 0.0
	if enemy.IsBank() {
		bank = 1
	}
	t.bank.SetValue(bank)
	t.castleWalls.SetValue(float64(enemy.WallLevel()))

	if err := t.engine.Process(); err != nil {
		return 0, err
	}
	return t.threat.Value(), nil
}

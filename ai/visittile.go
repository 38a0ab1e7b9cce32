package ai

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

// VisitTileEngine scores sending a hero to a tile.
type VisitTileEngine struct {
	engine   *fuzzy.Engine
	vars     movementVariables
	params   Params
	tactical *TacticalAdvantageEngine
}

func newVisitTileEngine(vars movementVariables, p Params, tactical *TacticalAdvantageEngine, opts ...fuzzy.Option) *VisitTileEngine {
	inputs := []*fuzzy.Variable{
		vars.strengthRatio, vars.heroStrength, vars.turnDistance,
		vars.missionImportance, vars.estimatedReward,
	}
	return &VisitTileEngine{
		engine:   newMovementEngine("visit tile", inputs, vars.value, movementRules, opts...),
		vars:     vars,
		params:   p,
		tactical: tactical,
	}
}

func (v *VisitTileEngine) Engine() *fuzzy.Engine { return v.engine }

// Evaluate returns the value of g in [0, 5]. Goals without a hero score
// 0, as do evaluations the engine cannot complete.
func (v *VisitTileEngine) Evaluate(w World, g *goals.VisitTile) float64 {
	h := g.Hero
	if h == nil {
		return 0
	}

	turns := TurnDistance(w.MovementCost(h, g.Tile), w.MovementRemaining(h), w.MaxMovementPerTurn(h))

	mission := 0.0
	if p, ok := w.LockedMission(h); ok {
		mission = p
	}

	ratio := v.params.UnguardedRatio
	if danger := EvaluateDanger(w, v.tactical, g.Tile, h); danger > 0 {
		ratio = h.TotalStrength() / danger
	}

	heroStrength := 1.0
	if primary := w.Primary(); primary != nil && primary.TotalStrength() > 0 {
		heroStrength = h.TotalStrength() / primary.TotalStrength()
	}

	v.setReward(w, g)
	v.vars.strengthRatio.SetValue(ratio)
	v.vars.heroStrength.SetValue(heroStrength)
	v.vars.turnDistance.SetValue(turns)
	v.vars.missionImportance.SetValue(mission)

	if err := v.engine.Process(); err != nil {
		slog.Error("visit tile evaluation failed", "engine", v.engine.Name, "tile", g.Tile, "hero", h.ID, "error", err)
		return 0
	}
	value := v.vars.value.Value()
	assertf(value >= 0, "visit tile value %v is negative", value)
	return value
}

func (v *VisitTileEngine) setReward(w World, g *goals.VisitTile) {
	reward := v.vars.estimatedReward
	if g.ObjectID == model.NoObject {
		reward.SetEnabled(false)
		return
	}
	reward.SetEnabled(true)
	reward.SetValue(0)
	if obj, ok := w.Object(g.ObjectID); ok && obj.Kind == model.KindTown {
		reward.SetValue(v.params.SettlementReward)
	}
}

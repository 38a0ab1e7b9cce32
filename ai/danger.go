package ai

import "github.com/nstehr/vimy/vimy-fuzzy/model"

// EvaluateDanger is the strength h must beat to take tile t. When the
// world knows the guard's composition, raw strength is scaled by the
// tactical matchup against h's army.
func EvaluateDanger(w DangerEstimator, tactical *TacticalAdvantageEngine, t model.Tile, h *model.Hero) float64 {
	danger := w.GuardStrength(t)
	if danger <= 0 || h == nil {
		return danger
	}
	ga, ok := w.(GuardArmies)
	if !ok {
		return danger
	}
	guard, ok := ga.GuardArmy(t)
	if !ok || guard.Strength() <= 0 || h.Army.Strength() <= 0 {
		return danger
	}
	return danger * tactical.Evaluate(h.Army, guard)
}

// IsSafeToVisit reports whether h can fight danger with a comfortable
// margin. Zero danger is always safe.
func IsSafeToVisit(h *model.Hero, danger, safeAttackRatio float64) bool {
	if danger == 0 {
		return true
	}
	return h.TotalStrength()/danger > safeAttackRatio
}

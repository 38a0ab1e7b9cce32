package fuzzy

import (
	"math"
	"strings"
)

// ruleEnv exposes the engine's current fuzzified inputs to compiled
// antecedents. Conj and Disj route through the engine's operator profile.
type ruleEnv struct {
	engine *Engine
}

// Is returns the hedged membership of variable's current value in term.
func (r ruleEnv) Is(variable, term, hedges string) float64 {
	v := r.engine.input(variable)
	if v == nil {
		return math.NaN()
	}
	mu, ok := v.Membership(term)
	if !ok {
		return math.NaN()
	}
	if hedges == "" {
		return mu
	}
	words := strings.Fields(hedges)
	hs := make([]Hedge, 0, len(words))
	for _, w := range words {
		if h, ok := ParseHedge(w); ok {
			hs = append(hs, h)
		}
	}
	return applyHedges(hs, mu)
}

func (r ruleEnv) Conj(a, b float64) float64 {
	return r.engine.profile.Conjunction.Compute(a, b)
}

func (r ruleEnv) Disj(a, b float64) float64 {
	return r.engine.profile.Disjunction.Compute(a, b)
}

package ai

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

// ErrCannotFulfillGoal reports a goal that is malformed for its kind,
// e.g. missing the hero it needs.
var ErrCannotFulfillGoal = errors.New("cannot fulfill goal")

// Fixed priorities of goal kinds that are not scored by an engine.
const (
	ExplorePriority        = 1.0
	RecruitHeroPriority    = 1.0
	BuildPriority          = 0.0
	DigAtTilePriority      = 0.0
	InvalidPriority        = -1e10
	VanishedHeroPriority   = -100.0
	UnreachablePriority    = -1.0
	minGatherArmyShortfall = 2000.0
)

// Dispatcher scores goals of every kind and picks the best. It owns one
// instance of each engine, built once. Not safe for concurrent use.
type Dispatcher struct {
	params    Params
	tactical  *TacticalAdvantageEngine
	visitTile *VisitTileEngine
	wander    *WanderTargetEngine
}

func NewDispatcher(p Params, values objectvalue.Store) *Dispatcher {
	opts := []fuzzy.Option{fuzzy.WithResolution(p.Resolution)}
	tactical := NewTacticalAdvantageEngine(opts...)
	vars := newMovementVariables(p.SafeAttackRatio)
	return &Dispatcher{
		params:    p,
		tactical:  tactical,
		visitTile: newVisitTileEngine(vars, p, tactical, opts...),
		wander:    newWanderTargetEngine(vars, values, opts...),
	}
}

func (d *Dispatcher) Params() Params                     { return d.params }
func (d *Dispatcher) Tactical() *TacticalAdvantageEngine { return d.tactical }
func (d *Dispatcher) VisitTile() *VisitTileEngine        { return d.visitTile }
func (d *Dispatcher) Wander() *WanderTargetEngine        { return d.wander }

// TacticalAdvantage is the threat multiplier of enemy against friendly.
func (d *Dispatcher) TacticalAdvantage(friendly, enemy model.Army) float64 {
	return d.tactical.Evaluate(friendly, enemy)
}

// ChooseSolution scores every goal, writes each priority back and returns
// the highest. Ties go to the goal that sorts first by hero id, then by
// input order. An empty batch yields an Invalid goal at -Inf.
func (d *Dispatcher) ChooseSolution(w World, gs []goals.Goal) (goals.Goal, error) {
	if len(gs) == 0 {
		return goals.NewInvalid(), nil
	}
	if pc, ok := w.(PathCache); ok {
		pc.InvalidatePathCache()
	}

	sorted := slices.Clone(gs)
	slices.SortStableFunc(sorted, func(a, b goals.Goal) int {
		return cmp.Compare(goals.HeroID(a), goals.HeroID(b))
	})

	for _, g := range sorted {
		if err := d.SetPriority(w, g); err != nil {
			return nil, err
		}
	}

	best := sorted[0]
	for _, g := range sorted[1:] {
		if best.Common().Priority < g.Common().Priority {
			best = g
		}
	}
	slog.Debug("goal chosen", "goal", goals.Describe(best), "hero", goals.HeroID(best), "priority", best.Common().Priority, "candidates", len(gs))
	return best, nil
}

// SetPriority evaluates g and stores the result on it.
func (d *Dispatcher) SetPriority(w World, g goals.Goal) error {
	p, err := d.Evaluate(w, g)
	if err != nil {
		return err
	}
	g.Common().Priority = p
	return nil
}

// Evaluate computes g's priority without storing it.
func (d *Dispatcher) Evaluate(w World, g goals.Goal) (float64, error) {
	switch g := g.(type) {
	case *goals.VisitTile:
		return d.visitTile.Evaluate(w, g), nil
	case *goals.VisitHero:
		return d.evaluateVisitHero(w, g), nil
	case *goals.GatherArmy:
		army := 0.0
		if g.Hero != nil {
			army = g.Hero.Army.Strength()
		}
		return GatherArmyPriority(g.Value, army), nil
	case *goals.ClearWayTo:
		return d.evaluateClearWayTo(w, g)
	case *goals.Explore:
		return ExplorePriority, nil
	case *goals.RecruitHero:
		return RecruitHeroPriority, nil
	case *goals.BuildThis:
		return g.Priority, nil
	case *goals.Build:
		return BuildPriority, nil
	case *goals.DigAtTile:
		return DigAtTilePriority, nil
	case *goals.CollectRes:
		return g.Priority, nil
	case *goals.BuyArmy:
		return g.Priority, nil
	case *goals.Invalid:
		return InvalidPriority, nil
	case *goals.Abstract:
		slog.Warn("cannot evaluate goal", "goal", goals.Describe(g))
		return g.Priority, nil
	}
	return 0, fmt.Errorf("%w: unhandled goal type %T", ErrCannotFulfillGoal, g)
}

// GatherArmyPriority grows with the army required and shrinks with how
// much of it is missing. Half the army gives 2.5; it approaches 5.
func GatherArmyPriority(required, current float64) float64 {
	ratio := required / max(required-current, minGatherArmyShortfall)
	return 5 * (ratio / (ratio + 2))
}

// evaluateVisitHero scores meeting another hero as visiting its tile.
func (d *Dispatcher) evaluateVisitHero(w World, g *goals.VisitHero) float64 {
	obj, ok := w.Object(g.ObjectID)
	if !ok {
		return VanishedHeroPriority
	}
	sub := &goals.VisitTile{
		Header:   goals.Header{Hero: g.Hero, Abstract: g.Abstract},
		Tile:     obj.Pos,
		ObjectID: model.NoObject,
	}
	return d.visitTile.Evaluate(w, sub)
}

// evaluateClearWayTo looks at the first obstacle on the route. A safe
// obstacle is scored as visiting the target; otherwise as gathering
// enough army to beat it.
func (d *Dispatcher) evaluateClearWayTo(w World, g *goals.ClearWayTo) (float64, error) {
	if g.Hero == nil {
		return 0, fmt.Errorf("%w: clear way to %v without hero", ErrCannotFulfillGoal, g.Tile)
	}
	first, ok := w.FirstTileToGet(g.Hero, g.Tile)
	if !ok || !first.Valid() {
		return UnreachablePriority, nil
	}

	danger := EvaluateDanger(w, d.tactical, first, g.Hero)
	if IsSafeToVisit(g.Hero, danger, d.params.SafeAttackRatio) {
		sub := &goals.VisitTile{
			Header:   goals.Header{Hero: g.Hero, Abstract: g.Abstract},
			Tile:     g.Tile,
			ObjectID: model.NoObject,
		}
		return d.visitTile.Evaluate(w, sub), nil
	}
	sub := &goals.GatherArmy{
		Header: goals.Header{Hero: g.Hero, Abstract: true},
		Value:  danger * d.params.SafeAttackRatio,
	}
	return d.Evaluate(w, sub)
}

// WanderTargetValue values h wandering to obj.
func (d *Dispatcher) WanderTargetValue(w Pathfinder, h *model.Hero, obj *model.Object) float64 {
	return d.wander.Evaluate(w, h, obj)
}

// ScoredObject is a wander target with its value.
type ScoredObject struct {
	Object *model.Object
	Value  float64
}

// RankWanderTargets values every object for h, best first.
func (d *Dispatcher) RankWanderTargets(w Pathfinder, h *model.Hero, objs []*model.Object) []ScoredObject {
	out := make([]ScoredObject, 0, len(objs))
	for _, o := range objs {
		out = append(out, ScoredObject{Object: o, Value: d.wander.Evaluate(w, h, o)})
	}
	slices.SortStableFunc(out, func(a, b ScoredObject) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return out
}

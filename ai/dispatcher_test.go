package ai

import (
	"errors"
	"math"
	"testing"

	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(DefaultParams(), objectvalue.NewMemStore())
}

func TestChooseSolutionEmpty(t *testing.T) {
	g, err := newTestDispatcher().ChooseSolution(testWorld(), nil)
	if err != nil {
		t.Fatalf("ChooseSolution: %v", err)
	}
	if g.Kind() != goals.KindInvalid || !math.IsInf(g.Common().Priority, -1) {
		t.Errorf("ChooseSolution(nil) = %v at %v, want invalid at -Inf", g.Kind(), g.Common().Priority)
	}
}

func TestChooseSolutionSingle(t *testing.T) {
	w := testWorld()
	h := hero(t, w, 1)
	tile := model.Tile{X: 4, Y: 1}

	want := newTestDispatcher().VisitTile().Evaluate(w, &goals.VisitTile{Header: goals.Header{Hero: h}, Tile: tile, ObjectID: model.NoObject})

	g := &goals.VisitTile{Header: goals.Header{Hero: h, Priority: -7}, Tile: tile, ObjectID: model.NoObject}
	got, err := newTestDispatcher().ChooseSolution(w, []goals.Goal{g})
	if err != nil {
		t.Fatalf("ChooseSolution: %v", err)
	}
	if got != goals.Goal(g) {
		t.Fatalf("ChooseSolution returned %v, want the only goal", got)
	}
	if g.Priority != want {
		t.Errorf("priority = %v, want %v", g.Priority, want)
	}
}

func TestEvaluateFixedPriorities(t *testing.T) {
	d := newTestDispatcher()
	w := testWorld()
	h := hero(t, w, 1)
	hdr := goals.Header{Hero: h, Priority: 3.25}

	tests := []struct {
		goal goals.Goal
		want float64
	}{
		{&goals.Explore{Header: hdr}, 1},
		{&goals.RecruitHero{Header: hdr}, 1},
		{&goals.Build{Header: hdr}, 0},
		{&goals.DigAtTile{Header: hdr}, 0},
		{&goals.Invalid{Header: hdr}, -1e10},
		{&goals.BuildThis{Header: hdr}, 3.25},
		{&goals.CollectRes{Header: hdr}, 3.25},
		{&goals.BuyArmy{Header: hdr}, 3.25},
		{&goals.Abstract{Header: hdr}, 3.25},
		{&goals.VisitHero{Header: hdr, ObjectID: 999}, -100},
	}
	for _, tc := range tests {
		got, err := d.Evaluate(w, tc.goal)
		if err != nil {
			t.Errorf("Evaluate(%v): %v", tc.goal.Kind(), err)
			continue
		}
		if got != tc.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tc.goal.Kind(), got, tc.want)
		}
	}
}

func TestGatherArmyPriority(t *testing.T) {
	tests := []struct {
		required, current, want float64
	}{
		{4000, 2000, 2.5},
		{4000, 0, 5.0 / 3},
		{4000, 4000, 2.5},
		{100000, 99999, 5 * 50.0 / 52},
		{0, 1000, 0},
	}
	for _, tc := range tests {
		got := GatherArmyPriority(tc.required, tc.current)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("GatherArmyPriority(%v, %v) = %v, want %v", tc.required, tc.current, got, tc.want)
		}
	}

	// Score grows toward 5 as the army on hand nears the requirement.
	prev := 0.0
	for _, current := range []float64{0, 10000, 15000, 18000} {
		got := GatherArmyPriority(20000, current)
		if got <= prev || got >= 5 {
			t.Errorf("GatherArmyPriority(20000, %v) = %v, want in (%v, 5)", current, got, prev)
		}
		prev = got
	}
}

func TestEvaluateVisitHero(t *testing.T) {
	d := newTestDispatcher()
	w := testWorld()
	h := hero(t, w, 2)

	got, err := d.Evaluate(w, &goals.VisitHero{Header: goals.Header{Hero: h}, ObjectID: 12})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	want := d.VisitTile().Evaluate(w, &goals.VisitTile{Header: goals.Header{Hero: h}, Tile: model.Tile{X: 2, Y: 2}, ObjectID: model.NoObject})
	if got != want {
		t.Errorf("visit hero = %v, want visit tile value %v", got, want)
	}
}

func TestEvaluateClearWayTo(t *testing.T) {
	target := model.Tile{X: 8, Y: 8}
	blocker := model.Tile{X: 4, Y: 4}

	t.Run("no hero", func(t *testing.T) {
		_, err := newTestDispatcher().Evaluate(testWorld(), &goals.ClearWayTo{Tile: target})
		if !errors.Is(err, ErrCannotFulfillGoal) {
			t.Errorf("err = %v, want ErrCannotFulfillGoal", err)
		}
	})

	t.Run("no route", func(t *testing.T) {
		w := testWorld()
		w.Routes = []model.Route{{Hero: 1, Target: target, FirstTile: model.InvalidTile}}
		got, err := newTestDispatcher().Evaluate(w, &goals.ClearWayTo{Header: goals.Header{Hero: hero(t, w, 1)}, Tile: target})
		if err != nil || got != -1 {
			t.Errorf("Evaluate = %v, %v; want -1, nil", got, err)
		}
	})

	t.Run("safe", func(t *testing.T) {
		w := testWorld()
		w.Routes = []model.Route{{Hero: 1, Target: target, FirstTile: blocker}}
		w.Guards = []model.Guard{{Tile: blocker, Strength: 1000}}
		h := hero(t, w, 1)
		d := newTestDispatcher()

		got, err := d.Evaluate(w, &goals.ClearWayTo{Header: goals.Header{Hero: h}, Tile: target})
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		want := d.VisitTile().Evaluate(w, &goals.VisitTile{Header: goals.Header{Hero: h}, Tile: target, ObjectID: model.NoObject})
		if got != want {
			t.Errorf("safe clear way = %v, want visit tile value %v", got, want)
		}
	})

	t.Run("unsafe", func(t *testing.T) {
		w := testWorld()
		w.Routes = []model.Route{{Hero: 2, Target: target, FirstTile: blocker}}
		w.Guards = []model.Guard{{Tile: blocker, Strength: 2000}}
		h := hero(t, w, 2)

		got, err := newTestDispatcher().Evaluate(w, &goals.ClearWayTo{Header: goals.Header{Hero: h}, Tile: target})
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		// Needs 2000 * 1.5 = 3000 strength against 500 on hand.
		want := GatherArmyPriority(3000, 500)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("unsafe clear way = %v, want gather army %v", got, want)
		}
	})
}

type countingWorld struct {
	*model.World
	invalidated int
}

func (c *countingWorld) InvalidatePathCache() {
	c.invalidated++
	c.World.InvalidatePathCache()
}

func TestChooseSolutionPicksMax(t *testing.T) {
	base := testWorld()
	w := &countingWorld{World: base}
	h1, h2 := hero(t, base, 1), hero(t, base, 2)

	explore := &goals.Explore{Header: goals.Header{Hero: h2}}
	build := &goals.Build{Header: goals.Header{Hero: h1}}
	buy := &goals.BuyArmy{Header: goals.Header{Priority: 4}}
	gs := []goals.Goal{explore, build, buy}

	got, err := newTestDispatcher().ChooseSolution(w, gs)
	if err != nil {
		t.Fatalf("ChooseSolution: %v", err)
	}
	if got != goals.Goal(buy) {
		t.Errorf("chose %v, want buy_army", got.Kind())
	}
	if explore.Priority != 1 || build.Priority != 0 {
		t.Errorf("priorities = %v, %v; want 1, 0", explore.Priority, build.Priority)
	}
	if w.invalidated != 1 {
		t.Errorf("path cache invalidated %d times, want 1", w.invalidated)
	}
	if gs[0] != goals.Goal(explore) {
		t.Error("ChooseSolution reordered the caller's slice")
	}
}

func TestChooseSolutionTiesKeepFirst(t *testing.T) {
	w := testWorld()
	h := hero(t, w, 1)
	a := &goals.Explore{Header: goals.Header{Hero: h}}
	b := &goals.RecruitHero{Header: goals.Header{Hero: h}}

	got, err := newTestDispatcher().ChooseSolution(w, []goals.Goal{a, b})
	if err != nil {
		t.Fatalf("ChooseSolution: %v", err)
	}
	if got != goals.Goal(a) {
		t.Errorf("tie resolved to %v, want first goal", got.Kind())
	}
}

func TestChooseSolutionPropagatesHardFailure(t *testing.T) {
	w := testWorld()
	gs := []goals.Goal{&goals.Explore{}, &goals.ClearWayTo{Tile: model.Tile{X: 1}}}
	if _, err := newTestDispatcher().ChooseSolution(w, gs); !errors.Is(err, ErrCannotFulfillGoal) {
		t.Errorf("err = %v, want ErrCannotFulfillGoal", err)
	}
}

func TestEvaluateDangerUsesGuardArmy(t *testing.T) {
	d := newTestDispatcher()
	w := testWorld()
	h := hero(t, w, 1)
	tile := model.Tile{X: 3, Y: 3}
	guard := army(800)
	w.Guards = []model.Guard{{Tile: tile, Strength: 800, Army: &guard}}

	got := EvaluateDanger(w, d.Tactical(), tile, h)
	want := 800 * d.TacticalAdvantage(h.Army, guard)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("EvaluateDanger = %v, want %v", got, want)
	}

	if got := EvaluateDanger(w, d.Tactical(), model.Tile{X: 9}, h); got != 0 {
		t.Errorf("unguarded danger = %v, want 0", got)
	}
}

func TestIsSafeToVisit(t *testing.T) {
	h := &model.Hero{Army: army(3000)}
	tests := []struct {
		danger float64
		want   bool
	}{
		{0, true},
		{1000, true},
		{2000, false},
		{1999, true},
	}
	for _, tc := range tests {
		if got := IsSafeToVisit(h, tc.danger, 1.5); got != tc.want {
			t.Errorf("IsSafeToVisit(3000 vs %v) = %v, want %v", tc.danger, got, tc.want)
		}
	}
}

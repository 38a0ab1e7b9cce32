package model

import "testing"

func testWorld() *World {
	return &World{
		Heroes: []Hero{
			{ID: 1, Pos: Tile{0, 0, 0}, Movement: 1500, MaxMovePoints: 2000, Army: Army{Stacks: []Stack{{Power: 3000}}}},
			{ID: 2, Pos: Tile{10, 10, 0}, Army: Army{Stacks: []Stack{{Power: 9000}}}},
		},
		Objects: []Object{{ID: 7, Kind: KindTown, Pos: Tile{4, 4, 0}}},
		Guards: []Guard{
			{Tile: Tile{3, 3, 0}, Strength: 500},
			{Tile: Tile{3, 3, 0}, Configs: []GuardConfig{{Chance: 50, Strength: 1000}, {Chance: 50, Strength: 3000}}},
			{Tile: Tile{6, 6, 0}, Strength: 800, Army: &Army{Stacks: []Stack{{Power: 800, Flying: true}}}},
		},
		PathCosts:      []PathCost{{Hero: 1, Tile: Tile{4, 4, 0}, Cost: 1234}},
		Routes:         []Route{{Hero: 1, Target: Tile{9, 9, 0}, FirstTile: InvalidTile}},
		LockedMissions: []LockedMission{{Hero: 2, Priority: 3.5}},
	}
}

func TestWorldPrimary(t *testing.T) {
	w := testWorld()
	if got := w.Primary(); got == nil || got.ID != 2 {
		t.Errorf("Primary() = %v, want strongest hero 2", got)
	}
	w.PrimaryHero = 1
	if got := w.Primary(); got == nil || got.ID != 1 {
		t.Errorf("Primary() = %v, want designated hero 1", got)
	}
	if got := (&World{}).Primary(); got != nil {
		t.Errorf("Primary() on empty roster = %v, want nil", got)
	}
}

func TestWorldMovementCost(t *testing.T) {
	w := testWorld()
	h, _ := w.Hero(1)
	if got := w.MovementCost(h, Tile{4, 4, 0}); got != 1234 {
		t.Errorf("listed cost = %v, want 1234", got)
	}
	if got := w.MovementCost(h, Tile{2, 5, 0}); got != 5*StepCost {
		t.Errorf("default cost = %v, want %v", got, 5*StepCost)
	}

	// Memoized costs survive snapshot edits until the cache is dropped.
	w.PathCosts[0].Cost = 10
	if got := w.MovementCost(h, Tile{4, 4, 0}); got != 1234 {
		t.Errorf("cached cost = %v, want 1234", got)
	}
	w.InvalidatePathCache()
	if got := w.MovementCost(h, Tile{4, 4, 0}); got != 10 {
		t.Errorf("cost after invalidate = %v, want 10", got)
	}
}

func TestWorldFirstTileToGet(t *testing.T) {
	w := testWorld()
	h, _ := w.Hero(1)
	if got, ok := w.FirstTileToGet(h, Tile{5, 5, 0}); !ok || got != (Tile{5, 5, 0}) {
		t.Errorf("unlisted route = %v, %v; want target, true", got, ok)
	}
	if _, ok := w.FirstTileToGet(h, Tile{9, 9, 0}); ok {
		t.Error("blocked route reported reachable")
	}
}

func TestWorldGuards(t *testing.T) {
	w := testWorld()
	if got := w.GuardStrength(Tile{3, 3, 0}); got != 2500 {
		t.Errorf("GuardStrength = %v, want 2500", got)
	}
	if got := w.GuardStrength(Tile{0, 1, 0}); got != 0 {
		t.Errorf("unguarded GuardStrength = %v, want 0", got)
	}
	if _, ok := w.GuardArmy(Tile{3, 3, 0}); ok {
		t.Error("GuardArmy reported a composition that was never given")
	}
	if a, ok := w.GuardArmy(Tile{6, 6, 0}); !ok || a.Strength() != 800 {
		t.Errorf("GuardArmy = %v, %v", a, ok)
	}
}

func TestWorldLockedMission(t *testing.T) {
	w := testWorld()
	h1, _ := w.Hero(1)
	h2, _ := w.Hero(2)
	if _, ok := w.LockedMission(h1); ok {
		t.Error("hero 1 has no locked mission")
	}
	if p, ok := w.LockedMission(h2); !ok || p != 3.5 {
		t.Errorf("LockedMission(2) = %v, %v; want 3.5, true", p, ok)
	}
}

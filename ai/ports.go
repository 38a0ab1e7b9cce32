package ai

import "github.com/nstehr/vimy/vimy-fuzzy/model"

// Pathfinder answers movement-point questions for a hero.
type Pathfinder interface {
	MovementCost(h *model.Hero, t model.Tile) float64
	MovementRemaining(h *model.Hero) float64
	MaxMovementPerTurn(h *model.Hero) float64
}

// Router finds the first tile that must be passed to reach a target. The
// bool is false when no route exists.
type Router interface {
	FirstTileToGet(h *model.Hero, t model.Tile) (model.Tile, bool)
}

// DangerEstimator reports the strength guarding a tile.
type DangerEstimator interface {
	GuardStrength(t model.Tile) float64
}

// GuardArmies is implemented by worlds that know guard compositions. When
// available, danger is scaled by the tactical matchup.
type GuardArmies interface {
	GuardArmy(t model.Tile) (model.Army, bool)
}

// Roster knows the player's heroes and the objects on the map.
type Roster interface {
	Hero(id int) (*model.Hero, bool)
	Primary() *model.Hero
	Object(id int) (*model.Object, bool)
	LockedMission(h *model.Hero) (float64, bool)
}

// PathCache is implemented by worlds that memoize paths. It is flushed
// at the start of every choice.
type PathCache interface {
	InvalidatePathCache()
}

// World is everything goal scoring reads from the game.
type World interface {
	Pathfinder
	Router
	DangerEstimator
	Roster
}

package model

import "sync"

// World is a snapshot of everything the decision core asks the game about.
// It arrives over the wire or from a scenario file and answers the
// pathfinding, routing, danger and roster queries the scorers need.
type World struct {
	Heroes         []Hero          `json:"heroes" yaml:"heroes"`
	PrimaryHero    int             `json:"primaryHero,omitempty" yaml:"primaryHero,omitempty"`
	Objects        []Object        `json:"objects,omitempty" yaml:"objects,omitempty"`
	Guards         []Guard         `json:"guards,omitempty" yaml:"guards,omitempty"`
	PathCosts      []PathCost      `json:"pathCosts,omitempty" yaml:"pathCosts,omitempty"`
	Routes         []Route         `json:"routes,omitempty" yaml:"routes,omitempty"`
	LockedMissions []LockedMission `json:"lockedMissions,omitempty" yaml:"lockedMissions,omitempty"`

	mu    sync.Mutex
	costs map[costKey]float64
}

// Guard is whatever stands on a tile and must be beaten to pass it.
// Strength wins over Configs; Configs is used for banks whose guard roll
// is not known yet.
type Guard struct {
	Tile     Tile          `json:"tile" yaml:"tile"`
	Strength float64       `json:"strength,omitempty" yaml:"strength,omitempty"`
	Configs  []GuardConfig `json:"configs,omitempty" yaml:"configs,omitempty"`
	Army     *Army         `json:"army,omitempty" yaml:"army,omitempty"`
}

func (g Guard) ExpectedStrength() float64 {
	if g.Strength > 0 {
		return g.Strength
	}
	return EstimateBankDanger(g.Configs)
}

// PathCost is a known movement cost for a hero to reach a tile.
type PathCost struct {
	Hero int     `json:"hero" yaml:"hero"`
	Tile Tile    `json:"tile" yaml:"tile"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Route names the first obstacle (or the target itself) on the way to a
// tile. An invalid FirstTile means the target is unreachable.
type Route struct {
	Hero      int  `json:"hero" yaml:"hero"`
	Target    Tile `json:"target" yaml:"target"`
	FirstTile Tile `json:"firstTile" yaml:"firstTile"`
}

// LockedMission pins a hero to an ongoing objective of the given priority.
type LockedMission struct {
	Hero     int     `json:"hero" yaml:"hero"`
	Priority float64 `json:"priority" yaml:"priority"`
}

// StepCost is the movement cost of one tile when no explicit PathCost is
// listed.
const StepCost = 100

type costKey struct {
	hero int
	tile Tile
}

func (w *World) Hero(id int) (*Hero, bool) {
	for i := range w.Heroes {
		if w.Heroes[i].ID == id {
			return &w.Heroes[i], true
		}
	}
	return nil, false
}

// Primary returns the designated primary hero, falling back to the
// strongest one. Nil when the roster is empty.
func (w *World) Primary() *Hero {
	if h, ok := w.Hero(w.PrimaryHero); ok {
		return h
	}
	var best *Hero
	for i := range w.Heroes {
		if best == nil || w.Heroes[i].TotalStrength() > best.TotalStrength() {
			best = &w.Heroes[i]
		}
	}
	return best
}

func (w *World) Object(id int) (*Object, bool) {
	for i := range w.Objects {
		if w.Objects[i].ID == id {
			return &w.Objects[i], true
		}
	}
	return nil, false
}

// MovementCost is the listed cost for h to reach t, or StepCost per tile
// of straight-line distance. Computed costs are memoized until
// InvalidatePathCache.
func (w *World) MovementCost(h *Hero, t Tile) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := costKey{hero: h.ID, tile: t}
	if c, ok := w.costs[key]; ok {
		return c
	}
	cost := float64(h.Pos.Dist(t)) * StepCost
	for _, pc := range w.PathCosts {
		if pc.Hero == h.ID && pc.Tile == t {
			cost = pc.Cost
			break
		}
	}
	if w.costs == nil {
		w.costs = make(map[costKey]float64)
	}
	w.costs[key] = cost
	return cost
}

func (w *World) MovementRemaining(h *Hero) float64 { return h.Movement }

func (w *World) MaxMovementPerTurn(h *Hero) float64 { return h.MaxMovePoints }

// InvalidatePathCache drops memoized movement costs.
func (w *World) InvalidatePathCache() {
	w.mu.Lock()
	w.costs = nil
	w.mu.Unlock()
}

// FirstTileToGet returns the first tile h must pass to reach t. Without a
// listed route the way is assumed clear and t itself is returned.
func (w *World) FirstTileToGet(h *Hero, t Tile) (Tile, bool) {
	for _, r := range w.Routes {
		if r.Hero == h.ID && r.Target == t {
			return r.FirstTile, r.FirstTile.Valid()
		}
	}
	return t, t.Valid()
}

// GuardStrength sums the expected strength of everything guarding t.
func (w *World) GuardStrength(t Tile) float64 {
	total := 0.0
	for _, g := range w.Guards {
		if g.Tile == t {
			total += g.ExpectedStrength()
		}
	}
	return total
}

// GuardArmy returns the composition of the guard on t when it is known.
func (w *World) GuardArmy(t Tile) (Army, bool) {
	for _, g := range w.Guards {
		if g.Tile == t && g.Army != nil {
			return *g.Army, true
		}
	}
	return Army{}, false
}

func (w *World) LockedMission(h *Hero) (float64, bool) {
	for _, m := range w.LockedMissions {
		if m.Hero == h.ID {
			return m.Priority, true
		}
	}
	return 0, false
}

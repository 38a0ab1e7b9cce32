package model

// Hero is a controllable map unit leading an army.
type Hero struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Pos           Tile    `json:"pos" yaml:"pos"`
	Movement      float64 `json:"movement" yaml:"movement"`           // points left this turn
	MaxMovePoints float64 `json:"maxMovePoints" yaml:"maxMovePoints"` // points per full turn
	Army          Army    `json:"army" yaml:"army"`
	// Strength is the hero's total fighting strength including skills.
	// Zero means "same as the army".
	Strength float64 `json:"strength,omitempty" yaml:"strength,omitempty"`
}

func (h *Hero) TotalStrength() float64 {
	if h.Strength > 0 {
		return h.Strength
	}
	return h.Army.Strength()
}

// Object kinds the decision core distinguishes.
const (
	KindHero = 34
	KindTown = 98
)

// NoObject is the object id of a goal that targets a bare tile.
const NoObject = -1

// Object is a map object a hero can visit.
type Object struct {
	ID      int    `json:"id" yaml:"id"`
	Kind    int    `json:"kind" yaml:"kind"`
	Subkind int    `json:"subkind" yaml:"subkind"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Pos     Tile   `json:"pos" yaml:"pos"`
}

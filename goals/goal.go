// Package goals defines the kinds of decision a hero or the kingdom can
// pursue. Each goal is a pointer to one of a closed set of variants.
package goals

import (
	"fmt"
	"math"
	"strings"

	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	KindVisitTile
	KindVisitHero
	KindGatherArmy
	KindClearWayTo
	KindExplore
	KindRecruitHero
	KindBuildThis
	KindBuild
	KindDigAtTile
	KindCollectRes
	KindBuyArmy
	KindAbstract
)

var kindNames = []string{
	"invalid", "visit_tile", "visit_hero", "gather_army", "clear_way_to",
	"explore", "recruit_hero", "build_this", "build", "dig_at_tile",
	"collect_res", "buy_army", "abstract",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	s := strings.ToLower(string(b))
	for i, n := range kindNames {
		if n == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown goal kind %q", b)
}

// Header carries the fields every goal has.
type Header struct {
	Hero     *model.Hero // nil for kingdom-level goals
	Priority float64
	// Abstract goals are not directly executable; they stand for a need
	// that other goals will fulfill.
	Abstract bool
}

func (h *Header) Common() *Header { return h }

func (h *Header) sealed() {}

// Goal is one of the variants declared in this package.
type Goal interface {
	Kind() Kind
	Common() *Header
	sealed()
}

// HeroID is the id of the goal's hero, or 0 without one.
func HeroID(g Goal) int {
	if h := g.Common().Hero; h != nil {
		return h.ID
	}
	return 0
}

// Describe renders a goal for logs and tables.
func Describe(g Goal) string {
	switch g := g.(type) {
	case *VisitTile:
		return fmt.Sprintf("%s %v", g.Kind(), g.Tile)
	case *VisitHero:
		return fmt.Sprintf("%s #%d", g.Kind(), g.ObjectID)
	case *GatherArmy:
		return fmt.Sprintf("%s %.0f", g.Kind(), g.Value)
	case *ClearWayTo:
		return fmt.Sprintf("%s %v", g.Kind(), g.Tile)
	case *DigAtTile:
		return fmt.Sprintf("%s %v", g.Kind(), g.Tile)
	case *BuildThis:
		return fmt.Sprintf("%s %d in #%d", g.Kind(), g.Building, g.Town)
	case *CollectRes:
		return fmt.Sprintf("%s %dx%d", g.Kind(), g.Amount, g.Resource)
	case *BuyArmy:
		return fmt.Sprintf("%s %.0f in #%d", g.Kind(), g.Value, g.Town)
	case *Abstract:
		return fmt.Sprintf("%s %s", g.Kind(), g.Label)
	}
	return g.Kind().String()
}

// VisitTile moves a hero onto a tile, optionally to interact with the
// object there.
type VisitTile struct {
	Header
	Tile     model.Tile
	ObjectID int // model.NoObject for a bare tile
}

// VisitHero meets another hero, identified by its map object id.
type VisitHero struct {
	Header
	ObjectID int
}

// GatherArmy asks for enough troops to reach Value total strength.
type GatherArmy struct {
	Header
	Value float64
}

// ClearWayTo removes whatever blocks the route to Tile.
type ClearWayTo struct {
	Header
	Tile model.Tile
}

type Explore struct{ Header }

type RecruitHero struct{ Header }

type BuildThis struct {
	Header
	Building int
	Town     int
}

type Build struct{ Header }

type DigAtTile struct {
	Header
	Tile model.Tile
}

type CollectRes struct {
	Header
	Resource int
	Amount   int
}

type BuyArmy struct {
	Header
	Town  int
	Value float64
}

type Invalid struct{ Header }

// Abstract is a placeholder goal with no fixed scoring rule.
type Abstract struct {
	Header
	Label string
}

func (*VisitTile) Kind() Kind   { return KindVisitTile }
func (*VisitHero) Kind() Kind   { return KindVisitHero }
func (*GatherArmy) Kind() Kind  { return KindGatherArmy }
func (*ClearWayTo) Kind() Kind  { return KindClearWayTo }
func (*Explore) Kind() Kind     { return KindExplore }
func (*RecruitHero) Kind() Kind { return KindRecruitHero }
func (*BuildThis) Kind() Kind   { return KindBuildThis }
func (*Build) Kind() Kind       { return KindBuild }
func (*DigAtTile) Kind() Kind   { return KindDigAtTile }
func (*CollectRes) Kind() Kind  { return KindCollectRes }
func (*BuyArmy) Kind() Kind     { return KindBuyArmy }
func (*Invalid) Kind() Kind     { return KindInvalid }
func (*Abstract) Kind() Kind    { return KindAbstract }

// NewInvalid is the goal returned when there is nothing to choose from.
// Its priority loses to every real goal.
func NewInvalid() *Invalid {
	return &Invalid{Header: Header{Priority: math.Inf(-1)}}
}

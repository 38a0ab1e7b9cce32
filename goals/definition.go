package goals

import (
	"errors"
	"fmt"

	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

var ErrUnknownHero = errors.New("unknown hero")

// Definition is the serialized form of a goal, as it appears in scenario
// files and evaluate requests. Only the fields relevant to Kind are read.
type Definition struct {
	Kind     Kind        `json:"kind" yaml:"kind"`
	Hero     int         `json:"hero,omitempty" yaml:"hero,omitempty"`
	Priority float64     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Abstract bool        `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Tile     *model.Tile `json:"tile,omitempty" yaml:"tile,omitempty"`
	Object   *int        `json:"object,omitempty" yaml:"object,omitempty"`
	Value    float64     `json:"value,omitempty" yaml:"value,omitempty"`
	Building int         `json:"building,omitempty" yaml:"building,omitempty"`
	Town     int         `json:"town,omitempty" yaml:"town,omitempty"`
	Resource int         `json:"resource,omitempty" yaml:"resource,omitempty"`
	Amount   int         `json:"amount,omitempty" yaml:"amount,omitempty"`
	Label    string      `json:"label,omitempty" yaml:"label,omitempty"`
}

// Roster resolves hero ids.
type Roster interface {
	Hero(id int) (*model.Hero, bool)
}

// Build turns a definition into a goal bound to a hero of r. Hero 0 means
// no hero.
func (d Definition) Build(r Roster) (Goal, error) {
	hdr := Header{Priority: d.Priority, Abstract: d.Abstract}
	if d.Hero != 0 {
		h, ok := r.Hero(d.Hero)
		if !ok {
			return nil, fmt.Errorf("%s goal: %w %d", d.Kind, ErrUnknownHero, d.Hero)
		}
		hdr.Hero = h
	}

	tile := model.InvalidTile
	if d.Tile != nil {
		tile = *d.Tile
	}
	obj := model.NoObject
	if d.Object != nil {
		obj = *d.Object
	}

	switch d.Kind {
	case KindVisitTile:
		return &VisitTile{Header: hdr, Tile: tile, ObjectID: obj}, nil
	case KindVisitHero:
		return &VisitHero{Header: hdr, ObjectID: obj}, nil
	case KindGatherArmy:
		return &GatherArmy{Header: hdr, Value: d.Value}, nil
	case KindClearWayTo:
		return &ClearWayTo{Header: hdr, Tile: tile}, nil
	case KindExplore:
		return &Explore{Header: hdr}, nil
	case KindRecruitHero:
		return &RecruitHero{Header: hdr}, nil
	case KindBuildThis:
		return &BuildThis{Header: hdr, Building: d.Building, Town: d.Town}, nil
	case KindBuild:
		return &Build{Header: hdr}, nil
	case KindDigAtTile:
		return &DigAtTile{Header: hdr, Tile: tile}, nil
	case KindCollectRes:
		return &CollectRes{Header: hdr, Resource: d.Resource, Amount: d.Amount}, nil
	case KindBuyArmy:
		return &BuyArmy{Header: hdr, Town: d.Town, Value: d.Value}, nil
	case KindInvalid:
		return &Invalid{Header: hdr}, nil
	case KindAbstract:
		return &Abstract{Header: hdr, Label: d.Label}, nil
	}
	return nil, fmt.Errorf("unknown goal kind %d", d.Kind)
}

// BuildAll builds every definition, stopping at the first error.
func BuildAll(defs []Definition, r Roster) ([]Goal, error) {
	out := make([]Goal, 0, len(defs))
	for i, d := range defs {
		g, err := d.Build(r)
		if err != nil {
			return nil, fmt.Errorf("goal %d: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

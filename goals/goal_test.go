package goals

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

type roster map[int]*model.Hero

func (r roster) Hero(id int) (*model.Hero, bool) {
	h, ok := r[id]
	return h, ok
}

func TestKindText(t *testing.T) {
	for k := KindInvalid; k <= KindAbstract; k++ {
		b, _ := k.MarshalText()
		var got Kind
		if err := got.UnmarshalText(b); err != nil || got != k {
			t.Errorf("round trip %v = %v, %v", k, got, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("conquer")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestDefinitionBuild(t *testing.T) {
	h := &model.Hero{ID: 3}
	r := roster{3: h}
	tile := model.Tile{X: 4, Y: 5}
	obj := 12

	tests := []struct {
		def  Definition
		want Goal
	}{
		{
			Definition{Kind: KindVisitTile, Hero: 3, Tile: &tile},
			&VisitTile{Header: Header{Hero: h}, Tile: tile, ObjectID: model.NoObject},
		},
		{
			Definition{Kind: KindVisitTile, Hero: 3, Tile: &tile, Object: &obj},
			&VisitTile{Header: Header{Hero: h}, Tile: tile, ObjectID: 12},
		},
		{
			Definition{Kind: KindGatherArmy, Hero: 3, Value: 4000, Abstract: true},
			&GatherArmy{Header: Header{Hero: h, Abstract: true}, Value: 4000},
		},
		{
			Definition{Kind: KindClearWayTo, Hero: 3},
			&ClearWayTo{Header: Header{Hero: h}, Tile: model.InvalidTile},
		},
		{
			Definition{Kind: KindBuyArmy, Priority: 2.5, Town: 9, Value: 800},
			&BuyArmy{Header: Header{Priority: 2.5}, Town: 9, Value: 800},
		},
		{
			Definition{Kind: KindAbstract, Label: "win"},
			&Abstract{Label: "win"},
		},
	}
	for _, tc := range tests {
		got, err := tc.def.Build(r)
		if err != nil {
			t.Errorf("Build(%v): %v", tc.def.Kind, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Build(%v) mismatch (-want +got):\n%s", tc.def.Kind, diff)
		}
	}
}

func TestDefinitionBuildUnknownHero(t *testing.T) {
	_, err := Definition{Kind: KindExplore, Hero: 99}.Build(roster{})
	if !errors.Is(err, ErrUnknownHero) {
		t.Errorf("err = %v, want ErrUnknownHero", err)
	}
}

func TestBuildAllFromYAML(t *testing.T) {
	src := `
- {kind: explore, hero: 1}
- {kind: visit_tile, hero: 1, tile: {x: 2, y: 3, z: 0}, object: 5}
- {kind: build}
`
	var defs []Definition
	if err := yaml.Unmarshal([]byte(src), &defs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	gs, err := BuildAll(defs, roster{1: {ID: 1}})
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	kinds := make([]Kind, len(gs))
	for i, g := range gs {
		kinds[i] = g.Kind()
	}
	if diff := cmp.Diff([]Kind{KindExplore, KindVisitTile, KindBuild}, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	if HeroID(gs[0]) != 1 || HeroID(gs[2]) != 0 {
		t.Errorf("hero ids = %d, %d; want 1, 0", HeroID(gs[0]), HeroID(gs[2]))
	}
}

func TestNewInvalid(t *testing.T) {
	g := NewInvalid()
	if !math.IsInf(g.Priority, -1) {
		t.Errorf("priority = %v, want -Inf", g.Priority)
	}
	if Describe(g) != "invalid" {
		t.Errorf("Describe = %q", Describe(g))
	}
}

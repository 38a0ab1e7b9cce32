package scenario

import (
	"errors"
	"testing"

	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

func TestLoad(t *testing.T) {
	s, err := Load("testdata/skirmish.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "skirmish" {
		t.Errorf("Name = %q", s.Name)
	}
	if len(s.World.Heroes) != 2 || len(s.Batches) != 2 || len(s.Battles) != 2 {
		t.Fatalf("heroes/batches/battles = %d/%d/%d", len(s.World.Heroes), len(s.Batches), len(s.Battles))
	}

	gs, err := s.Goals(0)
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(gs) != 8 {
		t.Fatalf("got %d goals, want 8", len(gs))
	}
	vt, ok := gs[0].(*goals.VisitTile)
	if !ok {
		t.Fatalf("goal 0 is %T, want *goals.VisitTile", gs[0])
	}
	if vt.Hero != &s.World.Heroes[0] || vt.ObjectID != 100 {
		t.Errorf("visit tile bound to hero %v object %d", vt.Hero, vt.ObjectID)
	}

	siege := s.Battles[1].Enemy
	if siege.WallLevel() != model.WallCastle {
		t.Errorf("siege walls = %v, want castle", siege.WallLevel())
	}
	if got := s.World.GuardStrength(model.Tile{X: 30, Y: 30}); got != 8100 {
		t.Errorf("bank guard strength = %v, want 8100", got)
	}
}

func TestWanderTargets(t *testing.T) {
	s, err := Load("testdata/skirmish.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	h, objs := s.WanderTargets(0)
	if h == nil || h.ID != 1 || len(objs) != len(s.World.Objects) {
		t.Errorf("query 0 = hero %v, %d objects", h, len(objs))
	}
	h, objs = s.WanderTargets(1)
	if h == nil || h.ID != 2 || len(objs) != 2 || objs[1].ID != 102 {
		t.Errorf("query 1 = hero %v, objects %v", h, objs)
	}
}

func TestParseRejectsUnknownHero(t *testing.T) {
	src := `
name: bad
world:
  heroes: [{id: 1}]
batches:
  - name: b
    goals:
      - {kind: explore, hero: 7}
`
	if _, err := Parse([]byte(src)); !errors.Is(err, goals.ErrUnknownHero) {
		t.Errorf("err = %v, want ErrUnknownHero", err)
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	src := `
batches:
  - goals:
      - {kind: conquer}
`
	if _, err := Parse([]byte(src)); err == nil {
		t.Error("expected error for unknown goal kind")
	}
}

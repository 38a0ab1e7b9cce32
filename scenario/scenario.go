// Package scenario reads YAML files describing a world snapshot plus the
// goal batches, battles and wander queries to evaluate against it.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

type Scenario struct {
	Name    string       `yaml:"name"`
	World   *model.World `yaml:"world"`
	Batches []Batch      `yaml:"batches"`
	Battles []Battle     `yaml:"battles"`
	Wander  []Wander     `yaml:"wander"`
}

// Batch is one set of candidate goals for a single choice.
type Batch struct {
	Name  string             `yaml:"name"`
	Goals []goals.Definition `yaml:"goals"`
}

// Battle pairs two armies for a tactical advantage estimate.
type Battle struct {
	Name     string     `yaml:"name"`
	Friendly model.Army `yaml:"friendly"`
	Enemy    model.Army `yaml:"enemy"`
}

// Wander asks for the ranking of objects as targets for one hero. An
// empty Objects list means every object in the world.
type Wander struct {
	Hero    int   `yaml:"hero"`
	Objects []int `yaml:"objects"`
}

// Load parses and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.World == nil {
		s.World = &model.World{}
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	var errs []error
	for i, b := range s.Batches {
		if _, err := goals.BuildAll(b.Goals, s.World); err != nil {
			errs = append(errs, fmt.Errorf("batch %d (%s): %w", i, b.Name, err))
		}
	}
	for i, w := range s.Wander {
		if _, ok := s.World.Hero(w.Hero); !ok {
			errs = append(errs, fmt.Errorf("wander %d: %w %d", i, goals.ErrUnknownHero, w.Hero))
		}
		for _, id := range w.Objects {
			if _, ok := s.World.Object(id); !ok {
				errs = append(errs, fmt.Errorf("wander %d: unknown object %d", i, id))
			}
		}
	}
	return errors.Join(errs...)
}

// Goals builds the goals of batch i, bound to the scenario's heroes.
func (s *Scenario) Goals(i int) ([]goals.Goal, error) {
	return goals.BuildAll(s.Batches[i].Goals, s.World)
}

// WanderTargets resolves the hero and objects of query i.
func (s *Scenario) WanderTargets(i int) (*model.Hero, []*model.Object) {
	q := s.Wander[i]
	h, _ := s.World.Hero(q.Hero)
	var objs []*model.Object
	if len(q.Objects) == 0 {
		for j := range s.World.Objects {
			objs = append(objs, &s.World.Objects[j])
		}
		return h, objs
	}
	for _, id := range q.Objects {
		if o, ok := s.World.Object(id); ok {
			objs = append(objs, o)
		}
	}
	return h, objs
}

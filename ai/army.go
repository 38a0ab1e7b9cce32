package ai

import (
	"errors"

	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

var ErrEmptyArmy = errors.New("army has no fighting power")

// ArmyStructure is the share of an army's power in each fighting style.
// A flying shooter counts toward both Shooters and Fliers, so the shares
// need not sum to one.
type ArmyStructure struct {
	Walkers  float64
	Shooters float64
	Fliers   float64
	MaxSpeed int
}

// EvaluateArmyStructure buckets stacks by fighting style, weighted by
// power.
func EvaluateArmyStructure(stacks []model.Stack) (ArmyStructure, error) {
	var total, walkers, shooters, fliers float64
	maxSpeed := 0
	for _, s := range stacks {
		total += s.Power
		if s.Shooter {
			shooters += s.Power
		}
		if s.Flying {
			fliers += s.Power
		}
		if !s.Shooter && !s.Flying {
			walkers += s.Power
		}
		maxSpeed = max(maxSpeed, s.Speed)
	}
	if total <= 0 {
		return ArmyStructure{}, ErrEmptyArmy
	}

	as := ArmyStructure{
		Walkers:  walkers / total,
		Shooters: shooters / total,
		Fliers:   fliers / total,
		MaxSpeed: maxSpeed,
	}
	assertf(as.Walkers > 0 || as.Shooters > 0 || as.Fliers > 0, "army structure of %d stacks is all zero", len(stacks))
	return as, nil
}

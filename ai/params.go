package ai

import "github.com/nstehr/vimy/vimy-fuzzy/fuzzy"

// Params are the tunables of goal scoring.
type Params struct {
	// SafeAttackRatio is the own/enemy strength ratio above which a fight
	// is considered safe.
	SafeAttackRatio float64
	// UnguardedRatio stands in for the strength ratio when a target has
	// no guard at all.
	UnguardedRatio float64
	// SettlementReward is the estimated reward of visiting a town.
	SettlementReward float64
	// Resolution is the number of defuzzification samples.
	Resolution int
}

func DefaultParams() Params {
	return Params{
		SafeAttackRatio:  1.5,
		UnguardedRatio:   10,
		SettlementReward: 5,
		Resolution:       fuzzy.DefaultResolution,
	}
}

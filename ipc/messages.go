package ipc

import (
	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

// Message types of the sidecar protocol.
const (
	TypeHello         = "hello"
	TypeAck           = "ack"
	TypeEvaluateGoals = "evaluate_goals"
	TypeDecision      = "decision"
	TypeTactical      = "tactical"
	TypeThreat        = "threat"
	TypeWanderTargets = "wander_targets"
	TypeWanderRanking = "wander_ranking"
	TypeError         = "error"
)

type HelloMessage struct {
	Player string `json:"player"`
}

type AckMessage struct {
	Status  string `json:"status"`
	Session string `json:"session"`
}

// EvaluateGoalsMessage asks for the best of a batch of goals in the given
// world.
type EvaluateGoalsMessage struct {
	World *model.World       `json:"world"`
	Goals []goals.Definition `json:"goals"`
}

// DecisionMessage answers EvaluateGoalsMessage. Index points into the
// request's goal list and is -1 for an empty batch. Priorities are in
// request order.
type DecisionMessage struct {
	Index      int        `json:"index"`
	Kind       goals.Kind `json:"kind"`
	Priority   float64    `json:"priority"`
	Priorities []float64  `json:"priorities"`
}

type TacticalMessage struct {
	Friendly model.Army `json:"friendly"`
	Enemy    model.Army `json:"enemy"`
}

type ThreatMessage struct {
	Value float64 `json:"value"`
}

// WanderTargetsMessage asks for a ranking of objects as wander targets
// for one hero. Empty Objects means every object in the world.
type WanderTargetsMessage struct {
	World   *model.World `json:"world"`
	Hero    int          `json:"hero"`
	Objects []int        `json:"objects,omitempty"`
}

type WanderRankingMessage struct {
	Targets []ScoredTarget `json:"targets"`
}

type ScoredTarget struct {
	Object int     `json:"object"`
	Value  float64 `json:"value"`
}

type ErrorMessage struct {
	Request string `json:"request"`
	Error   string `json:"error"`
}

// Package agent ties a client connection to its own set of scoring
// engines.
package agent

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nstehr/vimy/vimy-fuzzy/ai"
	"github.com/nstehr/vimy/vimy-fuzzy/goals"
	"github.com/nstehr/vimy/vimy-fuzzy/ipc"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

var ErrNoWorld = errors.New("request carries no world")

// Session owns the engines of one decision maker. Engines are built once
// in NewSession and reused for every request. A Session serves one
// request at a time.
type Session struct {
	ID     string
	Player string
	Conn   *ipc.Connection

	dispatcher *ai.Dispatcher
}

// NewSession builds the engines. conn may be nil when the session is
// driven directly rather than over the wire.
func NewSession(conn *ipc.Connection, p ai.Params, values objectvalue.Store) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Conn:       conn,
		dispatcher: ai.NewDispatcher(p, values),
	}
	if conn != nil {
		conn.Session = s.ID
	}
	return s
}

func (s *Session) Dispatcher() *ai.Dispatcher { return s.dispatcher }

// Register installs the session's handlers on its connection.
func (s *Session) Register() {
	s.Conn.RegisterHandler(ipc.TypeHello, s.HandleHello)
	s.Conn.RegisterHandler(ipc.TypeEvaluateGoals, s.HandleEvaluateGoals)
	s.Conn.RegisterHandler(ipc.TypeTactical, s.HandleTactical)
	s.Conn.RegisterHandler(ipc.TypeWanderTargets, s.HandleWanderTargets)
}

// HandleHello completes the handshake and tells the client its session.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := env.Decode(&hello); err != nil {
		return nil, err
	}
	s.Player = hello.Player
	slog.Info("player identified", "player", s.Player, "session", s.ID)
	return reply(ipc.TypeAck, ipc.AckMessage{Status: "ok", Session: s.ID})
}

func (s *Session) HandleEvaluateGoals(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.EvaluateGoalsMessage
	if err := env.Decode(&req); err != nil {
		return nil, err
	}
	if req.World == nil {
		return nil, ErrNoWorld
	}
	d, err := s.Decide(req.World, req.Goals)
	if err != nil {
		return nil, err
	}
	return reply(ipc.TypeDecision, d)
}

// Decide builds the goals against w and chooses among them.
func (s *Session) Decide(w *model.World, defs []goals.Definition) (ipc.DecisionMessage, error) {
	gs, err := goals.BuildAll(defs, w)
	if err != nil {
		return ipc.DecisionMessage{}, err
	}
	best, err := s.dispatcher.ChooseSolution(w, gs)
	if err != nil {
		return ipc.DecisionMessage{}, fmt.Errorf("choose solution: %w", err)
	}

	// An empty batch chooses a goal outside the request, at -Inf, which
	// JSON cannot carry.
	d := ipc.DecisionMessage{Index: -1, Kind: goals.KindInvalid, Priority: ai.InvalidPriority}
	d.Priorities = make([]float64, len(gs))
	for i, g := range gs {
		d.Priorities[i] = g.Common().Priority
		if g == best {
			d.Index = i
			d.Kind = g.Kind()
			d.Priority = g.Common().Priority
		}
	}
	slog.Info("goal chosen",
		"session", s.ID,
		"goal", goals.Describe(best),
		"hero", goals.HeroID(best),
		"priority", d.Priority,
		"candidates", len(gs),
	)
	return d, nil
}

func (s *Session) HandleTactical(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.TacticalMessage
	if err := env.Decode(&req); err != nil {
		return nil, err
	}
	v := s.dispatcher.TacticalAdvantage(req.Friendly, req.Enemy)
	return reply(ipc.TypeThreat, ipc.ThreatMessage{Value: v})
}

func (s *Session) HandleWanderTargets(env ipc.Envelope) (*ipc.Envelope, error) {
	var req ipc.WanderTargetsMessage
	if err := env.Decode(&req); err != nil {
		return nil, err
	}
	if req.World == nil {
		return nil, ErrNoWorld
	}
	ranking, err := s.RankWander(req.World, req.Hero, req.Objects)
	if err != nil {
		return nil, err
	}
	return reply(ipc.TypeWanderRanking, ranking)
}

// RankWander values objects in w as wander targets for hero. An empty
// ids list ranks every object.
func (s *Session) RankWander(w *model.World, hero int, ids []int) (ipc.WanderRankingMessage, error) {
	h, ok := w.Hero(hero)
	if !ok {
		return ipc.WanderRankingMessage{}, fmt.Errorf("%w %d", goals.ErrUnknownHero, hero)
	}
	var objs []*model.Object
	if len(ids) == 0 {
		for i := range w.Objects {
			objs = append(objs, &w.Objects[i])
		}
	}
	for _, id := range ids {
		o, ok := w.Object(id)
		if !ok {
			return ipc.WanderRankingMessage{}, fmt.Errorf("unknown object %d", id)
		}
		objs = append(objs, o)
	}

	ranked := s.dispatcher.RankWanderTargets(w, h, objs)
	out := ipc.WanderRankingMessage{Targets: make([]ipc.ScoredTarget, len(ranked))}
	for i, r := range ranked {
		out.Targets[i] = ipc.ScoredTarget{Object: r.Object.ID, Value: r.Value}
	}
	return out, nil
}

func reply(msgType string, data any) (*ipc.Envelope, error) {
	env, err := ipc.NewEnvelope(msgType, data)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

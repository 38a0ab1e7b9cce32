package ai

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
	"github.com/nstehr/vimy/vimy-fuzzy/objectvalue"
)

// WanderTargetEngine values map objects a hero could wander to, from
// distance and the learned worth of the object's type.
type WanderTargetEngine struct {
	engine       *fuzzy.Engine
	turnDistance *fuzzy.Variable
	objectValue  *fuzzy.Variable
	value        *fuzzy.Variable
	values       objectvalue.Store
}

func newWanderTargetEngine(vars movementVariables, values objectvalue.Store, opts ...fuzzy.Option) *WanderTargetEngine {
	objectValue := fuzzy.NewVariable("objectValue", 0, objectvalue.MaxValue,
		fuzzy.RampTerm("LOW", 3000, 0),
		fuzzy.TriangleTerm("MEDIUM", 2500, 6000),
		fuzzy.RampTerm("HIGH", 5000, objectvalue.MaxValue))
	inputs := []*fuzzy.Variable{vars.turnDistance, objectValue}
	return &WanderTargetEngine{
		engine:       newMovementEngine("wander target", inputs, vars.value, wanderRules, opts...),
		turnDistance: vars.turnDistance,
		objectValue:  objectValue,
		value:        vars.value,
		values:       values,
	}
}

func (e *WanderTargetEngine) Engine() *fuzzy.Engine { return e.engine }

// ObjectValue returns the known worth of obj's type. Unknown types are
// registered with value 0.
func (e *WanderTargetEngine) ObjectValue(obj *model.Object) int {
	v, ok, err := e.values.Lookup(obj.Kind, obj.Subkind)
	if err != nil {
		slog.Error("object value lookup failed", "kind", obj.Kind, "subkind", obj.Subkind, "error", err)
		return 0
	}
	if ok {
		return min(max(v, 0), objectvalue.MaxValue)
	}
	if err := e.values.Insert(obj.Kind, obj.Subkind, 0); err != nil {
		slog.Error("object value insert failed", "kind", obj.Kind, "subkind", obj.Subkind, "error", err)
	}
	slog.Warn("unknown object type, registering", "kind", obj.Kind, "subkind", obj.Subkind, "value", 0)
	return 0
}

// Evaluate returns the value in [0, 5] of h wandering to obj, 0 if the
// engine cannot complete.
func (e *WanderTargetEngine) Evaluate(w Pathfinder, h *model.Hero, obj *model.Object) float64 {
	turns := TurnDistance(w.MovementCost(h, obj.Pos), w.MovementRemaining(h), w.MaxMovementPerTurn(h))
	e.turnDistance.SetValue(turns)
	e.objectValue.SetValue(float64(e.ObjectValue(obj)))

	if err := e.engine.Process(); err != nil {
		slog.Error("wander target evaluation failed", "engine", e.engine.Name, "object", obj.ID, "error", err)
		return 0
	}
	value := e.value.Value()
	assertf(value >= 0, "wander value %v is negative", value)
	return value
}

package fuzzy

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/expr-lang/expr/vm"
)

var (
	ErrParse           = errors.New("rule parse error")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownTerm     = errors.New("unknown term")
	ErrInvalidInput    = errors.New("invalid input value")
	ErrNoActivation    = errors.New("no rule activated output")
)

// DefaultResolution is the number of samples used to integrate an output set.
const DefaultResolution = 100

// Engine owns its variables and rule base. The operator profile is fixed at
// construction. An Engine is not safe for concurrent use: Process mutates
// the output variables in place.
type Engine struct {
	Name string

	profile    Profile
	resolution int
	inputs     []*Variable
	outputs    []*Variable
	rules      []*Rule
}

type Option func(*Engine)

// WithResolution sets the number of integration samples for defuzzification.
func WithResolution(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.resolution = n
		}
	}
}

func NewEngine(name string, profile Profile, opts ...Option) *Engine {
	e := &Engine{Name: name, profile: profile, resolution: DefaultResolution}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Profile() Profile { return e.profile }

func (e *Engine) AddInputVariable(v *Variable) { e.inputs = append(e.inputs, v) }

func (e *Engine) AddOutputVariable(v *Variable) { e.outputs = append(e.outputs, v) }

// AddRule parses and compiles text. A rule that fails is logged and left out
// of the rule base; the engine keeps working with the rules it has.
func (e *Engine) AddRule(text string) error {
	r, err := e.compileRule(text)
	if err != nil {
		slog.Error("rule parse failed", "engine", e.Name, "rule", text, "error", err)
		return err
	}
	e.rules = append(e.rules, r)
	return nil
}

// AddRules adds each rule in order and returns how many were accepted.
func (e *Engine) AddRules(texts []string) int {
	n := 0
	for _, t := range texts {
		if e.AddRule(t) == nil {
			n++
		}
	}
	return n
}

// Rules returns the accepted rules in insertion order.
func (e *Engine) Rules() []*Rule {
	out := make([]*Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Inputs returns the input variables in registration order.
func (e *Engine) Inputs() []*Variable {
	out := make([]*Variable, len(e.inputs))
	copy(out, e.inputs)
	return out
}

func (e *Engine) input(name string) *Variable {
	for _, v := range e.inputs {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (e *Engine) output(name string) *Variable {
	for _, v := range e.outputs {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// SetValue sets the crisp value of an input variable.
func (e *Engine) SetValue(name string, x float64) error {
	v := e.input(name)
	if v == nil {
		return fmt.Errorf("engine %s: %w: %q", e.Name, ErrUnknownVariable, name)
	}
	v.SetValue(x)
	return nil
}

// SetEnabled toggles an input variable for subsequent evaluations.
func (e *Engine) SetEnabled(name string, enabled bool) error {
	v := e.input(name)
	if v == nil {
		return fmt.Errorf("engine %s: %w: %q", e.Name, ErrUnknownVariable, name)
	}
	v.SetEnabled(enabled)
	return nil
}

// Value returns the crisp value of an output variable after Process.
func (e *Engine) Value(name string) (float64, error) {
	v := e.output(name)
	if v == nil {
		return math.NaN(), fmt.Errorf("engine %s: %w: %q", e.Name, ErrUnknownVariable, name)
	}
	return v.Value(), nil
}

type activation struct {
	term   Term
	hedges []Hedge
	degree float64
}

// Process fires every rule against the current inputs, aggregates the
// activated consequents per output and defuzzifies them. On error the
// affected outputs are left as NaN.
func (e *Engine) Process() error {
	for _, out := range e.outputs {
		out.SetValue(math.NaN())
	}

	env := ruleEnv{engine: e}
	acts := make(map[*Variable][]activation, len(e.outputs))
	for _, r := range e.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			return fmt.Errorf("engine %s: rule %q: %w", e.Name, r.Text, err)
		}
		degree, ok := result.(float64)
		if !ok {
			return fmt.Errorf("engine %s: rule %q returned %T", e.Name, r.Text, result)
		}
		if math.IsNaN(degree) {
			return fmt.Errorf("engine %s: rule %q: %w", e.Name, r.Text, ErrInvalidInput)
		}
		if degree <= 0 {
			continue
		}
		for _, c := range r.consequents {
			acts[c.output] = append(acts[c.output], activation{term: c.term, hedges: c.hedges, degree: degree})
		}
	}

	for _, out := range e.outputs {
		if !out.Enabled() {
			continue
		}
		x, err := e.defuzzify(out, acts[out])
		if err != nil {
			return fmt.Errorf("engine %s: output %q: %w", e.Name, out.Name, err)
		}
		out.SetValue(x)
	}
	return nil
}

// membership of the aggregated output set at x.
func (e *Engine) aggregate(acts []activation, x float64) float64 {
	mu := 0.0
	for _, a := range acts {
		m := e.profile.Implication.Compute(a.degree, applyHedges(a.hedges, a.term.Shape.Membership(x)))
		mu = e.profile.Aggregation.Compute(mu, m)
	}
	return mu
}

func (e *Engine) defuzzify(out *Variable, acts []activation) (float64, error) {
	if len(acts) == 0 {
		return math.NaN(), ErrNoActivation
	}
	dx := (out.Max - out.Min) / float64(e.resolution)

	switch e.profile.Defuzzifier {
	case MeanOfMaximum:
		best, sum, n := 0.0, 0.0, 0
		for i := 0; i < e.resolution; i++ {
			x := out.Min + (float64(i)+0.5)*dx
			mu := e.aggregate(acts, x)
			switch {
			case mu > best:
				best, sum, n = mu, x, 1
			case mu == best && mu > 0:
				sum += x
				n++
			}
		}
		if n == 0 {
			return math.NaN(), ErrNoActivation
		}
		return sum / float64(n), nil
	}

	area, moment := 0.0, 0.0
	for i := 0; i < e.resolution; i++ {
		x := out.Min + (float64(i)+0.5)*dx
		mu := e.aggregate(acts, x)
		area += mu
		moment += mu * x
	}
	if area == 0 {
		return math.NaN(), ErrNoActivation
	}
	return moment / area, nil
}

// LogValue renders every input as slog attributes, used when reporting
// combinations the rule base does not cover.
func (e *Engine) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.inputs)+1)
	attrs = append(attrs, slog.String("engine", e.Name))
	for _, v := range e.inputs {
		attrs = append(attrs, slog.Float64(v.Name, v.Value()))
	}
	return slog.GroupValue(attrs...)
}

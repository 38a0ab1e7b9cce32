package fuzzy

import (
	"errors"
	"math"
	"testing"
)

func newTestEngine(p Profile) *Engine {
	e := NewEngine("test", p)
	e.AddInputVariable(NewVariable("x", 0, 1, RampTerm("LOW", 1, 0), RampTerm("HIGH", 0, 1)))
	e.AddInputVariable(NewVariable("z", 0, 1, RampTerm("LOW", 1, 0), RampTerm("HIGH", 0, 1)))
	e.AddOutputVariable(NewVariable("y", 0, 1, RampTerm("LOW", 1, 0), RampTerm("HIGH", 0, 1)))
	return e
}

func process(t *testing.T, e *Engine, inputs map[string]float64) float64 {
	t.Helper()
	for name, x := range inputs {
		if err := e.SetValue(name, x); err != nil {
			t.Fatalf("SetValue(%q) failed: %v", name, err)
		}
	}
	if err := e.Process(); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	y, err := e.Value("y")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	return y
}

func TestEngineCentroid(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	if n := e.AddRules([]string{
		"if x is LOW then y is LOW",
		"if x is HIGH then y is HIGH",
	}); n != 2 {
		t.Fatalf("AddRules accepted %d rules, want 2", n)
	}

	tests := []struct {
		x, want, tol float64
	}{
		{0, 1.0 / 3, 1e-3},
		{1, 2.0 / 3, 1e-3},
		{0.5, 0.5, 1e-9},
	}
	for _, tc := range tests {
		got := process(t, e, map[string]float64{"x": tc.x, "z": 0})
		if !near(got, tc.want, tc.tol) {
			t.Errorf("x=%v: y = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestEngineConsequentHedge(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if x is HIGH then y is very HIGH")
	got := process(t, e, map[string]float64{"x": 1, "z": 0})
	if !near(got, 0.75, 1e-3) {
		t.Errorf("very HIGH centroid = %v, want 0.75", got)
	}
}

func TestEngineRejectsBadRules(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if x is LOW then y is LOW")

	tests := []struct {
		text string
		want error
	}{
		{"if x is MEDIUM then y is LOW", ErrUnknownTerm},
		{"if w is LOW then y is LOW", ErrUnknownVariable},
		{"if x is LOW then w is LOW", ErrUnknownVariable},
		{"if x is LOW then y is MEDIUM", ErrUnknownTerm},
		{"if y is LOW then y is LOW", ErrUnknownVariable},
		{"when x is LOW then y is LOW", ErrParse},
	}
	for _, tc := range tests {
		if err := e.AddRule(tc.text); !errors.Is(err, tc.want) {
			t.Errorf("AddRule(%q) = %v, want %v", tc.text, err, tc.want)
		}
	}
	if got := len(e.Rules()); got != 1 {
		t.Errorf("rule base has %d rules, want 1", got)
	}
}

func TestEngineNoActivation(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if x is HIGH then y is HIGH")
	e.SetValue("x", 0)
	e.SetValue("z", 0)

	err := e.Process()
	if !errors.Is(err, ErrNoActivation) {
		t.Fatalf("Process() = %v, want ErrNoActivation", err)
	}
	if y, _ := e.Value("y"); !math.IsNaN(y) {
		t.Errorf("y = %v after failed Process, want NaN", y)
	}
}

func TestEngineUnsetInput(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if x is HIGH then y is HIGH")
	if err := e.Process(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Process() with unset input = %v, want ErrInvalidInput", err)
	}
}

func TestEngineDisabledInput(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRules([]string{
		"if x is LOW then y is LOW",
		"if z is HIGH then y is HIGH",
	})
	e.SetValue("x", 1)
	e.SetValue("z", 1)

	if err := e.SetEnabled("z", false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	if err := e.Process(); !errors.Is(err, ErrNoActivation) {
		t.Errorf("Process() with z disabled = %v, want ErrNoActivation", err)
	}

	e.SetEnabled("z", true)
	if got := process(t, e, nil); !near(got, 2.0/3, 1e-3) {
		t.Errorf("z enabled: y = %v, want 2/3", got)
	}
}

func TestEngineAggregation(t *testing.T) {
	rules := []string{
		"if x is LOW then y is LOW",
		"if x is HIGH then y is HIGH",
		"if z is HIGH then y is HIGH",
	}
	inputs := map[string]float64{"x": 0.5, "z": 0.5}

	maxEngine := newTestEngine(DefaultProfile)
	maxEngine.AddRules(rules)
	sumProfile := DefaultProfile
	sumProfile.Aggregation = AlgebraicSum
	sumEngine := newTestEngine(sumProfile)
	sumEngine.AddRules(rules)

	// Under Maximum the duplicate HIGH activation adds nothing and the set
	// stays symmetric; under AlgebraicSum it reinforces the HIGH side.
	if got := process(t, maxEngine, inputs); !near(got, 0.5, 1e-9) {
		t.Errorf("Maximum centroid = %v, want 0.5", got)
	}
	if got := process(t, sumEngine, inputs); got <= 0.51 {
		t.Errorf("AlgebraicSum centroid = %v, want > 0.51", got)
	}
}

func TestEngineOrAndParentheses(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if (x is LOW or x is HIGH) and z is HIGH then y is HIGH")
	for _, x := range []float64{0, 0.3, 1} {
		if got := process(t, e, map[string]float64{"x": x, "z": 1}); math.IsNaN(got) || got <= 0.5 {
			t.Errorf("x=%v: y = %v, want HIGH side of range", x, got)
		}
	}
}

func TestEngineMeanOfMaximum(t *testing.T) {
	p := DefaultProfile
	p.Defuzzifier = MeanOfMaximum
	e := newTestEngine(p)
	e.AddRule("if x is HIGH then y is HIGH")
	if got := process(t, e, map[string]float64{"x": 1, "z": 0}); !near(got, 0.995, 1e-9) {
		t.Errorf("MeanOfMaximum = %v, want 0.995", got)
	}
}

func TestEngineMultipleConsequents(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddOutputVariable(NewVariable("w", 0, 1, RampTerm("HIGH", 0, 1)))
	e.AddRule("if x is HIGH then y is HIGH and w is HIGH")
	y := process(t, e, map[string]float64{"x": 1, "z": 0})
	w, _ := e.Value("w")
	if !near(y, w, 1e-12) {
		t.Errorf("y = %v, w = %v, want equal", y, w)
	}
}

func TestRuleSource(t *testing.T) {
	e := newTestEngine(DefaultProfile)
	e.AddRule("if x is LOW and z is somewhat HIGH then y is LOW")
	rules := e.Rules()
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	want := `Conj(Is("x", "LOW", ""), Is("z", "HIGH", "somewhat"))`
	if rules[0].Source != want {
		t.Errorf("Source = %s, want %s", rules[0].Source, want)
	}
}

package fuzzy

import "math"

// Variable is a linguistic variable: a named crisp quantity partitioned into
// overlapping terms. The same *Variable may be registered with more than one
// engine; only one of those engines may be evaluating at a time.
type Variable struct {
	Name     string
	Min, Max float64
	Terms    []Term

	value    float64
	disabled bool
}

// NewVariable creates an enabled variable over [min, max].
func NewVariable(name string, min, max float64, terms ...Term) *Variable {
	return &Variable{Name: name, Min: min, Max: max, Terms: terms, value: math.NaN()}
}

// Term returns the named term.
func (v *Variable) Term(name string) (Term, bool) {
	for _, t := range v.Terms {
		if t.Name == name {
			return t, true
		}
	}
	return Term{}, false
}

// Value is the current crisp value. It may lie outside [Min, Max].
func (v *Variable) Value() float64 { return v.value }

func (v *Variable) SetValue(x float64) { v.value = x }

func (v *Variable) Enabled() bool { return !v.disabled }

func (v *Variable) SetEnabled(enabled bool) { v.disabled = !enabled }

// Membership is the degree of the current value in the named term. Disabled
// variables have no membership in any term; an unset value yields NaN.
func (v *Variable) Membership(term string) (float64, bool) {
	t, ok := v.Term(term)
	if !ok {
		return 0, false
	}
	if v.disabled {
		return 0, true
	}
	if math.IsNaN(v.value) {
		return math.NaN(), true
	}
	return t.Shape.Membership(v.value), true
}

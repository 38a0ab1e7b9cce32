package fuzzy

import "fmt"

// TNorm combines degrees conjunctively. Used for AND and for implication.
type TNorm uint8

const (
	Minimum TNorm = iota
	AlgebraicProduct
)

func (t TNorm) Compute(a, b float64) float64 {
	if t == AlgebraicProduct {
		return a * b
	}
	return min(a, b)
}

func (t TNorm) String() string {
	switch t {
	case Minimum:
		return "Minimum"
	case AlgebraicProduct:
		return "AlgebraicProduct"
	}
	return fmt.Sprintf("TNorm(%d)", uint8(t))
}

// SNorm combines degrees disjunctively. Used for OR and for aggregation.
type SNorm uint8

const (
	Maximum SNorm = iota
	AlgebraicSum
)

func (s SNorm) Compute(a, b float64) float64 {
	if s == AlgebraicSum {
		return a + b - a*b
	}
	return max(a, b)
}

func (s SNorm) String() string {
	switch s {
	case Maximum:
		return "Maximum"
	case AlgebraicSum:
		return "AlgebraicSum"
	}
	return fmt.Sprintf("SNorm(%d)", uint8(s))
}

// Defuzzifier selects how an aggregated output set becomes a crisp value.
type Defuzzifier uint8

const (
	Centroid Defuzzifier = iota
	MeanOfMaximum
)

func (d Defuzzifier) String() string {
	switch d {
	case Centroid:
		return "Centroid"
	case MeanOfMaximum:
		return "MeanOfMaximum"
	}
	return fmt.Sprintf("Defuzzifier(%d)", uint8(d))
}

// Profile is the operator configuration fixed for an engine's lifetime.
type Profile struct {
	Conjunction TNorm
	Disjunction SNorm
	Implication TNorm
	Aggregation SNorm
	Defuzzifier Defuzzifier
}

// DefaultProfile is min/max/min/max/centroid.
var DefaultProfile = Profile{
	Conjunction: Minimum,
	Disjunction: Maximum,
	Implication: Minimum,
	Aggregation: Maximum,
	Defuzzifier: Centroid,
}

func (p Profile) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", p.Conjunction, p.Disjunction, p.Implication, p.Aggregation, p.Defuzzifier)
}

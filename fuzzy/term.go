package fuzzy

// Shape is a piecewise-linear membership function. Every shape returns a
// degree in [0,1] for any finite x, including values outside the owning
// variable's range.
type Shape interface {
	Membership(x float64) float64
}

// Term is a named shape on a linguistic variable, e.g. "LOW" on speed.
type Term struct {
	Name  string
	Shape Shape
}

// Rectangle is 1 inside [Start, End] and 0 elsewhere.
type Rectangle struct {
	Start, End float64
}

func (r Rectangle) Membership(x float64) float64 {
	if x < r.Start || x > r.End {
		return 0
	}
	return 1
}

// Ramp is 0 at Start and 1 at End. When Start > End the ramp descends.
// Values beyond either endpoint are clamped.
type Ramp struct {
	Start, End float64
}

func (r Ramp) Membership(x float64) float64 {
	if r.Start == r.End {
		return 0
	}
	if r.Start < r.End {
		switch {
		case x <= r.Start:
			return 0
		case x >= r.End:
			return 1
		}
		return (x - r.Start) / (r.End - r.Start)
	}
	switch {
	case x >= r.Start:
		return 0
	case x <= r.End:
		return 1
	}
	return (r.Start - x) / (r.Start - r.End)
}

// Triangle is 0 at A and C and peaks at B.
type Triangle struct {
	A, B, C float64
}

func (t Triangle) Membership(x float64) float64 {
	switch {
	case x < t.A || x > t.C:
		return 0
	case x == t.B:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	}
	return (t.C - x) / (t.C - t.B)
}

// Trapezoid rises from A to B, stays at 1 on [B, C] and falls to 0 at D.
type Trapezoid struct {
	A, B, C, D float64
}

func (t Trapezoid) Membership(x float64) float64 {
	switch {
	case x < t.A || x > t.D:
		return 0
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	case x <= t.C:
		return 1
	case x < t.D:
		return (t.D - x) / (t.D - t.C)
	}
	return 0
}

// RampTerm builds a term with a Ramp shape.
func RampTerm(name string, start, end float64) Term {
	return Term{Name: name, Shape: Ramp{Start: start, End: end}}
}

// TriangleTerm builds a symmetric triangle over [lo, hi] peaking at the midpoint.
func TriangleTerm(name string, lo, hi float64) Term {
	return Term{Name: name, Shape: Triangle{A: lo, B: (lo + hi) / 2, C: hi}}
}

// RectangleTerm builds a term with a Rectangle shape.
func RectangleTerm(name string, start, end float64) Term {
	return Term{Name: name, Shape: Rectangle{Start: start, End: end}}
}

// TrapezoidTerm builds a term with a Trapezoid shape.
func TrapezoidTerm(name string, a, b, c, d float64) Term {
	return Term{Name: name, Shape: Trapezoid{A: a, B: b, C: c, D: d}}
}

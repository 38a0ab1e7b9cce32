package fuzzy

import (
	"fmt"
	"math"
)

// Hedge modifies a membership degree before it is used by a rule.
type Hedge uint8

const (
	HedgeNone     Hedge = iota
	HedgeVery           // concentration: μ²
	HedgeSomewhat       // dilation: √μ
	HedgeNot            // complement: 1-μ
)

var hedgeNames = map[string]Hedge{
	"very":     HedgeVery,
	"somewhat": HedgeSomewhat,
	"not":      HedgeNot,
}

// ParseHedge maps a rule keyword to its hedge.
func ParseHedge(word string) (Hedge, bool) {
	h, ok := hedgeNames[word]
	return h, ok
}

func (h Hedge) Apply(mu float64) float64 {
	switch h {
	case HedgeVery:
		return mu * mu
	case HedgeSomewhat:
		return math.Sqrt(mu)
	case HedgeNot:
		return 1 - mu
	}
	return mu
}

func (h Hedge) String() string {
	for name, v := range hedgeNames {
		if v == h {
			return name
		}
	}
	if h == HedgeNone {
		return ""
	}
	return fmt.Sprintf("Hedge(%d)", uint8(h))
}

// applyHedges applies hedges right to left, so "very somewhat X" is very(somewhat(X)).
func applyHedges(hedges []Hedge, mu float64) float64 {
	for i := len(hedges) - 1; i >= 0; i-- {
		mu = hedges[i].Apply(mu)
	}
	return mu
}

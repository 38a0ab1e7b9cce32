package ai

import "math"

// TurnDistance converts a movement cost into turns. A trip that fits in
// the points left this turn is a fraction of one; anything longer is one
// plus the extra full turns needed.
func TurnDistance(cost, remaining, maxPerTurn float64) float64 {
	switch {
	case cost == 0:
		return 0
	case cost < remaining:
		return cost / remaining
	case maxPerTurn <= 0:
		return math.Inf(1)
	}
	return 1 + (cost-remaining)/maxPerTurn
}

package model

import "fmt"

// Tile is a map position. Z is the map level (0 surface, 1 underground).
type Tile struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// InvalidTile marks "no position", e.g. when no route exists.
var InvalidTile = Tile{X: -1, Y: -1, Z: -1}

// Valid reports whether t can be on a map. Negative coordinates never are.
func (t Tile) Valid() bool {
	return t.X >= 0 && t.Y >= 0 && t.Z >= 0
}

// Dist is the number of king moves between two tiles on the same level.
// Tiles on different levels are treated as one extra step apart.
func (t Tile) Dist(o Tile) int {
	dx, dy := abs(t.X-o.X), abs(t.Y-o.Y)
	d := max(dx, dy)
	if t.Z != o.Z {
		d++
	}
	return d
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.X, t.Y, t.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

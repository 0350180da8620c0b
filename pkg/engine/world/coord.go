package world

import "fmt"

// Coord is an integer grid coordinate.
type Coord struct {
	X int
	Y int
}

// NewCoord creates a coordinate
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// SqrDistance returns the squared Euclidean distance to other.
// All distance comparisons use this to stay in integer arithmetic.
func (c Coord) SqrDistance(other Coord) int {
	dx := other.X - c.X
	dy := other.Y - c.Y
	return dx*dx + dy*dy
}

// Add returns c offset by (dx, dy)
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbor returns the coordinate adjacent to c in the given direction
func (c Coord) Neighbor(dir Direction) Coord {
	dx, dy := dir.Delta()
	return c.Add(dx, dy)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// Cell is the binary classification of a single grid tile.
type Cell uint8

// Cell values
const (
	Passable Cell = iota
	Blocked
)

// String returns the string representation of a cell
func (c Cell) String() string {
	switch c {
	case Passable:
		return "Passable"
	case Blocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character symbol used in text dumps
func (c Cell) Symbol() rune {
	if c == Blocked {
		return '#'
	}
	return '.'
}

// IsValid returns true if the cell is one of the known values
func (c Cell) IsValid() bool {
	return c == Passable || c == Blocked
}

package world

import (
	"strings"
)

// Grid is a dense width × height map of cells indexed by (x, y).
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a new grid with the given dimensions, every cell Passable
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]Cell, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is inside the grid and not on the perimeter
func (g *Grid) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// Get returns the cell at (x, y). Positions outside the grid read as Blocked.
func (g *Grid) Get(x, y int) Cell {
	if !g.IsValidPosition(x, y) {
		return Blocked
	}
	return g.cells[g.index(x, y)]
}

// At returns the cell at c
func (g *Grid) At(c Coord) Cell {
	return g.Get(c.X, c.Y)
}

// Set sets the cell at (x, y). Returns false if out of bounds.
func (g *Grid) Set(x, y int, cell Cell) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = cell
	return true
}

// SetAt sets the cell at c. Returns false if out of bounds.
func (g *Grid) SetAt(c Coord, cell Cell) bool {
	return g.Set(c.X, c.Y, cell)
}

// SetAll sets every coordinate in coords to cell, ignoring out-of-range ones
func (g *Grid) SetAll(coords []Coord, cell Cell) {
	for _, c := range coords {
		g.SetAt(c, cell)
	}
}

// Fill sets every cell in the grid
func (g *Grid) Fill(cell Cell) {
	for i := range g.cells {
		g.cells[i] = cell
	}
}

// ForEachCell iterates over all cells, x outer and y inner, calling fn for each
func (g *Grid) ForEachCell(fn func(x, y int, cell Cell)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// Count returns how many cells hold the given value
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// CountBlockedNeighbors returns how many of the 8 surrounding cells are Blocked.
// Positions outside the grid count as Blocked.
func (g *Grid) CountBlockedNeighbors(x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.Get(nx, ny) == Blocked {
				count++
			}
		}
	}
	return count
}

// HasBlockedNeighbor reports whether any 4-connected neighbor of c is Blocked
func (g *Grid) HasBlockedNeighbor(c Coord) bool {
	for _, dir := range AllDirections() {
		if g.At(c.Neighbor(dir)) == Blocked {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// CopyFrom overwrites g with the contents of other. Both grids must have the same dimensions.
func (g *Grid) CopyFrom(other *Grid) {
	if g.width != other.width || g.height != other.height {
		panic("Grid dimensions do not match")
	}
	copy(g.cells, other.cells)
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Bordered returns a copy of the grid padded with size Blocked cells on every side.
// The padding only exists for downstream mesh generation.
func (g *Grid) Bordered(size int) *Grid {
	if size < 0 {
		size = 0
	}
	b := NewGrid(g.width+size*2, g.height+size*2)
	b.ForEachCell(func(x, y int, _ Cell) {
		if x >= size && x < g.width+size && y >= size && y < g.height+size {
			b.Set(x, y, g.Get(x-size, y-size))
		} else {
			b.Set(x, y, Blocked)
		}
	})
	return b
}

// Lines renders the grid as text, one string per row, highest y first
func (g *Grid) Lines() []string {
	lines := make([]string, 0, g.height)
	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.Get(x, y).Symbol())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String returns the text rendering of the grid
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}
	if len(g.cells) != g.width*g.height {
		return "Grid storage does not match its dimensions"
	}
	for _, c := range g.cells {
		if !c.IsValid() {
			return "Grid has an unknown cell value"
		}
	}
	return ""
}

// PerimeterBlocked reports whether every perimeter cell is Blocked
func (g *Grid) PerimeterBlocked() bool {
	for x := 0; x < g.width; x++ {
		if g.Get(x, 0) != Blocked || g.Get(x, g.height-1) != Blocked {
			return false
		}
	}
	for y := 0; y < g.height; y++ {
		if g.Get(0, y) != Blocked || g.Get(g.width-1, y) != Blocked {
			return false
		}
	}
	return true
}

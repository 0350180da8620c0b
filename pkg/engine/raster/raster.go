// Package raster draws lines and discs onto world grids.
package raster

import (
	"cavegen/pkg/engine/world"
)

// Line returns the cells approximating the segment from -> to.
// It takes one step per iteration along the axis with the larger delta and
// compensates on the other axis whenever the gradient accumulator reaches the
// long delta. The result starts at from, has length max(|dx|, |dy|) and does
// not include to.
func Line(from, to world.Coord) []world.Coord {
	x, y := from.X, from.Y
	dx := to.X - from.X
	dy := to.Y - from.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)

	longest := abs(dx)
	shortest := abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]world.Coord, 0, longest)
	gradientAccumulation := longest / 2
	for i := 0; i < longest; i++ {
		line = append(line, world.NewCoord(x, y))

		if inverted {
			y += step
		} else {
			x += step
		}

		gradientAccumulation += shortest
		if gradientAccumulation >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			gradientAccumulation -= longest
		}
	}

	return line
}

// Disc calls fn for every coordinate within radius r of center (dx² + dy² ≤ r²),
// x outer and y inner. No bounds are applied.
func Disc(center world.Coord, r int, fn func(c world.Coord)) {
	if r < 0 {
		return
	}
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy <= r*r {
				fn(center.Add(dx, dy))
			}
		}
	}
}

// CarveDisc sets every cell of the disc around center to Passable.
// Cells outside the grid interior are left alone so the perimeter stays Blocked.
// Returns the number of cells that changed.
func CarveDisc(grid *world.Grid, center world.Coord, r int) int {
	changed := 0
	Disc(center, r, func(c world.Coord) {
		if !grid.IsPlayablePosition(c.X, c.Y) {
			return
		}
		if grid.At(c) != world.Passable {
			grid.SetAt(c, world.Passable)
			changed++
		}
	})
	return changed
}

// CarvePath carves a disc of radius r around every point of the line from -> to.
// Returns the number of cells that changed.
func CarvePath(grid *world.Grid, from, to world.Coord, r int) int {
	changed := 0
	for _, c := range Line(from, to) {
		changed += CarveDisc(grid, c, r)
	}
	return changed
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

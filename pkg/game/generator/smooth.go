package generator

import (
	"cavegen/pkg/engine/world"
)

// smoothThreshold is the neighbour count at which a cell keeps its state
const smoothThreshold = 4

// Smooth applies one cellular-automaton pass. Every cell counts the Blocked
// cells among its 8 neighbours in the grid as it was before the pass (cells
// outside the grid count as Blocked): more than 4 makes it Blocked, fewer than
// 4 makes it Passable, exactly 4 leaves it unchanged.
func Smooth(grid *world.Grid) {
	snapshot := grid.Clone()

	snapshot.ForEachCell(func(x, y int, _ world.Cell) {
		walls := snapshot.CountBlockedNeighbors(x, y)

		if walls > smoothThreshold {
			grid.Set(x, y, world.Blocked)
		} else if walls < smoothThreshold {
			grid.Set(x, y, world.Passable)
		}
	})
}

// SmoothN applies n smoothing passes
func SmoothN(grid *world.Grid, n int) {
	for i := 0; i < n; i++ {
		Smooth(grid)
	}
}

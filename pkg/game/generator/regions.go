package generator

import (
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Region is a maximal 4-connected set of coordinates sharing one cell value,
// in the order the flood fill discovered them.
type Region []world.Coord

// Regions partitions every cell holding target into 4-connected regions.
// Regions are returned in scan order (x outer, y inner).
func Regions(grid *world.Grid, target world.Cell) []Region {
	var regions []Region
	visited := make([]bool, grid.Size())

	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if visited[visitIndex(grid, x, y)] || grid.Get(x, y) != target {
				continue
			}
			regions = append(regions, regionTiles(grid, world.NewCoord(x, y), target, visited))
		}
	}

	return regions
}

// regionTiles flood-fills breadth first from start, marking cells in visited
func regionTiles(grid *world.Grid, start world.Coord, target world.Cell, visited []bool) Region {
	var tiles Region
	q := queue.New[world.Coord]()
	q.Enqueue(start)
	visited[visitIndex(grid, start.X, start.Y)] = true

	for !q.Empty() {
		tile := q.Dequeue()
		tiles = append(tiles, tile)

		for _, dir := range world.AllDirections() {
			n := tile.Neighbor(dir)
			if !grid.IsValidPosition(n.X, n.Y) {
				continue
			}
			i := visitIndex(grid, n.X, n.Y)
			if visited[i] || grid.At(n) != target {
				continue
			}
			visited[i] = true
			q.Enqueue(n)
		}
	}

	return tiles
}

func visitIndex(grid *world.Grid, x, y int) int {
	return x*grid.Height() + y
}

// touchesPerimeter reports whether any tile of the region lies on the grid edge
func (r Region) touchesPerimeter(grid *world.Grid) bool {
	for _, c := range r {
		if grid.IsOnPerimeter(c.X, c.Y) {
			return true
		}
	}
	return false
}

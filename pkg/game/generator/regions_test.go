package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

func TestRegions_FourConnectedOnly(t *testing.T) {
	g := gridFromRows(t,
		".#.",
		"#.#",
		".#.",
	)
	// Diagonal neighbours do not join regions.
	passable := Regions(g, world.Passable)
	assert.Len(t, passable, 5)
	for _, r := range passable {
		assert.Len(t, r, 1)
	}

	blocked := Regions(g, world.Blocked)
	assert.Len(t, blocked, 4)
}

func TestRegions_ScanOrderAndBFS(t *testing.T) {
	g := gridFromRows(t,
		"#####",
		"#..##",
		"#.#.#",
		"#####",
	)
	regions := Regions(g, world.Passable)
	require.Len(t, regions, 2)

	// x outer, y inner: the region containing (1,1) is found first.
	assert.Equal(t, world.NewCoord(1, 1), regions[0][0])
	assert.Equal(t, Region{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}, regions[0])
	assert.Equal(t, Region{{X: 3, Y: 1}}, regions[1])
}

func TestRegions_EmptyWhenNoMatch(t *testing.T) {
	g := world.NewGrid(4, 4)
	assert.Empty(t, Regions(g, world.Blocked))
}

func TestRegions_Partition(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g := randomGrid(seed, 30, 22, 3)
		owner := make(map[world.Coord]int)
		regionID := 0

		for _, target := range []world.Cell{world.Passable, world.Blocked} {
			for _, region := range Regions(g, target) {
				members := make(map[world.Coord]bool, len(region))
				for _, c := range region {
					_, dup := owner[c]
					require.False(t, dup, "seed %d: %v in two regions", seed, c)
					owner[c] = regionID
					members[c] = true
					assert.Equal(t, target, g.At(c))
				}
				assert.True(t, isFourConnected(region, members), "seed %d: region %d not 4-connected", seed, regionID)
				regionID++
			}
		}

		assert.Len(t, owner, g.Size(), "seed %d: regions do not cover the grid", seed)

		// Maximality: equal-valued 4-neighbours always share a region.
		g.ForEachCell(func(x, y int, cell world.Cell) {
			c := world.NewCoord(x, y)
			for _, dir := range world.AllDirections() {
				n := c.Neighbor(dir)
				if g.IsValidPosition(n.X, n.Y) && g.At(n) == cell {
					assert.Equal(t, owner[c], owner[n], "seed %d: %v and %v split", seed, c, n)
				}
			}
		})
	}
}

func isFourConnected(region Region, members map[world.Coord]bool) bool {
	if len(region) == 0 {
		return true
	}
	seen := map[world.Coord]bool{region[0]: true}
	stack := []world.Coord{region[0]}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dir := range world.AllDirections() {
			n := c.Neighbor(dir)
			if members[n] && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == len(region)
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

// twoRoomRows has room A (4x5, 20 tiles), room B (6x5, 30 tiles) and a
// one-cell pocket at (13,3).
var twoRoomRows = []string{
	"################",
	"#....#......####",
	"#....#......####",
	"#....#......#.##",
	"#....#......####",
	"#....#......####",
	"################",
}

func TestRemoveSmallWalls(t *testing.T) {
	g := gridFromRows(t,
		"##########",
		"#........#",
		"#.##.....#",
		"#.##...#.#",
		"#........#",
		"##########",
	)
	removed := RemoveSmallWalls(g, 5)
	assert.Equal(t, 2, removed)
	assert.Equal(t, world.Passable, g.Get(2, 3))
	assert.Equal(t, world.Passable, g.Get(7, 2))
	assert.True(t, g.PerimeterBlocked(), "perimeter region must survive")
}

func TestRemoveSmallWalls_KeepsLargeRegions(t *testing.T) {
	g := gridFromRows(t,
		"#######",
		"#.....#",
		"#.###.#",
		"#.###.#",
		"#.....#",
		"#######",
	)
	assert.Equal(t, 0, RemoveSmallWalls(g, 6))
	assert.Equal(t, world.Blocked, g.Get(3, 2))
	assert.Equal(t, 1, RemoveSmallWalls(g, 7))
	assert.Equal(t, world.Passable, g.Get(3, 2))
}

func TestRemoveSmallWalls_ThresholdProperty(t *testing.T) {
	const threshold = 20
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(seed, 48, 32, 4)
		RemoveSmallWalls(g, threshold)
		for _, region := range Regions(g, world.Blocked) {
			if region.touchesPerimeter(g) {
				continue
			}
			assert.GreaterOrEqual(t, len(region), threshold, "seed %d", seed)
		}
	}
}

func TestDiscoverRooms(t *testing.T) {
	g := gridFromRows(t, twoRoomRows...)
	rooms, err := DiscoverRooms(g, 10)
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	assert.Equal(t, world.Blocked, g.Get(13, 3), "pocket below the threshold should be filled")

	a, b := rooms[0], rooms[1]
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 20, a.Size())
	assert.Equal(t, 30, b.Size())

	assert.False(t, a.IsMainRoom)
	assert.False(t, a.IsAccessibleFromMainRoom)
	assert.True(t, b.IsMainRoom)
	assert.True(t, b.IsAccessibleFromMainRoom)

	// Every tile of a 4x5 rectangle except the 2x3 core touches a wall.
	assert.Len(t, a.EdgeTiles, 20-6)
	for _, tile := range a.EdgeTiles {
		assert.True(t, g.HasBlockedNeighbor(tile))
	}
}

func TestDiscoverRooms_MainRoomTieGoesToFirst(t *testing.T) {
	g := gridFromRows(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	)
	rooms, err := DiscoverRooms(g, 1)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.True(t, rooms[0].IsMainRoom)
	assert.False(t, rooms[1].IsMainRoom)
}

func TestDiscoverRooms_ThresholdProperty(t *testing.T) {
	const threshold = 30
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(seed, 48, 32, 4)
		rooms, err := DiscoverRooms(g, threshold)
		if err != nil {
			assert.ErrorIs(t, err, ErrNoSurvivingRooms)
			continue
		}
		mains := 0
		for _, r := range rooms {
			assert.GreaterOrEqual(t, r.Size(), threshold)
			if r.IsMainRoom {
				mains++
			}
		}
		assert.Equal(t, 1, mains, "seed %d", seed)
		// Nothing passable is left outside the rooms.
		total := 0
		for _, r := range rooms {
			total += r.Size()
		}
		assert.Equal(t, g.Count(world.Passable), total, "seed %d", seed)
	}
}

func TestDiscoverRooms_NoSurvivors(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.Fill(world.Blocked)
	rooms, err := DiscoverRooms(g, 1)
	assert.Nil(t, rooms)
	assert.ErrorIs(t, err, ErrNoSurvivingRooms)

	g = gridFromRows(t, twoRoomRows...)
	_, err = DiscoverRooms(g, 31)
	assert.ErrorIs(t, err, ErrNoSurvivingRooms)
	assert.Equal(t, g.Size(), g.Count(world.Blocked), "all regions should have been filled")
}

package generator

import (
	"fmt"

	"cavegen/pkg/engine/world"
)

// RemoveSmallWalls opens every Blocked region with fewer than threshold cells.
// Regions touching the grid edge are kept so the perimeter stays Blocked.
// Returns the number of regions removed.
func RemoveSmallWalls(grid *world.Grid, threshold int) int {
	removed := 0
	for _, region := range Regions(grid, world.Blocked) {
		if len(region) >= threshold || region.touchesPerimeter(grid) {
			continue
		}
		grid.SetAll(region, world.Passable)
		removed++
	}
	return removed
}

// DiscoverRooms fills in every Passable region with fewer than threshold cells
// and promotes the rest to rooms. The largest room (first found on ties) is the
// main room. Returns ErrNoSurvivingRooms when nothing is left.
func DiscoverRooms(grid *world.Grid, threshold int) ([]*Room, error) {
	var survivors []Region
	for _, region := range Regions(grid, world.Passable) {
		if len(region) < threshold {
			grid.SetAll(region, world.Blocked)
			continue
		}
		survivors = append(survivors, region)
	}

	if len(survivors) == 0 {
		return nil, fmt.Errorf("%w: room threshold %d on a %dx%d grid", ErrNoSurvivingRooms, threshold, grid.Width(), grid.Height())
	}

	// Edge tiles are computed once every small region has been filled in.
	rooms := make([]*Room, 0, len(survivors))
	mainIndex := 0
	for i, region := range survivors {
		rooms = append(rooms, NewRoom(i, region, grid))
		if len(region) > len(survivors[mainIndex]) {
			mainIndex = i
		}
	}

	rooms[mainIndex].IsMainRoom = true
	rooms[mainIndex].IsAccessibleFromMainRoom = true

	return rooms, nil
}

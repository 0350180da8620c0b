package generator

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Room is a passable region that survived size filtering.
// Rooms refer to each other by ID, their index in the generator's room slice.
type Room struct {
	ID    int
	Tiles []world.Coord

	// EdgeTiles are the members with a Blocked 4-neighbour; passages start and end here.
	EdgeTiles []world.Coord

	IsMainRoom               bool
	IsAccessibleFromMainRoom bool

	connected mapset.Set[int]
}

// NewRoom creates a room from region tiles, computing its edge tiles against grid
func NewRoom(id int, tiles []world.Coord, grid *world.Grid) *Room {
	r := &Room{
		ID:        id,
		Tiles:     tiles,
		connected: mapset.New[int](),
	}

	for _, tile := range tiles {
		if grid.HasBlockedNeighbor(tile) {
			r.EdgeTiles = append(r.EdgeTiles, tile)
		}
	}

	return r
}

// Size returns the number of member tiles
func (r *Room) Size() int {
	return len(r.Tiles)
}

// IsConnected reports whether a passage directly links this room and other
func (r *Room) IsConnected(other int) bool {
	return r.connected.Has(other)
}

// ConnectionCount returns how many rooms are directly linked to this one
func (r *Room) ConnectionCount() int {
	return r.connected.Size()
}

// ConnectedRooms returns the IDs of directly linked rooms in ascending order
func (r *Room) ConnectedRooms() []int {
	ids := make([]int, 0, r.connected.Size())
	r.connected.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}

// connectRooms links a and b in both directions. If either side can reach the
// main room, everything now linked to the other side can too.
func connectRooms(rooms []*Room, a, b int) {
	if rooms[a].IsAccessibleFromMainRoom {
		setAccessibleFromMainRoom(rooms, b)
	} else if rooms[b].IsAccessibleFromMainRoom {
		setAccessibleFromMainRoom(rooms, a)
	}
	rooms[a].connected.Put(b)
	rooms[b].connected.Put(a)
}

// setAccessibleFromMainRoom marks start and every room transitively linked to it
func setAccessibleFromMainRoom(rooms []*Room, start int) {
	if rooms[start].IsAccessibleFromMainRoom {
		return
	}

	q := queue.New[int]()
	rooms[start].IsAccessibleFromMainRoom = true
	q.Enqueue(start)

	for !q.Empty() {
		id := q.Dequeue()
		rooms[id].connected.Each(func(next int) {
			if !rooms[next].IsAccessibleFromMainRoom {
				rooms[next].IsAccessibleFromMainRoom = true
				q.Enqueue(next)
			}
		})
	}
}

package generator

import (
	"fmt"

	"cavegen/pkg/engine/raster"
	"cavegen/pkg/engine/world"
)

// Passage records one carved connection between two rooms
type Passage struct {
	RoomA int
	RoomB int
	From  world.Coord // Edge tile of RoomA
	To    world.Coord // Edge tile of RoomB
}

// candidate is the closest edge-tile pair found by a search
type candidate struct {
	roomA, roomB int
	tileA, tileB world.Coord
	distance     int
	found        bool
}

// consider keeps the pair if it is the first one seen or strictly closer
func (c *candidate) consider(a, b *Room) {
	for _, tileA := range a.EdgeTiles {
		for _, tileB := range b.EdgeTiles {
			d := tileA.SqrDistance(tileB)
			if !c.found || d < c.distance {
				*c = candidate{
					roomA:    a.ID,
					roomB:    b.ID,
					tileA:    tileA,
					tileB:    tileB,
					distance: d,
					found:    true,
				}
			}
		}
	}
}

// Connector links rooms by carving passages into a grid
type Connector struct {
	grid         *world.Grid
	rooms        []*Room
	passageWidth int
	passages     []Passage
}

// NewConnector creates a connector over rooms discovered on grid
func NewConnector(grid *world.Grid, rooms []*Room, passageWidth int) *Connector {
	return &Connector{
		grid:         grid,
		rooms:        rooms,
		passageWidth: passageWidth,
	}
}

// ConnectRooms carves passages until every room is reachable from the main room
func ConnectRooms(grid *world.Grid, rooms []*Room, passageWidth int) ([]Passage, error) {
	c := NewConnector(grid, rooms, passageWidth)
	c.ConnectNearest()
	if err := c.ConnectToMainRoom(); err != nil {
		return c.Passages(), err
	}
	return c.Passages(), nil
}

// Passages returns the passages carved so far, in carving order
func (c *Connector) Passages() []Passage {
	return c.passages
}

// ConnectNearest gives every room that has no connection yet a passage to its
// closest unconnected room. Rooms are visited in order, so a room linked by an
// earlier room in this pass is skipped. This does not guarantee the rooms end
// up reachable from the main room.
func (c *Connector) ConnectNearest() {
	for _, roomA := range c.rooms {
		if roomA.ConnectionCount() > 0 {
			continue
		}

		var best candidate
		for _, roomB := range c.rooms {
			if roomA.ID == roomB.ID || roomA.IsConnected(roomB.ID) {
				continue
			}
			best.consider(roomA, roomB)
		}

		if best.found {
			c.createPassage(best)
		}
	}
}

// ConnectToMainRoom repeatedly carves the single closest passage between a
// room that cannot reach the main room and one that can, until none are left.
func (c *Connector) ConnectToMainRoom() error {
	for {
		var inaccessible, accessible []*Room
		for _, room := range c.rooms {
			if room.IsAccessibleFromMainRoom {
				accessible = append(accessible, room)
			} else {
				inaccessible = append(inaccessible, room)
			}
		}

		if len(inaccessible) == 0 {
			return nil
		}

		var best candidate
		for _, roomA := range inaccessible {
			for _, roomB := range accessible {
				if roomA.IsConnected(roomB.ID) {
					continue
				}
				best.consider(roomA, roomB)
			}
		}

		if !best.found {
			return fmt.Errorf("%w: %d of %d rooms cannot be linked", ErrUnreachableRoom, len(inaccessible), len(c.rooms))
		}

		c.createPassage(best)
	}
}

// createPassage links the two rooms and carves a disc along the line between the tiles
func (c *Connector) createPassage(best candidate) {
	connectRooms(c.rooms, best.roomA, best.roomB)
	raster.CarvePath(c.grid, best.tileA, best.tileB, c.passageWidth)

	c.passages = append(c.passages, Passage{
		RoomA: best.roomA,
		RoomB: best.roomB,
		From:  best.tileA,
		To:    best.tileB,
	})
}

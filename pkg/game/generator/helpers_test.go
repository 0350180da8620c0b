package generator

import (
	"math/rand"
	"strings"
	"testing"

	"cavegen/pkg/engine/world"
)

// gridFromRows builds a grid from text rows, '#' Blocked and anything else
// Passable. The first row is the highest y so the text reads like Grid.Lines.
func gridFromRows(t *testing.T, rows ...string) *world.Grid {
	t.Helper()
	g := world.NewGrid(len(rows[0]), len(rows))
	for i, row := range rows {
		if len(row) != g.Width() {
			t.Fatalf("row %d has width %d, want %d", i, len(row), g.Width())
		}
		y := len(rows) - 1 - i
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, y, world.Blocked)
			}
		}
	}
	return g
}

// randomGrid returns a filled and smoothed grid for property tests
func randomGrid(seed int64, width, height, smooth int) *world.Grid {
	g := world.NewGrid(width, height)
	RandomFill(g, rand.New(rand.NewSource(seed)), 45)
	SmoothN(g, smooth)
	return g
}

// reachableRooms walks ConnectedRooms from start and returns the visited IDs
func reachableRooms(rooms []*Room, start int) map[int]bool {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range rooms[id].ConnectedRooms() {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return seen
}

func gridText(g *world.Grid) string {
	return strings.Join(g.Lines(), "\n")
}

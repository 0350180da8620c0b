package renderer

import (
	"errors"
	"reflect"
	"testing"

	"cavegen/pkg/engine/world"
)

func TestWallRects(t *testing.T) {
	// y=1: # . #
	// y=0: # # #
	g := world.NewGrid(3, 2)
	g.Fill(world.Blocked)
	g.Set(1, 1, world.Passable)

	got, err := WallRects(g, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 20, Y: 0, W: 10, H: 10},
		{X: 0, Y: 10, W: 30, H: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WallRects = %+v, want %+v", got, want)
	}
}

func TestWallRects_Errors(t *testing.T) {
	if _, err := WallRects(nil, 1); !errors.Is(err, ErrNilGrid) {
		t.Errorf("nil grid: %v", err)
	}
	if _, err := WallRects(world.NewGrid(1, 1), -1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("negative scale: %v", err)
	}
}

func TestPixelSize(t *testing.T) {
	w, h := PixelSize(world.NewGrid(66, 38), 8)
	if w != 528 || h != 304 {
		t.Errorf("PixelSize = %dx%d", w, h)
	}
}

package renderer

import (
	"fmt"
	"math"

	"cavegen/pkg/engine/world"
)

// Rect is an axis-aligned rectangle in screen pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// PixelSize returns the screen size of grid drawn at scale pixels per cell
func PixelSize(grid *world.Grid, scale float64) (width, height int) {
	return int(math.Ceil(float64(grid.Width()) * scale)), int(math.Ceil(float64(grid.Height()) * scale))
}

// WallRects lays out the Blocked cells of grid as screen rectangles, merging
// horizontal runs. Grid y grows upwards, screen y grows downwards.
func WallRects(grid *world.Grid, scale float64) ([]Rect, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	s := float32(scale)
	var rects []Rect
	for y := grid.Height() - 1; y >= 0; y-- {
		row := float32(grid.Height()-1-y) * s
		start := -1
		for x := 0; x <= grid.Width(); x++ {
			blocked := x < grid.Width() && grid.Get(x, y) == world.Blocked
			switch {
			case blocked && start < 0:
				start = x
			case !blocked && start >= 0:
				rects = append(rects, Rect{X: float32(start) * s, Y: row, W: float32(x-start) * s, H: s})
				start = -1
			}
		}
	}
	return rects, nil
}

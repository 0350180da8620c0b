package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFloor      = color.RGBA{15, 15, 26, 255}    // Darker for open cave
	colorWall       = color.RGBA{100, 100, 130, 255} // Gray-blue rock
	colorDenied     = color.RGBA{255, 100, 100, 255} // Bright red
)

const (
	defaultTileSize = 8
	// Height of the status strip under the map, in pixels.
	statusHeight = 64
	minWidth     = 320
)

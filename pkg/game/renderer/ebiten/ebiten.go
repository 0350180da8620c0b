// Package ebiten draws cave maps in a window and regenerates them on click.
package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/engine/world"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/renderer"
)

// EbitenRenderer implements renderer.MeshGenerator and ebiten.Game
type EbitenRenderer struct {
	gen      generator.MapGenerator
	tileSize float64
	logger   *log.Logger

	current *generator.Map
	mesh    *ebiten.Image
	message string

	width, height int
}

var (
	_ renderer.MeshGenerator = (*EbitenRenderer)(nil)
	_ ebiten.Game            = (*EbitenRenderer)(nil)
)

// New creates a windowed renderer driving gen. A non-positive tileSize uses
// the default.
func New(gen generator.MapGenerator, tileSize float64, logger *log.Logger) *EbitenRenderer {
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	if logger == nil {
		logger = log.Default()
	}
	return &EbitenRenderer{gen: gen, tileSize: tileSize, logger: logger}
}

// GenerateMesh draws grid into a new image, scale pixels per cell
func (e *EbitenRenderer) GenerateMesh(grid *world.Grid, scale float64) (renderer.Mesh, error) {
	rects, err := renderer.WallRects(grid, scale)
	if err != nil {
		return nil, err
	}
	w, h := renderer.PixelSize(grid, scale)
	img := ebiten.NewImage(w, h)
	img.Fill(colorFloor)
	for _, r := range rects {
		vector.DrawFilledRect(img, r.X, r.Y, r.W, r.H, colorWall, false)
	}
	return img, nil
}

// Regenerate builds a fresh map. On failure the previous map stays on screen
// and the error is shown in the status strip.
func (e *EbitenRenderer) Regenerate() {
	m, err := e.gen.Generate()
	if err != nil {
		e.logger.Printf("generation failed: %v", err)
		e.message = renderer.ErrorMessage(err)
		return
	}
	mesh, err := e.GenerateMesh(m.Bordered(), e.tileSize)
	if err != nil {
		e.logger.Printf("mesh failed: %v", err)
		e.message = renderer.ErrorMessage(err)
		return
	}
	if e.mesh != nil {
		e.mesh.Deallocate()
	}
	e.current = m
	e.mesh = mesh.(*ebiten.Image)
	e.message = ""
	b := e.mesh.Bounds()
	e.width = max(b.Dx(), minWidth)
	e.height = b.Dy() + statusHeight
}

// Update handles input once per tick
func (e *EbitenRenderer) Update() error {
	switch pollAction() {
	case input.ActionRegenerate:
		e.Regenerate()
	case input.ActionQuit:
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current map and its status lines
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.mesh != nil {
		screen.DrawImage(e.mesh, nil)
	}

	y := e.height - statusHeight + 4
	if e.message != "" {
		vector.DrawFilledRect(screen, 0, float32(y-2), float32(e.width), 16, colorDenied, false)
		ebitenutil.DebugPrintAt(screen, e.message, 4, y)
		return
	}
	for _, line := range renderer.StatusLines(e.current) {
		ebitenutil.DebugPrintAt(screen, line, 4, y)
		y += 14
	}
}

// Layout fixes the logical screen to the map plus the status strip
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if e.width == 0 || e.height == 0 {
		return outsideWidth, outsideHeight
	}
	return e.width, e.height
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	e.Regenerate()
	if e.current == nil {
		// Nothing to show yet; size the window for the status strip alone.
		e.width, e.height = minWidth, statusHeight
	}
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(renderer.Title() + " - " + e.gen.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}

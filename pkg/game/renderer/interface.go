package renderer

import (
	"cavegen/pkg/engine/world"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleTitle
	StyleStatus
	StyleError
)

// Mesh is whatever a backend builds from a grid: coloured text for the
// terminal, an image for a window. Callers hand it back to the backend that
// produced it and never look inside.
type Mesh any

// MeshGenerator turns a finished, bordered grid into a drawable mesh.
// Scale is backend-specific: characters per cell for text, pixels per cell
// for images.
type MeshGenerator interface {
	GenerateMesh(grid *world.Grid, scale float64) (Mesh, error)
}

// Current holds the active mesh generator
var Current MeshGenerator

// SetRenderer sets the active mesh generator
func SetRenderer(r MeshGenerator) {
	Current = r
}

// GenerateMesh builds a mesh with the current renderer
func GenerateMesh(grid *world.Grid, scale float64) (Mesh, error) {
	if Current == nil {
		return nil, ErrNoRenderer
	}
	return Current.GenerateMesh(grid, scale)
}

package generator

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"cavegen/pkg/engine/world"
)

// Perlin parameters for FillPerlin
const (
	perlinAlpha     = 2.0
	perlinBeta      = 2.0
	perlinOctaves   = 3
	perlinFrequency = 0.11
)

// RandomFill blocks every perimeter cell and blocks each interior cell with a
// percent/100 chance. The random source is consumed x outer, y inner, one draw
// per interior cell, so a seed always yields the same grid.
func RandomFill(grid *world.Grid, rng *rand.Rand, percent int) {
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if grid.IsOnPerimeter(x, y) {
				grid.Set(x, y, world.Blocked)
				continue
			}
			if rng.Intn(100) < percent {
				grid.Set(x, y, world.Blocked)
			} else {
				grid.Set(x, y, world.Passable)
			}
		}
	}
}

// PerlinFill is the coherent-noise variant of RandomFill. Interior cells whose
// normalised noise value falls below percent are Blocked.
func PerlinFill(grid *world.Grid, seed int64, percent int) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if grid.IsOnPerimeter(x, y) {
				grid.Set(x, y, world.Blocked)
				continue
			}
			n := p.Noise2D(float64(x)*perlinFrequency, float64(y)*perlinFrequency)
			if noisePercent(n) < float64(percent) {
				grid.Set(x, y, world.Blocked)
			} else {
				grid.Set(x, y, world.Passable)
			}
		}
	}
}

// noisePercent maps a noise sample in [-1,1] onto [0,100)
func noisePercent(n float64) float64 {
	v := (n + 1) / 2 * 100
	if v < 0 {
		return 0
	}
	if v >= 100 {
		return 99.999
	}
	return v
}

package generator

import (
	"fmt"
)

// FillMode selects how the initial noise is produced
type FillMode string

// Fill modes
const (
	FillRandom FillMode = "random"
	FillPerlin FillMode = "perlin"
)

// Limits for the tunable options
const (
	MaxFillPercent = 100
	MaxSmoothLevel = 20
)

// Config holds every option of one generation run.
type Config struct {
	Width  int
	Height int

	Seed          string // Used as-is when numeric, hashed otherwise
	UseRandomSeed bool   // Derive the seed from the clock on every run

	RandomFillPercent int // Chance in [0,100] that an interior cell starts Blocked
	SmoothLevel       int // Number of smoothing passes, [0,20]

	WallThresholdSize int // Blocked regions smaller than this are opened up
	RoomThresholdSize int // Passable regions smaller than this are filled in

	PassageWidth int // Carving radius of passages between rooms
	BorderSize   int // Blocked frame added by Map.Bordered only

	FillMode FillMode
}

// DefaultConfig returns the stock generation options
func DefaultConfig() Config {
	return Config{
		Width:             64,
		Height:            36,
		UseRandomSeed:     true,
		RandomFillPercent: 45,
		SmoothLevel:       4,
		WallThresholdSize: 50,
		RoomThresholdSize: 50,
		PassageWidth:      4,
		BorderSize:        1,
		FillMode:          FillRandom,
	}
}

// Validate checks the configuration and returns an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.RandomFillPercent < 0 || c.RandomFillPercent > MaxFillPercent:
		return fmt.Errorf("%w: fill percent %d not in [0,%d]", ErrInvalidConfig, c.RandomFillPercent, MaxFillPercent)
	case c.SmoothLevel < 0 || c.SmoothLevel > MaxSmoothLevel:
		return fmt.Errorf("%w: smooth level %d not in [0,%d]", ErrInvalidConfig, c.SmoothLevel, MaxSmoothLevel)
	case c.WallThresholdSize < 0:
		return fmt.Errorf("%w: wall threshold %d is negative", ErrInvalidConfig, c.WallThresholdSize)
	case c.RoomThresholdSize < 0:
		return fmt.Errorf("%w: room threshold %d is negative", ErrInvalidConfig, c.RoomThresholdSize)
	case c.PassageWidth < 0:
		return fmt.Errorf("%w: passage width %d is negative", ErrInvalidConfig, c.PassageWidth)
	case c.BorderSize < 0:
		return fmt.Errorf("%w: border size %d is negative", ErrInvalidConfig, c.BorderSize)
	}

	switch c.FillMode {
	case "", FillRandom, FillPerlin:
	default:
		return fmt.Errorf("%w: unknown fill mode %q", ErrInvalidConfig, c.FillMode)
	}

	return nil
}

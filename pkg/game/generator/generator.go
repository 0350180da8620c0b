// Package generator builds cave maps: noise fill, smoothing, region filtering
// and room connection.
package generator

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"cavegen/pkg/engine/world"
)

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	Generate() (*Map, error)
	Name() string
}

// Map is the result of one generation run. Each run owns its map exclusively.
type Map struct {
	RunID     uuid.UUID
	Seed      string
	SeedValue int64
	Config    Config

	Grid     *world.Grid
	Rooms    []*Room
	Passages []Passage
}

// MainRoom returns the largest room
func (m *Map) MainRoom() *Room {
	for _, r := range m.Rooms {
		if r.IsMainRoom {
			return r
		}
	}
	return nil
}

// Room returns the room with the given ID, or nil
func (m *Map) Room(id int) *Room {
	if id < 0 || id >= len(m.Rooms) {
		return nil
	}
	return m.Rooms[id]
}

// Bordered returns the grid padded with Config.BorderSize Blocked cells, ready for a renderer
func (m *Map) Bordered() *world.Grid {
	return m.Grid.Bordered(m.Config.BorderSize)
}

// AllAccessible reports whether every room is flagged reachable from the main room
func (m *Map) AllAccessible() bool {
	for _, r := range m.Rooms {
		if !r.IsAccessibleFromMainRoom {
			return false
		}
	}
	return true
}

// Option configures a CaveGenerator
type Option func(*CaveGenerator)

// WithLogger sets the logger used for phase statistics. nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(g *CaveGenerator) {
		g.logger = l
	}
}

// WithClock sets the time source used for random seeds
func WithClock(now func() time.Time) Option {
	return func(g *CaveGenerator) {
		g.now = now
	}
}

// CaveGenerator generates cave maps using cellular automata
type CaveGenerator struct {
	config Config
	logger *log.Logger
	now    func() time.Time
}

// New creates a generator after validating cfg
func New(cfg Config, opts ...Option) (*CaveGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.FillMode == "" {
		cfg.FillMode = FillRandom
	}

	g := &CaveGenerator{
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the name of this generator
func (g *CaveGenerator) Name() string {
	return "Cellular Cave"
}

// Config returns the generator's configuration
func (g *CaveGenerator) Config() Config {
	return g.config
}

// Generate runs the whole pipeline on a fresh grid. It may be called again at
// any time; maps returned by earlier calls are not touched.
func (g *CaveGenerator) Generate() (*Map, error) {
	cfg := g.config
	seed, seedValue := ResolveSeed(cfg.Seed, cfg.UseRandomSeed, g.now())

	m := &Map{
		RunID:     uuid.New(),
		Seed:      seed,
		SeedValue: seedValue,
		Config:    cfg,
		Grid:      world.NewGrid(cfg.Width, cfg.Height),
	}

	switch cfg.FillMode {
	case FillPerlin:
		PerlinFill(m.Grid, seedValue, cfg.RandomFillPercent)
	default:
		RandomFill(m.Grid, rand.New(rand.NewSource(seedValue)), cfg.RandomFillPercent)
	}
	g.logf("run %s: filled %dx%d grid with seed %q (%d%% %s)", m.RunID, cfg.Width, cfg.Height, seed, cfg.RandomFillPercent, cfg.FillMode)

	SmoothN(m.Grid, cfg.SmoothLevel)
	g.logf("run %s: %d smoothing passes, %d cells blocked", m.RunID, cfg.SmoothLevel, m.Grid.Count(world.Blocked))

	removed := RemoveSmallWalls(m.Grid, cfg.WallThresholdSize)
	g.logf("run %s: removed %d wall regions below %d cells", m.RunID, removed, cfg.WallThresholdSize)

	rooms, err := DiscoverRooms(m.Grid, cfg.RoomThresholdSize)
	if err != nil {
		return nil, fmt.Errorf("run %s (seed %q): %w", m.RunID, seed, err)
	}
	m.Rooms = rooms
	g.logf("run %s: %d rooms survived, main room has %d tiles", m.RunID, len(rooms), m.MainRoom().Size())

	passages, err := ConnectRooms(m.Grid, m.Rooms, cfg.PassageWidth)
	m.Passages = passages
	if err != nil {
		return nil, fmt.Errorf("run %s (seed %q): %w", m.RunID, seed, err)
	}
	g.logf("run %s: carved %d passages", m.RunID, len(passages))

	return m, nil
}

func (g *CaveGenerator) logf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Printf(format, args...)
	}
}

// DefaultGenerator creates a generator with DefaultConfig
func DefaultGenerator() *CaveGenerator {
	g, err := New(DefaultConfig())
	if err != nil {
		panic("default generator config is invalid: " + err.Error())
	}
	return g
}

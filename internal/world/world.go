package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/barrenland/internal/gamedata"
	"github.com/samdwyer/barrenland/internal/telemetry"
)

const (
	// DefaultSize is the side length of the grid.
	DefaultSize = 10
	// DefaultRadius is the generation radius around the player.
	DefaultRadius = 4
)

var (
	ErrOutOfBounds  = errors.New("coordinate outside the world")
	ErrNotGenerated = errors.New("cell has not been generated")
	ErrOccupied     = errors.New("cell already has a building")
)

// World is a size x size grid populated lazily around the player.
//
// Cells are only ever added: once generated, a cell's terrain is never
// replaced or removed, and every building key is also a grid key.
type World struct {
	Size      int
	grid      map[Coord]Terrain
	buildings map[Coord]*Building

	rng      *rand.Rand
	registry *gamedata.TileRegistry
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used for tile selection.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) { w.rng = rng }
}

// WithSeed seeds tile selection. A seed of 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(w *World) {
		if seed != 0 {
			w.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRegistry replaces the embedded tile table.
func WithRegistry(r *gamedata.TileRegistry) Option {
	return func(w *World) { w.registry = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithMetrics records generation counters on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(w *World) { w.metrics = m }
}

// New creates an empty world. Nothing is generated until GenerateArea is called.
func New(size int, opts ...Option) *World {
	w := &World{
		Size:      size,
		grid:      make(map[Coord]Terrain),
		buildings: make(map[Coord]*Building),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if w.registry == nil {
		w.registry = gamedata.Embedded()
	}
	if w.logger == nil {
		w.logger = telemetry.DiscardLogger()
	}
	return w
}

// GenerateArea fills every missing in-bounds cell of the square of the given
// radius around center. Existing cells are left untouched and out-of-range
// cells are skipped. It returns the number of cells created.
func (w *World) GenerateArea(ctx context.Context, center Coord, radius int) int {
	_, span := telemetry.Tracer("world").Start(ctx, "world.generate_area")
	defer span.End()

	created, buildings := 0, 0
	x0, x1 := clampSpan(center.X, radius, w.Size)
	y0, y1 := clampSpan(center.Y, radius, w.Size)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			c := Coord{X: x, Y: y}
			if _, ok := w.grid[c]; ok {
				continue
			}

			terrain, building, id := w.randomTile()
			w.grid[c] = terrain
			if building != nil {
				w.buildings[c] = building
				buildings++
			}
			created++
			if w.metrics != nil {
				w.metrics.TilesGenerated.WithLabelValues(id).Inc()
			}
		}
	}

	span.SetAttributes(
		attribute.Int("world.center_x", center.X),
		attribute.Int("world.center_y", center.Y),
		attribute.Int("world.radius", radius),
		attribute.Int("world.cells_created", created),
		attribute.Int("world.buildings_created", buildings),
		attribute.Int("world.cells_total", len(w.grid)),
	)
	if created > 0 {
		w.logger.Debug("generated area",
			"center", center.String(), "radius", radius,
			"created", created, "buildings", buildings, "total", len(w.grid))
	}
	return created
}

// clampSpan returns the part of [c-r, c+r] inside [0, size). The result is
// empty (lo > hi) when they don't overlap. It never computes c+r or c-r in a
// way that can overflow.
func clampSpan(c, r, size int) (lo, hi int) {
	if r < 0 || size <= 0 {
		return 0, -1
	}
	lo = 0
	if c > r {
		lo = c - r
	}
	hi = size - 1
	if c >= 0 {
		if c < size-1 && r < size-1-c {
			hi = c + r
		}
	} else if c+r < size-1 {
		hi = c + r
	}
	return lo, hi
}

// randomTile picks a tile by spawn weight. A building comes with the grass
// land it stands on.
func (w *World) randomTile() (Terrain, *Building, string) {
	def := w.registry.SpawnRandom(w.rng)
	if def == nil {
		return Terrain{Kind: TerrainBarren}, nil, TerrainBarren.ID()
	}

	switch def.Category {
	case gamedata.CategoryBuilding:
		return Terrain{Kind: TerrainGrassLand}, NewBuilding(ParseBuildingKind(def.ID).String()), def.ID
	default:
		kind, ok := ParseTerrainID(def.ID)
		if !ok {
			w.logger.Warn("unknown terrain in tile data", "id", def.ID)
		}
		return Terrain{Kind: kind}, nil, kind.ID()
	}
}

// Terrain returns the terrain at c, if generated.
func (w *World) Terrain(c Coord) (Terrain, bool) {
	t, ok := w.grid[c]
	return t, ok
}

// Building returns the building at c, if any.
func (w *World) Building(c Coord) (*Building, bool) {
	b, ok := w.buildings[c]
	return b, ok
}

// Buildings returns a copy of the building index.
func (w *World) Buildings() map[Coord]*Building {
	out := make(map[Coord]*Building, len(w.buildings))
	for c, b := range w.buildings {
		out[c] = b
	}
	return out
}

// Contains reports whether c has been generated.
func (w *World) Contains(c Coord) bool {
	_, ok := w.grid[c]
	return ok
}

// Len returns the number of generated cells.
func (w *World) Len() int {
	return len(w.grid)
}

// Center returns the middle of the grid, where players start.
func (w *World) Center() Coord {
	return Coord{X: w.Size / 2, Y: w.Size / 2}
}

// AddBuilding places a new building of the given type on a generated cell.
func (w *World) AddBuilding(c Coord, buildingType string) (*Building, error) {
	if !c.In(w.Size) {
		return nil, fmt.Errorf("add building at %s: %w", c, ErrOutOfBounds)
	}
	if !w.Contains(c) {
		return nil, fmt.Errorf("add building at %s: %w", c, ErrNotGenerated)
	}
	if _, ok := w.buildings[c]; ok {
		return nil, fmt.Errorf("add building at %s: %w", c, ErrOccupied)
	}

	b := NewBuilding(buildingType)
	w.buildings[c] = b
	w.logger.Info("building added", "at", c.String(), "type", b.Type)
	return b, nil
}

// TileID returns the tile data ID shown at c: the building's if there is one,
// otherwise the terrain's.
func (w *World) TileID(c Coord) (string, bool) {
	if b, ok := w.buildings[c]; ok {
		return b.Kind.ID(), true
	}
	if t, ok := w.grid[c]; ok {
		return t.Kind.ID(), true
	}
	return "", false
}

// Registry returns the tile table the world generates from.
func (w *World) Registry() *gamedata.TileRegistry {
	return w.registry
}

// KnownCommand reports whether any terrain or building kind offers name.
func KnownCommand(name string) bool {
	for _, k := range AllTerrainKinds {
		if _, ok := terrainCommands[k][name]; ok {
			return true
		}
	}
	if name == "use" {
		return true
	}
	for _, k := range AllBuildingKinds {
		if _, ok := buildingCommands[k][name]; ok {
			return true
		}
	}
	return false
}

package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// TileRegistry holds loaded tile definitions and picks tiles for generation.
type TileRegistry struct {
	tiles       []TileDef
	byID        map[string]*TileDef
	totalWeight int
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	r := &TileRegistry{
		tiles: tiles,
		byID:  make(map[string]*TileDef, len(tiles)),
	}
	for i := range tiles {
		r.byID[tiles[i].ID] = &tiles[i]
		if tiles[i].SpawnWeight > 0 {
			r.totalWeight += tiles[i].SpawnWeight
		}
	}
	return r
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	for _, t := range tiles {
		if t.Category != CategoryTerrain && t.Category != CategoryBuilding {
			return nil, fmt.Errorf("tile %q has unknown category %q", t.ID, t.Category)
		}
	}
	return NewTileRegistry(tiles), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
// The tile table is embedded, so a failure here is a build defect.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Embedded returns the registry built from the embedded tiles.json, loaded
// once and shared. It is read-only after loading.
var Embedded = sync.OnceValue(MustLoadTileRegistry)

// SpawnRandom selects a random tile definition using weighted probability.
// Tiles with a spawnWeight of zero are never selected.
func (r *TileRegistry) SpawnRandom(rng *rand.Rand) *TileDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.tiles {
		if r.tiles[i].SpawnWeight <= 0 {
			continue
		}
		cumulative += r.tiles[i].SpawnWeight
		if roll < cumulative {
			return &r.tiles[i]
		}
	}

	return nil
}

// GetByID returns the tile definition with the given ID, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.byID[id]
}

// TotalWeight returns the sum of all positive spawn weights.
func (r *TileRegistry) TotalWeight() int {
	return r.totalWeight
}

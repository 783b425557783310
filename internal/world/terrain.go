package world

import (
	"fmt"
	"sort"
	"strings"
)

// TerrainKind identifies the ground a cell is made of.
type TerrainKind int

const (
	// TerrainBarren is the zero value, used for cells nothing was generated on.
	TerrainBarren TerrainKind = iota
	TerrainGrassLand
	TerrainDesert
	TerrainPond
)

// AllTerrainKinds lists every terrain kind in declaration order.
var AllTerrainKinds = []TerrainKind{TerrainBarren, TerrainGrassLand, TerrainDesert, TerrainPond}

// String returns the name used in descriptions.
func (k TerrainKind) String() string {
	switch k {
	case TerrainBarren:
		return "barren land"
	case TerrainGrassLand:
		return "grass land"
	case TerrainDesert:
		return "desert"
	case TerrainPond:
		return "Pond"
	default:
		return "unknown"
	}
}

// ID returns the identifier used for tile data lookup.
func (k TerrainKind) ID() string {
	switch k {
	case TerrainBarren:
		return "barren_land"
	case TerrainGrassLand:
		return "grass_land"
	case TerrainDesert:
		return "desert"
	case TerrainPond:
		return "pond"
	default:
		return "unknown"
	}
}

// ParseTerrainID maps a tile data ID back to its kind.
func ParseTerrainID(id string) (TerrainKind, bool) {
	for _, k := range AllTerrainKinds {
		if k.ID() == id {
			return k, true
		}
	}
	return TerrainBarren, false
}

const drinkMessage = "You drink water from the pond. It's refreshing!"

// terrainCommands is the static command table per terrain kind.
var terrainCommands = map[TerrainKind]map[string]func() string{
	TerrainPond: {
		"drink": func() string { return drinkMessage },
	},
}

// Terrain is the ground occupying a grid cell.
type Terrain struct {
	Kind TerrainKind
}

// Description returns the sentence shown when the player stands here.
func (t Terrain) Description() string {
	return fmt.Sprintf("You are standing on %s.", t.Kind)
}

// Command runs the named terrain command. ok is false if this kind has no such command.
func (t Terrain) Command(name string) (result string, ok bool) {
	action, ok := terrainCommands[t.Kind][strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return action(), true
}

// Commands returns the command names this terrain supports, sorted.
func (t Terrain) Commands() []string {
	names := make([]string, 0, len(terrainCommands[t.Kind]))
	for name := range terrainCommands[t.Kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

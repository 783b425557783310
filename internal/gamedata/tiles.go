package gamedata

import "github.com/gdamore/tcell/v2"

// Category separates bare terrain from buildings standing on it.
type Category string

const (
	CategoryTerrain  Category = "terrain"
	CategoryBuilding Category = "building"
)

// TileDef holds the presentation and spawn data for one tile kind.
type TileDef struct {
	ID          string   `json:"id"`          // Matches the kind ID in the world package (e.g., "pond")
	Category    Category `json:"category"`    // "terrain" or "building"
	Glyph       string   `json:"glyph"`       // Single character for rendering (e.g., "~")
	Color       string   `json:"color"`       // Hex color code (e.g., "#0000FF")
	SpawnWeight int      `json:"spawnWeight"` // Relative generation frequency; 0 never spawns
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

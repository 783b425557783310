package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/barrenland/internal/gamedata"
	"github.com/samdwyer/barrenland/internal/world"
)

// Cell is one square of the viewport a renderer draws.
type Cell struct {
	Coord  world.Coord
	Known  bool   // Generated and inside the world
	TileID string // Building ID if one stands here, else terrain ID
	Glyph  rune
	Color  tcell.Color
	Player bool
}

// View returns the (2*radius+1)^2 cells around the player, row by row from
// the top-left. Cells outside the world or not yet generated are unknown and
// drawn as blank white squares. The player's cell shows the player symbol in
// the colour of the tile underneath. Tiles missing from the world's registry
// take their look from the embedded tile data.
func (s *Session) View(radius int) []Cell {
	s.mu.Lock()
	defer s.mu.Unlock()

	center := s.player.Location
	side := 2*radius + 1
	cells := make([]Cell, 0, side*side)
	registry := s.world.Registry()

	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := world.Coord{X: x, Y: y}
			cell := Cell{
				Coord:  c,
				Glyph:  ' ',
				Color:  tcell.ColorWhite,
				Player: c == center,
			}
			if id, ok := s.world.TileID(c); ok {
				cell.Known = true
				cell.TileID = id
				def := registry.GetByID(id)
				if def == nil {
					def = gamedata.Embedded().GetByID(id)
				}
				if def != nil {
					cell.Glyph = def.GlyphRune()
					cell.Color = def.TCellColor()
				}
			}
			if cell.Player {
				cell.Glyph = s.player.Symbol
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

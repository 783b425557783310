// Package entity provides the player that walks the world.
package entity

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/barrenland/internal/telemetry"
	"github.com/samdwyer/barrenland/internal/world"
)

// Messages returned to the player when an action has no effect.
const (
	MsgCantMove      = "You can't move in that direction."
	MsgCantUseHere   = "This command can't be used here."
	MsgAlreadyBuilt  = "There's already a building here."
	MsgCantBuildHere = "You can't build here."
)

// Player is the single explorer of a world. It only holds a coordinate and
// always looks tiles up through the world.
type Player struct {
	Location world.Coord
	Radius   int // Generation radius after each move
	Symbol   rune // Drawn over the tile the player stands on
}

// NewPlayer creates a player at the world's center and generates the area around it.
func NewPlayer(ctx context.Context, w *world.World) *Player {
	return NewPlayerWithRadius(ctx, w, world.DefaultRadius)
}

// NewPlayerWithRadius is NewPlayer with a custom generation radius.
func NewPlayerWithRadius(ctx context.Context, w *world.World, radius int) *Player {
	p := &Player{
		Location: w.Center(),
		Radius:   radius,
		Symbol:   'X',
	}
	w.GenerateArea(ctx, p.Location, p.Radius)
	return p
}

// Move steps one cell in dir if the result stays inside the world, generates
// the area around the new location and describes it. A rejected move leaves
// the location unchanged and returns MsgCantMove.
func (p *Player) Move(ctx context.Context, dir Direction, w *world.World) string {
	ctx, span := telemetry.Tracer("entity").Start(ctx, "player.move")
	defer span.End()

	dx, dy := dir.Delta()
	next := p.Location.Add(dx, dy)
	span.SetAttributes(
		attribute.String("player.direction", dir.String()),
		attribute.Int("player.from_x", p.Location.X),
		attribute.Int("player.from_y", p.Location.Y),
	)

	if (dx == 0 && dy == 0) || !next.In(w.Size) {
		span.SetAttributes(attribute.Bool("player.moved", false))
		return MsgCantMove
	}

	p.Location = next
	w.GenerateArea(ctx, p.Location, p.Radius)
	span.SetAttributes(attribute.Bool("player.moved", true))
	return p.DescribeLocation(w)
}

// DescribeLocation describes the building here, else the terrain, else barren land.
func (p *Player) DescribeLocation(w *world.World) string {
	if b, ok := w.Building(p.Location); ok {
		return b.Description()
	}
	if t, ok := w.Terrain(p.Location); ok {
		return t.Description()
	}
	return world.Terrain{}.Description()
}

// ExecuteCommand runs cmd against the building here first, then the terrain.
// A cell that was never generated offers no commands.
func (p *Player) ExecuteCommand(cmd string, w *world.World) string {
	if b, ok := w.Building(p.Location); ok {
		if result, ok := b.Command(cmd); ok {
			return result
		}
	}
	if t, ok := w.Terrain(p.Location); ok {
		if result, ok := t.Command(cmd); ok {
			return result
		}
	}
	return MsgCantUseHere
}

// Build places a building of the given type on the current cell. ok is false
// when nothing was built.
func (p *Player) Build(w *world.World, buildingType string) (msg string, ok bool) {
	b, err := w.AddBuilding(p.Location, buildingType)
	switch {
	case errors.Is(err, world.ErrOccupied):
		return MsgAlreadyBuilt, false
	case err != nil:
		return MsgCantBuildHere, false
	}
	return fmt.Sprintf("You built a %s.", b.Type), true
}

// Package world provides the lazily generated grid, its terrain and the
// buildings standing on it.
package world

import "fmt"

// Coord is a grid position. It is comparable and used as a map key.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether c lies inside a size x size grid.
func (c Coord) In(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

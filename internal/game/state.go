// Package game runs a play session: one world, one player and the text
// command surface a frontend forwards input to.
package game

// State represents the current session state.
type State int

const (
	// StateExploring is the only playing state: the player moves and issues commands.
	StateExploring State = iota
	// StateEnded is reached after "quit". Further input is ignored.
	StateEnded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExploring:
		return "exploring"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

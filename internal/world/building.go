package world

import (
	"fmt"
	"sort"
	"strings"
)

const (
	pointsPerUse   = 10
	pointsPerLevel = 100
)

// BuildingKind selects the command table a building gets.
type BuildingKind int

const (
	// BuildingGeneric is any player-built structure without special commands.
	BuildingGeneric BuildingKind = iota
	BuildingHouse
)

// AllBuildingKinds lists every building kind in declaration order.
var AllBuildingKinds = []BuildingKind{BuildingGeneric, BuildingHouse}

// String returns the default type name for the kind.
func (k BuildingKind) String() string {
	switch k {
	case BuildingGeneric:
		return "Building"
	case BuildingHouse:
		return "House"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used for tile data lookup.
func (k BuildingKind) ID() string {
	switch k {
	case BuildingGeneric:
		return "building"
	case BuildingHouse:
		return "house"
	default:
		return "unknown"
	}
}

// ParseBuildingKind matches a building type name case-insensitively.
// Unrecognised names are generic buildings.
func ParseBuildingKind(s string) BuildingKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllBuildingKinds {
		if k.ID() == s {
			return k
		}
	}
	return BuildingGeneric
}

const restMessage = "You rest in the house and regain energy."

// buildingCommands is the static command table per building kind. "use" is
// available on every kind and is handled by Building.Command directly.
var buildingCommands = map[BuildingKind]map[string]func(*Building) string{
	BuildingHouse: {
		"rest": func(*Building) string { return restMessage },
	},
}

// Building is a structure occupying a cell. It levels up with use.
type Building struct {
	Kind   BuildingKind
	Type   string // Display name, e.g. "House" or whatever the player built
	Level  int    // Starts at 1, no upper bound
	Points int    // Reset to 0 on every level-up
}

// NewBuilding creates a level 1 building. A house always gets the type "House";
// other types keep the name given, or the kind's name when blank.
func NewBuilding(buildingType string) *Building {
	kind := ParseBuildingKind(buildingType)
	name := strings.TrimSpace(buildingType)
	if kind != BuildingGeneric || name == "" {
		name = kind.String()
	}
	return &Building{
		Kind:  kind,
		Type:  name,
		Level: 1,
	}
}

// Threshold returns the points needed for the next level.
func (b *Building) Threshold() int {
	return b.Level * pointsPerLevel
}

// Use adds points and levels up once the threshold is reached. It returns the
// level-up message and true on a level-up, otherwise "" and false.
func (b *Building) Use() (string, bool) {
	b.Points += pointsPerUse
	if b.Points >= b.Threshold() {
		return b.levelUp(), true
	}
	return "", false
}

func (b *Building) levelUp() string {
	b.Level++
	b.Points = 0
	return fmt.Sprintf("%s has leveled up to level %d!", b.Type, b.Level)
}

// Description returns e.g. "House (Level 2)".
func (b *Building) Description() string {
	return fmt.Sprintf("%s (Level %d)", b.Type, b.Level)
}

// Command runs the named building command. ok is false if this building has no such command.
func (b *Building) Command(name string) (result string, ok bool) {
	name = strings.ToLower(name)
	if name == "use" {
		if msg, levelled := b.Use(); levelled {
			return msg, true
		}
		return fmt.Sprintf("You use the %s. (%d/%d)", b.Type, b.Points, b.Threshold()), true
	}
	action, ok := buildingCommands[b.Kind][name]
	if !ok {
		return "", false
	}
	return action(b), true
}

// Commands returns the command names this building supports, sorted.
func (b *Building) Commands() []string {
	names := []string{"use"}
	for name := range buildingCommands[b.Kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

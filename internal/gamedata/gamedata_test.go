package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTiles(t *testing.T) {
	tiles, err := LoadTiles()
	require.NoError(t, err)

	expected := map[string]Category{
		"barren_land": CategoryTerrain,
		"grass_land":  CategoryTerrain,
		"desert":      CategoryTerrain,
		"pond":        CategoryTerrain,
		"house":       CategoryBuilding,
		"building":    CategoryBuilding,
	}
	require.Len(t, tiles, len(expected))
	for _, tile := range tiles {
		category, ok := expected[tile.ID]
		if assert.True(t, ok, "unexpected tile %q", tile.ID) {
			assert.Equal(t, category, tile.Category, tile.ID)
		}
	}
}

func TestTileRegistryWeights(t *testing.T) {
	registry := MustLoadTileRegistry()

	// grass land twice as likely as each of desert, pond and house
	assert.Equal(t, 5, registry.TotalWeight())
	assert.Equal(t, 2, registry.GetByID("grass_land").SpawnWeight)
	assert.Equal(t, 0, registry.GetByID("barren_land").SpawnWeight)
	assert.Nil(t, registry.GetByID("castle"))
}

func TestSpawnRandomSkipsZeroWeight(t *testing.T) {
	registry := MustLoadTileRegistry()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		def := registry.SpawnRandom(rng)
		require.NotNil(t, def)
		seen[def.ID]++
	}

	assert.Zero(t, seen["barren_land"])
	assert.Zero(t, seen["building"])
	for _, id := range []string{"grass_land", "desert", "pond", "house"} {
		assert.Positive(t, seen[id], id)
	}
	assert.Greater(t, seen["grass_land"], seen["desert"])
}

func TestSpawnRandomDeterministic(t *testing.T) {
	registry := MustLoadTileRegistry()
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		assert.Equal(t, registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID, "spawn %d", i)
	}
}

func TestSpawnRandomEmptyRegistry(t *testing.T) {
	registry := NewTileRegistry([]TileDef{{ID: "void", SpawnWeight: 0}})
	assert.Nil(t, registry.SpawnRandom(rand.New(rand.NewSource(1))))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#a52a2a", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("Goldenrod")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorGoldenrod, c)

	c, err = ParseColor("#0000FF")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), c)
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{ID: "pond", Glyph: "~", Color: "#0000FF"}
	assert.Equal(t, '~', def.GlyphRune())
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), def.TCellColor())

	empty := TileDef{Color: "nope"}
	assert.Equal(t, '?', empty.GlyphRune())
	assert.Equal(t, tcell.ColorWhite, empty.TCellColor())
}

func TestEmbeddedRegistryIsShared(t *testing.T) {
	r := Embedded()
	require.NotNil(t, r)
	assert.Same(t, r, Embedded())
	assert.NotNil(t, r.GetByID("house"))
}

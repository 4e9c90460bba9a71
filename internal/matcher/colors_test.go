package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outfitmatcher/backend/internal/models"
)

func TestColorsMatchSymmetry(t *testing.T) {
	for _, a := range Palette {
		for _, b := range Palette {
			assert.Equal(t, ColorsMatch(a, b), ColorsMatch(b, a), "symmetry for %s/%s", a, b)
		}
	}
}

func TestColorsMatchReflexive(t *testing.T) {
	for _, c := range Palette {
		assert.True(t, ColorsMatch(c, c), "color %s should match itself", c)
	}
}

func TestColorsMatchNeutrals(t *testing.T) {
	for _, n := range Neutrals {
		for _, c := range Palette {
			assert.True(t, ColorsMatch(n, c), "neutral %s should match %s", n, c)
		}
	}
}

func TestColorsMatchEmptyIsPermissive(t *testing.T) {
	assert.True(t, ColorsMatch("", "red"))
	assert.True(t, ColorsMatch("purple", ""))
	assert.True(t, ColorsMatch("", ""))
}

func TestColorsMatchClashes(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"red", "green", false},
		{"red", "orange", false},
		{"red", "purple", false},
		{"red", "pink", true},
		{"red", "yellow", true},
		{"green", "pink", false},
		{"orange", "pink", false},
		{"yellow", "purple", false},
		{"yellow", "green", true},
		{"pink", "purple", true},
		{"red", "denim_blue", true},
		{"green", "black", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorsMatch(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
		assert.Equal(t, tt.want, ColorsMatch(tt.b, tt.a), "%s vs %s reversed", tt.b, tt.a)
	}
}

func TestColorsMatchCaseInsensitive(t *testing.T) {
	assert.False(t, ColorsMatch("Red", "GREEN"))
	assert.True(t, ColorsMatch("Black", "RED"))
}

func TestOutfitColorsOK(t *testing.T) {
	red := models.ClothingItem{ID: "a", Color: "red"}
	green := models.ClothingItem{ID: "b", Color: "green"}
	white := models.ClothingItem{ID: "c", Color: "white"}

	assert.True(t, OutfitColorsOK(nil))
	assert.True(t, OutfitColorsOK([]models.ClothingItem{red}), "single item never clashes")
	assert.True(t, OutfitColorsOK([]models.ClothingItem{red, white}))
	assert.False(t, OutfitColorsOK([]models.ClothingItem{red, green}))
	assert.False(t, OutfitColorsOK([]models.ClothingItem{white, red, green}), "any clashing pair fails the outfit")
}

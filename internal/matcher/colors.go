// Package matcher holds the outfit rules: color compatibility, layering
// predicates, combination generation, and the favorites ledger operations.
// Everything here is pure; persistence and HTTP live elsewhere.
package matcher

import (
	"strings"

	"github.com/outfitmatcher/backend/internal/models"
)

// Neutrals are compatible with every color.
var Neutrals = []string{"black", "white", "gray", "navy", "beige", "cream", "brown", "denim_blue"}

// colorClashes is configuration, not computation. Effective symmetry comes
// from checking both directions in ColorsMatch, so a clash listed on either
// side is enough.
var colorClashes = map[string][]string{
	"red":    {"green", "orange", "purple"},
	"green":  {"red", "pink", "orange"},
	"orange": {"pink", "red", "purple"},
	"pink":   {"orange", "green"},
	"yellow": {"purple", "orange"},
	"purple": {"yellow", "orange", "red"},
}

var neutralSet = func() map[string]bool {
	set := make(map[string]bool, len(Neutrals))
	for _, c := range Neutrals {
		set[c] = true
	}
	return set
}()

// Palette lists every color the app accepts, neutrals first.
var Palette = append(append([]string{}, Neutrals...),
	"red", "green", "orange", "pink", "yellow", "purple")

// ColorsMatch reports whether two colors can appear in the same outfit.
// Missing colors are permissive, identical colors always match, neutrals
// match everything, and otherwise only a registered pairwise clash fails.
func ColorsMatch(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return true
	}
	if neutralSet[a] || neutralSet[b] {
		return true
	}
	if clashes(a, b) || clashes(b, a) {
		return false
	}
	return true
}

func clashes(a, b string) bool {
	for _, c := range colorClashes[a] {
		if c == b {
			return true
		}
	}
	return false
}

// OutfitColorsOK reports whether every unordered pair of items in the outfit
// is color-compatible. Outfits hold at most three items, so the pairwise
// check is cheap.
func OutfitColorsOK(items []models.ClothingItem) bool {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if !ColorsMatch(items[i].Color, items[j].Color) {
				return false
			}
		}
	}
	return true
}

package models

import (
	"sort"
	"strings"
)

// Outfit is an ordered list of closet items worn together. Outfits are never
// stored as entities; favorites reference them by identity.
type Outfit []ClothingItem

// OutfitID derives the canonical identity of an outfit: member item ids,
// sorted, joined with "|". Order-independent, so the same member set always
// yields the same id regardless of how the outfit was enumerated. This string
// is the sole identity mechanism for outfits and favorites.
func OutfitID(items []ClothingItem) string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// ItemIDs returns the member ids in outfit order.
func (o Outfit) ItemIDs() []string {
	ids := make([]string, len(o))
	for i, it := range o {
		ids[i] = it.ID
	}
	return ids
}

// GeneratedOutfit is what the API returns for each proposed combination.
type GeneratedOutfit struct {
	OutfitID  string         `json:"outfit_id"`
	Items     []ClothingItem `json:"items"`
	Favorited bool           `json:"favorited"`
}

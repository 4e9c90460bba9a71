package matcher

import (
	"sort"
	"time"

	"github.com/outfitmatcher/backend/internal/models"
)

// IsFavorited reports whether the ledger holds a favorite with the given
// outfit id.
func IsFavorited(favs []models.Favorite, outfitID string) bool {
	for _, f := range favs {
		if f.OutfitID == outfitID {
			return true
		}
	}
	return false
}

// ToggleFavorite returns a new ledger with the outfit's favorite flipped:
// removed if present by identity, appended otherwise. Toggling twice leaves
// the membership unchanged, though a re-added favorite gets a fresh
// CreatedAt.
func ToggleFavorite(favs []models.Favorite, outfit models.Outfit, now time.Time) []models.Favorite {
	outfitID := models.OutfitID(outfit)

	if IsFavorited(favs, outfitID) {
		out := make([]models.Favorite, 0, len(favs))
		for _, f := range favs {
			if f.OutfitID != outfitID {
				out = append(out, f)
			}
		}
		return out
	}

	out := make([]models.Favorite, len(favs), len(favs)+1)
	copy(out, favs)
	return append(out, models.Favorite{
		OutfitID:  outfitID,
		ItemIDs:   outfit.ItemIDs(),
		CreatedAt: now,
	})
}

// PruneFavorites drops every favorite referencing an item no longer in the
// closet. Deletions cascade through here, and it runs defensively before
// every read since the store may have changed between loads. Idempotent.
func PruneFavorites(favs []models.Favorite, closet []models.ClothingItem) []models.Favorite {
	existing := make(map[string]bool, len(closet))
	for _, item := range closet {
		existing[item.ID] = true
	}

	out := make([]models.Favorite, 0, len(favs))
	for _, f := range favs {
		ok := true
		for _, id := range f.ItemIDs {
			if !existing[id] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, f)
		}
	}
	return out
}

// ResolveFavorite maps a favorite's item ids back to closet items. The
// second return is false when any member is missing; callers treat that as
// pruned, not as an error.
func ResolveFavorite(fav models.Favorite, closet []models.ClothingItem) (models.Outfit, bool) {
	byID := make(map[string]models.ClothingItem, len(closet))
	for _, item := range closet {
		byID[item.ID] = item
	}

	items := make([]models.ClothingItem, 0, len(fav.ItemIDs))
	for _, id := range fav.ItemIDs {
		item, ok := byID[id]
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}
	return models.Outfit(items), true
}

// SortFavoritesByRecency returns a new slice ordered newest first. The sort
// is stable, so equal timestamps keep their insertion order.
func SortFavoritesByRecency(favs []models.Favorite) []models.Favorite {
	out := make([]models.Favorite, len(favs))
	copy(out, favs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfitmatcher/backend/internal/models"
)

func favOutfit(ids ...string) models.Outfit {
	items := make([]models.ClothingItem, len(ids))
	for i, id := range ids {
		items[i] = models.ClothingItem{ID: id}
	}
	return models.Outfit(items)
}

func favIDs(favs []models.Favorite) []string {
	out := make([]string, len(favs))
	for i, f := range favs {
		out[i] = f.OutfitID
	}
	return out
}

func TestToggleFavoriteAddsThenRemoves(t *testing.T) {
	now := time.Now()
	outfit := favOutfit("a", "b")

	favs := ToggleFavorite(nil, outfit, now)
	require.Len(t, favs, 1)
	assert.Equal(t, "a|b", favs[0].OutfitID)
	assert.Equal(t, []string{"a", "b"}, favs[0].ItemIDs)
	assert.Equal(t, now, favs[0].CreatedAt)

	favs = ToggleFavorite(favs, outfit, now.Add(time.Second))
	assert.Empty(t, favs, "double toggle restores the original membership")
}

func TestToggleFavoriteIdentityIsOrderIndependent(t *testing.T) {
	now := time.Now()

	favs := ToggleFavorite(nil, favOutfit("x", "y", "z"), now)
	favs = ToggleFavorite(favs, favOutfit("z", "x", "y"), now)

	assert.Empty(t, favs, "same member set must toggle the same favorite")
}

func TestToggleFavoriteDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	original := ToggleFavorite(nil, favOutfit("a"), now)
	original = ToggleFavorite(original, favOutfit("b"), now)

	_ = ToggleFavorite(original, favOutfit("c"), now)
	_ = ToggleFavorite(original, favOutfit("a"), now)

	assert.Equal(t, []string{"a", "b"}, favIDs(original))
}

func TestPruneFavoritesDropsDanglingRecords(t *testing.T) {
	now := time.Now()
	closet := []models.ClothingItem{{ID: "a"}, {ID: "b"}}

	favs := ToggleFavorite(nil, favOutfit("a", "b"), now)
	favs = ToggleFavorite(favs, favOutfit("a", "gone"), now)

	pruned := PruneFavorites(favs, closet)
	require.Len(t, pruned, 1)
	assert.Equal(t, "a|b", pruned[0].OutfitID)
}

func TestPruneFavoritesIdempotent(t *testing.T) {
	now := time.Now()
	closet := []models.ClothingItem{{ID: "a"}}

	favs := ToggleFavorite(nil, favOutfit("a"), now)
	favs = ToggleFavorite(favs, favOutfit("missing"), now)

	once := PruneFavorites(favs, closet)
	twice := PruneFavorites(once, closet)
	assert.Equal(t, once, twice)
}

func TestPruneFavoritesAfterDeleteRemovesWholeFavorite(t *testing.T) {
	now := time.Now()
	a := models.ClothingItem{ID: "a"}
	b := models.ClothingItem{ID: "b"}

	favs := ToggleFavorite(nil, models.Outfit{a, b}, now)

	// delete b from the closet: the favorite referencing it goes entirely
	pruned := PruneFavorites(favs, []models.ClothingItem{a})
	assert.Empty(t, pruned)
}

func TestResolveFavorite(t *testing.T) {
	closet := []models.ClothingItem{{ID: "a", Color: "red"}, {ID: "b", Color: "black"}}
	fav := models.Favorite{OutfitID: "a|b", ItemIDs: []string{"b", "a"}}

	outfit, ok := ResolveFavorite(fav, closet)
	require.True(t, ok)
	require.Len(t, outfit, 2)
	assert.Equal(t, "b", outfit[0].ID, "resolution keeps the favorite's member order")
	assert.Equal(t, "a", outfit[1].ID)

	_, ok = ResolveFavorite(models.Favorite{ItemIDs: []string{"a", "gone"}}, closet)
	assert.False(t, ok, "missing member makes the favorite unresolvable")
}

func TestSortFavoritesByRecency(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	favs := []models.Favorite{
		{OutfitID: "old", CreatedAt: base},
		{OutfitID: "tie1", CreatedAt: base.Add(time.Hour)},
		{OutfitID: "tie2", CreatedAt: base.Add(time.Hour)},
		{OutfitID: "new", CreatedAt: base.Add(2 * time.Hour)},
	}

	sorted := SortFavoritesByRecency(favs)
	assert.Equal(t, []string{"new", "tie1", "tie2", "old"}, favIDs(sorted), "newest first, ties keep insertion order")

	// non-destructive
	assert.Equal(t, []string{"old", "tie1", "tie2", "new"}, favIDs(favs))
}

func TestIsFavorited(t *testing.T) {
	favs := []models.Favorite{{OutfitID: "a|b"}}
	assert.True(t, IsFavorited(favs, "a|b"))
	assert.False(t, IsFavorited(favs, "a|c"))
	assert.False(t, IsFavorited(nil, "a|b"))
}

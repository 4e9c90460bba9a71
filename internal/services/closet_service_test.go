package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

func topRequest(color string, sleeve models.SleeveLength) *models.CreateItemRequest {
	return &models.CreateItemRequest{
		ImageURL:     "/uploads/x.jpg",
		Category:     models.CategoryTop,
		TopSubtype:   models.TopShirt,
		SleeveLength: sleeve,
		Color:        color,
	}
}

func bottomRequest(color, subtype string) *models.CreateItemRequest {
	return &models.CreateItemRequest{
		ImageURL:      "/uploads/x.jpg",
		Category:      models.CategoryBottom,
		BottomSubtype: subtype,
		Color:         color,
	}
}

func TestClosetAddAndList(t *testing.T) {
	store := newTestStore(t)
	svc := NewClosetService(store, zap.NewNop())
	ctx := context.Background()

	item, err := svc.Add(ctx, "p_alice", topRequest("white", models.SleeveShort))
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	items, err := svc.List(ctx, "p_alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestClosetCapacityRejectsNotEvicts(t *testing.T) {
	store := newTestStore(t)
	svc := NewClosetService(store, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < models.MaxClosetItems; i++ {
		_, err := svc.Add(ctx, "p_alice", bottomRequest("black", fmt.Sprintf("pants-%d", i)))
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, "p_alice", bottomRequest("black", "one-too-many"))
	assert.ErrorIs(t, err, ErrClosetFull)

	items, err := svc.List(ctx, "p_alice")
	require.NoError(t, err)
	require.Len(t, items, models.MaxClosetItems, "rejected insert must not mutate the closet")
	assert.Equal(t, "pants-0", items[0].BottomSubtype, "oldest item is still there")
}

func TestClosetDeleteCascadesToFavorites(t *testing.T) {
	store := newTestStore(t)
	closet := NewClosetService(store, zap.NewNop())
	favorites := NewFavoriteService(store, zap.NewNop())
	ctx := context.Background()

	top, err := closet.Add(ctx, "p_alice", topRequest("white", models.SleeveShort))
	require.NoError(t, err)
	jeans, err := closet.Add(ctx, "p_alice", bottomRequest("denim_blue", "jeans"))
	require.NoError(t, err)

	on, err := favorites.Toggle(ctx, "p_alice", []string{top.ID, jeans.ID})
	require.NoError(t, err)
	require.True(t, on)

	require.NoError(t, closet.Delete(ctx, "p_alice", jeans.ID))

	favs, err := favorites.List(ctx, "p_alice")
	require.NoError(t, err)
	assert.Empty(t, favs, "favorite referencing the deleted item is gone")

	items, err := closet.List(ctx, "p_alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, top.ID, items[0].ID)
}

func TestClosetDeleteMissingItem(t *testing.T) {
	store := newTestStore(t)
	svc := NewClosetService(store, zap.NewNop())

	err := svc.Delete(context.Background(), "p_alice", "nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClosetClearAlsoClearsFavorites(t *testing.T) {
	store := newTestStore(t)
	closet := NewClosetService(store, zap.NewNop())
	favorites := NewFavoriteService(store, zap.NewNop())
	ctx := context.Background()

	top, err := closet.Add(ctx, "p_alice", topRequest("white", models.SleeveShort))
	require.NoError(t, err)
	_, err = favorites.Toggle(ctx, "p_alice", []string{top.ID})
	require.NoError(t, err)

	require.NoError(t, closet.Clear(ctx, "p_alice"))

	items, err := closet.List(ctx, "p_alice")
	require.NoError(t, err)
	assert.Empty(t, items)

	favs, err := favorites.List(ctx, "p_alice")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

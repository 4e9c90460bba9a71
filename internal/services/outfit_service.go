package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/matcher"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/storage"
)

// OutfitService runs the generator against a profile's current closet and
// annotates each combination with its identity and favorited state.
type OutfitService struct {
	store storage.Store
	log   *zap.Logger
}

func NewOutfitService(store storage.Store, log *zap.Logger) *OutfitService {
	return &OutfitService{store: store, log: log}
}

// Generate returns every valid outfit containing the anchor item. An empty
// result is a valid answer, not an error.
func (s *OutfitService) Generate(ctx context.Context, profileID, itemID string) ([]models.GeneratedOutfit, error) {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return nil, err
	}

	var selected *models.ClothingItem
	for i := range items {
		if items[i].ID == itemID {
			selected = &items[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrItemNotFound
	}

	favs, err := s.store.LoadFavorites(ctx, profileID)
	if err != nil {
		return nil, err
	}
	favs = matcher.PruneFavorites(favs, items)

	outfits := matcher.GenerateOutfits(*selected, items)

	out := make([]models.GeneratedOutfit, len(outfits))
	for i, o := range outfits {
		id := models.OutfitID(o)
		out[i] = models.GeneratedOutfit{
			OutfitID:  id,
			Items:     o,
			Favorited: matcher.IsFavorited(favs, id),
		}
	}

	s.log.Debug("outfits generated",
		zap.String("profile_id", profileID),
		zap.String("anchor_id", itemID),
		zap.Int("count", len(out)))
	return out, nil
}

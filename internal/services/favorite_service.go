package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/matcher"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/storage"
)

var ErrFavoriteBadItems = errors.New("favorite references items not in the closet")

// FavoriteService persists the favorites ledger. The ledger math itself
// (toggle, prune, resolve, ordering) lives in the matcher package; this
// service loads state, applies it, and writes the result back.
type FavoriteService struct {
	store storage.Store
	log   *zap.Logger
}

func NewFavoriteService(store storage.Store, log *zap.Logger) *FavoriteService {
	return &FavoriteService{store: store, log: log}
}

// Toggle flips the favorite for the outfit made of the given item ids.
// Every id must resolve against the current closet. Returns whether the
// outfit is favorited after the toggle.
func (s *FavoriteService) Toggle(ctx context.Context, profileID string, itemIDs []string) (bool, error) {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return false, err
	}

	outfit, ok := matcher.ResolveFavorite(models.Favorite{ItemIDs: itemIDs}, items)
	if !ok {
		return false, ErrFavoriteBadItems
	}

	favs, err := s.store.LoadFavorites(ctx, profileID)
	if err != nil {
		return false, err
	}
	favs = matcher.PruneFavorites(favs, items)
	favs = matcher.ToggleFavorite(favs, outfit, time.Now())

	if err := s.store.SaveFavorites(ctx, profileID, favs); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}

	on := matcher.IsFavorited(favs, models.OutfitID(outfit))
	s.log.Info("favorite toggled",
		zap.String("profile_id", profileID),
		zap.String("outfit_id", models.OutfitID(outfit)),
		zap.Bool("favorited", on))
	return on, nil
}

// List returns the profile's favorites newest first, resolved against the
// current closet. Dangling favorites are pruned (and the pruned ledger is
// written back) rather than reported.
func (s *FavoriteService) List(ctx context.Context, profileID string) ([]models.FavoriteWithItems, error) {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return nil, err
	}
	favs, err := s.store.LoadFavorites(ctx, profileID)
	if err != nil {
		return nil, err
	}

	pruned := matcher.PruneFavorites(favs, items)
	if len(pruned) != len(favs) {
		if err := s.store.SaveFavorites(ctx, profileID, pruned); err != nil {
			return nil, fmt.Errorf("save favorites: %w", err)
		}
	}

	out := make([]models.FavoriteWithItems, 0, len(pruned))
	for _, fav := range matcher.SortFavoritesByRecency(pruned) {
		outfit, ok := matcher.ResolveFavorite(fav, items)
		if !ok {
			continue
		}
		out = append(out, models.FavoriteWithItems{Favorite: fav, Items: outfit})
	}
	return out, nil
}

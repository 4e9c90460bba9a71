package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/matcher"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/storage"
)

var (
	ErrClosetFull   = errors.New("closet is full")
	ErrItemNotFound = errors.New("item not found")
)

// ClosetService owns a profile's item collection: bounded inserts, deletes
// that cascade to favorites, and full clears. All state lives in the store;
// the service itself is stateless.
type ClosetService struct {
	store storage.Store
	log   *zap.Logger
}

func NewClosetService(store storage.Store, log *zap.Logger) *ClosetService {
	return &ClosetService{store: store, log: log}
}

func (s *ClosetService) List(ctx context.Context, profileID string) ([]models.ClothingItem, error) {
	return s.store.LoadItems(ctx, profileID)
}

func (s *ClosetService) Get(ctx context.Context, profileID, itemID string) (*models.ClothingItem, error) {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == itemID {
			return &item, nil
		}
	}
	return nil, ErrItemNotFound
}

// Add validates and appends an item, rejecting when the closet already holds
// MaxClosetItems. Nothing is evicted and nothing is written on rejection.
func (s *ClosetService) Add(ctx context.Context, profileID string, req *models.CreateItemRequest) (*models.ClothingItem, error) {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(items) >= models.MaxClosetItems {
		return nil, ErrClosetFull
	}

	item := req.ToItem(uuid.New().String(), profileID, time.Now())
	items = append(items, item)

	if err := s.store.SaveItems(ctx, profileID, items); err != nil {
		return nil, fmt.Errorf("save items: %w", err)
	}

	s.log.Info("item added",
		zap.String("profile_id", profileID),
		zap.String("item_id", item.ID),
		zap.String("category", string(item.Category)),
		zap.Int("closet_size", len(items)))
	return &item, nil
}

// Delete removes an item and prunes any favorite that referenced it.
func (s *ClosetService) Delete(ctx context.Context, profileID, itemID string) error {
	items, err := s.store.LoadItems(ctx, profileID)
	if err != nil {
		return err
	}

	kept := make([]models.ClothingItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrItemNotFound
	}

	if err := s.store.SaveItems(ctx, profileID, kept); err != nil {
		return fmt.Errorf("save items: %w", err)
	}

	favs, err := s.store.LoadFavorites(ctx, profileID)
	if err != nil {
		return err
	}
	pruned := matcher.PruneFavorites(favs, kept)
	if len(pruned) != len(favs) {
		if err := s.store.SaveFavorites(ctx, profileID, pruned); err != nil {
			return fmt.Errorf("save favorites: %w", err)
		}
	}

	s.log.Info("item deleted",
		zap.String("profile_id", profileID),
		zap.String("item_id", itemID),
		zap.Int("favorites_pruned", len(favs)-len(pruned)))
	return nil
}

// Clear empties the closet and, with it, every favorite.
func (s *ClosetService) Clear(ctx context.Context, profileID string) error {
	if err := s.store.SaveItems(ctx, profileID, nil); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	if err := s.store.SaveFavorites(ctx, profileID, nil); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}

	s.log.Info("closet cleared", zap.String("profile_id", profileID))
	return nil
}

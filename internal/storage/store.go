// Package storage implements the closet repository: durable per-profile
// collections of items, favorites, and the profile record itself. Stores
// must tolerate malformed persisted data by returning empty collections
// rather than surfacing parse failures.
package storage

import (
	"context"
	"errors"

	"github.com/outfitmatcher/backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// Store is the persistence boundary the services depend on. Implementations
// are keyed by profile id and must never return a partially decoded
// collection.
type Store interface {
	LoadItems(ctx context.Context, profileID string) ([]models.ClothingItem, error)
	SaveItems(ctx context.Context, profileID string, items []models.ClothingItem) error

	LoadFavorites(ctx context.Context, profileID string) ([]models.Favorite, error)
	SaveFavorites(ctx context.Context, profileID string, favs []models.Favorite) error

	LoadProfile(ctx context.Context, profileID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error

	Close(ctx context.Context) error
}

package models

import (
	"time"
)

// Favorite marks an outfit the user wants to keep. It stores only member
// item ids; it is meaningful only while every referenced item still exists
// in the closet, and dangling records are pruned before display.
type Favorite struct {
	OutfitID  string    `json:"outfit_id" bson:"outfit_id"`
	ProfileID string    `json:"profile_id,omitempty" bson:"profile_id,omitempty"`
	ItemIDs   []string  `json:"item_ids" bson:"item_ids"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// FavoriteWithItems is a favorite resolved against the current closet for
// display.
type FavoriteWithItems struct {
	Favorite
	Items []ClothingItem `json:"items"`
}

type ToggleFavoriteRequest struct {
	ItemIDs []string `json:"item_ids"`
}

func (r *ToggleFavoriteRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if len(r.ItemIDs) == 0 {
		errors["item_ids"] = "At least one item is required"
	}

	return errors
}

package models

import (
	"strings"
	"time"
)

// Category is the top-level clothing category. It is fixed at creation and
// decides which of the subtype/length fields apply.
type Category string

const (
	CategoryTop    Category = "top"
	CategoryBottom Category = "bottom"
	CategoryDress  Category = "dress"
)

type TopSubtype string

const (
	TopShirt    TopSubtype = "shirt"
	TopCardigan TopSubtype = "cardigan"
	TopSweater  TopSubtype = "sweater"
	TopJacket   TopSubtype = "jacket"
)

type SleeveLength string

const (
	SleeveSleeveless SleeveLength = "sleeveless"
	SleeveShort      SleeveLength = "short"
	SleeveLong       SleeveLength = "long"
)

type DressLength string

const (
	DressMini DressLength = "mini"
	DressMidi DressLength = "midi"
	DressMaxi DressLength = "maxi"
)

// MaxClosetItems bounds a profile's closet. Enforced at insert time; adding
// an eleventh item is rejected, nothing is evicted.
const MaxClosetItems = 10

type ClothingItem struct {
	ID        string   `json:"id" bson:"_id"`
	ProfileID string   `json:"profile_id" bson:"profile_id"`
	ImageURL  string   `json:"image_url" bson:"image_url"`
	Category  Category `json:"category" bson:"category"`
	// TopSubtype is set only when Category is top.
	TopSubtype TopSubtype `json:"top_subtype,omitempty" bson:"top_subtype,omitempty"`
	// BottomSubtype is a free-form tag (jeans, leggings, ...) set only when
	// Category is bottom.
	BottomSubtype string `json:"bottom_subtype,omitempty" bson:"bottom_subtype,omitempty"`
	// SleeveLength is set for tops and dresses.
	SleeveLength SleeveLength `json:"sleeve_length,omitempty" bson:"sleeve_length,omitempty"`
	// DressLength is set only when Category is dress.
	DressLength DressLength `json:"dress_length,omitempty" bson:"dress_length,omitempty"`
	Color       string      `json:"color" bson:"color"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

type CreateItemRequest struct {
	ImageURL      string       `json:"image_url"`
	Category      Category     `json:"category"`
	TopSubtype    TopSubtype   `json:"top_subtype"`
	BottomSubtype string       `json:"bottom_subtype"`
	SleeveLength  SleeveLength `json:"sleeve_length"`
	DressLength   DressLength  `json:"dress_length"`
	Color         string       `json:"color"`
}

func (r *CreateItemRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.ImageURL == "" {
		errors["image_url"] = "Upload an image first"
	}
	if r.Category == "" {
		errors["category"] = "Select a category"
	}
	if r.Color == "" {
		errors["color"] = "Select a color"
	}

	switch r.Category {
	case CategoryTop:
		if r.TopSubtype == "" {
			errors["top_subtype"] = "Select top type (shirt, cardigan, sweater, or jacket)"
		} else if !validTopSubtypes[r.TopSubtype] {
			errors["top_subtype"] = "Unknown top type"
		}
		if r.SleeveLength == "" {
			errors["sleeve_length"] = "Select sleeve length for this item"
		}
	case CategoryBottom:
		if r.BottomSubtype == "" {
			errors["bottom_subtype"] = "Select bottom type (jeans, leggings, sweatpants, etc.)"
		}
	case CategoryDress:
		if r.SleeveLength == "" {
			errors["sleeve_length"] = "Select sleeve length for this item"
		}
		if r.DressLength == "" {
			errors["dress_length"] = "Select dress length (mini, midi, or maxi)"
		} else if !validDressLengths[r.DressLength] {
			errors["dress_length"] = "Unknown dress length"
		}
	case "":
		// reported above
	default:
		errors["category"] = "Unknown category"
	}

	return errors
}

// ToItem builds an immutable item from a validated request. Fields that do
// not apply to the chosen category are cleared so stored items always honor
// the per-category field invariant.
func (r *CreateItemRequest) ToItem(id, profileID string, now time.Time) ClothingItem {
	item := ClothingItem{
		ID:        id,
		ProfileID: profileID,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		Color:     strings.ToLower(r.Color),
		CreatedAt: now,
	}

	switch r.Category {
	case CategoryTop:
		item.TopSubtype = r.TopSubtype
		item.SleeveLength = r.SleeveLength
	case CategoryBottom:
		item.BottomSubtype = r.BottomSubtype
	case CategoryDress:
		item.SleeveLength = r.SleeveLength
		item.DressLength = r.DressLength
	}

	return item
}

var validTopSubtypes = map[TopSubtype]bool{
	TopShirt:    true,
	TopCardigan: true,
	TopSweater:  true,
	TopJacket:   true,
}

var validDressLengths = map[DressLength]bool{
	DressMini: true,
	DressMidi: true,
	DressMaxi: true,
}

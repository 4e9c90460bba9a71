package matcher

import (
	"github.com/outfitmatcher/backend/internal/models"
)

func IsTop(item models.ClothingItem) bool    { return item.Category == models.CategoryTop }
func IsBottom(item models.ClothingItem) bool { return item.Category == models.CategoryBottom }
func IsDress(item models.ClothingItem) bool  { return item.Category == models.CategoryDress }

// IsLayer reports whether the item goes over something else. Jackets follow
// the same wearability rules as cardigans and sweaters.
func IsLayer(item models.ClothingItem) bool {
	return item.Category == models.CategoryTop &&
		(item.TopSubtype == models.TopCardigan ||
			item.TopSubtype == models.TopSweater ||
			item.TopSubtype == models.TopJacket)
}

// IsShirt reports whether the item is a base shirt a layer can go over.
func IsShirt(item models.ClothingItem) bool {
	return item.Category == models.CategoryTop && item.TopSubtype == models.TopShirt
}

// CanLayerOverTop reports whether a layer may be worn with the given top.
// Vacuously true when there is no layer involved; otherwise the base must be
// a short-sleeve top. Long sleeves never take a layer.
func CanLayerOverTop(top *models.ClothingItem, layer *models.ClothingItem) bool {
	if layer == nil || !IsLayer(*layer) {
		return true
	}
	if top == nil || !IsTop(*top) {
		return false
	}
	return top.SleeveLength == models.SleeveShort
}

// CanLayerOverDress reports whether a layer may be worn with the given
// dress. Unlike tops, sleeveless dresses also take a layer.
func CanLayerOverDress(dress *models.ClothingItem, layer *models.ClothingItem) bool {
	if layer == nil || !IsLayer(*layer) {
		return true
	}
	if dress == nil || !IsDress(*dress) {
		return false
	}
	return dress.SleeveLength == models.SleeveSleeveless || dress.SleeveLength == models.SleeveShort
}

package matcher

import (
	"github.com/outfitmatcher/backend/internal/models"
)

// GenerateOutfits enumerates every valid outfit containing the selected
// item. The caller guarantees selected is a member of closet. Candidate
// combinations branch on what was selected, each one is filtered through the
// color rules, and duplicates (same member set reached through different
// paths) are collapsed by outfit id keeping the first seen. Iteration
// follows closet insertion order, so results are deterministic.
func GenerateOutfits(selected models.ClothingItem, closet []models.ClothingItem) []models.Outfit {
	var shirts, layers, bottoms, dresses []models.ClothingItem
	for _, item := range closet {
		switch {
		case IsShirt(item):
			shirts = append(shirts, item)
		case IsLayer(item):
			layers = append(layers, item)
		case IsBottom(item):
			bottoms = append(bottoms, item)
		case IsDress(item):
			dresses = append(dresses, item)
		}
	}

	var outfits []models.Outfit

	maybeAdd := func(items ...models.ClothingItem) {
		found := false
		for _, it := range items {
			if it.ID == selected.ID {
				found = true
				break
			}
		}
		if !found {
			return
		}
		if !OutfitColorsOK(items) {
			return
		}
		outfits = append(outfits, models.Outfit(items))
	}

	switch {
	case IsLayer(selected):
		// layer + short-sleeve shirt + bottom
		for _, top := range shirts {
			if top.SleeveLength != models.SleeveShort {
				continue
			}
			for _, bottom := range bottoms {
				maybeAdd(selected, top, bottom)
			}
		}
		// layer + sleeveless/short dress
		for _, dress := range dresses {
			if dress.SleeveLength != models.SleeveSleeveless && dress.SleeveLength != models.SleeveShort {
				continue
			}
			maybeAdd(selected, dress)
		}

	case IsShirt(selected):
		for _, bottom := range bottoms {
			maybeAdd(selected, bottom)
		}
		// a short-sleeve shirt can optionally take a layer
		if selected.SleeveLength == models.SleeveShort {
			for _, layer := range layers {
				for _, bottom := range bottoms {
					if !CanLayerOverTop(&selected, &layer) {
						continue
					}
					maybeAdd(layer, selected, bottom)
				}
			}
		}

	case IsDress(selected):
		// a dress works alone
		maybeAdd(selected)
		if selected.SleeveLength == models.SleeveSleeveless || selected.SleeveLength == models.SleeveShort {
			for _, layer := range layers {
				if !CanLayerOverDress(&selected, &layer) {
					continue
				}
				maybeAdd(layer, selected)
			}
		}

	case IsBottom(selected):
		for _, top := range shirts {
			maybeAdd(top, selected)

			if top.SleeveLength == models.SleeveShort {
				for _, layer := range layers {
					if !CanLayerOverTop(&top, &layer) {
						continue
					}
					maybeAdd(layer, top, selected)
				}
			}
		}
	}

	return dedupeOutfits(outfits)
}

func dedupeOutfits(outfits []models.Outfit) []models.Outfit {
	seen := make(map[string]bool, len(outfits))
	out := make([]models.Outfit, 0, len(outfits))
	for _, o := range outfits {
		key := models.OutfitID(o)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, o)
	}
	return out
}

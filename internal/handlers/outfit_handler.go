package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/middleware"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/services"
)

type OutfitHandler struct {
	outfits *services.OutfitService
	log     *zap.Logger
}

func NewOutfitHandler(outfits *services.OutfitService, log *zap.Logger) *OutfitHandler {
	return &OutfitHandler{outfits: outfits, log: log}
}

// GenerateOutfits proposes every valid combination around the anchor item.
// Zero results is a normal answer and comes back 200 with a hint, not an
// error.
func (h *OutfitHandler) GenerateOutfits(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	itemID := chi.URLParam(r, "itemId")

	outfits, err := h.outfits.Generate(r.Context(), profileID, itemID)
	if err != nil {
		if err == services.ErrItemNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Item not found"))
			return
		}
		h.log.Error("generate outfits failed",
			zap.String("profile_id", profileID),
			zap.String("item_id", itemID),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to generate outfits"))
		return
	}

	if len(outfits) == 0 {
		writeJSON(w, http.StatusOK, models.NewMessageResponse([]models.GeneratedOutfit{},
			"No outfits found with the current rules and colors. Try adding more items or different colors."))
		return
	}

	plural := "s"
	if len(outfits) == 1 {
		plural = ""
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse(outfits,
		fmt.Sprintf("Found %d outfit%s.", len(outfits), plural)))
}

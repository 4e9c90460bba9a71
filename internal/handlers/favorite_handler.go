package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/middleware"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/services"
)

type FavoriteHandler struct {
	favorites *services.FavoriteService
	log       *zap.Logger
}

func NewFavoriteHandler(favorites *services.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, log: log}
}

// ToggleFavorite flips the favorite for an outfit identified by its member
// item ids and reports the state after the flip.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	var req models.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	favorited, err := h.favorites.Toggle(r.Context(), profileID, req.ItemIDs)
	if err != nil {
		if err == services.ErrFavoriteBadItems {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Outfit references items not in your closet"))
			return
		}
		h.log.Error("toggle favorite failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to toggle favorite"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]bool{"favorited": favorited}))
}

func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	favorites, err := h.favorites.List(r.Context(), profileID)
	if err != nil {
		h.log.Error("list favorites failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to list favorites"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(favorites))
}

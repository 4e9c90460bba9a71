package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/middleware"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/services"
)

type ClosetHandler struct {
	closet *services.ClosetService
	log    *zap.Logger
}

func NewClosetHandler(closet *services.ClosetService, log *zap.Logger) *ClosetHandler {
	return &ClosetHandler{closet: closet, log: log}
}

func (h *ClosetHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	items, err := h.closet.List(r.Context(), profileID)
	if err != nil {
		h.log.Error("list items failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to load closet"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(items))
}

func (h *ClosetHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	item, err := h.closet.Add(r.Context(), profileID, &req)
	if err != nil {
		if err == services.ErrClosetFull {
			writeJSON(w, http.StatusConflict, models.NewErrorResponse(
				fmt.Sprintf("Closet is full (max %d). Delete an item or clear closet.", models.MaxClosetItems)))
			return
		}
		h.log.Error("add item failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to save item"))
		return
	}

	writeJSON(w, http.StatusCreated, models.NewSuccessResponse(item))
}

func (h *ClosetHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	itemID := chi.URLParam(r, "itemId")

	if err := h.closet.Delete(r.Context(), profileID, itemID); err != nil {
		if err == services.ErrItemNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Item not found"))
			return
		}
		h.log.Error("delete item failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete item"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]string{"message": "Item deleted"}))
}

func (h *ClosetHandler) ClearCloset(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	if err := h.closet.Clear(r.Context(), profileID); err != nil {
		h.log.Error("clear closet failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to clear closet"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(map[string]string{
		"message": "Closet cleared (and favorites cleared)",
	}))
}

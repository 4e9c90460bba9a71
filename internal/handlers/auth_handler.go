package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/middleware"
	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/services"
	"github.com/outfitmatcher/backend/internal/storage"
)

type AuthHandler struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

func NewAuthHandler(profiles *services.ProfileService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{profiles: profiles, log: log}
}

// Login exchanges a display name for a session token. Same name, same
// profile, same closet.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	resp, err := h.profiles.Login(r.Context(), req.Name)
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Login failed"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(resp))
}

// LoginGuest opens the shared guest profile without asking for a name.
func (h *AuthHandler) LoginGuest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.profiles.Login(r.Context(), "")
	if err != nil {
		h.log.Error("guest login failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Login failed"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(resp))
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.GetProfileID(r.Context())
	if profileID == "" {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Unauthorized"))
		return
	}

	prof, err := h.profiles.Get(r.Context(), profileID)
	if err != nil {
		if err == storage.ErrProfileNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Profile not found"))
			return
		}
		h.log.Error("get profile failed", zap.String("profile_id", profileID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to load profile"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewSuccessResponse(prof))
}

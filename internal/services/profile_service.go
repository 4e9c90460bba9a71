package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/outfitmatcher/backend/internal/models"
	"github.com/outfitmatcher/backend/internal/storage"
)

const guestName = "Guest"

// ProfileService handles the demo login: a display name is slugged into a
// stable profile id and exchanged for a session token. There are no
// passwords and no accounts; the token only tells the API whose closet a
// request is about.
type ProfileService struct {
	store         storage.Store
	sessionSecret string
	tokenTTL      time.Duration
	log           *zap.Logger
}

func NewProfileService(store storage.Store, sessionSecret string, tokenTTL time.Duration, log *zap.Logger) *ProfileService {
	return &ProfileService{
		store:         store,
		sessionSecret: sessionSecret,
		tokenTTL:      tokenTTL,
		log:           log,
	}
}

// Login resolves (or creates) the profile for the given name and issues a
// session token. An empty name falls back to the guest profile.
func (s *ProfileService) Login(ctx context.Context, name string) (*models.AuthResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = guestName
	}
	profileID := models.MakeProfileID(name)

	prof, err := s.store.LoadProfile(ctx, profileID)
	if err == storage.ErrProfileNotFound {
		prof = &models.Profile{
			ID:        profileID,
			Name:      name,
			CreatedAt: time.Now(),
		}
		if err := s.store.SaveProfile(ctx, prof); err != nil {
			return nil, fmt.Errorf("save profile: %w", err)
		}
		s.log.Info("profile created", zap.String("profile_id", profileID))
	} else if err != nil {
		return nil, err
	}

	token, err := s.generateToken(prof.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &models.AuthResponse{Token: token, Profile: *prof}, nil
}

func (s *ProfileService) Get(ctx context.Context, profileID string) (*models.Profile, error) {
	return s.store.LoadProfile(ctx, profileID)
}

func (s *ProfileService) generateToken(profileID string) (string, error) {
	claims := jwt.MapClaims{
		"profile_id": profileID,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

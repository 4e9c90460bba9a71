package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/outfitmatcher/backend/internal/models"
)

type contextKey string

const ProfileIDKey contextKey = "profileID"

// SessionAuth validates the bearer session token and puts the profile id on
// the request context. The token is not an authentication credential (login
// is name-only with a guest fallback); it only scopes the request to a
// closet.
func SessionAuth(sessionSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Authorization header required"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid authorization header format"))
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(sessionSecret), nil
			})
			if err != nil || !token.Valid {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid or expired session token"))
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid token claims"))
				return
			}

			profileID, ok := claims["profile_id"].(string)
			if !ok || profileID == "" {
				writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid profile in token"))
				return
			}

			ctx := context.WithValue(r.Context(), ProfileIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfileID extracts the profile id from context.
func GetProfileID(ctx context.Context) string {
	profileID, ok := ctx.Value(ProfileIDKey).(string)
	if !ok {
		return ""
	}
	return profileID
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

package models

import (
	"regexp"
	"strings"
	"time"
)

// Profile identifies a closet owner. There are no accounts or passwords;
// a profile is just a display name slugged into a stable id, with a guest
// fallback.
type Profile struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type LoginRequest struct {
	Name string `json:"name"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "Enter a name or continue as guest"
	}

	return errors
}

type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

var profileSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// MakeProfileID slugs a display name into a profile id: lowercase, runs of
// non-alphanumerics collapsed to "_", truncated to 24 chars, "guest" when
// nothing usable remains. The same name always maps to the same id, so
// logging in again reopens the same closet.
func MakeProfileID(name string) string {
	base := profileSlugPattern.ReplaceAllString(strings.ToLower(name), "_")
	if len(base) > 24 {
		base = base[:24]
	}
	if base == "" {
		base = "guest"
	}
	return "p_" + base
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileLoginCreatesAndReuses(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store, "test-secret", time.Hour, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Login(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "p_alice", first.Profile.ID)
	assert.Equal(t, "Alice", first.Profile.Name)
	assert.NotEmpty(t, first.Token)

	second, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.Profile.ID, second.Profile.ID, "same name reopens the same profile")
	assert.True(t, first.Profile.CreatedAt.Equal(second.Profile.CreatedAt))
}

func TestProfileLoginGuestFallback(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store, "test-secret", time.Hour, zap.NewNop())

	resp, err := svc.Login(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "p_guest", resp.Profile.ID)
	assert.Equal(t, "Guest", resp.Profile.Name)
}

func TestProfileTokenCarriesProfileID(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store, "test-secret", time.Hour, zap.NewNop())

	resp, err := svc.Login(context.Background(), "Bob")
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "p_bob", claims["profile_id"])
}

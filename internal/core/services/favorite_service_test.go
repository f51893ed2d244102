package services

import (
	"context"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteToggle(t *testing.T) {
	store := memory.NewStore()
	svc := NewFavoriteService(store.Favorites, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	favorited, err := svc.Toggle(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, favorited, "first toggle adds")

	isFav, err := svc.IsFavorite(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, isFav)

	favorited, err = svc.Toggle(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, favorited, "second toggle removes")

	isFav, err = svc.IsFavorite(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestFavoriteToggleUnknownClub(t *testing.T) {
	store := memory.NewStore()
	svc := NewFavoriteService(store.Favorites, store.Clubs)

	_, err := svc.Toggle(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestFavoritesAreIndependent(t *testing.T) {
	store := memory.NewStore()
	svc := NewFavoriteService(store.Favorites, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	_, err := svc.Toggle(ctx, "u1", "1")
	require.NoError(t, err)

	// u1's favorite does not leak into u2's set
	isFav, err := svc.IsFavorite(ctx, "u2", "1")
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestListFavorites(t *testing.T) {
	store := memory.NewStore()
	svc := NewFavoriteService(store.Favorites, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")
	seedClub(t, store, "2", "Chess Club", "Academic")

	_, err := svc.Toggle(ctx, "u1", "2")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "u1", "1")
	require.NoError(t, err)

	clubs, err := svc.ListFavorites(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Chess Club", clubs[0].Name, "favorites list in toggle order")
	assert.Equal(t, "Robotics Club", clubs[1].Name)

	clubs, err = svc.ListFavorites(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

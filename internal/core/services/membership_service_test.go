package services

import (
	"context"
	"sync"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndLeave(t *testing.T) {
	store := memory.NewStore()
	svc := NewMembershipService(store.Memberships, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	require.NoError(t, svc.Join(ctx, "u1", "1"))

	isMember, err := svc.IsMember(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, isMember)

	// Joining again is a no-op, not an error
	require.NoError(t, svc.Join(ctx, "u1", "1"))
	members, err := svc.MembersOf(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, members.Count, "double join leaves a single membership")

	require.NoError(t, svc.Leave(ctx, "u1", "1"))
	isMember, err = svc.IsMember(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, isMember)

	// Leaving a club never joined is a no-op too
	require.NoError(t, svc.Leave(ctx, "u1", "1"))
}

func TestJoinUnknownClub(t *testing.T) {
	store := memory.NewStore()
	svc := NewMembershipService(store.Memberships, store.Clubs)

	err := svc.Join(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestMembersOfOrdering(t *testing.T) {
	store := memory.NewStore()
	svc := NewMembershipService(store.Memberships, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	require.NoError(t, svc.Join(ctx, "u1", "1"))
	require.NoError(t, svc.Join(ctx, "u2", "1"))
	require.NoError(t, svc.Join(ctx, "u3", "1"))

	members, err := svc.MembersOf(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, members.Count)
	assert.Equal(t, []string{"u1", "u2", "u3"}, members.UserIDs, "roster is oldest-first")

	_, err = svc.MembersOf(ctx, "missing")
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubsOf(t *testing.T) {
	store := memory.NewStore()
	svc := NewMembershipService(store.Memberships, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")
	seedClub(t, store, "2", "Chess Club", "Academic")

	require.NoError(t, svc.Join(ctx, "u1", "1"))
	require.NoError(t, svc.Join(ctx, "u1", "2"))

	clubs, err := svc.ClubsOf(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Robotics Club", clubs[0].Name)
	assert.Equal(t, "Chess Club", clubs[1].Name)

	// A user with no memberships gets an empty list, not an error
	clubs, err = svc.ClubsOf(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

func TestConcurrentJoins(t *testing.T) {
	store := memory.NewStore()
	svc := NewMembershipService(store.Memberships, store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Join(ctx, "u1", "1")
		}()
	}
	wg.Wait()

	members, err := svc.MembersOf(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, members.Count, "concurrent joins collapse to one edge")
}

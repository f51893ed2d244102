package services

import (
	"context"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signupPendingAdmin registers an admin and returns (userID, notificationID)
func signupPendingAdmin(t *testing.T, store *memory.Store, email string) (string, string) {
	t.Helper()
	authSvc := newAuthService(store)

	result, err := authSvc.Signup(context.Background(), &SignupInput{
		Email:    email,
		Password: "secret123",
		Name:     "Pending Admin",
		Role:     "admin",
		ClubID:   "1",
	})
	require.NoError(t, err)

	notifications, err := store.Notifications.ListUnread(context.Background())
	require.NoError(t, err)
	for _, n := range notifications {
		if n.UserID == result.User.ID {
			return result.User.ID, n.ID
		}
	}
	t.Fatalf("no notification enqueued for %s", email)
	return "", ""
}

func TestApproveAdmin(t *testing.T) {
	store := memory.NewStore()
	svc := NewNotificationService(store.Notifications, store.Users)
	ctx := context.Background()

	userID, notificationID := signupPendingAdmin(t, store, "approve-me@school.edu")

	require.NoError(t, svc.ApproveAdmin(ctx, userID, notificationID))

	// Both halves applied: user approved, notification read
	user, err := store.Users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, user.IsApproved)

	count, err := svc.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Approved admin can now log in
	authSvc := newAuthService(store)
	_, err = authSvc.Login(ctx, &LoginInput{Email: "approve-me@school.edu", Password: "secret123"})
	assert.NoError(t, err)
}

func TestApproveAdminIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := NewNotificationService(store.Notifications, store.Users)
	ctx := context.Background()

	userID, notificationID := signupPendingAdmin(t, store, "twice@school.edu")

	require.NoError(t, svc.ApproveAdmin(ctx, userID, notificationID))
	// Re-approving an already processed request is a no-op success
	assert.NoError(t, svc.ApproveAdmin(ctx, userID, notificationID))
}

func TestApproveAdminMismatch(t *testing.T) {
	store := memory.NewStore()
	svc := NewNotificationService(store.Notifications, store.Users)
	ctx := context.Background()

	userA, notifA := signupPendingAdmin(t, store, "a@school.edu")
	userB, _ := signupPendingAdmin(t, store, "b@school.edu")

	// A's notification does not approve B
	err := svc.ApproveAdmin(ctx, userB, notifA)
	assert.ErrorIs(t, err, ErrNotificationMismatch)

	// Nothing was mutated
	user, err := store.Users.GetByID(ctx, userA)
	require.NoError(t, err)
	assert.False(t, user.IsApproved)
	user, err = store.Users.GetByID(ctx, userB)
	require.NoError(t, err)
	assert.False(t, user.IsApproved)
}

func TestApproveAdminUnknownNotification(t *testing.T) {
	store := memory.NewStore()
	svc := NewNotificationService(store.Notifications, store.Users)

	err := svc.ApproveAdmin(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestListPendingNewestFirst(t *testing.T) {
	store := memory.NewStore()
	svc := NewNotificationService(store.Notifications, store.Users)
	ctx := context.Background()

	signupPendingAdmin(t, store, "first@school.edu")
	signupPendingAdmin(t, store, "second@school.edu")

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	count, err := svc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

package services

import (
	"context"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  60,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthService(store *memory.Store) *AuthService {
	return NewAuthService(store.Users, store.RefreshTokens, store.Notifications, testConfig())
}

func TestSignupStudent(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	result, err := svc.Signup(ctx, &SignupInput{
		Email:    "Student@School.edu",
		Password: "secret123",
		Name:     "Test Student",
		Role:     "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "student", result.User.Role)
	assert.True(t, result.User.IsApproved, "students are auto-approved")
	assert.NotEmpty(t, result.AccessToken, "students get a session immediately")
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "student@school.edu", result.User.Email, "emails are stored lowercased")

	count, err := store.Notifications.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "student signups enqueue no approval notification")
}

func TestSignupAdminPendingApproval(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	result, err := svc.Signup(ctx, &SignupInput{
		Email:    "admin@school.edu",
		Password: "secret123",
		Name:     "Club Admin",
		Role:     "admin",
		ClubID:   "1",
		ClubName: "Robotics Club",
	})
	require.NoError(t, err)

	assert.False(t, result.User.IsApproved)
	assert.Empty(t, result.AccessToken, "pending admins get no session")
	assert.Empty(t, result.RefreshToken)

	notifications, err := store.Notifications.ListUnread(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1, "exactly one approval notification per admin signup")
	assert.Equal(t, result.User.ID, notifications[0].UserID)
	require.NotNil(t, notifications[0].ClubName)
	assert.Equal(t, "Robotics Club", *notifications[0].ClubName)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupInput{
		Email:    "taken@school.edu",
		Password: "secret123",
		Name:     "First",
		Role:     "student",
	})
	require.NoError(t, err)

	// Same email, different case
	_, err = svc.Signup(ctx, &SignupInput{
		Email:    "Taken@School.edu",
		Password: "secret123",
		Name:     "Second",
		Role:     "student",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupRejectsSuperAdminRole(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)

	_, err := svc.Signup(context.Background(), &SignupInput{
		Email:    "sneaky@school.edu",
		Password: "secret123",
		Name:     "Sneaky",
		Role:     "super_admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupInput{
		Email:    "login@school.edu",
		Password: "secret123",
		Name:     "Login Test",
		Role:     "student",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &LoginInput{
		Email:    "LOGIN@school.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	// Wrong password and unknown email both map to the same error
	_, err = svc.Login(ctx, &LoginInput{Email: "login@school.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@school.edu", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPendingAdmin(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupInput{
		Email:    "pending@school.edu",
		Password: "secret123",
		Name:     "Pending Admin",
		Role:     "admin",
	})
	require.NoError(t, err)

	// Correct password on an unapproved account is Forbidden, not
	// Unauthorized, so the client can show the right message.
	_, err = svc.Login(ctx, &LoginInput{Email: "pending@school.edu", Password: "secret123"})
	assert.ErrorIs(t, err, ErrPendingApproval)

	// A wrong password still reads as bad credentials
	_, err = svc.Login(ctx, &LoginInput{Email: "pending@school.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifySessionLiveApprovalCheck(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &SignupInput{
		Email:    "verify@school.edu",
		Password: "secret123",
		Name:     "Verify Test",
		Role:     "student",
	})
	require.NoError(t, err)

	user, err := svc.VerifySession(ctx, signup.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, user.ID)

	_, err = svc.VerifySession(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRotation(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &SignupInput{
		Email:    "rotate@school.edu",
		Password: "secret123",
		Name:     "Rotate Test",
		Role:     "student",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, signup.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, signup.RefreshToken, refreshed.RefreshToken)

	// The exchanged token is dead; replaying it must fail
	_, err = svc.Refresh(ctx, signup.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The rotated token still works
	_, err = svc.Refresh(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &SignupInput{
		Email:    "logout@school.edu",
		Password: "secret123",
		Name:     "Logout Test",
		Role:     "student",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, signup.RefreshToken))

	_, err = svc.Refresh(ctx, signup.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("u1", "user@school.edu", "student", testSecret, 60)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user@school.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("u1", "user@school.edu", "student", testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("u1", "user@school.edu", "student", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("u1", "tok-1", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "tok-1", claims.TokenID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	// An access token must not validate as a refresh token when the
	// secrets differ
	access, err := GenerateAccessToken("u1", "user@school.edu", "student", "access-secret", 60)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(access, "refresh-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

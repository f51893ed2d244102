package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrong", hash))
	assert.False(t, Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret123")
	require.NoError(t, err)
	h2, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("refresh-token-value")
	h2 := HashToken("refresh-token-value")
	assert.Equal(t, h1, h2, "token hashing is deterministic")
	assert.Len(t, h1, 64, "sha256 hex digest")
	assert.NotEqual(t, h1, HashToken("other-token"))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("123456"))
	assert.True(t, Validate("a-much-longer-password"))
	assert.False(t, Validate("12345"))
	assert.False(t, Validate(""))
}

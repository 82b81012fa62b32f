package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", digest)
	assert.True(t, strings.HasPrefix(digest, "$2"), "expected a bcrypt digest, got %q", digest)
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret123", digest))
	assert.False(t, CheckPassword("wrongpass", digest))
	assert.False(t, CheckPassword("secret123", "not-a-digest"))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

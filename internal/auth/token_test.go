package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"), time.Hour)

	token, err := codec.Issue("author-123", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "author-123", identity.AuthorID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), -1*time.Second)

	token, err := codec.Issue("author-1", "a@b.com")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	issued := NewTokenCodec([]byte("right-secret"), time.Hour)
	token, err := issued.Issue("author-2", "b@c.com")
	require.NoError(t, err)

	verifier := NewTokenCodec([]byte("wrong-secret"), time.Hour)
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("k"), time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

// All verification failures must be indistinguishable to the caller
func TestTokenCodec_UniformFailure(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), time.Hour)
	expired := NewTokenCodec([]byte("secret"), -time.Minute)
	foreign := NewTokenCodec([]byte("other"), time.Hour)

	expiredToken, err := expired.Issue("a", "a@b.com")
	require.NoError(t, err)
	foreignToken, err := foreign.Issue("a", "a@b.com")
	require.NoError(t, err)

	_, errMalformed := codec.Verify("x.y.z")
	_, errExpired := codec.Verify(expiredToken)
	_, errBadSig := codec.Verify(foreignToken)

	assert.Equal(t, errMalformed, errExpired)
	assert.Equal(t, errExpired, errBadSig)
}

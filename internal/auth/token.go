package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any verification failure. Malformed,
// badly signed, and expired tokens are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid session token")

// Identity is the resolved author carried by a verified session token
type Identity struct {
	AuthorID string
	Email    string
}

// Claims embeds the registered claims plus the author identity
type Claims struct {
	jwt.RegisteredClaims
	AuthorID string `json:"authorId"`
	Email    string `json:"email"`
}

// TokenCodec signs and verifies session tokens. The signing secret is
// process-wide configuration; rotating it invalidates outstanding tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given secret and token lifetime
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding the author identity with an
// absolute expiry of the codec's lifetime from now
func (c *TokenCodec) Issue(authorID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		AuthorID: authorID,
		Email:    email,
	})
	return token.SignedString(c.secret)
}

// Verify parses and checks a token, returning the embedded identity.
// Every failure mode yields ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{AuthorID: claims.AuthorID, Email: claims.Email}, nil
}

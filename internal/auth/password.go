package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext.
// The plaintext is never stored or logged.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// Comparison is delegated to bcrypt, which is constant-time safe.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Package auth provides password hashing and JWT token handling for the CMS.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed cost factor for password hashing.
const bcryptCost = 12

// HashPassword produces a salted bcrypt digest of the plaintext. The
// plaintext is never stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
// A malformed digest fails closed: the function returns false rather than
// surfacing an error the caller could leak.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

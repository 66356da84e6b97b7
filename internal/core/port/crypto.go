package port

import "github.com/keizo-yamashita/user-service/internal/core/domain"

// PasswordHasher applies a slow, salted one-way hash to plaintext passwords.
type PasswordHasher interface {
	// Hash derives a new hash for the plaintext. Each call produces a
	// different value for the same input due to the random salt.
	Hash(plaintext string) (domain.PasswordHash, error)
	// Verify reports whether the plaintext matches the stored hash. It never
	// fails on a mismatch, only returns false.
	Verify(plaintext string, hash domain.PasswordHash) bool
}

// TokenService issues and verifies signed, expiring bearer tokens bound to a
// user id.
type TokenService interface {
	Issue(id domain.UserID) (string, error)
	// Verify validates signature and expiry and returns the subject user id.
	// Invalid, expired, or subject-less tokens fail with a business error
	// carrying CodeInvalidToken.
	Verify(token string) (domain.UserID, error)
}

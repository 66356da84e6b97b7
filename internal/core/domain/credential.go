package domain

import (
	"time"

	"github.com/keizo-yamashita/user-service/internal/apperr"
)

const minPasswordHashLength = 10

// PasswordHash wraps an already-hashed password. It never stores or derives
// from plaintext; hashing happens only in the password service.
type PasswordHash struct {
	value string
}

// NewPasswordHash validates and wraps a hashed password.
func NewPasswordHash(value string) (PasswordHash, error) {
	if value == "" {
		return PasswordHash{}, apperr.Validation("password hash is empty")
	}
	if len(value) < minPasswordHashLength {
		return PasswordHash{}, apperr.Validation("password hash is too short")
	}
	return PasswordHash{value: value}, nil
}

// String returns the stored hash.
func (h PasswordHash) String() string { return h.value }

// Credential holds the password hash for a user. It is one-to-one with its
// user: UserID is the credential's identity, and deleting the user cascades
// to the credential at the storage boundary.
type Credential struct {
	UserID       UserID
	PasswordHash PasswordHash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCredential binds a password hash to a user id with fresh timestamps.
func NewCredential(userID UserID, hash PasswordHash) Credential {
	now := time.Now().UTC()
	return Credential{
		UserID:       userID,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Equal compares credentials by owning user id only.
func (c Credential) Equal(other Credential) bool { return c.UserID.Equal(other.UserID) }

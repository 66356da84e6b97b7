package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
)

// bcrypt silently ignores input beyond 72 bytes; rejecting longer plaintexts
// keeps the full password significant.
const maxPasswordBytes = 72

// PasswordService hashes and verifies passwords with bcrypt.
type PasswordService struct {
	cost int
}

// NewPasswordService constructs a PasswordService. A cost outside bcrypt's
// supported range falls back to the library default.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash derives a salted bcrypt hash for the plaintext. The salt is generated
// internally, so repeated calls yield different hashes for the same input.
func (s *PasswordService) Hash(plaintext string) (domain.PasswordHash, error) {
	if len(plaintext) > maxPasswordBytes {
		return domain.PasswordHash{}, apperr.Validation("password exceeds %d bytes", maxPasswordBytes)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return domain.PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}

	return domain.NewPasswordHash(string(hashed))
}

// Verify compares the plaintext against the stored hash in constant time.
// A mismatch returns false, never an error.
func (s *PasswordService) Verify(plaintext string, hash domain.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash.String()), []byte(plaintext)) == nil
}

var _ port.PasswordHasher = (*PasswordService)(nil)

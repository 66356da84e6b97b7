package port

import (
	"context"

	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

// UserRepository exposes persistence behavior for users.
//
// Absent rows surface as business errors carrying CodeUserNotFound; a
// duplicate email surfaces as CodeEmailAlreadyExists. Infrastructure faults
// surface as technical errors with the database codes.
type UserRepository interface {
	// ListAll returns every stored user in unspecified order. An empty store
	// yields an empty slice, never an error.
	ListAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (domain.User, error)
	FindByEmail(ctx context.Context, email domain.EmailAddress) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
	// Delete removes the user and, by cascade, its credential. The deleted id
	// is returned for confirmation.
	Delete(ctx context.Context, id domain.UserID) (domain.UserID, error)
}

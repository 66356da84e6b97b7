package domain

import (
	"time"

	uuid "github.com/google/uuid"

	"github.com/keizo-yamashita/user-service/internal/apperr"
)

// Role enumerates the permission level of a user.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleMember     Role = "member"
)

// DefaultRole is applied when no role is supplied.
const DefaultRole = RoleMember

// ParseRole validates a stored role code. Anything outside the enumeration is
// rejected so an invalid role can never be constructed from external input.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleSuperAdmin, RoleAdmin, RoleMember:
		return Role(value), nil
	}
	return "", apperr.Validation("invalid role: %q", value)
}

// UserID uniquely identifies a user. Equality of users is defined by this
// value alone.
type UserID struct {
	value string
}

// NewUserID generates a fresh random identifier in canonical UUID form.
func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID wraps an existing identifier string.
func ParseUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{}, apperr.Validation("user id is empty")
	}
	return UserID{value: value}, nil
}

// String returns the identifier value.
func (id UserID) String() string { return id.value }

// Equal reports identity equality.
func (id UserID) Equal(other UserID) bool { return id.value == other.value }

// IsZero reports whether the identifier is unset.
func (id UserID) IsZero() bool { return id.value == "" }

const (
	minUserNameLength = 1
	maxUserNameLength = 100
)

// UserName is a display name between 1 and 100 characters without NUL bytes.
type UserName struct {
	value string
}

// NewUserName validates and wraps a user name.
func NewUserName(value string) (UserName, error) {
	for _, r := range value {
		if r == 0 {
			return UserName{}, apperr.Validation("user name contains null character")
		}
	}
	if len([]rune(value)) < minUserNameLength {
		return UserName{}, apperr.Validation("user name is less than %d character", minUserNameLength)
	}
	if len([]rune(value)) > maxUserNameLength {
		return UserName{}, apperr.Validation("user name is more than %d characters", maxUserNameLength)
	}
	return UserName{value: value}, nil
}

// String returns the name value.
func (n UserName) String() string { return n.value }

// User is the identity-bearing aggregate for an account. Two users with the
// same ID are the same user regardless of the other fields.
type User struct {
	ID        UserID
	Email     EmailAddress
	Name      UserName
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser assembles a user from validated value objects, generating a fresh
// ID and timestamps.
func NewUser(email EmailAddress, name UserName, role Role) User {
	now := time.Now().UTC()
	if role == "" {
		role = DefaultRole
	}
	return User{
		ID:        NewUserID(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Equal compares users by identity only.
func (u User) Equal(other User) bool { return u.ID.Equal(other.ID) }

// CanDeleteUsers reports whether this user's role permits user deletion.
// Enforcement is the caller's responsibility; see DeleteUserUseCase.IsAllowed.
func (u User) CanDeleteUsers() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin
}

package port

import (
	"context"

	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

// CredentialRepository exposes persistence behavior for credentials. A
// credential is one-to-one with its user: saving a second credential for the
// same user id fails with CodeCredentialAlreadyExists, and lookups of absent
// rows fail with CodeCredentialNotFound.
type CredentialRepository interface {
	Save(ctx context.Context, credential domain.Credential) (domain.Credential, error)
	FindByUserID(ctx context.Context, id domain.UserID) (domain.Credential, error)
	DeleteByUserID(ctx context.Context, id domain.UserID) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
)

// CredentialRepository implements port.CredentialRepository using PostgreSQL.
type CredentialRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewCredentialRepository wires a PostgreSQL-backed credential repository.
func NewCredentialRepository(db pgExecutor) *CredentialRepository {
	return &CredentialRepository{
		exec:    db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save inserts a new credential row. A second credential for the same user
// surfaces as the CredentialAlreadyExists business error.
func (r *CredentialRepository) Save(ctx context.Context, cred domain.Credential) (domain.Credential, error) {
	stmt, args, err := r.builder.
		Insert("credentials").
		Columns("user_id", "password_hash", "created_at", "updated_at").
		Values(cred.UserID.String(), cred.PasswordHash.String(), cred.CreatedAt, cred.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("build insert credential sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err, "") {
			return domain.Credential{}, apperr.BusinessWrap(apperr.CodeCredentialAlreadyExists, err, map[string]any{"user_id": cred.UserID.String()})
		}
		return domain.Credential{}, apperr.Technical(apperr.CodeDatabaseOperationFailed, err, nil)
	}

	return cred, nil
}

// FindByUserID retrieves the credential belonging to a user.
func (r *CredentialRepository) FindByUserID(ctx context.Context, id domain.UserID) (domain.Credential, error) {
	stmt, args, err := r.builder.
		Select("user_id", "password_hash", "created_at", "updated_at").
		From("credentials").
		Where(squirrel.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("build select credential sql: %w", err)
	}

	var (
		userIDValue string
		hashValue   string
		createdAt   time.Time
		updatedAt   time.Time
	)
	err = r.exec.QueryRow(ctx, stmt, args...).Scan(&userIDValue, &hashValue, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Credential{}, apperr.Business(apperr.CodeCredentialNotFound, map[string]any{"user_id": id.String()})
		}
		return domain.Credential{}, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
	}

	userID, err := domain.ParseUserID(userIDValue)
	if err != nil {
		return domain.Credential{}, apperr.Technical(apperr.CodeDatabaseQueryFailed, fmt.Errorf("parse user id: %w", err), nil)
	}
	hash, err := domain.NewPasswordHash(hashValue)
	if err != nil {
		return domain.Credential{}, apperr.Technical(apperr.CodeDatabaseQueryFailed, fmt.Errorf("parse password hash: %w", err), nil)
	}

	return domain.Credential{
		UserID:       userID,
		PasswordHash: hash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// DeleteByUserID removes the credential for a user. Deleting a credential
// that does not exist is reported as CredentialNotFound rather than ignored.
func (r *CredentialRepository) DeleteByUserID(ctx context.Context, id domain.UserID) error {
	stmt, args, err := r.builder.
		Delete("credentials").
		Where(squirrel.Eq{"user_id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete credential sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return apperr.Technical(apperr.CodeDatabaseOperationFailed, err, nil)
	}

	if ct.RowsAffected() == 0 {
		return apperr.Business(apperr.CodeCredentialNotFound, map[string]any{"user_id": id.String()})
	}

	return nil
}

var _ port.CredentialRepository = (*CredentialRepository)(nil)

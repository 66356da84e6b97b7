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

// UserRepository implements port.UserRepository using PostgreSQL.
type UserRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewUserRepository wires a PostgreSQL-backed user repository.
func NewUserRepository(db pgExecutor) *UserRepository {
	return &UserRepository{
		exec:    db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListAll returns every stored user, order unspecified.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	stmt, args, err := r.builder.
		Select("id", "email", "name", "role", "created_at").
		From("users").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
	}

	return users, nil
}

// FindByID retrieves a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	stmt, args, err := r.builder.
		Select("id", "email", "name", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build select user sql: %w", err)
	}

	user, err := scanUser(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"user_id": id.String()})
		}
		return domain.User{}, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
	}

	return user, nil
}

// FindByEmail retrieves a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email domain.EmailAddress) (domain.User, error) {
	stmt, args, err := r.builder.
		Select("id", "email", "name", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email.String()}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build select user by email sql: %w", err)
	}

	user, err := scanUser(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"email": email.String()})
		}
		return domain.User{}, apperr.Technical(apperr.CodeDatabaseQueryFailed, err, nil)
	}

	return user, nil
}

// Save inserts a new user row. A duplicate email surfaces as the
// EmailAlreadyExists business error; any other storage fault is technical.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	stmt, args, err := r.builder.
		Insert("users").
		Columns("id", "email", "name", "role", "created_at").
		Values(user.ID.String(), user.Email.String(), user.Name.String(), string(user.Role), user.CreatedAt).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build insert user sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		if isUniqueViolation(err, "") {
			return domain.User{}, apperr.BusinessWrap(apperr.CodeEmailAlreadyExists, err, map[string]any{"email": user.Email.String()})
		}
		return domain.User{}, apperr.Technical(apperr.CodeDatabaseOperationFailed, err, nil)
	}

	return user, nil
}

// Delete physically removes the user; the credential goes with it via the
// ON DELETE CASCADE constraint. The deleted id is returned for confirmation.
func (r *UserRepository) Delete(ctx context.Context, id domain.UserID) (domain.UserID, error) {
	stmt, args, err := r.builder.
		Delete("users").
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return domain.UserID{}, fmt.Errorf("build delete user sql: %w", err)
	}

	ct, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return domain.UserID{}, apperr.Technical(apperr.CodeDatabaseOperationFailed, err, nil)
	}

	if ct.RowsAffected() == 0 {
		return domain.UserID{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"user_id": id.String()})
	}

	return id, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		idValue    string
		emailValue string
		nameValue  string
		roleValue  string
		createdAt  time.Time
	)

	if err := row.Scan(&idValue, &emailValue, &nameValue, &roleValue, &createdAt); err != nil {
		return domain.User{}, err
	}

	id, err := domain.ParseUserID(idValue)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse user id: %w", err)
	}
	email, err := domain.NewEmailAddress(emailValue)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse email: %w", err)
	}
	name, err := domain.NewUserName(nameValue)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse name: %w", err)
	}
	role, err := domain.ParseRole(roleValue)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse role: %w", err)
	}

	return domain.User{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: createdAt,
		// The users table carries no updated_at column; rows are immutable
		// after insert.
		UpdatedAt: createdAt,
	}, nil
}

var _ port.UserRepository = (*UserRepository)(nil)

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
	"github.com/keizo-yamashita/user-service/internal/infra/logger"
)

// CreateUserInput carries raw data for admin-side user creation. No
// credential is created; such users cannot log in.
type CreateUserInput struct {
	Email string
	Name  string
}

// CreateUserUseCase persists a new user without a credential.
type CreateUserUseCase struct {
	users port.UserRepository
	log   *zap.Logger
}

// NewCreateUserUseCase constructs the create-user use case.
func NewCreateUserUseCase(users port.UserRepository, log *zap.Logger) *CreateUserUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateUserUseCase{users: users, log: log}
}

// Execute validates the input and saves the user with the default role.
func (uc *CreateUserUseCase) Execute(ctx context.Context, in CreateUserInput) (domain.User, error) {
	email, err := domain.NewEmailAddress(in.Email)
	if err != nil {
		uc.log.Info("user creation rejected on validation", zap.Error(err))
		return domain.User{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
	}
	name, err := domain.NewUserName(in.Name)
	if err != nil {
		uc.log.Info("user creation rejected on validation", zap.Error(err))
		return domain.User{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
	}

	saved, err := uc.users.Save(ctx, domain.NewUser(email, name, domain.DefaultRole))
	if err != nil {
		uc.log.Info("user creation failed",
			zap.String("email", logger.MaskEmail(in.Email)),
			zap.Error(err))
		return domain.User{}, apperr.FromLower(err)
	}

	uc.log.Info("user created",
		zap.String("user_id", saved.ID.String()),
		zap.String("email", logger.MaskEmail(saved.Email.String())))

	return saved, nil
}

// FindUserUseCase looks up a single user by id.
type FindUserUseCase struct {
	users port.UserRepository
	log   *zap.Logger
}

// NewFindUserUseCase constructs the find-user use case.
func NewFindUserUseCase(users port.UserRepository, log *zap.Logger) *FindUserUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FindUserUseCase{users: users, log: log}
}

// Execute returns the user with the given id.
func (uc *FindUserUseCase) Execute(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		uc.log.Info("user lookup failed", zap.String("user_id", id.String()), zap.Error(err))
		return domain.User{}, apperr.FromLower(err)
	}
	return user, nil
}

// FilterUserUseCase lists every stored user.
type FilterUserUseCase struct {
	users port.UserRepository
	log   *zap.Logger
}

// NewFilterUserUseCase constructs the filter-user use case.
func NewFilterUserUseCase(users port.UserRepository, log *zap.Logger) *FilterUserUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FilterUserUseCase{users: users, log: log}
}

// Execute returns all users; an empty store yields an empty slice.
func (uc *FilterUserUseCase) Execute(ctx context.Context) ([]domain.User, error) {
	users, err := uc.users.ListAll(ctx)
	if err != nil {
		uc.log.Info("user listing failed", zap.Error(err))
		return nil, apperr.FromLower(err)
	}
	return users, nil
}

// DeleteUserUseCase removes a user by id.
type DeleteUserUseCase struct {
	users port.UserRepository
	log   *zap.Logger
}

// NewDeleteUserUseCase constructs the delete-user use case.
func NewDeleteUserUseCase(users port.UserRepository, log *zap.Logger) *DeleteUserUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeleteUserUseCase{users: users, log: log}
}

// Execute loads the user to confirm it exists, then deletes it. The stored
// credential, if any, is removed by the ON DELETE CASCADE constraint.
//
// Execute performs no authorization itself: callers are responsible for
// consulting IsAllowed before invoking it.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id domain.UserID) error {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		uc.log.Info("user delete failed", zap.String("user_id", id.String()), zap.Error(err))
		return apperr.FromLower(err)
	}

	if _, err := uc.users.Delete(ctx, user.ID); err != nil {
		uc.log.Info("user delete failed", zap.String("user_id", id.String()), zap.Error(err))
		return apperr.FromLower(err)
	}

	uc.log.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// IsAllowed reports whether the acting user may delete users. Advisory only:
// Execute does not call it.
func (uc *DeleteUserUseCase) IsAllowed(actor domain.User) bool {
	return actor.CanDeleteUsers()
}

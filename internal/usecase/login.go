package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
	"github.com/keizo-yamashita/user-service/internal/infra/logger"
)

// LoginInput carries raw login form data.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the successful authentication result.
type LoginOutput struct {
	User        domain.User
	AccessToken string
}

// LoginUseCase authenticates by email and password and issues an access token.
type LoginUseCase struct {
	users       port.UserRepository
	credentials port.CredentialRepository
	hasher      port.PasswordHasher
	tokens      port.TokenService
	log         *zap.Logger
}

// NewLoginUseCase constructs the login use case.
func NewLoginUseCase(users port.UserRepository, credentials port.CredentialRepository, hasher port.PasswordHasher, tokens port.TokenService, log *zap.Logger) *LoginUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoginUseCase{users: users, credentials: credentials, hasher: hasher, tokens: tokens, log: log}
}

// Execute verifies the credentials and issues a token. Unknown user, missing
// credential and password mismatch all collapse into the single
// InvalidCredentials code so callers cannot enumerate accounts.
func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email, err := domain.NewEmailAddress(in.Email)
	if err != nil {
		uc.log.Info("login rejected on validation", zap.Error(err))
		return LoginOutput{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		uc.log.Info("login failed",
			zap.String("email", logger.MaskEmail(in.Email)),
			zap.Error(err))
		return LoginOutput{}, apperr.UseCaseWrap(apperr.CodeInvalidCredentials, err, nil)
	}

	cred, err := uc.credentials.FindByUserID(ctx, user.ID)
	if err != nil {
		uc.log.Info("login failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return LoginOutput{}, apperr.UseCaseWrap(apperr.CodeInvalidCredentials, err, nil)
	}

	if !uc.hasher.Verify(in.Password, cred.PasswordHash) {
		uc.log.Info("login failed (password mismatch)",
			zap.String("email", logger.MaskEmail(in.Email)))
		return LoginOutput{}, apperr.UseCase(apperr.CodeInvalidCredentials, nil)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		uc.log.Error("token issue failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return LoginOutput{}, apperr.FromLower(err)
	}

	uc.log.Info("login succeeded", zap.String("user_id", user.ID.String()))

	return LoginOutput{User: user, AccessToken: token}, nil
}

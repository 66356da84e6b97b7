package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
	"github.com/keizo-yamashita/user-service/internal/infra/logger"
)

// RegisterInput carries raw, unvalidated signup data.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUseCase creates a user together with its credential.
type RegisterUseCase struct {
	users       port.UserRepository
	credentials port.CredentialRepository
	hasher      port.PasswordHasher
	log         *zap.Logger
}

// NewRegisterUseCase constructs the registration use case.
func NewRegisterUseCase(users port.UserRepository, credentials port.CredentialRepository, hasher port.PasswordHasher, log *zap.Logger) *RegisterUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegisterUseCase{users: users, credentials: credentials, hasher: hasher, log: log}
}

// Execute validates the input, persists the user and then its credential.
// The two writes are not atomic: if the credential insert fails, the already
// saved user is left behind. Known inconsistency window, kept as-is.
func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (domain.User, error) {
	email, err := domain.NewEmailAddress(in.Email)
	if err != nil {
		uc.log.Info("registration rejected on validation",
			zap.String("email", logger.MaskEmail(in.Email)),
			zap.Error(err))
		return domain.User{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
	}
	name, err := domain.NewUserName(in.Name)
	if err != nil {
		uc.log.Info("registration rejected on validation", zap.Error(err))
		return domain.User{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		if apperr.IsValidation(err) {
			return domain.User{}, apperr.UseCaseWrap(apperr.CodeInvalidValue, err, map[string]any{"error": err.Error()})
		}
		return domain.User{}, apperr.FromLower(err)
	}

	user := domain.NewUser(email, name, domain.DefaultRole)

	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		uc.log.Info("registration failed",
			zap.String("email", logger.MaskEmail(in.Email)),
			zap.Error(err))
		return domain.User{}, apperr.FromLower(err)
	}

	cred := domain.NewCredential(saved.ID, hash)
	if _, err := uc.credentials.Save(ctx, cred); err != nil {
		uc.log.Error("credential save failed after user save",
			zap.String("user_id", saved.ID.String()),
			zap.Error(err))
		return domain.User{}, apperr.FromLower(err)
	}

	uc.log.Info("user registered",
		zap.String("user_id", saved.ID.String()),
		zap.String("email", logger.MaskEmail(saved.Email.String())))

	return saved, nil
}

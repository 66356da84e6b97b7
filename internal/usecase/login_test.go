package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

func TestLoginUseCase_Execute(t *testing.T) {
	users := newUserRepoMock()
	user := seedUser(t, users, "alice@example.com", "Alice", domain.RoleMember)

	creds := newCredentialRepoMock()
	hasher := &hasherMock{verifyOK: true}
	hash, err := hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if _, err := creds.Save(context.Background(), domain.NewCredential(user.ID, hash)); err != nil {
		t.Fatalf("seed credential: %v", err)
	}

	tokens := &tokenServiceMock{token: "signed.jwt.token"}
	uc := NewLoginUseCase(users, creds, hasher, tokens, nil)

	out, err := uc.Execute(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if out.AccessToken != "signed.jwt.token" {
		t.Fatalf("unexpected token %q", out.AccessToken)
	}
	if !out.User.Equal(user) {
		t.Fatalf("expected user %s, got %s", user.ID, out.User.ID)
	}
	if len(tokens.issuedTo) != 1 || tokens.issuedTo[0] != user.ID.String() {
		t.Fatalf("token issued to %v, want %s", tokens.issuedTo, user.ID)
	}
}

func TestLoginUseCase_InvalidEmail(t *testing.T) {
	uc := NewLoginUseCase(newUserRepoMock(), newCredentialRepoMock(), &hasherMock{}, &tokenServiceMock{}, nil)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "  ", Password: "pw"})
	if apperr.CodeOf(err) != apperr.CodeInvalidValue {
		t.Fatalf("expected InvalidValue, got %v", err)
	}
}

func TestLoginUseCase_CollapsesFailures(t *testing.T) {
	users := newUserRepoMock()
	user := seedUser(t, users, "alice@example.com", "Alice", domain.RoleMember)

	credsWithHash := func(t *testing.T) *credentialRepoMock {
		t.Helper()
		creds := newCredentialRepoMock()
		hash, err := domain.NewPasswordHash("$stub$seed$hash")
		if err != nil {
			t.Fatalf("NewPasswordHash: %v", err)
		}
		if _, err := creds.Save(context.Background(), domain.NewCredential(user.ID, hash)); err != nil {
			t.Fatalf("seed credential: %v", err)
		}
		return creds
	}

	tests := []struct {
		name   string
		email  string
		creds  func(*testing.T) *credentialRepoMock
		hasher *hasherMock
	}{
		{
			name:   "unknown user",
			email:  "nobody@example.com",
			creds:  credsWithHash,
			hasher: &hasherMock{verifyOK: true},
		},
		{
			name:  "missing credential",
			email: "alice@example.com",
			creds: func(*testing.T) *credentialRepoMock {
				return newCredentialRepoMock()
			},
			hasher: &hasherMock{verifyOK: true},
		},
		{
			name:   "password mismatch",
			email:  "alice@example.com",
			creds:  credsWithHash,
			hasher: &hasherMock{verifyOK: false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewLoginUseCase(users, tc.creds(t), tc.hasher, &tokenServiceMock{token: "x"}, nil)

			_, err := uc.Execute(context.Background(), LoginInput{
				Email:    tc.email,
				Password: "whatever",
			})
			if apperr.CodeOf(err) != apperr.CodeInvalidCredentials {
				t.Fatalf("expected InvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginUseCase_TokenIssueFailure(t *testing.T) {
	users := newUserRepoMock()
	user := seedUser(t, users, "alice@example.com", "Alice", domain.RoleMember)

	creds := newCredentialRepoMock()
	hash, err := domain.NewPasswordHash("$stub$seed$hash")
	if err != nil {
		t.Fatalf("NewPasswordHash: %v", err)
	}
	if _, err := creds.Save(context.Background(), domain.NewCredential(user.ID, hash)); err != nil {
		t.Fatalf("seed credential: %v", err)
	}

	tokens := &tokenServiceMock{issueErr: errors.New("signing failed")}
	uc := NewLoginUseCase(users, creds, &hasherMock{verifyOK: true}, tokens, nil)

	_, err = uc.Execute(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if apperr.CodeOf(err) != apperr.CodeUnexpectedError {
		t.Fatalf("expected UnexpectedError for a plain failure, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

type userRepoMock struct {
	users     map[string]domain.User
	saved     []domain.User
	saveErr   error
	listErr   error
	deleteErr error
	deleted   []string
}

func newUserRepoMock() *userRepoMock {
	return &userRepoMock{users: map[string]domain.User{}}
}

func (m *userRepoMock) add(user domain.User) {
	m.users[user.ID.String()] = user
}

func (m *userRepoMock) ListAll(context.Context) ([]domain.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *userRepoMock) FindByID(_ context.Context, id domain.UserID) (domain.User, error) {
	u, ok := m.users[id.String()]
	if !ok {
		return domain.User{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"user_id": id.String()})
	}
	return u, nil
}

func (m *userRepoMock) FindByEmail(_ context.Context, email domain.EmailAddress) (domain.User, error) {
	for _, u := range m.users {
		if u.Email.String() == email.String() {
			return u, nil
		}
	}
	return domain.User{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"email": email.String()})
}

func (m *userRepoMock) Save(_ context.Context, user domain.User) (domain.User, error) {
	if m.saveErr != nil {
		return domain.User{}, m.saveErr
	}
	for _, u := range m.users {
		if u.Email.String() == user.Email.String() {
			return domain.User{}, apperr.Business(apperr.CodeEmailAlreadyExists, map[string]any{"email": user.Email.String()})
		}
	}
	m.users[user.ID.String()] = user
	m.saved = append(m.saved, user)
	return user, nil
}

func (m *userRepoMock) Delete(_ context.Context, id domain.UserID) (domain.UserID, error) {
	if m.deleteErr != nil {
		return domain.UserID{}, m.deleteErr
	}
	if _, ok := m.users[id.String()]; !ok {
		return domain.UserID{}, apperr.Business(apperr.CodeUserNotFound, map[string]any{"user_id": id.String()})
	}
	delete(m.users, id.String())
	m.deleted = append(m.deleted, id.String())
	return id, nil
}

type credentialRepoMock struct {
	creds   map[string]domain.Credential
	saved   []domain.Credential
	saveErr error
}

func newCredentialRepoMock() *credentialRepoMock {
	return &credentialRepoMock{creds: map[string]domain.Credential{}}
}

func (m *credentialRepoMock) Save(_ context.Context, cred domain.Credential) (domain.Credential, error) {
	if m.saveErr != nil {
		return domain.Credential{}, m.saveErr
	}
	if _, ok := m.creds[cred.UserID.String()]; ok {
		return domain.Credential{}, apperr.Business(apperr.CodeCredentialAlreadyExists, map[string]any{"user_id": cred.UserID.String()})
	}
	m.creds[cred.UserID.String()] = cred
	m.saved = append(m.saved, cred)
	return cred, nil
}

func (m *credentialRepoMock) FindByUserID(_ context.Context, id domain.UserID) (domain.Credential, error) {
	c, ok := m.creds[id.String()]
	if !ok {
		return domain.Credential{}, apperr.Business(apperr.CodeCredentialNotFound, map[string]any{"user_id": id.String()})
	}
	return c, nil
}

func (m *credentialRepoMock) DeleteByUserID(_ context.Context, id domain.UserID) error {
	if _, ok := m.creds[id.String()]; !ok {
		return apperr.Business(apperr.CodeCredentialNotFound, map[string]any{"user_id": id.String()})
	}
	delete(m.creds, id.String())
	return nil
}

type hasherMock struct {
	hashErr  error
	verifyOK bool
	verified []string
}

func (m *hasherMock) Hash(plaintext string) (domain.PasswordHash, error) {
	if m.hashErr != nil {
		return domain.PasswordHash{}, m.hashErr
	}
	return domain.NewPasswordHash("$stub$" + plaintext + "$hash")
}

func (m *hasherMock) Verify(plaintext string, _ domain.PasswordHash) bool {
	m.verified = append(m.verified, plaintext)
	return m.verifyOK
}

type tokenServiceMock struct {
	token    string
	issueErr error
	issuedTo []string
}

func (m *tokenServiceMock) Issue(id domain.UserID) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	m.issuedTo = append(m.issuedTo, id.String())
	return m.token, nil
}

func (m *tokenServiceMock) Verify(string) (domain.UserID, error) {
	return domain.UserID{}, errors.New("unexpected call: Verify")
}

func seedUser(t *testing.T, repo *userRepoMock, emailValue, nameValue string, role domain.Role) domain.User {
	t.Helper()

	email, err := domain.NewEmailAddress(emailValue)
	if err != nil {
		t.Fatalf("NewEmailAddress: %v", err)
	}
	name, err := domain.NewUserName(nameValue)
	if err != nil {
		t.Fatalf("NewUserName: %v", err)
	}
	user := domain.NewUser(email, name, role)
	repo.add(user)
	return user
}

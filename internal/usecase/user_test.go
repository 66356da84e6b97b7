package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

func TestCreateUserUseCase_Execute(t *testing.T) {
	users := newUserRepoMock()
	uc := NewCreateUserUseCase(users, nil)

	user, err := uc.Execute(context.Background(), CreateUserInput{
		Email: "bob@example.com",
		Name:  "Bob",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if user.Role != domain.RoleMember {
		t.Fatalf("expected default member role, got %s", user.Role)
	}
	if len(users.saved) != 1 {
		t.Fatalf("expected 1 saved user, got %d", len(users.saved))
	}
}

func TestCreateUserUseCase_InvalidInput(t *testing.T) {
	uc := NewCreateUserUseCase(newUserRepoMock(), nil)

	_, err := uc.Execute(context.Background(), CreateUserInput{Email: "bad", Name: "Bob"})
	if apperr.CodeOf(err) != apperr.CodeInvalidValue {
		t.Fatalf("expected InvalidValue for a bad email, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateUserInput{Email: "bob@example.com", Name: ""})
	if apperr.CodeOf(err) != apperr.CodeInvalidValue {
		t.Fatalf("expected InvalidValue for an empty name, got %v", err)
	}
}

func TestCreateUserUseCase_DuplicateEmail(t *testing.T) {
	users := newUserRepoMock()
	seedUser(t, users, "bob@example.com", "Bob", domain.RoleMember)

	uc := NewCreateUserUseCase(users, nil)

	_, err := uc.Execute(context.Background(), CreateUserInput{
		Email: "bob@example.com",
		Name:  "Bob Again",
	})
	if apperr.CodeOf(err) != apperr.CodeEmailAlreadyExists {
		t.Fatalf("expected EmailAlreadyExists, got %v", err)
	}
}

func TestFindUserUseCase_Execute(t *testing.T) {
	users := newUserRepoMock()
	user := seedUser(t, users, "alice@example.com", "Alice", domain.RoleAdmin)

	uc := NewFindUserUseCase(users, nil)

	found, err := uc.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !found.Equal(user) {
		t.Fatalf("expected user %s, got %s", user.ID, found.ID)
	}
}

func TestFindUserUseCase_NotFound(t *testing.T) {
	uc := NewFindUserUseCase(newUserRepoMock(), nil)

	_, err := uc.Execute(context.Background(), domain.NewUserID())
	if apperr.CodeOf(err) != apperr.CodeUserNotFound {
		t.Fatalf("expected UserNotFound, got %v", err)
	}

	var ucErr *apperr.UseCaseError
	if !errors.As(err, &ucErr) {
		t.Fatalf("expected a use case error, got %T", err)
	}
}

func TestFilterUserUseCase_Execute(t *testing.T) {
	users := newUserRepoMock()
	seedUser(t, users, "alice@example.com", "Alice", domain.RoleMember)
	seedUser(t, users, "bob@example.com", "Bob", domain.RoleAdmin)

	uc := NewFilterUserUseCase(users, nil)

	list, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
}

func TestFilterUserUseCase_Empty(t *testing.T) {
	uc := NewFilterUserUseCase(newUserRepoMock(), nil)

	list, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d users", len(list))
	}
}

func TestFilterUserUseCase_RepositoryFault(t *testing.T) {
	users := newUserRepoMock()
	users.listErr = apperr.Technical(apperr.CodeDatabaseQueryFailed, errors.New("timeout"), nil)

	uc := NewFilterUserUseCase(users, nil)

	_, err := uc.Execute(context.Background())
	if apperr.CodeOf(err) != apperr.CodeDatabaseQueryFailed {
		t.Fatalf("expected DatabaseQueryFailed preserved, got %v", err)
	}
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	users := newUserRepoMock()
	user := seedUser(t, users, "alice@example.com", "Alice", domain.RoleMember)

	uc := NewDeleteUserUseCase(users, nil)

	if err := uc.Execute(context.Background(), user.ID); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(users.deleted) != 1 || users.deleted[0] != user.ID.String() {
		t.Fatalf("expected %s deleted, got %v", user.ID, users.deleted)
	}
}

func TestDeleteUserUseCase_NotFound(t *testing.T) {
	uc := NewDeleteUserUseCase(newUserRepoMock(), nil)

	err := uc.Execute(context.Background(), domain.NewUserID())
	if apperr.CodeOf(err) != apperr.CodeUserNotFound {
		t.Fatalf("expected UserNotFound, got %v", err)
	}
}

// Execute never consults IsAllowed: a member actor can still drive a delete
// if the caller skips the check.
func TestDeleteUserUseCase_DoesNotEnforceAuthorization(t *testing.T) {
	users := newUserRepoMock()
	target := seedUser(t, users, "victim@example.com", "Victim", domain.RoleMember)

	uc := NewDeleteUserUseCase(users, nil)

	if err := uc.Execute(context.Background(), target.ID); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestDeleteUserUseCase_IsAllowed(t *testing.T) {
	users := newUserRepoMock()
	uc := NewDeleteUserUseCase(users, nil)

	tests := []struct {
		role domain.Role
		want bool
	}{
		{domain.RoleSuperAdmin, true},
		{domain.RoleAdmin, true},
		{domain.RoleMember, false},
	}

	for _, tc := range tests {
		actor := seedUser(t, users, string(tc.role)+"@example.com", "Actor", tc.role)
		if got := uc.IsAllowed(actor); got != tc.want {
			t.Fatalf("IsAllowed(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

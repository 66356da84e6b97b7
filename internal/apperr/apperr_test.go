package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationDetection(t *testing.T) {
	err := Validation("user name is empty")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	wrapped := fmt.Errorf("build user: %w", err)
	if !IsValidation(wrapped) {
		t.Fatalf("expected wrapped validation error to be detected")
	}

	if IsValidation(errors.New("plain")) {
		t.Fatalf("plain error must not count as validation error")
	}
}

func TestFromLowerPreservesBusinessCode(t *testing.T) {
	be := Business(CodeEmailAlreadyExists, map[string]any{"email": "a@example.com"})

	ue := FromLower(be)
	if ue.Code != CodeEmailAlreadyExists {
		t.Fatalf("expected code %s, got %s", CodeEmailAlreadyExists, ue.Code)
	}
	if ue.Details["email"] != "a@example.com" {
		t.Fatalf("expected details to be carried over")
	}
	if !errors.Is(ue, be) {
		t.Fatalf("expected use-case error to wrap its cause")
	}
}

func TestFromLowerPreservesTechnicalCode(t *testing.T) {
	te := Technical(CodeDatabaseQueryFailed, errors.New("broken pipe"), nil)

	ue := FromLower(fmt.Errorf("list users: %w", te))
	if ue.Code != CodeDatabaseQueryFailed {
		t.Fatalf("expected code %s, got %s", CodeDatabaseQueryFailed, ue.Code)
	}
}

func TestFromLowerUnknownCollapsesToUnexpected(t *testing.T) {
	ue := FromLower(errors.New("something odd"))
	if ue.Code != CodeUnexpectedError {
		t.Fatalf("expected %s, got %s", CodeUnexpectedError, ue.Code)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(UseCase(CodeInvalidCredentials, nil)); got != CodeInvalidCredentials {
		t.Fatalf("expected %s, got %s", CodeInvalidCredentials, got)
	}
	if got := CodeOf(Business(CodeUserNotFound, nil)); got != CodeUserNotFound {
		t.Fatalf("expected %s, got %s", CodeUserNotFound, got)
	}
	if got := CodeOf(fmt.Errorf("list users: %w", Technical(CodeDatabaseQueryFailed, errors.New("broken pipe"), nil))); got != CodeDatabaseQueryFailed {
		t.Fatalf("expected %s, got %s", CodeDatabaseQueryFailed, got)
	}
	if got := CodeOf(errors.New("raw")); got != CodeUnexpectedError {
		t.Fatalf("expected fallback to %s, got %s", CodeUnexpectedError, got)
	}
	// A use-case error wrapping a lower tier reports the outer code.
	if got := CodeOf(UseCaseWrap(CodeInvalidCredentials, Business(CodeUserNotFound, nil), nil)); got != CodeInvalidCredentials {
		t.Fatalf("expected outer code %s, got %s", CodeInvalidCredentials, got)
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("save: %w", Business(CodeCredentialAlreadyExists, nil))
	if !IsBusiness(err, CodeCredentialAlreadyExists) {
		t.Fatalf("expected business error with code to be detected through wrapping")
	}
	if IsBusiness(err, CodeUserNotFound) {
		t.Fatalf("code mismatch must not match")
	}
}

func TestTechnicalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	te := Technical(CodeDatabaseConnectionFailed, cause, nil)
	if !errors.Is(te, cause) {
		t.Fatalf("expected technical error to wrap its cause")
	}
	if !IsTechnical(te) {
		t.Fatalf("expected IsTechnical to hold")
	}
}

// Package apperr defines the error taxonomy shared across layers: validation
// errors raised by domain constructors, business and technical errors raised by
// repositories and services, and the single use-case error type that crosses
// into the transport layer.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable, enumerable error code. Codes are a closed set; transport
// maps them to HTTP statuses and treats anything unrecognised as a defect.
type Code string

const (
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeInvalidValue    Code = "INVALID_VALUE"
	CodeUnexpectedError Code = "UNEXPECTED_ERROR"

	CodeUserNotFound       Code = "USER_NOT_FOUND"
	CodeEmailAlreadyExists Code = "USER_EMAIL_ALREADY_EXISTS"
	CodeUserDeleteError    Code = "USER_DELETE_ERROR"

	CodeInvalidCredentials      Code = "INVALID_CREDENTIALS"
	CodeInvalidToken            Code = "INVALID_TOKEN"
	CodeCredentialAlreadyExists Code = "CREDENTIAL_ALREADY_EXISTS"
	CodeCredentialNotFound      Code = "CREDENTIAL_NOT_FOUND"

	CodeDatabaseOperationFailed  Code = "DATABASE_OPERATION_FAILED"
	CodeDatabaseQueryFailed      Code = "DATABASE_QUERY_FAILED"
	CodeDatabaseConnectionFailed Code = "DATABASE_CONNECTION_FAILED"
)

// ValidationError reports malformed input detected by a value-object
// constructor. It is always recoverable by the calling use case, which
// converts it into a use-case error carrying CodeInvalidValue.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BusinessError is an expected failure arising from domain rules: not found,
// duplicate email, bad token. It is not logged as a failure and is converted
// 1:1 into a use-case error with the same code.
type BusinessError struct {
	Code    Code
	Details map[string]any
	cause   error
}

func (e *BusinessError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *BusinessError) Unwrap() error { return e.cause }

// Business builds a BusinessError for the supplied code.
func Business(code Code, details map[string]any) *BusinessError {
	return &BusinessError{Code: code, Details: details}
}

// BusinessWrap builds a BusinessError that records its cause for logging.
func BusinessWrap(code Code, cause error, details map[string]any) *BusinessError {
	return &BusinessError{Code: code, Details: details, cause: cause}
}

// TechnicalError is an infrastructure-level failure: lost connection,
// unexpected storage fault. It stays distinguishable from business errors so
// operators can alert on it differently, even though both surface to callers
// through the same use-case error type.
type TechnicalError struct {
	Code    Code
	Details map[string]any
	cause   error
}

func (e *TechnicalError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *TechnicalError) Unwrap() error { return e.cause }

// Technical builds a TechnicalError wrapping the infrastructure cause.
func Technical(code Code, cause error, details map[string]any) *TechnicalError {
	return &TechnicalError{Code: code, Details: details, cause: cause}
}

// UseCaseError is the only error type allowed to cross from application logic
// into the transport layer. It always carries a stable code.
type UseCaseError struct {
	Code    Code
	Details map[string]any
	cause   error
}

func (e *UseCaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *UseCaseError) Unwrap() error { return e.cause }

// UseCase builds a UseCaseError for the supplied code.
func UseCase(code Code, details map[string]any) *UseCaseError {
	return &UseCaseError{Code: code, Details: details}
}

// UseCaseWrap builds a UseCaseError carrying its cause for logging.
func UseCaseWrap(code Code, cause error, details map[string]any) *UseCaseError {
	return &UseCaseError{Code: code, Details: details, cause: cause}
}

// FromLower translates a business or technical error into a use-case error
// preserving the original code and details. Anything else collapses to
// CodeUnexpectedError so unknown failures never leak a fabricated code.
func FromLower(err error) *UseCaseError {
	var be *BusinessError
	if errors.As(err, &be) {
		return &UseCaseError{Code: be.Code, Details: be.Details, cause: err}
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return &UseCaseError{Code: te.Code, Details: te.Details, cause: err}
	}
	return &UseCaseError{Code: CodeUnexpectedError, cause: err}
}

// CodeOf extracts the code carried by err, preferring the use-case tier when
// err has crossed layers, otherwise falling through to the business and
// technical tiers. Errors without a code report CodeUnexpectedError.
func CodeOf(err error) Code {
	var ue *UseCaseError
	if errors.As(err, &ue) {
		return ue.Code
	}
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return CodeUnexpectedError
}

// IsBusiness reports whether err is (or wraps) a BusinessError with the code.
func IsBusiness(err error, code Code) bool {
	var be *BusinessError
	return errors.As(err, &be) && be.Code == code
}

// IsTechnical reports whether err is (or wraps) a TechnicalError.
func IsTechnical(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

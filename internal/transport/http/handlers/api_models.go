package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/transport/http/middleware"
)

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	return ErrorResponse{
		Error:   errorMsg,
		TraceID: middleware.GetTraceID(c),
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserPayload is the API view of a user.
type UserPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserPayload(u domain.User) UserPayload {
	return UserPayload{
		ID:        u.ID.String(),
		Email:     u.Email.String(),
		Name:      u.Name.String(),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest defines the payload for the signup endpoint.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated user and its bearer token.
type LoginResponse struct {
	User        UserPayload `json:"user"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
}

// CreateUserRequest defines the payload for admin-side user creation.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User UserPayload `json:"user"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Users []UserPayload `json:"users"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

// ReadinessResponse reports per-dependency readiness.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

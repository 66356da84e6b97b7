package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/keizo-yamashita/user-service/internal/core/domain"
)

const (
	// TraceIDHeader is the HTTP header name for trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDKey is the context key for trace ID
	TraceIDKey = "trace_id"
	// CurrentUserKey is the context key for the authenticated user
	CurrentUserKey = "current_user"
)

// GetTraceID retrieves the trace ID from the context
func GetTraceID(c *gin.Context) string {
	if traceID, exists := c.Get(TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}
	return ""
}

// CurrentUser retrieves the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	val, exists := c.Get(CurrentUserKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/apperr"
)

var statusByCode = map[apperr.Code]int{
	apperr.CodeEmailAlreadyExists: http.StatusBadRequest,
	apperr.CodeInvalidValue:       http.StatusBadRequest,
	apperr.CodeUserNotFound:       http.StatusNotFound,
	apperr.CodeUserDeleteError:    http.StatusConflict,
	apperr.CodeInvalidCredentials: http.StatusUnauthorized,
	apperr.CodeUnauthorized:       http.StatusUnauthorized,
	apperr.CodeInvalidToken:       http.StatusUnauthorized,
	apperr.CodeForbidden:          http.StatusForbidden,
}

// RespondWithUseCaseError maps a use case error code to an HTTP status. A code
// without a mapping is a programming defect: it is logged at error severity
// and the client only sees a generic message.
func RespondWithUseCaseError(c *gin.Context, log *zap.Logger, err error) {
	if err == nil {
		c.Status(http.StatusOK)
		return
	}

	code := apperr.CodeOf(err)
	if status, ok := statusByCode[code]; ok {
		c.JSON(status, NewErrorResponse(c, string(code)))
		return
	}

	if log != nil {
		log.Error("unmapped use case error",
			zap.String("code", string(code)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "internal server error"))
}

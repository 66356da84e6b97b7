package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/transport/http/middleware"
	"github.com/keizo-yamashita/user-service/internal/usecase"
)

// UserHandler exposes user CRUD endpoints.
type UserHandler struct {
	create *usecase.CreateUserUseCase
	find   *usecase.FindUserUseCase
	filter *usecase.FilterUserUseCase
	delete *usecase.DeleteUserUseCase
	log    *zap.Logger
}

// NewUserHandler builds the user handler.
func NewUserHandler(create *usecase.CreateUserUseCase, find *usecase.FindUserUseCase, filter *usecase.FilterUserUseCase, del *usecase.DeleteUserUseCase, log *zap.Logger) *UserHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserHandler{create: create, find: find, filter: filter, delete: del, log: log}
}

// RegisterRoutes binds user endpoints. Delete requires authentication and is
// gated here on the delete use case's advisory role check.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/:id", h.Find)
	r.DELETE("/:id", requireAuth, h.Delete)
}

// Create registers a user without a credential.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid user payload"))
		return
	}

	user, err := h.create.Execute(c.Request.Context(), usecase.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: newUserPayload(user)})
}

// List returns every user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.filter.Execute(c.Request.Context())
	if err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	payload := make([]UserPayload, 0, len(users))
	for _, u := range users {
		payload = append(payload, newUserPayload(u))
	}

	c.JSON(http.StatusOK, UsersResponse{Users: payload})
}

// Find returns a single user by id.
func (h *UserHandler) Find(c *gin.Context) {
	id, err := domain.ParseUserID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, string(apperr.CodeInvalidValue)))
		return
	}

	user, err := h.find.Execute(c.Request.Context(), id)
	if err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: newUserPayload(user)})
}

// Delete removes a user. The role check lives here, not in the use case.
func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(c, string(apperr.CodeUnauthorized)))
		return
	}

	if !h.delete.IsAllowed(actor) {
		c.JSON(http.StatusForbidden, NewErrorResponse(c, string(apperr.CodeForbidden)))
		return
	}

	id, err := domain.ParseUserID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, string(apperr.CodeInvalidValue)))
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

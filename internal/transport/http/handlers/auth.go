package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/usecase"
)

const tokenTypeBearer = "bearer"

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	register *usecase.RegisterUseCase
	login    *usecase.LoginUseCase
	log      *zap.Logger
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(register *usecase.RegisterUseCase, login *usecase.LoginUseCase, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{register: register, login: login, log: log}
}

// RegisterRoutes binds auth endpoints.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}

// Register creates a user together with its credential.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid registration payload"))
		return
	}

	user, err := h.register.Execute(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{User: newUserPayload(user)})
}

// Login authenticates by email and password and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid login payload"))
		return
	}

	out, err := h.login.Execute(c.Request.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		RespondWithUseCaseError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:        newUserPayload(out.User),
		AccessToken: out.AccessToken,
		TokenType:   tokenTypeBearer,
	})
}

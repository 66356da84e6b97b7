package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/core/port"
	"github.com/keizo-yamashita/user-service/internal/infra/config"
	"github.com/keizo-yamashita/user-service/internal/transport/http/handlers"
	"github.com/keizo-yamashita/user-service/internal/transport/http/middleware"
	"github.com/keizo-yamashita/user-service/internal/usecase"
)

// UseCaseSet groups the use cases the HTTP layer depends on.
type UseCaseSet struct {
	Register *usecase.RegisterUseCase
	Login    *usecase.LoginUseCase
	Create   *usecase.CreateUserUseCase
	Find     *usecase.FindUserUseCase
	Filter   *usecase.FilterUserUseCase
	Delete   *usecase.DeleteUserUseCase
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Metrics  *middleware.HTTPMetrics
	UseCases UseCaseSet
	Tokens   port.TokenService
	Users    port.UserRepository
	Database DatabaseChecker
}

// DatabaseChecker exposes readiness behaviour for database connections.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config != nil && deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	if deps.Config != nil {
		r.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))
	}
	r.Use(deps.Metrics.Handler())

	requireAuth := middleware.RequireAuth(deps.Tokens, deps.Users)

	healthOptions := make([]handlers.HealthOption, 0, 1)
	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("database", deps.Database.Ping))
	}
	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(deps.UseCases.Register, deps.UseCases.Login, deps.Logger)
		authHandler.RegisterRoutes(api.Group("/auth"))

		userHandler := handlers.NewUserHandler(
			deps.UseCases.Create,
			deps.UseCases.Find,
			deps.UseCases.Filter,
			deps.UseCases.Delete,
			deps.Logger,
		)
		userHandler.RegisterRoutes(api.Group("/users"), requireAuth)
	}

	return r
}

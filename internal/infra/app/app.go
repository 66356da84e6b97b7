package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/keizo-yamashita/user-service/internal/infra/config"
	"github.com/keizo-yamashita/user-service/internal/infra/database"
	"github.com/keizo-yamashita/user-service/internal/infra/logger"
	"github.com/keizo-yamashita/user-service/internal/infra/security"
	postgresrepo "github.com/keizo-yamashita/user-service/internal/repository/postgres"
	"github.com/keizo-yamashita/user-service/internal/transport/http/middleware"
	"github.com/keizo-yamashita/user-service/internal/transport/http/routes"
	"github.com/keizo-yamashita/user-service/internal/usecase"
)

// Application wires configuration, storage, services and the HTTP surface.
type Application struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

// New builds a fully wired application.
func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	hasher := security.NewPasswordService(cfg.Bcrypt.Cost)
	tokens, err := security.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init token service: %w", err)
	}

	repos := postgresrepo.NewRepositories(pool)

	metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init http metrics: %w", err)
	}

	engine := routes.Register(routes.Dependencies{
		Config:  cfg,
		Logger:  log,
		Metrics: metrics,
		UseCases: routes.UseCaseSet{
			Register: usecase.NewRegisterUseCase(repos.Users, repos.Credentials, hasher, log),
			Login:    usecase.NewLoginUseCase(repos.Users, repos.Credentials, hasher, tokens, log),
			Create:   usecase.NewCreateUserUseCase(repos.Users, log),
			Find:     usecase.NewFindUserUseCase(repos.Users, log),
			Filter:   usecase.NewFilterUserUseCase(repos.Users, log),
			Delete:   usecase.NewDeleteUserUseCase(repos.Users, log),
		},
		Tokens:   tokens,
		Users:    repos.Users,
		Database: pool,
	})

	return &Application{
		cfg:    cfg,
		engine: engine,
		logger: log,
		pool:   pool,
	}, nil
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer a.pool.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting user service API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"privstore/internal/infrastructure/config"
	"privstore/internal/infrastructure/database"
	"privstore/internal/infrastructure/migration"
	httpRouter "privstore/internal/interfaces/http"
	"privstore/internal/shared/logger"
	"privstore/internal/shared/utils"
	"privstore/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Privstore HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate,
		"database_driver", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := utils.RegisterBindingValidators(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if err := handleMigrations(cmd.Context(), cfg, log); err != nil {
		return err
	}

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router, err := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if ctx == nil {
		ctx = context.Background()
	}

	strategy, err := migration.NewStrategy(cfg.Database.Driver, log)
	if err != nil {
		return err
	}

	if !autoMigrate {
		if goose, ok := strategy.(*migration.GooseStrategy); ok {
			version, err := goose.Version(ctx, database.Get())
			if err != nil {
				log.Warnw("failed to check migration status", "error", err)
				return nil
			}
			log.Infow("current migration version", "version", version)
		}
		return nil
	}

	if cfg.Server.Mode == gin.ReleaseMode {
		log.Warnw("auto-migration is enabled in release mode")
	}

	log.Infow("running migrations", "strategy", strategy.Name())
	if err := strategy.Migrate(ctx, database.Get()); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// initRedis returns nil when rate limiting is disabled. An unreachable Redis
// is logged and the client is still returned so the limiter recovers once
// the server comes back.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.RateLimit.Enabled {
		log.Infow("submission rate limiting disabled")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, submissions will not be rate limited until it recovers",
			"address", cfg.Redis.GetAddr(),
			"error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

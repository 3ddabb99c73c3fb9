package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"task-manager-api.com/task-manager-api/internal/auth"
	config "task-manager-api.com/task-manager-api/internal/configs"
	httpapi "task-manager-api.com/task-manager-api/internal/http"
	"task-manager-api.com/task-manager-api/internal/migrations"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/revocation"
	"task-manager-api.com/task-manager-api/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task manager HTTP API and shuts it down gracefully on SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.AutoMigrate {
			if err := migrate(ctx, cfg.DatabaseDriver, db); err != nil {
				return err
			}
		}

		issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
		if err != nil {
			return fmt.Errorf("JWT_SECRET: %w", err)
		}

		revoked, shutdownRevocation, err := newRevocationStore(cfg, db)
		if err != nil {
			return err
		}

		taskService := services.NewTaskService(repository.NewTaskRepository(db))
		authService := services.NewAuthService(
			repository.NewUserRepository(db),
			issuer,
			auth.NewPasswordHasher(),
			revoked,
		)

		e := httpapi.NewServer(httpapi.ServerDeps{
			TaskService: taskService,
			AuthService: authService,
			Options: httpapi.RouteOptions{
				RateLimitPerMinute:  cfg.RateLimit,
				RequireAuthForReads: cfg.RequireAuthForReads,
				ZeroBasedPageLinks:  cfg.ZeroBasedPageLinks,
			},
		})

		serverErr := make(chan error, 1)
		go func() {
			slog.Info("HTTP server listening", "address", cfg.Address())
			if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			if err != nil {
				shutdownRevocation(context.Background())
				return fmt.Errorf("http server: %w", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Warn("http server shutdown", "error", err)
		}
		shutdownRevocation(shutdownCtx)

		slog.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newRevocationStore prefers Redis when it is configured. The database
// store needs a janitor to drop expired rows; the returned func stops
// whatever was started.
func newRevocationStore(cfg config.Config, db *gorm.DB) (revocation.Store, func(context.Context), error) {
	if cfg.RedisAddr != "" {
		client, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using redis token revocation", "address", cfg.RedisAddr)
		return revocation.NewRedisStore(client, cfg.RedisKeyPrefix), func(context.Context) { client.Close() }, nil
	}

	store := revocation.NewDatabaseStore(db)
	janitor := revocation.NewJanitor(store, cfg.RevocationPurgeInterval())
	return store, janitor.Shutdown, nil
}

func migrate(ctx context.Context, driver string, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	applied, err := migrations.Up(ctx, driver, sqlDB)
	if err != nil {
		return err
	}
	if applied > 0 {
		slog.Info("applied migrations", "count", applied)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

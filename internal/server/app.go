// Package server wires configuration, storage, services and the HTTP server
// into a runnable application, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// logOutput is where the application logger writes; replaced in tests.
var logOutput io.Writer = os.Stdout

type App struct {
	config *config.Config
	logger logging.Logger

	repos repomanager.RepositoryManager
	rdb   *redis.Client

	authService *services.AuthService
	server      *httpserver.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	if logging.ParseLevel(c.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	repomanager.SetMigrationLogger(logger)
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app := &App{config: c, logger: logger, repos: repos}

	var sessionRepo sessions.Repository = repos.Sessions()
	if c.SessionBackend == config.SessionRedis {
		app.rdb = redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := app.rdb.Ping(ctx).Err(); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		sessionRepo = sessions.NewRedisRepository(app.rdb)
	}

	svc := httpserver.Services{Storage: repos}
	switch c.Variant {
	case config.VariantNotes:
		app.authService = services.NewAuthService(repos.Users(), sessionRepo, c.SecretKey, c.SessionValidityDuration, logger)
		svc.Auth = app.authService
		svc.Notes = services.NewNoteService(repos.Notes(), logger)
	case config.VariantWaitlist:
		svc.Waitlist = services.NewWaitlistService(repos.Waitlist(), logger)
	}

	srv, err := httpserver.NewHTTPServer(c, logger, svc)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.server = srv

	return app, nil
}

func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageBackend {
	case config.StorageMemory:
		return repomanager.NewInMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		return repomanager.NewSQLRepositoryManager(ctx, repomanager.DialectPostgres, c.DatabaseDSN)
	case config.StorageSQLite:
		return repomanager.NewSQLRepositoryManager(ctx, repomanager.DialectSQLite, c.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// runSessionSweeper purges expired sessions every SessionSweepInterval until
// ctx is cancelled.
func (app *App) runSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(app.config.SessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.authService.SweepExpired(ctx)
			if err != nil {
				app.logger.Error(ctx, "session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts down and releases storage connections.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "variant", app.config.Variant, "storage", app.config.StorageBackend)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup
	var serverErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			serverErr = err
		}
		cancelFunc()
	}()

	if app.authService != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.runSessionSweeper(ctx)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")

	return errors.Join(serverErr, app.Close())
}

// Close releases the storage and redis connections.
func (app *App) Close() error {
	var errs []error
	if app.rdb != nil {
		errs = append(errs, app.rdb.Close())
	}
	if app.repos != nil {
		errs = append(errs, app.repos.Close())
	}
	return errors.Join(errs...)
}

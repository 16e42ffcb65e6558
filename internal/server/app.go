// Package server wires the Tuchka server together: configuration, storage
// backends, the account and document services, and the HTTP and gRPC
// endpoints, with graceful shutdown on termination signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/dmitrijs2005/tuchka/internal/server/config"
	gs "github.com/dmitrijs2005/tuchka/internal/server/grpc"
	"github.com/dmitrijs2005/tuchka/internal/server/httpapi"
	"github.com/dmitrijs2005/tuchka/internal/server/identity"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/tuchka/internal/server/services"
	"github.com/dmitrijs2005/tuchka/internal/server/shared/db"
	"github.com/dmitrijs2005/tuchka/internal/server/storage"
	"github.com/dmitrijs2005/tuchka/internal/tracing"
	"github.com/redis/go-redis/v9"
)

const (
	serviceName     = "tuchka"
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config *config.Config
	logger logging.Logger

	db            *sql.DB
	redis         *redis.Client
	shutdownTrace func(context.Context) error

	httpServer *http.Server
	grpcServer *gs.GRPCServer
}

// NewApp connects to every backend, applies migrations and builds both
// endpoints. Roles are created by the first admin registration.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	shutdownTrace, err := tracing.Setup(ctx, serviceName, c.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing init error: %w", err)
	}
	app.shutdownTrace = shutdownTrace

	app.db, err = db.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		app.Close(ctx)
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, app.db); err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app.redis = redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	if err := app.redis.Ping(ctx).Err(); err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	store := identity.NewStore(app.db, rm, resettokens.NewRedisStore(app.redis),
		identity.WithPolicy(identity.Policy{MinPasswordLength: c.MinPasswordLength}),
		identity.WithResetTokenTTL(c.ResetTokenTTL),
		identity.WithLogger(logger.With("module", "identity")),
	)

	roles := services.NewRoleBootstrapper(store)

	registration := services.NewRegistrationService(store, roles, logger.With("module", "registration"))
	authentication := services.NewAuthenticationService(store, services.TokenConfig{
		Secret:   []byte(c.SecretKey),
		Issuer:   c.Issuer,
		Audience: c.Audience,
	}, logger.With("module", "authentication"))
	passwords := services.NewPasswordService(store, logger.With("module", "passwords"))
	verifier := auth.NewVerifier([]byte(c.SecretKey), c.Issuer, c.Audience)

	deps := httpapi.Deps{
		Logger:         logger.With("module", "http_server"),
		Verifier:       verifier,
		Registration:   registration,
		Authentication: authentication,
		Passwords:      passwords,
	}

	if c.S3Bucket != "" {
		blobs, err := storage.NewS3Store(ctx, storage.S3Config{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
		})
		if err != nil {
			app.Close(ctx)
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		deps.Documents = services.NewDocumentService(app.db, rm, blobs, logger.With("module", "documents"))
	}

	if c.EndpointAddrHTTP != "" {
		api, err := httpapi.New(deps)
		if err != nil {
			app.Close(ctx)
			return nil, err
		}
		app.httpServer = &http.Server{
			Addr:              c.EndpointAddrHTTP,
			Handler:           api.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	if c.EndpointAddrGRPC != "" {
		app.grpcServer = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, verifier, registration, authentication, passwords)
	}

	return app, nil
}

// Close releases backend connections and flushes traces.
func (app *App) Close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close error", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close error", "error", err)
		}
	}
	if app.shutdownTrace != nil {
		if err := app.shutdownTrace(ctx); err != nil {
			app.logger.Warn(ctx, "trace shutdown error", "error", err)
		}
	}
}

// serveHTTP serves srv on lis until ctx is done, then shuts it down.
func serveHTTP(ctx context.Context, srv *http.Server, lis net.Listener, logger logging.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	lis, err := net.Listen("tcp", app.httpServer.Addr)
	if err != nil {
		app.logger.Error(ctx, "http listen error", "error", err)
		cancelFunc()
		return
	}
	if err := serveHTTP(ctx, app.httpServer, lis, app.logger); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until SIGINT, SIGTERM or SIGQUIT arrives or
// either endpoint fails, then stops both and closes the backends.
func (app *App) Run(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	var wg sync.WaitGroup

	if app.httpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHTTPServer(ctx, cancelFunc)
		}()
	}

	if app.grpcServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.Close(context.WithoutCancel(ctx))
	app.logger.Info(ctx, "App stopped")
}

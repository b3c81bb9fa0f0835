package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// BuildVersion is reported by the health endpoints and the logger. Release
// builds override it with
// -ldflags "-X github.com/aussiebroadwan/todo/internal/todo/app.BuildVersion=v1.2.3".
var BuildVersion = "v0.1.0"

// Application wires config, storage, services and the HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	hasher   *cryptox.PasswordHasher

	authService *service.AuthService
	todoService *service.TodoService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "todo-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSecurity(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until SIGINT/SIGTERM or a server error.
func (app *Application) Run() error {
	app.logger.Info("todo service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, then closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

// initSecurity builds the token signer/verifier and the password hasher.
func (app *Application) initSecurity() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		if app.cfg.IsProd() {
			return errors.New("JWT_SECRET is required when ENV=prod")
		}
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("generate signing secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256("", []byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(secret), app.cfg.JWTIssuer).WithLeeway(5 * time.Second)

	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load password pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(cryptox.Argon2Params{
		Memory:      app.cfg.Argon2MemoryKiB,
		Iterations:  app.cfg.Argon2Iterations,
		Parallelism: app.cfg.Argon2Parallelism,
	}, pepper)

	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	v := validation.New()

	app.authService = &service.AuthService{
		Store:     app.db,
		Hasher:    app.hasher,
		Signer:    app.signer,
		Validator: v,
		Issuer:    app.cfg.JWTIssuer,
		TokenTTL:  app.cfg.JWTExpiresIn,
	}
	app.todoService = &service.TodoService{
		Store:       app.db,
		Validator:   v,
		MaxPageSize: app.cfg.MaxPageSize,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.TodoService = app.todoService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

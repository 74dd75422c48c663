package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-retry"

	httpapi "github.com/PadsterH2012/Idea-Incubator/internal/incubator/http"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/service"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store/drivers/sqlite"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cookiex"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cryptox"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the incubator service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	cookies *cookiex.Codec

	sessionService      *service.SessionService
	authService         *service.AuthService
	projectService      *service.ProjectService
	settingsService     *service.SettingsService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "incubator",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	// The cookie signer and the session service must agree on the window.
	if app.cfg.SessionLifetime <= 0 {
		app.cfg.SessionLifetime = service.DefaultSessionLifetime
	}

	if app.cfg.SecretKey == "" {
		// An ephemeral key means every restart invalidates all cookies. Fine
		// for dev, loudly wrong for anything else.
		app.cfg.SecretKey = generateSecret()
		app.logger.Warn("INCUBATOR_SECRET_KEY not set, using an ephemeral secret")
	}
	app.cookies = cookiex.NewCodec(app.cfg.SecretKey, app.cfg.SessionLifetime)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("incubator service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down incubator service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("incubator service stopped")
	return nil
}

// initDatabase opens the database, waits for it to become reachable and
// applies migrations. Unreachable after the configured attempts is fatal.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := app.awaitDatabase(); err != nil {
		_ = db.Close()
		return fmt.Errorf("database not reachable after %d attempts: %w", app.cfg.DBConnectRetries, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// awaitDatabase pings the database on a fixed interval until it answers or
// the attempt budget runs out.
func (app *Application) awaitDatabase() error {
	retries := app.cfg.DBConnectRetries
	if retries < 1 {
		retries = 1
	}

	attempt := 0
	backoff := retry.WithMaxRetries(uint64(retries-1), retry.NewConstant(app.cfg.DBConnectDelay))

	return retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		attempt++
		if err := app.db.Ping(ctx); err != nil {
			app.logger.Warn("database not ready",
				"attempt", attempt,
				"max_attempts", app.cfg.DBConnectRetries,
				"error", err,
			)
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Lifetime: app.cfg.SessionLifetime,
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Sessions: app.sessionService,
	}

	app.projectService = &service.ProjectService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.cookies,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.ProjectService = app.projectService
	router.SettingsService = app.settingsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

func generateSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("failed to generate ephemeral secret: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

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

	httpapi "github.com/aussiebroadwan/storefront/internal/storefront/http"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/pkg/cryptox"
	"github.com/aussiebroadwan/storefront/pkg/firebasex"
	"github.com/aussiebroadwan/storefront/pkg/mailx"
	"github.com/aussiebroadwan/storefront/pkg/obs"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the storefront with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	federated *firebasex.Verifier // nil when federated login is disabled
	mailQueue *service.MailQueue
	mailMode  string
	metrics   *obs.Metrics

	// Services
	credentials     *service.CredentialVerifier
	sessions        *service.SessionIssuer
	guard           *service.AccessGuard
	identityService *service.IdentityService
	catalogService  *service.CatalogService
	cartService     *service.CartService
	favoriteService *service.FavoriteService
	orderService    *service.OrderService
	contactService  *service.ContactService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	// cancels the context the federated key set refreshes under
	stopBackground context.CancelFunc
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "storefront",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: obs.NewMetrics(BuildVersion),
	}

	if err := app.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if app.cfg.JWTSecretKey == "" {
		// Only reachable in dev; sessions do not survive a restart.
		app.cfg.JWTSecretKey = cryptox.RandomSecret()
		app.logger.Warn("JWT_SECRET_KEY not set, using a random secret for this run")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.stopBackground = cancel

	if err := app.initFederated(ctx); err != nil {
		cancel()
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initMail(); err != nil {
		cancel()
		_ = app.db.Close()
		return nil, err
	}
	app.initServices()

	if app.cfg.SeedDemoData {
		if err := app.seed(ctx); err != nil {
			cancel()
			_ = app.db.Close()
			return nil, err
		}
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the routed HTTP handler, for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.mailQueue.Start()

	app.logger.Info("storefront starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"federated", app.federated != nil,
		"mail", app.mailMode,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.mailQueue.Stop()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down storefront...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Requests are done; deliver whatever mail they queued
	app.mailQueue.Stop()
	app.stopBackground()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("storefront stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initFederated builds the firebase verifier once, when configured.
func (app *Application) initFederated(ctx context.Context) error {
	if !app.cfg.FederatedEnabled() {
		app.logger.Info("federated login disabled: FIREBASE_PROJECT_ID not set")
		return nil
	}

	v, err := firebasex.New(ctx,
		firebasex.ServiceAccount{
			ProjectID:   app.cfg.FirebaseProjectID,
			ClientEmail: app.cfg.FirebaseClientEmail,
			PrivateKey:  app.cfg.FirebasePrivateKey,
		},
		firebasex.WithKeysURL(app.cfg.FirebaseKeysURL),
		firebasex.WithHTTPClient(&http.Client{Timeout: app.cfg.FederatedTimeout}),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize federated verifier: %w", err)
	}
	app.federated = v
	return nil
}

// initMail picks the SMTP relay when credentials are present, else the log.
func (app *Application) initMail() error {
	var sender mailx.Sender
	if app.cfg.SMTPEnabled() {
		smtp, err := mailx.NewSMTPSender(mailx.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.EmailUser,
			Password: app.cfg.EmailPass,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize mail: %w", err)
		}
		sender = smtp
		app.mailMode = "smtp"
	} else {
		sender = mailx.LogSender{Logger: app.logger}
		app.mailMode = "log"
		app.logger.Warn("EMAIL_USER not set, outgoing mail will only be logged")
	}

	app.mailQueue = service.NewMailQueue(sender, app.logger, app.cfg.MailQueueSize, 30*time.Second)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.credentials = &service.CredentialVerifier{
		Store:   app.db,
		Timeout: app.cfg.FederatedTimeout,
	}
	// Assigning a nil *firebasex.Verifier would make a non-nil interface.
	if app.federated != nil {
		app.credentials.Federated = app.federated
	}

	app.sessions = &service.SessionIssuer{
		Secret: []byte(app.cfg.JWTSecretKey),
		Issuer: app.cfg.JWTIssuer,
	}
	app.guard = &service.AccessGuard{
		Credentials: app.credentials,
		Sessions:    app.sessions,
		Store:       app.db,
	}

	app.identityService = &service.IdentityService{
		Store:       app.db,
		Credentials: app.credentials,
		Sessions:    app.sessions,
		Mail:        app.mailQueue,
		FrontendURL: app.cfg.FrontendURL,
	}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.cartService = &service.CartService{Store: app.db}
	app.favoriteService = &service.FavoriteService{Store: app.db}
	app.orderService = &service.OrderService{Store: app.db}
	app.contactService = &service.ContactService{
		Mail:    app.mailQueue,
		Mailbox: app.cfg.EmailUser,
	}
}

// seed loads the demo accounts and products into an empty database.
func (app *Application) seed(ctx context.Context) error {
	err := (&service.SeedService{Store: app.db}).SeedDemoData(ctx)
	switch {
	case err == nil:
		app.logger.Info("demo data seeded")
	case errors.Is(err, service.ErrAlreadySeeded):
		app.logger.Info("demo data already present, skipping seed")
	default:
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.metrics, app.logger)

	router.UploadDir = app.cfg.UploadDir
	router.CookieSecure = app.cfg.CookieSecure
	router.AllowedOrigins = []string{app.cfg.FrontendURL}
	router.MailMode = app.mailMode

	// Wire services to router
	router.Guard = app.guard
	router.IdentityService = app.identityService
	router.CatalogService = app.catalogService
	router.CartService = app.cartService
	router.FavoriteService = app.favoriteService
	router.OrderService = app.orderService
	router.ContactService = app.contactService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	"github.com/redis/go-redis/v9"
	"go.opencensus.io/stats/view"
	"golang.org/x/sync/errgroup"

	"github.com/pixeltrack/pixeltrack/config"
	"github.com/pixeltrack/pixeltrack/internal/database"
	"github.com/pixeltrack/pixeltrack/internal/domain"
	httpHandler "github.com/pixeltrack/pixeltrack/internal/http"
	"github.com/pixeltrack/pixeltrack/internal/http/middleware"
	"github.com/pixeltrack/pixeltrack/internal/repository"
	"github.com/pixeltrack/pixeltrack/internal/service"
	"github.com/pixeltrack/pixeltrack/pkg/dnsdialer"
	"github.com/pixeltrack/pixeltrack/pkg/geoip"
	"github.com/pixeltrack/pixeltrack/pkg/logger"
	"github.com/pixeltrack/pixeltrack/pkg/mailer"
	"github.com/pixeltrack/pixeltrack/pkg/ratelimiter"
	"github.com/pixeltrack/pixeltrack/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetHandler() http.Handler
	GetDB() *sql.DB
	GetClickHouse() *sql.DB
	GetMailer() mailer.Mailer

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitClickHouse() error
	InitRedis() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config     *config.Config
	logger     logger.Logger
	db         *sql.DB
	clickhouse *sql.DB
	redis      *redis.Client
	mailer     mailer.Mailer
	locator    geoip.Locator
	dialer     *dnsdialer.Dialer
	limiter    *ratelimiter.RateLimiter

	// Repositories
	userRepo         domain.UserRepository
	refreshTokenRepo domain.RefreshTokenRepository
	resetTokenRepo   domain.PasswordResetTokenRepository
	domainRepo       domain.DomainRepository
	pixelRepo        domain.FacebookPixelRepository
	conversionRepo   domain.ConversionRepository
	leadRepo         domain.LeadRepository
	eventRepo        domain.EventRepository

	// Services
	authService       *service.AuthService
	domainService     *service.DomainService
	pixelService      *service.FacebookPixelService
	conversionService *service.ConversionService
	leadService       *service.LeadService
	eventService      *service.EventService
	healthMonitor     *service.HealthMonitor
	tokenSweeper      *service.TokenSweeper

	// HTTP
	handler http.Handler
	server  *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Background workers, stopped through shutdownCtx
	workers *errgroup.Group

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64          // atomic counter for active HTTP requests
	requestWg       sync.WaitGroup // wait group for active requests
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockClickHouse configures the app to use a mock column store
func WithMockClickHouse(db *sql.DB) AppOption {
	return func(a *App) {
		a.clickhouse = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLocator replaces the GeoIP database lookup
func WithLocator(l geoip.Locator) AppOption {
	return func(a *App) {
		a.locator = l
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing and registers the health views
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := view.Register(service.HealthViews...); err != nil {
		return fmt.Errorf("failed to register health views: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("trace_exporter", tracingConfig.TraceExporter).
			WithField("metrics_exporter", tracingConfig.MetricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB connects to Postgres and creates the relational tables
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	password := a.config.Database.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
		a.config.Database.SSLMode, maskedPassword, a.config.Database.DBName))

	if err := database.EnsureSystemDatabaseExists(database.GetPostgresDSN(&a.config.Database), a.config.Database.DBName); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	database.ApplyPoolSettings(db, &a.config.Database)

	a.db = db
	return nil
}

// InitClickHouse connects to the lead and event store
func (a *App) InitClickHouse() error {
	if a.clickhouse != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(a.shutdownCtx, time.Minute)
	defer cancel()

	db, err := database.ConnectClickHouse(ctx, &a.config.ClickHouse)
	if err != nil {
		return fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	a.logger.WithField("addr", a.config.ClickHouse.Addr).
		WithField("database", a.config.ClickHouse.Database).
		Info("Connected to ClickHouse")

	a.clickhouse = db
	return nil
}

// InitRedis connects the lead lease store. Without REDIS_ADDR lead upserts are
// only serialised inside this process.
func (a *App) InitRedis() error {
	if !a.config.Redis.Enabled() {
		a.logger.Info("Redis not configured, using in-process lead locks")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(a.shutdownCtx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	a.logger.WithField("addr", a.config.Redis.Addr).Info("Connected to Redis")
	a.redis = client
	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() || a.config.SMTP.Host == "" {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		APIEndpoint:  a.config.APIEndpoint,
	})
	a.logger.WithField("smtp_host", a.config.SMTP.Host).Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}
	if a.clickhouse == nil {
		return fmt.Errorf("clickhouse must be initialized before repositories")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.refreshTokenRepo = repository.NewRefreshTokenRepository(a.db)
	a.resetTokenRepo = repository.NewPasswordResetTokenRepository(a.db)
	a.domainRepo = repository.NewDomainRepository(a.db)
	a.pixelRepo = repository.NewFacebookPixelRepository(a.db)
	a.conversionRepo = repository.NewConversionRepository(a.db)
	a.leadRepo = repository.NewLeadRepository(a.clickhouse)
	a.eventRepo = repository.NewEventRepository(a.clickhouse)

	return nil
}

// InitServices initializes all services
func (a *App) InitServices() error {
	if a.userRepo == nil {
		return fmt.Errorf("repositories must be initialized before services")
	}

	var err error
	a.authService, err = service.NewAuthService(service.AuthServiceConfig{
		UserRepository:         a.userRepo,
		RefreshTokenRepository: a.refreshTokenRepo,
		ResetTokenRepository:   a.resetTokenRepo,
		Mailer:                 a.mailer,
		JWTSecret:              a.config.Security.JWTSecret,
		AccessTokenTTL:         a.config.Security.AccessTokenTTL,
		RefreshTokenTTL:        a.config.Security.RefreshTokenTTL,
		ResetTokenTTL:          a.config.Security.ResetTokenTTL,
		APIEndpoint:            a.config.APIEndpoint,
		Logger:                 a.logger,
		Tracer:                 tracing.GetTracer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	a.domainService = service.NewDomainService(service.DomainServiceConfig{
		Repository:   a.domainRepo,
		Resolver:     service.NewDNSCnameResolver(a.config.DNS.Nameserver),
		ProxyTarget:  a.config.DNS.ProxyTarget,
		RecordPrefix: a.config.DNS.RecordPrefix,
		Logger:       a.logger,
	})
	a.pixelService = service.NewFacebookPixelService(a.pixelRepo, a.domainService, a.logger)
	a.conversionService = service.NewConversionService(a.conversionRepo, a.domainService, a.logger)

	var locker service.LeadLocker
	if a.redis != nil {
		locker = service.NewRedisLeaseLocker(a.redis, a.config.Redis.LeaseTTL, a.logger)
	}
	a.leadService = service.NewLeadService(service.LeadServiceConfig{
		Repository:    a.leadRepo,
		DomainService: a.domainService,
		Locker:        locker,
		Logger:        a.logger,
	})

	if err := a.initLocator(); err != nil {
		return err
	}

	a.dialer = dnsdialer.New(a.config.Facebook.DNSCacheTTL, a.logger)
	forwarder := service.NewFacebookClient(service.FacebookClientConfig{
		BaseURL:    a.config.Facebook.GraphBaseURL,
		APIVersion: a.config.Facebook.APIVersion,
		HTTPClient: a.dialer.NewHTTPClient(a.config.Facebook.Timeout),
		Logger:     a.logger,
	})

	a.eventService = service.NewEventService(service.EventServiceConfig{
		Repository:     a.eventRepo,
		LeadRepository: a.leadRepo,
		Pixels:         a.pixelRepo,
		Conversions:    a.conversionRepo,
		DomainService:  a.domainService,
		Forwarder:      forwarder,
		Locator:        a.locator,
		Logger:         a.logger,
	})

	checks := map[string]service.Pinger{
		"postgres":   a.db,
		"clickhouse": a.clickhouse,
	}
	if a.redis != nil {
		client := a.redis
		checks["redis"] = service.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}
	a.healthMonitor = service.NewHealthMonitor(service.HealthMonitorConfig{
		Checks:          checks,
		Version:         a.config.Version,
		CheckInterval:   a.config.Monitoring.DatabaseCheckInterval,
		MetricsInterval: a.config.Monitoring.SystemMetricsInterval,
		Logger:          a.logger,
	})
	a.tokenSweeper = service.NewTokenSweeper(a.refreshTokenRepo, a.resetTokenRepo, a.config.Monitoring.TokenSweepInterval, a.logger)

	return nil
}

func (a *App) initLocator() error {
	if a.locator != nil {
		return nil
	}
	if a.config.GeoIP.DBPath == "" {
		a.logger.Info("GeoIP database not configured, events are stored without geo enrichment")
		a.locator = geoip.NoopLocator{}
		return nil
	}

	locator, err := geoip.Open(a.config.GeoIP.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open geoip database: %w", err)
	}
	a.logger.WithField("path", a.config.GeoIP.DBPath).Info("GeoIP database loaded")
	a.locator = locator
	return nil
}

// InitHandlers builds the router
func (a *App) InitHandlers() error {
	if a.authService == nil {
		return fmt.Errorf("services must be initialized before handlers")
	}

	a.limiter = ratelimiter.NewAuthRateLimiter()

	router := httpHandler.NewRouter(httpHandler.RouterConfig{
		AuthService:       a.authService,
		DomainService:     a.domainService,
		PixelService:      a.pixelService,
		ConversionService: a.conversionService,
		LeadService:       a.leadService,
		EventService:      a.eventService,
		Health:            a.healthMonitor,
		RateLimiter:       a.limiter,
		CORSAllowOrigin:   a.config.CORSAllowOrigin,
		Logger:            a.logger,
	})

	a.handler = a.gracefulShutdownMiddleware(router)
	return nil
}

// startWorkers runs the health monitor, the token sweeper and the DNS cache
// refresher until shutdown
func (a *App) startWorkers() {
	group, ctx := errgroup.WithContext(a.shutdownCtx)

	if a.healthMonitor != nil {
		group.Go(func() error { return a.healthMonitor.Run(ctx) })
	}
	if a.tokenSweeper != nil {
		group.Go(func() error { return a.tokenSweeper.Run(ctx) })
	}
	if a.dialer != nil {
		group.Go(func() error { return a.dialer.Run(ctx) })
	}

	a.workers = group
}

// Start starts the background workers and the HTTP server
func (a *App) Start() error {
	if a.handler == nil {
		return fmt.Errorf("handlers must be initialized before start")
	}

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("api_endpoint", a.config.APIEndpoint).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	a.startWorkers()

	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	var err error
	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		err = a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	} else {
		err = a.server.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// stops the workers and rejects new requests
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	workers := a.workers
	a.serverMu.RUnlock()

	var shutdownErr error
	if server == nil {
		a.logger.Info("No server to shutdown")
	} else {
		shutdownTimeout := a.shutdownTimeout
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < shutdownTimeout {
				shutdownTimeout = remaining
			}
		}

		a.logger.WithField("active_requests", a.getActiveRequestCount()).
			WithField("timeout", shutdownTimeout.String()).
			Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.WithField("error", err.Error()).Warn("HTTP server shutdown did not complete")
			shutdownErr = err
		}

		// handlers may still be running when Shutdown times out
		done := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			a.logger.WithField("active_requests", a.getActiveRequestCount()).Warn("Some requests still active, proceeding with shutdown")
		}
	}

	if workers != nil {
		if err := workers.Wait(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Background worker failed")
		}
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil && shutdownErr == nil {
		shutdownErr = cleanupErr
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

// cleanupResources closes every connection the app opened
func (a *App) cleanupResources() error {
	a.logger.Info("Cleaning up resources...")

	if a.limiter != nil {
		a.limiter.Stop()
	}

	var errs []error
	if a.db != nil {
		if a.config.Tracing.Enabled {
			stopStats := ocsql.RecordStats(a.db, 5*time.Second)
			stopStats()
		}
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close postgres: %w", err))
		}
	}
	if a.clickhouse != nil {
		if err := a.clickhouse.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close clickhouse: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.locator != nil {
		if err := a.locator.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close geoip: %w", err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		a.logger.WithField("error", err.Error()).Error("Error during resource cleanup")
	} else {
		a.logger.Info("Resource cleanup completed")
	}
	return err
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting PixelTrack API")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitClickHouse,
		a.InitRedis,
		a.InitMailer,
		a.InitRepositories,
		a.InitServices,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetHandler returns the fully wrapped HTTP handler
func (a *App) GetHandler() http.Handler {
	return a.handler
}

// GetDB returns the Postgres connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetClickHouse returns the column store connection
func (a *App) GetClickHouse() *sql.DB {
	return a.clickhouse
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// GetShutdownContext returns the context cancelled when shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and rejects new ones once shutdown started
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			w.Header().Set("Connection", "close")
			middleware.WriteError(w, r, "Servidor em manutenção, tente novamente", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)

// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/Saiashu12/fulfillment-task/internal/adapters/db"
	"github.com/Saiashu12/fulfillment-task/internal/adapters/network"
	redis_a "github.com/Saiashu12/fulfillment-task/internal/adapters/redis_adapter"
	"github.com/Saiashu12/fulfillment-task/internal/adapters/shopify"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/internal/handlers"
	"github.com/Saiashu12/fulfillment-task/internal/handlers/middleware"
	"github.com/Saiashu12/fulfillment-task/internal/pkg/config"
	"github.com/Saiashu12/fulfillment-task/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	appLogger := logger.SetupLogger("debug", "json")
	slogger := appLogger.Logger

	slogger.Info("starting fulfillment orchestrator",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	// Run database migrations before opening the pool
	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		if cfg.IsProduction() {
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, appLogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	// Graceful shutdown on signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	setupService         *services.SetupService
	consolidationService *services.ConsolidationService
	fulfillmentService   *services.FulfillmentService

	setupHandler   *handlers.SetupHandler
	networkHandler *handlers.NetworkHandler
	orderHandler   *handlers.OrderHandler
	webhookHandler *handlers.WebhookHandler
	healthHandler  *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	setupRepo := db.NewShopSetupRepository(database, logger)
	productRepo := db.NewManagedProductRepository(database, logger)
	orderRepo := db.NewOrderRepository(database, logger)

	// Adapters
	locker := redis_a.NewLocker(redisClient, logger)

	shopifyClient := shopify.NewClient(shopify.Config{
		ShopDomain:  cfg.Shopify.ShopDomain,
		AccessToken: cfg.Shopify.AccessToken,
		APIVersion:  cfg.Shopify.APIVersion,
		Timeout:     cfg.Shopify.Timeout,
	}, logger)
	commerce := shopify.NewGateway(shopifyClient, logger)

	fulfillmentNetwork := network.NewClient(network.Config{
		BaseURL: cfg.Network.BaseURL,
		Timeout: cfg.Network.Timeout,
	}, logger)

	// Services
	deps.setupService = services.NewSetupService(setupRepo, commerce, locker, services.SetupConfig{
		CarrierServiceName:     cfg.Setup.CarrierServiceName,
		FulfillmentServiceName: cfg.Setup.FulfillmentServiceName,
		CarrierCallbackURL:     cfg.Setup.CarrierCallbackURL,
		FulfillmentCallbackURL: cfg.Setup.FulfillmentCallbackURL,
		WebhookCallbackURL:     cfg.Setup.WebhookCallbackURL,
	}, logger)
	deps.consolidationService = services.NewConsolidationService(setupRepo, productRepo, commerce, fulfillmentNetwork, logger)
	deps.fulfillmentService = services.NewFulfillmentService(orderRepo, commerce, fulfillmentNetwork, locker, logger)

	// Handlers
	deps.setupHandler = handlers.NewSetupHandler(
		deps.setupService,
		deps.consolidationService,
		deps.asynqClient,
		database,
		cfg.Shopify.ShopDomain,
		logger,
	)
	deps.networkHandler = handlers.NewNetworkHandler(deps.fulfillmentService, logger)
	deps.orderHandler = handlers.NewOrderHandler(deps.fulfillmentService, productRepo, cfg.Shopify.ShopDomain, logger)
	deps.webhookHandler = handlers.NewWebhookHandler(deps.fulfillmentService, logger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		deps.asynqInspector,
		cfg,
		logger,
	)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	slogger := appLogger.Logger

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(appLogger)(handler)
		handler = middleware.Recovery(slogger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Setup and catalog
	mux.HandleFunc("POST "+apiV1+"/setup/provision", deps.setupHandler.Provision)
	mux.HandleFunc("POST "+apiV1+"/setup/products", deps.setupHandler.SelectProducts)
	mux.HandleFunc("GET "+apiV1+"/setup/jobs/{id}", deps.setupHandler.GetJob)
	mux.HandleFunc("GET "+apiV1+"/catalog/variants", deps.setupHandler.ListCatalogVariants)

	// Orders and products
	mux.HandleFunc("GET "+apiV1+"/orders", deps.orderHandler.ListOrders)
	mux.HandleFunc("GET "+apiV1+"/products", deps.orderHandler.ListProducts)
	mux.HandleFunc("POST "+apiV1+"/orders/{id}/fulfill", deps.orderHandler.FulfillOrder)

	// Endpoints the commerce platform calls back into
	mux.HandleFunc("POST /inventory", deps.networkHandler.Inventory)
	mux.HandleFunc("POST /carrier-service", deps.networkHandler.CarrierService)
	mux.HandleFunc("POST /request-fulfillment", deps.networkHandler.RequestFulfillment)
	mux.HandleFunc("POST /fulfill-order", deps.networkHandler.FulfillOrder)

	// Webhooks
	mux.HandleFunc("POST /webhooks/orders/create", deps.webhookHandler.OrderCreated)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL:    cfg.GetDatabaseURL(),
		EmbeddedSource: db.MigrationFiles,
		TableName:      "schema_migrations",
		SchemaName:     "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}

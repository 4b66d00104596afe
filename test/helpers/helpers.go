// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Saiashu12/fulfillment-task/internal/adapters/db"
	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_fulfillment",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_fulfillment",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for the database to accept connections
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		EmbeddedSource: db.MigrationFiles,
		TableName:      "schema_migrations",
		SchemaName:     "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			BaseURL:     "https://test.example.com",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_fulfillment",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			PoolSize: 10,
		},
		Shopify: config.ShopifyConfig{
			ShopDomain:  "test-shop.myshopify.com",
			AccessToken: "shpat_test",
			APIVersion:  "2024-10",
			Timeout:     10 * time.Second,
		},
		Network: config.NetworkConfig{
			BaseURL: "https://test.example.com",
			Timeout: 10 * time.Second,
		},
		Setup: config.SetupConfig{
			CarrierServiceName:     "Custom Carrier Service",
			FulfillmentServiceName: "Custom Fulfillment Service",
			CarrierCallbackURL:     "https://test.example.com/carrier-service",
			FulfillmentCallbackURL: "https://test.example.com",
			WebhookCallbackURL:     "https://test.example.com/webhooks/orders/create",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestShopSetup creates a fully provisioned shop setup record
func CreateTestShopSetup(overrides ...func(*domain.ShopSetup)) *domain.ShopSetup {
	setup := &domain.ShopSetup{
		Shop:                 "test-shop.myshopify.com",
		CarrierServiceID:     "gid://shopify/DeliveryCarrierService/1",
		FulfillmentServiceID: "gid://shopify/FulfillmentService/1",
		OrderWebhookID:       "gid://shopify/WebhookSubscription/1",
		Step1Completed:       true,
		Step2Completed:       false,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	for _, override := range overrides {
		override(setup)
	}

	return setup
}

// CreateTestOrder creates a test order
func CreateTestOrder(overrides ...func(*domain.Order)) *domain.Order {
	order := &domain.Order{
		ID:            "gid://shopify/Order/1001",
		OrderNumber:   "#1001",
		LineItemCount: 2,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(order)
	}

	return order
}

// CreateTestVariant creates a catalog variant
func CreateTestVariant(n int) domain.CatalogVariant {
	return domain.CatalogVariant{
		ProductID:    fmt.Sprintf("gid://shopify/Product/%d", 8000000+n),
		ProductTitle: fmt.Sprintf("Test Product %d", n),
		VariantID:    fmt.Sprintf("gid://shopify/ProductVariant/%d", 9000000+n),
		VariantTitle: "Default",
		SKU:          fmt.Sprintf("SKU-%03d", n),
	}
}

// CreateTestManagedProduct creates a managed product record
func CreateTestManagedProduct(overrides ...func(*domain.ManagedProduct)) *domain.ManagedProduct {
	product := &domain.ManagedProduct{
		ID:                   uuid.New(),
		Shop:                 "test-shop.myshopify.com",
		ProductID:            "gid://shopify/Product/8000001",
		VariantID:            "gid://shopify/ProductVariant/9000001",
		ProductTitle:         "Test Product 1",
		VariantTitle:         "Default",
		SKU:                  "SKU-001",
		FulfillmentServiceID: "gid://shopify/FulfillmentService/1",
		CreatedAt:            time.Now(),
	}

	for _, override := range overrides {
		override(product)
	}

	return product
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"async_jobs",
		"orders",
		"managed_products",
		"shop_setups",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

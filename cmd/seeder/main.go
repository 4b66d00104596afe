// cmd/seeder/main.go
//
// Seeds demo orders and managed products for local development. The API
// normally learns about orders through the orders/create webhook and about
// products through a consolidation run; this tool shortcuts both so the
// fulfillment flow can be exercised against a fresh database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type demoOrder struct {
	ID            string
	OrderNumber   string
	LineItemCount int
	Status        string
}

type demoProduct struct {
	Shop                 string
	ProductID            string
	VariantID            string
	ProductTitle         string
	VariantTitle         string
	SKU                  string
	FulfillmentServiceID string
}

func demoOrders(count int) []demoOrder {
	orders := make([]demoOrder, 0, count)
	base := time.Now().UnixMilli()
	for i := 0; i < count; i++ {
		// Vary line item counts so single-item declines show up too
		lineItems := 1 + i%3
		orders = append(orders, demoOrder{
			ID:            fmt.Sprintf("gid://shopify/Order/%d", base+int64(i)),
			OrderNumber:   fmt.Sprintf("#%d", 1001+i),
			LineItemCount: lineItems,
			Status:        "PENDING",
		})
	}
	return orders
}

func demoProducts(shop string) []demoProduct {
	titles := []struct {
		product string
		variant string
		sku     string
	}{
		{"Canvas Tote Bag", "Natural", "TOTE-NAT-001"},
		{"Canvas Tote Bag", "Black", "TOTE-BLK-001"},
		{"Enamel Mug", "12oz", "MUG-12-STD"},
		{"Wool Beanie", "One Size", "BEANIE-OS"},
		{"Desk Mat", "Large", "MAT-LG-001"},
	}

	products := make([]demoProduct, 0, len(titles))
	for i, t := range titles {
		products = append(products, demoProduct{
			Shop:                 shop,
			ProductID:            fmt.Sprintf("gid://shopify/Product/%d", 8000000+i/2),
			VariantID:            fmt.Sprintf("gid://shopify/ProductVariant/%d", 9000000+i),
			ProductTitle:         t.product,
			VariantTitle:         t.variant,
			SKU:                  t.sku,
			FulfillmentServiceID: "gid://shopify/FulfillmentService/1",
		})
	}
	return products
}

func seedOrders(ctx context.Context, db *pgxpool.Pool, orders []demoOrder, logger *slog.Logger) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(`
			INSERT INTO orders (id, order_number, line_item_count, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			o.ID, o.OrderNumber, o.LineItemCount, o.Status,
		)
	}

	br := tx.SendBatch(ctx, batch)
	inserted := 0
	for range orders {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return inserted, fmt.Errorf("failed to insert order: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return inserted, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return inserted, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("seeded orders", slog.Int("inserted", inserted), slog.Int("total", len(orders)))
	return inserted, nil
}

func seedProducts(ctx context.Context, db *pgxpool.Pool, products []demoProduct, logger *slog.Logger) (int, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(`
			INSERT INTO managed_products (
				id, shop, product_id, variant_id, product_title,
				variant_title, sku, fulfillment_service_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (product_id, variant_id) DO NOTHING`,
			uuid.New(), p.Shop, p.ProductID, p.VariantID, p.ProductTitle,
			p.VariantTitle, p.SKU, p.FulfillmentServiceID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	inserted := 0
	for range products {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return inserted, fmt.Errorf("failed to insert product: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return inserted, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return inserted, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info("seeded products", slog.Int("inserted", inserted), slog.Int("total", len(products)))
	return inserted, nil
}

func main() {
	var (
		orderCount = flag.Int("orders", 10, "Number of demo orders to create")
		shop       = flag.String("shop", getEnv("SHOPIFY_SHOP_DOMAIN", "demo-shop.myshopify.com"), "Shop domain for managed products")
		skipOrders = flag.Bool("skip-orders", false, "Skip seeding orders")
		skipProds  = flag.Bool("skip-products", false, "Skip seeding managed products")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "fulfillment"),
		getEnv("DB_PASSWORD", "fulfillment_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "fulfillment_orchestrator"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	orders := demoOrders(*orderCount)
	products := demoProducts(*shop)

	if *dryRun {
		for _, o := range orders {
			fmt.Printf("DRY RUN: order %s (%s) line_items=%d\n", o.OrderNumber, o.ID, o.LineItemCount)
		}
		for _, p := range products {
			fmt.Printf("DRY RUN: product %q / %q sku=%s\n", p.ProductTitle, p.VariantTitle, p.SKU)
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	db, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ordersInserted := 0
	if !*skipOrders {
		ordersInserted, err = seedOrders(ctx, db, orders, logger)
		if err != nil {
			logger.Error("failed to seed orders", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	productsInserted := 0
	if !*skipProds {
		productsInserted, err = seedProducts(ctx, db, products, logger)
		if err != nil {
			logger.Error("failed to seed products", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d orders, %d managed products\n", ordersInserted, productsInserted)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

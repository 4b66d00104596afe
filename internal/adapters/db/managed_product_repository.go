// internal/adapters/db/managed_product_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// managedProductRepository implements ports.ManagedProductRepository
type managedProductRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewManagedProductRepository creates a new managed product repository
func NewManagedProductRepository(db *Database, logger *slog.Logger) ports.ManagedProductRepository {
	return &managedProductRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "managed_product")),
	}
}

// SaveBatch persists a batch of managed products in one transaction. A
// conflicting (product_id, variant_id) row is left untouched, so re-running
// a consolidation for an already managed variant is a no-op here.
func (r *managedProductRepository) SaveBatch(ctx context.Context, products []domain.ManagedProduct) error {
	if len(products) == 0 {
		return nil
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}

		query := `
			INSERT INTO managed_products (
				id, shop, product_id, variant_id,
				product_title, variant_title, sku,
				fulfillment_service_id, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (product_id, variant_id) DO NOTHING`

		now := time.Now()
		for i := range products {
			if products[i].ID == uuid.Nil {
				products[i].ID = uuid.New()
			}
			if products[i].CreatedAt.IsZero() {
				products[i].CreatedAt = now
			}

			batch.Queue(query,
				products[i].ID, products[i].Shop, products[i].ProductID, products[i].VariantID,
				products[i].ProductTitle, products[i].VariantTitle, products[i].SKU,
				products[i].FulfillmentServiceID, products[i].CreatedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range products {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("failed to save managed product %d: %w", i, err)
			}
		}

		return nil
	})
}

// FindByKeys returns the managed products matching any of the given
// (product_id, variant_id) pairs.
func (r *managedProductRepository) FindByKeys(ctx context.Context, keys []domain.VariantKey) ([]domain.ManagedProduct, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	or := make(squirrel.Or, 0, len(keys))
	for _, key := range keys {
		or = append(or, squirrel.Eq{"product_id": key.ProductID, "variant_id": key.VariantID})
	}

	qb := squirrel.Select(
		"id", "shop", "product_id", "variant_id",
		"product_title", "variant_title", "sku",
		"fulfillment_service_id", "created_at",
	).From("managed_products").
		Where(or).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query managed products: %w", err)
	}

	return r.scanAll(rows)
}

// List returns all managed products for a shop, newest first.
func (r *managedProductRepository) List(ctx context.Context, shop string) ([]domain.ManagedProduct, error) {
	query := `
		SELECT
			id, shop, product_id, variant_id,
			product_title, variant_title, sku,
			fulfillment_service_id, created_at
		FROM managed_products
		WHERE shop = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, shop)
	if err != nil {
		return nil, fmt.Errorf("failed to query managed products: %w", err)
	}

	return r.scanAll(rows)
}

// Count returns the number of managed products for a shop.
func (r *managedProductRepository) Count(ctx context.Context, shop string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM managed_products WHERE shop = $1`, shop).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count managed products: %w", err)
	}
	return count, nil
}

func (r *managedProductRepository) scanAll(rows pgx.Rows) ([]domain.ManagedProduct, error) {
	defer rows.Close()

	var products []domain.ManagedProduct
	for rows.Next() {
		var p domain.ManagedProduct
		err := rows.Scan(
			&p.ID, &p.Shop, &p.ProductID, &p.VariantID,
			&p.ProductTitle, &p.VariantTitle, &p.SKU,
			&p.FulfillmentServiceID, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan managed product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

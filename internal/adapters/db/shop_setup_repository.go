// internal/adapters/db/shop_setup_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// shopSetupRepository implements ports.ShopSetupRepository
type shopSetupRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewShopSetupRepository creates a new shop setup repository
func NewShopSetupRepository(db *Database, logger *slog.Logger) ports.ShopSetupRepository {
	return &shopSetupRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "shop_setup")),
	}
}

// FindByShop retrieves the provisioning record for a shop. Returns (nil, nil)
// when the shop has never been provisioned.
func (r *shopSetupRepository) FindByShop(ctx context.Context, shop string) (*domain.ShopSetup, error) {
	query := `
		SELECT
			shop, carrier_service_id, fulfillment_service_id, order_webhook_id,
			step1_completed, step2_completed, created_at, updated_at
		FROM shop_setups
		WHERE shop = $1`

	setup := &domain.ShopSetup{}
	err := r.db.QueryRow(ctx, query, shop).Scan(
		&setup.Shop, &setup.CarrierServiceID, &setup.FulfillmentServiceID,
		&setup.OrderWebhookID, &setup.Step1Completed, &setup.Step2Completed,
		&setup.CreatedAt, &setup.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shop setup: %w", err)
	}

	return setup, nil
}

// Upsert writes the provisioning record. Resource ids already stored are
// never replaced with empty values, so partial retries cannot erase progress.
func (r *shopSetupRepository) Upsert(ctx context.Context, setup *domain.ShopSetup) error {
	query := `
		INSERT INTO shop_setups (
			shop, carrier_service_id, fulfillment_service_id, order_webhook_id,
			step1_completed, step2_completed, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (shop) DO UPDATE SET
			carrier_service_id = CASE WHEN EXCLUDED.carrier_service_id <> ''
				THEN EXCLUDED.carrier_service_id ELSE shop_setups.carrier_service_id END,
			fulfillment_service_id = CASE WHEN EXCLUDED.fulfillment_service_id <> ''
				THEN EXCLUDED.fulfillment_service_id ELSE shop_setups.fulfillment_service_id END,
			order_webhook_id = CASE WHEN EXCLUDED.order_webhook_id <> ''
				THEN EXCLUDED.order_webhook_id ELSE shop_setups.order_webhook_id END,
			step1_completed = shop_setups.step1_completed OR EXCLUDED.step1_completed,
			step2_completed = shop_setups.step2_completed OR EXCLUDED.step2_completed,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at`

	now := time.Now()
	if setup.CreatedAt.IsZero() {
		setup.CreatedAt = now
	}
	setup.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		setup.Shop, setup.CarrierServiceID, setup.FulfillmentServiceID,
		setup.OrderWebhookID, setup.Step1Completed, setup.Step2Completed,
		setup.CreatedAt, setup.UpdatedAt,
	).Scan(&setup.CreatedAt, &setup.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert shop setup: %w", err)
	}

	r.logger.DebugContext(ctx, "shop setup saved",
		slog.String("shop", setup.Shop),
		slog.Bool("step1_completed", setup.Step1Completed),
		slog.Bool("step2_completed", setup.Step2Completed))

	return nil
}

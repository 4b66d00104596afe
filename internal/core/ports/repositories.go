// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

// ShopSetupRepository is the persistence port for shop provisioning state.
// FindByShop returns (nil, nil) when the shop has no setup record yet.
type ShopSetupRepository interface {
	FindByShop(ctx context.Context, shop string) (*domain.ShopSetup, error)
	Upsert(ctx context.Context, setup *domain.ShopSetup) error
}

// ManagedProductRepository is the persistence port for variants managed by
// a fulfillment service.
type ManagedProductRepository interface {
	SaveBatch(ctx context.Context, products []domain.ManagedProduct) error
	FindByKeys(ctx context.Context, keys []domain.VariantKey) ([]domain.ManagedProduct, error)
	List(ctx context.Context, shop string) ([]domain.ManagedProduct, error)
	Count(ctx context.Context, shop string) (int64, error)
}

// OrderListParams filters the order listing.
type OrderListParams struct {
	Status   domain.OrderStatus
	Page     int
	PageSize int
}

// OrderRepository is the persistence port for orders. FindByID returns
// (nil, nil) when the order is unknown.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Upsert(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	RecordTracking(ctx context.Context, id string, tracking domain.TrackingInfo) error
	List(ctx context.Context, params OrderListParams) ([]*domain.Order, error)
}

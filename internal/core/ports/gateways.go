// internal/core/ports/gateways.go
package ports

import (
	"context"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

// FulfillmentCreateRequest carries the tracking info and fulfillment-order
// handle for the platform's fulfillment-creation mutation. Customer
// notification is always suppressed.
type FulfillmentCreateRequest struct {
	FulfillmentOrderID string
	TrackingCompany    string
	TrackingNumber     string
	TrackingURL        string
}

// CommerceGateway abstracts the commerce platform's admin API. It owns no
// state; create calls surface recognized "already exists" responses as
// *domain.ConflictError with a tagged kind, anything else as
// *domain.ExternalError.
type CommerceGateway interface {
	// Provisioning.
	CreateCarrierService(ctx context.Context, name, callbackURL string) (string, error)
	FindCarrierServiceByName(ctx context.Context, name string) (string, error)
	CreateFulfillmentService(ctx context.Context, name, callbackURL string) (string, error)
	FindFulfillmentServiceByName(ctx context.Context, name string) (string, error)
	CreateOrderWebhook(ctx context.Context, callbackURL string) (string, error)

	// Catalog and inventory.
	ListCatalogVariants(ctx context.Context, first int) ([]domain.CatalogVariant, error)
	FulfillmentServiceLocation(ctx context.Context, fulfillmentServiceID string) (string, error)
	InventoryItemsForVariants(ctx context.Context, variantIDs []string) (map[string]string, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	SetInventoryQuantity(ctx context.Context, inventoryItemID, locationID string, quantity int) error
	ActivateInventory(ctx context.Context, inventoryItemID, locationID string) error

	// Fulfillment confirmation.
	FulfillmentOrderIDs(ctx context.Context, orderID string) ([]string, error)
	CreateFulfillment(ctx context.Context, req FulfillmentCreateRequest) error
}

// FulfillmentNetwork abstracts the external fulfillment network's JSON API.
// The network is an independently-failing remote system even when its
// endpoints are served by this process.
type FulfillmentNetwork interface {
	InventoryBySKU(ctx context.Context, sku string) (int, error)
	FulfillOrder(ctx context.Context, orderID string) (*domain.TrackingInfo, error)
}

// internal/core/domain/setup.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShopSetup tracks the provisioning state of a single shop. Each external
// resource id is recorded as soon as it is known; once non-empty it is never
// overwritten with a different value.
type ShopSetup struct {
	Shop                 string    `json:"shop"`
	CarrierServiceID     string    `json:"carrier_service_id,omitempty"`
	FulfillmentServiceID string    `json:"fulfillment_service_id,omitempty"`
	OrderWebhookID       string    `json:"order_webhook_id,omitempty"`
	Step1Completed       bool      `json:"step1_completed"`
	Step2Completed       bool      `json:"step2_completed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// FullyProvisioned reports whether all three external resources are known.
func (s *ShopSetup) FullyProvisioned() bool {
	return s.CarrierServiceID != "" && s.FulfillmentServiceID != "" && s.OrderWebhookID != ""
}

// VariantKey identifies a product variant on the commerce platform.
type VariantKey struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
}

// CatalogVariant is a flattened product/variant row from the commerce
// platform's catalog, used for operator selection and server-side
// re-validation of selections.
type CatalogVariant struct {
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title"`
	VariantID    string `json:"variant_id"`
	VariantTitle string `json:"variant_title"`
	SKU          string `json:"sku"`
}

// Key returns the variant's identity pair.
func (v CatalogVariant) Key() VariantKey {
	return VariantKey{ProductID: v.ProductID, VariantID: v.VariantID}
}

// Title renders the operator-facing label for the variant.
func (v CatalogVariant) Title() string {
	return v.ProductTitle + " - " + v.VariantTitle
}

// ManagedProduct is a catalog variant whose inventory is managed by the
// shop's fulfillment service. A (ProductID, VariantID) pair is managed by at
// most one fulfillment service at a time.
type ManagedProduct struct {
	ID                   uuid.UUID `json:"id"`
	Shop                 string    `json:"shop"`
	ProductID            string    `json:"product_id"`
	VariantID            string    `json:"variant_id"`
	ProductTitle         string    `json:"product_title"`
	VariantTitle         string    `json:"variant_title"`
	SKU                  string    `json:"sku"`
	FulfillmentServiceID string    `json:"fulfillment_service_id"`
	CreatedAt            time.Time `json:"created_at"`
}

// Title renders the operator-facing label for the managed variant.
func (p ManagedProduct) Title() string {
	return p.ProductTitle + " - " + p.VariantTitle
}

// Location is a merchant location on the commerce platform, read-only to
// this service. The fulfillment target is whichever location is attached to
// the designated fulfillment service, not a stored attribute.
type Location struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	FulfillsOnlineOrders bool   `json:"fulfills_online_orders"`
}

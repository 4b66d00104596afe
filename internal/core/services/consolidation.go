// internal/core/services/consolidation.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// catalogPageSize matches the platform's first:N pagination window for the
// operator catalog.
const catalogPageSize = 100

// ConsolidationService converges per-variant availability onto the shop's
// single fulfillment location. Per-location failures are collected into the
// report instead of aborting the batch.
type ConsolidationService struct {
	setups   ports.ShopSetupRepository
	products ports.ManagedProductRepository
	commerce ports.CommerceGateway
	network  ports.FulfillmentNetwork
	logger   *slog.Logger
}

// NewConsolidationService creates a new consolidation engine.
func NewConsolidationService(setups ports.ShopSetupRepository, products ports.ManagedProductRepository, commerce ports.CommerceGateway, network ports.FulfillmentNetwork, logger *slog.Logger) *ConsolidationService {
	return &ConsolidationService{
		setups:   setups,
		products: products,
		commerce: commerce,
		network:  network,
		logger:   logger.With(slog.String("service", "consolidation")),
	}
}

// CatalogVariants lists the flattened product/variant catalog for operator
// selection.
func (s *ConsolidationService) CatalogVariants(ctx context.Context) ([]domain.CatalogVariant, error) {
	variants, err := s.commerce.ListCatalogVariants(ctx, catalogPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return variants, nil
}

// ValidateSelection checks a selection before a consolidation run is
// queued, so duplicate picks are rejected synchronously instead of dying
// inside a background job.
func (s *ConsolidationService) ValidateSelection(ctx context.Context, keys []domain.VariantKey) error {
	if len(keys) == 0 {
		return &domain.ValidationError{Field: "products", Reason: "select at least one product"}
	}
	return s.rejectAlreadyManaged(ctx, keys)
}

// Consolidate validates the selected variants against a fresh catalog
// snapshot, converges their availability onto the fulfillment service's
// location, and persists them as managed products. The returned report
// carries one result per variant and per non-target location.
func (s *ConsolidationService) Consolidate(ctx context.Context, shop string, keys []domain.VariantKey) (*domain.ConsolidationReport, error) {
	if len(keys) == 0 {
		return nil, &domain.ValidationError{Field: "products", Reason: "select at least one product"}
	}

	setup, err := s.setups.FindByShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop setup: %w", err)
	}
	if setup == nil || !setup.Step1Completed || setup.FulfillmentServiceID == "" {
		return nil, &domain.ValidationError{
			Field:  "shop",
			Reason: "fulfillment service is not configured, complete provisioning first",
		}
	}

	selected, err := s.revalidateSelection(ctx, keys)
	if err != nil {
		return nil, err
	}

	if err := s.rejectAlreadyManaged(ctx, keys); err != nil {
		return nil, err
	}

	targetLocationID, err := s.commerce.FulfillmentServiceLocation(ctx, setup.FulfillmentServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fulfillment location: %w", err)
	}

	variantIDs := make([]string, len(selected))
	for i, v := range selected {
		variantIDs[i] = v.VariantID
	}
	itemMap, err := s.commerce.InventoryItemsForVariants(ctx, variantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve inventory items: %w", err)
	}

	locations, err := s.commerce.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	report := &domain.ConsolidationReport{
		Shop:             shop,
		TargetLocationID: targetLocationID,
	}
	for _, variant := range selected {
		result := s.consolidateVariant(ctx, variant, itemMap, locations, targetLocationID)
		report.Variants = append(report.Variants, result)
	}

	managed := make([]domain.ManagedProduct, len(selected))
	now := time.Now()
	for i, v := range selected {
		managed[i] = domain.ManagedProduct{
			ID:                   uuid.New(),
			Shop:                 shop,
			ProductID:            v.ProductID,
			VariantID:            v.VariantID,
			ProductTitle:         v.ProductTitle,
			VariantTitle:         v.VariantTitle,
			SKU:                  v.SKU,
			FulfillmentServiceID: setup.FulfillmentServiceID,
			CreatedAt:            now,
		}
	}
	if err := s.products.SaveBatch(ctx, managed); err != nil {
		return report, fmt.Errorf("failed to persist managed products: %w", err)
	}

	// Per-location zeroing failures are reported, not blocking.
	setup.Step2Completed = true
	if err := s.setups.Upsert(ctx, setup); err != nil {
		return report, fmt.Errorf("failed to mark consolidation complete: %w", err)
	}

	if failed := report.PartialFailures(); len(failed) > 0 {
		s.logger.WarnContext(ctx, "consolidation finished with partial failures",
			slog.String("shop", shop),
			slog.Int("failed_variants", len(failed)),
			slog.Int("total_variants", len(report.Variants)))
	} else {
		s.logger.InfoContext(ctx, "consolidation complete",
			slog.String("shop", shop),
			slog.Int("variants", len(report.Variants)))
	}
	return report, nil
}

// revalidateSelection resolves the selected keys against the current
// catalog. Client-echoed titles and SKUs are never trusted; everything is
// taken from the fresh snapshot.
func (s *ConsolidationService) revalidateSelection(ctx context.Context, keys []domain.VariantKey) ([]domain.CatalogVariant, error) {
	catalog, err := s.commerce.ListCatalogVariants(ctx, catalogPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot catalog: %w", err)
	}

	byKey := make(map[domain.VariantKey]domain.CatalogVariant, len(catalog))
	for _, v := range catalog {
		byKey[v.Key()] = v
	}

	selected := make([]domain.CatalogVariant, 0, len(keys))
	for _, key := range keys {
		variant, ok := byKey[key]
		if !ok {
			return nil, &domain.ValidationError{
				Field:  "products",
				Reason: fmt.Sprintf("variant %s is not in the current catalog", key.VariantID),
			}
		}
		selected = append(selected, variant)
	}
	return selected, nil
}

func (s *ConsolidationService) rejectAlreadyManaged(ctx context.Context, keys []domain.VariantKey) error {
	existing, err := s.products.FindByKeys(ctx, keys)
	if err != nil {
		return fmt.Errorf("failed to check managed products: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}

	titles := make([]string, len(existing))
	for i, p := range existing {
		titles[i] = p.Title()
	}
	reason := "this product is already added: " + strings.Join(titles, ", ")
	if len(existing) > 1 {
		reason = "these products are already added: " + strings.Join(titles, ", ")
	}
	return &domain.ValidationError{Field: "products", Reason: reason}
}

// consolidateVariant zeroes availability at every non-target location, then
// activates the item at the target with the authoritative network quantity.
// All zero-outs are attempted before the activation call so stock is never
// counted at two locations because of our own write ordering.
func (s *ConsolidationService) consolidateVariant(ctx context.Context, variant domain.CatalogVariant, itemMap map[string]string, locations []domain.Location, targetLocationID string) domain.VariantResult {
	result := domain.VariantResult{VariantID: variant.VariantID, SKU: variant.SKU}

	inventoryItemID, ok := itemMap[variant.VariantID]
	if !ok {
		result.Skipped = true
		result.Warning = "no inventory item mapping for variant"
		s.logger.WarnContext(ctx, "skipping variant without inventory item",
			slog.String("variant_id", variant.VariantID))
		return result
	}

	quantity, err := s.network.InventoryBySKU(ctx, variant.SKU)
	if err != nil {
		result.Warning = fmt.Sprintf("inventory lookup failed: %v", err)
		return result
	}
	result.Quantity = quantity

	// The zero-outs are independent corrections and may run concurrently,
	// but every one of them is attempted before the target activation.
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, location := range locations {
		if location.ID == targetLocationID {
			continue
		}
		wg.Add(1)
		go func(loc domain.Location) {
			defer wg.Done()
			locResult := domain.LocationResult{LocationID: loc.ID, Success: true}
			if err := s.commerce.SetInventoryQuantity(ctx, inventoryItemID, loc.ID, 0); err != nil {
				locResult.Success = false
				locResult.Reason = err.Error()
				s.logger.WarnContext(ctx, "failed to zero inventory at location",
					slog.String("variant_id", variant.VariantID),
					slog.String("location_id", loc.ID),
					slog.String("error", err.Error()))
			}
			mu.Lock()
			result.Locations = append(result.Locations, locResult)
			mu.Unlock()
		}(location)
	}
	wg.Wait()

	if err := s.commerce.ActivateInventory(ctx, inventoryItemID, targetLocationID); err != nil {
		result.Warning = fmt.Sprintf("activation failed: %v", err)
		return result
	}
	if err := s.commerce.SetInventoryQuantity(ctx, inventoryItemID, targetLocationID, quantity); err != nil {
		result.Warning = fmt.Sprintf("failed to set target quantity: %v", err)
		return result
	}
	result.Activated = true
	return result
}

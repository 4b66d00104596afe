// internal/adapters/shopify/gateway.go
package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// Gateway implements the commerce platform port on top of the Shopify
// Admin GraphQL API.
type Gateway struct {
	client *Client
	logger *slog.Logger
}

// Statically assert that *Gateway implements the CommerceGateway interface.
var _ ports.CommerceGateway = (*Gateway)(nil)

// NewGateway creates a new commerce gateway.
func NewGateway(client *Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		client: client,
		logger: logger.With(slog.String("gateway", "shopify")),
	}
}

func (g *Gateway) execute(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) error {
	data, err := g.client.Execute(ctx, query, variables)
	if err != nil {
		return &domain.ExternalError{System: "shopify", Operation: operation, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.ExternalError{System: "shopify", Operation: operation, Err: fmt.Errorf("failed to decode payload: %w", err)}
	}
	return nil
}

// fatalUserErrors converts non-create userErrors into an external error.
func fatalUserErrors(operation string, errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}
	return &domain.ExternalError{
		System:    "shopify",
		Operation: operation,
		Err:       errors.New(strings.Join(JoinMessages(errs), "; ")),
	}
}

// CreateCarrierService registers the rate callback. A recognized "already
// configured" user error comes back as an adoptable *domain.ConflictError.
func (g *Gateway) CreateCarrierService(ctx context.Context, name, callbackURL string) (string, error) {
	var resp struct {
		CarrierServiceCreate struct {
			CarrierService *struct {
				ID string `json:"id"`
			} `json:"carrierService"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"carrierServiceCreate"`
	}

	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"name":                     name,
			"callbackUrl":              callbackURL,
			"active":                   true,
			"supportsServiceDiscovery": true,
		},
	}
	if err := g.execute(ctx, "carrierServiceCreate", carrierServiceCreateMutation, variables, &resp); err != nil {
		return "", err
	}

	payload := resp.CarrierServiceCreate
	if err := classifyUserErrors("carrier service", payload.UserErrors); err != nil {
		return "", err
	}
	if payload.CarrierService == nil {
		return "", &domain.ExternalError{System: "shopify", Operation: "carrierServiceCreate", Err: errors.New("no payload returned")}
	}
	return payload.CarrierService.ID, nil
}

// FindCarrierServiceByName looks up a carrier service for adoption.
func (g *Gateway) FindCarrierServiceByName(ctx context.Context, name string) (string, error) {
	var resp struct {
		CarrierServices struct {
			Edges []struct {
				Node struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"carrierServices"`
	}

	variables := map[string]interface{}{
		"first": 50,
		"query": fmt.Sprintf("name:%q", name),
	}
	if err := g.execute(ctx, "carrierServices", carrierServicesQuery, variables, &resp); err != nil {
		return "", err
	}

	for _, edge := range resp.CarrierServices.Edges {
		if edge.Node.Name == name {
			return edge.Node.ID, nil
		}
	}
	return "", &domain.NotFoundError{Resource: "carrier service", ID: name}
}

// CreateFulfillmentService registers the fulfillment service. A recognized
// "name has already been taken" user error comes back as an adoptable
// *domain.ConflictError.
func (g *Gateway) CreateFulfillmentService(ctx context.Context, name, callbackURL string) (string, error) {
	var resp struct {
		FulfillmentServiceCreate struct {
			FulfillmentService *struct {
				ID string `json:"id"`
			} `json:"fulfillmentService"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"fulfillmentServiceCreate"`
	}

	variables := map[string]interface{}{
		"name":                   name,
		"callbackUrl":            callbackURL,
		"trackingSupport":        true,
		"inventoryManagement":    true,
		"requiresShippingMethod": true,
	}
	if err := g.execute(ctx, "fulfillmentServiceCreate", fulfillmentServiceCreateMutation, variables, &resp); err != nil {
		return "", err
	}

	payload := resp.FulfillmentServiceCreate
	if err := classifyUserErrors("fulfillment service", payload.UserErrors); err != nil {
		return "", err
	}
	if payload.FulfillmentService == nil {
		return "", &domain.ExternalError{System: "shopify", Operation: "fulfillmentServiceCreate", Err: errors.New("no payload returned")}
	}
	return payload.FulfillmentService.ID, nil
}

// FindFulfillmentServiceByName looks up a fulfillment service for adoption,
// matched by serviceName.
func (g *Gateway) FindFulfillmentServiceByName(ctx context.Context, name string) (string, error) {
	var resp struct {
		Shop struct {
			FulfillmentServices []struct {
				ID          string `json:"id"`
				ServiceName string `json:"serviceName"`
			} `json:"fulfillmentServices"`
		} `json:"shop"`
	}

	if err := g.execute(ctx, "fulfillmentServices", fulfillmentServiceListQuery, nil, &resp); err != nil {
		return "", err
	}

	for _, fs := range resp.Shop.FulfillmentServices {
		if fs.ServiceName == name {
			return fs.ID, nil
		}
	}
	return "", &domain.NotFoundError{Resource: "fulfillment service", ID: name}
}

// CreateOrderWebhook subscribes to order-created events. Duplicate webhook
// registration has no adoption path: any user error is fatal.
func (g *Gateway) CreateOrderWebhook(ctx context.Context, callbackURL string) (string, error) {
	var resp struct {
		WebhookSubscriptionCreate struct {
			WebhookSubscription *struct {
				ID string `json:"id"`
			} `json:"webhookSubscription"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"webhookSubscriptionCreate"`
	}

	variables := map[string]interface{}{"callbackUrl": callbackURL}
	if err := g.execute(ctx, "webhookSubscriptionCreate", webhookCreateMutation, variables, &resp); err != nil {
		return "", err
	}

	payload := resp.WebhookSubscriptionCreate
	if err := fatalUserErrors("webhookSubscriptionCreate", payload.UserErrors); err != nil {
		return "", err
	}
	if payload.WebhookSubscription == nil {
		return "", &domain.ExternalError{System: "shopify", Operation: "webhookSubscriptionCreate", Err: errors.New("no payload returned")}
	}
	return payload.WebhookSubscription.ID, nil
}

// ListCatalogVariants flattens products and variants into selection rows.
func (g *Gateway) ListCatalogVariants(ctx context.Context, first int) ([]domain.CatalogVariant, error) {
	var resp struct {
		Products struct {
			Nodes []struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Variants struct {
					Nodes []struct {
						ID    string `json:"id"`
						Title string `json:"title"`
						SKU   string `json:"sku"`
					} `json:"nodes"`
				} `json:"variants"`
			} `json:"nodes"`
		} `json:"products"`
	}

	variables := map[string]interface{}{"first": first}
	if err := g.execute(ctx, "products", productsQuery, variables, &resp); err != nil {
		return nil, err
	}

	var variants []domain.CatalogVariant
	for _, product := range resp.Products.Nodes {
		for _, variant := range product.Variants.Nodes {
			variants = append(variants, domain.CatalogVariant{
				ProductID:    product.ID,
				ProductTitle: product.Title,
				VariantID:    variant.ID,
				VariantTitle: variant.Title,
				SKU:          variant.SKU,
			})
		}
	}
	return variants, nil
}

// FulfillmentServiceLocation resolves the location attached to the
// fulfillment service; its absence is a business failure.
func (g *Gateway) FulfillmentServiceLocation(ctx context.Context, fulfillmentServiceID string) (string, error) {
	var resp struct {
		FulfillmentService *struct {
			ID       string `json:"id"`
			Location *struct {
				ID string `json:"id"`
			} `json:"location"`
		} `json:"fulfillmentService"`
	}

	variables := map[string]interface{}{"id": fulfillmentServiceID}
	if err := g.execute(ctx, "fulfillmentService", fulfillmentServiceLocationQuery, variables, &resp); err != nil {
		return "", err
	}

	if resp.FulfillmentService == nil || resp.FulfillmentService.Location == nil {
		return "", &domain.NotFoundError{Resource: "fulfillment service location", ID: fulfillmentServiceID}
	}
	return resp.FulfillmentService.Location.ID, nil
}

// InventoryItemsForVariants resolves inventory-item handles for a batch of
// variants in a single round trip. Variants with no mapping are simply
// absent from the returned map.
func (g *Gateway) InventoryItemsForVariants(ctx context.Context, variantIDs []string) (map[string]string, error) {
	var resp struct {
		Nodes []*struct {
			ID            string `json:"id"`
			InventoryItem *struct {
				ID string `json:"id"`
			} `json:"inventoryItem"`
		} `json:"nodes"`
	}

	ids := make([]interface{}, len(variantIDs))
	for i, id := range variantIDs {
		ids[i] = id
	}
	variables := map[string]interface{}{"ids": ids}
	if err := g.execute(ctx, "inventoryItems", inventoryItemsQuery, variables, &resp); err != nil {
		return nil, err
	}

	itemMap := make(map[string]string, len(resp.Nodes))
	for _, node := range resp.Nodes {
		if node != nil && node.InventoryItem != nil {
			itemMap[node.ID] = node.InventoryItem.ID
		}
	}
	return itemMap, nil
}

// ListLocations lists the merchant's locations.
func (g *Gateway) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var resp struct {
		Locations struct {
			Nodes []struct {
				ID                   string `json:"id"`
				Name                 string `json:"name"`
				FulfillsOnlineOrders bool   `json:"fulfillsOnlineOrders"`
			} `json:"nodes"`
		} `json:"locations"`
	}

	if err := g.execute(ctx, "locations", locationsQuery, nil, &resp); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, len(resp.Locations.Nodes))
	for i, node := range resp.Locations.Nodes {
		locations[i] = domain.Location{
			ID:                   node.ID,
			Name:                 node.Name,
			FulfillsOnlineOrders: node.FulfillsOnlineOrders,
		}
	}
	return locations, nil
}

// SetInventoryQuantity writes an absolute available quantity for the item
// at one location.
func (g *Gateway) SetInventoryQuantity(ctx context.Context, inventoryItemID, locationID string, quantity int) error {
	var resp struct {
		InventorySetQuantities struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventorySetQuantities"`
	}

	variables := map[string]interface{}{
		"inventoryItemId": inventoryItemID,
		"locationId":      locationID,
		"quantity":        quantity,
	}
	if err := g.execute(ctx, "inventorySetQuantities", inventorySetQuantitiesMutation, variables, &resp); err != nil {
		return err
	}
	return fatalUserErrors("inventorySetQuantities", resp.InventorySetQuantities.UserErrors)
}

// ActivateInventory stocks the inventory item at a location.
func (g *Gateway) ActivateInventory(ctx context.Context, inventoryItemID, locationID string) error {
	var resp struct {
		InventoryActivate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventoryActivate"`
	}

	variables := map[string]interface{}{
		"inventoryItemId": inventoryItemID,
		"locationId":      locationID,
	}
	if err := g.execute(ctx, "inventoryActivate", inventoryActivateMutation, variables, &resp); err != nil {
		return err
	}
	return fatalUserErrors("inventoryActivate", resp.InventoryActivate.UserErrors)
}

// FulfillmentOrderIDs fetches the order's fulfillment-order handles.
func (g *Gateway) FulfillmentOrderIDs(ctx context.Context, orderID string) ([]string, error) {
	var resp struct {
		Order *struct {
			FulfillmentOrders struct {
				Edges []struct {
					Node struct {
						ID string `json:"id"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"fulfillmentOrders"`
		} `json:"order"`
	}

	variables := map[string]interface{}{"id": orderGID(orderID)}
	if err := g.execute(ctx, "orderFulfillmentOrders", orderFulfillmentOrdersQuery, variables, &resp); err != nil {
		return nil, err
	}

	if resp.Order == nil {
		return nil, nil
	}
	ids := make([]string, 0, len(resp.Order.FulfillmentOrders.Edges))
	for _, edge := range resp.Order.FulfillmentOrders.Edges {
		ids = append(ids, edge.Node.ID)
	}
	return ids, nil
}

// CreateFulfillment submits the fulfillment-creation mutation. Field-level
// user errors are surfaced as concatenated messages.
func (g *Gateway) CreateFulfillment(ctx context.Context, req ports.FulfillmentCreateRequest) error {
	var resp struct {
		FulfillmentCreate struct {
			UserErrors []UserError `json:"userErrors"`
		} `json:"fulfillmentCreate"`
	}

	variables := map[string]interface{}{
		"fulfillmentOrderId": req.FulfillmentOrderID,
		"trackingCompany":    req.TrackingCompany,
		"trackingNumber":     req.TrackingNumber,
		"trackingUrl":        req.TrackingURL,
	}
	if err := g.execute(ctx, "fulfillmentCreate", fulfillmentCreateMutation, variables, &resp); err != nil {
		return err
	}
	return fatalUserErrors("fulfillmentCreate", resp.FulfillmentCreate.UserErrors)
}

// orderGID builds the platform's global id for a numeric order id; ids that
// already carry the gid scheme pass through.
func orderGID(orderID string) string {
	if strings.HasPrefix(orderID, "gid://") {
		return orderID
	}
	return "gid://shopify/Order/" + orderID
}

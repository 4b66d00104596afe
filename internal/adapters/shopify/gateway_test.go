// internal/adapters/shopify/gateway_test.go
package shopify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

func testGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		ShopDomain:  "test-shop.myshopify.com",
		AccessToken: "shpat_test",
		APIVersion:  "2024-10",
		Timeout:     5 * time.Second,
	}, slog.Default()).WithEndpoint(server.URL)

	return NewGateway(client, slog.Default())
}

func graphqlData(t *testing.T, data string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]json.RawMessage{"data": json.RawMessage(data)})
	require.NoError(t, err)
	return body
}

func TestGateway_CreateCarrierService(t *testing.T) {
	tests := []struct {
		name          string
		response      string
		expectedID    string
		expectedKind  domain.ConflictKind
		expectedError bool
	}{
		{
			name: "created",
			response: `{"carrierServiceCreate": {
				"carrierService": {"id": "gid://shopify/DeliveryCarrierService/1"},
				"userErrors": []
			}}`,
			expectedID: "gid://shopify/DeliveryCarrierService/1",
		},
		{
			name: "adoptable_conflict",
			response: `{"carrierServiceCreate": {
				"carrierService": null,
				"userErrors": [{"field": null, "message": "Carrier service is already configured"}]
			}}`,
			expectedError: true,
			expectedKind:  domain.ConflictCarrierAlreadyConfigured,
		},
		{
			name: "fatal_user_error",
			response: `{"carrierServiceCreate": {
				"carrierService": null,
				"userErrors": [{"field": ["callbackUrl"], "message": "Callback URL is invalid"}]
			}}`,
			expectedError: true,
			expectedKind:  domain.ConflictNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
				w.Write(graphqlData(t, tt.response))
			})

			id, err := gw.CreateCarrierService(context.Background(), "Custom Carrier Service", "https://example.com/carrier-service")
			if !tt.expectedError {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedKind != domain.ConflictNone,
				domain.IsAdoptableConflict(err, tt.expectedKind))
		})
	}
}

func TestGateway_FindCarrierServiceByName(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(graphqlData(t, `{"carrierServices": {"edges": [
			{"node": {"id": "gid://shopify/DeliveryCarrierService/1", "name": "Custom Carrier Service"}},
			{"node": {"id": "gid://shopify/DeliveryCarrierService/2", "name": "Other"}}
		]}}`))
	})

	id, err := gw.FindCarrierServiceByName(context.Background(), "Custom Carrier Service")
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/DeliveryCarrierService/1", id)

	_, err = gw.FindCarrierServiceByName(context.Background(), "Missing Service")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGateway_ListCatalogVariants(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(graphqlData(t, `{"products": {"nodes": [
			{"id": "gid://shopify/Product/1", "title": "Mug", "variants": {"nodes": [
				{"id": "gid://shopify/ProductVariant/11", "title": "Blue", "sku": "MUG-BLUE"},
				{"id": "gid://shopify/ProductVariant/12", "title": "Red", "sku": "MUG-RED"}
			]}}
		]}}`))
	})

	variants, err := gw.ListCatalogVariants(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "Mug - Blue", variants[0].Title())
	assert.Equal(t, "MUG-RED", variants[1].SKU)
}

func TestGateway_InventoryItemsForVariants_SkipsUnmapped(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(graphqlData(t, `{"nodes": [
			{"id": "gid://shopify/ProductVariant/11", "inventoryItem": {"id": "gid://shopify/InventoryItem/21"}},
			{"id": "gid://shopify/ProductVariant/12", "inventoryItem": null},
			null
		]}`))
	})

	itemMap, err := gw.InventoryItemsForVariants(context.Background(), []string{
		"gid://shopify/ProductVariant/11",
		"gid://shopify/ProductVariant/12",
		"gid://shopify/ProductVariant/13",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"gid://shopify/ProductVariant/11": "gid://shopify/InventoryItem/21",
	}, itemMap)
}

func TestGateway_FulfillmentOrderIDs_BuildsOrderGID(t *testing.T) {
	var gotVariables map[string]interface{}
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotVariables = req.Variables

		w.Write(graphqlData(t, `{"order": {"fulfillmentOrders": {"edges": [
			{"node": {"id": "gid://shopify/FulfillmentOrder/7"}}
		]}}}`))
	})

	ids, err := gw.FulfillmentOrderIDs(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"gid://shopify/FulfillmentOrder/7"}, ids)
	assert.Equal(t, "gid://shopify/Order/42", gotVariables["id"])
}

func TestGateway_CreateFulfillment_SurfacesUserErrors(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(graphqlData(t, `{"fulfillmentCreate": {"userErrors": [
			{"field": ["trackingInfo"], "message": "Tracking number is invalid"},
			{"field": null, "message": "Fulfillment order is closed"}
		]}}`))
	})

	err := gw.CreateFulfillment(context.Background(), ports.FulfillmentCreateRequest{
		FulfillmentOrderID: "gid://shopify/FulfillmentOrder/7",
		TrackingCompany:    domain.TrackingCompany,
		TrackingNumber:     "TRK-42-1",
	})
	require.Error(t, err)

	var external *domain.ExternalError
	require.ErrorAs(t, err, &external)
	assert.Contains(t, external.Error(), "Tracking number is invalid")
	assert.Contains(t, external.Error(), "Fulfillment order is closed")
}

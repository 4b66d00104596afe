// internal/handlers/network_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/internal/handlers"
	"github.com/Saiashu12/fulfillment-task/test/helpers"
	"github.com/Saiashu12/fulfillment-task/test/mocks"
)

func newNetworkHandler(t *testing.T) (*mocks.MockOrderRepository, *handlers.NetworkHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	commerce := mocks.NewMockCommerceGateway(ctrl)
	network := mocks.NewMockFulfillmentNetwork(ctrl)
	locker := mocks.NewMockLocker(ctrl)
	fulfillment := services.NewFulfillmentService(orders, commerce, network, locker, helpers.TestLogger())
	return orders, handlers.NewNetworkHandler(fulfillment, helpers.TestLogger())
}

func TestNetworkHandler_Inventory(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:           "returns_quantity_derived_from_sku",
			body:           `{"sku":"SKU-001"}`,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					SKU       string `json:"sku"`
					Inventory int    `json:"inventory"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "SKU-001", response.SKU)
				assert.Equal(t, len("SKU-001")*2, response.Inventory)
			},
		},
		{
			name:           "missing_sku_is_rejected",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "SKU is required", response["error"])
			},
		},
		{
			name:           "malformed_json_is_rejected",
			body:           `{"sku":`,
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Invalid request body", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newNetworkHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Inventory(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, rec.Body.Bytes())
		})
	}
}

func TestNetworkHandler_CarrierService(t *testing.T) {
	type rateResponse struct {
		Rates []domain.ShippingRate `json:"rates"`
	}

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:           "single_item_gets_standard_only",
			body:           `{"rate":{"items":[{"quantity":1}],"currency":"USD"}}`,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response rateResponse
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Rates, 1)
				assert.Equal(t, "STANDARD", response.Rates[0].ServiceCode)
				assert.Equal(t, "0", response.Rates[0].TotalPrice)
				assert.Equal(t, "Standard delivery for a single item", response.Rates[0].Description)
			},
		},
		{
			name:           "two_items_unlock_moderate",
			body:           `{"rate":{"items":[{"quantity":1},{"quantity":1}],"currency":"EUR"}}`,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response rateResponse
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Rates, 2)
				assert.Equal(t, "MODERATE", response.Rates[1].ServiceCode)
				assert.Equal(t, "500", response.Rates[1].TotalPrice)
				assert.Equal(t, "EUR", response.Rates[0].Currency)
			},
		},
		{
			name:           "three_or_more_items_unlock_all_tiers",
			body:           `{"rate":{"items":[{"quantity":2},{"quantity":3}]}}`,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response rateResponse
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Rates, 3)
				assert.Equal(t, "FAST", response.Rates[2].ServiceCode)
				assert.Equal(t, "1000", response.Rates[2].TotalPrice)
				// Currency defaults when the request omits it.
				assert.Equal(t, domain.DefaultCurrency, response.Rates[0].Currency)
			},
		},
		{
			name:           "missing_rate_envelope_is_rejected",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Invalid rate request", response["error"])
			},
		},
		{
			name:           "zero_total_quantity_is_rejected",
			body:           `{"rate":{"items":[{"quantity":0}]}}`,
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Contains(t, response["error"], "total quantity must be positive")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newNetworkHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/carrier-service", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CarrierService(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, rec.Body.Bytes())
		})
	}
}

func TestNetworkHandler_RequestFulfillment(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"

	t.Run("declines_single_line_item_order", func(t *testing.T) {
		_, handler := newNetworkHandler(t)

		body := handlers.RequestFulfillmentRequest{
			OrderID:   orderID,
			LineItems: []domain.LineItem{{Quantity: 5}},
		}
		req := httptest.NewRequest(http.MethodPost, "/request-fulfillment", encodeBody(t, body))
		rec := httptest.NewRecorder()

		handler.RequestFulfillment(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decision domain.FulfillmentDecision
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
		assert.False(t, decision.Accepted)
		assert.Equal(t, domain.ReasonTooFewLineItems, decision.Reason)
	})

	t.Run("accepts_multi_line_item_order", func(t *testing.T) {
		orders, handler := newNetworkHandler(t)

		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(), nil)
		orders.EXPECT().
			UpdateStatus(gomock.Any(), orderID, domain.StatusRequested).
			Return(nil)

		body := handlers.RequestFulfillmentRequest{
			OrderID:   orderID,
			LineItems: []domain.LineItem{{Quantity: 1}, {Quantity: 2}},
		}
		req := httptest.NewRequest(http.MethodPost, "/request-fulfillment", encodeBody(t, body))
		rec := httptest.NewRecorder()

		handler.RequestFulfillment(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decision domain.FulfillmentDecision
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
		assert.True(t, decision.Accepted)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		orders, handler := newNetworkHandler(t)

		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, nil)

		body := handlers.RequestFulfillmentRequest{
			OrderID:   orderID,
			LineItems: []domain.LineItem{{Quantity: 1}, {Quantity: 2}},
		}
		req := httptest.NewRequest(http.MethodPost, "/request-fulfillment", encodeBody(t, body))
		rec := httptest.NewRecorder()

		handler.RequestFulfillment(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNetworkHandler_FulfillOrder(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"

	t.Run("records_tracking_for_known_order", func(t *testing.T) {
		orders, handler := newNetworkHandler(t)

		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(), nil)
		orders.EXPECT().
			RecordTracking(gomock.Any(), orderID, gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/fulfill-order",
			encodeBody(t, handlers.FulfillOrderRequest{OrderID: orderID}))
		rec := httptest.NewRecorder()

		handler.FulfillOrder(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var tracking domain.TrackingInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracking))
		assert.True(t, strings.HasPrefix(tracking.Number, "TRK-"+orderID+"-"))
		assert.Equal(t, domain.TrackingCompany, tracking.Company)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		orders, handler := newNetworkHandler(t)

		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/fulfill-order",
			encodeBody(t, handlers.FulfillOrderRequest{OrderID: orderID}))
		rec := httptest.NewRecorder()

		handler.FulfillOrder(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func encodeBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Saiashu12/fulfillment-task/internal/adapters/db"
	"github.com/Saiashu12/fulfillment-task/internal/adapters/network"
	redis_a "github.com/Saiashu12/fulfillment-task/internal/adapters/redis_adapter"
	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/internal/handlers"
	"github.com/Saiashu12/fulfillment-task/test/helpers"
	"github.com/Saiashu12/fulfillment-task/test/mocks"
)

// FulfillmentE2ESuite runs the order lifecycle against a real server with a
// real database and Redis. The commerce platform is mocked; the fulfillment
// network client points back at this server's own endpoints, as it does in
// production single-process deployments.
type FulfillmentE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
	commerce  *mocks.MockCommerceGateway
}

func (s *FulfillmentE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	ctrl := gomock.NewController(s.T())
	s.commerce = mocks.NewMockCommerceGateway(ctrl)

	logger := helpers.TestLogger()
	orderRepo := db.NewOrderRepository(s.testDB.Database, logger)
	locker := redis_a.NewLocker(s.testRedis.Client, logger)

	// Start the server before wiring the network client so the client can
	// target this process's own endpoints.
	mux := http.NewServeMux()
	s.server = httptest.NewServer(mux)
	s.client = &http.Client{Timeout: 10 * time.Second}

	networkClient := network.NewClient(network.Config{BaseURL: s.server.URL}, logger)
	fulfillment := services.NewFulfillmentService(orderRepo, s.commerce, networkClient, locker, logger)

	networkHandler := handlers.NewNetworkHandler(fulfillment, logger)
	orderHandler := handlers.NewOrderHandler(fulfillment, nil, "test-shop.myshopify.com", logger)
	webhookHandler := handlers.NewWebhookHandler(fulfillment, logger)

	mux.HandleFunc("POST /inventory", networkHandler.Inventory)
	mux.HandleFunc("POST /carrier-service", networkHandler.CarrierService)
	mux.HandleFunc("POST /request-fulfillment", networkHandler.RequestFulfillment)
	mux.HandleFunc("POST /fulfill-order", networkHandler.FulfillOrder)
	mux.HandleFunc("GET /api/v1/orders", orderHandler.ListOrders)
	mux.HandleFunc("POST /api/v1/orders/{id}/fulfill", orderHandler.FulfillOrder)
	mux.HandleFunc("POST /webhooks/orders/create", webhookHandler.OrderCreated)
}

func (s *FulfillmentE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *FulfillmentE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *FulfillmentE2ESuite) TestOrderLifecycle() {
	// 1. The platform announces a new order.
	resp := s.postJSON("/webhooks/orders/create", map[string]interface{}{
		"id":   7001,
		"name": "#7001",
		"line_items": []map[string]int{
			{"quantity": 1},
			{"quantity": 2},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 2. The order is visible as PENDING.
	listing := s.getBody("/api/v1/orders?status=PENDING")
	s.Contains(listing, `"7001"`)
	s.Contains(listing, "#7001")

	// 3. The platform asks whether the network will take the order.
	resp = s.postJSON("/request-fulfillment", map[string]interface{}{
		"orderId":   "7001",
		"lineItems": []map[string]int{{"quantity": 1}, {"quantity": 2}},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var decision domain.FulfillmentDecision
	s.decodeResponse(resp, &decision)
	s.True(decision.Accepted)

	listing = s.getBody("/api/v1/orders?status=REQUESTED")
	s.Contains(listing, `"7001"`)

	// 4. The operator completes the order. The platform mutation must run
	// exactly once even when the operator retries.
	s.commerce.EXPECT().
		FulfillmentOrderIDs(gomock.Any(), "7001").
		Return([]string{"gid://shopify/FulfillmentOrder/701"}, nil).
		Times(1)
	s.commerce.EXPECT().
		CreateFulfillment(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	resp = s.postJSON("/api/v1/orders/7001/fulfill", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var fulfillResponse struct {
		OrderID  string              `json:"order_id"`
		Tracking domain.TrackingInfo `json:"tracking"`
	}
	s.decodeResponse(resp, &fulfillResponse)
	s.Equal("7001", fulfillResponse.OrderID)
	s.True(strings.HasPrefix(fulfillResponse.Tracking.Number, "TRK-7001-"))
	s.Equal(domain.TrackingCompany, fulfillResponse.Tracking.Company)

	// 5. A retry short-circuits on the terminal state and returns the
	// recorded tracking without touching the platform again.
	resp = s.postJSON("/api/v1/orders/7001/fulfill", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var retryResponse struct {
		Tracking domain.TrackingInfo `json:"tracking"`
	}
	s.decodeResponse(resp, &retryResponse)
	s.Equal(fulfillResponse.Tracking.Number, retryResponse.Tracking.Number)

	listing = s.getBody("/api/v1/orders?status=FULFILLED")
	s.Contains(listing, `"7001"`)
}

func (s *FulfillmentE2ESuite) TestSingleItemOrderIsDeclined() {
	resp := s.postJSON("/webhooks/orders/create", map[string]interface{}{
		"id":         7002,
		"name":       "#7002",
		"line_items": []map[string]int{{"quantity": 5}},
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON("/request-fulfillment", map[string]interface{}{
		"orderId":   "7002",
		"lineItems": []map[string]int{{"quantity": 5}},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var decision domain.FulfillmentDecision
	s.decodeResponse(resp, &decision)
	s.False(decision.Accepted)
	s.Equal(domain.ReasonTooFewLineItems, decision.Reason)

	// The decline leaves the order untouched.
	listing := s.getBody("/api/v1/orders?status=PENDING")
	s.Contains(listing, `"7002"`)
}

func (s *FulfillmentE2ESuite) TestInventoryAndRateEndpoints() {
	resp := s.postJSON("/inventory", map[string]string{"sku": "SKU-12345"})
	s.Equal(http.StatusOK, resp.StatusCode)

	var inventory struct {
		SKU       string `json:"sku"`
		Inventory int    `json:"inventory"`
	}
	s.decodeResponse(resp, &inventory)
	s.Equal(len("SKU-12345")*2, inventory.Inventory)

	resp = s.postJSON("/carrier-service", map[string]interface{}{
		"rate": map[string]interface{}{
			"items":    []map[string]int{{"quantity": 2}, {"quantity": 1}},
			"currency": "USD",
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var quote struct {
		Rates []domain.ShippingRate `json:"rates"`
	}
	s.decodeResponse(resp, &quote)
	s.Len(quote.Rates, 3)
	s.Equal("STANDARD", quote.Rates[0].ServiceCode)
	s.Equal("FAST", quote.Rates[2].ServiceCode)
}

func (s *FulfillmentE2ESuite) TestWebhookReplayIsIdempotent() {
	payload := map[string]interface{}{
		"id":         7003,
		"name":       "#7003",
		"line_items": []map[string]int{{"quantity": 1}, {"quantity": 1}},
	}

	for i := 0; i < 3; i++ {
		resp := s.postJSON("/webhooks/orders/create", payload)
		s.Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	var ordersResponse struct {
		Count int `json:"count"`
	}
	resp, err := s.client.Get(s.server.URL + "/api/v1/orders")
	s.NoError(err)
	s.decodeResponse(resp, &ordersResponse)
	s.Equal(1, ordersResponse.Count)
}

func (s *FulfillmentE2ESuite) postJSON(path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, reqBody)
	s.NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)
	return resp
}

func (s *FulfillmentE2ESuite) getBody(path string) string {
	resp, err := s.client.Get(s.server.URL + path)
	s.NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	s.NoError(err)
	return string(data)
}

func (s *FulfillmentE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestFulfillmentE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(FulfillmentE2ESuite))
}

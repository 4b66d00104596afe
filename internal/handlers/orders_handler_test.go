// internal/handlers/orders_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/internal/handlers"
	"github.com/Saiashu12/fulfillment-task/test/helpers"
	"github.com/Saiashu12/fulfillment-task/test/mocks"
)

const testDefaultShop = "test-shop.myshopify.com"

type orderHandlerMocks struct {
	orders   *mocks.MockOrderRepository
	products *mocks.MockManagedProductRepository
	commerce *mocks.MockCommerceGateway
	network  *mocks.MockFulfillmentNetwork
	locker   *mocks.MockLocker
}

func newOrderHandler(t *testing.T) (orderHandlerMocks, *handlers.OrderHandler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderHandlerMocks{
		orders:   mocks.NewMockOrderRepository(ctrl),
		products: mocks.NewMockManagedProductRepository(ctrl),
		commerce: mocks.NewMockCommerceGateway(ctrl),
		network:  mocks.NewMockFulfillmentNetwork(ctrl),
		locker:   mocks.NewMockLocker(ctrl),
	}
	fulfillment := services.NewFulfillmentService(m.orders, m.commerce, m.network, m.locker, helpers.TestLogger())
	return m, handlers.NewOrderHandler(fulfillment, m.products, testDefaultShop, helpers.TestLogger())
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("lists_orders_with_default_paging", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.orders.EXPECT().
			List(gomock.Any(), ports.OrderListParams{Page: 1, PageSize: 50}).
			Return([]*domain.Order{helpers.CreateTestOrder()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()

		handler.ListOrders(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response struct {
			Orders []*domain.Order `json:"orders"`
			Count  int             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Equal(t, "gid://shopify/Order/1001", response.Orders[0].ID)
	})

	t.Run("applies_status_filter_and_caps_page_size", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.orders.EXPECT().
			List(gomock.Any(), ports.OrderListParams{
				Status:   domain.StatusFulfilled,
				Page:     2,
				PageSize: 100,
			}).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?status=FULFILLED&page=2&limit=500", nil)
		rec := httptest.NewRecorder()

		handler.ListOrders(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("repository_failure_is_internal", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.orders.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()

		handler.ListOrders(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to list orders")
	})
}

func TestOrderHandler_ListProducts(t *testing.T) {
	t.Run("lists_managed_products_for_default_shop", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.products.EXPECT().
			List(gomock.Any(), testDefaultShop).
			Return([]domain.ManagedProduct{*helpers.CreateTestManagedProduct()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rec := httptest.NewRecorder()

		handler.ListProducts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
	})

	t.Run("shop_query_parameter_overrides_default", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.products.EXPECT().
			List(gomock.Any(), "other-shop.myshopify.com").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?shop=other-shop.myshopify.com", nil)
		rec := httptest.NewRecorder()

		handler.ListProducts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_FulfillOrder(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"

	// FulfillOrder reads the order id via PathValue, so requests go through
	// a mux carrying the route pattern. Order gids contain slashes and must
	// arrive path-escaped, as the dashboard sends them.
	serve := func(handler *handlers.OrderHandler, id string) *httptest.ResponseRecorder {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v1/orders/{id}/fulfill", handler.FulfillOrder)
		rec := httptest.NewRecorder()
		target := "/api/v1/orders/" + url.PathEscape(id) + "/fulfill"
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
		return rec
	}

	t.Run("fulfills_order_and_returns_tracking", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		tracking := domain.NewTrackingInfo(orderID, time.Now())
		m.locker.EXPECT().
			Acquire(gomock.Any(), "fulfill-order:"+orderID, gomock.Any()).
			Return(func() {}, nil)
		m.orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(func(o *domain.Order) {
				o.Status = domain.StatusRequested
			}), nil)
		m.network.EXPECT().FulfillOrder(gomock.Any(), orderID).Return(&tracking, nil)
		m.commerce.EXPECT().
			FulfillmentOrderIDs(gomock.Any(), orderID).
			Return([]string{"gid://shopify/FulfillmentOrder/55"}, nil)
		m.commerce.EXPECT().CreateFulfillment(gomock.Any(), gomock.Any()).Return(nil)
		m.orders.EXPECT().
			UpdateStatus(gomock.Any(), orderID, domain.StatusFulfilled).
			Return(nil)

		rec := serve(handler, orderID)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response struct {
			OrderID  string              `json:"order_id"`
			Status   domain.OrderStatus  `json:"status"`
			Tracking domain.TrackingInfo `json:"tracking"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, orderID, response.OrderID)
		assert.Equal(t, domain.StatusFulfilled, response.Status)
		assert.Equal(t, tracking.Number, response.Tracking.Number)
	})

	t.Run("concurrent_attempt_is_a_conflict", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.locker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrLocked)

		rec := serve(handler, orderID)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		m, handler := newOrderHandler(t)

		m.locker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)
		m.orders.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := serve(handler, orderID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

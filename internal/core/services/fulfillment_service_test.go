// internal/core/services/fulfillment_service_test.go
package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/test/helpers"
	"github.com/Saiashu12/fulfillment-task/test/mocks"
)

func fulfillmentMocks(t *testing.T) (*mocks.MockOrderRepository, *mocks.MockCommerceGateway, *mocks.MockFulfillmentNetwork, *mocks.MockLocker, *services.FulfillmentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderRepository(ctrl)
	commerce := mocks.NewMockCommerceGateway(ctrl)
	network := mocks.NewMockFulfillmentNetwork(ctrl)
	locker := mocks.NewMockLocker(ctrl)
	service := services.NewFulfillmentService(orders, commerce, network, locker, helpers.TestLogger())
	return orders, commerce, network, locker, service
}

func TestFulfillmentService_RequestFulfillment(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"
	twoItems := []domain.LineItem{{Quantity: 1}, {Quantity: 2}}

	tests := []struct {
		name          string
		orderID       string
		lineItems     []domain.LineItem
		setupMocks    func(*mocks.MockOrderRepository)
		wantAccepted  bool
		wantReason    string
		expectedError bool
		errorContains string
	}{
		{
			name:      "accepts_multi_line_order_and_marks_requested",
			orderID:   orderID,
			lineItems: twoItems,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.EXPECT().
					FindByID(gomock.Any(), orderID).
					Return(helpers.CreateTestOrder(), nil)
				orders.EXPECT().
					UpdateStatus(gomock.Any(), orderID, domain.StatusRequested).
					Return(nil)
			},
			wantAccepted: true,
		},
		{
			name:         "declines_single_line_order_without_touching_storage",
			orderID:      orderID,
			lineItems:    []domain.LineItem{{Quantity: 3}},
			setupMocks:   func(*mocks.MockOrderRepository) {},
			wantAccepted: false,
			wantReason:   domain.ReasonTooFewLineItems,
		},
		{
			name:         "declines_empty_line_items",
			orderID:      orderID,
			lineItems:    []domain.LineItem{},
			setupMocks:   func(*mocks.MockOrderRepository) {},
			wantAccepted: false,
			wantReason:   domain.ReasonTooFewLineItems,
		},
		{
			name:      "declines_already_fulfilled_order",
			orderID:   orderID,
			lineItems: twoItems,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.EXPECT().
					FindByID(gomock.Any(), orderID).
					Return(helpers.CreateTestOrder(func(o *domain.Order) {
						o.Status = domain.StatusFulfilled
					}), nil)
			},
			wantAccepted: false,
			wantReason:   "order is already fulfilled",
		},
		{
			name:      "unknown_order_is_not_found",
			orderID:   orderID,
			lineItems: twoItems,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, nil)
			},
			expectedError: true,
			errorContains: "order not found",
		},
		{
			name:          "missing_order_id_is_rejected",
			orderID:       "",
			lineItems:     twoItems,
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: true,
			errorContains: "orderId is required",
		},
		{
			name:          "nil_line_items_is_rejected",
			orderID:       orderID,
			lineItems:     nil,
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: true,
			errorContains: "lineItems is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, _, _, _, service := fulfillmentMocks(t)
			tt.setupMocks(orders)

			decision, err := service.RequestFulfillment(context.Background(), tt.orderID, tt.lineItems)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, decision)
			assert.Equal(t, tt.wantAccepted, decision.Accepted)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestFulfillmentService_FulfillOrder(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"

	tracking := &domain.TrackingInfo{
		Number:  "TRK-gid://shopify/Order/1001-1700000000000",
		URL:     "https://tracking.example.com/track/TRK-gid://shopify/Order/1001-1700000000000",
		Company: domain.TrackingCompany,
		Service: domain.TrackingService,
	}

	t.Run("fulfills_requested_order_end_to_end", func(t *testing.T) {
		orders, commerce, network, locker, service := fulfillmentMocks(t)

		locker.EXPECT().
			Acquire(gomock.Any(), "fulfill-order:"+orderID, gomock.Any()).
			Return(func() {}, nil)
		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(func(o *domain.Order) {
				o.Status = domain.StatusRequested
			}), nil)
		network.EXPECT().
			FulfillOrder(gomock.Any(), orderID).
			Return(tracking, nil)
		commerce.EXPECT().
			FulfillmentOrderIDs(gomock.Any(), orderID).
			Return([]string{"gid://shopify/FulfillmentOrder/55"}, nil)
		commerce.EXPECT().
			CreateFulfillment(gomock.Any(), ports.FulfillmentCreateRequest{
				FulfillmentOrderID: "gid://shopify/FulfillmentOrder/55",
				TrackingCompany:    tracking.Company,
				TrackingNumber:     tracking.Number,
				TrackingURL:        tracking.URL,
			}).
			Return(nil)
		orders.EXPECT().
			UpdateStatus(gomock.Any(), orderID, domain.StatusFulfilled).
			Return(nil)

		got, err := service.FulfillOrder(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, tracking, got)
	})

	t.Run("platform_rejection_keeps_order_non_terminal", func(t *testing.T) {
		orders, commerce, network, locker, service := fulfillmentMocks(t)

		locker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)
		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(func(o *domain.Order) {
				o.Status = domain.StatusRequested
			}), nil)
		network.EXPECT().FulfillOrder(gomock.Any(), orderID).Return(tracking, nil)
		commerce.EXPECT().
			FulfillmentOrderIDs(gomock.Any(), orderID).
			Return([]string{"gid://shopify/FulfillmentOrder/55"}, nil)
		commerce.EXPECT().
			CreateFulfillment(gomock.Any(), gomock.Any()).
			Return(&domain.ExternalError{
				System:    "shopify",
				Operation: "fulfillmentCreate",
				Err:       errors.New("fulfillment order is closed"),
			})
		// UpdateStatus must not be called.

		_, err := service.FulfillOrder(context.Background(), orderID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "platform rejected fulfillment")
	})

	t.Run("fulfilled_order_returns_recorded_tracking", func(t *testing.T) {
		orders, _, _, locker, service := fulfillmentMocks(t)

		locker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)
		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(func(o *domain.Order) {
				o.Status = domain.StatusFulfilled
				o.Tracking = *tracking
			}), nil)

		got, err := service.FulfillOrder(context.Background(), orderID)

		require.NoError(t, err)
		assert.Equal(t, tracking.Number, got.Number)
	})

	t.Run("no_fulfillment_orders_is_not_found", func(t *testing.T) {
		orders, commerce, network, locker, service := fulfillmentMocks(t)

		locker.EXPECT().
			Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(func() {}, nil)
		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(func(o *domain.Order) {
				o.Status = domain.StatusRequested
			}), nil)
		network.EXPECT().FulfillOrder(gomock.Any(), orderID).Return(tracking, nil)
		commerce.EXPECT().FulfillmentOrderIDs(gomock.Any(), orderID).Return(nil, nil)

		_, err := service.FulfillOrder(context.Background(), orderID)

		var nfErr *domain.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "fulfillment order", nfErr.Resource)
	})

	t.Run("concurrent_attempt_is_rejected", func(t *testing.T) {
		_, _, _, locker, service := fulfillmentMocks(t)

		locker.EXPECT().
			Acquire(gomock.Any(), "fulfill-order:"+orderID, gomock.Any()).
			Return(nil, domain.ErrLocked)

		_, err := service.FulfillOrder(context.Background(), orderID)

		require.ErrorIs(t, err, domain.ErrLocked)
	})
}

func TestFulfillmentService_PrepareTracking(t *testing.T) {
	const orderID = "gid://shopify/Order/1001"

	t.Run("generates_and_records_tracking", func(t *testing.T) {
		orders, _, _, _, service := fulfillmentMocks(t)

		orders.EXPECT().
			FindByID(gomock.Any(), orderID).
			Return(helpers.CreateTestOrder(), nil)
		orders.EXPECT().
			RecordTracking(gomock.Any(), orderID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, tracking domain.TrackingInfo) error {
				assert.True(t, strings.HasPrefix(tracking.Number, "TRK-"+orderID+"-"))
				assert.Equal(t, domain.TrackingCompany, tracking.Company)
				assert.Equal(t, domain.TrackingService, tracking.Service)
				assert.Contains(t, tracking.URL, tracking.Number)
				return nil
			})

		tracking, err := service.PrepareTracking(context.Background(), orderID)

		require.NoError(t, err)
		assert.NotEmpty(t, tracking.Number)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		orders, _, _, _, service := fulfillmentMocks(t)

		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, nil)

		_, err := service.PrepareTracking(context.Background(), orderID)

		var nfErr *domain.NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
}

func TestFulfillmentService_RecordIncomingOrder(t *testing.T) {
	const orderID = "gid://shopify/Order/2002"

	t.Run("records_new_order_as_pending", func(t *testing.T) {
		orders, _, _, _, service := fulfillmentMocks(t)

		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, nil)
		orders.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) error {
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, "#2002", order.OrderNumber)
				assert.Equal(t, 3, order.LineItemCount)
				return nil
			})

		order, err := service.RecordIncomingOrder(context.Background(), orderID, "#2002", 3)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
	})

	t.Run("webhook_replay_returns_existing_order_untouched", func(t *testing.T) {
		orders, _, _, _, service := fulfillmentMocks(t)

		existing := helpers.CreateTestOrder(func(o *domain.Order) {
			o.ID = orderID
			o.Status = domain.StatusRequested
		})
		orders.EXPECT().FindByID(gomock.Any(), orderID).Return(existing, nil)
		// No upsert on replay.

		order, err := service.RecordIncomingOrder(context.Background(), orderID, "#2002", 3)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusRequested, order.Status)
	})
}

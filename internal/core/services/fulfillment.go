// internal/core/services/fulfillment.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// fulfillLockTTL bounds how long a crashed fulfillment attempt can hold the
// per-order lock.
const fulfillLockTTL = time.Minute

// FulfillmentService drives orders through PENDING -> REQUESTED ->
// FULFILLED across the fulfillment network and the commerce platform.
// Local status becomes FULFILLED only after the platform confirms the
// fulfillment-creation mutation.
type FulfillmentService struct {
	orders   ports.OrderRepository
	commerce ports.CommerceGateway
	network  ports.FulfillmentNetwork
	locker   ports.Locker
	logger   *slog.Logger
	now      func() time.Time
}

// NewFulfillmentService creates a new order fulfillment state machine.
func NewFulfillmentService(orders ports.OrderRepository, commerce ports.CommerceGateway, network ports.FulfillmentNetwork, locker ports.Locker, logger *slog.Logger) *FulfillmentService {
	return &FulfillmentService{
		orders:   orders,
		commerce: commerce,
		network:  network,
		locker:   locker,
		logger:   logger.With(slog.String("service", "fulfillment")),
		now:      time.Now,
	}
}

// RequestFulfillment handles the PENDING -> REQUESTED transition. Orders
// with one line item or fewer are declined with a structured reason; that
// is a business rule rejection, not an error.
func (s *FulfillmentService) RequestFulfillment(ctx context.Context, orderID string, lineItems []domain.LineItem) (*domain.FulfillmentDecision, error) {
	if orderID == "" {
		return nil, &domain.ValidationError{Field: "orderId"}
	}
	if lineItems == nil {
		return nil, &domain.ValidationError{Field: "lineItems"}
	}

	if len(lineItems) <= 1 {
		s.logger.InfoContext(ctx, "fulfillment request declined",
			slog.String("order_id", orderID),
			slog.Int("line_items", len(lineItems)))
		return &domain.FulfillmentDecision{Accepted: false, Reason: domain.ReasonTooFewLineItems}, nil
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, &domain.NotFoundError{Resource: "order", ID: orderID}
	}
	if !order.Status.CanTransitionTo(domain.StatusRequested) {
		return &domain.FulfillmentDecision{Accepted: false, Reason: "order is already fulfilled"}, nil
	}

	if err := s.orders.UpdateStatus(ctx, orderID, domain.StatusRequested); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.InfoContext(ctx, "fulfillment requested",
		slog.String("order_id", orderID),
		slog.Int("line_items", len(lineItems)))
	return &domain.FulfillmentDecision{Accepted: true}, nil
}

// PrepareTracking generates and records tracking for the order on behalf of
// the fulfillment network. The order's status is left untouched; only
// FulfillOrder finalizes it, after platform confirmation.
func (s *FulfillmentService) PrepareTracking(ctx context.Context, orderID string) (*domain.TrackingInfo, error) {
	if orderID == "" {
		return nil, &domain.ValidationError{Field: "orderId"}
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, &domain.NotFoundError{Resource: "order", ID: orderID}
	}

	tracking := domain.NewTrackingInfo(orderID, s.now())
	if err := s.orders.RecordTracking(ctx, orderID, tracking); err != nil {
		return nil, fmt.Errorf("failed to record tracking: %w", err)
	}

	s.logger.InfoContext(ctx, "tracking generated",
		slog.String("order_id", orderID),
		slog.String("tracking_number", tracking.Number))
	return &tracking, nil
}

// FulfillOrder drives the terminal transition: tracking from the network,
// the platform's fulfillment-order handle, then the fulfillment-creation
// mutation with customer notification suppressed. Attempts are single-flight
// per order to prevent duplicate tracking numbers and duplicate platform
// fulfillments.
func (s *FulfillmentService) FulfillOrder(ctx context.Context, orderID string) (*domain.TrackingInfo, error) {
	if orderID == "" {
		return nil, &domain.ValidationError{Field: "orderId"}
	}

	release, err := s.locker.Acquire(ctx, "fulfill-order:"+orderID, fulfillLockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, &domain.NotFoundError{Resource: "order", ID: orderID}
	}
	if order.Status == domain.StatusFulfilled {
		// Terminal state: return the recorded tracking instead of
		// generating a duplicate fulfillment.
		return &order.Tracking, nil
	}

	tracking, err := s.network.FulfillOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fulfillment network: %w", err)
	}

	fulfillmentOrderIDs, err := s.commerce.FulfillmentOrderIDs(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up fulfillment orders: %w", err)
	}
	if len(fulfillmentOrderIDs) == 0 {
		return nil, &domain.NotFoundError{Resource: "fulfillment order", ID: orderID}
	}

	err = s.commerce.CreateFulfillment(ctx, ports.FulfillmentCreateRequest{
		FulfillmentOrderID: fulfillmentOrderIDs[0],
		TrackingCompany:    tracking.Company,
		TrackingNumber:     tracking.Number,
		TrackingURL:        tracking.URL,
	})
	if err != nil {
		// The platform rejected the fulfillment: the order stays
		// non-terminal so the operator can retry.
		return nil, fmt.Errorf("platform rejected fulfillment: %w", err)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, domain.StatusFulfilled); err != nil {
		return nil, fmt.Errorf("failed to finalize order status: %w", err)
	}

	s.logger.InfoContext(ctx, "order fulfilled",
		slog.String("order_id", orderID),
		slog.String("tracking_number", tracking.Number))
	return tracking, nil
}

// RecordIncomingOrder upserts an order row from the platform's
// order-created webhook. New orders start PENDING; replays never move an
// existing order backward.
func (s *FulfillmentService) RecordIncomingOrder(ctx context.Context, orderID, orderNumber string, lineItemCount int) (*domain.Order, error) {
	if orderID == "" {
		return nil, &domain.ValidationError{Field: "orderId"}
	}

	existing, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	order := &domain.Order{
		ID:            orderID,
		OrderNumber:   orderNumber,
		LineItemCount: lineItemCount,
		Status:        domain.StatusPending,
		CreatedAt:     s.now(),
		UpdatedAt:     s.now(),
	}
	if err := s.orders.Upsert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.InfoContext(ctx, "order recorded",
		slog.String("order_id", orderID),
		slog.String("order_number", orderNumber),
		slog.Int("line_items", lineItemCount))
	return order, nil
}

// ListOrders returns orders for the operator dashboard.
func (s *FulfillmentService) ListOrders(ctx context.Context, params ports.OrderListParams) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

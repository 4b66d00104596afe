// internal/core/domain/order.go
package domain

import (
	"fmt"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of an order.
type OrderStatus string

// Lifecycle states. FULFILLED is terminal.
const (
	StatusPending   OrderStatus = "PENDING"
	StatusRequested OrderStatus = "REQUESTED"
	StatusFulfilled OrderStatus = "FULFILLED"
)

// rank orders the statuses for monotonicity checks.
func (s OrderStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusRequested:
		return 1
	case StatusFulfilled:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is a known lifecycle state.
func (s OrderStatus) Valid() bool {
	return s.rank() >= 0
}

// CanTransitionTo reports whether moving from s to next preserves the
// monotonic PENDING -> REQUESTED -> FULFILLED sequence.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.rank() >= s.rank()
}

// TrackingInfo is the immutable record of a fulfillment. The number embeds
// the order id and the invocation time, so two fulfillments for different
// orders never collide.
type TrackingInfo struct {
	Number  string `json:"tracking_number"`
	URL     string `json:"tracking_url"`
	Company string `json:"carrier"`
	Service string `json:"service"`
}

// Tracking defaults used by the fulfillment network.
const (
	TrackingCompany     = "Custom Fulfillment Carrier"
	TrackingService     = "Standard Delivery"
	trackingURLTemplate = "https://tracking.example.com/track/%s"
)

// NewTrackingInfo generates tracking for an order at the given time.
func NewTrackingInfo(orderID string, now time.Time) TrackingInfo {
	number := fmt.Sprintf("TRK-%s-%d", orderID, now.UnixMilli())
	return TrackingInfo{
		Number:  number,
		URL:     fmt.Sprintf(trackingURLTemplate, number),
		Company: TrackingCompany,
		Service: TrackingService,
	}
}

// Order mirrors the commerce platform's order, keyed by its identifier
// there. Status is mutated only by the fulfillment state machine.
type Order struct {
	ID            string       `json:"id"`
	OrderNumber   string       `json:"order_number"`
	LineItemCount int          `json:"line_item_count"`
	Status        OrderStatus  `json:"status"`
	Tracking      TrackingInfo `json:"tracking,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// LineItem is a single order line in a fulfillment request.
type LineItem struct {
	Quantity int `json:"quantity"`
}

// FulfillmentDecision is the structured outcome of a request-fulfillment
// call. A decline is a business rule rejection, not an error.
type FulfillmentDecision struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// ReasonTooFewLineItems is the decline reason for single-line-item orders.
const ReasonTooFewLineItems = "Fulfillment requires more than one line item"

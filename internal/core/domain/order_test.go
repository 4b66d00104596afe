// internal/core/domain/order_test.go
package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{"pending_to_requested", domain.StatusPending, domain.StatusRequested, true},
		{"requested_to_fulfilled", domain.StatusRequested, domain.StatusFulfilled, true},
		{"pending_to_fulfilled", domain.StatusPending, domain.StatusFulfilled, true},
		{"fulfilled_is_terminal", domain.StatusFulfilled, domain.StatusRequested, false},
		{"no_backward_to_pending", domain.StatusRequested, domain.StatusPending, false},
		{"self_transition_allowed", domain.StatusRequested, domain.StatusRequested, true},
		{"unknown_status_rejected", domain.OrderStatus("SHIPPED"), domain.StatusFulfilled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewTrackingInfo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tracking := domain.NewTrackingInfo("42", now)

	assert.True(t, strings.HasPrefix(tracking.Number, "TRK-42-"))
	assert.Contains(t, tracking.URL, tracking.Number)
	assert.Equal(t, domain.TrackingCompany, tracking.Company)
	assert.Equal(t, domain.TrackingService, tracking.Service)
}

func TestNewTrackingInfo_UniquePerOrder(t *testing.T) {
	now := time.Now()

	a := domain.NewTrackingInfo("42", now)
	b := domain.NewTrackingInfo("43", now)

	assert.NotEqual(t, a.Number, b.Number)
}

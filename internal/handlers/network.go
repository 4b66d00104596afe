// internal/handlers/network.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
)

// NetworkHandler serves the fulfillment network's HTTP surface: the
// inventory source, the carrier rate callback, and the two fulfillment
// endpoints invoked by the commerce platform and the operator flow.
type NetworkHandler struct {
	fulfillment *services.FulfillmentService
	logger      *slog.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(fulfillment *services.FulfillmentService, logger *slog.Logger) *NetworkHandler {
	return &NetworkHandler{
		fulfillment: fulfillment,
		logger:      logger.With(slog.String("handler", "network")),
	}
}

// InventoryRequest is the inventory lookup request body
type InventoryRequest struct {
	SKU string `json:"sku"`
}

// Inventory handles POST /inventory
func (h *NetworkHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SKU == "" {
		respondError(h.logger, w, http.StatusBadRequest, "SKU is required")
		return
	}

	// Deterministic stub quantity derived from the SKU
	quantity := len(req.SKU) * 2

	h.logger.DebugContext(ctx, "inventory lookup",
		slog.String("sku", req.SKU),
		slog.Int("inventory", quantity))

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"sku":       req.SKU,
		"inventory": quantity,
	})
}

// RateRequest is the carrier rate callback body sent by the commerce
// platform
type RateRequest struct {
	Rate *RatePayload `json:"rate"`
}

// RatePayload carries the line items and currency being quoted
type RatePayload struct {
	Items    []RateItem `json:"items"`
	Currency string     `json:"currency"`
}

// RateItem is a single quoted line
type RateItem struct {
	Quantity int `json:"quantity"`
}

// CarrierService handles POST /carrier-service
func (h *NetworkHandler) CarrierService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Rate == nil || req.Rate.Items == nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid rate request")
		return
	}

	totalItems := 0
	for _, item := range req.Rate.Items {
		totalItems += item.Quantity
	}

	rates, err := domain.QuoteRates(totalItems, req.Rate.Currency, time.Now())
	if err != nil {
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "rates quoted",
		slog.Int("total_items", totalItems),
		slog.Int("rate_count", len(rates)))

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{"rates": rates})
}

// RequestFulfillmentRequest is the request-fulfillment event body
type RequestFulfillmentRequest struct {
	OrderID   string            `json:"orderId"`
	LineItems []domain.LineItem `json:"lineItems"`
}

// RequestFulfillment handles POST /request-fulfillment
func (h *NetworkHandler) RequestFulfillment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RequestFulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	decision, err := h.fulfillment.RequestFulfillment(ctx, req.OrderID, req.LineItems)
	if err != nil {
		h.logger.ErrorContext(ctx, "request-fulfillment failed",
			slog.String("order_id", req.OrderID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	respondJSON(h.logger, w, http.StatusOK, decision)
}

// FulfillOrderRequest is the fulfill-order request body
type FulfillOrderRequest struct {
	OrderID string `json:"orderId"`
}

// FulfillOrder handles POST /fulfill-order. It generates and records the
// tracking details for the order; the lifecycle transition happens in the
// orchestration flow once the commerce platform confirms the fulfillment.
func (h *NetworkHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FulfillOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tracking, err := h.fulfillment.PrepareTracking(ctx, req.OrderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "fulfill-order failed",
			slog.String("order_id", req.OrderID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	respondJSON(h.logger, w, http.StatusOK, tracking)
}

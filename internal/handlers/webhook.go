// internal/handlers/webhook.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Saiashu12/fulfillment-task/internal/core/services"
)

// WebhookHandler receives order lifecycle webhooks from the commerce
// platform.
type WebhookHandler struct {
	fulfillment *services.FulfillmentService
	logger      *slog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(fulfillment *services.FulfillmentService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		fulfillment: fulfillment,
		logger:      logger.With(slog.String("handler", "webhook")),
	}
}

// OrderCreatedPayload is the ORDERS_CREATE webhook body. Only the fields
// the fulfillment lifecycle needs are decoded.
type OrderCreatedPayload struct {
	ID          json.Number `json:"id"`
	OrderNumber json.Number `json:"order_number"`
	Name        string      `json:"name"`
	LineItems   []struct {
		Quantity int `json:"quantity"`
	} `json:"line_items"`
}

// OrderCreated handles POST /webhooks/orders/create
func (h *WebhookHandler) OrderCreated(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload OrderCreatedPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	orderID := payload.ID.String()
	if orderID == "" {
		respondError(h.logger, w, http.StatusBadRequest, "Order ID is required")
		return
	}

	orderNumber := payload.Name
	if orderNumber == "" && payload.OrderNumber.String() != "" {
		orderNumber = fmt.Sprintf("#%s", payload.OrderNumber.String())
	}

	order, err := h.fulfillment.RecordIncomingOrder(ctx, orderID, orderNumber, len(payload.LineItems))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to record incoming order",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "order webhook processed",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

// internal/handlers/orders.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
)

// OrderHandler serves the operator-facing order and product listings plus
// the fulfill action.
type OrderHandler struct {
	fulfillment *services.FulfillmentService
	products    ports.ManagedProductRepository
	defaultShop string
	logger      *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(fulfillment *services.FulfillmentService, products ports.ManagedProductRepository, defaultShop string, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		fulfillment: fulfillment,
		products:    products,
		defaultShop: defaultShop,
		logger:      logger.With(slog.String("handler", "orders")),
	}
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	orders, err := h.fulfillment.ListOrders(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// ListProducts handles GET /api/v1/products
func (h *OrderHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shop := r.URL.Query().Get("shop")
	if shop == "" {
		shop = h.defaultShop
	}

	products, err := h.products.List(ctx, shop)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list managed products",
			slog.String("shop", shop),
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// FulfillOrder handles POST /api/v1/orders/{id}/fulfill
func (h *OrderHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := r.PathValue("id")

	if orderID == "" {
		respondError(h.logger, w, http.StatusBadRequest, "Order ID is required")
		return
	}

	tracking, err := h.fulfillment.FulfillOrder(ctx, orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fulfill order",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "order fulfilled",
		slog.String("order_id", orderID),
		slog.String("tracking_number", tracking.Number))

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   domain.StatusFulfilled,
		"tracking": tracking,
	})
}

// parseListParams parses query parameters for listing orders
func (h *OrderHandler) parseListParams(r *http.Request) ports.OrderListParams {
	params := ports.OrderListParams{
		Page:     1,
		PageSize: 50,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	if status := r.URL.Query().Get("status"); status != "" {
		params.Status = domain.OrderStatus(status)
	}

	return params
}

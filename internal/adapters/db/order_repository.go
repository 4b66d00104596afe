// internal/adapters/db/order_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// orderRepository implements ports.OrderRepository
type orderRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *Database, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "order")),
	}
}

// FindByID retrieves an order by its platform identifier. Returns (nil, nil)
// when the order is unknown.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT
			id, order_number, line_item_count, status,
			tracking_number, tracking_url, tracking_company, tracking_service,
			created_at, updated_at
		FROM orders
		WHERE id = $1`

	order := &domain.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.OrderNumber, &order.LineItemCount, &order.Status,
		&order.Tracking.Number, &order.Tracking.URL,
		&order.Tracking.Company, &order.Tracking.Service,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// Upsert inserts a new order or refreshes its descriptive fields. Status and
// tracking are owned by the state machine and left alone on conflict.
func (r *orderRepository) Upsert(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, order_number, line_item_count, status,
			tracking_number, tracking_url, tracking_company, tracking_service,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			order_number = EXCLUDED.order_number,
			line_item_count = EXCLUDED.line_item_count,
			updated_at = EXCLUDED.updated_at
		RETURNING status, created_at, updated_at`

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = domain.StatusPending
	}

	err := r.db.QueryRow(ctx, query,
		order.ID, order.OrderNumber, order.LineItemCount, order.Status,
		order.Tracking.Number, order.Tracking.URL,
		order.Tracking.Company, order.Tracking.Service,
		order.CreatedAt, order.UpdatedAt,
	).Scan(&order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}

	r.logger.DebugContext(ctx, "order saved",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)))

	return nil
}

// UpdateStatus moves an order to a new lifecycle state.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "order", ID: id}
	}

	r.logger.DebugContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("status", string(status)))

	return nil
}

// RecordTracking stores the tracking details generated for an order.
func (r *orderRepository) RecordTracking(ctx context.Context, id string, tracking domain.TrackingInfo) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET
			tracking_number = $2, tracking_url = $3,
			tracking_company = $4, tracking_service = $5,
			updated_at = NOW()
		WHERE id = $1`,
		id, tracking.Number, tracking.URL, tracking.Company, tracking.Service,
	)
	if err != nil {
		return fmt.Errorf("failed to record tracking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "order", ID: id}
	}

	r.logger.DebugContext(ctx, "tracking recorded",
		slog.String("order_id", id),
		slog.String("tracking_number", tracking.Number))

	return nil
}

// List retrieves orders with optional status filtering and pagination,
// newest first.
func (r *orderRepository) List(ctx context.Context, params ports.OrderListParams) ([]*domain.Order, error) {
	qb := squirrel.Select(
		"id", "order_number", "line_item_count", "status",
		"tracking_number", "tracking_url", "tracking_company", "tracking_service",
		"created_at", "updated_at",
	).From("orders").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if params.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": params.Status})
	}
	if params.PageSize > 0 {
		qb = qb.Limit(uint64(params.PageSize))
		if params.Page > 1 {
			qb = qb.Offset(uint64((params.Page - 1) * params.PageSize))
		}
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Order, error) {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID, &order.OrderNumber, &order.LineItemCount, &order.Status,
			&order.Tracking.Number, &order.Tracking.URL,
			&order.Tracking.Company, &order.Tracking.Service,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		return order, nil
	})
}

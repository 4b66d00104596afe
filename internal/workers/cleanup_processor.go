// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

const (
	TypeCleanupOldJobs = "cleanup:old_jobs"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	db     ports.Database
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(db ports.Database, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     db,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldJobs removes finished job records older than 30 days
func (p *CleanupProcessor) CleanupOldJobs(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old job records")

	query := `
		DELETE FROM async_jobs
		WHERE completed_at IS NOT NULL
		  AND completed_at < NOW() - INTERVAL '30 days'`

	result, err := p.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to cleanup job records: %w", err)
	}

	p.logger.InfoContext(ctx, "old job records cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}

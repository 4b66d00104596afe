// internal/workers/consolidation_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

const (
	TypeConsolidationRun = "consolidation:run"
)

// ConsolidationJobPayload represents the payload for consolidation jobs
type ConsolidationJobPayload struct {
	JobID    string              `json:"job_id"`
	Shop     string              `json:"shop"`
	Variants []domain.VariantKey `json:"variants"`
}

// ConsolidationJobResult represents the result of a consolidation run
type ConsolidationJobResult struct {
	VariantsProcessed int                         `json:"variants_processed"`
	VariantsSkipped   int                         `json:"variants_skipped"`
	PartialFailures   int                         `json:"partial_failures"`
	Report            *domain.ConsolidationReport `json:"report,omitempty"`
	ProcessingTime    string                      `json:"processing_time"`
}

// ConsolidationRunner is the part of the consolidation service the
// processor needs.
type ConsolidationRunner interface {
	Consolidate(ctx context.Context, shop string, keys []domain.VariantKey) (*domain.ConsolidationReport, error)
}

// ConsolidationProcessor handles inventory consolidation tasks
type ConsolidationProcessor struct {
	service ConsolidationRunner
	db      ports.Database
	logger  *slog.Logger
}

// NewConsolidationProcessor creates a new consolidation processor
func NewConsolidationProcessor(service ConsolidationRunner, db ports.Database, logger *slog.Logger) *ConsolidationProcessor {
	return &ConsolidationProcessor{
		service: service,
		db:      db,
		logger:  logger.With(slog.String("processor", "consolidation")),
	}
}

// NewConsolidationTask builds the asynq task for a consolidation run.
func NewConsolidationTask(payload ConsolidationJobPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeConsolidationRun, b), nil
}

// ProcessConsolidation runs a consolidation batch for the selected variants
func (p *ConsolidationProcessor) ProcessConsolidation(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload ConsolidationJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "running consolidation",
		slog.String("job_id", payload.JobID),
		slog.String("shop", payload.Shop),
		slog.Int("variants", len(payload.Variants)))

	_ = p.updateJobStatus(ctx, payload.JobID, "processing", nil)

	report, err := p.service.Consolidate(ctx, payload.Shop, payload.Variants)
	if err != nil {
		// Validation failures never succeed on retry; record and stop.
		var vErr *domain.ValidationError
		errMsg := err.Error()
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		if errors.As(err, &vErr) {
			p.logger.WarnContext(ctx, "consolidation rejected",
				slog.String("job_id", payload.JobID),
				slog.String("reason", errMsg))
			return fmt.Errorf("consolidation rejected: %s: %w", errMsg, asynq.SkipRetry)
		}
		return fmt.Errorf("consolidation failed: %w", err)
	}

	skipped := 0
	for _, v := range report.Variants {
		if v.Skipped {
			skipped++
		}
	}

	failures := report.PartialFailures()
	status := "completed"
	if len(failures) > 0 {
		status = "completed_with_errors"
	}

	result := ConsolidationJobResult{
		VariantsProcessed: len(report.Variants),
		VariantsSkipped:   skipped,
		PartialFailures:   len(failures),
		Report:            report,
		ProcessingTime:    time.Since(start).String(),
	}

	resultJSON, _ := json.Marshal(result)
	_ = p.updateJobStatusWithResult(ctx, payload.JobID, status, resultJSON)

	p.logger.InfoContext(ctx, "consolidation completed",
		slog.String("job_id", payload.JobID),
		slog.Int("variants_processed", result.VariantsProcessed),
		slog.Int("partial_failures", result.PartialFailures))

	return nil
}

func (p *ConsolidationProcessor) updateJobStatus(ctx context.Context, jobID string, status string, errorMsg *string) error {
	query := `
		UPDATE async_jobs
		SET status = $2, error = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, errorMsg)
	return err
}

func (p *ConsolidationProcessor) updateJobStatusWithResult(ctx context.Context, jobID string, status string, result json.RawMessage) error {
	query := `
		UPDATE async_jobs
		SET status = $2, result = $3, completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, result)
	return err
}

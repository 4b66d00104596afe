// internal/handlers/setup.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
	"github.com/Saiashu12/fulfillment-task/internal/core/services"
	"github.com/Saiashu12/fulfillment-task/internal/workers"
)

// SetupHandler handles provisioning and product-selection requests
type SetupHandler struct {
	setup         *services.SetupService
	consolidation *services.ConsolidationService
	asynqClient   *asynq.Client
	db            ports.Database
	defaultShop   string
	logger        *slog.Logger
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(setup *services.SetupService, consolidation *services.ConsolidationService, asynqClient *asynq.Client, db ports.Database, defaultShop string, logger *slog.Logger) *SetupHandler {
	return &SetupHandler{
		setup:         setup,
		consolidation: consolidation,
		asynqClient:   asynqClient,
		db:            db,
		defaultShop:   defaultShop,
		logger:        logger.With(slog.String("handler", "setup")),
	}
}

// ProvisionRequest is the provision request body. Shop defaults to the
// configured shop domain when omitted.
type ProvisionRequest struct {
	Shop string `json:"shop,omitempty"`
}

// Provision handles POST /api/v1/setup/provision
func (h *SetupHandler) Provision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProvisionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	shop := req.Shop
	if shop == "" {
		shop = h.defaultShop
	}
	if shop == "" {
		respondError(h.logger, w, http.StatusBadRequest, "Shop is required")
		return
	}

	setup, err := h.setup.Provision(ctx, shop)
	if err != nil {
		h.logger.ErrorContext(ctx, "provisioning failed",
			slog.String("shop", shop),
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	h.logger.InfoContext(ctx, "shop provisioned",
		slog.String("shop", shop))

	respondJSON(h.logger, w, http.StatusOK, setup)
}

// ListCatalogVariants handles GET /api/v1/catalog/variants
func (h *SetupHandler) ListCatalogVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variants, err := h.consolidation.CatalogVariants(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list catalog",
			slog.String("error", err.Error()))
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	respondJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"variants": variants,
		"count":    len(variants),
	})
}

// SelectProductsRequest is the product-selection request body
type SelectProductsRequest struct {
	Shop     string              `json:"shop,omitempty"`
	Variants []domain.VariantKey `json:"variants"`
}

// SelectProducts handles POST /api/v1/setup/products. The consolidation
// itself runs as a background job; the response carries the job id.
func (h *SetupHandler) SelectProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SelectProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shop := req.Shop
	if shop == "" {
		shop = h.defaultShop
	}

	if err := h.consolidation.ValidateSelection(ctx, req.Variants); err != nil {
		respondError(h.logger, w, statusForError(err), err.Error())
		return
	}

	jobID := uuid.New().String()

	payload := workers.ConsolidationJobPayload{
		JobID:    jobID,
		Shop:     shop,
		Variants: req.Variants,
	}
	task, err := workers.NewConsolidationTask(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build consolidation task",
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to queue consolidation")
		return
	}

	if err := h.createJobRecord(r, jobID); err != nil {
		h.logger.ErrorContext(ctx, "failed to record job",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to queue consolidation")
		return
	}

	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue consolidation",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		respondError(h.logger, w, http.StatusInternalServerError, "Failed to queue consolidation")
		return
	}

	h.logger.InfoContext(ctx, "consolidation queued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID),
		slog.Int("variants", len(req.Variants)))

	respondJSON(h.logger, w, http.StatusAccepted, map[string]interface{}{
		"job_id":   jobID,
		"status":   "queued",
		"variants": len(req.Variants),
	})
}

// GetJob handles GET /api/v1/setup/jobs/{id}
func (h *SetupHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	jobID, err := uuid.Parse(idStr)
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	query := `
		SELECT id, type, status, error, result, created_at, updated_at, completed_at
		FROM async_jobs
		WHERE id = $1`

	var job struct {
		ID          uuid.UUID       `json:"id"`
		Type        string          `json:"type"`
		Status      string          `json:"status"`
		Error       *string         `json:"error,omitempty"`
		Result      json.RawMessage `json:"result,omitempty"`
		CreatedAt   time.Time       `json:"created_at"`
		UpdatedAt   time.Time       `json:"updated_at"`
		CompletedAt *time.Time      `json:"completed_at,omitempty"`
	}

	err = h.db.QueryRow(ctx, query, jobID).Scan(
		&job.ID, &job.Type, &job.Status, &job.Error, &job.Result,
		&job.CreatedAt, &job.UpdatedAt, &job.CompletedAt,
	)
	if err != nil {
		respondError(h.logger, w, http.StatusNotFound, "Job not found")
		return
	}

	respondJSON(h.logger, w, http.StatusOK, job)
}

func (h *SetupHandler) createJobRecord(r *http.Request, jobID string) error {
	query := `
		INSERT INTO async_jobs (id, type, status)
		VALUES ($1, $2, 'queued')`

	_, err := h.db.Exec(r.Context(), query, jobID, workers.TypeConsolidationRun)
	return err
}

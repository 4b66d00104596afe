// internal/core/services/setup.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
	"github.com/Saiashu12/fulfillment-task/internal/core/ports"
)

// setupLockTTL bounds how long a crashed provisioning run can hold the
// per-shop lock.
const setupLockTTL = 2 * time.Minute

// SetupConfig names the external resources the orchestrator provisions.
type SetupConfig struct {
	CarrierServiceName     string
	FulfillmentServiceName string
	CarrierCallbackURL     string
	FulfillmentCallbackURL string
	WebhookCallbackURL     string
}

// SetupService brings a shop from unconfigured to fully provisioned exactly
// once. Runs are single-flight per shop and resume safely after partial
// failure: sub-resources with a persisted id are never re-attempted.
type SetupService struct {
	setups   ports.ShopSetupRepository
	commerce ports.CommerceGateway
	locker   ports.Locker
	cfg      SetupConfig
	logger   *slog.Logger
}

// NewSetupService creates a new setup orchestrator.
func NewSetupService(setups ports.ShopSetupRepository, commerce ports.CommerceGateway, locker ports.Locker, cfg SetupConfig, logger *slog.Logger) *SetupService {
	return &SetupService{
		setups:   setups,
		commerce: commerce,
		locker:   locker,
		cfg:      cfg,
		logger:   logger.With(slog.String("service", "setup")),
	}
}

// Provision creates the carrier service, fulfillment service and
// order-created webhook for the shop, adopting existing resources on
// recognized conflicts. Whatever succeeds is persisted before the next
// sub-step runs, so a failed run resumes where it stopped.
func (s *SetupService) Provision(ctx context.Context, shop string) (*domain.ShopSetup, error) {
	if shop == "" {
		return nil, &domain.ValidationError{Field: "shop"}
	}

	release, err := s.locker.Acquire(ctx, "setup:"+shop, setupLockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	setup, err := s.setups.FindByShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop setup: %w", err)
	}
	if setup == nil {
		setup = &domain.ShopSetup{Shop: shop}
	}

	if setup.Step1Completed && setup.FullyProvisioned() {
		s.logger.InfoContext(ctx, "shop already provisioned",
			slog.String("shop", shop))
		return setup, nil
	}

	if setup.CarrierServiceID == "" {
		id, err := s.provisionCarrierService(ctx)
		if err != nil {
			return setup, fmt.Errorf("carrier service: %w", err)
		}
		setup.CarrierServiceID = id
		if err := s.setups.Upsert(ctx, setup); err != nil {
			return setup, fmt.Errorf("failed to persist carrier service id: %w", err)
		}
		s.logger.InfoContext(ctx, "carrier service provisioned",
			slog.String("shop", shop),
			slog.String("carrier_service_id", id))
	}

	if setup.FulfillmentServiceID == "" {
		id, err := s.provisionFulfillmentService(ctx)
		if err != nil {
			return setup, fmt.Errorf("fulfillment service: %w", err)
		}
		setup.FulfillmentServiceID = id
		if err := s.setups.Upsert(ctx, setup); err != nil {
			return setup, fmt.Errorf("failed to persist fulfillment service id: %w", err)
		}
		s.logger.InfoContext(ctx, "fulfillment service provisioned",
			slog.String("shop", shop),
			slog.String("fulfillment_service_id", id))
	}

	if setup.OrderWebhookID == "" {
		// No adoption path for webhooks: any user-level error is fatal.
		id, err := s.commerce.CreateOrderWebhook(ctx, s.cfg.WebhookCallbackURL)
		if err != nil {
			return setup, fmt.Errorf("order webhook: %w", err)
		}
		setup.OrderWebhookID = id
		if err := s.setups.Upsert(ctx, setup); err != nil {
			return setup, fmt.Errorf("failed to persist order webhook id: %w", err)
		}
		s.logger.InfoContext(ctx, "order webhook provisioned",
			slog.String("shop", shop),
			slog.String("order_webhook_id", id))
	}

	setup.Step1Completed = true
	if err := s.setups.Upsert(ctx, setup); err != nil {
		return setup, fmt.Errorf("failed to mark provisioning complete: %w", err)
	}

	s.logger.InfoContext(ctx, "shop provisioning complete",
		slog.String("shop", shop))
	return setup, nil
}

func (s *SetupService) provisionCarrierService(ctx context.Context) (string, error) {
	id, err := s.commerce.CreateCarrierService(ctx, s.cfg.CarrierServiceName, s.cfg.CarrierCallbackURL)
	if err == nil {
		return id, nil
	}
	if !domain.IsAdoptableConflict(err, domain.ConflictCarrierAlreadyConfigured) {
		return "", err
	}

	s.logger.InfoContext(ctx, "carrier service already exists, adopting",
		slog.String("name", s.cfg.CarrierServiceName))

	id, err = s.commerce.FindCarrierServiceByName(ctx, s.cfg.CarrierServiceName)
	if err != nil {
		return "", fmt.Errorf("reported as already configured but lookup failed: %w", err)
	}
	return id, nil
}

func (s *SetupService) provisionFulfillmentService(ctx context.Context) (string, error) {
	id, err := s.commerce.CreateFulfillmentService(ctx, s.cfg.FulfillmentServiceName, s.cfg.FulfillmentCallbackURL)
	if err == nil {
		return id, nil
	}
	if !domain.IsAdoptableConflict(err, domain.ConflictServiceNameTaken) {
		return "", err
	}

	s.logger.InfoContext(ctx, "fulfillment service name taken, adopting",
		slog.String("name", s.cfg.FulfillmentServiceName))

	id, err = s.commerce.FindFulfillmentServiceByName(ctx, s.cfg.FulfillmentServiceName)
	if err != nil {
		return "", fmt.Errorf("reported as name taken but lookup failed: %w", err)
	}
	return id, nil
}

package profitgrid

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/metrics"
)

// TxRunner executes fn inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams groups dependencies for the profit grid service.
type ServiceParams struct {
	Repo    Repository
	Tx      TxRunner
	Logger  *logger.Logger
	Metrics *metrics.CalculationMetrics
}

// Service orchestrates profit grid calculations and tier CRUD. It holds no
// tier state of its own: every calculation re-reads the active set so a
// configuration change is visible on the next call.
type Service struct {
	repo    Repository
	tx      TxRunner
	logg    *logger.Logger
	metrics *metrics.CalculationMetrics
}

// NewService builds a profit grid service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	if params.Tx == nil {
		return nil, errors.New("tx runner is required")
	}
	return &Service{
		repo:    params.Repo,
		tx:      params.Tx,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// CalculationResult is the outcome of a successful rate calculation.
type CalculationResult struct {
	GrossAmount     decimal.Decimal
	DeductionAmount decimal.Decimal
	NetAmount       decimal.Decimal
	Currency        enums.Currency
	TierID          uuid.UUID
}

// Calculate resolves the tier covering amount and derives the monetary
// breakdown. Input validation happens before any repository read.
func (s *Service) Calculate(ctx context.Context, amount decimal.Decimal, currency string) (*CalculationResult, error) {
	if !amount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "amount must be positive").
			WithDetails(map[string]any{"amount": amount.String()})
	}
	cur, err := enums.ParseCurrency(strings.TrimSpace(currency))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "unrecognized currency")
	}

	start := time.Now()

	tiers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active tiers")
	}

	tier, err := ResolveTier(amount, tiers)
	if err != nil {
		switch pkgerrors.As(err).Code() {
		case pkgerrors.CodeInconsistentConfig:
			s.metrics.IncConfigurationConflict()
			if s.logg != nil {
				s.logg.Error(ctx, "profit_grid.configuration_conflict", err)
			}
		case pkgerrors.CodeNoMatchingTier:
			s.metrics.IncUnresolved()
		}
		return nil, err
	}

	breakdown := ComputeBreakdown(amount, *tier)

	if s.logg != nil {
		s.logg.Info(s.logg.WithTierID(ctx, tier.ID.String()), "profit_grid.tier_resolved")
	}

	s.metrics.IncResolved(cur.String())
	s.metrics.ObserveDuration(cur.String(), time.Since(start))

	return &CalculationResult{
		GrossAmount:     breakdown.GrossAmount,
		DeductionAmount: breakdown.DeductionAmount,
		NetAmount:       breakdown.NetAmount,
		Currency:        cur,
		TierID:          tier.ID,
	}, nil
}

// Create validates and persists a new tier. The overlap check and the insert
// run in one transaction holding a lock on the active set, so two concurrent
// writers cannot both pass the check against a stale snapshot.
func (s *Service) Create(ctx context.Context, input TierInput) (*models.ProfitGridTier, error) {
	var created *models.ProfitGridTier
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		active, err := repo.ListActiveLocked(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active tiers")
		}

		tier, fieldErrs := ValidateTier(input, active, uuid.Nil)
		if len(fieldErrs) > 0 {
			return validationError(fieldErrs)
		}

		if err := repo.Create(ctx, &tier); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating tier")
		}
		created = &tier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces every field of an existing tier with the validated input.
// Fields are never merged; partial updates go through UpdateStatus or an
// explicit full payload.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input TierInput) (*models.ProfitGridTier, error) {
	var updated *models.ProfitGridTier
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading tier")
		}
		if existing == nil {
			return pkgerrors.New(pkgerrors.CodeNotFound, "tier not found")
		}

		active, err := repo.ListActiveLocked(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active tiers")
		}

		tier, fieldErrs := ValidateTier(input, active, id)
		if len(fieldErrs) > 0 {
			return validationError(fieldErrs)
		}

		tier.ID = existing.ID
		tier.CreatedAt = existing.CreatedAt
		if err := repo.Update(ctx, &tier); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating tier")
		}
		updated = &tier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus toggles a tier between active and inactive. Activation
// re-validates the stored range against the other active tiers; deactivation
// always succeeds.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.TierStatus) (*models.ProfitGridTier, error) {
	if !status.IsValid() {
		return nil, validationError([]FieldError{{Field: "status", Reason: "must be active or inactive"}})
	}

	var updated *models.ProfitGridTier
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading tier")
		}
		if existing == nil {
			return pkgerrors.New(pkgerrors.CodeNotFound, "tier not found")
		}
		if existing.Status == status {
			updated = existing
			return nil
		}

		if status == enums.TierStatusActive {
			active, err := repo.ListActiveLocked(ctx)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active tiers")
			}
			input := TierInput{
				MinAmount:     &existing.MinAmount,
				MaxAmount:     &existing.MaxAmount,
				GrossRate:     &existing.GrossRate,
				DeductionRate: &existing.DeductionRate,
				NetRate:       &existing.NetRate,
				Status:        status,
			}
			if _, fieldErrs := ValidateTier(input, active, id); len(fieldErrs) > 0 {
				return validationError(fieldErrs)
			}
		}

		existing.Status = status
		if err := repo.Update(ctx, existing); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating tier status")
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a tier by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting tier")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "tier not found")
	}
	return nil
}

// DeleteMany removes each id independently: a missing id does not abort the
// rest. It returns how many tiers were actually removed; repository failures
// are aggregated and returned alongside the count.
func (s *Service) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	var combined error
	deleted := 0
	for _, id := range ids {
		found, err := s.repo.Delete(ctx, id)
		if err != nil {
			combined = multierr.Append(combined, err)
			continue
		}
		if found {
			deleted++
		}
	}
	if combined != nil {
		return deleted, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "deleting tiers").
			WithDetails(map[string]any{"deleted": deleted})
	}
	return deleted, nil
}

// List returns every tier regardless of status.
func (s *Service) List(ctx context.Context) ([]models.ProfitGridTier, error) {
	tiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing tiers")
	}
	return tiers, nil
}

// ListActive returns only the tiers participating in resolution.
func (s *Service) ListActive(ctx context.Context) ([]models.ProfitGridTier, error) {
	tiers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active tiers")
	}
	return tiers, nil
}

// GetByID loads one tier by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfitGridTier, error) {
	tier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading tier")
	}
	if tier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tier not found")
	}
	return tier, nil
}

func validationError(fieldErrs []FieldError) *pkgerrors.Error {
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, ok := details[fe.Field]; !ok {
			details[fe.Field] = fe.Reason
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "tier validation failed").WithDetails(details)
}

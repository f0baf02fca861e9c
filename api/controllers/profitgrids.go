package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/api/responses"
	"github.com/shopyard/shopyard-backend/api/validators"
	"github.com/shopyard/shopyard-backend/internal/profitgrid"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
)

// TierService describes the profit grid methods used by the HTTP controllers.
type TierService interface {
	Calculate(ctx context.Context, amount decimal.Decimal, currency string) (*profitgrid.CalculationResult, error)
	Create(ctx context.Context, input profitgrid.TierInput) (*models.ProfitGridTier, error)
	Update(ctx context.Context, id uuid.UUID, input profitgrid.TierInput) (*models.ProfitGridTier, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.TierStatus) (*models.ProfitGridTier, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
	List(ctx context.Context) ([]models.ProfitGridTier, error)
	ListActive(ctx context.Context) ([]models.ProfitGridTier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProfitGridTier, error)
}

type tierResponse struct {
	ID            string `json:"id"`
	MinAmount     string `json:"min_amount"`
	MaxAmount     string `json:"max_amount"`
	GrossRate     string `json:"gross_rate"`
	DeductionRate string `json:"deduction_rate"`
	NetRate       string `json:"net_rate"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type tierListResponse struct {
	Tiers []tierResponse `json:"tiers"`
}

type tierUpsertRequest struct {
	MinAmount     *decimal.Decimal `json:"min_amount" validate:"required"`
	MaxAmount     *decimal.Decimal `json:"max_amount" validate:"required"`
	GrossRate     *decimal.Decimal `json:"gross_rate" validate:"required"`
	DeductionRate *decimal.Decimal `json:"deduction_rate" validate:"required"`
	NetRate       *decimal.Decimal `json:"net_rate" validate:"required"`
	Status        string           `json:"status" validate:"omitempty,oneof=active inactive"`
}

type tierStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type calculateRequest struct {
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Currency string           `json:"currency" validate:"required"`
}

type calculationResponse struct {
	GrossAmount     string `json:"gross_amount"`
	DeductionAmount string `json:"deduction_amount"`
	NetAmount       string `json:"net_amount"`
	Currency        string `json:"currency"`
	TierID          string `json:"tier_id"`
}

func TierCreate(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload tierUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tier, err := svc.Create(ctx, tierInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, tierToResponse(tier))
	}
}

func TierList(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tiers, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, tierListResponse{Tiers: tiersToResponse(tiers)})
	}
}

func TierListActive(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tiers, err := svc.ListActive(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, tierListResponse{Tiers: tiersToResponse(tiers)})
	}
}

func TierCalculate(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload calculateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Calculate(ctx, *payload.Amount, payload.Currency)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, calculationResponse{
			GrossAmount:     result.GrossAmount.StringFixed(2),
			DeductionAmount: result.DeductionAmount.StringFixed(2),
			NetAmount:       result.NetAmount.StringFixed(2),
			Currency:        result.Currency.String(),
			TierID:          result.TierID.String(),
		})
	}
}

func TierDetail(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := tierIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tier, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, tierToResponse(tier))
	}
}

func TierUpdate(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := tierIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload tierUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tier, err := svc.Update(ctx, id, tierInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, tierToResponse(tier))
	}
}

func TierUpdateStatus(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := tierIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload tierStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		tier, err := svc.UpdateStatus(ctx, id, enums.TierStatus(payload.Status))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, tierToResponse(tier))
	}
}

func TierDelete(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := tierIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": true})
	}
}

func TierDeleteMany(svc TierService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := strings.TrimSpace(chi.URLParam(r, "ids"))
		if raw == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInvalidInput, "ids are required"))
			return
		}

		parts := strings.Split(raw, ",")
		ids := make([]uuid.UUID, 0, len(parts))
		for _, part := range parts {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "invalid tier id "+part))
				return
			}
			ids = append(ids, id)
		}

		deleted, err := svc.DeleteMany(ctx, ids)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": deleted})
	}
}

func tierIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "tier id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "tier not found")
	}
	return id, nil
}

func tierInputFromRequest(payload tierUpsertRequest) profitgrid.TierInput {
	return profitgrid.TierInput{
		MinAmount:     payload.MinAmount,
		MaxAmount:     payload.MaxAmount,
		GrossRate:     payload.GrossRate,
		DeductionRate: payload.DeductionRate,
		NetRate:       payload.NetRate,
		Status:        enums.TierStatus(payload.Status),
	}
}

func tiersToResponse(tiers []models.ProfitGridTier) []tierResponse {
	result := make([]tierResponse, 0, len(tiers))
	for _, tier := range tiers {
		result = append(result, tierToResponse(&tier))
	}
	return result
}

func tierToResponse(tier *models.ProfitGridTier) tierResponse {
	return tierResponse{
		ID:            tier.ID.String(),
		MinAmount:     tier.MinAmount.StringFixed(2),
		MaxAmount:     tier.MaxAmount.StringFixed(2),
		GrossRate:     tier.GrossRate.StringFixed(2),
		DeductionRate: tier.DeductionRate.StringFixed(2),
		NetRate:       tier.NetRate.StringFixed(2),
		Status:        string(tier.Status),
		CreatedAt:     tier.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     tier.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

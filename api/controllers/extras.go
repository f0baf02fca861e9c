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
	"github.com/shopyard/shopyard-backend/internal/extras"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// ExtraService describes the extras methods used by the HTTP controllers.
type ExtraService interface {
	Create(ctx context.Context, input extras.ExtraInput) (*models.Extra, error)
	Update(ctx context.Context, id uuid.UUID, input extras.ExtraInput) (*models.Extra, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Extra, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Extra, error)
	ListShowing(ctx context.Context) ([]models.Extra, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Extra, error)
}

type extraUpsertRequest struct {
	Name   localizedTextPayload `json:"name"`
	Price  *decimal.Decimal     `json:"price" validate:"required"`
	Status string               `json:"status" validate:"omitempty,oneof=showing hidden"`
}

type catalogStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=showing hidden"`
}

type extraResponse struct {
	ID        string               `json:"id"`
	Name      localizedTextPayload `json:"name"`
	Price     string               `json:"price"`
	Status    string               `json:"status"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

type extraListResponse struct {
	Extras []extraResponse `json:"extras"`
}

func ExtraCreate(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload extraUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		extra, err := svc.Create(ctx, extraInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, extraToResponse(extra))
	}
}

func ExtraList(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, extraListResponse{Extras: extrasToResponse(items)})
	}
}

func ExtraListShowing(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.ListShowing(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, extraListResponse{Extras: extrasToResponse(items)})
	}
}

func ExtraDetail(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := extraIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		extra, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, extraToResponse(extra))
	}
}

func ExtraUpdate(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := extraIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload extraUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		extra, err := svc.Update(ctx, id, extraInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, extraToResponse(extra))
	}
}

func ExtraUpdateStatus(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := extraIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload catalogStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		extra, err := svc.UpdateStatus(ctx, id, enums.CatalogStatus(payload.Status))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, extraToResponse(extra))
	}
}

func ExtraDelete(svc ExtraService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := extraIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": true})
	}
}

func extraIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "extra id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "extra not found")
	}
	return id, nil
}

func extraInputFromRequest(payload extraUpsertRequest) extras.ExtraInput {
	input := extras.ExtraInput{
		Name:   types.LocalizedText{Ar: payload.Name.Ar, En: payload.Name.En},
		Status: enums.CatalogStatus(payload.Status),
	}
	if payload.Price != nil {
		input.Price = *payload.Price
	}
	return input
}

func extrasToResponse(items []models.Extra) []extraResponse {
	result := make([]extraResponse, 0, len(items))
	for _, extra := range items {
		result = append(result, extraToResponse(&extra))
	}
	return result
}

func extraToResponse(extra *models.Extra) extraResponse {
	return extraResponse{
		ID:        extra.ID.String(),
		Name:      localizedTextPayload{Ar: extra.Name.Ar, En: extra.Name.En},
		Price:     extra.Price.StringFixed(2),
		Status:    string(extra.Status),
		CreatedAt: extra.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: extra.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

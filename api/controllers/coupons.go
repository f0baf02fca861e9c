package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/api/responses"
	"github.com/shopyard/shopyard-backend/api/validators"
	"github.com/shopyard/shopyard-backend/internal/coupons"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/pagination"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// CouponService describes the coupon methods used by the HTTP controllers.
type CouponService interface {
	Create(ctx context.Context, input coupons.CouponInput) (*models.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, input coupons.CouponInput) (*models.Coupon, error)
	Patch(ctx context.Context, id uuid.UUID, patch coupons.CouponPatch) (*models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params coupons.ListParams) ([]models.Coupon, string, error)
	ListShowing(ctx context.Context) ([]models.Coupon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
}

type localizedTextPayload struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

type couponUpsertRequest struct {
	Code        string               `json:"code" validate:"required"`
	Name        localizedTextPayload `json:"name"`
	Type        string               `json:"type" validate:"required,oneof=percentage fixed"`
	Amount      *decimal.Decimal     `json:"amount" validate:"required"`
	MaxDiscount *decimal.Decimal     `json:"max_discount"`
	Categories  []string             `json:"categories"`
	ExpiresAt   *time.Time           `json:"expires_at"`
	Status      string               `json:"status" validate:"omitempty,oneof=showing hidden"`
}

type couponPatchRequest struct {
	Name        *localizedTextPayload `json:"name"`
	Amount      *decimal.Decimal      `json:"amount"`
	MaxDiscount *decimal.Decimal      `json:"max_discount"`
	Categories  *[]string             `json:"categories"`
	ExpiresAt   **time.Time           `json:"expires_at"`
	Status      *string               `json:"status" validate:"omitempty,oneof=showing hidden"`
}

type couponResponse struct {
	ID          string               `json:"id"`
	Code        string               `json:"code"`
	Name        localizedTextPayload `json:"name"`
	Type        string               `json:"type"`
	Amount      string               `json:"amount"`
	MaxDiscount string               `json:"max_discount"`
	Categories  []string             `json:"categories"`
	ExpiresAt   *string              `json:"expires_at"`
	Status      string               `json:"status"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

type couponListResponse struct {
	Coupons    []couponResponse `json:"coupons"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func CouponCreate(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload couponUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		coupon, err := svc.Create(ctx, couponInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, couponToResponse(coupon))
	}
}

func CouponList(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		params := coupons.ListParams{
			Limit:  pagination.NormalizeLimit(limit),
			Cursor: r.URL.Query().Get("cursor"),
		}
		if raw := r.URL.Query().Get("status"); raw != "" {
			status, err := enums.ParseCatalogStatus(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "invalid status filter"))
				return
			}
			params.Status = &status
		}

		items, next, err := svc.List(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponListResponse{
			Coupons:    couponsToResponse(items),
			NextCursor: next,
		})
	}
}

func CouponListShowing(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.ListShowing(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponListResponse{Coupons: couponsToResponse(items)})
	}
}

func CouponDetail(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := couponIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		coupon, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponToResponse(coupon))
	}
}

func CouponUpdate(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := couponIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload couponUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		coupon, err := svc.Update(ctx, id, couponInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponToResponse(coupon))
	}
}

func CouponPatch(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := couponIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload couponPatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		patch := coupons.CouponPatch{
			Amount:      payload.Amount,
			MaxDiscount: payload.MaxDiscount,
			Categories:  payload.Categories,
			ExpiresAt:   payload.ExpiresAt,
		}
		if payload.Name != nil {
			name := types.LocalizedText{Ar: payload.Name.Ar, En: payload.Name.En}
			patch.Name = &name
		}
		if payload.Status != nil {
			status := enums.CatalogStatus(*payload.Status)
			patch.Status = &status
		}

		coupon, err := svc.Patch(ctx, id, patch)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, couponToResponse(coupon))
	}
}

func CouponDelete(svc CouponService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := couponIDParam(r)
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

func couponIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "coupon id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "coupon not found")
	}
	return id, nil
}

func couponInputFromRequest(payload couponUpsertRequest) coupons.CouponInput {
	input := coupons.CouponInput{
		Code:       payload.Code,
		Name:       types.LocalizedText{Ar: payload.Name.Ar, En: payload.Name.En},
		Type:       enums.CouponType(payload.Type),
		Categories: payload.Categories,
		ExpiresAt:  payload.ExpiresAt,
		Status:     enums.CatalogStatus(payload.Status),
	}
	if payload.Amount != nil {
		input.Amount = *payload.Amount
	}
	if payload.MaxDiscount != nil {
		input.MaxDiscount = *payload.MaxDiscount
	}
	return input
}

func couponsToResponse(items []models.Coupon) []couponResponse {
	result := make([]couponResponse, 0, len(items))
	for _, coupon := range items {
		result = append(result, couponToResponse(&coupon))
	}
	return result
}

func couponToResponse(coupon *models.Coupon) couponResponse {
	resp := couponResponse{
		ID:          coupon.ID.String(),
		Code:        coupon.Code,
		Name:        localizedTextPayload{Ar: coupon.Name.Ar, En: coupon.Name.En},
		Type:        string(coupon.Type),
		Amount:      coupon.Amount.StringFixed(2),
		MaxDiscount: coupon.MaxDiscount.StringFixed(2),
		Categories:  coupon.Categories,
		Status:      string(coupon.Status),
		CreatedAt:   coupon.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   coupon.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if coupon.ExpiresAt != nil {
		expires := coupon.ExpiresAt.UTC().Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}

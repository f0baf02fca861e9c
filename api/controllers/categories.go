package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopyard/shopyard-backend/api/responses"
	"github.com/shopyard/shopyard-backend/api/validators"
	"github.com/shopyard/shopyard-backend/internal/categories"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// CategoryService describes the category methods used by the HTTP controllers.
type CategoryService interface {
	Create(ctx context.Context, input categories.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, input categories.CategoryInput) (*models.Category, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Category, error)
	ListShowing(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type categoryUpsertRequest struct {
	Slug      string               `json:"slug" validate:"required"`
	Name      localizedTextPayload `json:"name"`
	SortOrder int                  `json:"sort_order" validate:"min=0"`
	Status    string               `json:"status" validate:"omitempty,oneof=showing hidden"`
}

type categoryResponse struct {
	ID        string               `json:"id"`
	Slug      string               `json:"slug"`
	Name      localizedTextPayload `json:"name"`
	SortOrder int                  `json:"sort_order"`
	Status    string               `json:"status"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

type categoryListResponse struct {
	Categories []categoryResponse `json:"categories"`
}

func CategoryCreate(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload categoryUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		category, err := svc.Create(ctx, categoryInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, categoryToResponse(category))
	}
}

func CategoryList(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoryListResponse{Categories: categoriesToResponse(items)})
	}
}

func CategoryListShowing(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.ListShowing(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoryListResponse{Categories: categoriesToResponse(items)})
	}
}

func CategoryDetail(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := categoryIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		category, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoryToResponse(category))
	}
}

func CategoryUpdate(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := categoryIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload categoryUpsertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		category, err := svc.Update(ctx, id, categoryInputFromRequest(payload))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoryToResponse(category))
	}
}

func CategoryUpdateStatus(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := categoryIDParam(r)
		if perr != nil {
			responses.WriteError(ctx, logg, w, perr)
			return
		}

		var payload catalogStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		category, err := svc.UpdateStatus(ctx, id, enums.CatalogStatus(payload.Status))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, categoryToResponse(category))
	}
}

func CategoryDelete(svc CategoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, perr := categoryIDParam(r)
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

func categoryIDParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "category id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "category not found")
	}
	return id, nil
}

func categoryInputFromRequest(payload categoryUpsertRequest) categories.CategoryInput {
	return categories.CategoryInput{
		Slug:      payload.Slug,
		Name:      types.LocalizedText{Ar: payload.Name.Ar, En: payload.Name.En},
		SortOrder: payload.SortOrder,
		Status:    enums.CatalogStatus(payload.Status),
	}
}

func categoriesToResponse(items []models.Category) []categoryResponse {
	result := make([]categoryResponse, 0, len(items))
	for _, category := range items {
		result = append(result, categoryToResponse(&category))
	}
	return result
}

func categoryToResponse(category *models.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID.String(),
		Slug:      category.Slug,
		Name:      localizedTextPayload{Ar: category.Name.Ar, En: category.Name.En},
		SortOrder: category.SortOrder,
		Status:    string(category.Status),
		CreatedAt: category.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

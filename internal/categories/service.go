package categories

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/shopyard/shopyard-backend/pkg/db"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CategoryInput carries the full field set of a category.
type CategoryInput struct {
	Slug      string
	Name      types.LocalizedText
	SortOrder int
	Status    enums.CatalogStatus
}

// ServiceParams groups dependencies for the category service.
type ServiceParams struct {
	Repo Repository
}

// Service fronts category CRUD.
type Service struct {
	repo Repository
}

// NewService builds a category service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

func (s *Service) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating category")
	}
	return category, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*models.Category, error) {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := buildCategory(input)
	if err != nil {
		return nil, err
	}
	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, category); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category slug already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating category")
	}
	return category, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Category, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
	}

	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Status = status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating category status")
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting category")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	return categories, nil
}

func (s *Service) ListShowing(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListShowing(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}
	return categories, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.lookup(ctx, id)
}

func (s *Service) lookup(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading category")
	}
	if category == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return category, nil
}

func buildCategory(input CategoryInput) (*models.Category, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug must be lowercase letters, digits and dashes")
	}
	if input.Name.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.SortOrder < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sort_order must be non-negative")
	}

	status := input.Status
	if status == "" {
		status = enums.CatalogStatusShowing
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
	}

	return &models.Category{
		Slug:      slug,
		Name:      input.Name,
		SortOrder: input.SortOrder,
		Status:    status,
	}, nil
}

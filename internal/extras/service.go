package extras

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// ExtraInput carries the full field set of an extra.
type ExtraInput struct {
	Name   types.LocalizedText
	Price  decimal.Decimal
	Status enums.CatalogStatus
}

// ServiceParams groups dependencies for the extras service.
type ServiceParams struct {
	Repo Repository
}

// Service fronts extras CRUD.
type Service struct {
	repo Repository
}

// NewService builds an extras service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

func (s *Service) Create(ctx context.Context, input ExtraInput) (*models.Extra, error) {
	extra, err := buildExtra(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, extra); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating extra")
	}
	return extra, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input ExtraInput) (*models.Extra, error) {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	extra, err := buildExtra(input)
	if err != nil {
		return nil, err
	}
	extra.ID = existing.ID
	extra.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, extra); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating extra")
	}
	return extra, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Extra, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
	}

	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Status = status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating extra status")
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting extra")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "extra not found")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]models.Extra, error) {
	extras, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing extras")
	}
	return extras, nil
}

func (s *Service) ListShowing(ctx context.Context) ([]models.Extra, error) {
	extras, err := s.repo.ListShowing(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing extras")
	}
	return extras, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.Extra, error) {
	return s.lookup(ctx, id)
}

func (s *Service) lookup(ctx context.Context, id uuid.UUID) (*models.Extra, error) {
	extra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading extra")
	}
	if extra == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "extra not found")
	}
	return extra, nil
}

func buildExtra(input ExtraInput) (*models.Extra, error) {
	if input.Name.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}

	status := input.Status
	if status == "" {
		status = enums.CatalogStatusShowing
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
	}

	return &models.Extra{
		Name:   input.Name,
		Price:  input.Price.Round(2),
		Status: status,
	}, nil
}

package coupons

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/pagination"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

var oneHundred = decimal.NewFromInt(100)

// CouponInput carries the full field set of a coupon; create and update both
// replace every field, there is no implicit merge.
type CouponInput struct {
	Code        string
	Name        types.LocalizedText
	Type        enums.CouponType
	Amount      decimal.Decimal
	MaxDiscount decimal.Decimal
	Categories  []string
	ExpiresAt   *time.Time
	Status      enums.CatalogStatus
}

// CouponPatch names which fields a partial update carries. Absent pointers
// leave the stored value untouched.
type CouponPatch struct {
	Name        *types.LocalizedText
	Amount      *decimal.Decimal
	MaxDiscount *decimal.Decimal
	Categories  *[]string
	ExpiresAt   **time.Time
	Status      *enums.CatalogStatus
}

// ServiceParams groups dependencies for the coupon service.
type ServiceParams struct {
	Repo Repository
}

// Service fronts coupon CRUD.
type Service struct {
	repo Repository
}

// NewService builds a coupon service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

func (s *Service) Create(ctx context.Context, input CouponInput) (*models.Coupon, error) {
	coupon, err := buildCoupon(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, coupon); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "coupon code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating coupon")
	}
	return coupon, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input CouponInput) (*models.Coupon, error) {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon, err := buildCoupon(input)
	if err != nil {
		return nil, err
	}
	coupon.ID = existing.ID
	coupon.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, coupon); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "coupon code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating coupon")
	}
	return coupon, nil
}

// Patch applies only the fields the caller named; the coupon code is
// immutable after creation.
func (s *Service) Patch(ctx context.Context, id uuid.UUID, patch CouponPatch) (*models.Coupon, error) {
	existing, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if patch.Name.IsEmpty() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
		}
		existing.Name = *patch.Name
	}
	if patch.Amount != nil {
		if err := validateAmount(existing.Type, *patch.Amount); err != nil {
			return nil, err
		}
		existing.Amount = patch.Amount.Round(2)
	}
	if patch.MaxDiscount != nil {
		if patch.MaxDiscount.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "max_discount must be non-negative")
		}
		existing.MaxDiscount = patch.MaxDiscount.Round(2)
	}
	if patch.Categories != nil {
		existing.Categories = pq.StringArray(*patch.Categories)
	}
	if patch.ExpiresAt != nil {
		existing.ExpiresAt = *patch.ExpiresAt
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
		}
		existing.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating coupon")
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting coupon")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found")
	}
	return nil
}

// ListParams configures the paginated coupon listing.
type ListParams struct {
	Status *enums.CatalogStatus
	Limit  int
	Cursor string
}

// List returns a page of coupons plus the cursor for the next page, if any.
func (s *Service) List(ctx context.Context, params ListParams) ([]models.Coupon, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInvalidInput, err, "invalid cursor")
	}

	coupons, next, err := s.repo.List(ctx, ListQuery{
		Status: params.Status,
		Limit:  params.Limit,
		Cursor: cursor,
	})
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing coupons")
	}

	nextCursor := ""
	if next != nil {
		nextCursor = pagination.EncodeCursor(*next)
	}
	return coupons, nextCursor, nil
}

// ListShowing returns the coupons visible on the storefront.
func (s *Service) ListShowing(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := s.repo.ListShowing(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing coupons")
	}
	return coupons, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	return s.lookup(ctx, id)
}

func (s *Service) lookup(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	coupon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading coupon")
	}
	if coupon == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found")
	}
	return coupon, nil
}

func buildCoupon(input CouponInput) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if input.Name.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type must be percentage or fixed")
	}
	if err := validateAmount(input.Type, input.Amount); err != nil {
		return nil, err
	}
	if input.MaxDiscount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "max_discount must be non-negative")
	}

	status := input.Status
	if status == "" {
		status = enums.CatalogStatusShowing
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be showing or hidden")
	}

	return &models.Coupon{
		Code:        code,
		Name:        input.Name,
		Type:        input.Type,
		Amount:      input.Amount.Round(2),
		MaxDiscount: input.MaxDiscount.Round(2),
		Categories:  pq.StringArray(input.Categories),
		ExpiresAt:   input.ExpiresAt,
		Status:      status,
	}, nil
}

func validateAmount(couponType enums.CouponType, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if couponType == enums.CouponTypePercentage && amount.GreaterThan(oneHundred) {
		return pkgerrors.New(pkgerrors.CodeValidation, "percentage amount must be at most 100")
	}
	return nil
}

package coupons

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/pagination"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

type fakeRepository struct {
	createFn   func(ctx context.Context, coupon *models.Coupon) error
	updateFn   func(ctx context.Context, coupon *models.Coupon) error
	deleteFn   func(ctx context.Context, id uuid.UUID) (bool, error)
	findByIDFn func(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	listFn     func(ctx context.Context, params ListQuery) ([]models.Coupon, *pagination.Cursor, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	if f.createFn != nil {
		return f.createFn(ctx, coupon)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, coupon)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return true, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeRepository) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	return nil, nil
}

func (f *fakeRepository) List(ctx context.Context, params ListQuery) ([]models.Coupon, *pagination.Cursor, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, nil, nil
}

func (f *fakeRepository) ListShowing(ctx context.Context) ([]models.Coupon, error) {
	return nil, nil
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validCouponInput() CouponInput {
	return CouponInput{
		Code:   "summer10",
		Name:   types.LocalizedText{En: "Summer Sale", Ar: "تخفيضات الصيف"},
		Type:   enums.CouponTypePercentage,
		Amount: decimal.RequireFromString("10"),
	}
}

func TestService_CreateNormalizesCode(t *testing.T) {
	var saved *models.Coupon
	repo := &fakeRepository{
		createFn: func(ctx context.Context, coupon *models.Coupon) error {
			saved = coupon
			return nil
		},
	}
	svc := newTestService(t, repo)

	coupon, err := svc.Create(context.Background(), validCouponInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected coupon persisted")
	}
	if coupon.Code != "SUMMER10" {
		t.Fatalf("expected upper-cased code, got %q", coupon.Code)
	}
	if coupon.Status != enums.CatalogStatusShowing {
		t.Fatalf("expected default showing status, got %s", coupon.Status)
	}
}

func TestService_CreateValidation(t *testing.T) {
	svc := newTestService(t, &fakeRepository{})

	cases := []struct {
		name   string
		mutate func(*CouponInput)
	}{
		{"missing code", func(in *CouponInput) { in.Code = "  " }},
		{"missing name", func(in *CouponInput) { in.Name = types.LocalizedText{} }},
		{"bad type", func(in *CouponInput) { in.Type = "bogo" }},
		{"zero amount", func(in *CouponInput) { in.Amount = decimal.Zero }},
		{"percentage above 100", func(in *CouponInput) { in.Amount = decimal.RequireFromString("101") }},
		{"negative max discount", func(in *CouponInput) { in.MaxDiscount = decimal.RequireFromString("-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCouponInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestService_CreateFixedAmountAbove100(t *testing.T) {
	svc := newTestService(t, &fakeRepository{})

	input := validCouponInput()
	input.Type = enums.CouponTypeFixed
	input.Amount = decimal.RequireFromString("250")
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("fixed coupons may exceed 100, got %v", err)
	}
}

func TestService_PatchMergesNamedFieldsOnly(t *testing.T) {
	existing := &models.Coupon{
		ID:     uuid.New(),
		Code:   "SUMMER10",
		Name:   types.LocalizedText{En: "Summer Sale"},
		Type:   enums.CouponTypePercentage,
		Amount: decimal.RequireFromString("10"),
		Status: enums.CatalogStatusShowing,
	}
	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
			copied := *existing
			return &copied, nil
		},
	}
	svc := newTestService(t, repo)

	amount := decimal.RequireFromString("15")
	patched, err := svc.Patch(context.Background(), existing.ID, CouponPatch{Amount: &amount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patched.Amount.String() != "15" {
		t.Fatalf("expected amount 15, got %s", patched.Amount)
	}
	if patched.Code != "SUMMER10" || patched.Name.En != "Summer Sale" {
		t.Fatal("untouched fields must survive a patch")
	}
}

func TestService_PatchClearsExpiry(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour)
	existing := &models.Coupon{
		ID:        uuid.New(),
		Code:      "SUMMER10",
		Name:      types.LocalizedText{En: "Summer Sale"},
		Type:      enums.CouponTypePercentage,
		Amount:    decimal.RequireFromString("10"),
		ExpiresAt: &expires,
		Status:    enums.CatalogStatusShowing,
	}
	repo := &fakeRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
			copied := *existing
			return &copied, nil
		},
	}
	svc := newTestService(t, repo)

	var cleared *time.Time
	patched, err := svc.Patch(context.Background(), existing.ID, CouponPatch{ExpiresAt: &cleared})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patched.ExpiresAt != nil {
		t.Fatal("expected expiry cleared")
	}
}

func TestService_PatchMissingCoupon(t *testing.T) {
	svc := newTestService(t, &fakeRepository{})

	_, err := svc.Patch(context.Background(), uuid.New(), CouponPatch{})
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestService_ListInvalidCursor(t *testing.T) {
	svc := newTestService(t, &fakeRepository{})

	_, _, err := svc.List(context.Background(), ListParams{Cursor: "not-a-cursor"})
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeInvalidInput {
		t.Fatalf("expected invalid-input for a bad cursor, got %v", err)
	}
}

func TestService_ListEncodesNextCursor(t *testing.T) {
	next := pagination.Cursor{CreatedAt: time.Now(), ID: uuid.New()}
	repo := &fakeRepository{
		listFn: func(ctx context.Context, params ListQuery) ([]models.Coupon, *pagination.Cursor, error) {
			return []models.Coupon{{ID: uuid.New()}}, &next, nil
		},
	}
	svc := newTestService(t, repo)

	items, cursor, err := svc.List(context.Background(), ListParams{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 coupon, got %d", len(items))
	}
	decoded, err := pagination.ParseCursor(cursor)
	if err != nil {
		t.Fatalf("invalid cursor %q: %v", cursor, err)
	}
	if decoded.ID != next.ID {
		t.Fatalf("expected cursor id %s, got %s", next.ID, decoded.ID)
	}
}

func TestService_DeleteNotFound(t *testing.T) {
	repo := &fakeRepository{
		deleteFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	svc := newTestService(t, repo)

	err := svc.Delete(context.Background(), uuid.New())
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

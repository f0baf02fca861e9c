package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/internal/categories"
	"github.com/shopyard/shopyard-backend/internal/coupons"
	"github.com/shopyard/shopyard-backend/internal/extras"
	"github.com/shopyard/shopyard-backend/internal/profitgrid"
	"github.com/shopyard/shopyard-backend/pkg/config"
	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
	"github.com/shopyard/shopyard-backend/pkg/logger"
)

type stubTierService struct{}

func (stubTierService) Calculate(ctx context.Context, amount decimal.Decimal, currency string) (*profitgrid.CalculationResult, error) {
	return &profitgrid.CalculationResult{
		GrossAmount:     decimal.RequireFromString("50"),
		DeductionAmount: decimal.RequireFromString("10"),
		NetAmount:       decimal.RequireFromString("40"),
		Currency:        enums.CurrencyUSD,
		TierID:          uuid.New(),
	}, nil
}

func (stubTierService) Create(ctx context.Context, input profitgrid.TierInput) (*models.ProfitGridTier, error) {
	return &models.ProfitGridTier{ID: uuid.New(), Status: enums.TierStatusActive}, nil
}

func (stubTierService) Update(ctx context.Context, id uuid.UUID, input profitgrid.TierInput) (*models.ProfitGridTier, error) {
	return &models.ProfitGridTier{ID: id, Status: enums.TierStatusActive}, nil
}

func (stubTierService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.TierStatus) (*models.ProfitGridTier, error) {
	return &models.ProfitGridTier{ID: id, Status: status}, nil
}

func (stubTierService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (stubTierService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	return len(ids), nil
}

func (stubTierService) List(ctx context.Context) ([]models.ProfitGridTier, error) { return nil, nil }

func (stubTierService) ListActive(ctx context.Context) ([]models.ProfitGridTier, error) {
	return nil, nil
}

func (stubTierService) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfitGridTier, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tier not found")
}

type stubCouponService struct{}

func (stubCouponService) Create(ctx context.Context, input coupons.CouponInput) (*models.Coupon, error) {
	return &models.Coupon{ID: uuid.New()}, nil
}

func (stubCouponService) Update(ctx context.Context, id uuid.UUID, input coupons.CouponInput) (*models.Coupon, error) {
	return &models.Coupon{ID: id}, nil
}

func (stubCouponService) Patch(ctx context.Context, id uuid.UUID, patch coupons.CouponPatch) (*models.Coupon, error) {
	return &models.Coupon{ID: id}, nil
}

func (stubCouponService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (stubCouponService) List(ctx context.Context, params coupons.ListParams) ([]models.Coupon, string, error) {
	return nil, "", nil
}

func (stubCouponService) ListShowing(ctx context.Context) ([]models.Coupon, error) { return nil, nil }

func (stubCouponService) GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	return &models.Coupon{ID: id}, nil
}

type stubExtraService struct{}

func (stubExtraService) Create(ctx context.Context, input extras.ExtraInput) (*models.Extra, error) {
	return &models.Extra{ID: uuid.New()}, nil
}

func (stubExtraService) Update(ctx context.Context, id uuid.UUID, input extras.ExtraInput) (*models.Extra, error) {
	return &models.Extra{ID: id}, nil
}

func (stubExtraService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Extra, error) {
	return &models.Extra{ID: id, Status: status}, nil
}

func (stubExtraService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (stubExtraService) List(ctx context.Context) ([]models.Extra, error) { return nil, nil }

func (stubExtraService) ListShowing(ctx context.Context) ([]models.Extra, error) { return nil, nil }

func (stubExtraService) GetByID(ctx context.Context, id uuid.UUID) (*models.Extra, error) {
	return &models.Extra{ID: id}, nil
}

type stubCategoryService struct{}

func (stubCategoryService) Create(ctx context.Context, input categories.CategoryInput) (*models.Category, error) {
	return &models.Category{ID: uuid.New()}, nil
}

func (stubCategoryService) Update(ctx context.Context, id uuid.UUID, input categories.CategoryInput) (*models.Category, error) {
	return &models.Category{ID: id}, nil
}

func (stubCategoryService) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CatalogStatus) (*models.Category, error) {
	return &models.Category{ID: id, Status: status}, nil
}

func (stubCategoryService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (stubCategoryService) List(ctx context.Context) ([]models.Category, error) { return nil, nil }

func (stubCategoryService) ListShowing(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (stubCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return &models.Category{ID: id}, nil
}

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewRouter(cfg, logg, nil, nil, nil, nil, stubTierService{}, stubCouponService{}, stubExtraService{}, stubCategoryService{})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env := rec.Header().Get("X-Shopyard-Env"); env != "test" {
		t.Fatalf("expected env header, got %q", env)
	}
}

func TestRouterCalculateRoute(t *testing.T) {
	router := newTestRouter()

	body := `{"amount": 500, "currency": "USD"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profitGrids/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			GrossAmount string `json:"gross_amount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !envelope.Status || envelope.Data.GrossAmount != "50.00" {
		t.Fatalf("unexpected envelope %s", rec.Body.String())
	}
}

func TestRouterTierDetailNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profitGrid/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouterDeleteManyRoute(t *testing.T) {
	router := newTestRouter()

	ids := uuid.NewString() + "," + uuid.NewString()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profitGrids/"+ids+"/many", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data struct {
			Deleted int `json:"deleted"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if envelope.Data.Deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", envelope.Data.Deleted)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

package profitgrid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
)

func setupTierTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Amount columns need numeric affinity so ORDER BY matches the postgres
	// numeric(12,2) ordering instead of sorting the values as strings.
	schema := `
CREATE TABLE IF NOT EXISTS profit_grid_tiers (
  id TEXT PRIMARY KEY,
  min_amount NUMERIC NOT NULL,
  max_amount NUMERIC NOT NULL,
  gross_rate NUMERIC NOT NULL,
  deduction_rate NUMERIC NOT NULL,
  net_rate NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedTier(t *testing.T, repo Repository, min, max string, status enums.TierStatus) models.ProfitGridTier {
	t.Helper()
	tier := models.ProfitGridTier{
		ID:            uuid.New(),
		MinAmount:     decimal.RequireFromString(min),
		MaxAmount:     decimal.RequireFromString(max),
		GrossRate:     decimal.RequireFromString("10"),
		DeductionRate: decimal.RequireFromString("2"),
		NetRate:       decimal.RequireFromString("8"),
		Status:        status,
	}
	require.NoError(t, repo.Create(context.Background(), &tier))
	return tier
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	created := seedTier(t, repo, "0", "500", enums.TierStatusActive)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.True(t, found.MinAmount.Equal(created.MinAmount))
	require.True(t, found.MaxAmount.Equal(created.MaxAmount))
	require.Equal(t, enums.TierStatusActive, found.Status)
}

func TestRepository_FindByIDMissing(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestRepository_ListOrdersByMinAmount(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	seedTier(t, repo, "1000", "5000", enums.TierStatusActive)
	seedTier(t, repo, "0", "500", enums.TierStatusInactive)
	seedTier(t, repo, "500", "1000", enums.TierStatusActive)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.True(t, all[0].MinAmount.LessThan(all[1].MinAmount))
	require.True(t, all[1].MinAmount.LessThan(all[2].MinAmount))
}

func TestRepository_ListActiveFiltersStatus(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	seedTier(t, repo, "0", "500", enums.TierStatusInactive)
	active := seedTier(t, repo, "500", "1000", enums.TierStatusActive)

	tiers, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	require.Equal(t, active.ID, tiers[0].ID)
}

func TestRepository_UpdateReplacesFields(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	tier := seedTier(t, repo, "0", "500", enums.TierStatusActive)
	tier.MaxAmount = decimal.RequireFromString("750")
	tier.Status = enums.TierStatusInactive
	require.NoError(t, repo.Update(context.Background(), &tier))

	found, err := repo.FindByID(context.Background(), tier.ID)
	require.NoError(t, err)
	require.True(t, found.MaxAmount.Equal(decimal.RequireFromString("750")))
	require.Equal(t, enums.TierStatusInactive, found.Status)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTierTestDB(t))

	tier := seedTier(t, repo, "0", "500", enums.TierStatusActive)

	found, err := repo.Delete(context.Background(), tier.ID)
	require.NoError(t, err)
	require.True(t, found)

	found, err = repo.Delete(context.Background(), tier.ID)
	require.NoError(t, err)
	require.False(t, found)
}

func TestRepository_WithTx(t *testing.T) {
	db := setupTierTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		scoped := repo.WithTx(tx)
		tier := models.ProfitGridTier{
			ID:            uuid.New(),
			MinAmount:     decimal.RequireFromString("0"),
			MaxAmount:     decimal.RequireFromString("100"),
			GrossRate:     decimal.RequireFromString("5"),
			DeductionRate: decimal.RequireFromString("1"),
			NetRate:       decimal.RequireFromString("4"),
			Status:        enums.TierStatusActive,
		}
		return scoped.Create(context.Background(), &tier)
	}))

	tiers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, 1)
}

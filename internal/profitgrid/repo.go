package profitgrid

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
)

// Repository handles profit grid tier persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tier *models.ProfitGridTier) error
	Update(ctx context.Context, tier *models.ProfitGridTier) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProfitGridTier, error)
	List(ctx context.Context) ([]models.ProfitGridTier, error)
	ListActive(ctx context.Context) ([]models.ProfitGridTier, error)
	ListActiveLocked(ctx context.Context) ([]models.ProfitGridTier, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a tier repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, tier *models.ProfitGridTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *repository) Update(ctx context.Context, tier *models.ProfitGridTier) error {
	return r.db.WithContext(ctx).Save(tier).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.ProfitGridTier{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProfitGridTier, error) {
	var tier models.ProfitGridTier
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

func (r *repository) List(ctx context.Context) ([]models.ProfitGridTier, error) {
	var tiers []models.ProfitGridTier
	if err := r.db.WithContext(ctx).
		Order("min_amount ASC, created_at ASC").
		Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.ProfitGridTier, error) {
	return r.listActive(ctx, false)
}

// ListActiveLocked reads the active set under FOR UPDATE. Callers must run it
// inside a transaction so the overlap check and the subsequent write observe
// and hold a single consistent snapshot.
func (r *repository) ListActiveLocked(ctx context.Context) ([]models.ProfitGridTier, error) {
	return r.listActive(ctx, true)
}

func (r *repository) listActive(ctx context.Context, locked bool) ([]models.ProfitGridTier, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", enums.TierStatusActive).
		Order("min_amount ASC")
	if locked {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var tiers []models.ProfitGridTier
	if err := query.Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

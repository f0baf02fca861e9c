package extras

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
)

// Repository handles extra persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, extra *models.Extra) error
	Update(ctx context.Context, extra *models.Extra) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Extra, error)
	List(ctx context.Context) ([]models.Extra, error)
	ListShowing(ctx context.Context) ([]models.Extra, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an extras repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, extra *models.Extra) error {
	return r.db.WithContext(ctx).Create(extra).Error
}

func (r *repository) Update(ctx context.Context, extra *models.Extra) error {
	return r.db.WithContext(ctx).Save(extra).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Extra{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Extra, error) {
	var extra models.Extra
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&extra).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &extra, nil
}

func (r *repository) List(ctx context.Context) ([]models.Extra, error) {
	var extras []models.Extra
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (r *repository) ListShowing(ctx context.Context) ([]models.Extra, error) {
	var extras []models.Extra
	if err := r.db.WithContext(ctx).
		Where("status = ?", enums.CatalogStatusShowing).
		Order("created_at DESC").
		Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

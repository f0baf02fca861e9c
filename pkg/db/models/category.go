package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopyard/shopyard-backend/pkg/enums"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// Category groups catalog products for storefront navigation.
type Category struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string              `gorm:"column:slug;not null;uniqueIndex"`
	Name      types.LocalizedText `gorm:"column:name;type:jsonb;not null"`
	SortOrder int                 `gorm:"column:sort_order;not null;default:0"`
	Status    enums.CatalogStatus `gorm:"column:status;not null;default:showing"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

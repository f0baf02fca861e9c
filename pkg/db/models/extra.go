package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/enums"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// Extra is an optional add-on item sold alongside catalog products.
type Extra struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      types.LocalizedText `gorm:"column:name;type:jsonb;not null"`
	Price     decimal.Decimal     `gorm:"column:price;type:numeric(12,2);not null"`
	Status    enums.CatalogStatus `gorm:"column:status;not null;default:showing"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Extra) TableName() string {
	return "extras"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/enums"
	"github.com/shopyard/shopyard-backend/pkg/types"
)

// Coupon is a redeemable discount code.
type Coupon struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string              `gorm:"column:code;not null;uniqueIndex"`
	Name        types.LocalizedText `gorm:"column:name;type:jsonb;not null"`
	Type        enums.CouponType    `gorm:"column:type;not null"`
	Amount      decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	MaxDiscount decimal.Decimal     `gorm:"column:max_discount;type:numeric(12,2);not null;default:0"`
	Categories  pq.StringArray      `gorm:"column:categories;type:text[];default:ARRAY[]::text[]"`
	ExpiresAt   *time.Time          `gorm:"column:expires_at"`
	Status      enums.CatalogStatus `gorm:"column:status;not null;default:showing"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// Expired reports whether the coupon's expiry has passed at the given time.
func (c Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/enums"
)

// ProfitGridTier is one configured amount range with its associated rates.
// The range is inclusive of MinAmount and exclusive of MaxAmount; active
// tiers must never overlap.
type ProfitGridTier struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MinAmount     decimal.Decimal  `gorm:"column:min_amount;type:numeric(12,2);not null"`
	MaxAmount     decimal.Decimal  `gorm:"column:max_amount;type:numeric(12,2);not null"`
	GrossRate     decimal.Decimal  `gorm:"column:gross_rate;type:numeric(5,2);not null"`
	DeductionRate decimal.Decimal  `gorm:"column:deduction_rate;type:numeric(5,2);not null"`
	NetRate       decimal.Decimal  `gorm:"column:net_rate;type:numeric(5,2);not null"`
	Status        enums.TierStatus `gorm:"column:status;not null;default:active"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProfitGridTier) TableName() string {
	return "profit_grid_tiers"
}

// Range returns the tier bounds as a [min, max) pair.
func (t ProfitGridTier) Range() (decimal.Decimal, decimal.Decimal) {
	return t.MinAmount, t.MaxAmount
}

// Contains reports whether amount falls within [MinAmount, MaxAmount).
func (t ProfitGridTier) Contains(amount decimal.Decimal) bool {
	return t.MinAmount.LessThanOrEqual(amount) && amount.LessThan(t.MaxAmount)
}

// Overlaps reports whether the two tiers' half-open ranges intersect.
func (t ProfitGridTier) Overlaps(other ProfitGridTier) bool {
	return t.MinAmount.LessThan(other.MaxAmount) && other.MinAmount.LessThan(t.MaxAmount)
}

package profitgrid

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	"github.com/shopyard/shopyard-backend/pkg/enums"
)

var hundred = decimal.NewFromInt(100)

// TierInput carries the fields of a tier candidate before validation.
// Pointer fields distinguish "absent" from "zero".
type TierInput struct {
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	GrossRate     *decimal.Decimal
	DeductionRate *decimal.Decimal
	NetRate       *decimal.Decimal
	Status        enums.TierStatus
}

// FieldError names a violated constraint on a single input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateTier checks structural and cross-tier invariants for a candidate
// tier. existingActiveTiers is the snapshot the overlap check runs against;
// excludeID skips the candidate's own stored row on update (pass uuid.Nil on
// create). On success the returned tier carries the normalized numeric
// fields; on failure the field-error list is non-empty.
//
// Pure over its inputs: no repository access happens here.
func ValidateTier(input TierInput, existingActiveTiers []models.ProfitGridTier, excludeID uuid.UUID) (models.ProfitGridTier, []FieldError) {
	var errs []FieldError

	requireNonNegative := func(field string, value *decimal.Decimal) *decimal.Decimal {
		if value == nil {
			errs = append(errs, FieldError{Field: field, Reason: "is required"})
			return nil
		}
		if value.IsNegative() {
			errs = append(errs, FieldError{Field: field, Reason: "must be non-negative"})
			return nil
		}
		return value
	}
	requireRate := func(field string, value *decimal.Decimal) *decimal.Decimal {
		value = requireNonNegative(field, value)
		if value == nil {
			return nil
		}
		if value.GreaterThan(hundred) {
			errs = append(errs, FieldError{Field: field, Reason: "must be between 0 and 100"})
			return nil
		}
		return value
	}

	minAmount := requireNonNegative("min_amount", input.MinAmount)
	maxAmount := requireNonNegative("max_amount", input.MaxAmount)
	grossRate := requireRate("gross_rate", input.GrossRate)
	deductionRate := requireRate("deduction_rate", input.DeductionRate)
	netRate := requireRate("net_rate", input.NetRate)

	status := input.Status
	if status == "" {
		status = enums.TierStatusActive
	}
	if !status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Reason: "must be active or inactive"})
	}

	if minAmount != nil && maxAmount != nil && minAmount.GreaterThanOrEqual(*maxAmount) {
		errs = append(errs, FieldError{Field: "max_amount", Reason: "must be greater than min_amount"})
	}

	if len(errs) > 0 {
		return models.ProfitGridTier{}, errs
	}

	normalized := models.ProfitGridTier{
		MinAmount:     minAmount.Round(2),
		MaxAmount:     maxAmount.Round(2),
		GrossRate:     grossRate.Round(2),
		DeductionRate: deductionRate.Round(2),
		NetRate:       netRate.Round(2),
		Status:        status,
	}

	// Inactive tiers may be stored overlapping; only active candidates are
	// checked against the active set.
	if normalized.Status == enums.TierStatusActive {
		for _, existing := range existingActiveTiers {
			if existing.ID == excludeID {
				continue
			}
			if normalized.Overlaps(existing) {
				errs = append(errs, FieldError{
					Field:  "min_amount",
					Reason: "range overlaps active tier " + existing.ID.String(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return models.ProfitGridTier{}, errs
	}
	return normalized, nil
}

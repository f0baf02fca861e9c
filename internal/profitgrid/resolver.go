package profitgrid

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
	pkgerrors "github.com/shopyard/shopyard-backend/pkg/errors"
)

// ResolveTier selects the single active tier whose [min_amount, max_amount)
// range contains amount. The lower bound is inclusive and the upper bound
// exclusive, so an amount equal to one tier's max_amount belongs to the next
// tier. The input order is not trusted; the resolver sorts a copy by
// min_amount before scanning.
//
// Zero matches yield a no-matching-tier error. Two or more matches mean the
// non-overlap invariant has been violated by a data-integrity bug; the
// resolver fails fast rather than picking one.
func ResolveTier(amount decimal.Decimal, activeTiers []models.ProfitGridTier) (*models.ProfitGridTier, error) {
	if amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidInput, "amount must be non-negative")
	}

	sorted := make([]models.ProfitGridTier, len(activeTiers))
	copy(sorted, activeTiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinAmount.LessThan(sorted[j].MinAmount)
	})

	var match *models.ProfitGridTier
	for i := range sorted {
		if !sorted[i].Contains(amount) {
			continue
		}
		if match != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInconsistentConfig, "multiple active tiers match the same amount").
				WithDetails(map[string]any{
					"amount": amount.StringFixed(2),
					"tier_a": match.ID.String(),
					"tier_b": sorted[i].ID.String(),
				})
		}
		match = &sorted[i]
	}

	if match == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNoMatchingTier, "no active tier covers the requested amount").
			WithDetails(map[string]any{"amount": amount.StringFixed(2)})
	}
	return match, nil
}

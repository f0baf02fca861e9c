package profitgrid

import (
	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
)

// Breakdown holds the monetary figures derived from one resolved tier.
type Breakdown struct {
	GrossAmount     decimal.Decimal
	DeductionAmount decimal.Decimal
	NetAmount       decimal.Decimal
}

// ComputeBreakdown applies the tier's rates to the basis amount. Gross and
// deduction are each rounded to two decimal places before the subtraction,
// so net is always exact given the rounded operands. Net is derived from
// gross minus deduction; the tier's stored net_rate is a reporting field and
// never enters the arithmetic.
//
// decimal.Round rounds half away from zero, which equals round-half-up for
// the non-negative operands used here.
func ComputeBreakdown(amount decimal.Decimal, tier models.ProfitGridTier) Breakdown {
	gross := amount.Mul(tier.GrossRate).Div(hundred).Round(2)
	deduction := amount.Mul(tier.DeductionRate).Div(hundred).Round(2)
	return Breakdown{
		GrossAmount:     gross,
		DeductionAmount: deduction,
		NetAmount:       gross.Sub(deduction),
	}
}

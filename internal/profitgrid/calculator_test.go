package profitgrid

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopyard/shopyard-backend/pkg/db/models"
)

func rateTier(gross, deduction string) models.ProfitGridTier {
	return models.ProfitGridTier{
		GrossRate:     decimal.RequireFromString(gross),
		DeductionRate: decimal.RequireFromString(deduction),
	}
}

func TestComputeBreakdown(t *testing.T) {
	cases := []struct {
		name          string
		amount        string
		gross         string
		deduction     string
		wantGross     string
		wantDeduction string
		wantNet       string
	}{
		{"mid tier", "500", "10", "2", "50.00", "10.00", "40.00"},
		{"upper tier", "1000", "8", "1.5", "80.00", "15.00", "65.00"},
		{"fractional amount", "333.33", "10", "2", "33.33", "6.67", "26.66"},
		{"rounding half up", "101", "0.5", "0.5", "0.51", "0.51", "0.00"},
		{"zero rates", "500", "0", "0", "0.00", "0.00", "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBreakdown(decimal.RequireFromString(tc.amount), rateTier(tc.gross, tc.deduction))
			if got.GrossAmount.StringFixed(2) != tc.wantGross {
				t.Errorf("gross = %s, want %s", got.GrossAmount.StringFixed(2), tc.wantGross)
			}
			if got.DeductionAmount.StringFixed(2) != tc.wantDeduction {
				t.Errorf("deduction = %s, want %s", got.DeductionAmount.StringFixed(2), tc.wantDeduction)
			}
			if got.NetAmount.StringFixed(2) != tc.wantNet {
				t.Errorf("net = %s, want %s", got.NetAmount.StringFixed(2), tc.wantNet)
			}
		})
	}
}

func TestComputeBreakdown_NetDerivedFromRoundedParts(t *testing.T) {
	// Each leg rounds before the subtraction, so net equals the difference of
	// the reported figures even when the raw products do not round cleanly.
	got := ComputeBreakdown(decimal.RequireFromString("123.45"), rateTier("7.77", "3.33"))
	want := got.GrossAmount.Sub(got.DeductionAmount)
	if !got.NetAmount.Equal(want) {
		t.Fatalf("net = %s, want gross-deduction = %s", got.NetAmount, want)
	}
}

package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

// Depreciation computes the annual AfA amount. Only the building share of
// the purchase price is depreciable, never the land.
func Depreciation(price, buildingSharePct float64, class DepreciationClass) (float64, error) {
	rate, err := class.Rate()
	if err != nil {
		return 0, err
	}
	buildingValue := price * buildingSharePct / 100
	return utils.Round2(buildingValue * rate / 100), nil
}

// TaxDeductibility computes the tax effect of one rental year at the
// investor's marginal rate. Interest passes through fully deductible.
// A rental loss yields a positive TaxEffect (a refund), a profit a negative
// one (added tax burden).
func TaxDeductibility(in TaxInputs) (TaxResult, error) {
	depreciation, err := Depreciation(in.PurchasePrice, in.BuildingSharePct, in.Class)
	if err != nil {
		return TaxResult{}, err
	}

	deductibleInterest := in.AnnualInterest
	deductibleExpenses := depreciation + deductibleInterest + in.NonRecoverableCosts + in.OtherDeductibles
	taxableResult := in.AnnualRentalIncome - deductibleExpenses

	taxEffect := -(taxableResult * in.MarginalTaxRatePct / 100)

	return TaxResult{
		Depreciation:       depreciation,
		DeductibleInterest: utils.Round2(deductibleInterest),
		DeductibleExpenses: utils.Round2(deductibleExpenses),
		TaxableResult:      utils.Round2(taxableResult),
		TaxEffect:          utils.Round2(taxEffect),
		MonthlyTaxEffect:   utils.Round2(taxEffect / 12),
	}, nil
}

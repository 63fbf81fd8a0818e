package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

// ReturnRatios derives the yield and return percentages of the investment.
// Every ratio degrades to 0% when its denominator is not positive; the
// reporting side prefers a 0% figure over an error.
func ReturnRatios(price, closingCosts, equity, grossRent, netRent, postTaxCF float64) ReturnRatioResult {
	totalInvestment := price + closingCosts

	grossYield := utils.SafeRatio(grossRent, price)
	netYield := utils.SafeRatio(netRent, totalInvestment)
	equityReturn := utils.SafeRatio(postTaxCF, equity)
	cashFlowReturn := utils.SafeRatio(postTaxCF, totalInvestment)

	return ReturnRatioResult{
		GrossYieldPct:     utils.Round2(grossYield),
		NetYieldPct:       utils.Round2(netYield),
		EquityReturnPct:   utils.Round2(equityReturn),
		AssetReturnPct:    utils.Round2(netYield),
		CashFlowReturnPct: utils.Round2(cashFlowReturn),
	}
}

// EffectiveAfterTaxYield discounts a gross yield by the investor's marginal
// tax rate.
func EffectiveAfterTaxYield(grossYieldPct, marginalRatePct float64) float64 {
	return utils.Round2(grossYieldPct * (1 - marginalRatePct/100))
}

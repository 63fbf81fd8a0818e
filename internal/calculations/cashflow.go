package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

// CashFlow combines rental income, loan service and the monthly tax effect
// into annual pre-tax and post-tax cash flow. The vacancy allowance is a
// percentage of gross rent reserved for vacancy and non-payment risk.
func CashFlow(monthlyRent, monthlyNonRecoverable, vacancyPct, monthlyPayment, monthlyTaxEffect float64) CashFlowResult {
	grossRent := monthlyRent * 12
	vacancy := grossRent * vacancyPct / 100
	netRent := grossRent - vacancy - monthlyNonRecoverable*12

	annualPayment := monthlyPayment * 12
	preTax := netRent - annualPayment
	postTax := preTax + monthlyTaxEffect*12

	return CashFlowResult{
		GrossRent:     utils.Round2(grossRent),
		NetRent:       utils.Round2(netRent),
		PreTaxCF:      utils.Round2(preTax),
		PostTaxCF:     utils.Round2(postTax),
		AnnualPayment: utils.Round2(annualPayment),
	}
}

package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

// WealthProjection projects property value, remaining debt, net equity and
// cumulative cash flow over the years of the amortization schedule. The
// property value compounds once per row, so the first row already reflects
// one year of appreciation. The annual post-tax cash flow is held constant
// across all years; the legacy engine does not recompute it as the loan
// balance shrinks.
//
// An empty schedule yields an empty projection.
func WealthProjection(equity float64, schedule []AmortizationRow, annualCashFlow, appreciationPct, price float64) []WealthRow {
	if len(schedule) == 0 {
		return []WealthRow{}
	}

	propertyValue := price
	if price <= 0 {
		// Reconstruct the original principal from the first schedule row.
		principal := schedule[0].RemainingBalance + schedule[0].PrincipalPortion
		propertyValue = principal + equity
	}

	rows := make([]WealthRow, 0, len(schedule))
	cumCashFlow := 0.0

	for _, entry := range schedule {
		propertyValue *= 1 + appreciationPct/100
		cumCashFlow = utils.Round2(cumCashFlow + annualCashFlow)

		netEquity := utils.Round2(propertyValue - entry.RemainingBalance)

		rows = append(rows, WealthRow{
			Year:               entry.Year,
			PropertyValue:      utils.Round2(propertyValue),
			RemainingDebt:      entry.RemainingBalance,
			NetEquity:          netEquity,
			CumulativeCashFlow: cumCashFlow,
			TotalWealth:        utils.Round2(netEquity + cumCashFlow),
		})
	}

	return rows
}

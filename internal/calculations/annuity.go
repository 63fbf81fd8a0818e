package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

// AnnuityFinancing computes the financing summary for a German fixed-annuity
// loan. The annual payment is the flat sum of interest and initial
// amortization rate applied to the principal and stays constant over the
// whole term; only the interest/principal split shifts year by year.
func AnnuityFinancing(principal, ratePct, amortizationPct float64, termYears int) FinancingSummary {
	annuityPct := ratePct + amortizationPct
	annualPayment := principal * annuityPct / 100
	monthlyPayment := annualPayment / 12

	totalCost := annualPayment * float64(termYears)
	totalInterest := totalCost - principal
	if totalCost < principal {
		totalCost = principal
	}
	if totalInterest < 0 {
		totalInterest = 0
	}

	return FinancingSummary{
		Principal:      utils.Round2(principal),
		MonthlyPayment: utils.Round2(monthlyPayment),
		AnnualPayment:  utils.Round2(annualPayment),
		TotalCost:      utils.Round2(totalCost),
		TotalInterest:  utils.Round2(totalInterest),
	}
}

// AmortizationSchedule produces the year-by-year amortization schedule for
// the flat annuity. The schedule stops early once the balance reaches 0.
//
// The principal portion is min(annuity − interest, balance). When the
// configured amortization rate is too low relative to the interest on the
// current balance the portion goes negative and the balance grows; that
// matches the legacy engine and is deliberately left unclamped.
func AmortizationSchedule(principal, ratePct, amortizationPct float64, termYears int) []AmortizationRow {
	annualPayment := principal * (ratePct + amortizationPct) / 100

	schedule := make([]AmortizationRow, 0, termYears)
	balance := principal
	cumInterest := 0.0
	cumPrincipal := 0.0

	for year := 1; year <= termYears; year++ {
		if balance <= 0 {
			break
		}

		interest := utils.Round2(balance * ratePct / 100)
		principalPortion := annualPayment - interest
		if principalPortion > balance {
			principalPortion = balance
		}
		principalPortion = utils.Round2(principalPortion)

		balance = utils.Round2(balance - principalPortion)
		if balance < 0 {
			balance = 0
		}

		cumInterest = utils.Round2(cumInterest + interest)
		cumPrincipal = utils.Round2(cumPrincipal + principalPortion)

		schedule = append(schedule, AmortizationRow{
			Year:                year,
			InterestPortion:     interest,
			PrincipalPortion:    principalPortion,
			RemainingBalance:    balance,
			CumulativeInterest:  cumInterest,
			CumulativePrincipal: cumPrincipal,
		})
	}

	return schedule
}

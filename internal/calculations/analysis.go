package calculations

// PropertyAnalysis runs the full pipeline for one property: closing costs
// and financing first, then the schedule feeding the tax calculation, cash
// flow, return ratios and the wealth projection. This is the recompute the
// driving application performs on every input change.
//
// Interest falls over the term, so the tax result that drives the cash flow
// uses the schedule-average interest; TaxFirstYear carries the year-1
// variant for the detail view.
func PropertyAnalysis(in AnalysisInput) (*AnalysisResult, error) {
	closing, err := ClosingCosts(in.PurchasePrice, in.State, in.WithBroker, in.BrokerPct)
	if err != nil {
		return nil, err
	}

	principal := in.PurchasePrice + closing.Total - in.Equity
	financing := AnnuityFinancing(principal, in.InterestRatePct, in.AmortizationRatePct, in.TermYears)
	schedule := AmortizationSchedule(principal, in.InterestRatePct, in.AmortizationRatePct, in.TermYears)

	meanInterest := 0.0
	firstYearInterest := 0.0
	if len(schedule) > 0 {
		sum := 0.0
		for _, row := range schedule {
			sum += row.InterestPortion
		}
		meanInterest = sum / float64(len(schedule))
		firstYearInterest = schedule[0].InterestPortion
	}

	taxInputs := TaxInputs{
		PurchasePrice:       in.PurchasePrice,
		BuildingSharePct:    in.BuildingSharePct,
		Class:               in.Class,
		AnnualInterest:      meanInterest,
		AnnualRentalIncome:  in.MonthlyRent * 12,
		NonRecoverableCosts: in.MonthlyNonRecoverable * 12,
		MarginalTaxRatePct:  in.MarginalTaxRatePct,
		OtherDeductibles:    in.OtherDeductibles,
	}
	tax, err := TaxDeductibility(taxInputs)
	if err != nil {
		return nil, err
	}

	firstYearInputs := taxInputs
	firstYearInputs.AnnualInterest = firstYearInterest
	taxFirstYear, err := TaxDeductibility(firstYearInputs)
	if err != nil {
		return nil, err
	}

	cashFlow := CashFlow(in.MonthlyRent, in.MonthlyNonRecoverable, in.VacancyPct,
		financing.MonthlyPayment, tax.MonthlyTaxEffect)

	returns := ReturnRatios(in.PurchasePrice, closing.Total, in.Equity,
		cashFlow.GrossRent, cashFlow.NetRent, cashFlow.PostTaxCF)

	wealth := WealthProjection(in.Equity, schedule, cashFlow.PostTaxCF,
		in.AppreciationPct, in.PurchasePrice)

	return &AnalysisResult{
		ClosingCosts: closing,
		Financing:    financing,
		Schedule:     schedule,
		Tax:          tax,
		TaxFirstYear: taxFirstYear,
		CashFlow:     cashFlow,
		Returns:      returns,
		Wealth:       wealth,
	}, nil
}

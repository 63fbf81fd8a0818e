package calculations

// ClosingCostResult breaks down the one-time acquisition costs of a purchase.
type ClosingCostResult struct {
	TransferTax        float64 `json:"transfer_tax"`
	TransferTaxPercent float64 `json:"transfer_tax_percent"`
	NotaryAndRegistry  float64 `json:"notary_and_registry"`
	Broker             float64 `json:"broker"`
	Total              float64 `json:"total"`
	TotalPercent       float64 `json:"total_percent"`
}

// FinancingSummary is the result of the flat-annuity financing calculation.
type FinancingSummary struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	AnnualPayment  float64 `json:"annual_payment"`
	TotalCost      float64 `json:"total_cost"`
	TotalInterest  float64 `json:"total_interest"`
}

// AmortizationRow is one year of the amortization schedule.
type AmortizationRow struct {
	Year                int     `json:"year"`
	InterestPortion     float64 `json:"interest_portion"`
	PrincipalPortion    float64 `json:"principal_portion"`
	RemainingBalance    float64 `json:"remaining_balance"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// TaxInputs are the inputs to the deductibility calculation. Interest, rent
// and non-recoverable costs are annual figures.
type TaxInputs struct {
	PurchasePrice       float64           `json:"purchase_price"`
	BuildingSharePct    float64           `json:"building_share_percent"`
	Class               DepreciationClass `json:"depreciation_class"`
	AnnualInterest      float64           `json:"annual_interest"`
	AnnualRentalIncome  float64           `json:"annual_rental_income"`
	NonRecoverableCosts float64           `json:"non_recoverable_costs"`
	MarginalTaxRatePct  float64           `json:"marginal_tax_rate_percent"`
	OtherDeductibles    float64           `json:"other_deductibles,omitempty"`
}

// TaxResult holds the tax effect of a rental year. A negative taxable result
// (a rental loss) turns into a positive TaxEffect, a profit into a negative
// one representing added tax burden.
type TaxResult struct {
	Depreciation       float64 `json:"depreciation"`
	DeductibleInterest float64 `json:"deductible_interest"`
	DeductibleExpenses float64 `json:"deductible_expenses"`
	TaxableResult      float64 `json:"taxable_result"`
	TaxEffect          float64 `json:"tax_effect"`
	MonthlyTaxEffect   float64 `json:"monthly_tax_effect"`
}

// CashFlowResult holds the annual cash-flow figures.
type CashFlowResult struct {
	GrossRent     float64 `json:"gross_rent"`
	NetRent       float64 `json:"net_rent"`
	PreTaxCF      float64 `json:"pre_tax_cash_flow"`
	PostTaxCF     float64 `json:"post_tax_cash_flow"`
	AnnualPayment float64 `json:"annual_payment"`
}

// ReturnRatioResult holds the yield and return percentages. AssetReturn is
// the net yield under another name, kept for parity with the reporting side.
type ReturnRatioResult struct {
	GrossYieldPct     float64 `json:"gross_yield_percent"`
	NetYieldPct       float64 `json:"net_yield_percent"`
	EquityReturnPct   float64 `json:"equity_return_percent"`
	AssetReturnPct    float64 `json:"asset_return_percent"`
	CashFlowReturnPct float64 `json:"cash_flow_return_percent"`
}

// WealthRow is one year of the wealth projection.
type WealthRow struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"property_value"`
	RemainingDebt      float64 `json:"remaining_debt"`
	NetEquity          float64 `json:"net_equity"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	TotalWealth        float64 `json:"total_wealth"`
}

// AnalysisInput drives the full property analysis pipeline.
type AnalysisInput struct {
	PurchasePrice         float64           `json:"purchase_price"`
	State                 State             `json:"state"`
	WithBroker            bool              `json:"with_broker"`
	BrokerPct             float64           `json:"broker_percent"`
	Equity                float64           `json:"equity"`
	InterestRatePct       float64           `json:"interest_rate_percent"`
	AmortizationRatePct   float64           `json:"amortization_rate_percent"`
	TermYears             int               `json:"term_years"`
	MonthlyRent           float64           `json:"monthly_rent"`
	MonthlyNonRecoverable float64           `json:"monthly_non_recoverable"`
	VacancyPct            float64           `json:"vacancy_percent"`
	BuildingSharePct      float64           `json:"building_share_percent"`
	Class                 DepreciationClass `json:"depreciation_class"`
	MarginalTaxRatePct    float64           `json:"marginal_tax_rate_percent"`
	OtherDeductibles      float64           `json:"other_deductibles,omitempty"`
	AppreciationPct       float64           `json:"appreciation_percent"`
}

// AnalysisResult is the combined output of one full pipeline run.
type AnalysisResult struct {
	ClosingCosts ClosingCostResult `json:"closing_costs"`
	Financing    FinancingSummary  `json:"financing"`
	Schedule     []AmortizationRow `json:"schedule"`
	Tax          TaxResult         `json:"tax"`
	TaxFirstYear TaxResult         `json:"tax_first_year"`
	CashFlow     CashFlowResult    `json:"cash_flow"`
	Returns      ReturnRatioResult `json:"returns"`
	Wealth       []WealthRow       `json:"wealth"`
}

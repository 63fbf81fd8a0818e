package tools

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rexologue/immo-engine/internal/calculations"
	"github.com/rexologue/immo-engine/internal/config"
	"github.com/rexologue/immo-engine/internal/metrics"
	"github.com/rexologue/immo-engine/internal/validators"
)

// ToolHandler is one calculator exposed to the transport layer.
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

func floatParam(params map[string]interface{}, name string) (float64, error) {
	value, ok := params[name].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid parameter: %s", name)
	}
	return value, nil
}

func optionalFloatParam(params map[string]interface{}, name string, defaultValue float64) float64 {
	if value, ok := params[name].(float64); ok {
		return value
	}
	return defaultValue
}

func intParam(params map[string]interface{}, name string) (int, error) {
	// JSON numbers arrive as float64.
	value, ok := params[name].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid parameter: %s", name)
	}
	return int(value), nil
}

func boolParam(params map[string]interface{}, name string) (bool, error) {
	value, ok := params[name].(bool)
	if !ok {
		return false, fmt.Errorf("invalid parameter: %s", name)
	}
	return value, nil
}

func stringParam(params map[string]interface{}, name string) (string, error) {
	value, ok := params[name].(string)
	if !ok {
		return "", fmt.Errorf("invalid parameter: %s", name)
	}
	return value, nil
}

func failValidation(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
	return fmt.Errorf("invalid parameters: %w", err)
}

func failCalculation(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
	return fmt.Errorf("calculation failed: %w", err)
}

func succeed(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "success").Inc()
}

// PurchaseClosingCostsHandler computes the one-time acquisition costs.
func PurchaseClosingCostsHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "purchase_closing_costs"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		price, err := floatParam(params, "purchase_price")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		state, err := stringParam(params, "state")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		withBroker, err := boolParam(params, "with_broker")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		brokerPct := optionalFloatParam(params, "broker_percent", calculations.DefaultBrokerPct)

		span.SetAttributes(
			attribute.Float64("purchase_price", price),
			attribute.String("state", state),
			attribute.Bool("with_broker", withBroker),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrice(cfg, price); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("broker_percent", brokerPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result, err := calculations.ClosingCosts(price, calculations.State(state), withBroker, brokerPct)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(attribute.Float64("total", result.Total))
		succeed(span, toolName)
		return result, nil
	}
}

// LoanAnnuitySummaryHandler computes the financing summary for a flat annuity.
func LoanAnnuitySummaryHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_annuity_summary"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		ratePct, err := floatParam(params, "interest_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		amortizationPct, err := floatParam(params, "amortization_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		termYears, err := intParam(params, "term_years")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("interest_rate_percent", ratePct),
			attribute.Float64("amortization_rate_percent", amortizationPct),
			attribute.Int("term_years", termYears),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "interest_rate_percent", ratePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "amortization_rate_percent", amortizationPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckTermYears(cfg, termYears); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result := calculations.AnnuityFinancing(principal, ratePct, amortizationPct, termYears)

		span.SetAttributes(
			attribute.Float64("annual_payment", result.AnnualPayment),
			attribute.Float64("total_cost", result.TotalCost),
		)
		succeed(span, toolName)
		return result, nil
	}
}

// LoanAmortizationScheduleHandler computes the year-by-year schedule.
func LoanAmortizationScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_amortization_schedule"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		ratePct, err := floatParam(params, "interest_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		amortizationPct, err := floatParam(params, "amortization_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		termYears, err := intParam(params, "term_years")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("interest_rate_percent", ratePct),
			attribute.Float64("amortization_rate_percent", amortizationPct),
			attribute.Int("term_years", termYears),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "interest_rate_percent", ratePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "amortization_rate_percent", amortizationPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckTermYears(cfg, termYears); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		schedule := calculations.AmortizationSchedule(principal, ratePct, amortizationPct, termYears)

		span.SetAttributes(attribute.Int("schedule_years", len(schedule)))
		succeed(span, toolName)
		return schedule, nil
	}
}

// TaxDeductibilityHandler computes the depreciation and tax effect.
func TaxDeductibilityHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "tax_deductibility"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		price, err := floatParam(params, "purchase_price")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		buildingSharePct, err := floatParam(params, "building_share_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		class, err := stringParam(params, "depreciation_class")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		annualInterest, err := floatParam(params, "annual_interest")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		annualRent, err := floatParam(params, "annual_rental_income")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		nonRecoverable, err := floatParam(params, "non_recoverable_costs")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		marginalRatePct, err := floatParam(params, "marginal_tax_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		otherDeductibles := optionalFloatParam(params, "other_deductibles", 0.0)

		span.SetAttributes(
			attribute.Float64("purchase_price", price),
			attribute.Float64("building_share_percent", buildingSharePct),
			attribute.String("depreciation_class", class),
			attribute.Float64("marginal_tax_rate_percent", marginalRatePct),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrice(cfg, price); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("building_share_percent", buildingSharePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("marginal_tax_rate_percent", marginalRatePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result, err := calculations.TaxDeductibility(calculations.TaxInputs{
			PurchasePrice:       price,
			BuildingSharePct:    buildingSharePct,
			Class:               calculations.DepreciationClass(class),
			AnnualInterest:      annualInterest,
			AnnualRentalIncome:  annualRent,
			NonRecoverableCosts: nonRecoverable,
			MarginalTaxRatePct:  marginalRatePct,
			OtherDeductibles:    otherDeductibles,
		})
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("depreciation", result.Depreciation),
			attribute.Float64("tax_effect", result.TaxEffect),
		)
		succeed(span, toolName)
		return result, nil
	}
}

// CashFlowHandler computes the annual cash flow.
func CashFlowHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "cash_flow"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		monthlyRent, err := floatParam(params, "monthly_rent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		monthlyNonRecoverable, err := floatParam(params, "monthly_non_recoverable")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		vacancyPct, err := floatParam(params, "vacancy_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		monthlyPayment, err := floatParam(params, "monthly_payment")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		monthlyTaxEffect := optionalFloatParam(params, "monthly_tax_effect", 0.0)

		span.SetAttributes(
			attribute.Float64("monthly_rent", monthlyRent),
			attribute.Float64("vacancy_percent", vacancyPct),
			attribute.Float64("monthly_payment", monthlyPayment),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckMonthlyAmount(cfg, "monthly_rent", monthlyRent); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckMonthlyAmount(cfg, "monthly_non_recoverable", monthlyNonRecoverable); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("vacancy_percent", vacancyPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result := calculations.CashFlow(monthlyRent, monthlyNonRecoverable, vacancyPct,
			monthlyPayment, monthlyTaxEffect)

		span.SetAttributes(attribute.Float64("post_tax_cash_flow", result.PostTaxCF))
		succeed(span, toolName)
		return result, nil
	}
}

// ReturnRatiosHandler computes the yield and return percentages.
func ReturnRatiosHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "return_ratios"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		price, err := floatParam(params, "purchase_price")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		closingCosts, err := floatParam(params, "closing_costs")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		equity, err := floatParam(params, "equity")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		grossRent, err := floatParam(params, "gross_rent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		netRent, err := floatParam(params, "net_rent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		postTaxCF, err := floatParam(params, "post_tax_cash_flow")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("purchase_price", price),
			attribute.Float64("equity", equity),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		// No range validation here: the ratio calculators degrade to 0%
		// on degenerate denominators by contract.
		result := calculations.ReturnRatios(price, closingCosts, equity, grossRent, netRent, postTaxCF)

		span.SetAttributes(attribute.Float64("net_yield_percent", result.NetYieldPct))
		succeed(span, toolName)
		return result, nil
	}
}

// WealthProjectionHandler projects wealth accumulation over the loan term.
func WealthProjectionHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "wealth_projection"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		ratePct, err := floatParam(params, "interest_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		amortizationPct, err := floatParam(params, "amortization_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		termYears, err := intParam(params, "term_years")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		equity, err := floatParam(params, "equity")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		annualCashFlow, err := floatParam(params, "annual_cash_flow")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		appreciationPct := optionalFloatParam(params, "appreciation_percent", 1.0)
		price := optionalFloatParam(params, "purchase_price", 0.0)

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Int("term_years", termYears),
			attribute.Float64("appreciation_percent", appreciationPct),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "interest_rate_percent", ratePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "amortization_rate_percent", amortizationPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckTermYears(cfg, termYears); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckEquity(cfg, equity); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		schedule := calculations.AmortizationSchedule(principal, ratePct, amortizationPct, termYears)
		rows := calculations.WealthProjection(equity, schedule, annualCashFlow, appreciationPct, price)

		span.SetAttributes(attribute.Int("projection_years", len(rows)))
		succeed(span, toolName)
		return rows, nil
	}
}

// EffectiveAfterTaxYieldHandler discounts a gross yield by the marginal rate.
func EffectiveAfterTaxYieldHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "effective_after_tax_yield"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		grossYieldPct, err := floatParam(params, "gross_yield_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		marginalRatePct, err := floatParam(params, "marginal_tax_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("gross_yield_percent", grossYieldPct),
			attribute.Float64("marginal_tax_rate_percent", marginalRatePct),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckRate(cfg, "gross_yield_percent", grossYieldPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("marginal_tax_rate_percent", marginalRatePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result := map[string]float64{
			"effective_yield_percent": calculations.EffectiveAfterTaxYield(grossYieldPct, marginalRatePct),
		}

		succeed(span, toolName)
		return result, nil
	}
}

// PropertyAnalysisHandler runs the full pipeline for one property.
func PropertyAnalysisHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "property_analysis"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		price, err := floatParam(params, "purchase_price")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		state, err := stringParam(params, "state")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		withBroker, err := boolParam(params, "with_broker")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		equity, err := floatParam(params, "equity")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		ratePct, err := floatParam(params, "interest_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		amortizationPct, err := floatParam(params, "amortization_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		termYears, err := intParam(params, "term_years")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		monthlyRent, err := floatParam(params, "monthly_rent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		monthlyNonRecoverable, err := floatParam(params, "monthly_non_recoverable")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		vacancyPct, err := floatParam(params, "vacancy_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		buildingSharePct, err := floatParam(params, "building_share_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		class, err := stringParam(params, "depreciation_class")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		marginalRatePct, err := floatParam(params, "marginal_tax_rate_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		brokerPct := optionalFloatParam(params, "broker_percent", calculations.DefaultBrokerPct)
		otherDeductibles := optionalFloatParam(params, "other_deductibles", 0.0)
		appreciationPct := optionalFloatParam(params, "appreciation_percent", 1.0)

		span.SetAttributes(
			attribute.Float64("purchase_price", price),
			attribute.String("state", state),
			attribute.Int("term_years", termYears),
		)

		metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

		if err := validators.CheckPrice(cfg, price); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckEquity(cfg, equity); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "interest_rate_percent", ratePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, "amortization_rate_percent", amortizationPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckTermYears(cfg, termYears); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckMonthlyAmount(cfg, "monthly_rent", monthlyRent); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckMonthlyAmount(cfg, "monthly_non_recoverable", monthlyNonRecoverable); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("vacancy_percent", vacancyPct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("building_share_percent", buildingSharePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckPercentShare("marginal_tax_rate_percent", marginalRatePct); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		result, err := calculations.PropertyAnalysis(calculations.AnalysisInput{
			PurchasePrice:         price,
			State:                 calculations.State(state),
			WithBroker:            withBroker,
			BrokerPct:             brokerPct,
			Equity:                equity,
			InterestRatePct:       ratePct,
			AmortizationRatePct:   amortizationPct,
			TermYears:             termYears,
			MonthlyRent:           monthlyRent,
			MonthlyNonRecoverable: monthlyNonRecoverable,
			VacancyPct:            vacancyPct,
			BuildingSharePct:      buildingSharePct,
			Class:                 calculations.DepreciationClass(class),
			MarginalTaxRatePct:    marginalRatePct,
			OtherDeductibles:      otherDeductibles,
			AppreciationPct:       appreciationPct,
		})
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("post_tax_cash_flow", result.CashFlow.PostTaxCF),
			attribute.Float64("net_yield_percent", result.Returns.NetYieldPct),
		)
		succeed(span, toolName)
		return result, nil
	}
}

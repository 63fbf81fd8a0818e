package tools

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/rexologue/immo-engine/internal/calculations"
	"github.com/rexologue/immo-engine/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	return cfg
}

func TestLoanAnnuitySummaryHandler(t *testing.T) {
	cfg := testConfig(t)
	handler := LoanAnnuitySummaryHandler(cfg, otel.Tracer("test"))

	t.Run("success", func(t *testing.T) {
		result, err := handler(context.Background(), map[string]interface{}{
			"principal":                 240000.0,
			"interest_rate_percent":     3.5,
			"amortization_rate_percent": 2.0,
			"term_years":                30.0,
		})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}

		summary, ok := result.(calculations.FinancingSummary)
		if !ok {
			t.Fatalf("unexpected result type %T", result)
		}
		if summary.AnnualPayment != 13200 {
			t.Errorf("expected annual payment 13200, got %f", summary.AnnualPayment)
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := handler(context.Background(), map[string]interface{}{
			"interest_rate_percent":     3.5,
			"amortization_rate_percent": 2.0,
			"term_years":                30.0,
		})
		if err == nil {
			t.Error("expected error for missing principal")
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := handler(context.Background(), map[string]interface{}{
			"principal":                 0.0,
			"interest_rate_percent":     3.5,
			"amortization_rate_percent": 2.0,
			"term_years":                30.0,
		})
		if err == nil {
			t.Error("expected validation error for zero principal")
		}
	})
}

func TestLoanAmortizationScheduleHandler(t *testing.T) {
	cfg := testConfig(t)
	handler := LoanAmortizationScheduleHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), map[string]interface{}{
		"principal":                 240000.0,
		"interest_rate_percent":     3.5,
		"amortization_rate_percent": 2.0,
		"term_years":                30.0,
	})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	schedule, ok := result.([]calculations.AmortizationRow)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(schedule) != 30 {
		t.Errorf("expected 30 rows, got %d", len(schedule))
	}
	if schedule[0].InterestPortion != 8400 {
		t.Errorf("expected year-1 interest 8400, got %f", schedule[0].InterestPortion)
	}
}

func TestPurchaseClosingCostsHandler(t *testing.T) {
	cfg := testConfig(t)
	handler := PurchaseClosingCostsHandler(cfg, otel.Tracer("test"))

	t.Run("broker percentage defaults", func(t *testing.T) {
		result, err := handler(context.Background(), map[string]interface{}{
			"purchase_price": 300000.0,
			"state":          "bayern",
			"with_broker":    true,
		})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}

		breakdown, ok := result.(calculations.ClosingCostResult)
		if !ok {
			t.Fatalf("unexpected result type %T", result)
		}
		if breakdown.Broker != 10710 {
			t.Errorf("expected default broker commission 10710, got %f", breakdown.Broker)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := handler(context.Background(), map[string]interface{}{
			"purchase_price": 300000.0,
			"state":          "atlantis",
			"with_broker":    false,
		})
		if err == nil {
			t.Error("expected error for unknown state")
		}
	})
}

func TestEffectiveAfterTaxYieldHandler(t *testing.T) {
	cfg := testConfig(t)
	handler := EffectiveAfterTaxYieldHandler(cfg, otel.Tracer("test"))

	t.Run("success", func(t *testing.T) {
		result, err := handler(context.Background(), map[string]interface{}{
			"gross_yield_percent":       4.0,
			"marginal_tax_rate_percent": 42.0,
		})
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}

		yield, ok := result.(map[string]float64)
		if !ok {
			t.Fatalf("unexpected result type %T", result)
		}
		if yield["effective_yield_percent"] != 2.32 {
			t.Errorf("expected effective yield 2.32, got %f", yield["effective_yield_percent"])
		}
	})

	t.Run("marginal rate above 100", func(t *testing.T) {
		_, err := handler(context.Background(), map[string]interface{}{
			"gross_yield_percent":       4.0,
			"marginal_tax_rate_percent": 101.0,
		})
		if err == nil {
			t.Error("expected validation error for marginal rate above 100")
		}
	})
}

func TestPropertyAnalysisHandler(t *testing.T) {
	cfg := testConfig(t)
	handler := PropertyAnalysisHandler(cfg, otel.Tracer("test"))

	result, err := handler(context.Background(), map[string]interface{}{
		"purchase_price":            300000.0,
		"state":                     "bayern",
		"with_broker":               false,
		"equity":                    50000.0,
		"interest_rate_percent":     3.5,
		"amortization_rate_percent": 2.0,
		"term_years":                30.0,
		"monthly_rent":              1000.0,
		"monthly_non_recoverable":   100.0,
		"vacancy_percent":           2.0,
		"building_share_percent":    80.0,
		"depreciation_class":        "altbau_ab_1925",
		"marginal_tax_rate_percent": 42.0,
	})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	analysis, ok := result.(*calculations.AnalysisResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(analysis.Schedule) == 0 {
		t.Error("expected a non-empty schedule")
	}
	if len(analysis.Wealth) != len(analysis.Schedule) {
		t.Error("wealth projection must span the schedule")
	}
	if analysis.ClosingCosts.Total != 16500 {
		t.Errorf("expected closing costs 16500, got %f", analysis.ClosingCosts.Total)
	}
}

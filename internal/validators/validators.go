package validators

import (
	"fmt"

	"github.com/rexologue/immo-engine/internal/config"
	"github.com/rexologue/immo-engine/pkg/utils"
)

// ValidatePositiveNumber checks that a value is finite and inside
// [minInclusive, maxInclusive].
func ValidatePositiveNumber(name string, value, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: value must be >= %.2f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: value too large (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that an integer is inside [minInclusive, maxInclusive].
func ValidateIntRange(name string, value, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrice validates a purchase price.
func CheckPrice(cfg *config.Config, price float64) error {
	return ValidatePositiveNumber("purchase_price", price, 1e-9, cfg.MaxPrice)
}

// CheckPrincipal validates a loan principal.
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate validates an interest or amortization rate in percent.
func CheckRate(cfg *config.Config, name string, rate float64) error {
	return ValidatePositiveNumber(name, rate, 0.0, cfg.MaxRate)
}

// CheckTermYears validates the loan term.
func CheckTermYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, 1, cfg.MaxTermYears)
}

// CheckPercentShare validates a percentage that must lie in [0; 100],
// e.g. the building share or the vacancy allowance.
func CheckPercentShare(name string, pct float64) error {
	return ValidatePositiveNumber(name, pct, 0.0, 100.0)
}

// CheckMonthlyAmount validates a monthly money amount (rent, costs, payment).
func CheckMonthlyAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxMonthlyRent)
}

// CheckEquity validates the equity brought into the purchase.
func CheckEquity(cfg *config.Config, equity float64) error {
	return ValidatePositiveNumber("equity", equity, 0.0, cfg.MaxPrice)
}

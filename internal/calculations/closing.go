package calculations

import (
	"github.com/rexologue/immo-engine/pkg/utils"
)

const (
	// NotaryAndRegistryPct is the flat notary and land-registry percentage.
	NotaryAndRegistryPct = 2.0

	// DefaultBrokerPct is the customary buyer-side broker commission.
	DefaultBrokerPct = 3.57
)

// ClosingCosts computes the one-time acquisition costs of a purchase: the
// state-specific transfer tax, notary and land registry, and the optional
// broker commission.
func ClosingCosts(price float64, state State, withBroker bool, brokerPct float64) (ClosingCostResult, error) {
	transferTaxPct, err := state.TransferTaxRate()
	if err != nil {
		return ClosingCostResult{}, err
	}

	if !withBroker {
		brokerPct = 0.0
	}

	broker := price * brokerPct / 100
	transferTax := price * transferTaxPct / 100
	notary := price * NotaryAndRegistryPct / 100

	return ClosingCostResult{
		TransferTax:        utils.Round2(transferTax),
		TransferTaxPercent: transferTaxPct,
		NotaryAndRegistry:  utils.Round2(notary),
		Broker:             utils.Round2(broker),
		Total:              utils.Round2(transferTax + notary + broker),
		TotalPercent:       utils.Round2(transferTaxPct + NotaryAndRegistryPct + brokerPct),
	}, nil
}

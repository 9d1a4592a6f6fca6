package service

import "property-returns/domain"

// DefaultScenarios are the rent multipliers compared when the caller does not
// supply its own list.
func DefaultScenarios() []domain.Scenario {
	return []domain.Scenario{
		{Name: "Baseline", RentMultiplier: 1.0},
		{Name: "Bullish", RentMultiplier: 1.2},
		{Name: "Bearish", RentMultiplier: 0.8},
	}
}

// CompareScenarios reruns the pipeline once per configured scenario with the
// base rent scaled by the scenario's multiplier. Output order follows
// cfg.Scenarios.
func CompareScenarios(cfg domain.Config) []domain.ScenarioResult {
	results := make([]domain.ScenarioResult, 0, len(cfg.Scenarios))
	for _, scenario := range cfg.Scenarios {
		projection := Simulate(withRentMultiplier(cfg, scenario.RentMultiplier))
		results = append(results, domain.ScenarioResult{
			Name:              scenario.Name,
			RentMultiplier:    scenario.RentMultiplier,
			CashFlows:         projection.CashFlows,
			CumulativeReturns: projection.CumulativeReturns,
			IRR:               projection.IRR,
			TotalROI:          projection.TotalROI,
		})
	}
	return results
}

// withRentMultiplier returns a copy of cfg; the caller's config is untouched.
func withRentMultiplier(cfg domain.Config, multiplier float64) domain.Config {
	cfg.Operating.BaseAnnualRent *= multiplier
	return cfg
}

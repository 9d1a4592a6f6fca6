package service

import (
	"math"
	"testing"

	"property-returns/domain"
)

// concreteConfig is a $350k residential purchase, 20% down, 6% 30-year loan,
// held 15 years.
func concreteConfig() domain.Config {
	return domain.Config{
		PropertyType:        domain.Residential,
		Price:               350000,
		DownPaymentFraction: 0.20,
		AnnualInterestRate:  0.06,
		LoanTermYears:       30,
		HoldingPeriodYears:  15,
		Operating: domain.OperatingAssumptions{
			BaseAnnualRent:            2500 * 12,
			RentGrowthRate:            0.02,
			VacancyFraction:           0.05,
			ExpenseFraction:           0.30,
			AppreciationRate:          0.025,
			TaxRate:                   0.25,
			DepreciationBasisFraction: 0.8,
			DepreciationRecoveryYears: 27.5,
		},
		SellingCostFraction: 0.06,
		Scenarios:           DefaultScenarios(),
		Axes:                DefaultAxes(),
	}
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: expected %.6f, got %.6f", name, want, got)
	}
}

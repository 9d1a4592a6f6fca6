package service

import (
	"testing"

	"property-returns/domain"
)

func testOperating() domain.OperatingAssumptions {
	return domain.OperatingAssumptions{
		BaseAnnualRent:   30000,
		RentGrowthRate:   0.02,
		VacancyFraction:  0.05,
		ExpenseFraction:  0.30,
		AppreciationRate: 0.025,
		TaxRate:          0.25,
	}
}

func TestProjectYear_FirstYear(t *testing.T) {
	rec := ProjectYear(1, testOperating(), 20000, 10000, 350000)

	assertClose(t, "gross rent", rec.GrossRent, 30000, 1e-6)
	assertClose(t, "effective income", rec.EffectiveIncome, 28500, 1e-6)
	assertClose(t, "operating expenses", rec.OperatingExpenses, 8550, 1e-6)
	assertClose(t, "noi", rec.NOI, 19950, 1e-6)
	assertClose(t, "pre-tax", rec.PreTaxCashFlow, -50, 1e-6)
	assertClose(t, "taxable", rec.TaxableIncome, -10050, 1e-6)
	assertClose(t, "shield", rec.DepreciationTaxShield, 2500, 1e-6)
	assertClose(t, "after-tax", rec.AfterTaxCashFlow, 2450, 1e-6)
	assertClose(t, "value", rec.PropertyValue, 358750, 1e-6)

	if rec.TaxPayment != 0 {
		t.Errorf("negative taxable income must not produce a tax payment, got %v", rec.TaxPayment)
	}
	if rec.Year != 1 {
		t.Errorf("expected year 1, got %d", rec.Year)
	}
}

func TestProjectYear_PositiveTaxableIncome(t *testing.T) {
	rec := ProjectYear(1, testOperating(), 0, 0, 350000)

	assertClose(t, "tax", rec.TaxPayment, 4987.5, 1e-6)
	assertClose(t, "after-tax", rec.AfterTaxCashFlow, 14962.5, 1e-6)
}

func TestProjectYear_RentGrowth(t *testing.T) {
	rec := ProjectYear(3, testOperating(), 0, 0, 350000)

	assertClose(t, "gross rent", rec.GrossRent, 31212, 1e-6)
	assertClose(t, "value", rec.PropertyValue, 350000*1.025*1.025*1.025, 1e-6)
}

func TestAnnualDepreciation(t *testing.T) {
	assertClose(t, "residential", AnnualDepreciation(350000, 0.8, 27.5), 10181.818181, 1e-5)
	assertClose(t, "commercial", AnnualDepreciation(390000, 0.8, 39), 8000, 1e-9)

	if got := AnnualDepreciation(350000, 0.8, 0); got != 0 {
		t.Errorf("expected 0 without recovery period, got %v", got)
	}
}

func TestForecast_FixedDebtServiceAndDepreciation(t *testing.T) {
	cfg := concreteConfig()
	records := Forecast(cfg)

	if len(records) != cfg.HoldingPeriodYears {
		t.Fatalf("expected %d records, got %d", cfg.HoldingPeriodYears, len(records))
	}
	for i, rec := range records {
		if rec.Year != i+1 {
			t.Errorf("record %d has year %d", i, rec.Year)
		}
		if rec.DebtService != records[0].DebtService {
			t.Errorf("debt service changed in year %d", rec.Year)
		}
		if rec.Depreciation != records[0].Depreciation {
			t.Errorf("depreciation changed in year %d", rec.Year)
		}
		if i > 0 && rec.GrossRent <= records[i-1].GrossRent {
			t.Errorf("rent did not grow in year %d", rec.Year)
		}
	}
	assertClose(t, "debt service", records[0].DebtService, 1678.7414704277196*12, 1e-6)
}

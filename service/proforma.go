package service

import (
	"math"

	"property-returns/domain"
)

// AnnualDepreciation is straight-line depreciation of the building share of
// the price. No mid-year convention.
func AnnualDepreciation(price, basisFraction, recoveryYears float64) float64 {
	if recoveryYears <= 0 {
		return 0
	}
	return price * basisFraction / recoveryYears
}

// ProjectYear builds the pro forma for year t (1-based).
//
// Debt principal is not modeled separately: taxable income is NOI minus the
// whole debt service minus depreciation. Losses are not refunded; the
// depreciation shield is credited on its own line.
func ProjectYear(
	t int,
	op domain.OperatingAssumptions,
	debtService float64,
	depreciation float64,
	price float64,
) domain.YearRecord {
	grossRent := op.BaseAnnualRent * math.Pow(1+op.RentGrowthRate, float64(t-1))
	effectiveIncome := grossRent * (1 - op.VacancyFraction)
	operatingExpenses := effectiveIncome * op.ExpenseFraction
	noi := effectiveIncome - operatingExpenses

	preTax := noi - debtService
	taxable := noi - debtService - depreciation
	taxPayment := math.Max(0, taxable*op.TaxRate)
	shield := depreciation * op.TaxRate

	return domain.YearRecord{
		Year:                  t,
		GrossRent:             grossRent,
		EffectiveIncome:       effectiveIncome,
		OperatingExpenses:     operatingExpenses,
		NOI:                   noi,
		DebtService:           debtService,
		PreTaxCashFlow:        preTax,
		Depreciation:          depreciation,
		TaxableIncome:         taxable,
		TaxPayment:            taxPayment,
		DepreciationTaxShield: shield,
		AfterTaxCashFlow:      preTax - taxPayment + shield,
		PropertyValue:         price * math.Pow(1+op.AppreciationRate, float64(t)),
	}
}

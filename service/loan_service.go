package service

import (
	"github.com/shopspring/decimal"

	"property-returns/domain"
)

// roundCents redondea un monto a 2 decimales
func roundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// SummarizeLoan reports the level payment and total cost of the loan over its
// full term. Amounts are rounded to cents for display; the engine itself
// never works from these rounded values.
func SummarizeLoan(terms domain.LoanTerms) domain.LoanSummary {
	payment := MonthlyPayment(terms.Principal, terms.MonthlyRate(), terms.PaymentCount())
	total := payment * float64(terms.PaymentCount())

	interest := total - terms.Principal
	if terms.Principal <= 0 {
		interest = 0
	}

	return domain.LoanSummary{
		Principal:         roundCents(terms.Principal),
		MonthlyPayment:    roundCents(payment),
		AnnualDebtService: roundCents(payment * 12),
		TotalPayment:      roundCents(total),
		TotalInterest:     roundCents(interest),
	}
}

// Metrics computes the first-year investment ratios from the pro forma before
// any sale proceeds are folded in.
func Metrics(cfg domain.Config) domain.InvestmentMetrics {
	loan := cfg.Loan()
	debtService := AnnualDebtService(loan.Principal, loan.AnnualRate, loan.TermYears)
	depreciation := AnnualDepreciation(
		cfg.Price,
		cfg.Operating.DepreciationBasisFraction,
		cfg.Operating.DepreciationRecoveryYears,
	)
	first := ProjectYear(1, cfg.Operating, debtService, depreciation, cfg.Price)

	metrics := domain.InvestmentMetrics{
		CapRate:               first.NOI / cfg.Price,
		AnnualDepreciation:    depreciation,
		DepreciationTaxShield: first.DepreciationTaxShield,
	}
	if investment := cfg.DownPayment(); investment > 0 {
		metrics.CashOnCash = first.PreTaxCashFlow / investment
		metrics.AfterTaxCashOnCash = first.AfterTaxCashFlow / investment
	}
	if first.GrossRent > 0 {
		metrics.GrossRentMultiplier = cfg.Price / first.GrossRent
	}
	return metrics
}

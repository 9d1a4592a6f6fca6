package service

import "property-returns/domain"

// Forecast runs the pro forma for every year of the holding period. Debt
// service comes from the full loan term and stays fixed, as does depreciation.
func Forecast(cfg domain.Config) []domain.YearRecord {
	loan := cfg.Loan()
	debtService := AnnualDebtService(loan.Principal, loan.AnnualRate, loan.TermYears)
	depreciation := AnnualDepreciation(
		cfg.Price,
		cfg.Operating.DepreciationBasisFraction,
		cfg.Operating.DepreciationRecoveryYears,
	)

	records := make([]domain.YearRecord, 0, cfg.HoldingPeriodYears)
	for t := 1; t <= cfg.HoldingPeriodYears; t++ {
		records = append(records, ProjectYear(t, cfg.Operating, debtService, depreciation, cfg.Price))
	}
	return records
}

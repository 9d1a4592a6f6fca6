package service

import (
	"math"

	"property-returns/domain"
)

// TerminalSale prices the sale at the end of the holding period. The loan is
// only outstanding when the property is sold before the loan matures.
func TerminalSale(cfg domain.Config) domain.TerminalSale {
	years := cfg.HoldingPeriodYears
	finalValue := cfg.Price * math.Pow(1+cfg.Operating.AppreciationRate, float64(years))
	sellingCosts := finalValue * cfg.SellingCostFraction

	loanBalance := 0.0
	if years < cfg.LoanTermYears {
		loan := cfg.Loan()
		loanBalance = RemainingBalance(loan.Principal, loan.MonthlyRate(), loan.PaymentCount(), years*12)
	}

	return domain.TerminalSale{
		FinalValue:   finalValue,
		SellingCosts: sellingCosts,
		LoanBalance:  loanBalance,
		NetProceeds:  finalValue - sellingCosts - loanBalance,
	}
}

// ApplyTerminalSale folds the net sale proceeds into the final year's
// after-tax cash flow. records must be the untouched output of Forecast.
func ApplyTerminalSale(cfg domain.Config, records []domain.YearRecord) domain.TerminalSale {
	sale := TerminalSale(cfg)
	if len(records) > 0 {
		records[len(records)-1].AfterTaxCashFlow += sale.NetProceeds
	}
	return sale
}

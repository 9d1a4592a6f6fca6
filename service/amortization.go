package service

import "math"

// MonthlyPayment returns the level payment that amortizes principal over
// paymentCount periods at monthlyRate.
//
// A non-positive rate is treated as an interest-free loan repaid in equal
// installments (principal / paymentCount) instead of the singular annuity
// formula.
func MonthlyPayment(principal, monthlyRate float64, paymentCount int) float64 {
	if principal <= 0 || paymentCount <= 0 {
		return 0
	}
	n := float64(paymentCount)
	if monthlyRate <= 0 {
		return principal / n
	}

	growth := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * growth / (growth - 1)
}

// RemainingBalance returns the outstanding principal after paymentsMade of
// totalPayments level payments.
func RemainingBalance(principal, monthlyRate float64, totalPayments, paymentsMade int) float64 {
	if principal <= 0 || totalPayments <= 0 || paymentsMade >= totalPayments {
		return 0
	}
	if paymentsMade <= 0 {
		return principal
	}

	n := float64(totalPayments)
	remaining := float64(totalPayments - paymentsMade)
	if monthlyRate <= 0 {
		return principal * remaining / n
	}

	// Valor presente de los pagos que faltan
	return principal * (1 - math.Pow(1+monthlyRate, -remaining)) / (1 - math.Pow(1+monthlyRate, -n))
}

// AnnualDebtService is twelve level payments on the loan's full term.
func AnnualDebtService(principal, annualRate float64, termYears int) float64 {
	return MonthlyPayment(principal, annualRate/12, termYears*12) * 12
}

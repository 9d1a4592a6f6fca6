package domain

// LoanTerms describes a single fixed-rate, fully amortizing loan.
type LoanTerms struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
}

func (l LoanTerms) MonthlyRate() float64 {
	return l.AnnualRate / 12
}

func (l LoanTerms) PaymentCount() int {
	return l.TermYears * 12
}

type LoanSummary struct {
	Principal         float64 `json:"principal"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	AnnualDebtService float64 `json:"annualDebtService"`
	TotalPayment      float64 `json:"totalPayment"`
	TotalInterest     float64 `json:"totalInterest"`
}

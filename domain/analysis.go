package domain

// Scenario is a named rent multiplier applied to the base rent.
type Scenario struct {
	Name           string  `json:"name" yaml:"name"`
	RentMultiplier float64 `json:"rentMultiplier" yaml:"rent_multiplier"`
}

// SensitivityAxes are the ordered value sequences swept by the sensitivity grid.
// Rows follow Appreciation, columns follow Interest.
type SensitivityAxes struct {
	Appreciation []float64 `json:"appreciation"`
	Interest     []float64 `json:"interest"`
}

// AnalysisInput is the request shape accepted from callers. Pointer and zero
// valued fields are filled from the property type defaults before simulation.
type AnalysisInput struct {
	PropertyType        PropertyType `json:"propertyType"`
	Price               float64      `json:"price"`
	DownPaymentFraction *float64     `json:"downPaymentFraction,omitempty"`
	AnnualInterestRate  *float64     `json:"annualInterestRate,omitempty"`
	LoanTermYears       int          `json:"loanTermYears,omitempty"`
	HoldingPeriodYears  int          `json:"holdingPeriodYears"`

	BaseAnnualRent  float64 `json:"baseAnnualRent,omitempty"`
	BaseMonthlyRent float64 `json:"baseMonthlyRent,omitempty"`

	RentGrowthRate            *float64 `json:"rentGrowthRate,omitempty"`
	VacancyFraction           *float64 `json:"vacancyFraction,omitempty"`
	ExpenseFraction           *float64 `json:"expenseFraction,omitempty"`
	AppreciationRate          *float64 `json:"appreciationRate,omitempty"`
	TaxRate                   *float64 `json:"taxRate,omitempty"`
	DepreciationBasisFraction *float64 `json:"depreciationBasisFraction,omitempty"`
	DepreciationRecoveryYears *float64 `json:"depreciationRecoveryYears,omitempty"`
	SellingCostFraction       *float64 `json:"sellingCostFraction,omitempty"`

	Scenarios       []Scenario       `json:"scenarios,omitempty"`
	SensitivityAxes *SensitivityAxes `json:"sensitivityAxes,omitempty"`
}

// OperatingAssumptions drive the yearly pro forma.
type OperatingAssumptions struct {
	BaseAnnualRent            float64 `json:"baseAnnualRent"`
	RentGrowthRate            float64 `json:"rentGrowthRate"`
	VacancyFraction           float64 `json:"vacancyFraction"`
	ExpenseFraction           float64 `json:"expenseFraction"`
	AppreciationRate          float64 `json:"appreciationRate"`
	TaxRate                   float64 `json:"taxRate"`
	DepreciationBasisFraction float64 `json:"depreciationBasisFraction"`
	DepreciationRecoveryYears float64 `json:"depreciationRecoveryYears"`
}

// Config is a fully resolved, validated engine configuration. Every stage of
// the simulation reads only from the Config it is handed.
type Config struct {
	PropertyType        PropertyType         `json:"propertyType"`
	Price               float64              `json:"price"`
	DownPaymentFraction float64              `json:"downPaymentFraction"`
	AnnualInterestRate  float64              `json:"annualInterestRate"`
	LoanTermYears       int                  `json:"loanTermYears"`
	HoldingPeriodYears  int                  `json:"holdingPeriodYears"`
	Operating           OperatingAssumptions `json:"operating"`
	SellingCostFraction float64              `json:"sellingCostFraction"`
	Scenarios           []Scenario           `json:"scenarios"`
	Axes                SensitivityAxes      `json:"sensitivityAxes"`
}

// DownPayment is the initial equity invested.
func (c Config) DownPayment() float64 {
	return c.Price * c.DownPaymentFraction
}

// Loan returns the financing terms implied by the configuration.
func (c Config) Loan() LoanTerms {
	return LoanTerms{
		Principal:  c.Price * (1 - c.DownPaymentFraction),
		AnnualRate: c.AnnualInterestRate,
		TermYears:  c.LoanTermYears,
	}
}

package service

const (
	MaxPrice          = 10_000_000_000.0 // 10 mil millones
	MaxInterestRate   = 10.0             // 1000% anual
	MaxLoanTermYears  = 50
	MaxHoldingYears   = 50
	MaxAxisPoints     = 50
	MaxScenarios      = 10
	MaxRentMultiplier = 100.0

	DefaultRentGrowthRate            = 0.02
	DefaultAppreciationRate          = 0.025
	DefaultTaxRate                   = 0.25
	DefaultDepreciationBasisFraction = 0.8
	DefaultSellingCostFraction       = 0.06

	// Solver de TIR
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrLowerBound    = -0.99
	irrUpperBound    = 10.0
	irrBracketScans  = 200
	irrTolerance     = 1e-7
	irrStepTolerance = 1e-12
	irrMinDerivative = 1e-12
)

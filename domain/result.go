package domain

import (
	"encoding/json"
	"math"
)

// YearRecord is the pro forma of one simulated year.
type YearRecord struct {
	Year                  int     `json:"year"`
	GrossRent             float64 `json:"grossRent"`
	EffectiveIncome       float64 `json:"effectiveIncome"`
	OperatingExpenses     float64 `json:"operatingExpenses"`
	NOI                   float64 `json:"noi"`
	DebtService           float64 `json:"debtService"`
	PreTaxCashFlow        float64 `json:"preTaxCashFlow"`
	Depreciation          float64 `json:"depreciation"`
	TaxableIncome         float64 `json:"taxableIncome"`
	TaxPayment            float64 `json:"taxPayment"`
	DepreciationTaxShield float64 `json:"depreciationTaxShield"`
	AfterTaxCashFlow      float64 `json:"afterTaxCashFlow"`
	PropertyValue         float64 `json:"propertyValue"`
}

// TerminalSale is the breakdown of the sale at the end of the holding period.
type TerminalSale struct {
	FinalValue   float64 `json:"finalValue"`
	SellingCosts float64 `json:"sellingCosts"`
	LoanBalance  float64 `json:"loanBalance"`
	NetProceeds  float64 `json:"netProceeds"`
}

// IRR is an internal rate of return that may be undefined, either because the
// cash flows admit no root or because the solver did not converge.
type IRR struct {
	Rate    float64
	Defined bool
}

func DefinedIRR(rate float64) IRR {
	return IRR{Rate: rate, Defined: true}
}

func UndefinedIRR() IRR {
	return IRR{}
}

// Float returns the rate, or NaN when undefined.
func (r IRR) Float() float64 {
	if !r.Defined {
		return math.NaN()
	}
	return r.Rate
}

func (r IRR) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Rate)
}

func (r *IRR) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UndefinedIRR()
		return nil
	}
	var rate float64
	if err := json.Unmarshal(data, &rate); err != nil {
		return err
	}
	*r = DefinedIRR(rate)
	return nil
}

// Projection is the outcome of one full simulation run.
type Projection struct {
	Years             []YearRecord `json:"years"`
	Sale              TerminalSale `json:"sale"`
	CashFlows         []float64    `json:"cashFlows"`
	IRR               IRR          `json:"irr"`
	CumulativeReturns []float64    `json:"cumulativeReturns"`
	TotalROI          float64      `json:"totalRoi"`
}

type ScenarioResult struct {
	Name              string    `json:"name"`
	RentMultiplier    float64   `json:"rentMultiplier"`
	CashFlows         []float64 `json:"cashFlows"`
	CumulativeReturns []float64 `json:"cumulativeReturns"`
	IRR               IRR       `json:"irr"`
	TotalROI          float64   `json:"totalRoi"`
}

// SensitivityGrid holds IRR by appreciation rate (rows) and interest rate (columns).
type SensitivityGrid struct {
	Appreciation []float64 `json:"appreciation"`
	Interest     []float64 `json:"interest"`
	Cells        [][]IRR   `json:"cells"`
}

// Values returns the grid as floats with NaN for undefined cells.
func (g SensitivityGrid) Values() [][]float64 {
	out := make([][]float64, len(g.Cells))
	for i, row := range g.Cells {
		out[i] = make([]float64, len(row))
		for j, cell := range row {
			out[i][j] = cell.Float()
		}
	}
	return out
}

type InvestmentMetrics struct {
	CapRate               float64 `json:"capRate"`
	CashOnCash            float64 `json:"cashOnCash"`
	AfterTaxCashOnCash    float64 `json:"afterTaxCashOnCash"`
	GrossRentMultiplier   float64 `json:"grossRentMultiplier"`
	AnnualDepreciation    float64 `json:"annualDepreciation"`
	DepreciationTaxShield float64 `json:"depreciationTaxShield"`
}

type AnalysisResult struct {
	ID          string            `json:"id"`
	Config      Config            `json:"config"`
	Loan        LoanSummary       `json:"loan"`
	Metrics     InvestmentMetrics `json:"metrics"`
	Projection  Projection        `json:"projection"`
	Scenarios   []ScenarioResult  `json:"scenarios"`
	Sensitivity SensitivityGrid   `json:"sensitivity"`
}

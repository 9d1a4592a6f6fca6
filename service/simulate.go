package service

import (
	"gonum.org/v1/gonum/floats"

	"property-returns/domain"
)

// Simulate runs the full pipeline for one configuration: forecast, terminal
// sale, cash-flow series, IRR and return ratios. It reads nothing but cfg.
func Simulate(cfg domain.Config) domain.Projection {
	records := Forecast(cfg)
	preSale := afterTaxCashFlows(records)
	sale := ApplyTerminalSale(cfg, records)

	investment := cfg.DownPayment()
	flows := CashFlowSeries(investment, records)

	return domain.Projection{
		Years:             records,
		Sale:              sale,
		CashFlows:         flows,
		IRR:               SolveIRR(flows),
		CumulativeReturns: CumulativeReturns(records, investment),
		TotalROI:          TotalROI(preSale, sale.FinalValue, cfg.Price, investment),
	}
}

// CashFlowSeries is the stream handed to the IRR solver: the down payment as
// an outflow followed by each year's after-tax cash flow.
func CashFlowSeries(downPayment float64, records []domain.YearRecord) []float64 {
	flows := make([]float64, 0, len(records)+1)
	flows = append(flows, -downPayment)
	return append(flows, afterTaxCashFlows(records)...)
}

// CumulativeReturns is the running sum of after-tax cash flows expressed as a
// multiple of the initial investment.
func CumulativeReturns(records []domain.YearRecord, investment float64) []float64 {
	flows := afterTaxCashFlows(records)
	cumulative := make([]float64, len(flows))
	if len(flows) == 0 || investment <= 0 {
		return cumulative
	}
	floats.CumSum(cumulative, flows)
	floats.Scale(1/investment, cumulative)
	return cumulative
}

// TotalROI is the holding-period profit (operating cash plus appreciation
// gain) over the initial investment.
func TotalROI(preSaleFlows []float64, finalValue, price, investment float64) float64 {
	if investment <= 0 {
		return 0
	}
	return (floats.Sum(preSaleFlows) + finalValue - price) / investment
}

func afterTaxCashFlows(records []domain.YearRecord) []float64 {
	flows := make([]float64, len(records))
	for i, r := range records {
		flows[i] = r.AfterTaxCashFlow
	}
	return flows
}

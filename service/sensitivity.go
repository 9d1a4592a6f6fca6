package service

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"property-returns/domain"
)

// AxisRange describes an evenly spaced axis, endpoints included.
type AxisRange struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Points int     `json:"points" yaml:"points"`
}

var (
	DefaultAppreciationRange = AxisRange{Min: 0.01, Max: 0.08, Points: 8}
	DefaultInterestRange     = AxisRange{Min: 0.03, Max: 0.09, Points: 8}
)

// Values expands the range. A single point collapses to Min.
func (a AxisRange) Values() []float64 {
	if a.Points <= 0 {
		return nil
	}
	if a.Points == 1 {
		return []float64{a.Min}
	}
	return floats.Span(make([]float64, a.Points), a.Min, a.Max)
}

// DefaultAxes returns the 8x8 appreciation/interest sweep.
func DefaultAxes() domain.SensitivityAxes {
	return domain.SensitivityAxes{
		Appreciation: DefaultAppreciationRange.Values(),
		Interest:     DefaultInterestRange.Values(),
	}
}

// SensitivityGrid computes the IRR for every (appreciation, interest) pair of
// cfg.Axes. Cells are independent: an undefined IRR stays confined to its
// cell. With workers > 1 rows are evaluated concurrently; the result is the
// same as a sequential sweep.
func SensitivityGrid(ctx context.Context, cfg domain.Config, workers int) (domain.SensitivityGrid, error) {
	appreciation := append([]float64(nil), cfg.Axes.Appreciation...)
	interest := append([]float64(nil), cfg.Axes.Interest...)

	cells := make([][]domain.IRR, len(appreciation))

	g, ctx := errgroup.WithContext(ctx)
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, a := range appreciation {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := make([]domain.IRR, len(interest))
			for j, rate := range interest {
				row[j] = SensitivityCell(cfg, a, rate)
			}
			cells[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.SensitivityGrid{}, err
	}

	return domain.SensitivityGrid{
		Appreciation: appreciation,
		Interest:     interest,
		Cells:        cells,
	}, nil
}

// SensitivityCell reruns the pipeline with the given appreciation and
// interest rate, everything else taken from cfg.
func SensitivityCell(cfg domain.Config, appreciation, interestRate float64) domain.IRR {
	cfg.Operating.AppreciationRate = appreciation
	cfg.AnnualInterestRate = interestRate
	return Simulate(cfg).IRR
}

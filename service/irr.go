package service

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"property-returns/domain"
)

// SolveIRR finds the rate that zeroes the NPV of flows, where flows[0] is the
// initial outlay at t=0.
//
// Newton-Raphson runs first; when it fails to settle inside
// [irrLowerBound, irrUpperBound] the bracket is scanned for a sign change and
// bisected. Anything that cannot produce a root comes back undefined.
func SolveIRR(flows []float64) domain.IRR {
	if !investable(flows) {
		return domain.UndefinedIRR()
	}

	tolerance := irrTolerance * math.Max(1, floats.Norm(flows, 1))

	if rate, ok := newtonIRR(flows, tolerance); ok {
		return domain.DefinedIRR(rate)
	}
	if rate, ok := bisectIRR(flows, tolerance); ok {
		return domain.DefinedIRR(rate)
	}
	return domain.UndefinedIRR()
}

// NPV discounts flows at rate, flows[t] landing at the end of period t.
func NPV(rate float64, flows []float64) float64 {
	value, _ := npvWithDerivative(rate, flows)
	return value
}

// investable reports whether flows look like an investment: a finite initial
// outlay followed by at least one positive inflow.
func investable(flows []float64) bool {
	if len(flows) < 2 {
		return false
	}
	for _, c := range flows {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	if flows[0] >= 0 {
		return false
	}
	for _, c := range flows[1:] {
		if c > 0 {
			return true
		}
	}
	return false
}

func npvWithDerivative(rate float64, flows []float64) (float64, float64) {
	base := 1 + rate
	value, derivative := 0.0, 0.0
	for t, c := range flows {
		discount := math.Pow(base, float64(t))
		value += c / discount
		derivative -= float64(t) * c / (discount * base)
	}
	return value, derivative
}

func newtonIRR(flows []float64, tolerance float64) (float64, bool) {
	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		value, derivative := npvWithDerivative(rate, flows)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}
		if math.Abs(value) <= tolerance {
			return rate, withinBracket(rate)
		}
		if math.Abs(derivative) < irrMinDerivative {
			return 0, false
		}

		step := value / derivative
		rate -= step
		if math.IsNaN(rate) || rate <= -1 {
			return 0, false
		}
		if math.Abs(step) < irrStepTolerance {
			return rate, withinBracket(rate) && math.Abs(NPV(rate, flows)) <= tolerance
		}
	}
	return 0, false
}

func bisectIRR(flows []float64, tolerance float64) (float64, bool) {
	edges := make([]float64, irrBracketScans+1)
	floats.Span(edges, irrLowerBound, irrUpperBound)

	// Primer subintervalo con cambio de signo
	lo, hi := 0.0, 0.0
	found := false
	prev := NPV(edges[0], flows)
	for i := 1; i < len(edges); i++ {
		cur := NPV(edges[i], flows)
		if prev == 0 {
			return edges[i-1], true
		}
		if math.Signbit(prev) != math.Signbit(cur) {
			lo, hi = edges[i-1], edges[i]
			found = true
			break
		}
		prev = cur
	}
	if !found {
		return 0, false
	}

	fLo := NPV(lo, flows)
	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, flows)
		if math.Abs(fMid) <= tolerance || (hi-lo)/2 < irrStepTolerance {
			return mid, true
		}
		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, false
}

func withinBracket(rate float64) bool {
	return rate >= irrLowerBound && rate <= irrUpperBound
}

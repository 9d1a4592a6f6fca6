package service

import (
	"errors"
	"fmt"
	"math"

	"property-returns/domain"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("configuración inválida")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// Validate rejects a resolved configuration before anything is simulated.
func Validate(cfg domain.Config) error {
	if !cfg.PropertyType.Valid() {
		return invalid("tipo de propiedad desconocido")
	}
	if !(cfg.Price > 0) || cfg.Price > MaxPrice {
		return invalid("el precio debe ser positivo y no exceder $%.2f", MaxPrice)
	}
	if !(cfg.DownPaymentFraction > 0 && cfg.DownPaymentFraction <= 1) {
		return invalid("el enganche debe estar en (0, 1]")
	}
	if !inRange(cfg.AnnualInterestRate, 0, MaxInterestRate) {
		return invalid("la tasa de interés debe estar entre 0 y %.2f", MaxInterestRate)
	}
	if cfg.LoanTermYears < 1 || cfg.LoanTermYears > MaxLoanTermYears {
		return invalid("el plazo del préstamo debe estar entre 1 y %d años", MaxLoanTermYears)
	}
	if cfg.HoldingPeriodYears < 1 || cfg.HoldingPeriodYears > MaxHoldingYears {
		return invalid("el horizonte de inversión debe estar entre 1 y %d años", MaxHoldingYears)
	}
	if err := validateOperating(cfg.Operating); err != nil {
		return err
	}
	if !isFraction(cfg.SellingCostFraction) {
		return invalid("los costos de venta deben estar en [0, 1]")
	}
	if err := validateScenarios(cfg.Scenarios); err != nil {
		return err
	}
	if err := validateAxis("apreciación", cfg.Axes.Appreciation, -0.99, 1); err != nil {
		return err
	}
	return validateAxis("tasa de interés", cfg.Axes.Interest, 0, MaxInterestRate)
}

func validateOperating(op domain.OperatingAssumptions) error {
	if !inRange(op.BaseAnnualRent, 0, MaxPrice) {
		return invalid("la renta anual debe ser no negativa")
	}
	if !(op.RentGrowthRate > -1 && op.RentGrowthRate <= 1) {
		return invalid("el crecimiento de renta debe estar en (-1, 1]")
	}
	if !(op.AppreciationRate > -1 && op.AppreciationRate <= 1) {
		return invalid("la apreciación debe estar en (-1, 1]")
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"vacancia", op.VacancyFraction},
		{"gastos operativos", op.ExpenseFraction},
		{"tasa de impuestos", op.TaxRate},
		{"base depreciable", op.DepreciationBasisFraction},
	}
	for _, f := range fractions {
		if !isFraction(f.value) {
			return invalid("%s debe estar en [0, 1]", f.name)
		}
	}

	if !(op.DepreciationRecoveryYears > 0 && op.DepreciationRecoveryYears <= 100) {
		return invalid("el periodo de depreciación debe estar en (0, 100] años")
	}
	return nil
}

func validateScenarios(scenarios []domain.Scenario) error {
	if len(scenarios) == 0 || len(scenarios) > MaxScenarios {
		return invalid("se requieren entre 1 y %d escenarios", MaxScenarios)
	}
	names := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if s.Name == "" {
			return invalid("el nombre del escenario no puede estar vacío")
		}
		if names[s.Name] {
			return invalid("escenario duplicado: %s", s.Name)
		}
		names[s.Name] = true
		if !inRange(s.RentMultiplier, 0, MaxRentMultiplier) {
			return invalid("multiplicador de renta inválido en %s", s.Name)
		}
	}
	return nil
}

func validateAxis(name string, values []float64, lo, hi float64) error {
	if len(values) == 0 || len(values) > MaxAxisPoints {
		return invalid("el eje de %s requiere entre 1 y %d puntos", name, MaxAxisPoints)
	}
	for i, v := range values {
		if !inRange(v, lo, hi) {
			return invalid("valor fuera de rango en el eje de %s: %v", name, v)
		}
		if i > 0 && v <= values[i-1] {
			return invalid("el eje de %s debe ser estrictamente ascendente", name)
		}
	}
	return nil
}

func isFraction(v float64) bool {
	return inRange(v, 0, 1)
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

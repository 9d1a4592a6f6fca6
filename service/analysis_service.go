package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"property-returns/domain"
	"property-returns/repository"
)

// cacheVersion se incrementa cuando cambia el formato de los resultados
const cacheVersion = "v1"

// Options carries the service-wide defaults loaded from configuration.
type Options struct {
	Scenarios        []domain.Scenario
	AppreciationAxis []float64
	InterestAxis     []float64
	GridWorkers      int
}

type AnalysisService struct {
	cache repository.CacheRepository
	opts  Options
}

// NewAnalysisService creates an AnalysisService backed by cache. Empty
// option fields fall back to the built-in defaults.
func NewAnalysisService(cache repository.CacheRepository, opts Options) *AnalysisService {
	if len(opts.Scenarios) == 0 {
		opts.Scenarios = DefaultScenarios()
	}
	defaults := DefaultAxes()
	if len(opts.AppreciationAxis) == 0 {
		opts.AppreciationAxis = defaults.Appreciation
	}
	if len(opts.InterestAxis) == 0 {
		opts.InterestAxis = defaults.Interest
	}
	if opts.GridWorkers < 1 {
		opts.GridWorkers = 1
	}
	return &AnalysisService{cache: cache, opts: opts}
}

// Resolve fills every unset field of input from the property type defaults
// and the service options, then validates the result.
func (s *AnalysisService) Resolve(input domain.AnalysisInput) (domain.Config, error) {
	if !input.PropertyType.Valid() {
		return domain.Config{}, invalid("tipo de propiedad desconocido")
	}
	if input.BaseAnnualRent < 0 || input.BaseMonthlyRent < 0 {
		return domain.Config{}, invalid("la renta no puede ser negativa")
	}
	defaults := input.PropertyType.Defaults()
	if defaults.CapRate == 0 && input.BaseAnnualRent == 0 && input.BaseMonthlyRent == 0 {
		return domain.Config{}, invalid("la renta es obligatoria para propiedades de tipo %s", input.PropertyType)
	}

	loanTerm := input.LoanTermYears
	if loanTerm == 0 {
		loanTerm = defaults.LoanTermYears
	}

	cfg := domain.Config{
		PropertyType:        input.PropertyType,
		Price:               input.Price,
		DownPaymentFraction: valueOr(input.DownPaymentFraction, defaults.DownPaymentFraction),
		AnnualInterestRate:  valueOr(input.AnnualInterestRate, defaults.InterestRate),
		LoanTermYears:       loanTerm,
		HoldingPeriodYears:  input.HoldingPeriodYears,
		Operating: domain.OperatingAssumptions{
			BaseAnnualRent:            baseAnnualRent(input, defaults),
			RentGrowthRate:            valueOr(input.RentGrowthRate, DefaultRentGrowthRate),
			VacancyFraction:           valueOr(input.VacancyFraction, defaults.VacancyFraction),
			ExpenseFraction:           valueOr(input.ExpenseFraction, defaults.ExpenseFraction),
			AppreciationRate:          valueOr(input.AppreciationRate, DefaultAppreciationRate),
			TaxRate:                   valueOr(input.TaxRate, DefaultTaxRate),
			DepreciationBasisFraction: valueOr(input.DepreciationBasisFraction, DefaultDepreciationBasisFraction),
			DepreciationRecoveryYears: valueOr(input.DepreciationRecoveryYears, defaults.DepreciationYears),
		},
		SellingCostFraction: valueOr(input.SellingCostFraction, DefaultSellingCostFraction),
		Scenarios:           append([]domain.Scenario(nil), s.opts.Scenarios...),
		Axes: domain.SensitivityAxes{
			Appreciation: append([]float64(nil), s.opts.AppreciationAxis...),
			Interest:     append([]float64(nil), s.opts.InterestAxis...),
		},
	}
	if len(input.Scenarios) > 0 {
		cfg.Scenarios = append([]domain.Scenario(nil), input.Scenarios...)
	}
	if axes := input.SensitivityAxes; axes != nil {
		if len(axes.Appreciation) > 0 {
			cfg.Axes.Appreciation = append([]float64(nil), axes.Appreciation...)
		}
		if len(axes.Interest) > 0 {
			cfg.Axes.Interest = append([]float64(nil), axes.Interest...)
		}
	}

	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Analyze runs the complete evaluation: base projection, scenarios and the
// sensitivity surface.
func (s *AnalysisService) Analyze(
	ctx context.Context,
	input domain.AnalysisInput,
) (domain.AnalysisResult, error) {
	cfg, err := s.Resolve(input)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	result, err := cached(ctx, s.cache, "analysis", cfg, func() (domain.AnalysisResult, error) {
		grid, err := SensitivityGrid(ctx, cfg, s.opts.GridWorkers)
		if err != nil {
			return domain.AnalysisResult{}, err
		}

		projection := Simulate(cfg)
		if !projection.IRR.Defined {
			log.Printf("[Analysis] IRR undefined for price=%.2f holding=%d", cfg.Price, cfg.HoldingPeriodYears)
		}

		return domain.AnalysisResult{
			Config:      cfg,
			Loan:        SummarizeLoan(cfg.Loan()),
			Metrics:     Metrics(cfg),
			Projection:  projection,
			Scenarios:   CompareScenarios(cfg),
			Sensitivity: grid,
		}, nil
	})
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	// Cada solicitud recibe su propio ID, aunque el resultado venga del cache
	result.ID = uuid.NewString()
	return result, nil
}

// Loan validates input and summarizes its financing.
func (s *AnalysisService) Loan(input domain.AnalysisInput) (domain.LoanSummary, error) {
	cfg, err := s.Resolve(input)
	if err != nil {
		return domain.LoanSummary{}, err
	}
	return SummarizeLoan(cfg.Loan()), nil
}

func (s *AnalysisService) Scenarios(
	ctx context.Context,
	input domain.AnalysisInput,
) ([]domain.ScenarioResult, error) {
	cfg, err := s.Resolve(input)
	if err != nil {
		return nil, err
	}
	return cached(ctx, s.cache, "scenarios", cfg, func() ([]domain.ScenarioResult, error) {
		return CompareScenarios(cfg), nil
	})
}

func (s *AnalysisService) Sensitivity(
	ctx context.Context,
	input domain.AnalysisInput,
) (domain.SensitivityGrid, error) {
	cfg, err := s.Resolve(input)
	if err != nil {
		return domain.SensitivityGrid{}, err
	}
	return cached(ctx, s.cache, "sensitivity", cfg, func() (domain.SensitivityGrid, error) {
		return SensitivityGrid(ctx, cfg, s.opts.GridWorkers)
	})
}

// PropertyTypeDefaults lists the default assumption bundle of every property type.
func (s *AnalysisService) PropertyTypeDefaults() map[string]domain.PropertyDefaults {
	out := make(map[string]domain.PropertyDefaults)
	for _, p := range domain.PropertyTypes() {
		out[p.String()] = p.Defaults()
	}
	return out
}

// cached returns the memoized result for (kind, cfg) or computes and stores
// it. Cache failures are logged and never fail the request.
func cached[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	kind string,
	cfg domain.Config,
	compute func() (T, error),
) (T, error) {
	key, err := CacheKey(kind, cfg)
	if err != nil {
		log.Printf("[Cache] Warning: could not build key for %s: %v", kind, err)
		return compute()
	}

	if raw, ok, err := cache.Get(ctx, key); err != nil {
		log.Printf("[Cache] Warning: get %s failed: %v", key, err)
	} else if ok {
		var hit T
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			return hit, nil
		}
		log.Printf("[Cache] Warning: discarding corrupt entry %s", key)
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	// Guardar el resultado (no crítico si falla)
	if payload, err := json.Marshal(result); err != nil {
		log.Printf("[Cache] Warning: failed to encode %s: %v", kind, err)
	} else if err := cache.Set(ctx, key, string(payload)); err != nil {
		log.Printf("[Cache] Warning: failed to store %s: %v", key, err)
	}
	return result, nil
}

// CacheKey hashes the resolved configuration, so inputs that resolve to the
// same engine configuration share an entry.
func CacheKey(kind string, cfg domain.Config) (string, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	sum := xxhash.Sum64(payload)
	return kind + ":" + cacheVersion + ":" + strconv.FormatUint(sum, 16), nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// baseAnnualRent prefers an explicit annual rent, then a monthly one. Asset
// classes with a market cap rate derive rent from price when neither is given;
// Resolve rejects the others before getting here.
func baseAnnualRent(input domain.AnalysisInput, defaults domain.PropertyDefaults) float64 {
	switch {
	case input.BaseAnnualRent > 0:
		return input.BaseAnnualRent
	case input.BaseMonthlyRent > 0:
		return input.BaseMonthlyRent * 12
	default:
		return input.Price * defaults.CapRate
	}
}

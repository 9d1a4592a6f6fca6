package domain

import (
	"fmt"
	"strings"
)

// PropertyType is the asset class being evaluated. It selects the default
// assumption bundle used when the caller leaves a field unset.
type PropertyType int

const (
	Residential PropertyType = iota
	Multifamily
	Office
	Retail
	Industrial
	OtherCommercial
)

// PropertyDefaults groups the per-asset-class assumptions.
type PropertyDefaults struct {
	DepreciationYears   float64 `json:"depreciationYears" yaml:"depreciation_years"`
	CapRate             float64 `json:"capRate" yaml:"cap_rate"`
	DownPaymentFraction float64 `json:"downPaymentFraction" yaml:"down_payment_fraction"`
	VacancyFraction     float64 `json:"vacancyFraction" yaml:"vacancy_fraction"`
	ExpenseFraction     float64 `json:"expenseFraction" yaml:"expense_fraction"`
	LoanTermYears       int     `json:"loanTermYears" yaml:"loan_term_years"`
	InterestRate        float64 `json:"interestRate" yaml:"interest_rate"`
}

var propertyTypeNames = map[PropertyType]string{
	Residential:     "residential",
	Multifamily:     "multifamily",
	Office:          "office",
	Retail:          "retail",
	Industrial:      "industrial",
	OtherCommercial: "commercial",
}

// Residential has no cap rate: rent is always supplied by the caller.
// Commercial financing prices 15% above the residential mortgage rate.
var propertyDefaults = map[PropertyType]PropertyDefaults{
	Residential:     {DepreciationYears: 27.5, CapRate: 0, DownPaymentFraction: 0.20, VacancyFraction: 0.05, ExpenseFraction: 0.30, LoanTermYears: 30, InterestRate: 0.06},
	Multifamily:     {DepreciationYears: 27.5, CapRate: 0.055, DownPaymentFraction: 0.25, VacancyFraction: 0.05, ExpenseFraction: 0.40, LoanTermYears: 25, InterestRate: 0.06},
	Office:          {DepreciationYears: 39, CapRate: 0.065, DownPaymentFraction: 0.30, VacancyFraction: 0.10, ExpenseFraction: 0.35, LoanTermYears: 20, InterestRate: 0.069},
	Retail:          {DepreciationYears: 39, CapRate: 0.060, DownPaymentFraction: 0.30, VacancyFraction: 0.08, ExpenseFraction: 0.20, LoanTermYears: 20, InterestRate: 0.069},
	Industrial:      {DepreciationYears: 39, CapRate: 0.052, DownPaymentFraction: 0.30, VacancyFraction: 0.05, ExpenseFraction: 0.20, LoanTermYears: 20, InterestRate: 0.069},
	OtherCommercial: {DepreciationYears: 39, CapRate: 0.060, DownPaymentFraction: 0.30, VacancyFraction: 0.07, ExpenseFraction: 0.30, LoanTermYears: 20, InterestRate: 0.069},
}

// PropertyTypes lists every known property type in declaration order.
func PropertyTypes() []PropertyType {
	return []PropertyType{Residential, Multifamily, Office, Retail, Industrial, OtherCommercial}
}

// Defaults returns the assumption bundle for the property type.
func (p PropertyType) Defaults() PropertyDefaults {
	return propertyDefaults[p]
}

// Valid reports whether p is one of the declared property types.
func (p PropertyType) Valid() bool {
	_, ok := propertyTypeNames[p]
	return ok
}

func (p PropertyType) String() string {
	if name, ok := propertyTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PropertyType(%d)", int(p))
}

// ParsePropertyType maps the textual form back to a PropertyType.
// The empty string means Residential.
func ParsePropertyType(s string) (PropertyType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Residential, nil
	}
	for p, n := range propertyTypeNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property type %q", s)
}

func (p PropertyType) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown property type %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *PropertyType) UnmarshalText(text []byte) error {
	parsed, err := ParsePropertyType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestIRR_JSON(t *testing.T) {
	grid := SensitivityGrid{Cells: [][]IRR{{DefinedIRR(0.125), UndefinedIRR()}}}

	payload, err := json.Marshal(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"appreciation":null,"interest":null,"cells":[[0.125,null]]}` {
		t.Errorf("unexpected encoding %s", payload)
	}

	var decoded SensitivityGrid
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Cells[0][0] != DefinedIRR(0.125) || decoded.Cells[0][1].Defined {
		t.Errorf("unexpected cells %+v", decoded.Cells)
	}
}

func TestIRR_Float(t *testing.T) {
	if DefinedIRR(0.07).Float() != 0.07 {
		t.Errorf("expected 0.07")
	}
	if !math.IsNaN(UndefinedIRR().Float()) {
		t.Errorf("expected NaN for an undefined IRR")
	}
}

func TestConfig_Loan(t *testing.T) {
	cfg := Config{Price: 350000, DownPaymentFraction: 0.2, AnnualInterestRate: 0.06, LoanTermYears: 30}

	if cfg.DownPayment() != 70000 {
		t.Errorf("expected 70000 down, got %v", cfg.DownPayment())
	}
	loan := cfg.Loan()
	if loan.Principal != 280000 || loan.PaymentCount() != 360 || loan.MonthlyRate() != 0.005 {
		t.Errorf("unexpected loan terms %+v", loan)
	}
}

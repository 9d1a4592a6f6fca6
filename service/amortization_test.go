package service

import (
	"math"
	"testing"
)

func TestMonthlyPayment_ThirtyYearMortgage(t *testing.T) {
	payment := MonthlyPayment(280000, 0.06/12, 360)
	assertClose(t, "payment", payment, 1678.74, 0.01)
}

func TestMonthlyPayment_DrivesBalanceToZero(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		n         int
	}{
		{280000, 0.06 / 12, 360},
		{10000, 0.12 / 12, 24},
		{500, 0.01, 1},
		{1_000_000, 0.09 / 12, 240},
	}

	for _, c := range cases {
		payment := MonthlyPayment(c.principal, c.rate, c.n)
		balance := c.principal
		for k := 1; k <= c.n; k++ {
			balance = balance*(1+c.rate) - payment
			want := RemainingBalance(c.principal, c.rate, c.n, k)
			if math.Abs(balance-want) > 1e-6*c.principal {
				t.Fatalf("principal %.0f: after %d payments expected balance %.4f, schedule gives %.4f",
					c.principal, k, want, balance)
			}
		}
		if math.Abs(balance) > 1e-6*c.principal {
			t.Errorf("principal %.0f: expected zero balance at maturity, got %.6f", c.principal, balance)
		}
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	if got := MonthlyPayment(1200, 0, 12); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := RemainingBalance(1200, 0, 12, 3); got != 900 {
		t.Errorf("expected 900, got %v", got)
	}
	if got := RemainingBalance(1200, 0, 12, 12); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestMonthlyPayment_NoPrincipal(t *testing.T) {
	if got := MonthlyPayment(0, 0.005, 360); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := RemainingBalance(0, 0.005, 360, 12); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestRemainingBalance_BeforeFirstPayment(t *testing.T) {
	if got := RemainingBalance(280000, 0.005, 360, 0); got != 280000 {
		t.Errorf("expected full principal, got %v", got)
	}
}

func TestRemainingBalance_MidTerm(t *testing.T) {
	// Mitad del plazo: todavía se debe más de la mitad del capital
	balance := RemainingBalance(280000, 0.005, 360, 180)
	if balance <= 140000 || balance >= 280000 {
		t.Errorf("unexpected mid-term balance %.2f", balance)
	}
	assertClose(t, "balance", balance, 198936.76, 0.01)
}

func TestAnnualDebtService(t *testing.T) {
	got := AnnualDebtService(280000, 0.06, 30)
	assertClose(t, "debt service", got, MonthlyPayment(280000, 0.005, 360)*12, 1e-9)
}

package pricing

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"pathsim/internal/simulation"
)

// nearZeroCov keeps the basket deterministic while staying positive definite.
func nearZeroCov(dim int) *mat.SymDense {
	cov := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		cov.SetSym(i, i, 1e-18)
	}
	return cov
}

func TestMonteCarloBasketOption_DeterministicCall(t *testing.T) {
	opt := MonteCarloBasketOption{
		Initial:          []float64{100, 100},
		Strike:           90,
		TimeToExpiration: 1.0,
		Rfr:              0.03,
		Cov:              nearZeroCov(2),
		NrPaths:          16,
		NrSteps:          50,
	}

	got, err := opt.Call(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With negligible noise both assets compound at 1 + r*dt.
	terminal := 100.0 * math.Pow(1+0.03/50, 50)
	want := math.Exp(-0.03) * (terminal - 90)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMonteCarloBasketOption_DeterministicPut(t *testing.T) {
	opt := MonteCarloBasketOption{
		Initial:          []float64{100, 100},
		Strike:           120,
		TimeToExpiration: 1.0,
		Rfr:              0.03,
		Cov:              nearZeroCov(2),
		NrPaths:          16,
		NrSteps:          50,
	}

	got, err := opt.Put(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	terminal := 100.0 * math.Pow(1+0.03/50, 50)
	want := math.Exp(-0.03) * (120 - terminal)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMonteCarloBasketOption_BadCovariance(t *testing.T) {
	opt := MonteCarloBasketOption{
		Initial:          []float64{100, 100},
		Strike:           90,
		TimeToExpiration: 1.0,
		Rfr:              0.03,
		Cov:              mat.NewSymDense(2, nil),
		NrPaths:          4,
		NrSteps:          10,
	}

	if _, err := opt.Call(42); !errors.Is(err, simulation.ErrNotPositiveDefinite) {
		t.Fatalf("expected ErrNotPositiveDefinite, got %v", err)
	}
}

package simulation

import (
	"math"
	"testing"
)

func TestMonteCarloPathSimulator_SimulatePaths(t *testing.T) {
	g := GeometricBrownianMotion{Drift: 0.02, Vola: 0.1, Dt: 0.25}
	sim := NewMonteCarloPathSimulator(8, 16)

	paths := sim.SimulatePaths(42, g, 100.0)

	if len(paths) != 8 {
		t.Fatalf("expected 8 paths, got %d", len(paths))
	}
	for i, p := range paths {
		if len(p) != 17 {
			t.Fatalf("path %d: expected 17 samples, got %d", i, len(p))
		}
		if p[0] != 100.0 {
			t.Fatalf("path %d: expected to start at 100, got %v", i, p[0])
		}
	}
}

func TestPathEvaluator_EvaluateAverage(t *testing.T) {
	// vola = 0 makes every path identical, so the average equals the
	// deterministic terminal value.
	g := GeometricBrownianMotion{Drift: 0.02, Vola: 0, Dt: 0.25}
	sim := NewMonteCarloPathSimulator(5, 16)

	eval := NewPathEvaluator(sim.SimulatePaths(42, g, 100.0))
	avg, ok := eval.EvaluateAverage(Terminal)
	if !ok {
		t.Fatal("expected an average over non-empty paths")
	}

	want := 100.0 * math.Pow(1+0.02*0.25, 16)
	if math.Abs(avg-want) > 1e-9*want {
		t.Fatalf("expected terminal average %v, got %v", want, avg)
	}
}

func TestPathEvaluator_EvaluateAverage_NoPaths(t *testing.T) {
	eval := NewPathEvaluator(nil)
	if _, ok := eval.EvaluateAverage(Terminal); ok {
		t.Fatal("expected ok=false for an empty path set")
	}
}

func TestPathEvaluator_Evaluate_KeepsAlignment(t *testing.T) {
	eval := NewPathEvaluator([][]float64{{1, 2}, {}, {3, 4}})
	values, ok := eval.Evaluate(Terminal)

	if len(values) != 3 || len(ok) != 3 {
		t.Fatalf("expected 3 aligned results, got %d values and %d flags", len(values), len(ok))
	}
	if !ok[0] || ok[1] || !ok[2] {
		t.Fatalf("expected flags [true false true], got %v", ok)
	}
	if values[0] != 2 || values[2] != 4 {
		t.Fatalf("expected terminal values 2 and 4, got %v", values)
	}
}

// Paths without a value still count toward the denominator of the average.
func TestPathEvaluator_EvaluateAverage_CountsAllPaths(t *testing.T) {
	eval := NewPathEvaluator([][]float64{{1, 2}, {3, 4}, {}})

	avg, ok := eval.EvaluateAverage(Terminal)
	if !ok {
		t.Fatal("expected an average")
	}
	if avg != 2 {
		t.Fatalf("expected (2+4)/3 = 2, got %v", avg)
	}
}

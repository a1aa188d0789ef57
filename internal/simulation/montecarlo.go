package simulation

import (
	"golang.org/x/exp/rand"
)

// PathGenerator produces a single simulated trajectory from an initial value.
type PathGenerator interface {
	SamplePath(initial float64, nrSteps int, src rand.Source) []float64
}

// MonteCarloPathSimulator drives repeated path generation for Monte Carlo
// estimation.
type MonteCarloPathSimulator struct {
	NrPaths int
	NrSteps int
}

func NewMonteCarloPathSimulator(nrPaths, nrSteps int) MonteCarloPathSimulator {
	return MonteCarloPathSimulator{NrPaths: nrPaths, NrSteps: nrSteps}
}

// SimulatePaths generates NrPaths trajectories with gen, all drawing from a
// single source seeded with seed.
func (s MonteCarloPathSimulator) SimulatePaths(seed uint64, gen PathGenerator, initial float64) [][]float64 {
	src := rand.NewSource(seed)

	paths := make([][]float64, 0, s.NrPaths)
	for i := 0; i < s.NrPaths; i++ {
		paths = append(paths, gen.SamplePath(initial, s.NrSteps, src))
	}
	return paths
}

// PathEvaluator applies payoff-style functionals across a set of simulated
// paths.
type PathEvaluator struct {
	Paths [][]float64
}

func NewPathEvaluator(paths [][]float64) PathEvaluator {
	return PathEvaluator{Paths: paths}
}

// Evaluate applies pathFn to every path, keeping positional alignment with
// Paths: ok[i] reports whether path i produced values[i].
func (e PathEvaluator) Evaluate(pathFn func(path []float64) (float64, bool)) (values []float64, ok []bool) {
	values = make([]float64, len(e.Paths))
	ok = make([]bool, len(e.Paths))
	for i, p := range e.Paths {
		values[i], ok[i] = pathFn(p)
	}
	return values, ok
}

// EvaluateAverage returns the mean of pathFn over the whole path set. Paths
// that produce no value contribute nothing to the sum but still count toward
// the denominator. ok is false when no path produced a value, or when there
// are no paths at all.
func (e PathEvaluator) EvaluateAverage(pathFn func(path []float64) (float64, bool)) (avg float64, ok bool) {
	if len(e.Paths) == 0 {
		return 0, false
	}

	total, n := 0.0, 0
	for _, p := range e.Paths {
		if v, valid := pathFn(p); valid {
			total += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(len(e.Paths)), true
}

// Terminal extracts the last value of a path, for terminal-payoff evaluation.
func Terminal(path []float64) (float64, bool) {
	if len(path) == 0 {
		return 0, false
	}
	return path[len(path)-1], true
}

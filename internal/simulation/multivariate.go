package simulation

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

var (
	ErrDimensionMismatch   = errors.New("initial values and drifts must have the same dimension")
	ErrNotPositiveDefinite = errors.New("covariance matrix is not positive definite")
)

// MultivariateGBM simulates correlated multi-asset GBM paths. The correlation
// structure comes from the covariance matrix of the per-step Brownian
// increments; gonum performs the Cholesky factorization internally.
type MultivariateGBM struct {
	initial []float64
	drifts  []float64
	noise   *distmv.Normal
	dt      float64
}

func NewMultivariateGBM(initial, drifts []float64, cov *mat.SymDense, dt float64, src rand.Source) (*MultivariateGBM, error) {
	if len(initial) != len(drifts) {
		return nil, ErrDimensionMismatch
	}

	zero := make([]float64, len(initial))
	noise, ok := distmv.NewNormal(zero, cov, src)
	if !ok {
		return nil, ErrNotPositiveDefinite
	}

	return &MultivariateGBM{
		initial: initial,
		drifts:  drifts,
		noise:   noise,
		dt:      dt,
	}, nil
}

func (m *MultivariateGBM) Dim() int {
	return len(m.initial)
}

// Step advances every asset price by one Euler increment given a correlated
// normal vector w.
func (m *MultivariateGBM) Step(st, w []float64) []float64 {
	next := make([]float64, len(st))
	sqrtDt := math.Sqrt(m.dt)
	for i := range st {
		next[i] = st[i] + st[i]*(m.drifts[i]*m.dt+sqrtDt*w[i])
	}
	return next
}

// SamplePath simulates one joint trajectory of nrSteps increments. The result
// has nrSteps+1 rows of Dim() prices each, the initial values first.
func (m *MultivariateGBM) SamplePath(nrSteps int) [][]float64 {
	path := make([][]float64, 0, nrSteps+1)

	start := make([]float64, m.Dim())
	copy(start, m.initial)
	path = append(path, start)

	w := make([]float64, m.Dim())
	for t := 0; t < nrSteps; t++ {
		m.noise.Rand(w)
		path = append(path, m.Step(path[len(path)-1], w))
	}
	return path
}

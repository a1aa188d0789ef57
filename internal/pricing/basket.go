package pricing

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"pathsim/internal/simulation"
)

// MonteCarloBasketOption prices a European option on the equally weighted
// average of correlated assets, simulated with multivariate GBM under the
// risk-neutral measure.
type MonteCarloBasketOption struct {
	Initial []float64
	Strike  float64
	// TimeToExpiration is (T - t) in years.
	TimeToExpiration float64
	Rfr              float64
	// Cov is the covariance of the per-step Brownian increments.
	Cov     *mat.SymDense
	NrPaths int
	NrSteps int
}

func (o MonteCarloBasketOption) dt() float64 {
	return o.TimeToExpiration / float64(o.NrSteps)
}

func (o MonteCarloBasketOption) discount() float64 {
	return math.Exp(-o.Rfr * o.TimeToExpiration)
}

func basketValue(prices []float64) float64 {
	total := 0.0
	for _, p := range prices {
		total += p
	}
	return total / float64(len(prices))
}

// Call estimates the basket call price from paths seeded with seed.
func (o MonteCarloBasketOption) Call(seed uint64) (float64, error) {
	return o.price(seed, func(terminal float64) float64 {
		return math.Max(terminal-o.Strike, 0)
	})
}

// Put estimates the basket put price from paths seeded with seed.
func (o MonteCarloBasketOption) Put(seed uint64) (float64, error) {
	return o.price(seed, func(terminal float64) float64 {
		return math.Max(o.Strike-terminal, 0)
	})
}

func (o MonteCarloBasketOption) price(seed uint64, payoff func(terminal float64) float64) (float64, error) {
	drifts := make([]float64, len(o.Initial))
	for i := range drifts {
		drifts[i] = o.Rfr
	}

	gbm, err := simulation.NewMultivariateGBM(o.Initial, drifts, o.Cov, o.dt(), rand.NewSource(seed))
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := 0; i < o.NrPaths; i++ {
		path := gbm.SamplePath(o.NrSteps)
		total += payoff(basketValue(path[len(path)-1]))
	}
	return o.discount() * total / float64(o.NrPaths), nil
}

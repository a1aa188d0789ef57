package pricing

import (
	"math"

	"pathsim/internal/simulation"
)

// MonteCarloEuropeanOption estimates European option prices by averaging
// discounted terminal payoffs over simulated risk-neutral GBM paths.
type MonteCarloEuropeanOption struct {
	Params    DerivativeParameter
	Simulator simulation.MonteCarloPathSimulator
}

func NewMonteCarloEuropeanOption(assetPrice, strike, timeToExpiration, rfr, vola float64, nrPaths, nrSteps int) MonteCarloEuropeanOption {
	return MonteCarloEuropeanOption{
		Params: DerivativeParameter{
			AssetPrice:       assetPrice,
			Strike:           strike,
			TimeToExpiration: timeToExpiration,
			Rfr:              rfr,
			Vola:             vola,
		},
		Simulator: simulation.NewMonteCarloPathSimulator(nrPaths, nrSteps),
	}
}

func (o MonteCarloEuropeanOption) dt() float64 {
	return o.Params.TimeToExpiration / float64(o.Simulator.NrSteps)
}

// gbm returns the risk-neutral dynamics: under the risk-neutral measure the
// drift equals the risk-free rate.
func (o MonteCarloEuropeanOption) gbm() simulation.GeometricBrownianMotion {
	return simulation.GeometricBrownianMotion{
		Drift: o.Params.Rfr,
		Vola:  o.Params.Vola,
		Dt:    o.dt(),
	}
}

func (o MonteCarloEuropeanOption) discount() float64 {
	return math.Exp(-o.Params.Rfr * o.Params.TimeToExpiration)
}

func (o MonteCarloEuropeanOption) callPayoff(path []float64) (float64, bool) {
	terminal, ok := simulation.Terminal(path)
	if !ok {
		return 0, false
	}
	return math.Max(terminal-o.Params.Strike, 0), true
}

func (o MonteCarloEuropeanOption) putPayoff(path []float64) (float64, bool) {
	terminal, ok := simulation.Terminal(path)
	if !ok {
		return 0, false
	}
	return math.Max(o.Params.Strike-terminal, 0), true
}

func (o MonteCarloEuropeanOption) createPaths(seed uint64) [][]float64 {
	return o.Simulator.SimulatePaths(seed, o.gbm(), o.Params.AssetPrice)
}

// Call estimates the call price from paths seeded with seed. ok is false
// when the simulator is configured with zero paths.
func (o MonteCarloEuropeanOption) Call(seed uint64) (float64, bool) {
	eval := simulation.NewPathEvaluator(o.createPaths(seed))
	avg, ok := eval.EvaluateAverage(o.callPayoff)
	return o.discount() * avg, ok
}

// Put estimates the put price from paths seeded with seed.
func (o MonteCarloEuropeanOption) Put(seed uint64) (float64, bool) {
	eval := simulation.NewPathEvaluator(o.createPaths(seed))
	avg, ok := eval.EvaluateAverage(o.putPayoff)
	return o.discount() * avg, ok
}

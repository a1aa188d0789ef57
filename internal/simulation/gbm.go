package simulation

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SimulatePaths generates nrPaths independent GBM price trajectories over
// nrSteps steps. Row 0 of the result holds price0 for every path; row t
// holds row t-1 scaled by exp(drift + vola*z_t) elementwise, so prices are
// log-normally distributed around the configured drift.
//
// Draws are not seeded; use SimulatePathsFrom for reproducible output.
func SimulatePaths(drift, vola, price0 float64, nrSteps, nrPaths int) *mat.Dense {
	src := rand.NewSource(uint64(time.Now().UnixNano()))
	return SimulatePathsFrom(src, drift, vola, price0, nrSteps, nrPaths)
}

// SimulatePathsFrom is SimulatePaths with an explicit random source.
// Invalid dimensions (nrSteps or nrPaths < 1) panic inside gonum/mat.
func SimulatePathsFrom(src rand.Source, drift, vola, price0 float64, nrSteps, nrPaths int) *mat.Dense {
	uniforms := rand.New(src)

	// Uniform samples mapped through the inverse normal CDF, then turned
	// into per-step multiplicative return factors.
	multipliers := mat.NewDense(nrSteps, nrPaths, nil)
	for t := 0; t < nrSteps; t++ {
		row := multipliers.RawRowView(t)
		for j := range row {
			z := distuv.UnitNormal.Quantile(uniforms.Float64())
			row[j] = math.Exp(drift + vola*z)
		}
	}

	prices := mat.NewDense(nrSteps, nrPaths, nil)
	first := prices.RawRowView(0)
	for j := range first {
		first[j] = price0
	}
	for t := 1; t < nrSteps; t++ {
		prev := prices.RawRowView(t - 1)
		curr := prices.RawRowView(t)
		mult := multipliers.RawRowView(t)
		for j := range curr {
			curr[j] = prev[j] * mult[j]
		}
	}
	return prices
}

// GeometricBrownianMotion models dS_t = S_t (mu dt + sigma dW_t) with an
// Euler step. Dt is the time increment per simulation step.
type GeometricBrownianMotion struct {
	Drift float64
	Vola  float64
	Dt    float64
}

// Step advances the price st by one increment given a standard normal draw z.
func (g GeometricBrownianMotion) Step(st, z float64) float64 {
	return st + st*(g.Drift*g.Dt+g.Vola*math.Sqrt(g.Dt)*z)
}

// SamplePath simulates one trajectory of nrSteps increments starting at
// price0. The returned slice has nrSteps+1 elements, price0 first.
func (g GeometricBrownianMotion) SamplePath(price0 float64, nrSteps int, src rand.Source) []float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	path := make([]float64, 0, nrSteps+1)
	path = append(path, price0)

	curr := price0
	for i := 0; i < nrSteps; i++ {
		curr = g.Step(curr, normal.Rand())
		path = append(path, curr)
	}
	return path
}

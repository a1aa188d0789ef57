package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DerivativeParameter carries the inputs shared by the analytic and Monte
// Carlo pricers.
type DerivativeParameter struct {
	// AssetPrice is the asset's price at time t.
	AssetPrice float64
	// Strike is the exercise price of the option.
	Strike float64
	// TimeToExpiration is (T - t) in years.
	TimeToExpiration float64
	// Rfr is the annualized risk-free interest rate.
	Rfr float64
	// Vola is the annualized standard deviation of the asset's returns.
	Vola float64
}

func cdf(d float64) float64 {
	return distuv.UnitNormal.CDF(d)
}

// BlackScholesMerton prices European put and call options on stocks.
// https://en.wikipedia.org/wiki/Black-Scholes_model
type BlackScholesMerton struct{}

func (BlackScholesMerton) Call(dp DerivativeParameter) float64 {
	sigmaExp := dp.Vola * math.Sqrt(dp.TimeToExpiration)
	d1 := (math.Log(dp.AssetPrice/dp.Strike) + (dp.Rfr+dp.Vola*dp.Vola/2)*dp.TimeToExpiration) / sigmaExp
	d2 := d1 - sigmaExp
	return cdf(d1)*dp.AssetPrice - cdf(d2)*dp.Strike*math.Exp(-dp.Rfr*dp.TimeToExpiration)
}

func (BlackScholesMerton) Put(dp DerivativeParameter) float64 {
	sigmaExp := dp.Vola * math.Sqrt(dp.TimeToExpiration)
	d1 := (math.Log(dp.AssetPrice/dp.Strike) + (dp.Rfr+dp.Vola*dp.Vola/2)*dp.TimeToExpiration) / sigmaExp
	d2 := d1 - sigmaExp
	return cdf(-d2)*dp.Strike*math.Exp(-dp.Rfr*dp.TimeToExpiration) - cdf(-d1)*dp.AssetPrice
}

// Black76 prices European put and call options on futures.
// https://en.wikipedia.org/wiki/Black_model
type Black76 struct{}

func (Black76) Call(dp DerivativeParameter) float64 {
	sigmaExp := dp.Vola * math.Sqrt(dp.TimeToExpiration)
	d1 := (math.Log(dp.AssetPrice/dp.Strike) + dp.Vola*dp.Vola/2) / sigmaExp
	d2 := d1 - sigmaExp
	return math.Exp(-dp.Rfr*dp.TimeToExpiration) * (cdf(d1)*dp.AssetPrice - cdf(d2)*dp.Strike)
}

func (Black76) Put(dp DerivativeParameter) float64 {
	sigmaExp := dp.Vola * math.Sqrt(dp.TimeToExpiration)
	d1 := (math.Log(dp.AssetPrice/dp.Strike) + dp.Vola*dp.Vola/2) / sigmaExp
	d2 := d1 - sigmaExp
	return math.Exp(-dp.Rfr*dp.TimeToExpiration) * (cdf(-d2)*dp.Strike - cdf(-d1)*dp.AssetPrice)
}

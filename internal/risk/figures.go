package risk

import (
	"errors"
	"math"
)

var ErrZeroDivision = errors.New("division by 0")

// SharpeRatio is the ratio of the expected excess of the asset return over
// the benchmark return, to the risk of the asset.
// https://en.wikipedia.org/wiki/Sharpe_ratio
//
// tolerance guards the division: an asset deviation with absolute value at
// or below it yields ErrZeroDivision. Pass 0 to reject only an exact zero.
func SharpeRatio(assetReturn, benchmarkReturn, assetStd, tolerance float64) (float64, error) {
	if math.Abs(assetStd) <= tolerance {
		return 0, ErrZeroDivision
	}
	return (assetReturn - benchmarkReturn) / assetStd, nil
}

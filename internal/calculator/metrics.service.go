package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
)

const TradingDaysPerYear = 252

// AnnualizedVolatility scales the sample stdev of daily returns by sqrt(252).
func AnnualizedVolatility(returns []float64) (float64, error) {
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, err
	}
	return stdev * math.Sqrt(TradingDaysPerYear), nil
}

// TotalReturn compounds a daily return series into the total return over the
// whole window.
func TotalReturn(returns []float64) float64 {
	total := 1.0
	for _, r := range returns {
		total *= 1 + r
	}
	return total - 1
}

// AnnualizeReturn converts a total return over nDays trading days into an
// annualized rate.
func AnnualizeReturn(totalReturn float64, nDays int) float64 {
	return math.Pow(1+totalReturn, TradingDaysPerYear/float64(nDays)) - 1
}

package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/montanaflynn/stats"
)

// weightSumTolerance bounds how far portfolio weights may drift from 100.
const weightSumTolerance = 0.01

// ValidatePortfolioSpec rejects malformed portfolio requests: mismatched
// ticker/weight counts, an empty list, or weights that do not sum to 100
// within tolerance. Duplicate tickers are not rejected - aggregation sums
// them implicitly.
func ValidatePortfolioSpec(spec domain.PortfolioSpec) error {
	if len(spec.Tickers) != len(spec.Weights) {
		return domain.ValidationError{
			Err: fmt.Errorf("tickers and weights must have same length, got %d tickers and %d weights",
				len(spec.Tickers), len(spec.Weights)),
		}
	}
	if len(spec.Tickers) == 0 {
		return domain.ValidationError{Err: fmt.Errorf("no tickers provided")}
	}

	total, err := stats.Sum(spec.Weights)
	if err != nil {
		return domain.ValidationError{Err: err}
	}
	if math.Abs(total-100) > weightSumTolerance {
		return domain.ValidationError{
			Err: fmt.Errorf("weights must sum to 100, current sum: %v", total),
		}
	}

	return nil
}

// BuildPortfolioReturns scales each asset series by its percentage weight and
// folds them into one composite series, inner-joining on dates pair by pair.
// series and weights are parallel; callers run ValidatePortfolioSpec first.
func BuildPortfolioReturns(series []domain.ReturnSeries, weights []float64) (domain.ReturnSeries, error) {
	var composite domain.ReturnSeries
	for i, s := range series {
		weighted := s.Scale(weights[i] / 100)
		if composite == nil {
			composite = weighted
			continue
		}
		composite = innerJoinSum(composite, weighted)
	}

	if len(composite) < MinObservationsFactor {
		return nil, domain.InsufficientDataError{
			Err: fmt.Errorf("insufficient data for portfolio analysis, only %d data points available", len(composite)),
		}
	}

	return composite, nil
}

// CalculatePortfolioCAPM aligns the composite series against the market with
// the stricter 30-row minimum, then delegates to the single-asset estimator.
func CalculatePortfolioCAPM(composite, market domain.ReturnSeries, riskFreeRate float64) (*domain.CAPMResult, error) {
	aligned, err := AlignPair(composite, market, MinObservationsFactor)
	if err != nil {
		return nil, err
	}

	alignedComposite, alignedMarket := seriesPairFromAligned(aligned)
	return CalculateCAPM(alignedComposite, alignedMarket, riskFreeRate)
}

func innerJoinSum(a, b domain.ReturnSeries) domain.ReturnSeries {
	bByDate := map[string]float64{}
	for _, p := range b {
		bByDate[p.Date.Format(time.DateOnly)] = p.Value
	}

	out := domain.ReturnSeries{}
	for _, p := range a {
		if bValue, ok := bByDate[p.Date.Format(time.DateOnly)]; ok {
			out = append(out, domain.ReturnPoint{Date: p.Date, Value: p.Value + bValue})
		}
	}
	return out
}

func seriesPairFromAligned(d *domain.AlignedDataset) (domain.ReturnSeries, domain.ReturnSeries) {
	a := make(domain.ReturnSeries, d.NumRows())
	b := make(domain.ReturnSeries, d.NumRows())
	for i := 0; i < d.NumRows(); i++ {
		a[i] = domain.ReturnPoint{Date: d.Dates[i], Value: d.Columns[0][i]}
		b[i] = domain.ReturnPoint{Date: d.Dates[i], Value: d.Columns[1][i]}
	}
	return a, b
}

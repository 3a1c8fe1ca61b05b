package internal

import (
	"fmt"
	"sort"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"
)

// ReturnsFromPrices converts an adjusted close sequence into daily percent
// changes, dropping the undefined leading entry.
func ReturnsFromPrices(prices []domain.AssetPrice) (domain.ReturnSeries, error) {
	if len(prices) < 2 {
		return nil, domain.InsufficientDataError{
			Err: fmt.Errorf("need at least 2 prices to compute returns, got %d", len(prices)),
		}
	}

	sorted := make([]domain.AssetPrice, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make(domain.ReturnSeries, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Price
		if !prev.IsPositive() {
			return nil, domain.DataUnavailableError{
				Err: fmt.Errorf("non-positive price for %s on %s", sorted[i-1].Symbol, sorted[i-1].Date.Format("2006-01-02")),
			}
		}
		ret := sorted[i].Price.Sub(prev).Div(prev).InexactFloat64()
		out = append(out, domain.ReturnPoint{
			Date:  util.Midnight(sorted[i].Date),
			Value: ret,
		})
	}

	return out, nil
}

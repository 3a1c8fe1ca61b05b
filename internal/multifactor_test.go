package internal

import (
	"math"
	"testing"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_CalculateFactorExposure(t *testing.T) {
	// factors on the same business days as the asset so alignment is exact
	buildFactors := func(start time.Time, n int) domain.FactorSeries {
		dates := businessDaySeries(start, n, 0)
		out := domain.FactorSeries{}
		for i, p := range dates {
			out = append(out, domain.FactorPoint{
				Date:  p.Date,
				MktRF: 0.01 * math.Sin(float64(i)),
				SMB:   0.005 * math.Cos(0.7*float64(i)),
				HML:   0.004 * math.Sin(1.3*float64(i)+1),
				RF:    0.0001,
			})
		}
		return out
	}

	t.Run("recovers known loadings", func(t *testing.T) {
		start := util.NewDate(2024, 1, 1)
		factors := buildFactors(start, 60)
		asset := businessDaySeriesFunc(start, 60, func(i int) float64 {
			f := factors[i]
			return f.RF + 1.2*f.MktRF + 0.5*f.SMB - 0.3*f.HML + 0.0002
		})

		result := CalculateFactorExposure(asset, factors)

		require.False(t, result.Placeholder)
		require.Equal(t, 60, result.NObservations)
		require.InDelta(t, 1.2, result.MarketBeta, 1e-6)
		require.InDelta(t, 0.5, result.SMBBeta, 1e-6)
		require.InDelta(t, -0.3, result.HMLBeta, 1e-6)
		require.InDelta(t, 0.0002*252, result.Alpha, 1e-6)
		require.InDelta(t, 1.0, result.RSquared, 1e-9)
	})

	t.Run("short overlap falls back to placeholder", func(t *testing.T) {
		start := util.NewDate(2024, 1, 1)
		asset := businessDaySeries(start, 10, 0.01)
		factors := buildFactors(start, 60)

		result := CalculateFactorExposure(asset, factors)

		require.True(t, result.Placeholder)
		require.Equal(t, 10, result.NObservations)
	})

	t.Run("zero overlap placeholder reports nominal sample size", func(t *testing.T) {
		asset := businessDaySeries(util.NewDate(2020, 1, 1), 40, 0.01)
		factors := buildFactors(util.NewDate(2024, 1, 1), 60)

		result := CalculateFactorExposure(asset, factors)

		require.True(t, result.Placeholder)
		require.Equal(t, placeholderObservations, result.NObservations)
	})

	t.Run("degenerate regressors fall back to placeholder", func(t *testing.T) {
		start := util.NewDate(2024, 1, 1)
		dates := businessDaySeries(start, 40, 0)
		factors := domain.FactorSeries{}
		for _, p := range dates {
			// MKT_RF and SMB perfectly collinear with the intercept
			factors = append(factors, domain.FactorPoint{
				Date: p.Date, MktRF: 0.001, SMB: 0.001, HML: 0.001, RF: 0.0001,
			})
		}
		asset := businessDaySeriesFunc(start, 40, func(i int) float64 {
			return 0.001 * float64(i%3)
		})

		result := CalculateFactorExposure(asset, factors)

		require.True(t, result.Placeholder)
		require.Equal(t, 40, result.NObservations)
	})
}

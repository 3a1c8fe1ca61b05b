package internal

import (
	"math"
	"testing"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// businessDaySeries builds n observations starting at start, skipping
// weekends, all with the given value.
func businessDaySeries(start time.Time, n int, value float64) domain.ReturnSeries {
	out := domain.ReturnSeries{}
	d := start
	for len(out) < n {
		if util.IsBusinessDay(d) {
			out = append(out, domain.ReturnPoint{Date: d, Value: value})
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}

// businessDaySeriesFunc is businessDaySeries with a per-index value.
func businessDaySeriesFunc(start time.Time, n int, value func(i int) float64) domain.ReturnSeries {
	out := businessDaySeries(start, n, 0)
	for i := range out {
		out[i].Value = value(i)
	}
	return out
}

func Test_AlignPair(t *testing.T) {
	t.Run("inner join keeps only shared dates", func(t *testing.T) {
		a := domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 2), Value: 0.01},
			{Date: util.NewDate(2024, 1, 3), Value: 0.02},
			{Date: util.NewDate(2024, 1, 4), Value: 0.03},
		}
		b := domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 3), Value: 0.05},
			{Date: util.NewDate(2024, 1, 4), Value: 0.06},
			{Date: util.NewDate(2024, 1, 5), Value: 0.07},
		}

		out, err := AlignPair(a, b, 2)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			[]time.Time{util.NewDate(2024, 1, 3), util.NewDate(2024, 1, 4)},
			out.Dates,
		))
		require.Equal(t, []float64{0.02, 0.03}, out.Column("asset"))
		require.Equal(t, []float64{0.05, 0.06}, out.Column("market"))
	})

	t.Run("non-finite rows are dropped", func(t *testing.T) {
		a := domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 2), Value: 0.01},
			{Date: util.NewDate(2024, 1, 3), Value: math.NaN()},
		}
		b := domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 2), Value: 0.02},
			{Date: util.NewDate(2024, 1, 3), Value: 0.03},
		}

		out, err := AlignPair(a, b, 1)
		require.NoError(t, err)
		require.Equal(t, 1, out.NumRows())
	})

	t.Run("zero overlap is a hard failure", func(t *testing.T) {
		a := businessDaySeries(util.NewDate(2024, 1, 1), 20, 0.01)
		b := businessDaySeries(util.NewDate(2024, 6, 3), 20, 0.01)

		_, err := AlignPair(a, b, 1)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})

	t.Run("below minimum rows", func(t *testing.T) {
		a := businessDaySeries(util.NewDate(2024, 1, 1), 9, 0.01)
		b := businessDaySeries(util.NewDate(2024, 1, 1), 9, 0.01)

		_, err := AlignPair(a, b, MinObservationsCAPM)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})
}

func Test_ResampleBusinessDaily(t *testing.T) {
	t.Run("forward fills gaps and drops weekends", func(t *testing.T) {
		// Jan 5 2024 is a Friday, Jan 8 a Monday
		s := domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 5), Value: 0.01},
			{Date: util.NewDate(2024, 1, 6), Value: 0.99}, // Saturday observation
			{Date: util.NewDate(2024, 1, 10), Value: 0.03},
		}

		out := ResampleBusinessDaily(s)

		require.Equal(t, "", cmp.Diff(domain.ReturnSeries{
			{Date: util.NewDate(2024, 1, 5), Value: 0.01},
			{Date: util.NewDate(2024, 1, 8), Value: 0.99},
			{Date: util.NewDate(2024, 1, 9), Value: 0.99},
			{Date: util.NewDate(2024, 1, 10), Value: 0.03},
		}, out))
	})

	t.Run("empty series", func(t *testing.T) {
		require.Empty(t, ResampleBusinessDaily(domain.ReturnSeries{}))
	})
}

func Test_AlignFactors(t *testing.T) {
	factorSeries := func(start time.Time, n int) domain.FactorSeries {
		out := domain.FactorSeries{}
		for i := 0; i < n; i++ {
			out = append(out, domain.FactorPoint{
				Date:  start.AddDate(0, 0, i), // calendar days, like a raw factor feed
				MktRF: 0.001 * float64(i),
				SMB:   0.0001,
				HML:   -0.0001,
				RF:    0.0002,
			})
		}
		return out
	}

	t.Run("intersects on business days", func(t *testing.T) {
		asset := businessDaySeries(util.NewDate(2024, 1, 1), 40, 0.01)
		factors := factorSeries(util.NewDate(2024, 1, 1), 70)

		out, err := AlignFactors(asset, factors, MinObservationsFactor)
		require.NoError(t, err)

		require.GreaterOrEqual(t, out.NumRows(), MinObservationsFactor)
		for _, d := range out.Dates {
			require.True(t, util.IsBusinessDay(d))
		}
		require.Len(t, out.Column("rf"), out.NumRows())
	})

	t.Run("insufficient overlap reports actual count", func(t *testing.T) {
		asset := businessDaySeries(util.NewDate(2024, 1, 1), 10, 0.01)
		factors := factorSeries(util.NewDate(2024, 1, 1), 14)

		out, err := AlignFactors(asset, factors, MinObservationsFactor)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
		require.Equal(t, 10, out.NumRows())
	})

	t.Run("zero overlap returns empty dataset with error", func(t *testing.T) {
		asset := businessDaySeries(util.NewDate(2020, 1, 1), 10, 0.01)
		factors := factorSeries(util.NewDate(2024, 1, 1), 14)

		out, err := AlignFactors(asset, factors, MinObservationsFactor)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
		require.Equal(t, 0, out.NumRows())
	})
}

package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FitOLS(t *testing.T) {
	t.Run("simple regression against hand-computed values", func(t *testing.T) {
		// x = 1..4, y = [2 4 5 8]: slope 1.9, intercept 0, rss 0.70, tss 18.75
		y := []float64{2, 4, 5, 8}
		x := []float64{1, 2, 3, 4}

		fit, err := FitOLS(y, x)
		require.NoError(t, err)

		require.Equal(t, 4, fit.NObservations)
		require.InDelta(t, 0.0, fit.Coefficients[0], 1e-9)
		require.InDelta(t, 1.9, fit.Coefficients[1], 1e-9)
		require.InDelta(t, math.Sqrt(0.525), fit.StdErrors[0], 1e-9)
		require.InDelta(t, math.Sqrt(0.07), fit.StdErrors[1], 1e-9)
		require.InDelta(t, 0.9626667, fit.RSquared, 1e-6)
		require.InDelta(t, 7.18131, fit.TValues[1], 1e-4)
		require.InDelta(t, 0.018839, fit.PValues[1], 1e-5)
		require.InDelta(t, 51.5714, fit.FStatistic, 1e-3)
		// for a single regressor the F test and the slope t test agree
		require.InDelta(t, fit.PValues[1], fit.FPValue, 1e-9)
		require.InDelta(t, 8.379633, fit.AIC, 1e-5)
		require.InDelta(t, 7.152222, fit.BIC, 1e-5)
	})

	t.Run("perfect fit", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := make([]float64, len(x))
		for i, v := range x {
			y[i] = 2*v + 1
		}

		fit, err := FitOLS(y, x)
		require.NoError(t, err)

		require.InDelta(t, 1.0, fit.Coefficients[0], 1e-9)
		require.InDelta(t, 2.0, fit.Coefficients[1], 1e-9)
		require.InDelta(t, 1.0, fit.RSquared, 1e-9)
		// QR may leave a residual of pure rounding noise, so the F statistic
		// is either infinite or merely enormous
		require.True(t, math.IsInf(fit.FStatistic, 1) || fit.FStatistic > 1e6)
		require.InDelta(t, 0.0, fit.FPValue, 1e-9)
	})

	t.Run("constant dependent variable", func(t *testing.T) {
		y := []float64{3, 3, 3, 3, 3}
		x := []float64{1, 2, 3, 4, 5}

		fit, err := FitOLS(y, x)
		require.NoError(t, err)

		require.InDelta(t, 3.0, fit.Coefficients[0], 1e-9)
		require.InDelta(t, 0.0, fit.Coefficients[1], 1e-9)
		require.Equal(t, 0.0, fit.RSquared)
		require.Equal(t, 0.0, fit.FStatistic)
		require.Equal(t, 1.0, fit.FPValue)
	})

	t.Run("constant dependent variable with rounding noise", func(t *testing.T) {
		// a constant that is not exactly representable: summing it leaves the
		// mean, and hence tss, a few ulps away from zero
		c := 0.001 - 0.04/252
		y := make([]float64, 50)
		x := make([]float64, 50)
		for i := range y {
			y[i] = c
			x[i] = 0.001 + 0.002*math.Cos(float64(i))
		}

		fit, err := FitOLS(y, x)
		require.NoError(t, err)

		require.InDelta(t, c, fit.Coefficients[0], 1e-12)
		require.InDelta(t, 0.0, fit.Coefficients[1], 1e-9)
		require.Equal(t, 0.0, fit.RSquared)
		require.Equal(t, 0.0, fit.FStatistic)
		require.Equal(t, 1.0, fit.FPValue)
	})

	t.Run("multiple regressors", func(t *testing.T) {
		n := 40
		x1 := make([]float64, n)
		x2 := make([]float64, n)
		y := make([]float64, n)
		for i := 0; i < n; i++ {
			x1[i] = math.Sin(float64(i))
			x2[i] = math.Cos(0.7 * float64(i))
			y[i] = 0.5 + 1.5*x1[i] - 2.0*x2[i]
		}

		fit, err := FitOLS(y, x1, x2)
		require.NoError(t, err)

		require.Len(t, fit.Coefficients, 3)
		require.InDelta(t, 0.5, fit.Coefficients[0], 1e-9)
		require.InDelta(t, 1.5, fit.Coefficients[1], 1e-9)
		require.InDelta(t, -2.0, fit.Coefficients[2], 1e-9)
	})

	t.Run("collinear regressors", func(t *testing.T) {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{2, 4, 5, 8, 9}

		_, err := FitOLS(y, x, x)
		require.Error(t, err)
	})

	t.Run("too few observations", func(t *testing.T) {
		_, err := FitOLS([]float64{1, 2}, []float64{1, 2})
		require.Error(t, err)
	})

	t.Run("no regressors", func(t *testing.T) {
		_, err := FitOLS([]float64{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := FitOLS([]float64{1, 2, 3}, []float64{1, 2})
		require.Error(t, err)
	})
}

func Test_Metrics(t *testing.T) {
	t.Run("total return compounds", func(t *testing.T) {
		total := TotalReturn([]float64{0.1, -0.05})
		require.InDelta(t, 1.1*0.95-1, total, 1e-12)
	})

	t.Run("annualize constant daily return", func(t *testing.T) {
		r := 0.001
		total := math.Pow(1+r, 50) - 1
		annualized := AnnualizeReturn(total, 50)
		require.InDelta(t, math.Pow(1+r, 252)-1, annualized, 1e-9)
	})

	t.Run("annualized volatility scales by root 252", func(t *testing.T) {
		returns := []float64{0.01, -0.01, 0.02, -0.02, 0.01, -0.01}
		vol, err := AnnualizedVolatility(returns)
		require.NoError(t, err)
		require.Greater(t, vol, 0.0)
	})
}

package internal

import (
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/calculator"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/montanaflynn/stats"
)

// confidenceZ is the 95% normal critical value. Intentionally not a
// t-distribution quantile - the interval uses the normal approximation.
const confidenceZ = 1.96

// CalculateCAPM fits excess asset returns against excess market returns by
// OLS and derives the annualized quantities around the fit. riskFreeRate is
// an annualized decimal (0.04 for 4%). Alignment and fit failures surface as
// typed errors; this path never substitutes a default result.
func CalculateCAPM(asset, market domain.ReturnSeries, riskFreeRate float64) (*domain.CAPMResult, error) {
	aligned, err := AlignPair(asset, market, MinObservationsCAPM)
	if err != nil {
		return nil, err
	}

	assetReturns := aligned.Column("asset")
	marketReturns := aligned.Column("market")
	n := aligned.NumRows()

	dailyRf := riskFreeRate / calculator.TradingDaysPerYear
	excessAsset := make([]float64, n)
	excessMarket := make([]float64, n)
	for i := 0; i < n; i++ {
		excessAsset[i] = assetReturns[i] - dailyRf
		excessMarket[i] = marketReturns[i] - dailyRf
	}

	fit, err := calculator.FitOLS(excessAsset, excessMarket)
	if err != nil {
		return nil, domain.RegressionError{Err: err}
	}

	beta := fit.Coefficients[1]
	alphaAnnualized := fit.Coefficients[0] * calculator.TradingDaysPerYear

	actualReturn := calculator.AnnualizeReturn(calculator.TotalReturn(assetReturns), n)

	meanExcessMarket, err := stats.Mean(excessMarket)
	if err != nil {
		return nil, domain.RegressionError{Err: err}
	}
	marketPremium := meanExcessMarket * calculator.TradingDaysPerYear
	expectedReturn := riskFreeRate + beta*marketPremium

	stdError := fit.StdErrors[1]

	return &domain.CAPMResult{
		Beta:           beta,
		Alpha:          alphaAnnualized,
		RSquared:       fit.RSquared,
		ExpectedReturn: expectedReturn,
		ActualReturn:   actualReturn,
		TreasuryYield:  riskFreeRate,
		MarketPremium:  marketPremium,
		PValue:         fit.PValues[1],
		StdError:       stdError,
		ConfidenceInterval: [2]float64{
			beta - confidenceZ*stdError,
			beta + confidenceZ*stdError,
		},
		NObservations: n,
	}, nil
}

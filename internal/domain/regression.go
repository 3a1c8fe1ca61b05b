package domain

// CAPMResult is the single-factor regression output for one asset (or one
// composite portfolio series) against the market proxy.
type CAPMResult struct {
	Beta               float64
	Alpha              float64 // annualized
	RSquared           float64
	ExpectedReturn     float64 // annualized, rf + beta * market premium
	ActualReturn       float64 // annualized compounded return over the window
	TreasuryYield      float64
	MarketPremium      float64
	PValue             float64
	StdError           float64
	ConfidenceInterval [2]float64 // beta +/- 1.96 * std error
	NObservations      int
}

type FactorPValues struct {
	MKT float64
	SMB float64
	HML float64
}

type RegressionDiagnostics struct {
	FStatistic float64
	FPValue    float64
	AIC        float64
	BIC        float64
}

// FactorExposureResult is the three-factor regression output. When Placeholder
// is set the numbers were drawn from plausible ranges because the real
// estimation was infeasible - they are non-authoritative and must never be
// treated as a genuine fit.
type FactorExposureResult struct {
	MarketBeta    float64
	SMBBeta       float64
	HMLBeta       float64
	Alpha         float64 // annualized
	RSquared      float64
	PValues       FactorPValues
	NObservations int
	Diagnostics   RegressionDiagnostics
	Placeholder   bool
}

// PortfolioSpec is an ordered list of tickers with percentage weights.
// Weights must sum to 100 within tolerance; duplicate tickers are allowed
// and summed implicitly by aggregation.
type PortfolioSpec struct {
	Tickers []string
	Weights []float64
}

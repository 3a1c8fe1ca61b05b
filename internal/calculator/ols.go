package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// tssNoiseTolerance is the relative threshold below which the total sum of
// squares is indistinguishable from float64 rounding noise.
const tssNoiseTolerance = 1e-24

// RegressionFit is the output of an ordinary least squares fit with an
// intercept term. Index 0 of every per-coefficient slice is the intercept,
// followed by the regressors in the order they were passed.
type RegressionFit struct {
	Coefficients  []float64
	StdErrors     []float64
	TValues       []float64
	PValues       []float64
	RSquared      float64
	FStatistic    float64
	FPValue       float64
	AIC           float64
	BIC           float64
	NObservations int
}

// FitOLS regresses y on the given regressor columns, adding an intercept.
// Coefficient p-values use a two-sided t test on n-k degrees of freedom; the
// model F test compares against the intercept-only model. AIC/BIC follow the
// Gaussian log-likelihood convention so results line up with the usual
// statistics packages.
func FitOLS(y []float64, regressors ...[]float64) (*RegressionFit, error) {
	n := len(y)
	k := len(regressors) + 1

	if len(regressors) == 0 {
		return nil, fmt.Errorf("at least one regressor required")
	}
	for i, reg := range regressors {
		if len(reg) != n {
			return nil, fmt.Errorf("regressor %d has %d rows, expected %d", i, len(reg), n)
		}
	}
	if n <= k {
		return nil, fmt.Errorf("need more than %d observations to fit %d coefficients, got %d", k, k, n)
	}

	x := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
		for j, reg := range regressors {
			x.Set(i, j+1, reg[i])
		}
	}
	yVec := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yVec); err != nil {
		return nil, fmt.Errorf("singular design matrix: %w", err)
	}

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	yMean := 0.0
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	rss := 0.0
	tss := 0.0
	yss := 0.0
	for i := 0; i < n; i++ {
		resid := y[i] - fitted.AtVec(i)
		rss += resid * resid
		dev := y[i] - yMean
		tss += dev * dev
		yss += y[i] * y[i]
	}
	// Summation rounding can leave tss a hair above zero when y is constant.
	// Genuine variance is many orders of magnitude above this threshold.
	if tss <= tssNoiseTolerance*yss {
		tss = 0
	}
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("singular design matrix: %w", err)
	}

	dof := float64(n - k)
	sigma2 := rss / dof
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}

	coefficients := make([]float64, k)
	stdErrors := make([]float64, k)
	tValues := make([]float64, k)
	pValues := make([]float64, k)
	for j := 0; j < k; j++ {
		coefficients[j] = beta.AtVec(j)
		stdErrors[j] = math.Sqrt(sigma2 * xtxInv.At(j, j))
		switch {
		case stdErrors[j] > 0:
			tValues[j] = coefficients[j] / stdErrors[j]
			pValues[j] = 2 * tDist.Survival(math.Abs(tValues[j]))
		case coefficients[j] == 0:
			tValues[j] = 0
			pValues[j] = 1
		default:
			tValues[j] = math.Inf(int(math.Copysign(1, coefficients[j])))
			pValues[j] = 0
		}
	}

	// A constant dependent variable fits exactly with zero slopes; report no
	// variance explained rather than a 0/0. The explained sum is clamped at
	// zero so fStat can never go negative, which distuv.F.Survival rejects.
	rSquared := 0.0
	fStat := 0.0
	fPValue := 1.0
	if tss > 0 {
		explained := tss - rss
		if explained < 0 {
			explained = 0
		}
		rSquared = explained / tss
		if sigma2 > 0 {
			fStat = (explained / float64(k-1)) / sigma2
			fDist := distuv.F{D1: float64(k - 1), D2: dof}
			fPValue = fDist.Survival(fStat)
		} else {
			fStat = math.Inf(1)
			fPValue = 0
		}
	}

	logLik := -float64(n) / 2 * (math.Log(2*math.Pi) + math.Log(rss/float64(n)) + 1)
	aic := -2*logLik + 2*float64(k)
	bic := -2*logLik + float64(k)*math.Log(float64(n))

	return &RegressionFit{
		Coefficients:  coefficients,
		StdErrors:     stdErrors,
		TValues:       tValues,
		PValues:       pValues,
		RSquared:      rSquared,
		FStatistic:    fStat,
		FPValue:       fPValue,
		AIC:           aic,
		BIC:           bic,
		NObservations: n,
	}, nil
}

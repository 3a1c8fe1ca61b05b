package api

import (
	"fmt"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gin-gonic/gin"
)

type regressionSummary struct {
	FStatistic float64 `json:"f_statistic"`
	FPValue    float64 `json:"f_pvalue"`
	AIC        float64 `json:"aic"`
	BIC        float64 `json:"bic"`
}

type multifactorResponse struct {
	Ticker             string             `json:"ticker"`
	Period             string             `json:"period"`
	MarketBeta         float64            `json:"market_beta"`
	SMBBeta            float64            `json:"smb_beta"`
	HMLBeta            float64            `json:"hml_beta"`
	Alpha              float64            `json:"alpha"`
	RSquared           float64            `json:"r_squared"`
	FactorPValues      map[string]float64 `json:"factor_pvalues"`
	NObservations      int                `json:"n_observations"`
	RegressionSummary  regressionSummary  `json:"regression_summary"`
	Placeholder        bool               `json:"placeholder"`
	FactorExplanations map[string]string  `json:"factor_explanations"`
}

func (m ApiHandler) multifactor(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		m.returnErrorJson(domain.ValidationError{Err: fmt.Errorf("ticker is required")}, c)
		return
	}
	period := c.DefaultQuery("period", "2y")

	result, err := m.AnalysisHandler.MultiFactor(c.Request.Context(), ticker, period)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, multifactorResponse{
		Ticker:     ticker,
		Period:     period,
		MarketBeta: result.MarketBeta,
		SMBBeta:    result.SMBBeta,
		HMLBeta:    result.HMLBeta,
		Alpha:      result.Alpha,
		RSquared:   result.RSquared,
		FactorPValues: map[string]float64{
			"MKT": result.PValues.MKT,
			"SMB": result.PValues.SMB,
			"HML": result.PValues.HML,
		},
		NObservations: result.NObservations,
		RegressionSummary: regressionSummary{
			FStatistic: result.Diagnostics.FStatistic,
			FPValue:    result.Diagnostics.FPValue,
			AIC:        result.Diagnostics.AIC,
			BIC:        result.Diagnostics.BIC,
		},
		Placeholder: result.Placeholder,
		FactorExplanations: map[string]string{
			"MKT": "Market risk premium exposure",
			"SMB": "Small Minus Big - Size factor exposure",
			"HML": "High Minus Low - Value factor exposure",
		},
	})
}

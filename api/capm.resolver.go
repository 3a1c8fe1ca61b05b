package api

import (
	"fmt"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gin-gonic/gin"
)

type capmInterpretation struct {
	BetaMeaning     string `json:"beta_meaning"`
	AlphaMeaning    string `json:"alpha_meaning"`
	RSquaredMeaning string `json:"r_squared_meaning"`
}

type capmResponse struct {
	Ticker             string             `json:"ticker"`
	Period             string             `json:"period"`
	Beta               float64            `json:"beta"`
	Alpha              float64            `json:"alpha"`
	RSquared           float64            `json:"r_squared"`
	ExpectedReturn     float64            `json:"expected_return"`
	ActualReturn       float64            `json:"actual_return"`
	TreasuryYield      float64            `json:"treasury_yield"`
	MarketPremium      float64            `json:"market_premium"`
	PValue             float64            `json:"p_value"`
	StdError           float64            `json:"std_error"`
	ConfidenceInterval [2]float64         `json:"confidence_interval"`
	NObservations      int                `json:"n_observations"`
	Interpretation     capmInterpretation `json:"interpretation"`
}

func (m ApiHandler) capm(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		m.returnErrorJson(domain.ValidationError{Err: fmt.Errorf("ticker is required")}, c)
		return
	}
	period := c.DefaultQuery("period", "2y")

	result, err := m.AnalysisHandler.CAPM(c.Request.Context(), ticker, period)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, capmResponse{
		Ticker:             ticker,
		Period:             period,
		Beta:               result.Beta,
		Alpha:              result.Alpha,
		RSquared:           result.RSquared,
		ExpectedReturn:     result.ExpectedReturn,
		ActualReturn:       result.ActualReturn,
		TreasuryYield:      result.TreasuryYield,
		MarketPremium:      result.MarketPremium,
		PValue:             result.PValue,
		StdError:           result.StdError,
		ConfidenceInterval: result.ConfidenceInterval,
		NObservations:      result.NObservations,
		Interpretation: capmInterpretation{
			BetaMeaning:     "Measures sensitivity to market movements",
			AlphaMeaning:    "Excess return above CAPM prediction",
			RSquaredMeaning: "Percentage of variance explained by market",
		},
	})
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type assetReturnsResponse struct {
	Ticker      string    `json:"ticker"`
	Period      string    `json:"period"`
	Returns     []float64 `json:"returns"`
	Dates       []string  `json:"dates"`
	TotalReturn float64   `json:"total_return"`
	Volatility  float64   `json:"volatility"`
}

func (m ApiHandler) assetReturns(c *gin.Context) {
	ticker := c.Param("ticker")
	period := c.DefaultQuery("period", "2y")

	result, err := m.AnalysisHandler.AssetReturns(c.Request.Context(), ticker, period)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	dates := make([]string, len(result.Returns))
	for i, d := range result.Returns.Dates() {
		dates[i] = d.Format(time.DateOnly)
	}

	c.JSON(200, assetReturnsResponse{
		Ticker:      result.Ticker,
		Period:      result.Period,
		Returns:     result.Returns.Values(),
		Dates:       dates,
		TotalReturn: result.TotalReturn,
		Volatility:  result.Volatility,
	})
}

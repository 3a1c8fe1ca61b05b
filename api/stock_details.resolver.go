package api

import (
	"fmt"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gin-gonic/gin"
)

type stockFundamentals struct {
	MarketCap     float64 `json:"marketCap"`
	PeRatio       float64 `json:"peRatio"`
	DividendYield float64 `json:"dividendYield"`
	Volume        int     `json:"volume"`
}

type stockChartData struct {
	Labels []string  `json:"labels"`
	Prices []float64 `json:"prices"`
}

type stockDetailsResponse struct {
	Ticker        string            `json:"ticker"`
	CurrentPrice  float64           `json:"currentPrice"`
	Change        float64           `json:"change"`
	ChangePercent float64           `json:"changePercent"`
	ChartData     stockChartData    `json:"chartData"`
	Fundamentals  stockFundamentals `json:"fundamentals"`
	Mock          bool              `json:"mock"`
}

func (m ApiHandler) stockDetails(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		m.returnErrorJson(domain.ValidationError{Err: fmt.Errorf("ticker is required")}, c)
		return
	}

	result := m.AnalysisHandler.StockDetails(c.Request.Context(), ticker)

	chartData := stockChartData{
		Labels: result.ChartDates,
		Prices: result.ChartPrices,
	}
	if chartData.Labels == nil {
		chartData.Labels = []string{}
	}
	if chartData.Prices == nil {
		chartData.Prices = []float64{}
	}

	c.JSON(200, stockDetailsResponse{
		Ticker:        result.Ticker,
		CurrentPrice:  result.CurrentPrice,
		Change:        result.Change,
		ChangePercent: result.ChangePercent,
		ChartData:     chartData,
		Fundamentals: stockFundamentals{
			MarketCap:     result.MarketCap,
			PeRatio:       result.PeRatio,
			DividendYield: result.DividendYield,
			Volume:        result.Volume,
		},
		Mock: result.Mock,
	})
}

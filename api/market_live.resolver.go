package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type indexSnapshotResponse struct {
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

type liveMarketResponse struct {
	SP500    indexSnapshotResponse `json:"sp500"`
	Nasdaq   indexSnapshotResponse `json:"nasdaq"`
	Djia     indexSnapshotResponse `json:"djia"`
	Vix      indexSnapshotResponse `json:"vix"`
	Treasury struct {
		Yield float64 `json:"yield"`
	} `json:"treasury"`
	Timestamp string `json:"timestamp"`
	Degraded  bool   `json:"degraded"`
}

func (m ApiHandler) liveMarket(c *gin.Context) {
	result := m.AnalysisHandler.LiveMarket(c.Request.Context())

	response := liveMarketResponse{
		SP500:     indexSnapshotResponse{Price: result.SP500.Price, Change: result.SP500.Change},
		Nasdaq:    indexSnapshotResponse{Price: result.Nasdaq.Price, Change: result.Nasdaq.Change},
		Djia:      indexSnapshotResponse{Price: result.Djia.Price, Change: result.Djia.Change},
		Vix:       indexSnapshotResponse{Price: result.Vix.Price, Change: result.Vix.Change},
		Timestamp: result.Timestamp.Format(time.RFC3339),
		Degraded:  result.Degraded,
	}
	response.Treasury.Yield = result.TreasuryYield

	c.JSON(200, response)
}

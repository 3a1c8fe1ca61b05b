package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// Quote is a point-in-time snapshot used by the display path only. It never
// feeds the regression engine.
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	MarketCap     float64
	PeRatio       float64
	DividendYield float64
	Volume        int
}

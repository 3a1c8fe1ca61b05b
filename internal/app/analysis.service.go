package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/cache"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/calculator"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/repository"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"

	"go.uber.org/zap"
)

const (
	marketProxySymbol = "^GSPC"

	// fallbackRiskFreeRate stands in when the treasury source is unreachable.
	fallbackRiskFreeRate = 0.04

	// the portfolio path always uses the default lookback, matching the
	// single-asset default
	portfolioPeriod = "2y"

	liveMarketCacheTTL = 10 * time.Second

	// quote snapshots go stale fast; keep them well short of the default TTL
	stockDetailsCacheTTL = 5 * time.Minute
)

// AnalysisHandler wires the regression engine to its data collaborators. All
// state is request-local; the only thing shared across requests is the
// injected result cache.
type AnalysisHandler struct {
	PriceRepository        repository.PriceRepository
	FactorRepository       repository.FactorRepository
	InterestRateRepository repository.InterestRateRepository
	ResultCache            cache.Store
}

type AssetReturnsResult struct {
	Ticker      string
	Period      string
	Returns     domain.ReturnSeries
	TotalReturn float64
	Volatility  float64 // annualized
}

type PortfolioCAPMResult struct {
	Tickers     []string
	Weights     []float64
	TotalWeight float64
	CAPM        *domain.CAPMResult
}

type StockDetailsResult struct {
	Ticker        string
	CurrentPrice  float64
	Change        float64
	ChangePercent float64
	ChartDates    []string
	ChartPrices   []float64
	MarketCap     float64
	PeRatio       float64
	DividendYield float64
	Volume        int
	// Mock marks demo data substituted after a quote-source failure.
	Mock bool
}

type IndexSnapshot struct {
	Price  float64
	Change float64
}

type LiveMarketResult struct {
	SP500         IndexSnapshot
	Nasdaq        IndexSnapshot
	Djia          IndexSnapshot
	Vix           IndexSnapshot
	TreasuryYield float64
	Timestamp     time.Time
	// Degraded marks static estimates substituted after a source failure.
	Degraded bool
}

func (h AnalysisHandler) getReturns(ctx context.Context, ticker, period string) (domain.ReturnSeries, error) {
	now := time.Now().UTC()
	start, err := util.PeriodStart(period, now)
	if err != nil {
		return nil, domain.ValidationError{Err: err}
	}

	prices, err := h.PriceRepository.GetPriceSeries(ctx, ticker, start, now)
	if err != nil {
		return nil, err
	}

	return internal.ReturnsFromPrices(prices)
}

func (h AnalysisHandler) riskFreeRate(ctx context.Context) float64 {
	rate, err := h.InterestRateRepository.GetRiskFreeRate(ctx)
	if err != nil {
		zap.S().Warnw("falling back to default risk-free rate", "error", err)
		return fallbackRiskFreeRate
	}
	return rate
}

// AssetReturns builds the return series for one ticker plus the summary
// numbers the chart view wants.
func (h AnalysisHandler) AssetReturns(ctx context.Context, ticker, period string) (*AssetReturnsResult, error) {
	cacheKey := fmt.Sprintf("asset_%s_%s", ticker, period)
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(*AssetReturnsResult), nil
	}

	returns, err := h.getReturns(ctx, ticker, period)
	if err != nil {
		return nil, err
	}

	volatility, err := calculator.AnnualizedVolatility(returns.Values())
	if err != nil {
		return nil, domain.InsufficientDataError{Err: err}
	}

	result := &AssetReturnsResult{
		Ticker:      ticker,
		Period:      period,
		Returns:     returns,
		TotalReturn: calculator.TotalReturn(returns.Values()),
		Volatility:  volatility,
	}
	h.ResultCache.Set(cacheKey, result)
	return result, nil
}

// CAPM runs the single-factor estimate of the ticker against the market
// proxy.
func (h AnalysisHandler) CAPM(ctx context.Context, ticker, period string) (*domain.CAPMResult, error) {
	cacheKey := fmt.Sprintf("capm_%s_%s", ticker, period)
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(*domain.CAPMResult), nil
	}

	assetReturns, err := h.getReturns(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	marketReturns, err := h.getReturns(ctx, marketProxySymbol, period)
	if err != nil {
		return nil, err
	}

	result, err := internal.CalculateCAPM(assetReturns, marketReturns, h.riskFreeRate(ctx))
	if err != nil {
		return nil, err
	}

	h.ResultCache.Set(cacheKey, result)
	return result, nil
}

// FactorData returns the general factor dataset used for the factor chart
// view.
func (h AnalysisHandler) FactorData(ctx context.Context) (domain.FactorSeries, error) {
	cacheKey := "factor_data"
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(domain.FactorSeries), nil
	}

	factors, err := h.FactorRepository.GetFactorSeries(ctx, "SPY")
	if err != nil {
		return nil, err
	}

	h.ResultCache.Set(cacheKey, factors)
	return factors, nil
}

// MultiFactor runs the three-factor exposure estimate. The result may carry
// the placeholder flag; see internal.CalculateFactorExposure.
func (h AnalysisHandler) MultiFactor(ctx context.Context, ticker, period string) (*domain.FactorExposureResult, error) {
	cacheKey := fmt.Sprintf("multifactor_%s_%s", ticker, period)
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(*domain.FactorExposureResult), nil
	}

	assetReturns, err := h.getReturns(ctx, ticker, period)
	if err != nil {
		return nil, err
	}
	factors, err := h.FactorRepository.GetFactorSeries(ctx, ticker)
	if err != nil {
		return nil, err
	}

	result := internal.CalculateFactorExposure(assetReturns, factors)
	h.ResultCache.Set(cacheKey, result)
	return result, nil
}

// PortfolioCAPM aggregates the weighted tickers into one composite series and
// estimates it against the market proxy.
func (h AnalysisHandler) PortfolioCAPM(ctx context.Context, spec domain.PortfolioSpec) (*PortfolioCAPMResult, error) {
	if err := internal.ValidatePortfolioSpec(spec); err != nil {
		return nil, err
	}

	series := make([]domain.ReturnSeries, 0, len(spec.Tickers))
	for _, ticker := range spec.Tickers {
		returns, err := h.getReturns(ctx, ticker, portfolioPeriod)
		if err != nil {
			return nil, err
		}
		series = append(series, returns)
	}

	composite, err := internal.BuildPortfolioReturns(series, spec.Weights)
	if err != nil {
		return nil, err
	}

	marketReturns, err := h.getReturns(ctx, marketProxySymbol, portfolioPeriod)
	if err != nil {
		return nil, err
	}

	capmResult, err := internal.CalculatePortfolioCAPM(composite, marketReturns, h.riskFreeRate(ctx))
	if err != nil {
		return nil, err
	}

	totalWeight := 0.0
	for _, w := range spec.Weights {
		totalWeight += w
	}

	return &PortfolioCAPMResult{
		Tickers:     spec.Tickers,
		Weights:     spec.Weights,
		TotalWeight: totalWeight,
		CAPM:        capmResult,
	}, nil
}

// StockDetails serves the quote display. A failing quote source degrades to
// mock demo data rather than failing the view.
func (h AnalysisHandler) StockDetails(ctx context.Context, ticker string) *StockDetailsResult {
	cacheKey := fmt.Sprintf("details_%s", ticker)
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(*StockDetailsResult)
	}

	q, err := h.PriceRepository.GetQuote(ctx, ticker)
	if err != nil {
		zap.S().Warnw("quote source failed, serving mock stock details", "ticker", ticker, "error", err)
		return mockStockDetails(ticker)
	}

	result := &StockDetailsResult{
		Ticker:        ticker,
		CurrentPrice:  q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		MarketCap:     q.MarketCap,
		PeRatio:       q.PeRatio,
		DividendYield: q.DividendYield * 100,
		Volume:        q.Volume,
	}

	now := time.Now().UTC()
	prices, err := h.PriceRepository.GetPriceSeries(ctx, ticker, now.AddDate(0, -1, 0), now)
	if err != nil {
		zap.S().Warnw("chart data unavailable", "ticker", ticker, "error", err)
	} else {
		for _, p := range prices {
			result.ChartDates = append(result.ChartDates, p.Date.Format(time.DateOnly))
			result.ChartPrices = append(result.ChartPrices, p.Price.InexactFloat64())
		}
	}

	h.ResultCache.SetWithTTL(cacheKey, result, stockDetailsCacheTTL)
	return result
}

func mockStockDetails(ticker string) *StockDetailsResult {
	return &StockDetailsResult{
		Ticker:        ticker,
		CurrentPrice:  100 + rand.Float64()*200,
		Change:        -10 + rand.Float64()*20,
		ChangePercent: -5 + rand.Float64()*10,
		MarketCap:     50 + rand.Float64()*450,
		PeRatio:       10 + rand.Float64()*30,
		DividendYield: rand.Float64() * 4,
		Volume:        1_000_000 + rand.Intn(49_000_000),
		Mock:          true,
	}
}

// LiveMarket returns the index board. On any failure it degrades to static
// estimates so the view always renders.
func (h AnalysisHandler) LiveMarket(ctx context.Context) *LiveMarketResult {
	cacheKey := "live_market_data"
	if cached, ok := h.ResultCache.Get(cacheKey); ok {
		return cached.(*LiveMarketResult)
	}

	symbols := []string{"^GSPC", "^IXIC", "^DJI", "^VIX", "^TNX"}
	quotes := map[string]*domain.Quote{}
	for _, symbol := range symbols {
		q, err := h.PriceRepository.GetIndexQuote(ctx, symbol)
		if err != nil {
			zap.S().Warnw("index quote failed, serving market estimates", "symbol", symbol, "error", err)
			return fallbackLiveMarket()
		}
		quotes[symbol] = q
	}

	result := &LiveMarketResult{
		SP500:         IndexSnapshot{Price: quotes["^GSPC"].Price, Change: quotes["^GSPC"].ChangePercent},
		Nasdaq:        IndexSnapshot{Price: quotes["^IXIC"].Price, Change: quotes["^IXIC"].ChangePercent},
		Djia:          IndexSnapshot{Price: quotes["^DJI"].Price, Change: quotes["^DJI"].ChangePercent},
		Vix:           IndexSnapshot{Price: quotes["^VIX"].Price, Change: quotes["^VIX"].ChangePercent},
		TreasuryYield: quotes["^TNX"].Price,
		Timestamp:     time.Now().UTC(),
	}
	h.ResultCache.SetWithTTL(cacheKey, result, liveMarketCacheTTL)
	return result
}

func fallbackLiveMarket() *LiveMarketResult {
	return &LiveMarketResult{
		SP500:         IndexSnapshot{Price: 4780.0, Change: 0.1},
		Nasdaq:        IndexSnapshot{Price: 16500.0, Change: 0.2},
		Djia:          IndexSnapshot{Price: 37500.0, Change: 0.05},
		Vix:           IndexSnapshot{Price: 14.5, Change: -0.5},
		TreasuryYield: 4.3,
		Timestamp:     time.Now().UTC(),
		Degraded:      true,
	}
}

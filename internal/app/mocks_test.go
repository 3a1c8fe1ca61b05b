package app

import (
	"context"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
)

type mockPriceRepository struct {
	getPriceSeries  func(symbol string) ([]domain.AssetPrice, error)
	getQuote        func(symbol string) (*domain.Quote, error)
	getIndexQuote   func(symbol string) (*domain.Quote, error)
	priceSeriesCall int
	quoteCall       int
}

func (m *mockPriceRepository) GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	m.priceSeriesCall++
	return m.getPriceSeries(symbol)
}

func (m *mockPriceRepository) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	m.quoteCall++
	return m.getQuote(symbol)
}

func (m *mockPriceRepository) GetIndexQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	return m.getIndexQuote(symbol)
}

type mockFactorRepository struct {
	getFactorSeries func(ticker string) (domain.FactorSeries, error)
	calls           int
}

func (m *mockFactorRepository) GetFactorSeries(ctx context.Context, ticker string) (domain.FactorSeries, error) {
	m.calls++
	return m.getFactorSeries(ticker)
}

type mockInterestRateRepository struct {
	rate float64
	err  error
}

func (m *mockInterestRateRepository) GetRiskFreeRate(ctx context.Context) (float64, error) {
	return m.rate, m.err
}

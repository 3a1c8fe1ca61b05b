package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
)

type PriceRepository interface {
	// GetPriceSeries returns daily adjusted closes for the symbol, ordered by
	// date ascending.
	GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	// GetQuote returns a display snapshot with fundamentals.
	GetQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	// GetIndexQuote returns a display snapshot for an index symbol, which
	// carries no fundamentals.
	GetIndexQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

type yahooPriceRepository struct{}

func NewPriceRepository() PriceRepository {
	return yahooPriceRepository{}
}

func (r yahooPriceRepository) GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   util.Midnight(time.Unix(int64(iter.Bar().Timestamp), 0)),
			Price:  iter.Bar().AdjClose,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, domain.DataUnavailableError{
			Err: fmt.Errorf("failed to get prices for %s: %w", symbol, err),
		}
	}
	if len(prices) == 0 {
		return nil, domain.DataUnavailableError{
			Err: fmt.Errorf("no data found for %s", symbol),
		}
	}

	return prices, nil
}

func (r yahooPriceRepository) GetQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, domain.DataUnavailableError{
			Err: fmt.Errorf("failed to get quote for %s: %w", symbol, err),
		}
	}

	return &domain.Quote{
		Symbol:        symbol,
		Price:         eq.RegularMarketPrice,
		Change:        eq.RegularMarketChange,
		ChangePercent: eq.RegularMarketChangePercent,
		MarketCap:     float64(eq.MarketCap),
		PeRatio:       eq.TrailingPE,
		DividendYield: eq.TrailingAnnualDividendYield,
		Volume:        eq.RegularMarketVolume,
	}, nil
}

func (r yahooPriceRepository) GetIndexQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, domain.DataUnavailableError{
			Err: fmt.Errorf("failed to get index quote for %s: %w", symbol, err),
		}
	}

	return &domain.Quote{
		Symbol:        symbol,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		Volume:        q.RegularMarketVolume,
	}, nil
}

package internal

import (
	"testing"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ReturnsFromPrices(t *testing.T) {
	t.Run("percent change drops leading entry", func(t *testing.T) {
		prices := []domain.AssetPrice{
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 2), Price: decimal.NewFromInt(100)},
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 3), Price: decimal.NewFromInt(110)},
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 4), Price: decimal.NewFromInt(99)},
		}

		out, err := ReturnsFromPrices(prices)
		require.NoError(t, err)

		require.Len(t, out, 2)
		require.Equal(t, util.NewDate(2024, 1, 3), out[0].Date)
		require.InDelta(t, 0.10, out[0].Value, 1e-12)
		require.Equal(t, util.NewDate(2024, 1, 4), out[1].Date)
		require.InDelta(t, -0.10, out[1].Value, 1e-12)
	})

	t.Run("unsorted input is sorted before differencing", func(t *testing.T) {
		prices := []domain.AssetPrice{
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 3), Price: decimal.NewFromInt(110)},
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 2), Price: decimal.NewFromInt(100)},
		}

		out, err := ReturnsFromPrices(prices)
		require.NoError(t, err)

		require.Len(t, out, 1)
		require.InDelta(t, 0.10, out[0].Value, 1e-12)
	})

	t.Run("fewer than two prices", func(t *testing.T) {
		_, err := ReturnsFromPrices([]domain.AssetPrice{
			{Symbol: "AAPL", Date: util.NewDate(2024, 1, 2), Price: decimal.NewFromInt(100)},
		})
		require.ErrorAs(t, err, &domain.InsufficientDataError{})

		_, err = ReturnsFromPrices(nil)
		require.ErrorAs(t, err, &domain.InsufficientDataError{})
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := ReturnsFromPrices([]domain.AssetPrice{
			{Symbol: "BAD", Date: util.NewDate(2024, 1, 2), Price: decimal.Zero},
			{Symbol: "BAD", Date: util.NewDate(2024, 1, 3), Price: decimal.NewFromInt(10)},
		})
		require.ErrorAs(t, err, &domain.DataUnavailableError{})
	})
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	treasury_client "github.com/highmachs/CAPM-Multi-Factor-Analyzer/pkg/treasury"
)

type InterestRateRepository interface {
	// GetRiskFreeRate returns the current 10-year treasury yield as an
	// annualized decimal. Callers decide whether to fall back on failure -
	// the repository itself never substitutes a default.
	GetRiskFreeRate(ctx context.Context) (float64, error)
}

type treasuryRateRepository struct {
	client *treasury_client.Client
}

func NewInterestRateRepository() InterestRateRepository {
	return treasuryRateRepository{
		client: treasury_client.NewClient(),
	}
}

func (r treasuryRateRepository) GetRiskFreeRate(ctx context.Context) (float64, error) {
	curve, err := r.client.RatesOnDay(ctx, time.Now().UTC())
	if err != nil {
		return 0, domain.DataUnavailableError{
			Err: fmt.Errorf("failed to fetch yield curve: %w", err),
		}
	}

	rate, ok := curve.TenYear()
	if !ok {
		return 0, domain.DataUnavailableError{
			Err: fmt.Errorf("yield curve snapshot has no 10-year point"),
		}
	}

	return rate, nil
}

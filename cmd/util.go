package cmd

import (
	"fmt"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/api"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/app"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/cache"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/logger"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/repository"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, *util.Config, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()

	analysisHandler := app.AnalysisHandler{
		PriceRepository:        repository.NewPriceRepository(),
		FactorRepository:       repository.NewFactorRepository(config.FactorDataCsv),
		InterestRateRepository: repository.NewInterestRateRepository(),
		ResultCache: cache.NewMemoryStore(
			config.CacheMaxEntries,
			time.Duration(config.CacheTTLSeconds)*time.Second,
		),
	}

	return &api.ApiHandler{
		AnalysisHandler: analysisHandler,
		AllowedOrigins:  config.AllowedOrigins,
		Logger:          log,
	}, config, nil
}

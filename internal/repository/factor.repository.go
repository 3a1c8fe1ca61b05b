package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gocarina/gocsv"
)

type FactorRepository interface {
	// GetFactorSeries returns the three-factor dataset used against the given
	// ticker. With no real dataset configured, a deterministic synthetic
	// series is generated instead.
	GetFactorSeries(ctx context.Context, ticker string) (domain.FactorSeries, error)
}

type factorRepository struct {
	csvPath string
}

// NewFactorRepository builds a factor source. csvPath may be empty, in which
// case every request is served by the synthesizer.
func NewFactorRepository(csvPath string) FactorRepository {
	return factorRepository{csvPath: csvPath}
}

type factorCsvRow struct {
	Date  string  `csv:"date"`
	MktRF float64 `csv:"mkt_rf"`
	SMB   float64 `csv:"smb"`
	HML   float64 `csv:"hml"`
	RF    float64 `csv:"rf"`
}

func (r factorRepository) GetFactorSeries(ctx context.Context, ticker string) (domain.FactorSeries, error) {
	if r.csvPath == "" {
		return internal.SyntheticFactorSeries(ticker), nil
	}

	f, err := os.Open(r.csvPath)
	if err != nil {
		return nil, domain.FactorDataUnavailableError{
			Err: fmt.Errorf("failed to open factor dataset %s: %w", r.csvPath, err),
		}
	}
	defer f.Close()

	rows := []factorCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, domain.FactorDataUnavailableError{
			Err: fmt.Errorf("failed to parse factor dataset %s: %w", r.csvPath, err),
		}
	}

	out := make(domain.FactorSeries, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, domain.FactorDataUnavailableError{
				Err: fmt.Errorf("bad date %q in factor dataset: %w", row.Date, err),
			}
		}
		out = append(out, domain.FactorPoint{
			Date:  date,
			MktRF: row.MktRF,
			SMB:   row.SMB,
			HML:   row.HML,
			RF:    row.RF,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

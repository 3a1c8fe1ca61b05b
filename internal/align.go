package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"
)

const (
	// MinObservationsCAPM is the smallest aligned sample the two-series CAPM
	// regression will accept.
	MinObservationsCAPM = 10
	// MinObservationsFactor applies to multi-factor and portfolio-vs-market
	// alignment.
	MinObservationsFactor = 30
)

// AlignPair inner-joins two return series on their dates. Rows holding a
// non-finite value are dropped. Zero overlap is a hard failure, never a
// fabricated result.
func AlignPair(a, b domain.ReturnSeries, minRows int) (*domain.AlignedDataset, error) {
	bByDate := map[string]float64{}
	for _, p := range b {
		bByDate[p.Date.Format(time.DateOnly)] = p.Value
	}

	dataset := &domain.AlignedDataset{
		Names:   []string{"asset", "market"},
		Columns: [][]float64{{}, {}},
	}
	for _, p := range a {
		bValue, ok := bByDate[p.Date.Format(time.DateOnly)]
		if !ok {
			continue
		}
		if !isFinite(p.Value) || !isFinite(bValue) {
			continue
		}
		dataset.Dates = append(dataset.Dates, p.Date)
		dataset.Columns[0] = append(dataset.Columns[0], p.Value)
		dataset.Columns[1] = append(dataset.Columns[1], bValue)
	}

	if dataset.NumRows() == 0 {
		return nil, domain.InsufficientDataError{
			Err: fmt.Errorf("no overlapping dates between the two series"),
		}
	}
	if dataset.NumRows() < minRows {
		return nil, domain.InsufficientDataError{
			Err: fmt.Errorf("insufficient data points after alignment: %d < %d", dataset.NumRows(), minRows),
		}
	}

	return dataset, nil
}

// ResampleBusinessDaily reindexes a return series to business days between
// its first and last observation, carrying the last known value forward.
// Weekend observations are dropped in the process.
func ResampleBusinessDaily(s domain.ReturnSeries) domain.ReturnSeries {
	if len(s) == 0 {
		return s
	}

	byDate := map[string]float64{}
	for _, p := range s {
		byDate[p.Date.Format(time.DateOnly)] = p.Value
	}

	out := domain.ReturnSeries{}
	last := s[0].Value
	for d := s[0].Date; util.DateLte(d, s[len(s)-1].Date); d = d.AddDate(0, 0, 1) {
		if v, ok := byDate[d.Format(time.DateOnly)]; ok {
			last = v
		}
		if !util.IsBusinessDay(d) {
			continue
		}
		out = append(out, domain.ReturnPoint{Date: d, Value: last})
	}

	return out
}

// AlignFactors resamples the asset series and the factor dataset to a common
// business-day calendar, forward-filling each side, then intersects their
// dates. Factor data may be sampled on a different calendar than market
// closes, so the resample happens before the join. When the joined sample is
// below minRows the partial dataset is returned alongside the error so
// callers can report the actual overlap.
func AlignFactors(asset domain.ReturnSeries, factors domain.FactorSeries, minRows int) (*domain.AlignedDataset, error) {
	assetDaily := ResampleBusinessDaily(asset)
	factorsDaily := resampleFactorsBusinessDaily(factors)

	factorsByDate := map[string]domain.FactorPoint{}
	for _, p := range factorsDaily {
		factorsByDate[p.Date.Format(time.DateOnly)] = p
	}

	dataset := &domain.AlignedDataset{
		Names:   []string{"asset", "mkt_rf", "smb", "hml", "rf"},
		Columns: [][]float64{{}, {}, {}, {}, {}},
	}
	for _, p := range assetDaily {
		f, ok := factorsByDate[p.Date.Format(time.DateOnly)]
		if !ok {
			continue
		}
		if !isFinite(p.Value) || !isFinite(f.MktRF) || !isFinite(f.SMB) || !isFinite(f.HML) || !isFinite(f.RF) {
			continue
		}
		dataset.Dates = append(dataset.Dates, p.Date)
		dataset.Columns[0] = append(dataset.Columns[0], p.Value)
		dataset.Columns[1] = append(dataset.Columns[1], f.MktRF)
		dataset.Columns[2] = append(dataset.Columns[2], f.SMB)
		dataset.Columns[3] = append(dataset.Columns[3], f.HML)
		dataset.Columns[4] = append(dataset.Columns[4], f.RF)
	}

	if dataset.NumRows() < minRows {
		return dataset, domain.InsufficientDataError{
			Err: fmt.Errorf("insufficient overlap with factor data: %d < %d", dataset.NumRows(), minRows),
		}
	}

	return dataset, nil
}

func resampleFactorsBusinessDaily(factors domain.FactorSeries) domain.FactorSeries {
	if len(factors) == 0 {
		return factors
	}

	byDate := map[string]domain.FactorPoint{}
	for _, p := range factors {
		byDate[p.Date.Format(time.DateOnly)] = p
	}

	out := domain.FactorSeries{}
	last := factors[0]
	for d := factors[0].Date; util.DateLte(d, factors[len(factors)-1].Date); d = d.AddDate(0, 0, 1) {
		if p, ok := byDate[d.Format(time.DateOnly)]; ok {
			last = p
		}
		if !util.IsBusinessDay(d) {
			continue
		}
		out = append(out, domain.FactorPoint{
			Date:  d,
			MktRF: last.MktRF,
			SMB:   last.SMB,
			HML:   last.HML,
			RF:    last.RF,
		})
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

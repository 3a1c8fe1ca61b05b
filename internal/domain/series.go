package domain

import "time"

// ReturnPoint is a single daily percent-change observation.
type ReturnPoint struct {
	Date  time.Time
	Value float64
}

// ReturnSeries is an ordered sequence of daily returns. Dates are strictly
// increasing and normalized to UTC midnight. A series is built once per
// request and never mutated after construction.
type ReturnSeries []ReturnPoint

func (s ReturnSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

func (s ReturnSeries) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, p := range s {
		out[i] = p.Date
	}
	return out
}

// Scale returns a new series with every value multiplied by factor.
func (s ReturnSeries) Scale(factor float64) ReturnSeries {
	out := make(ReturnSeries, len(s))
	for i, p := range s {
		out[i] = ReturnPoint{Date: p.Date, Value: p.Value * factor}
	}
	return out
}

// FactorPoint holds the three style factors plus the risk-free leg on one day.
type FactorPoint struct {
	Date  time.Time
	MktRF float64
	SMB   float64
	HML   float64
	RF    float64
}

// FactorSeries is an ordered factor dataset, either loaded from a real feed
// or synthesized. Treated as immutable input to alignment.
type FactorSeries []FactorPoint

// AlignedDataset is a set of equal-length, date-synchronized vectors sharing
// one date index. Column order matches Names.
type AlignedDataset struct {
	Dates   []time.Time
	Names   []string
	Columns [][]float64
}

func (d *AlignedDataset) NumRows() int {
	return len(d.Dates)
}

// Column returns the vector for the given name, or nil if absent.
func (d *AlignedDataset) Column(name string) []float64 {
	for i, n := range d.Names {
		if n == name {
			return d.Columns[i]
		}
	}
	return nil
}

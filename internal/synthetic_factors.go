package internal

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/util"
)

// Synthetic stand-in for a real Fama-French feed. The paths are random walks
// with ticker-profile drift and volatility, NOT empirical factor data. The
// generator is seeded from an FNV-1a hash of the ticker reduced mod 10000, so
// the same ticker reproduces the same series across calls and processes while
// different tickers diverge.

const syntheticSeedModulus = 10000

const syntheticLookbackYears = 2

var (
	techTickers  = []string{"aapl", "googl", "msft", "tsla", "nvda", "amzn"}
	valueTickers = []string{"xom", "cvx", "jpm", "wmt", "ko", "pg"}
)

type factorProfile struct {
	marketVol   float64
	marketDrift float64
	smbDrift    float64
	hmlDrift    float64
}

func profileFor(ticker string) factorProfile {
	lower := strings.ToLower(ticker)
	for _, t := range techTickers {
		if strings.Contains(lower, t) {
			// high market beta, growth and large-cap bias
			return factorProfile{marketVol: 0.018, marketDrift: 0.0004, smbDrift: -0.0001, hmlDrift: -0.0003}
		}
	}
	for _, t := range valueTickers {
		if strings.Contains(lower, t) {
			// moderate beta, value and large-cap bias
			return factorProfile{marketVol: 0.012, marketDrift: 0.0002, smbDrift: -0.0001, hmlDrift: 0.0002}
		}
	}
	return factorProfile{marketVol: 0.015, marketDrift: 0.0003, smbDrift: -0.0001, hmlDrift: 0}
}

func syntheticSeed(ticker string) int64 {
	h := fnv.New32a()
	h.Write([]byte(ticker))
	return int64(h.Sum32() % syntheticSeedModulus)
}

// SyntheticFactorSeries generates a daily MKT_RF/SMB/HML/RF series spanning
// the trailing two years, one observation per calendar day.
func SyntheticFactorSeries(ticker string) domain.FactorSeries {
	end := util.Midnight(time.Now())
	start := end.AddDate(-syntheticLookbackYears, 0, 0)

	profile := profileFor(ticker)
	rng := rand.New(rand.NewSource(syntheticSeed(ticker)))

	out := domain.FactorSeries{}
	var mkt, smb, hml, rf float64
	for d := start; util.DateLte(d, end); d = d.AddDate(0, 0, 1) {
		mkt += rng.NormFloat64()*profile.marketVol + profile.marketDrift
		smb += rng.NormFloat64()*0.008 + profile.smbDrift
		hml += rng.NormFloat64()*0.007 + profile.hmlDrift
		rf += rng.NormFloat64()*0.0003 + 0.0001
		out = append(out, domain.FactorPoint{
			Date:  d,
			MktRF: mkt,
			SMB:   smb,
			HML:   hml,
			RF:    rf,
		})
	}

	return out
}

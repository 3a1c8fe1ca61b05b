package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gin-gonic/gin"
)

type portfolioCapmResponse struct {
	Portfolio          []string   `json:"portfolio"`
	Weights            []float64  `json:"weights"`
	TotalWeight        float64    `json:"total_weight"`
	Beta               float64    `json:"beta"`
	Alpha              float64    `json:"alpha"`
	RSquared           float64    `json:"r_squared"`
	ExpectedReturn     float64    `json:"expected_return"`
	ActualReturn       float64    `json:"actual_return"`
	TreasuryYield      float64    `json:"treasury_yield"`
	MarketPremium      float64    `json:"market_premium"`
	PValue             float64    `json:"p_value"`
	StdError           float64    `json:"std_error"`
	ConfidenceInterval [2]float64 `json:"confidence_interval"`
	NObservations      int        `json:"n_observations"`
}

// parsePortfolioSpec turns the comma-separated tickers/weights query params
// into a spec, skipping empty segments so trailing commas are harmless.
func parsePortfolioSpec(tickersParam, weightsParam string) (domain.PortfolioSpec, error) {
	spec := domain.PortfolioSpec{}

	for _, t := range strings.Split(tickersParam, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		spec.Tickers = append(spec.Tickers, strings.ToUpper(t))
	}

	for _, w := range strings.Split(weightsParam, ",") {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return spec, domain.ValidationError{
				Err: fmt.Errorf("invalid weight %q: %w", w, err),
			}
		}
		spec.Weights = append(spec.Weights, weight)
	}

	return spec, nil
}

func (m ApiHandler) portfolioCapm(c *gin.Context) {
	spec, err := parsePortfolioSpec(c.Query("tickers"), c.Query("weights"))
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	m.Logger.Infow("portfolio analysis request", "tickers", spec.Tickers, "weights", spec.Weights)

	result, err := m.AnalysisHandler.PortfolioCAPM(c.Request.Context(), spec)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioCapmResponse{
		Portfolio:          result.Tickers,
		Weights:            result.Weights,
		TotalWeight:        result.TotalWeight,
		Beta:               result.CAPM.Beta,
		Alpha:              result.CAPM.Alpha,
		RSquared:           result.CAPM.RSquared,
		ExpectedReturn:     result.CAPM.ExpectedReturn,
		ActualReturn:       result.CAPM.ActualReturn,
		TreasuryYield:      result.CAPM.TreasuryYield,
		MarketPremium:      result.CAPM.MarketPremium,
		PValue:             result.CAPM.PValue,
		StdError:           result.CAPM.StdError,
		ConfidenceInterval: result.CAPM.ConfidenceInterval,
		NObservations:      result.CAPM.NObservations,
	})
}

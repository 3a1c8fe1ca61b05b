package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type factorVectors struct {
	MktRF []float64 `json:"MKT_RF"`
	SMB   []float64 `json:"SMB"`
	HML   []float64 `json:"HML"`
	RF    []float64 `json:"RF"`
}

type factorDataResponse struct {
	Factors factorVectors `json:"factors"`
	Dates   []string      `json:"dates"`
}

func (m ApiHandler) factorData(c *gin.Context) {
	factors, err := m.AnalysisHandler.FactorData(c.Request.Context())
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	response := factorDataResponse{
		Dates: make([]string, 0, len(factors)),
	}
	for _, p := range factors {
		response.Dates = append(response.Dates, p.Date.Format(time.DateOnly))
		response.Factors.MktRF = append(response.Factors.MktRF, p.MktRF)
		response.Factors.SMB = append(response.Factors.SMB, p.SMB)
		response.Factors.HML = append(response.Factors.HML, p.HML)
		response.Factors.RF = append(response.Factors.RF, p.RF)
	}

	c.JSON(200, response)
}

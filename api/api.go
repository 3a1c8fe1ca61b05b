package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/app"
	"github.com/highmachs/CAPM-Multi-Factor-Analyzer/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	AnalysisHandler app.AnalysisHandler
	AllowedOrigins  []string
	Logger          *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = m.AllowedOrigins
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"message": "CAPM & Multi-Factor Exposure Analyzer API", "status": "active"})
	})
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	router.GET("/api/assets/:ticker", m.assetReturns)
	router.GET("/api/capm", m.capm)
	router.GET("/api/factors", m.factorData)
	router.GET("/api/multifactor", m.multifactor)
	router.GET("/api/portfolio/capm", m.portfolioCapm)
	router.GET("/api/stock-details", m.stockDetails)
	router.GET("/api/market/live", m.liveMarket)

	return router.Run(fmt.Sprintf(":%d", port))
}

// statusForError maps the engine's error taxonomy onto response codes:
// client faults (bad spec, too little data, unreachable upstream for the
// requested symbol) are 400s, engine faults are 500s.
func statusForError(err error) int {
	var (
		validationErr   domain.ValidationError
		insufficientErr domain.InsufficientDataError
		dataErr         domain.DataUnavailableError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &insufficientErr),
		errors.As(err, &dataErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (m ApiHandler) returnErrorJson(err error, c *gin.Context) {
	m.Logger.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(statusForError(err), gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New().String()
	ctx.Writer.Header().Set("X-Request-Id", requestID)

	start := time.Now().UTC()
	ctx.Next()

	m.Logger.Infow("request",
		"requestId", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/humanglue/glueiq-service/internal/services"
	"github.com/humanglue/glueiq-service/internal/utils"
	"github.com/humanglue/glueiq-service/internal/validator"
)

type HandlerManager struct {
	scoringHandler   *ScoringHandler
	resultHandler    *ResultHandler
	benchmarkHandler *BenchmarkHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		scoringHandler:   NewScoringHandler(serviceManager.Scoring(), validator, logger),
		resultHandler:    NewResultHandler(serviceManager.Scoring(), serviceManager.Export(), logger),
		benchmarkHandler: NewBenchmarkHandler(serviceManager.Benchmark(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "glueiq-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Stateless scoring
		v1.POST("/scores", hm.scoringHandler.ScoreAnswers)

		// Assessment scoring routes
		assessments := v1.Group("/assessments")
		{
			assessments.POST("/:id/score", hm.scoringHandler.ScoreAssessment)
			assessments.GET("/:id/result", hm.scoringHandler.GetLatestResult)
		}

		// Result routes
		results := v1.Group("/results")
		{
			results.GET("", hm.resultHandler.ListResults)
			results.GET("/:id", hm.resultHandler.GetResult)
			results.GET("/:id/export", hm.resultHandler.ExportResult)
		}

		// Listing export lives outside /results to keep :id free
		v1.GET("/exports/results", hm.resultHandler.ExportResults)

		// Benchmark routes
		benchmarks := v1.Group("/benchmarks")
		{
			benchmarks.GET("/percentile", hm.benchmarkHandler.GetPercentile)
		}
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/humanglue/glueiq-service/internal/services"
	"github.com/humanglue/glueiq-service/internal/utils"
)

type BenchmarkHandler struct {
	BaseHandler
	benchmarkService services.BenchmarkService
}

func NewBenchmarkHandler(benchmarkService services.BenchmarkService, logger utils.Logger) *BenchmarkHandler {
	return &BenchmarkHandler{
		BaseHandler:      NewBaseHandler(logger),
		benchmarkService: benchmarkService,
	}
}

// GetPercentile ranks a score against the stored benchmark population
// @Summary Get percentile
// @Description Returns the percentile and rank of a score within a cohort's population
// @Tags benchmarks
// @Produce json
// @Param score query int true "Overall score (0-100)"
// @Param cohort query string false "Cohort name (empty for global)"
// @Success 200 {object} services.PercentileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /benchmarks/percentile [get]
func (h *BenchmarkHandler) GetPercentile(c *gin.Context) {
	scoreStr := c.Query("score")
	if scoreStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Missing score parameter",
		})
		return
	}

	score, err := strconv.Atoi(scoreStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid score parameter",
			Details: err.Error(),
		})
		return
	}

	cohort := c.Query("cohort")

	h.LogRequest(c, "Ranking score", "score", score, "cohort", cohort)

	percentile, err := h.benchmarkService.PercentileFor(c.Request.Context(), score, cohort)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, percentile)
}

func (h *BenchmarkHandler) handleServiceError(c *gin.Context, err error) {
	var validationError *services.ValidationError
	if errors.As(err, &validationError) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationError,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrBenchmarkEmpty):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "No benchmark data available for this cohort",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

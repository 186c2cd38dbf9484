package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanglue/glueiq-service/internal/services"
	"github.com/humanglue/glueiq-service/internal/utils"
	"github.com/humanglue/glueiq-service/internal/validator"
)

type ScoringHandler struct {
	BaseHandler
	scoringService services.ScoringService
	validator      *validator.Validator
}

func NewScoringHandler(
	scoringService services.ScoringService,
	validator *validator.Validator,
	logger utils.Logger,
) *ScoringHandler {
	return &ScoringHandler{
		BaseHandler:    NewBaseHandler(logger),
		scoringService: scoringService,
		validator:      validator,
	}
}

// ScoreAnswers scores a raw answer set without persisting anything
// @Summary Score answers
// @Description Computes a GlueIQ result for the submitted answers
// @Tags scoring
// @Accept json
// @Produce json
// @Param answers body services.ScoreAnswersRequest true "Answer set"
// @Success 200 {object} scoring.Result
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /scores [post]
func (h *ScoringHandler) ScoreAnswers(c *gin.Context) {
	var req services.ScoreAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Scoring answer set", "answer_count", len(req.Answers))

	result, err := h.scoringService.ScoreAnswers(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScoreAssessment stores submitted responses and computes a persisted result
// @Summary Score assessment
// @Description Stores any submitted responses, scores all stored responses and persists the result
// @Tags scoring
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param responses body services.SubmitResponsesRequest false "Responses to store before scoring"
// @Success 201 {object} services.ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assessments/{id}/score [post]
func (h *ScoringHandler) ScoreAssessment(c *gin.Context) {
	assessmentID := ParseStringIDParam(c, "id")
	if assessmentID == "" {
		return
	}

	// The body is optional; an empty body scores previously stored responses.
	var req services.SubmitResponsesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid request payload",
				Details: err.Error(),
			})
			return
		}
	}

	h.LogRequest(c, "Scoring assessment",
		"assessment_id", assessmentID,
		"submitted_responses", len(req.Responses))

	result, err := h.scoringService.ScoreAssessment(c.Request.Context(), assessmentID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetLatestResult retrieves the most recent result for an assessment
// @Summary Get latest result
// @Description Retrieves the most recently computed result for an assessment
// @Tags scoring
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} services.ResultResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assessments/{id}/result [get]
func (h *ScoringHandler) GetLatestResult(c *gin.Context) {
	assessmentID := ParseStringIDParam(c, "id")
	if assessmentID == "" {
		return
	}

	h.LogRequest(c, "Getting latest result", "assessment_id", assessmentID)

	result, err := h.scoringService.GetLatestResult(c.Request.Context(), assessmentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ===== ERROR HANDLING =====

func (h *ScoringHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var validationError *services.ValidationError
	if errors.As(err, &validationError) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationError,
		})
		return
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: businessRuleError.Message,
			Details: map[string]interface{}{
				"rule":    businessRuleError.Rule,
				"context": businessRuleError.Context,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNoResponses):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Assessment has no responses to score",
		})
	case errors.Is(err, services.ErrResultNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Result not found",
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrBadRequest):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Bad request",
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Resource conflict",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

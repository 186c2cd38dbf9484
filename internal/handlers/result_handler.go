package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/humanglue/glueiq-service/internal/services"
	"github.com/humanglue/glueiq-service/internal/utils"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ResultHandler struct {
	BaseHandler
	scoringService services.ScoringService
	exportService  services.ExportService
}

func NewResultHandler(
	scoringService services.ScoringService,
	exportService services.ExportService,
	logger utils.Logger,
) *ResultHandler {
	return &ResultHandler{
		BaseHandler:    NewBaseHandler(logger),
		scoringService: scoringService,
		exportService:  exportService,
	}
}

// GetResult retrieves a result by ID
// @Summary Get result
// @Description Retrieves a computed result by its ID
// @Tags results
// @Produce json
// @Param id path uint true "Result ID"
// @Success 200 {object} services.ResultResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Getting result", "result_id", id)

	result, err := h.scoringService.GetResult(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListResults lists computed results with filtering and pagination
// @Summary List results
// @Description Lists computed results filtered by assessment, score range and completion date
// @Tags results
// @Produce json
// @Param assessment_id query string false "Assessment ID"
// @Param min_score query int false "Minimum overall score"
// @Param max_score query int false "Maximum overall score"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} services.ResultListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	filters := h.parseResultFilters(c)

	h.LogRequest(c, "Listing results", "limit", filters.Limit, "offset", filters.Offset)

	results, err := h.scoringService.ListResults(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ExportResult downloads a result as a CSV or Excel file
// @Summary Export result
// @Description Renders a computed result as a downloadable CSV or Excel file
// @Tags results
// @Produce octet-stream
// @Param id path uint true "Result ID"
// @Param format query string false "Export format (csv or xlsx)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /results/{id}/export [get]
func (h *ResultHandler) ExportResult(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	format := c.DefaultQuery("format", "csv")

	h.LogRequest(c, "Exporting result", "result_id", id, "format", format)

	data, filename, err := h.exportService.ExportResult(c.Request.Context(), id, format)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	contentType := contentTypeCSV
	if format == "xlsx" {
		contentType = contentTypeXLSX
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ExportResults downloads a result listing as a CSV or Excel file
// @Summary Export result listing
// @Description Renders a filtered result listing as a downloadable CSV or Excel file
// @Tags results
// @Produce octet-stream
// @Param format query string false "Export format (csv or xlsx)" default(csv)
// @Param assessment_id query string false "Assessment ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exports/results [get]
func (h *ResultHandler) ExportResults(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	filters := h.parseResultFilters(c)

	h.LogRequest(c, "Exporting result listing", "format", format)

	data, filename, err := h.exportService.ExportResults(c.Request.Context(), filters, format)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	contentType := contentTypeCSV
	if format == "xlsx" {
		contentType = contentTypeXLSX
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// ===== HELPERS =====

func (h *ResultHandler) parseResultFilters(c *gin.Context) repositories.ResultFilters {
	filters := repositories.ResultFilters{
		Limit:     h.parseIntQuery(c, "limit", 20),
		Offset:    h.parseIntQuery(c, "offset", 0),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if assessmentID := c.Query("assessment_id"); assessmentID != "" {
		filters.AssessmentID = &assessmentID
	}
	if minStr := c.Query("min_score"); minStr != "" {
		if min, err := strconv.Atoi(minStr); err == nil {
			filters.MinScore = &min
		}
	}
	if maxStr := c.Query("max_score"); maxStr != "" {
		if max, err := strconv.Atoi(maxStr); err == nil {
			filters.MaxScore = &max
		}
	}
	if fromStr := c.Query("date_from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filters.DateFrom = &from
		}
	}
	if toStr := c.Query("date_to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			filters.DateTo = &to
		}
	}
	return filters
}

func (h *ResultHandler) parseIDParam(c *gin.Context, param string) uint {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: err.Error(),
		})
		return 0
	}
	return uint(id)
}

func (h *ResultHandler) parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func (h *ResultHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrResultNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Result not found",
		})
	case errors.Is(err, services.ErrInvalidExportFormat):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Unsupported export format",
			Details: "Supported formats: csv, xlsx",
		})
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}

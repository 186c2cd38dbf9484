package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/humanglue/glueiq-service/internal/events"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/humanglue/glueiq-service/internal/scoring"
	"github.com/xuri/excelize/v2"
)

// ExportService renders persisted results as downloadable files.
type ExportService interface {
	// ExportResult renders a result in the requested format ("csv" or
	// "xlsx") and returns the file bytes with a suggested filename.
	ExportResult(ctx context.Context, resultID uint, format string) ([]byte, string, error)

	// ExportResults renders a one-row-per-result listing in the requested
	// format.
	ExportResults(ctx context.Context, filters repositories.ResultFilters, format string) ([]byte, string, error)
}

type exportService struct {
	scoring   ScoringService
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewExportService(scoringService ScoringService, publisher events.EventPublisher, logger *slog.Logger) ExportService {
	return &exportService{
		scoring:   scoringService,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *exportService) ExportResult(ctx context.Context, resultID uint, format string) ([]byte, string, error) {
	format = strings.ToLower(format)
	if format != "csv" && format != "xlsx" {
		return nil, "", ErrInvalidExportFormat
	}

	result, err := s.scoring.GetResult(ctx, resultID)
	if err != nil {
		return nil, "", err
	}

	var data []byte
	switch format {
	case "csv":
		data, err = s.renderCSVRows(resultRows(result))
	case "xlsx":
		data, err = s.renderExcelRows("Result", resultRows(result))
	}
	if err != nil {
		return nil, "", err
	}

	s.publishExported(ctx, result, format)

	filename := fmt.Sprintf("glueiq-result-%d.%s", result.ID, format)
	s.logger.Info("Exported result", "result_id", result.ID, "format", format, "bytes", len(data))
	return data, filename, nil
}

func (s *exportService) ExportResults(ctx context.Context, filters repositories.ResultFilters, format string) ([]byte, string, error) {
	format = strings.ToLower(format)
	if format != "csv" && format != "xlsx" {
		return nil, "", ErrInvalidExportFormat
	}

	listing, err := s.scoring.ListResults(ctx, filters)
	if err != nil {
		return nil, "", err
	}

	rows := listingRows(listing.Results)

	var data []byte
	switch format {
	case "csv":
		data, err = s.renderCSVRows(rows)
	case "xlsx":
		data, err = s.renderExcelRows("Results", rows)
	}
	if err != nil {
		return nil, "", err
	}

	filename := "glueiq-results." + format
	s.logger.Info("Exported result listing",
		"result_count", len(listing.Results),
		"format", format,
		"bytes", len(data))
	return data, filename, nil
}

func (s *exportService) publishExported(ctx context.Context, result *ResultResponse, format string) {
	event := events.NewScoringEvent(events.EventResultExported, events.ResultExportedEvent{
		AssessmentID: result.AssessmentID,
		ResultID:     result.ID,
		Format:       format,
		ExportedAt:   time.Now(),
	})
	if err := s.publisher.PublishScoringEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish export event",
			"result_id", result.ID,
			"error", err)
	}
}

// ===== RENDERERS =====

func resultRows(result *ResultResponse) [][]string {
	rows := [][]string{
		{"Assessment ID", result.AssessmentID},
		{"Overall Score", scoring.FormatScorePercentage(result.OverallScore)},
		{"Grade", result.Grade},
		{"Maturity", scoring.MaturityLabel(result.MaturityLevel)},
		{"Completed At", result.CompletedAt.Format(time.RFC3339)},
		{},
		{"Dimension", "Score", "Level", "Questions Answered"},
	}
	for _, dim := range result.Detail.DimensionScores {
		rows = append(rows, []string{
			dim.Name,
			scoring.FormatScorePercentage(dim.Score),
			string(dim.Level),
			strconv.Itoa(dim.QuestionsAnswered),
		})
	}

	if len(result.Detail.Recommendations) > 0 {
		rows = append(rows, nil, []string{"Priority", "Recommendation", "Description"})
		for _, rec := range result.Detail.Recommendations {
			rows = append(rows, []string{string(rec.Priority), rec.Title, rec.Description})
		}
	}

	if len(result.Detail.Insights) > 0 {
		rows = append(rows, nil, []string{"Insight Type", "Title", "Description"})
		for _, insight := range result.Detail.Insights {
			rows = append(rows, []string{string(insight.Type), insight.Title, insight.Description})
		}
	}
	return rows
}

func listingRows(results []*ResultResponse) [][]string {
	rows := [][]string{
		{"Result ID", "Assessment ID", "Overall Score", "Grade", "Maturity", "Answers", "Completed At"},
	}
	for _, result := range results {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(result.ID), 10),
			result.AssessmentID,
			scoring.FormatScorePercentage(result.OverallScore),
			result.Grade,
			scoring.MaturityLabel(result.MaturityLevel),
			strconv.Itoa(result.AnswerCount),
			result.CompletedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func (s *exportService) renderCSVRows(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) renderExcelRows(sheetName string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return nil, fmt.Errorf("failed to compute Excel cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanglue/glueiq-service/internal/cache"
	"github.com/humanglue/glueiq-service/internal/events"
	"github.com/humanglue/glueiq-service/internal/models"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/humanglue/glueiq-service/internal/scoring"
	"github.com/humanglue/glueiq-service/internal/validator"
	"gorm.io/datatypes"
)

// ScoringService computes and persists GlueIQ results.
type ScoringService interface {
	// ScoreAnswers scores a raw answer set without touching storage.
	ScoreAnswers(ctx context.Context, req *ScoreAnswersRequest) (*scoring.Result, error)

	// ScoreAssessment optionally stores submitted responses, then scores all
	// stored responses for the assessment and persists a new result.
	ScoreAssessment(ctx context.Context, assessmentID string, req *SubmitResponsesRequest) (*ResultResponse, error)

	GetResult(ctx context.Context, id uint) (*ResultResponse, error)
	GetLatestResult(ctx context.Context, assessmentID string) (*ResultResponse, error)
	ListResults(ctx context.Context, filters repositories.ResultFilters) (*ResultListResponse, error)
}

// ===== REQUEST/RESPONSE TYPES =====

// AnswerInput is one submitted answer in its raw wire shape.
type AnswerInput struct {
	QuestionCode string           `json:"question_code" validate:"required,max=32"`
	Dimension    string           `json:"dimension" validate:"omitempty,dimension_key"`
	Subdimension string           `json:"subdimension" validate:"omitempty,max=64"`
	AnswerType   string           `json:"answer_type" validate:"omitempty,answer_type"`
	Value        scoring.RawValue `json:"value"`
	Weight       float64          `json:"weight" validate:"omitempty,gte=0"`
	AnsweredAt   string           `json:"answered_at" validate:"omitempty"`
}

type ScoreAnswersRequest struct {
	Answers []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

type SubmitResponsesRequest struct {
	Responses []AnswerInput `json:"responses" validate:"omitempty,dive"`
	Cohort    string        `json:"cohort" validate:"omitempty,max=64"`
}

// ResultResponse is a persisted result with its full scoring detail decoded.
type ResultResponse struct {
	ID            uint           `json:"id"`
	AssessmentID  string         `json:"assessment_id"`
	OverallScore  int            `json:"overall_score"`
	MaturityLevel int            `json:"maturity_level"`
	MaturityName  string         `json:"maturity_name"`
	Grade         string         `json:"grade"`
	Detail        scoring.Result `json:"detail"`
	AnswerCount   int            `json:"answer_count"`
	CompletedAt   time.Time      `json:"completed_at"`
}

type ResultListResponse struct {
	Results []*ResultResponse `json:"results"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

const resultCacheTTL = 10 * time.Minute

type scoringService struct {
	repo      repositories.Repository
	scorer    *scoring.Scorer
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	ops       *ServiceLogger
	validator *validator.Validator
}

func NewScoringService(
	repo repositories.Repository,
	scorer *scoring.Scorer,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ScoringService {
	return &scoringService{
		repo:      repo,
		scorer:    scorer,
		cache:     cacheService,
		publisher: publisher,
		logger:    logger,
		ops:       NewServiceLogger(logger, LogConfig{Service: "glueiq-service", Component: "scoring"}),
		validator: validator,
	}
}

// ===== SCORING OPERATIONS =====

func (s *scoringService) ScoreAnswers(ctx context.Context, req *ScoreAnswersRequest) (*scoring.Result, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	answers := scoring.PrepareAnswers(toStoredResponses(req.Answers), nil)
	result := s.scorer.CalculateScore(answers)

	s.logger.Info("Scored answer set",
		"answer_count", len(answers),
		"overall_score", result.OverallScore,
		"maturity_name", result.MaturityName)

	return &result, nil
}

func (s *scoringService) ScoreAssessment(ctx context.Context, assessmentID string, req *SubmitResponsesRequest) (*ResultResponse, error) {
	if assessmentID == "" {
		return nil, NewValidationError("assessment_id", "is required", assessmentID)
	}
	if req == nil {
		req = &SubmitResponsesRequest{}
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	op := s.ops.WithOperation(ctx, "score_assessment", assessmentID)

	s.logger.Info("Scoring assessment",
		"assessment_id", assessmentID,
		"submitted_responses", len(req.Responses))

	var record *models.AssessmentResult
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if len(req.Responses) > 0 {
			stored, err := toResponseModels(assessmentID, req.Responses)
			if err != nil {
				return err
			}
			if err := tx.Responses().CreateBatch(ctx, stored); err != nil {
				return err
			}
		}

		responses, err := tx.Responses().GetByAssessment(ctx, assessmentID)
		if err != nil {
			return err
		}
		if len(responses) == 0 {
			return ErrNoResponses
		}

		answers := scoring.PrepareAnswers(fromResponseModels(responses), nil)
		result := s.scorer.CalculateScore(answers)

		// Rank against the population as it stood before this result joins it.
		scores, err := tx.Benchmarks().Scores(ctx, repositories.BenchmarkFilters{
			Cohort: req.Cohort,
			Limit:  benchmarkSampleLimit,
		})
		if err != nil {
			s.logger.Warn("Failed to load benchmark population",
				"assessment_id", assessmentID,
				"error", err)
		} else if len(scores) > 0 {
			percentile := scoring.Percentile(result.OverallScore, scores)
			result.Percentile = &percentile
		}

		detail, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result detail: %w", err)
		}

		record = &models.AssessmentResult{
			AssessmentID:  assessmentID,
			OverallScore:  result.OverallScore,
			MaturityLevel: result.MaturityLevel,
			MaturityName:  result.MaturityName,
			Detail:        datatypes.JSON(detail),
			AnswerCount:   len(answers),
			CompletedAt:   result.CompletedAt,
		}
		if err := tx.Results().Create(ctx, record); err != nil {
			return err
		}

		// Each scored assessment feeds the benchmark population.
		return tx.Benchmarks().Add(ctx, &models.ScoreBenchmark{
			Score:  result.OverallScore,
			Cohort: req.Cohort,
		})
	})
	if err != nil {
		op.LogResult(0, err)
		return nil, err
	}
	op.LogResult(record.ID, nil)

	s.publishScored(ctx, record)
	s.publishBenchmarkRecorded(ctx, record.OverallScore, req.Cohort)

	resp, err := toResultResponse(record)
	if err != nil {
		return nil, err
	}
	s.cacheResult(ctx, resp)
	return resp, nil
}

func (s *scoringService) publishScored(ctx context.Context, record *models.AssessmentResult) {
	event := events.NewScoringEvent(events.EventAssessmentScored, events.AssessmentScoredEvent{
		AssessmentID:  record.AssessmentID,
		ResultID:      record.ID,
		OverallScore:  record.OverallScore,
		MaturityLevel: record.MaturityLevel,
		MaturityName:  record.MaturityName,
		AnswerCount:   record.AnswerCount,
		CompletedAt:   record.CompletedAt,
	})
	if err := s.publisher.PublishScoringEvent(ctx, event); err != nil {
		// Scoring succeeded; a lost event must not fail the request.
		s.logger.Error("Failed to publish scored event",
			"assessment_id", record.AssessmentID,
			"result_id", record.ID,
			"error", err)
	}
}

func (s *scoringService) publishBenchmarkRecorded(ctx context.Context, score int, cohort string) {
	event := events.NewScoringEvent(events.EventBenchmarkRecorded, events.BenchmarkRecordedEvent{
		Score:      score,
		Cohort:     cohort,
		RecordedAt: time.Now(),
	})
	if err := s.publisher.PublishScoringEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish benchmark event",
			"cohort", cohort,
			"error", err)
	}
}

// ===== RESULT RETRIEVAL =====

func (s *scoringService) GetResult(ctx context.Context, id uint) (*ResultResponse, error) {
	var cached ResultResponse
	if err := s.cache.Get(ctx, resultCacheKey(id), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Result cache read failed", "result_id", id, "error", err)
	}

	record, err := s.repo.Results().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	resp, err := toResultResponse(record)
	if err != nil {
		return nil, err
	}
	s.cacheResult(ctx, resp)
	return resp, nil
}

// cacheResult is best-effort; results are append-only so entries never go stale.
func (s *scoringService) cacheResult(ctx context.Context, resp *ResultResponse) {
	if err := s.cache.Set(ctx, resultCacheKey(resp.ID), resp, resultCacheTTL); err != nil {
		s.logger.Warn("Result cache write failed", "result_id", resp.ID, "error", err)
	}
}

func resultCacheKey(id uint) string {
	return fmt.Sprintf("glueiq:results:%d", id)
}

func (s *scoringService) GetLatestResult(ctx context.Context, assessmentID string) (*ResultResponse, error) {
	record, err := s.repo.Results().GetLatestByAssessment(ctx, assessmentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get latest result: %w", err)
	}
	return toResultResponse(record)
}

func (s *scoringService) ListResults(ctx context.Context, filters repositories.ResultFilters) (*ResultListResponse, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	records, total, err := s.repo.Results().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*ResultResponse, 0, len(records))
	for _, record := range records {
		resp, err := toResultResponse(record)
		if err != nil {
			return nil, err
		}
		results = append(results, resp)
	}

	return &ResultListResponse{
		Results: results,
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	}, nil
}

// ===== CONVERSION HELPERS =====

func toStoredResponses(answers []AnswerInput) []scoring.StoredResponse {
	responses := make([]scoring.StoredResponse, 0, len(answers))
	for _, a := range answers {
		responses = append(responses, scoring.StoredResponse{
			QuestionCode: a.QuestionCode,
			Metadata: scoring.ResponseMetadata{
				Dimension:      scoring.DimensionKey(a.Dimension),
				Subdimension:   a.Subdimension,
				AnswerType:     scoring.AnswerType(a.AnswerType),
				AnswerValue:    a.Value,
				QuestionWeight: a.Weight,
			},
			AnsweredAt: a.AnsweredAt,
		})
	}
	return responses
}

func toResponseModels(assessmentID string, answers []AnswerInput) ([]*models.AssessmentResponse, error) {
	records := make([]*models.AssessmentResponse, 0, len(answers))
	for _, a := range answers {
		metadata, err := json.Marshal(scoring.ResponseMetadata{
			Dimension:      scoring.DimensionKey(a.Dimension),
			Subdimension:   a.Subdimension,
			AnswerType:     scoring.AnswerType(a.AnswerType),
			AnswerValue:    a.Value,
			QuestionWeight: a.Weight,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response metadata: %w", err)
		}

		record := &models.AssessmentResponse{
			AssessmentID: assessmentID,
			QuestionCode: a.QuestionCode,
			Metadata:     datatypes.JSON(metadata),
		}
		if a.AnsweredAt != "" {
			if t, err := time.Parse(time.RFC3339, a.AnsweredAt); err == nil {
				record.AnsweredAt = &t
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func fromResponseModels(records []*models.AssessmentResponse) []scoring.StoredResponse {
	responses := make([]scoring.StoredResponse, 0, len(records))
	for _, r := range records {
		var metadata scoring.ResponseMetadata
		if len(r.Metadata) > 0 {
			// Unreadable metadata degrades to defaults rather than failing
			// the whole scoring run.
			_ = json.Unmarshal(r.Metadata, &metadata)
		}

		resp := scoring.StoredResponse{
			QuestionCode: r.QuestionCode,
			Metadata:     metadata,
		}
		if r.AnsweredAt != nil {
			resp.AnsweredAt = r.AnsweredAt.Format(time.RFC3339)
		}
		responses = append(responses, resp)
	}
	return responses
}

func toResultResponse(record *models.AssessmentResult) (*ResultResponse, error) {
	var detail scoring.Result
	if len(record.Detail) > 0 {
		if err := json.Unmarshal(record.Detail, &detail); err != nil {
			return nil, fmt.Errorf("failed to decode result detail: %w", err)
		}
	}

	return &ResultResponse{
		ID:            record.ID,
		AssessmentID:  record.AssessmentID,
		OverallScore:  record.OverallScore,
		MaturityLevel: record.MaturityLevel,
		MaturityName:  record.MaturityName,
		Grade:         scoring.ScoreGrade(record.OverallScore),
		Detail:        detail,
		AnswerCount:   record.AnswerCount,
		CompletedAt:   record.CompletedAt,
	}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanglue/glueiq-service/internal/cache"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/humanglue/glueiq-service/internal/scoring"
)

const (
	benchmarkCacheTTL = 5 * time.Minute
	// Freshest slice of the population used for percentile ranking.
	benchmarkSampleLimit = 10000
)

// BenchmarkService ranks scores against the stored benchmark population.
type BenchmarkService interface {
	// PercentileFor returns the percentage of the cohort's population
	// scoring strictly below the given score.
	PercentileFor(ctx context.Context, score int, cohort string) (*PercentileResponse, error)
}

type PercentileResponse struct {
	Score          int    `json:"score"`
	Cohort         string `json:"cohort,omitempty"`
	Percentile     int    `json:"percentile"`
	Rank           string `json:"rank"`
	PopulationSize int    `json:"population_size"`
}

type benchmarkService struct {
	repo   repositories.Repository
	cache  cache.CacheService
	logger *slog.Logger
}

func NewBenchmarkService(repo repositories.Repository, cacheService cache.CacheService, logger *slog.Logger) BenchmarkService {
	return &benchmarkService{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

func (s *benchmarkService) PercentileFor(ctx context.Context, score int, cohort string) (*PercentileResponse, error) {
	if score < 0 || score > 100 {
		return nil, NewValidationError("score", "must be between 0 and 100", score)
	}

	scores, err := s.benchmarkScores(ctx, cohort)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, ErrBenchmarkEmpty
	}

	total := 0
	for _, b := range scores {
		total += b
	}
	average := total / len(scores)

	return &PercentileResponse{
		Score:          score,
		Cohort:         cohort,
		Percentile:     scoring.Percentile(score, scores),
		Rank:           scoring.Rank(score, average),
		PopulationSize: len(scores),
	}, nil
}

// benchmarkScores loads the cohort population, going through the cache
// first. A cache failure falls back to the database.
func (s *benchmarkService) benchmarkScores(ctx context.Context, cohort string) ([]int, error) {
	key := benchmarkCacheKey(cohort)

	var cached []int
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Benchmark cache read failed", "cohort", cohort, "error", err)
	}

	scores, err := s.repo.Benchmarks().Scores(ctx, repositories.BenchmarkFilters{
		Cohort: cohort,
		Limit:  benchmarkSampleLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmark population: %w", err)
	}

	if cacheErr := s.cache.Set(ctx, key, scores, benchmarkCacheTTL); cacheErr != nil {
		s.logger.Warn("Benchmark cache write failed", "cohort", cohort, "error", cacheErr)
	}
	return scores, nil
}

func benchmarkCacheKey(cohort string) string {
	if cohort == "" {
		cohort = "global"
	}
	return "glueiq:benchmarks:" + cohort
}

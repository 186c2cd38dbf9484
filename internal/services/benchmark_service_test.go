package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/humanglue/glueiq-service/internal/cache"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBenchmarkService(repo *MockRepositoryFacade, cacheService cache.CacheService) BenchmarkService {
	return NewBenchmarkService(repo, cacheService, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPercentileFor_CacheMissLoadsFromDatabase(t *testing.T) {
	repo := NewMockRepositoryFacade()
	mockCache := new(MockCacheService)
	service := newTestBenchmarkService(repo, mockCache)

	population := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mockCache.On("Get", mock.Anything, "glueiq:benchmarks:global", mock.Anything).Return(cache.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, "glueiq:benchmarks:global", population, benchmarkCacheTTL).Return(nil)
	repo.benchmarks.On("Scores", mock.Anything, repositories.BenchmarkFilters{
		Cohort: "",
		Limit:  benchmarkSampleLimit,
	}).Return(population, nil)

	resp, err := service.PercentileFor(context.Background(), 70, "")
	require.NoError(t, err)

	assert.Equal(t, 70, resp.Score)
	// Six of ten population scores fall below 70.
	assert.Equal(t, 60, resp.Percentile)
	assert.Equal(t, 10, resp.PopulationSize)
	// Population average is 55, a 15-point lead.
	assert.Equal(t, "Above Average", resp.Rank)

	mockCache.AssertExpectations(t)
	repo.benchmarks.AssertExpectations(t)
}

func TestPercentileFor_CacheHitSkipsDatabase(t *testing.T) {
	repo := NewMockRepositoryFacade()
	mockCache := new(MockCacheService)
	service := newTestBenchmarkService(repo, mockCache)

	mockCache.On("Get", mock.Anything, "glueiq:benchmarks:pilot", mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*[]int)) = []int{40, 50, 60}
		}).Return(nil)

	resp, err := service.PercentileFor(context.Background(), 55, "pilot")
	require.NoError(t, err)

	assert.Equal(t, "pilot", resp.Cohort)
	assert.Equal(t, 67, resp.Percentile)
	assert.Equal(t, 3, resp.PopulationSize)

	repo.benchmarks.AssertNotCalled(t, "Scores", mock.Anything, mock.Anything)
}

func TestPercentileFor_CacheFailureFallsBackToDatabase(t *testing.T) {
	repo := NewMockRepositoryFacade()
	mockCache := new(MockCacheService)
	service := newTestBenchmarkService(repo, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("redis down"))
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("time.Duration")).
		Return(fmt.Errorf("redis down"))
	repo.benchmarks.On("Scores", mock.Anything, mock.AnythingOfType("repositories.BenchmarkFilters")).
		Return([]int{50}, nil)

	resp, err := service.PercentileFor(context.Background(), 50, "")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Percentile)
	assert.Equal(t, 1, resp.PopulationSize)
}

func TestPercentileFor_EmptyPopulation(t *testing.T) {
	repo := NewMockRepositoryFacade()
	mockCache := new(MockCacheService)
	service := newTestBenchmarkService(repo, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(cache.ErrCacheMiss)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("time.Duration")).Return(nil)
	repo.benchmarks.On("Scores", mock.Anything, mock.AnythingOfType("repositories.BenchmarkFilters")).
		Return([]int{}, nil)

	resp, err := service.PercentileFor(context.Background(), 50, "")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBenchmarkEmpty)
}

func TestPercentileFor_ScoreOutOfRange(t *testing.T) {
	repo := NewMockRepositoryFacade()
	mockCache := new(MockCacheService)
	service := newTestBenchmarkService(repo, mockCache)

	for _, score := range []int{-1, 101} {
		resp, err := service.PercentileFor(context.Background(), score, "")
		assert.Nil(t, resp)
		assert.True(t, IsValidation(err), "score %d should fail validation", score)
	}
	mockCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestBenchmarkCacheKey(t *testing.T) {
	assert.Equal(t, "glueiq:benchmarks:global", benchmarkCacheKey(""))
	assert.Equal(t, "glueiq:benchmarks:pilot", benchmarkCacheKey("pilot"))
}

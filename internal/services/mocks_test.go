package services

import (
	"context"
	"time"

	"github.com/humanglue/glueiq-service/internal/cache"
	"github.com/humanglue/glueiq-service/internal/models"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *models.AssessmentResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) CreateBatch(ctx context.Context, responses []*models.AssessmentResponse) error {
	args := m.Called(ctx, responses)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByAssessment(ctx context.Context, assessmentID string) ([]*models.AssessmentResponse, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AssessmentResponse), args.Error(1)
}

func (m *MockResponseRepository) CountByAssessment(ctx context.Context, assessmentID string) (int64, error) {
	args := m.Called(ctx, assessmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepository) DeleteByAssessment(ctx context.Context, assessmentID string) error {
	args := m.Called(ctx, assessmentID)
	return args.Error(0)
}

// MockResultRepository is a mock implementation of ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *models.AssessmentResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByID(ctx context.Context, id uint) (*models.AssessmentResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) GetLatestByAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	args := m.Called(ctx, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentResult), args.Error(1)
}

func (m *MockResultRepository) List(ctx context.Context, filters repositories.ResultFilters) ([]*models.AssessmentResult, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.AssessmentResult), args.Get(1).(int64), args.Error(2)
}

func (m *MockResultRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBenchmarkRepository is a mock implementation of BenchmarkRepository
type MockBenchmarkRepository struct {
	mock.Mock
}

func (m *MockBenchmarkRepository) Add(ctx context.Context, benchmark *models.ScoreBenchmark) error {
	args := m.Called(ctx, benchmark)
	return args.Error(0)
}

func (m *MockBenchmarkRepository) Scores(ctx context.Context, filters repositories.BenchmarkFilters) ([]int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockBenchmarkRepository) AverageScore(ctx context.Context, cohort string) (float64, error) {
	args := m.Called(ctx, cohort)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBenchmarkRepository) Count(ctx context.Context, cohort string) (int64, error) {
	args := m.Called(ctx, cohort)
	return args.Get(0).(int64), args.Error(1)
}

// MockRepositoryFacade bundles the mock repositories behind the Repository
// interface. WithTransaction runs the callback against the same mocks.
type MockRepositoryFacade struct {
	responses  *MockResponseRepository
	results    *MockResultRepository
	benchmarks *MockBenchmarkRepository
}

func NewMockRepositoryFacade() *MockRepositoryFacade {
	return &MockRepositoryFacade{
		responses:  new(MockResponseRepository),
		results:    new(MockResultRepository),
		benchmarks: new(MockBenchmarkRepository),
	}
}

func (m *MockRepositoryFacade) Responses() repositories.ResponseRepository   { return m.responses }
func (m *MockRepositoryFacade) Results() repositories.ResultRepository       { return m.results }
func (m *MockRepositoryFacade) Benchmarks() repositories.BenchmarkRepository { return m.benchmarks }

func (m *MockRepositoryFacade) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *MockRepositoryFacade) Ping(ctx context.Context) error { return nil }
func (m *MockRepositoryFacade) Close() error                   { return nil }

// stubCache is a pass-through cache that always misses.
type stubCache struct{}

func (stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (stubCache) Get(ctx context.Context, key string, dest interface{}) error {
	return cache.ErrCacheMiss
}

func (stubCache) Delete(ctx context.Context, key string) error { return nil }

func (stubCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

// MockCacheService is a mock implementation of cache.CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

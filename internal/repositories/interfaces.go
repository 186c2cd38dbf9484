package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/humanglue/glueiq-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type ResultFilters struct {
	AssessmentID *string    `json:"assessment_id"`
	MinScore     *int       `json:"min_score"`
	MaxScore     *int       `json:"max_score"`
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"`
	Limit        int        `json:"limit"`
	Offset       int        `json:"offset"`
	SortBy       string     `json:"sort_by"`    // "completed_at", "overall_score"
	SortOrder    string     `json:"sort_order"` // "asc", "desc"
}

type BenchmarkFilters struct {
	Cohort string `json:"cohort"`
	Limit  int    `json:"limit"`
}

// ===== REPOSITORY INTERFACES =====

// ResponseRepository interface for stored assessment response operations
type ResponseRepository interface {
	Create(ctx context.Context, response *models.AssessmentResponse) error
	CreateBatch(ctx context.Context, responses []*models.AssessmentResponse) error
	GetByAssessment(ctx context.Context, assessmentID string) ([]*models.AssessmentResponse, error)
	CountByAssessment(ctx context.Context, assessmentID string) (int64, error)
	DeleteByAssessment(ctx context.Context, assessmentID string) error
}

// ResultRepository interface for computed result operations
type ResultRepository interface {
	Create(ctx context.Context, result *models.AssessmentResult) error
	GetByID(ctx context.Context, id uint) (*models.AssessmentResult, error)
	GetLatestByAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error)
	List(ctx context.Context, filters ResultFilters) ([]*models.AssessmentResult, int64, error)
	Delete(ctx context.Context, id uint) error
}

// BenchmarkRepository interface for percentile benchmark population operations
type BenchmarkRepository interface {
	Add(ctx context.Context, benchmark *models.ScoreBenchmark) error
	Scores(ctx context.Context, filters BenchmarkFilters) ([]int, error)
	AverageScore(ctx context.Context, cohort string) (float64, error)
	Count(ctx context.Context, cohort string) (int64, error)
}

// Repository is the aggregate access point services depend on.
type Repository interface {
	Responses() ResponseRepository
	Results() ResultRepository
	Benchmarks() BenchmarkRepository

	// WithTransaction runs fn against a Repository bound to one transaction,
	// committing on nil and rolling back on error.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// IsNotFoundError reports whether err means the requested record is absent.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

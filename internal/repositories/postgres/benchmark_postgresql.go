package postgres

import (
	"context"
	"fmt"

	"github.com/humanglue/glueiq-service/internal/models"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"gorm.io/gorm"
)

type BenchmarkPostgreSQL struct {
	db *gorm.DB
}

func NewBenchmarkPostgreSQL(db *gorm.DB) repositories.BenchmarkRepository {
	return &BenchmarkPostgreSQL{db: db}
}

func (b *BenchmarkPostgreSQL) Add(ctx context.Context, benchmark *models.ScoreBenchmark) error {
	if err := b.db.WithContext(ctx).Create(benchmark).Error; err != nil {
		return fmt.Errorf("failed to add benchmark: %w", err)
	}
	return nil
}

// Scores returns the benchmark population for a cohort, newest first so a
// limit keeps the freshest scores.
func (b *BenchmarkPostgreSQL) Scores(ctx context.Context, filters repositories.BenchmarkFilters) ([]int, error) {
	query := b.db.WithContext(ctx).
		Model(&models.ScoreBenchmark{}).
		Where("cohort = ?", filters.Cohort).
		Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var scores []int
	if err := query.Pluck("score", &scores).Error; err != nil {
		return nil, fmt.Errorf("failed to get benchmark scores: %w", err)
	}
	return scores, nil
}

func (b *BenchmarkPostgreSQL) AverageScore(ctx context.Context, cohort string) (float64, error) {
	var avg *float64
	err := b.db.WithContext(ctx).
		Model(&models.ScoreBenchmark{}).
		Where("cohort = ?", cohort).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average benchmark scores: %w", err)
	}
	if avg == nil {
		return 0, gorm.ErrRecordNotFound
	}
	return *avg, nil
}

func (b *BenchmarkPostgreSQL) Count(ctx context.Context, cohort string) (int64, error) {
	var count int64
	err := b.db.WithContext(ctx).
		Model(&models.ScoreBenchmark{}).
		Where("cohort = ?", cohort).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count benchmarks: %w", err)
	}
	return count, nil
}

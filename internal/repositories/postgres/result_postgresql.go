package postgres

import (
	"context"
	"fmt"

	"github.com/humanglue/glueiq-service/internal/models"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r *ResultPostgreSQL) Create(ctx context.Context, result *models.AssessmentResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

func (r *ResultPostgreSQL) GetByID(ctx context.Context, id uint) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	if err := r.db.WithContext(ctx).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// GetLatestByAssessment returns the most recent result for an assessment.
// Results are append-only, so the newest row is the current one.
func (r *ResultPostgreSQL) GetLatestByAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("completed_at DESC, id DESC").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultPostgreSQL) List(ctx context.Context, filters repositories.ResultFilters) ([]*models.AssessmentResult, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AssessmentResult{})

	if filters.AssessmentID != nil {
		query = query.Where("assessment_id = ?", *filters.AssessmentID)
	}
	if filters.MinScore != nil {
		query = query.Where("overall_score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		query = query.Where("overall_score <= ?", *filters.MaxScore)
	}
	if filters.DateFrom != nil {
		query = query.Where("completed_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("completed_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count results: %w", err)
	}

	sortBy := filters.SortBy
	switch sortBy {
	case "overall_score", "completed_at":
	default:
		sortBy = "completed_at"
	}
	sortOrder := "DESC"
	if filters.SortOrder == "asc" {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var results []*models.AssessmentResult
	if err := query.Find(&results).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list results: %w", err)
	}
	return results, total, nil
}

func (r *ResultPostgreSQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.AssessmentResult{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete result: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/humanglue/glueiq-service/internal/models"
	"github.com/humanglue/glueiq-service/internal/repositories"
	"gorm.io/gorm"
)

type ResponsePostgreSQL struct {
	db *gorm.DB
}

func NewResponsePostgreSQL(db *gorm.DB) repositories.ResponseRepository {
	return &ResponsePostgreSQL{db: db}
}

// Create stores a single response
func (r *ResponsePostgreSQL) Create(ctx context.Context, response *models.AssessmentResponse) error {
	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

// CreateBatch stores a full submission in one insert
func (r *ResponsePostgreSQL) CreateBatch(ctx context.Context, responses []*models.AssessmentResponse) error {
	if len(responses) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(responses).Error; err != nil {
		return fmt.Errorf("failed to create responses: %w", err)
	}
	return nil
}

// GetByAssessment retrieves all responses for an assessment in answer order
func (r *ResponsePostgreSQL) GetByAssessment(ctx context.Context, assessmentID string) ([]*models.AssessmentResponse, error) {
	var responses []*models.AssessmentResponse
	err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("answered_at ASC, id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}
	return responses, nil
}

func (r *ResponsePostgreSQL) CountByAssessment(ctx context.Context, assessmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AssessmentResponse{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}

func (r *ResponsePostgreSQL) DeleteByAssessment(ctx context.Context, assessmentID string) error {
	err := r.db.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Delete(&models.AssessmentResponse{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}
	return nil
}

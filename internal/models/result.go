package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentResult is one computed GlueIQ result for an assessment. Results
// are append-only: re-scoring an assessment inserts a new row rather than
// mutating an old one.
type AssessmentResult struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AssessmentID string `json:"assessment_id" gorm:"not null;size:64;index" validate:"required,max=64"`

	OverallScore  int    `json:"overall_score" gorm:"not null;index" validate:"min=0,max=100"`
	MaturityLevel int    `json:"maturity_level" gorm:"not null" validate:"min=0,max=10"`
	MaturityName  string `json:"maturity_name" gorm:"not null;size:64"`

	// Full scoring output: dimension scores, strengths, growth areas,
	// recommendations, and insights.
	Detail datatypes.JSON `json:"detail" gorm:"type:jsonb"`

	AnswerCount int       `json:"answer_count" gorm:"default:0"`
	CompletedAt time.Time `json:"completed_at" gorm:"index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}

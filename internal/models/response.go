package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentResponse is one stored answer to one question within an
// assessment submission. Metadata carries the scoring attributes captured at
// answer time (dimension, subdimension, answer type, raw value, weight).
type AssessmentResponse struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AssessmentID string `json:"assessment_id" gorm:"not null;size:64;index" validate:"required,max=64"`
	QuestionCode string `json:"question_code" gorm:"not null;size:32;index" validate:"required,max=32"`

	Metadata   datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
	AnsweredAt *time.Time     `json:"answered_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}

package models

import "time"

// ScoreBenchmark is one anonymized overall score contributed to the
// percentile benchmark population. Cohort optionally groups scores (for
// example by industry); an empty cohort means the global population.
type ScoreBenchmark struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Score  int    `json:"score" gorm:"not null;index" validate:"min=0,max=100"`
	Cohort string `json:"cohort" gorm:"size:64;index;default:''" validate:"max=64"`

	CreatedAt time.Time `json:"created_at"`
}

func (ScoreBenchmark) TableName() string {
	return "score_benchmarks"
}

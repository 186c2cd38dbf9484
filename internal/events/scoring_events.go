package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

// EventType represents different types of scoring events
type EventType string

const (
	// Scoring events
	EventAssessmentScored EventType = "assessment.scored"
	EventResultExported   EventType = "assessment.result_exported"

	// Benchmark events
	EventBenchmarkRecorded EventType = "benchmark.recorded"
)

// ScoringEvent is the base event structure for all scoring events
type ScoringEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Scoring event payloads

type AssessmentScoredEvent struct {
	AssessmentID  string    `json:"assessment_id"`
	ResultID      uint      `json:"result_id"`
	OverallScore  int       `json:"overall_score"`
	MaturityLevel int       `json:"maturity_level"`
	MaturityName  string    `json:"maturity_name"`
	AnswerCount   int       `json:"answer_count"`
	CompletedAt   time.Time `json:"completed_at"`
}

type ResultExportedEvent struct {
	AssessmentID string    `json:"assessment_id"`
	ResultID     uint      `json:"result_id"`
	Format       string    `json:"format"` // "csv" or "xlsx"
	ExportedAt   time.Time `json:"exported_at"`
}

type BenchmarkRecordedEvent struct {
	Score      int       `json:"score"`
	Cohort     string    `json:"cohort"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NewScoringEvent builds an event envelope with a fresh ID and timestamp.
func NewScoringEvent(eventType EventType, data interface{}) *ScoringEvent {
	return &ScoringEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "glueiq-service",
		Version:   "1.0",
		Data:      data,
	}
}

package scoring

import "time"

// AnswerType identifies how a raw response value is interpreted during
// normalization.
type AnswerType string

const (
	AnswerScale            AnswerType = "scale"
	AnswerMultiChoice      AnswerType = "multiChoice"
	AnswerFearToConfidence AnswerType = "fearToConfidence"
	AnswerBoolean          AnswerType = "boolean"
	AnswerPercentage       AnswerType = "percentage"
)

// DimensionKey identifies one of the adaptability dimensions being measured.
type DimensionKey string

const (
	DimensionIndividual DimensionKey = "individual"
	DimensionLeadership DimensionKey = "leadership"
	DimensionCultural   DimensionKey = "cultural"
	DimensionEmbedding  DimensionKey = "embedding"
	DimensionVelocity   DimensionKey = "velocity"
)

// ScoreLevel is the qualitative classification of a 0-100 dimension score.
type ScoreLevel string

const (
	LevelLow        ScoreLevel = "low"
	LevelDeveloping ScoreLevel = "developing"
	LevelProficient ScoreLevel = "proficient"
	LevelAdvanced   ScoreLevel = "advanced"
	LevelExpert     ScoreLevel = "expert"
)

// Priority ranks recommendations and doubles as estimated impact.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// InsightType classifies a derived observation.
type InsightType string

const (
	InsightStrength    InsightType = "strength"
	InsightGap         InsightType = "gap"
	InsightOpportunity InsightType = "opportunity"
	InsightPattern     InsightType = "pattern"
)

// Answer is one respondent's response to one question, already normalized to
// the 0-100 scale. Answers are the sole input to scoring and are never
// mutated.
type Answer struct {
	QuestionCode string       `json:"question_code"`
	Dimension    DimensionKey `json:"dimension"`
	Subdimension string       `json:"subdimension"`
	AnswerType   AnswerType   `json:"answer_type"`
	Value        float64      `json:"value"`
	Weight       float64      `json:"weight"`
	AnsweredAt   time.Time    `json:"answered_at"`
}

// DimensionScore is the computed score for one dimension.
//
// Score is always in [0,100] and Level is a fixed function of Score. A
// dimension with no answers scores 0 at level "low".
type DimensionScore struct {
	Dimension          DimensionKey   `json:"dimension"`
	Name               string         `json:"name"`
	Score              int            `json:"score"`
	Level              ScoreLevel     `json:"level"`
	QuestionsAnswered  int            `json:"questions_answered"`
	TotalWeight        float64        `json:"total_weight"`
	SubdimensionScores map[string]int `json:"subdimension_scores"`
	Color              string         `json:"color"`
}

// Recommendation is a derived, templated suggestion tied to one dimension.
// Dimensions scoring 80 or above generate none.
type Recommendation struct {
	Priority        Priority     `json:"priority"`
	Dimension       DimensionKey `json:"dimension"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ActionItems     []string     `json:"action_items"`
	Resources       []string     `json:"resources,omitempty"`
	EstimatedImpact Priority     `json:"estimated_impact"`
}

// Insight is a derived observation about the score profile.
type Insight struct {
	Type        InsightType  `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Dimension   DimensionKey `json:"dimension,omitempty"`
}

// Result is the complete GlueIQ scoring output. It is fully derived from one
// answer set and is never mutated; re-scoring always synthesizes a new Result.
type Result struct {
	OverallScore    int              `json:"overall_score"`
	MaturityLevel   int              `json:"maturity_level"`
	MaturityName    string           `json:"maturity_name"`
	DimensionScores []DimensionScore `json:"dimension_scores"`
	Strengths       []string         `json:"strengths"`
	GrowthAreas     []string         `json:"growth_areas"`
	Recommendations []Recommendation `json:"recommendations"`
	Insights        []Insight        `json:"insights"`
	Percentile      *int             `json:"percentile,omitempty"`
	CompletedAt     time.Time        `json:"completed_at"`
}

package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func answerFor(dim DimensionKey, sub string, value, weight float64) Answer {
	return Answer{
		QuestionCode: "TEST_001",
		Dimension:    dim,
		Subdimension: sub,
		AnswerType:   AnswerScale,
		Value:        value,
		Weight:       weight,
		AnsweredAt:   fixedClock(),
	}
}

// uniformAnswers builds one answer per registered dimension, all with the
// same value and weight 1.
func uniformAnswers(value float64) []Answer {
	dims := []DimensionKey{
		DimensionIndividual, DimensionLeadership, DimensionCultural,
		DimensionEmbedding, DimensionVelocity,
	}
	answers := make([]Answer, 0, len(dims))
	for _, d := range dims {
		answers = append(answers, answerFor(d, "general", value, 1))
	}
	return answers
}

func TestCalculateScore_Deterministic(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)
	answers := []Answer{
		answerFor(DimensionIndividual, "ai_literacy", 75, 1.2),
		answerFor(DimensionLeadership, "coaching", 50, 1.0),
		answerFor(DimensionCultural, "trust", 30, 1.0),
		answerFor(DimensionVelocity, "momentum", 90, 1.1),
	}

	first := scorer.CalculateScore(answers)
	second := scorer.CalculateScore(answers)

	assert.Equal(t, first, second)
}

func TestCalculateScore_EmptyInput(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)

	result := scorer.CalculateScore(nil)

	require.Len(t, result.DimensionScores, 5)
	for _, dim := range result.DimensionScores {
		assert.Equal(t, 0, dim.Score)
		assert.Equal(t, LevelLow, dim.Level)
		assert.Equal(t, 0, dim.QuestionsAnswered)
		assert.Empty(t, dim.SubdimensionScores)
	}
	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, 0, result.MaturityLevel)
	assert.Equal(t, "AI Unaware", result.MaturityName)
	assert.Empty(t, result.Strengths)

	// Every dimension at 0 needs a high priority recommendation.
	require.Len(t, result.Recommendations, 5)
	for _, rec := range result.Recommendations {
		assert.Equal(t, PriorityHigh, rec.Priority)
	}
}

func TestCalculateScore_ScoresWithinRange(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)
	answers := []Answer{
		answerFor(DimensionIndividual, "ai_literacy", 100, 1.3),
		answerFor(DimensionIndividual, "tech_comfort", 0, 0.8),
		answerFor(DimensionLeadership, "influence", 55, 1.0),
	}

	result := scorer.CalculateScore(answers)

	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	for _, dim := range result.DimensionScores {
		assert.GreaterOrEqual(t, dim.Score, 0)
		assert.LessOrEqual(t, dim.Score, 100)
		for _, sub := range dim.SubdimensionScores {
			assert.GreaterOrEqual(t, sub, 0)
			assert.LessOrEqual(t, sub, 100)
		}
	}
}

func TestScoreDimension_WeightedMean(t *testing.T) {
	cfg := DefaultConfig()
	answers := []Answer{
		answerFor(DimensionIndividual, "ai_literacy", 80, 3),
		answerFor(DimensionIndividual, "tech_comfort", 20, 1),
	}

	dim := ScoreDimension(cfg, DimensionIndividual, answers)

	// (80*3 + 20*1) / 4 = 65
	assert.Equal(t, 65, dim.Score)
	assert.Equal(t, 2, dim.QuestionsAnswered)
	assert.InDelta(t, 4.0, dim.TotalWeight, 1e-9)
	assert.Equal(t, 80, dim.SubdimensionScores["ai_literacy"])
	assert.Equal(t, 20, dim.SubdimensionScores["tech_comfort"])
	assert.Equal(t, "Individual Readiness", dim.Name)
	assert.Equal(t, "#06B6D4", dim.Color)
}

func TestScoreDimension_UnknownDimensionFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	answers := []Answer{answerFor(DimensionKey("mystery"), "general", 50, 1)}

	dim := ScoreDimension(cfg, DimensionKey("mystery"), answers)

	assert.Equal(t, "mystery", dim.Name)
	assert.Equal(t, "#666", dim.Color)
	assert.Equal(t, 50, dim.Score)
}

func TestLevelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  ScoreLevel
	}{
		{0, LevelLow},
		{19, LevelLow},
		{20, LevelDeveloping},
		{39, LevelDeveloping},
		{40, LevelProficient},
		{59, LevelProficient},
		{60, LevelAdvanced},
		{79, LevelAdvanced},
		{80, LevelExpert},
		{100, LevelExpert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestMaturity_Boundaries(t *testing.T) {
	tests := []struct {
		overall int
		level   int
		name    string
	}{
		{0, 0, "AI Unaware"},
		{9, 0, "AI Unaware"},
		{10, 1, "AI Curious"},
		{79, 7, "AI Advanced"},
		{80, 8, "AI Champion"},
		{100, 10, "AI Visionary"},
	}
	for _, tt := range tests {
		level := MaturityLevelForScore(tt.overall)
		assert.Equal(t, tt.level, level, "overall %d", tt.overall)
		assert.Equal(t, tt.name, MaturityName(level), "overall %d", tt.overall)
	}
}

func TestCalculateScore_StrengthsAndGrowthAreas(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)
	answers := []Answer{
		answerFor(DimensionIndividual, "general", 85, 1),
		answerFor(DimensionLeadership, "general", 72, 1),
		answerFor(DimensionCultural, "general", 55, 1),
		answerFor(DimensionEmbedding, "general", 45, 1),
		answerFor(DimensionVelocity, "general", 20, 1),
	}

	result := scorer.CalculateScore(answers)

	// Strengths sorted by score descending; growth areas ascending. A
	// dimension at 55 lands in neither bucket.
	assert.Equal(t, []string{"Individual Readiness", "Leadership Capability"}, result.Strengths)
	assert.Equal(t, []string{"Change Velocity", "Behavior Embedding"}, result.GrowthAreas)
}

func TestGenerateRecommendations_PriorityBands(t *testing.T) {
	cfg := DefaultConfig()
	scores := []int{35, 55, 75, 85, 90}
	dims := cfg.Dimensions()
	dimensionScores := make([]DimensionScore, len(dims))
	for i, d := range dims {
		dimensionScores[i] = DimensionScore{
			Dimension: d.Key,
			Name:      d.Name,
			Score:     scores[i],
			Level:     LevelForScore(scores[i]),
		}
	}

	recs := GenerateRecommendations(dimensionScores)

	// 85 and 90 generate nothing; the rest sort high, medium, low.
	require.Len(t, recs, 3)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, DimensionIndividual, recs[0].Dimension)
	assert.Len(t, recs[0].ActionItems, 4)
	assert.Equal(t, PriorityMedium, recs[1].Priority)
	assert.Equal(t, DimensionLeadership, recs[1].Dimension)
	assert.Len(t, recs[1].ActionItems, 3)
	assert.Equal(t, PriorityLow, recs[2].Priority)
	assert.Equal(t, DimensionCultural, recs[2].Dimension)
	assert.Len(t, recs[2].ActionItems, 2)

	for _, rec := range recs {
		assert.Equal(t, rec.Priority, rec.EstimatedImpact)
	}
}

func TestGenerateRecommendations_Templates(t *testing.T) {
	dim := DimensionScore{
		Dimension: DimensionIndividual,
		Name:      "Individual Readiness",
		Score:     35,
	}

	recs := GenerateRecommendations([]DimensionScore{dim})

	require.Len(t, recs, 1)
	assert.Equal(t, "Build Your AI Foundation", recs[0].Title)
	assert.Contains(t, recs[0].Description, "35%")
}

func TestGenerateRecommendations_FallbackTemplate(t *testing.T) {
	dim := DimensionScore{
		Dimension: DimensionKey("mystery"),
		Name:      "Mystery",
		Score:     45,
	}

	recs := GenerateRecommendations([]DimensionScore{dim})

	require.Len(t, recs, 1)
	assert.Equal(t, "Improve Mystery", recs[0].Title)
	assert.Equal(t, "Your score of 45% indicates opportunity for improvement.", recs[0].Description)
	assert.Equal(t, []string{"Identify specific areas for improvement", "Create an action plan", "Track progress weekly"}, recs[0].ActionItems)
}

func TestGenerateInsights_BalancedProfile(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)

	result := scorer.CalculateScore(uniformAnswers(50))

	var patterns []Insight
	for _, ins := range result.Insights {
		if ins.Type == InsightPattern {
			patterns = append(patterns, ins)
		}
	}
	require.Len(t, patterns, 1)
	assert.Equal(t, "Balanced Profile", patterns[0].Title)
}

func TestGenerateInsights_UnevenDevelopment(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)
	answers := []Answer{
		answerFor(DimensionIndividual, "general", 10, 1),
		answerFor(DimensionLeadership, "general", 90, 1),
		answerFor(DimensionCultural, "general", 10, 1),
		answerFor(DimensionEmbedding, "general", 90, 1),
		answerFor(DimensionVelocity, "general", 50, 1),
	}

	result := scorer.CalculateScore(answers)

	var patterns []Insight
	for _, ins := range result.Insights {
		if ins.Type == InsightPattern {
			patterns = append(patterns, ins)
		}
	}
	require.Len(t, patterns, 1)
	assert.Equal(t, "Uneven Development", patterns[0].Title)
}

func TestGenerateInsights_StrengthsAndGaps(t *testing.T) {
	dims := []DimensionScore{
		{Dimension: DimensionIndividual, Name: "Individual Readiness", Score: 85},
		{Dimension: DimensionLeadership, Name: "Leadership Capability", Score: 70},
		{Dimension: DimensionCultural, Name: "Cultural Alignment", Score: 50},
		{Dimension: DimensionEmbedding, Name: "Behavior Embedding", Score: 40},
		{Dimension: DimensionVelocity, Name: "Change Velocity", Score: 30},
	}

	insights := GenerateInsights(dims, 55)

	var strengths, gaps []Insight
	for _, ins := range insights {
		switch ins.Type {
		case InsightStrength:
			strengths = append(strengths, ins)
		case InsightGap:
			gaps = append(gaps, ins)
		}
	}
	require.Len(t, strengths, 2)
	assert.Equal(t, "Strong Individual Readiness", strengths[0].Title)
	assert.Equal(t, "Strong Leadership Capability", strengths[1].Title)
	require.Len(t, gaps, 2)
	assert.Equal(t, "Behavior Embedding Gap", gaps[0].Title)
	assert.Equal(t, "Change Velocity Gap", gaps[1].Title)
}

func TestGenerateInsights_ReadyToLead(t *testing.T) {
	scorer := NewScorer(nil).WithClock(fixedClock)

	result := scorer.CalculateScore(uniformAnswers(70))

	var opportunities []Insight
	for _, ins := range result.Insights {
		if ins.Type == InsightOpportunity {
			opportunities = append(opportunities, ins)
		}
	}
	require.Len(t, opportunities, 1)
	assert.Equal(t, "Ready to Lead", opportunities[0].Title)
}

func TestCalculateScore_SyntheticConfig(t *testing.T) {
	cfg := NewConfig(
		[]Dimension{
			{Key: "alpha", Name: "Alpha", Color: "#111", Weight: 1},
			{Key: "beta", Name: "Beta", Color: "#222", Weight: 1},
		},
		nil,
	)
	scorer := NewScorer(cfg).WithClock(fixedClock)
	answers := []Answer{
		answerFor(DimensionKey("alpha"), "general", 80, 1),
		answerFor(DimensionKey("beta"), "general", 40, 1),
	}

	result := scorer.CalculateScore(answers)

	require.Len(t, result.DimensionScores, 2)
	assert.Equal(t, 60, result.OverallScore)
	assert.Equal(t, 6, result.MaturityLevel)
	assert.Equal(t, []string{"Alpha"}, result.Strengths)
	assert.Equal(t, []string{"Beta"}, result.GrowthAreas)
}

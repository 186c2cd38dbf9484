package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareAnswers_Defaults(t *testing.T) {
	responses := []StoredResponse{
		{QuestionCode: "MYSTERY_001"},
	}

	answers := PrepareAnswers(responses, fixedClock)

	require.Len(t, answers, 1)
	got := answers[0]
	assert.Equal(t, "MYSTERY_001", got.QuestionCode)
	assert.Equal(t, DimensionIndividual, got.Dimension)
	assert.Equal(t, "general", got.Subdimension)
	assert.Equal(t, AnswerScale, got.AnswerType)
	assert.Equal(t, float64(0), got.Value)
	assert.Equal(t, float64(1), got.Weight)
	assert.Equal(t, fixedClock(), got.AnsweredAt)
}

func TestPrepareAnswers_ZeroWeightDefaultsToOne(t *testing.T) {
	responses := []StoredResponse{
		{
			QuestionCode: "IND_001",
			Metadata: ResponseMetadata{
				Dimension:      DimensionIndividual,
				AnswerType:     AnswerScale,
				AnswerValue:    Number(50),
				QuestionWeight: 0,
			},
		},
	}

	answers := PrepareAnswers(responses, fixedClock)

	require.Len(t, answers, 1)
	assert.Equal(t, float64(1), answers[0].Weight)
}

func TestPrepareAnswers_NormalizesValues(t *testing.T) {
	responses := []StoredResponse{
		{
			QuestionCode: "IND_006",
			Metadata: ResponseMetadata{
				Dimension:      DimensionIndividual,
				Subdimension:   "self_awareness",
				AnswerType:     AnswerScale,
				AnswerValue:    Number(130),
				QuestionWeight: 0.9,
			},
		},
		{
			QuestionCode: "CULT_004",
			Metadata: ResponseMetadata{
				Dimension:   DimensionCultural,
				AnswerType:  AnswerBoolean,
				AnswerValue: String("yes"),
			},
		},
	}

	answers := PrepareAnswers(responses, fixedClock)

	require.Len(t, answers, 2)
	assert.Equal(t, float64(100), answers[0].Value)
	assert.InDelta(t, 0.9, answers[0].Weight, 1e-9)
	assert.Equal(t, float64(100), answers[1].Value)
}

func TestPrepareAnswers_Timestamps(t *testing.T) {
	responses := []StoredResponse{
		{QuestionCode: "A", AnsweredAt: "2025-03-10T08:30:00Z"},
		{QuestionCode: "B", AnsweredAt: "not a timestamp"},
		{QuestionCode: "C"},
	}

	answers := PrepareAnswers(responses, fixedClock)

	require.Len(t, answers, 3)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC), answers[0].AnsweredAt)
	assert.Equal(t, fixedClock(), answers[1].AnsweredAt)
	assert.Equal(t, fixedClock(), answers[2].AnsweredAt)
}

func TestPrepareAnswers_FeedsScoring(t *testing.T) {
	responses := []StoredResponse{
		{
			QuestionCode: "IND_001",
			Metadata: ResponseMetadata{
				Dimension:      DimensionIndividual,
				Subdimension:   "ai_literacy",
				AnswerType:     AnswerMultiChoice,
				AnswerValue:    Number(75),
				QuestionWeight: 1.2,
			},
			AnsweredAt: "2025-03-10T08:30:00Z",
		},
	}

	scorer := NewScorer(nil).WithClock(fixedClock)
	result := scorer.CalculateScore(PrepareAnswers(responses, fixedClock))

	require.Len(t, result.DimensionScores, 5)
	assert.Equal(t, 75, result.DimensionScores[0].Score)
}

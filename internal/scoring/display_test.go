package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "F"},
		{29, "F"},
		{30, "D"},
		{49, "D"},
		{50, "C"},
		{59, "C"},
		{60, "B"},
		{74, "B"},
		{75, "A"},
		{89, "A"},
		{90, "A+"},
		{100, "A+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreGrade(tt.score), "score %d", tt.score)
	}
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, "#10B981", ScoreColor(80))
	assert.Equal(t, "#06B6D4", ScoreColor(60))
	assert.Equal(t, "#F59E0B", ScoreColor(40))
	assert.Equal(t, "#EF4444", ScoreColor(39))
}

func TestFormatScorePercentage(t *testing.T) {
	assert.Equal(t, "72%", FormatScorePercentage(72))
}

func TestMaturityLabel(t *testing.T) {
	assert.Equal(t, "Level 7: AI Advanced", MaturityLabel(7))
	assert.Equal(t, "Level 10: AI Visionary", MaturityLabel(12))
}

func TestPercentile(t *testing.T) {
	benchmarks := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	assert.Equal(t, 50, Percentile(55, benchmarks))
	assert.Equal(t, 0, Percentile(5, benchmarks))
	assert.Equal(t, 100, Percentile(101, benchmarks))
	assert.Equal(t, 0, Percentile(50, nil))
}

func TestRank(t *testing.T) {
	assert.Equal(t, "Industry Leader", Rank(85, 60))
	assert.Equal(t, "Above Average", Rank(75, 60))
	assert.Equal(t, "Average", Rank(60, 60))
	assert.Equal(t, "Below Average", Rank(45, 60))
	assert.Equal(t, "Needs Improvement", Rank(30, 60))
}
